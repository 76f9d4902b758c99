package cleaner

import (
	"testing"
	"time"
)

func rec(name, ext string) FileRecord {
	return FileRecord{Name: name, Extension: ext}
}

func TestMatches_CaseInsensitive(t *testing.T) {
	patterns := []Pattern{{NameSubstring: "report", Extension: ".pdf"}}

	if !Matches(rec("REPORT.PDF", ".PDF"), patterns) {
		t.Error("uppercase extension must match .pdf pattern")
	}
	if !Matches(rec("Report_2025.pdf", ".pdf"), patterns) {
		t.Error("mixed-case substring containment must match")
	}
	if Matches(rec("summary.pdf", ".pdf"), patterns) {
		t.Error("substring miss must not match")
	}
}

func TestMatches_ExtensionIsExact(t *testing.T) {
	patterns := []Pattern{{NameSubstring: "", Extension: ".pdf"}}

	cases := []struct {
		name, ext string
		want      bool
	}{
		{"report.pdf", ".pdf", true},
		{"report.pdf.bak", ".bak", false},
		{"report", "", false},
		{"report.pdfx", ".pdfx", false},
	}
	for _, c := range cases {
		if got := Matches(rec(c.name, c.ext), patterns); got != c.want {
			t.Errorf("Matches(%q ext %q) = %v, want %v", c.name, c.ext, got, c.want)
		}
	}
}

func TestMatches_EmptySubstringMatchesByExtensionAlone(t *testing.T) {
	patterns := []Pattern{{NameSubstring: "", Extension: ".tmp"}}
	if !Matches(rec("anything-at-all.tmp", ".tmp"), patterns) {
		t.Error("empty substring must be vacuously true")
	}
}

func TestMatches_EmptyPatternSetMatchesNothing(t *testing.T) {
	if Matches(rec("report.pdf", ".pdf"), nil) {
		t.Error("empty pattern set must never match")
	}
	if Matches(rec("report.pdf", ".pdf"), []Pattern{}) {
		t.Error("empty pattern set must never match")
	}
}

func TestMatches_AnyOfSemantics(t *testing.T) {
	patterns := []Pattern{
		{NameSubstring: "invoice", Extension: ".xlsx"},
		{NameSubstring: "report", Extension: ".pdf"},
	}
	if !Matches(rec("report_q3.pdf", ".pdf"), patterns) {
		t.Error("a file matching only the second pattern must still be selected")
	}
}

// The substring is searched in the full filename including the extension, so
// a substring that happens to appear inside the extension text still counts.
// That coupling is long-standing behavior and is kept.
func TestMatches_SubstringScansExtensionToo(t *testing.T) {
	patterns := []Pattern{{NameSubstring: "pdf", Extension: ".txt"}}
	if !Matches(rec("pdfreport.txt", ".txt"), patterns) {
		t.Error("substring in the name portion must match")
	}
	patterns = []Pattern{{NameSubstring: "txt", Extension: ".txt"}}
	if !Matches(rec("report.txt", ".txt"), patterns) {
		t.Error("substring found only in the extension portion must match")
	}
}

func TestEligible_StrictAgeBoundary(t *testing.T) {
	cutoff := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	at := FileRecord{CreationTime: cutoff}
	if Eligible(at, cutoff) {
		t.Error("file created exactly at the cutoff must not be eligible")
	}
	older := FileRecord{CreationTime: cutoff.Add(-time.Second)}
	if !Eligible(older, cutoff) {
		t.Error("file one second older than the cutoff must be eligible")
	}
	newer := FileRecord{CreationTime: cutoff.Add(time.Second)}
	if Eligible(newer, cutoff) {
		t.Error("file newer than the cutoff must not be eligible")
	}
}

func TestMatches_IsPure(t *testing.T) {
	patterns := []Pattern{{NameSubstring: "report", Extension: ".pdf"}}
	f := rec("report.pdf", ".pdf")
	for i := 0; i < 3; i++ {
		if !Matches(f, patterns) {
			t.Fatal("Matches must be deterministic across calls")
		}
	}
	if patterns[0].NameSubstring != "report" || f.Name != "report.pdf" {
		t.Fatal("Matches must not mutate its inputs")
	}
}
