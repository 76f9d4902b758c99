package cleaner

import (
	"strings"
	"time"
)

// Pattern is one matching rule: a case-insensitive substring searched in the
// full filename (extension included) paired with a case-insensitive exact
// extension. Patterns are immutable configuration values.
type Pattern struct {
	NameSubstring string
	Extension     string
}

// Matches reports whether rec satisfies at least one pattern. Evaluation is
// any-of over the ordered set and short-circuits at the first hit. Pure: no
// side effects, no filesystem access.
//
// An empty pattern set matches nothing. A pattern with an empty substring
// matches by extension alone. The extension comparison is exact, so ".pdf"
// never matches ".pdf.bak" or an extensionless file.
func Matches(rec FileRecord, patterns []Pattern) bool {
	for _, p := range patterns {
		if matchesPattern(rec, p) {
			return true
		}
	}
	return false
}

func matchesPattern(rec FileRecord, p Pattern) bool {
	if !strings.EqualFold(rec.Extension, p.Extension) {
		return false
	}
	return containsFold(rec.Name, p.NameSubstring)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Eligible reports whether rec is old enough to act on: its creation time is
// strictly before the cutoff. A file created exactly at the cutoff is not
// eligible.
func Eligible(rec FileRecord, cutoff time.Time) bool {
	return rec.CreationTime.Before(cutoff)
}
