package journal

import "strings"

// Artifact naming conventions. These names are a compatibility surface consumed
// by external log collectors and by the retention sweep; they must not change.
const (
	namePrefix    = "file_cleaner_"
	partialTag    = "PARTIAL_"
	initFailedTag = "INIT_FAILED_"
	normalSuffix  = ".log"
	stubSuffix    = ".stub"

	// nameTimestampLayout is the timestamp embedded in artifact filenames.
	// It is filesystem-safe (no colons).
	nameTimestampLayout = "2006-01-02_15-04-05"
)

// normalName returns the filename of a healthy per-run journal artifact.
func normalName(stamp string) string {
	return namePrefix + stamp + normalSuffix
}

// partialName returns the filename a journal artifact is renamed to when a
// mid-run write failure degrades the journal. The timestamp component is the
// one the artifact was created with, so the partial stub remains attributable
// to its run.
func partialName(stamp string) string {
	return namePrefix + partialTag + stamp + stubSuffix
}

// initFailedName returns the filename of the stub recording that the journal
// could not be started at all.
func initFailedName(stamp string) string {
	return namePrefix + initFailedTag + stamp + stubSuffix
}

// isArtifactName reports whether a directory entry name follows any of the
// three artifact conventions. The retention sweep uses this to avoid touching
// unrelated files that happen to live in the log directory.
func isArtifactName(name string) bool {
	if !strings.HasPrefix(name, namePrefix) {
		return false
	}
	return strings.HasSuffix(name, normalSuffix) || strings.HasSuffix(name, stubSuffix)
}
