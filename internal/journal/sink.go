package journal

import "os"

// Sink is one journaling strategy. Exactly one sink is active per Journal at
// any instant; the Journal owns the single allowed swap (durable -> nop).
//
// Append is called with a fully formatted line including the trailing newline.
// A non-nil error tells the Journal to run its degrade sequence; sinks never
// retry on their own.
type Sink interface {
	Append(line string) error
}

// nopSink discards all lines. It is the terminal strategy: once active it
// stays active for the remainder of the run and performs no filesystem access.
type nopSink struct{}

func (nopSink) Append(string) error { return nil }

// durableSink appends lines to one artifact on disk. Each append opens and
// closes the file so a single failed write leaves no dangling handle for the
// degrade sequence to fight over.
type durableSink struct {
	path string

	// appendFn exists so tests can force a write failure after N successful
	// writes. Production code never replaces it.
	appendFn func(path, line string) error
}

func newDurableSink(path string) *durableSink {
	return &durableSink{path: path, appendFn: appendToFile}
}

func (s *durableSink) Append(line string) error {
	return s.appendFn(s.path, line)
}

func appendToFile(path, line string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	_, werr := f.WriteString(line)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
