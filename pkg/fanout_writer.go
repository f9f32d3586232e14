package pkg

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/multierr"
)

// FanoutWriter copies every log line to all of its sinks. A line counts as
// written once one sink took it whole: Write then reports len(p) and still
// returns the errors of the sinks that failed.
type FanoutWriter struct {
	mu    sync.Mutex
	sinks []io.Writer
}

func NewFanoutWriter(sinks ...io.Writer) *FanoutWriter {
	return &FanoutWriter{sinks: sinks}
}

func (w *FanoutWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var errs error
	delivered := false
	for i, sink := range w.sinks {
		n, err := sink.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("log sink %d: %w", i, err))
			continue
		}
		delivered = true
	}

	if !delivered && len(w.sinks) > 0 {
		return 0, errs
	}
	return len(p), errs
}
