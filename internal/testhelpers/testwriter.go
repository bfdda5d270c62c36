package testhelpers

import (
	"io"
	"strings"
	"testing"
)

// Writer is an io.Writer that forwards log output to t.Log so that it only
// shows up for failed tests.
type Writer struct {
	t    *testing.T
	done chan struct{}
}

// NewWriter creates a Writer bound to the lifetime of the test.
func NewWriter(t *testing.T) io.Writer {
	w := &Writer{
		t:    t,
		done: make(chan struct{}),
	}
	t.Cleanup(func() {
		close(w.done)
	})
	return w
}

// Write implements io.Writer by writing to t.Log.
func (w *Writer) Write(p []byte) (int, error) {
	select {
	case <-w.done:
		panic("testwriter: write after test completion")
	default:
		// Trailing newlines would double-space the test output.
		if out := strings.TrimSuffix(string(p), "\n"); out != "" {
			w.t.Log(out)
		}
		return len(p), nil
	}
}
