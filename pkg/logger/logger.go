package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// New returns the bootstrap logger used before slog is configured. It writes
// to stderr because stdout may carry the rendered page.
func New(component string) *log.Logger {
	return NewWithWriter(os.Stderr, component)
}

// NewWithWriter prefixes each message with the component after the timestamp.
func NewWithWriter(w io.Writer, component string) *log.Logger {
	return log.New(w, fmt.Sprintf("%s: ", component), log.LstdFlags|log.Lmsgprefix)
}
