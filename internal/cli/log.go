package cli

import (
	"fmt"
	"io"
	stdlog "log"

	"github.com/go-log/log"
)

// LogLogger writes through a standard library *log.Logger.
type LogLogger struct {
	l *stdlog.Logger
}

// NewLogLogger returns a LogLogger writing timestamped lines to w.
func NewLogLogger(w io.Writer) *LogLogger {
	return &LogLogger{l: stdlog.New(w, "", stdlog.LstdFlags)}
}

// Log uses the standard log library log.Output
func (l *LogLogger) Log(v ...interface{}) {
	l.l.Output(2, fmt.Sprintln(v...))
}

// Logf uses the standard log library log.Output
func (l *LogLogger) Logf(format string, v ...interface{}) {
	l.l.Output(2, fmt.Sprintf(format, v...))
}

// NopLogger is a dummy logger that discards the log outputs
type NopLogger struct{}

// Log does nothing
func (l *NopLogger) Log(v ...interface{}) {}

// Logf does nothing
func (l *NopLogger) Logf(format string, v ...interface{}) {}

// SetupLogging installs the process-wide logger: w when verbose, a no-op otherwise.
func SetupLogging(verbose bool, w io.Writer) {
	if verbose {
		log.DefaultLogger = NewLogLogger(w)
		return
	}
	log.DefaultLogger = &NopLogger{}
}
