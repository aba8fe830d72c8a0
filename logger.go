package modinfogen

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostic logger used by the command line
// tool. verbose enables debug messages.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "modinfogen",
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}
