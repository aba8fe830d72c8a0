package table

import (
	"fmt"
	"io"
	"strings"
)

// CodeBuilder is a wrapper around [strings.Builder] that simplifies
// building C source line by line.
//
// The zero value is safely ready to use and indents with a tab.
type CodeBuilder struct {
	// Indent is the indentation level.
	Indent int
	// IndentString is written Indent times in front of each line.
	// Defaults to "\t".
	IndentString string

	b strings.Builder
}

// Linef writes a single line, prepended by the current indentation.
//
// Takes format and args like [fmt.Printf].
func (w *CodeBuilder) Linef(format string, args ...any) {
	indent := w.IndentString
	if indent == "" {
		indent = "\t"
	}
	for range w.Indent {
		w.b.WriteString(indent)
	}
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

// String returns the current code.
func (w *CodeBuilder) String() string {
	return w.b.String()
}

// Flush writes the current code to out and resets the builder, keeping
// the indentation settings.
func (w *CodeBuilder) Flush(out io.Writer) error {
	_, err := io.WriteString(out, w.b.String())
	w.b.Reset()
	return err
}

// Reset discards the current code and the indentation level.
// IndentString is kept.
func (w *CodeBuilder) Reset() {
	w.Indent = 0
	w.b.Reset()
}
