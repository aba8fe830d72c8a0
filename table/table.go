// Package table renders module records as the C module info table.
//
// Output is streamed: [Writer.Begin] once, [Writer.Record] once per
// input file, [Writer.End] once.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/refaktor/modinfogen/modinfo"
)

// Layout holds the fixed parts of the generated table.
type Layout struct {
	// Provenance is the text of the leading comment.
	Provenance string
	// Includes are emitted as #include "..." lines, in order.
	Includes []string
	// Type is the C element type of the table.
	Type string
	// Symbol is the C identifier of the table.
	Symbol string
	// Indent is the indentation of table entries.
	Indent string
}

// DefaultLayout returns the layout expected by the QEMU module loader.
func DefaultLayout() Layout {
	return Layout{
		Provenance: "generated by modinfogen",
		Includes:   []string{"qemu/osdep.h", "qemu/module.h"},
		Type:       "QemuModinfo",
		Symbol:     "qemu_modinfo",
		Indent:     "    ",
	}
}

// Writer writes a table to an underlying [io.Writer].
type Writer struct {
	layout Layout
	out    io.Writer
	cb     CodeBuilder
}

// NewWriter returns a Writer that writes a table with the given layout
// to out.
func NewWriter(out io.Writer, layout Layout) *Writer {
	w := &Writer{
		layout: layout,
		out:    out,
	}
	w.cb.IndentString = layout.Indent
	return w
}

// Begin writes the preamble and opens the table literal.
func (w *Writer) Begin() error {
	w.cb.Reset()
	w.cb.Linef(`/* %v */`, w.layout.Provenance)
	for _, inc := range w.layout.Includes {
		w.cb.Linef(`#include "%v"`, inc)
	}
	w.cb.Linef(`const %v %v[] = {{`, w.layout.Type, w.layout.Symbol)
	return w.cb.Flush(w.out)
}

// Record writes a single table entry. source is the input file the
// record was built from and is written as a comment.
//
// Values are written as they were found in the input, without quoting
// or trimming.
func (w *Writer) Record(source string, rec *modinfo.Record) error {
	w.cb.Reset()
	w.cb.Indent = 1
	w.cb.Linef(`/* %v */`, source)
	w.cb.Linef(`.name = "%v",`, rec.Name)
	if rec.Arch != "" {
		w.cb.Linef(`.arch = %v,`, rec.Arch)
	}
	w.array("objs", rec.Objects)
	w.array("deps", rec.Deps)
	w.array("opts", rec.Opts)
	w.cb.Indent = 0
	w.cb.Linef(`},{`)
	return w.cb.Flush(w.out)
}

// End writes the end of list marker and closes the table literal.
func (w *Writer) End() error {
	w.cb.Reset()
	w.cb.Indent = 1
	w.cb.Linef(`/* end of list */`)
	w.cb.Indent = 0
	w.cb.Linef(`}};`)
	return w.cb.Flush(w.out)
}

// array writes nothing for an empty list.
func (w *Writer) array(name string, values []string) {
	if len(values) == 0 {
		return
	}
	w.cb.Linef(`.%v = ((const char*[]){ %v, NULL }),`, name, strings.Join(values, ", "))
}

// Render writes a complete table for the given records. sources and
// recs must be of equal length.
func Render(out io.Writer, layout Layout, sources []string, recs []*modinfo.Record) error {
	if len(sources) != len(recs) {
		return fmt.Errorf("render: %v sources but %v records", len(sources), len(recs))
	}
	w := NewWriter(out, layout)
	if err := w.Begin(); err != nil {
		return err
	}
	for i, rec := range recs {
		if err := w.Record(sources[i], rec); err != nil {
			return err
		}
	}
	return w.End()
}
