package modinfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Record describes one module, built from the annotations of a single
// input file.
type Record struct {
	Name    string
	Arch    string
	Objects []string
	Deps    []string
	Opts    []string
}

// slot describes where values of a Kind go. Exactly one of scalar and
// list is set.
type slot struct {
	scalar func(r *Record) *string
	list   func(r *Record) *[]string
}

var slots = [numKinds]slot{
	KindArch: {scalar: func(r *Record) *string { return &r.Arch }},
	KindObj:  {list: func(r *Record) *[]string { return &r.Objects }},
	KindDep:  {list: func(r *Record) *[]string { return &r.Deps }},
	KindOpts: {list: func(r *Record) *[]string { return &r.Opts }},
}

// Set stores data in the field selected by k. Repeatable kinds are
// appended, single-valued kinds are overwritten.
func (r *Record) Set(k Kind, data string) {
	sl := slots[k]
	if sl.list != nil {
		p := sl.list(r)
		*p = append(*p, data)
	} else {
		*sl.scalar(r) = data
	}
}

// Values returns the values stored for k in insertion order. For a
// single-valued kind it returns at most one value.
func (r *Record) Values(k Kind) []string {
	sl := slots[k]
	if sl.list != nil {
		return *sl.list(r)
	}
	if v := *sl.scalar(r); v != "" {
		return []string{v}
	}
	return nil
}

// UnknownKindError is returned when an annotation names a kind other
// than the ones listed in [ParseKind].
type UnknownKindError struct {
	Source string
	Line   int
	Kind   string
}

func (e *UnknownKindError) Error() string {
	return e.Source + ":" + strconv.Itoa(e.Line) + ": unknown: " + e.Kind
}

// Build reads the annotations of a single input file and returns the
// resulting record.
//
// name must be non-empty. source is only used in error messages.
func Build(name, source string, rd io.Reader) (*Record, error) {
	if name == "" {
		return nil, errors.New("build " + strconv.Quote(source) + ": empty module name")
	}
	rec := &Record{Name: name}
	var sc Scanner
	add := func(a Annotation) error {
		k, err := ParseKind(a.Kind)
		if err != nil {
			return &UnknownKindError{Source: source, Line: a.Line, Kind: a.Kind}
		}
		rec.Set(k, a.Data)
		return nil
	}

	br := bufio.NewReader(rd)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("read %v: %w", source, readErr)
		}
		if line != "" {
			for _, a := range sc.ScanLine(line) {
				if err := add(a); err != nil {
					return nil, err
				}
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	if a, ok := sc.Flush(); ok {
		if err := add(a); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
