package modinfo

import (
	"strings"
)

const (
	// StartMarker opens an annotation block. Only an exact token match
	// counts.
	StartMarker = "MODINFO_START"
	// EndMarker closes an annotation block. Any token with this prefix
	// counts, so "MODINFO_END123" also closes a block.
	EndMarker = "MODINFO_END"
)

type scanState int

const (
	stateIdle scanState = iota
	stateAwaitKind
	stateAwaitData
)

// Annotation is a single raw (kind, data) pair as found in the input.
//
// Data is every token between the kind and the end marker, each one
// preceded by a single space. It therefore starts with a space unless it
// is empty.
type Annotation struct {
	Kind string
	Data string
	// Line is the 1-based line number of the kind token.
	Line int
}

// Scanner extracts annotations from a sequence of lines. A block may
// span any number of lines.
//
// The zero value is ready to use.
type Scanner struct {
	state scanState
	line  int
	cur   Annotation
	data  strings.Builder
}

// ScanLine scans the next line and returns every annotation completed
// on it, in order.
func (s *Scanner) ScanLine(line string) []Annotation {
	s.line++
	var res []Annotation
	for _, tok := range strings.Fields(line) {
		if tok == StartMarker {
			if s.state == stateAwaitData {
				res = append(res, s.finish())
			}
			s.state = stateAwaitKind
			continue
		}
		if strings.HasPrefix(tok, EndMarker) {
			if s.state == stateAwaitData {
				res = append(res, s.finish())
			}
			continue
		}
		switch s.state {
		case stateAwaitKind:
			s.cur = Annotation{Kind: tok, Line: s.line}
			s.data.Reset()
			s.state = stateAwaitData
		case stateAwaitData:
			s.data.WriteByte(' ')
			s.data.WriteString(tok)
		}
	}
	return res
}

// Flush completes a block left open at the end of input. ok is false if
// no block was open.
func (s *Scanner) Flush() (a Annotation, ok bool) {
	if s.state != stateAwaitData {
		s.state = stateIdle
		return Annotation{}, false
	}
	return s.finish(), true
}

// Open reports whether a block is currently open.
func (s *Scanner) Open() bool {
	return s.state != stateIdle
}

func (s *Scanner) finish() Annotation {
	a := s.cur
	a.Data = s.data.String()
	s.cur = Annotation{}
	s.data.Reset()
	s.state = stateIdle
	return a
}
