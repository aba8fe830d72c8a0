// Package config loads the optional TOML file that controls the layout
// of the generated table.
package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"

	"github.com/refaktor/modinfogen/table"
	"github.com/refaktor/modinfogen/textutils"
)

// Table is the [table] section, see [table.Layout].
type Table struct {
	Provenance string   `toml:"provenance"`
	Includes   []string `toml:"includes"`
	Type       string   `toml:"type"`
	Symbol     string   `toml:"symbol"`
	Indent     string   `toml:"indent"`
}

// Config is the contents of a config file.
type Config struct {
	// Imports are loaded and merged into this file. Relative paths are
	// relative to the importing file. Includes of imported files come
	// first, in import order, followed by this file's own includes;
	// duplicates are dropped.
	Imports []string `toml:"imports"`
	Table   Table    `toml:"table"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	l := table.DefaultLayout()
	return &Config{
		Table: Table{
			Provenance: l.Provenance,
			Includes:   l.Includes,
			Type:       l.Type,
			Symbol:     l.Symbol,
			Indent:     l.Indent,
		},
	}
}

// Layout returns the table layout described by c.
func (c *Config) Layout() table.Layout {
	return table.Layout{
		Provenance: c.Table.Provenance,
		Includes:   c.Table.Includes,
		Type:       c.Table.Type,
		Symbol:     c.Table.Symbol,
		Indent:     c.Table.Indent,
	}
}

// Error is returned by [Load] for any problem with a config file or
// one of its imports.
type Error struct {
	filePath string
	err      error  // short, single-line error
	str      string // full, multi-line error string, or err string, if none
}

// Error returns a short error message.
func (e *Error) Error() string {
	return e.filePath + ": " + e.err.Error()
}

// String returns the full multi-line error string.
func (e *Error) String() string {
	if e.str != "" {
		return "Error in file " + strconv.Quote(e.filePath) + ":\n" + textutils.IndentString(e.str, "  ", 1)
	} else {
		return e.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.err
}

// Load reads the config file at path, merges in its imports and fills
// every unset field with its default.
func Load(path string) (*Config, error) {
	c, err := load(path, map[string]struct{}{})
	if err != nil {
		return nil, err
	}
	if err := mergo.Merge(c, Default()); err != nil {
		return nil, &Error{filePath: path, err: err}
	}
	return c, nil
}

func load(path string, seen map[string]struct{}) (_ *Config, err error) {
	defer func() {
		if err != nil {
			if cErr := (&Error{}); errors.As(err, &cErr) {
				return
			}
			if tErr := (&toml.DecodeError{}); errors.As(err, &tErr) {
				err = &Error{filePath: path, err: err, str: tErr.String()}
			} else if tErr := (&toml.StrictMissingError{}); errors.As(err, &tErr) {
				err = &Error{filePath: path, err: err, str: tErr.String()}
			} else {
				err = &Error{filePath: path, err: err}
			}
		}
	}()

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, ok := seen[abs]; ok {
		return nil, errors.New("import cycle")
	}
	seen[abs] = struct{}{}
	defer delete(seen, abs)

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	err = toml.NewDecoder(bytes.NewReader(file)).
		DisallowUnknownFields().
		Decode(c)
	if err != nil {
		return nil, err
	}

	var importedCs []*Config // collect imported files first so their imports don't leak into our file's imports
	for _, imp := range c.Imports {
		if !filepath.IsAbs(imp) {
			imp = filepath.Join(filepath.Dir(path), imp)
		}
		newC, err := load(imp, seen)
		if err != nil {
			return nil, err
		}
		importedCs = append(importedCs, newC)
	}
	ownIncludes := c.Table.Includes
	c.Table.Includes = nil
	for _, newC := range importedCs {
		if err := mergo.Merge(c, newC, mergo.WithAppendSlice); err != nil {
			return nil, err
		}
	}
	c.Table.Includes = dedupe(append(c.Table.Includes, ownIncludes...))

	return c, nil
}

// dedupe removes all but the first occurrence of each string.
func dedupe(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ss))
	res := ss[:0]
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res
}
