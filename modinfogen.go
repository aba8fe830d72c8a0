package modinfogen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/refaktor/modinfogen/depcheck"
	"github.com/refaktor/modinfogen/modinfo"
	"github.com/refaktor/modinfogen/table"
)

// Options configures a single [Run].
type Options struct {
	// Files are the input files, in output order.
	Files []string
	// Layout controls the fixed parts of the table.
	Layout table.Layout
	// Out receives the generated table. Defaults to os.Stdout.
	Out io.Writer
	// ErrOut receives unknown kind and unsatisfied dependency reports,
	// one per line. Defaults to os.Stderr.
	ErrOut io.Writer
	// Logger receives diagnostics. Defaults to discarding them.
	Logger *log.Logger
	// DOT, if set, receives the dependency graph in graphviz DOT
	// format, even if validation fails.
	DOT io.Writer
	// Stats, if set, receives a per-module summary table after a
	// successful run.
	Stats io.Writer
}

// ModuleName returns the module name for an input file: its base name
// without directory and extension.
func ModuleName(path string) string {
	base := filepath.Base(path)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return base
}

// Run generates the table for opts.Files and validates the declared
// dependencies.
//
// An unknown annotation kind stops the run before any further file is
// processed; the returned error is a [*modinfo.UnknownKindError]. If any
// dependency cannot be satisfied, the complete table has already been
// written, every offending name is reported to opts.ErrOut and the
// returned error is a [*depcheck.UnsatisfiedError].
func Run(opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var reg depcheck.Registry
	var stats []statsRow

	w := table.NewWriter(out, opts.Layout)
	if err := w.Begin(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	for _, path := range opts.Files {
		name := ModuleName(path)
		rec, err := buildFile(name, path)
		if err != nil {
			if ukErr := (&modinfo.UnknownKindError{}); errors.As(err, &ukErr) {
				fmt.Fprintln(errOut, ukErr.Error())
			}
			return err
		}
		if err := reg.Add(name, rec.Deps); err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
		if err := w.Record(path, rec); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		logger.Debug("processed module", "name", name, "file", path,
			"objs", len(rec.Objects), "deps", len(rec.Deps), "opts", len(rec.Opts))
		stats = append(stats, newStatsRow(rec))
	}
	if err := w.End(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	if opts.DOT != nil {
		if _, err := opts.DOT.Write(reg.DOT(opts.Layout.Symbol)); err != nil {
			return fmt.Errorf("write dependency graph: %w", err)
		}
	}

	for _, name := range reg.Names() {
		if closure := reg.Closure(name); len(closure) > 0 {
			logger.Debug("dependency closure", "name", name, "deps", strings.Join(closure, " "))
		}
	}

	if err := reg.Validate(); err != nil {
		if unsat := (&depcheck.UnsatisfiedError{}); errors.As(err, &unsat) {
			for _, ln := range unsat.Lines() {
				fmt.Fprintln(errOut, ln)
			}
		}
		return err
	}

	logger.Debug("generated module info", "modules", reg.Len())
	if opts.Stats != nil {
		writeStats(opts.Stats, stats)
	}
	return nil
}

func buildFile(name, path string) (*modinfo.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return modinfo.Build(name, path, f)
}
