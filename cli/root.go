// Package cli provides the modinfogen command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/refaktor/modinfogen"
	"github.com/refaktor/modinfogen/config"
)

// NewRootCmd creates the modinfogen command.
func NewRootCmd() *cobra.Command {
	var (
		outputFlag  string
		configFlag  string
		dotFlag     string
		statsFlag   bool
		verboseFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "modinfogen [flags] <file>...",
		Short: "Generate the QEMU module info table",
		Long: `modinfogen reads the preprocessed sources of QEMU modules, extracts the
MODINFO_START ... MODINFO_END annotations embedded in them and writes the
module info table as C source.

The module name of each file is its base name without extension. Every
"dep" annotation must name a module given on the same command line.`,
		Example: `  modinfogen hw-display-virtio-gpu.modinfo ui-opengl.modinfo > modinfo.c
  modinfogen -o modinfo.c --dot modules.dot *.modinfo`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			errOut := cmd.ErrOrStderr()
			logger := modinfogen.NewLogger(errOut, verboseFlag)

			cfg := config.Default()
			if configFlag != "" {
				cfg, err = config.Load(configFlag)
				if err != nil {
					var cErr *config.Error
					if errors.As(err, &cErr) {
						fmt.Fprintln(errOut, cErr.String())
						return &ExitError{Code: ExitGeneralError, Err: err, Printed: true}
					}
					return &ExitError{Code: ExitGeneralError, Err: err}
				}
				logger.Debug("loaded config", "path", configFlag)
			}

			opts := modinfogen.Options{
				Files:  args,
				Layout: cfg.Layout(),
				Out:    cmd.OutOrStdout(),
				ErrOut: errOut,
				Logger: logger,
			}
			if statsFlag {
				opts.Stats = errOut
			}

			if outputFlag != "" {
				f, closeFn, createErr := create(outputFlag)
				if createErr != nil {
					return &ExitError{Code: ExitGeneralError, Err: createErr}
				}
				defer closeFn(&err)
				opts.Out = f
			}
			if dotFlag != "" {
				f, closeFn, createErr := create(dotFlag)
				if createErr != nil {
					return &ExitError{Code: ExitGeneralError, Err: createErr}
				}
				defer closeFn(&err)
				opts.DOT = f
			}

			if err := modinfogen.Run(opts); err != nil {
				return exitErrorFor(err)
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputFlag, "output", "o", "", "Write the table to this file instead of stdout")
	flags.StringVar(&configFlag, "config", "", "Path to a TOML file describing the table layout")
	flags.StringVar(&dotFlag, "dot", "", "Write the module dependency graph in graphviz DOT format to this file")
	flags.BoolVar(&statsFlag, "stats", false, "Print a per-module summary to stderr")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug output")

	return rootCmd
}

// create opens path for writing. closeFn closes the file and stores a
// close error in *errp, unless *errp is already set.
func create(path string) (w io.Writer, closeFn func(errp *error), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func(errp *error) {
		if err := f.Close(); err != nil && *errp == nil {
			*errp = &ExitError{Code: ExitGeneralError, Err: fmt.Errorf("close %v: %w", path, err)}
		}
	}, nil
}
