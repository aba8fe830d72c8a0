// Command modinfogen generates the module info table of a modular QEMU
// build from the preprocessed sources of its modules.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/refaktor/modinfogen/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitGeneralError)
	}
}
