// Command eventsim runs digital circuit simulations.
package main

import (
	"os"

	"github.com/db47h/eventsim/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		f := &cli.OutputFormatter{Writer: os.Stdout, ErrWriter: os.Stderr}
		if format, ferr := cmd.PersistentFlags().GetString("format"); ferr == nil {
			f.Format = format
		}
		_ = f.Error(err)
		os.Exit(cli.GetExitCode(err))
	}
}
