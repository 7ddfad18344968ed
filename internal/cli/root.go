// Package cli implements the eventsim command line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/db47h/eventsim"
	"github.com/db47h/eventsim/circuit"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Delays  string // path to a YAML delays file

	// SimOptions are appended to the options of every simulator created by a
	// command (for testing).
	SimOptions []eventsim.Option
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the eventsim CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "eventsim",
		Short: "Discrete-event digital circuit simulator",
		Long:  "Run digital circuit simulations driven by a time-ordered agenda of events.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Delays, "delays", "", "YAML file with gate delays (inverter_delay, and_gate_delay, or_gate_delay)")

	cmd.AddCommand(NewHalfAdderCommand(opts))
	cmd.AddCommand(NewAdderCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// gateDelays returns the default delays, or the ones loaded from opts.Delays.
func (opts *RootOptions) gateDelays() (circuit.Delays, error) {
	if opts.Delays == "" {
		return circuit.DefaultDelays(), nil
	}
	d, err := circuit.LoadDelays(opts.Delays)
	if err != nil {
		return circuit.Delays{}, WrapExitError(ExitCommandError, "failed to load delays", err)
	}
	return d, nil
}

// newSimulator configures logging on w and returns a new simulator.
func (opts *RootOptions) newSimulator(w io.Writer, extra ...eventsim.Option) *eventsim.Simulator {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	so := append([]eventsim.Option{eventsim.WithLogger(slog.New(handler))}, extra...)
	so = append(so, opts.SimOptions...)
	return eventsim.New(so...)
}

func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}
