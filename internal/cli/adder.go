package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/eventsim"
	"github.com/db47h/eventsim/circuit"
)

// AdderOptions holds flags for the adder command.
type AdderOptions struct {
	*RootOptions
	Bits  int
	Carry bool
	Probe bool
}

// NewAdderCommand creates the adder command.
func NewAdderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AdderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "adder <a> <b>",
		Short: "Add two numbers with a ripple-carry adder",
		Long: `Build a ripple-carry adder of the given width, set its inputs to a and b
and run the simulation until the outputs settle.

The settle time is the simulated time between setting the inputs and the
last event; it never exceeds the worst case propagation delay of the adder.

Example:
  eventsim adder 5 9
  eventsim adder --bits 16 --cin 40000 30000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdder(opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Bits, "bits", 4, "adder width in bits (1-62)")
	cmd.Flags().BoolVar(&opts.Carry, "cin", false, "set the carry in")
	cmd.Flags().BoolVar(&opts.Probe, "probe", false, "log every change of the sum and carry wires")

	return cmd
}

// AdderResult is the output of the adder command.
type AdderResult struct {
	Sim       string        `json:"sim"`
	Bits      int           `json:"bits"`
	A         int64         `json:"a"`
	B         int64         `json:"b"`
	Cin       bool          `json:"cin"`
	Sum       int64         `json:"sum"`
	Cout      bool          `json:"cout"`
	Settle    eventsim.Time `json:"settle"`
	WorstCase eventsim.Time `json:"worst_case"`
	Events    uint64        `json:"events"`
}

func (r *AdderResult) String() string {
	c := int64(0)
	if r.Cin {
		c = 1
	}
	co := 0
	if r.Cout {
		co = 1
	}
	return fmt.Sprintf("%d + %d + %d = %d\nsum=%0*b cout=%d\nsettled after %d (worst case %d), %d events",
		r.A, r.B, c, r.Sum+int64(co)<<uint(r.Bits), r.Bits, r.Sum, co, r.Settle, r.WorstCase, r.Events)
}

func parseOperand(s string, bits int) (int64, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, WrapExitError(ExitCommandError, "invalid operand "+strconv.Quote(s), err)
	}
	if v < 0 || v >= 1<<uint(bits) {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("operand %d out of range for a %d bits adder", v, bits))
	}
	return v, nil
}

func runAdder(opts *AdderOptions, args []string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	if opts.Bits < 1 || opts.Bits > 62 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid width %d: must be between 1 and 62", opts.Bits))
	}
	a, err := parseOperand(args[0], opts.Bits)
	if err != nil {
		return err
	}
	b, err := parseOperand(args[1], opts.Bits)
	if err != nil {
		return err
	}
	d, err := opts.gateDelays()
	if err != nil {
		return err
	}

	s := opts.newSimulator(out.GetErrWriter())
	bd := eventsim.NewBoard(s)
	wa, wb, sum := bd.NewBus("a", opts.Bits), bd.NewBus("b", opts.Bits), bd.NewBus("sum", opts.Bits)
	cin, cout := bd.WireOrNew("cin"), bd.WireOrNew("cout")
	if err := circuit.RippleCarryAdder(s, wa, wb, cin, sum, cout, d); err != nil {
		return WrapExitError(ExitFailure, "failed to build adder", err)
	}
	// settle the circuit before setting the inputs
	if err := s.Run(); err != nil {
		return WrapExitError(ExitFailure, "simulation failed", err)
	}
	if opts.Probe {
		for _, n := range bd.Names() {
			if n == "cout" || strings.HasPrefix(n, "sum[") {
				bd.Probe(n)
			}
		}
	}

	start := s.Now()
	circuit.SetInt64(s, wa, a)
	circuit.SetInt64(s, wb, b)
	s.SetSignal(cin, opts.Carry)
	if err := s.Run(); err != nil {
		return WrapExitError(ExitFailure, "simulation failed", err)
	}

	return out.Success(&AdderResult{
		Sim:       s.ID().String(),
		Bits:      opts.Bits,
		A:         a,
		B:         b,
		Cin:       opts.Carry,
		Sum:       circuit.Int64(s, sum),
		Cout:      s.Signal(cout),
		Settle:    s.Now() - start,
		WorstCase: circuit.RippleCarryDelay(opts.Bits, d),
		Events:    s.Steps(),
	})
}
