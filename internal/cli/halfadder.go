package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/eventsim"
	"github.com/db47h/eventsim/circuit"
)

// NewHalfAdderCommand creates the halfadder command.
func NewHalfAdderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "halfadder",
		Short: "Run the half adder demonstration",
		Long: `Build a half adder with probes on its sum and carry outputs, then
drive its inputs through three transitions, running the agenda to
completion after each one:

  in1 = 1, then in2 = 1, then in1 = 0

Every probe report is printed as "<wire> <time> New-value = <0|1>".

Example:
  eventsim halfadder
  eventsim halfadder --delays delays.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHalfAdder(rootOpts, cmd)
		},
	}
}

// TraceEvent is either an input change or a probe report.
type TraceEvent struct {
	Kind  string        `json:"kind"` // "set" | "probe"
	Label string        `json:"label"`
	Time  eventsim.Time `json:"time"`
	Value bool          `json:"value"`
}

func (e TraceEvent) String() string {
	if e.Kind == "probe" {
		return eventsim.Sample{Label: e.Label, Time: e.Time, Value: e.Value}.String()
	}
	v := "0"
	if e.Value {
		v = "1"
	}
	return "* set " + e.Label + " = " + v + " at time " + strconv.FormatInt(int64(e.Time), 10)
}

// HalfAdderResult is the output of the halfadder command.
type HalfAdderResult struct {
	Sim    string         `json:"sim"`
	Delays circuit.Delays `json:"delays"`
	Trace  []TraceEvent   `json:"trace"`
	Time   eventsim.Time  `json:"time"`
}

func (r *HalfAdderResult) String() string {
	var b strings.Builder
	for _, e := range r.Trace {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	b.WriteString("done at time ")
	b.WriteString(strconv.FormatInt(int64(r.Time), 10))
	return b.String()
}

func runHalfAdder(opts *RootOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	d, err := opts.gateDelays()
	if err != nil {
		return err
	}
	res := &HalfAdderResult{Delays: d}
	rep := eventsim.ReporterFunc(func(label string, t eventsim.Time, v bool) {
		res.Trace = append(res.Trace, TraceEvent{"probe", label, t, v})
	})
	s := opts.newSimulator(out.GetErrWriter(), eventsim.WithReporter(rep))
	res.Sim = s.ID().String()

	b := eventsim.NewBoard(s)
	in1, in2 := b.WireOrNew("in1"), b.WireOrNew("in2")
	sum, carry := b.WireOrNew("sum"), b.WireOrNew("carry")
	b.Probe("sum")
	b.Probe("carry")
	circuit.HalfAdder(s, in1, in2, sum, carry, d)

	for _, step := range []struct {
		name string
		v    bool
	}{
		{"in1", true},
		{"in2", true},
		{"in1", false},
	} {
		res.Trace = append(res.Trace, TraceEvent{"set", step.name, s.Now(), step.v})
		s.SetSignal(b.Wire(step.name), step.v)
		if err := s.Run(); err != nil {
			return WrapExitError(ExitFailure, "simulation failed", err)
		}
	}
	res.Time = s.Now()
	return out.Success(res)
}
