// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
//
package simtest

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/eventsim"
)

// MaxSteps is the step limit of simulators returned by New. Tests of circuits
// with zero-delay loops fail instead of hanging.
//
const MaxSteps = 1 << 20

// New returns a new simulator suitable for tests. Its log output is
// discarded and its step limit is MaxSteps. Additional options are applied
// after the defaults.
//
func New(tb testing.TB, opts ...eventsim.Option) *eventsim.Simulator {
	tb.Helper()
	opts = append([]eventsim.Option{
		eventsim.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		eventsim.WithMaxSteps(MaxSteps),
	}, opts...)
	return eventsim.New(opts...)
}

// Run runs s until its agenda is empty and returns the simulated time it
// took. The test fails if the run fails.
//
func Run(tb testing.TB, s *eventsim.Simulator) eventsim.Time {
	tb.Helper()
	start := s.Now()
	if err := s.Run(); err != nil {
		tb.Fatalf("%+v", err)
	}
	return s.Now() - start
}

// A Builder installs a circuit in s, connected to the given input and output
// wires.
//
type Builder func(s *eventsim.Simulator, in, out []eventsim.Wire)

type bench struct {
	s   *eventsim.Simulator
	in  []eventsim.Wire
	out []eventsim.Wire
}

func newBench(tb testing.TB, inputs, outputs int, b Builder) *bench {
	s := New(tb)
	bn := &bench{s: s, in: s.NewWires(inputs), out: s.NewWires(outputs)}
	b(s, bn.in, bn.out)
	Run(tb, s)
	return bn
}

func (b *bench) apply(tb testing.TB, in []bool) []bool {
	tb.Helper()
	for i, v := range in {
		b.s.SetSignal(b.in[i], v)
	}
	Run(tb, b.s)
	out := make([]bool, len(b.out))
	for i, w := range b.out {
		out[i] = b.s.Signal(w)
	}
	return out
}

func vecString(v []bool) string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d=%v", i, x)
	}
	return b.String()
}

// CompareCircuits installs two circuits with the same number of inputs and
// outputs in separate simulators and compares their settled outputs given
// the same inputs.
//
// If there are 12 inputs or less, all input combinations are tried, in
// order. Otherwise, all-false, all-true and 4096 random input vectors are
// tried.
//
func CompareCircuits(tb testing.TB, inputs, outputs int, ref, dut Builder) {
	tb.Helper()

	b1 := newBench(tb, inputs, outputs, ref)
	b2 := newBench(tb, inputs, outputs, dut)

	in := make([]bool, inputs)
	check := func() {
		tb.Helper()
		o1, o2 := b1.apply(tb, in), b2.apply(tb, in)
		for i := range o1 {
			if o1[i] != o2[i] {
				tb.Fatalf("\nInputs %s\nExpected out %d = %v\nGot %v", vecString(in), i, o1[i], o2[i])
			}
		}
	}

	start := time.Now()
	n := 0
	if inputs <= 12 {
		for v := 0; v < 1<<uint(inputs); v++ {
			for bit := range in {
				in[bit] = v&(1<<uint(bit)) != 0
			}
			check()
			n++
		}
	} else {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		check()
		for i := range in {
			in[i] = true
		}
		check()
		n += 2
		for ; n < 4096+2; n++ {
			for i := range in {
				in[i] = rnd.Int63()&(1<<62) != 0
			}
			check()
		}
	}
	tb.Logf("%d input vectors, %d wires, simulated time %d/%d in %v", n, b2.s.Wires(), b1.s.Now(), b2.s.Now(), time.Since(start))
}

// CompareFunc is like CompareCircuits but compares the circuit against a
// reference function of its inputs.
//
func CompareFunc(tb testing.TB, inputs, outputs int, f func(in []bool) []bool, dut Builder) {
	tb.Helper()
	ref := func(s *eventsim.Simulator, in, out []eventsim.Wire) {
		act := func(s *eventsim.Simulator) {
			v := make([]bool, len(in))
			for i, w := range in {
				v[i] = s.Signal(w)
			}
			r := f(v)
			for i, w := range out {
				x := r[i]
				s.AfterDelay(0, func(s *eventsim.Simulator) { s.SetSignal(w, x) })
			}
		}
		for _, w := range in {
			s.AddAction(w, act)
		}
	}
	CompareCircuits(tb, inputs, outputs, ref, dut)
}
