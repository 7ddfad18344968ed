package simtest_test

import (
	"fmt"
	"testing"

	"github.com/db47h/eventsim"
	"github.com/db47h/eventsim/circuit"
	"github.com/db47h/eventsim/simtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareCircuits(t *testing.T) {
	simtest.CompareCircuits(t, 2, 1,
		func(s *eventsim.Simulator, in, out []eventsim.Wire) {
			circuit.Or(s, in[0], in[1], out[0], 5)
		},
		func(s *eventsim.Simulator, in, out []eventsim.Wire) {
			notA, notB := s.NewWire(), s.NewWire()
			circuit.Nand(s, in[0], in[0], notA, 1)
			circuit.Nand(s, in[1], in[1], notB, 1)
			circuit.Nand(s, notA, notB, out[0], 1)
		})
}

type fakeTB struct {
	testing.TB
	failed string
}

type fatal struct{}

func (f *fakeTB) Helper()                         {}
func (f *fakeTB) Logf(format string, args ...any) {}
func (f *fakeTB) Fatalf(format string, args ...any) {
	f.failed = fmt.Sprintf(format, args...)
	panic(fatal{})
}

func runFake(fn func(tb testing.TB)) (failed string) {
	tb := &fakeTB{}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(fatal); !ok {
				panic(r)
			}
			failed = tb.failed
		}
	}()
	fn(tb)
	return ""
}

func TestCompareCircuits_mismatch(t *testing.T) {
	msg := runFake(func(tb testing.TB) {
		simtest.CompareFunc(tb, 2, 1,
			func(in []bool) []bool { return []bool{in[0] || in[1]} },
			func(s *eventsim.Simulator, in, out []eventsim.Wire) {
				circuit.Xor(s, in[0], in[1], out[0], 1)
			})
	})
	require.NotEmpty(t, msg)
	assert.Contains(t, msg, "Inputs 0=true, 1=true")
	assert.Contains(t, msg, "Expected out 0 = true")
}

func TestCompareFunc_random(t *testing.T) {
	// 14 inputs, random vectors.
	simtest.CompareFunc(t, 14, 1,
		func(in []bool) []bool {
			v := false
			for _, x := range in {
				v = v != x
			}
			return []bool{v}
		},
		func(s *eventsim.Simulator, in, out []eventsim.Wire) {
			acc := in[0]
			for i := 1; i < len(in); i++ {
				w := out[0]
				if i < len(in)-1 {
					w = s.NewWire()
				}
				circuit.Xor(s, acc, in[i], w, 2)
				acc = w
			}
		})
}

func TestRun(t *testing.T) {
	s := simtest.New(t)
	s.AfterDelay(42, func(*eventsim.Simulator) {})
	assert.Equal(t, eventsim.Time(42), simtest.Run(t, s))
	assert.Equal(t, eventsim.Time(0), simtest.Run(t, s))

	var loop eventsim.Action
	loop = func(s *eventsim.Simulator) { s.AfterDelay(0, loop) }
	s = simtest.New(t, eventsim.WithMaxSteps(10))
	s.AfterDelay(0, loop)
	msg := runFake(func(tb testing.TB) { simtest.Run(tb, s) })
	assert.Contains(t, msg, "step limit exceeded")
}
