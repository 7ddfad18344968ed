// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import "github.com/db47h/eventsim"

// Clock installs a clock signal generator on out. The signal is toggled every
// half time units, starting half time units from now with a rising edge, for
// the given number of full cycles. If cycles is 0, the clock never stops and
// the simulation must be driven with RunUntil.
//
// This function panics if half is not strictly positive or if cycles is
// negative.
//
func Clock(s *eventsim.Simulator, out eventsim.Wire, half eventsim.Time, cycles int) {
	if half <= 0 {
		panic("Clock: half period must be positive")
	}
	if cycles < 0 {
		panic("Clock: negative cycle count")
	}
	edges := 0
	var tick eventsim.Action
	tick = func(s *eventsim.Simulator) {
		s.SetSignal(out, !s.Signal(out))
		edges++
		if cycles == 0 || edges < 2*cycles {
			s.AfterDelay(half, tick)
		}
	}
	s.AfterDelay(half, tick)
}

// DFF installs a rising edge triggered data flip flop.
//
//	Inputs: d, clk
//	Outputs: q
//	Function: q = d, sampled on the rising edge of clk
//
func DFF(s *eventsim.Simulator, d, clk, q eventsim.Wire, delay eventsim.Time) {
	checkDelay("DFF", delay)
	prev := s.Signal(clk)
	s.AddAction(clk, func(s *eventsim.Simulator) {
		v := s.Signal(clk)
		// raising edge?
		if v && !prev {
			in := s.Signal(d)
			s.AfterDelay(delay, func(s *eventsim.Simulator) { s.SetSignal(q, in) })
		}
		prev = v
	})
}
