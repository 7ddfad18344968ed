// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package circuit provides logic gates and composite circuits for eventsim.
//
// Every part is a function that installs reactions on its input wires. The
// reactions read the inputs when the simulator runs them and schedule the
// corresponding output write after the part's propagation delay. Parts never
// write their outputs synchronously.
//
package circuit

import (
	"strconv"

	"github.com/db47h/eventsim"
)

func checkDelay(name string, d eventsim.Time) {
	if d < 0 {
		panic(name + ": negative delay " + strconv.FormatInt(int64(d), 10))
	}
}

// Inverter installs a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Inverter(s *eventsim.Simulator, in, out eventsim.Wire, delay eventsim.Time) {
	checkDelay("Inverter", delay)
	s.AddAction(in, func(s *eventsim.Simulator) {
		v := !s.Signal(in)
		s.AfterDelay(delay, func(s *eventsim.Simulator) { s.SetSignal(out, v) })
	})
}

// two input gates
type gate func(a, b bool) bool

func (g gate) mount(s *eventsim.Simulator, a, b, out eventsim.Wire, delay eventsim.Time) {
	act := func(s *eventsim.Simulator) {
		v := g(s.Signal(a), s.Signal(b))
		s.AfterDelay(delay, func(s *eventsim.Simulator) { s.SetSignal(out, v) })
	}
	s.AddAction(a, act)
	s.AddAction(b, act)
}

var (
	and  = gate(func(a, b bool) bool { return a && b })
	nand = gate(func(a, b bool) bool { return !(a && b) })
	or   = gate(func(a, b bool) bool { return a || b })
	nor  = gate(func(a, b bool) bool { return !(a || b) })
	xor  = gate(func(a, b bool) bool { return a && !b || !a && b })
	xnor = gate(func(a, b bool) bool { return a && b || !a && !b })
)

// And installs an AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(s *eventsim.Simulator, a, b, out eventsim.Wire, delay eventsim.Time) {
	checkDelay("And", delay)
	and.mount(s, a, b, out, delay)
}

// Nand installs a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func Nand(s *eventsim.Simulator, a, b, out eventsim.Wire, delay eventsim.Time) {
	checkDelay("Nand", delay)
	nand.mount(s, a, b, out, delay)
}

// Or installs an OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(s *eventsim.Simulator, a, b, out eventsim.Wire, delay eventsim.Time) {
	checkDelay("Or", delay)
	or.mount(s, a, b, out, delay)
}

// Nor installs a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(s *eventsim.Simulator, a, b, out eventsim.Wire, delay eventsim.Time) {
	checkDelay("Nor", delay)
	nor.mount(s, a, b, out, delay)
}

// Xor installs a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
func Xor(s *eventsim.Simulator, a, b, out eventsim.Wire, delay eventsim.Time) {
	checkDelay("Xor", delay)
	xor.mount(s, a, b, out, delay)
}

// Xnor installs a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
func Xnor(s *eventsim.Simulator, a, b, out eventsim.Wire, delay eventsim.Time) {
	checkDelay("Xnor", delay)
	xnor.mount(s, a, b, out, delay)
}
