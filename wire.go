// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package eventsim

import (
	"strconv"
)

// A Wire is a handle to a boolean signal carrier owned by a Simulator.
// Wires are allocated with NewWire and are only meaningful to the simulator
// that allocated them.
//
type Wire int

type wire struct {
	signal    bool
	reactions []Action
}

// NewWire allocates a new wire. Its signal is initially false.
//
func (s *Simulator) NewWire() Wire {
	s.wires = append(s.wires, wire{})
	return Wire(len(s.wires) - 1)
}

// NewWires allocates n wires. When used as a bus, element 0 is the least
// significant bit.
//
func (s *Simulator) NewWires(n int) []Wire {
	ws := make([]Wire, n)
	for i := range ws {
		ws[i] = s.NewWire()
	}
	return ws
}

// Wires returns the number of wires allocated so far.
//
func (s *Simulator) Wires() int { return len(s.wires) }

func (s *Simulator) wire(w Wire) *wire {
	if w < 0 || int(w) >= len(s.wires) {
		panic("wire " + strconv.Itoa(int(w)) + " does not exist")
	}
	return &s.wires[w]
}

// Signal returns the current signal of wire w.
//
func (s *Simulator) Signal(w Wire) bool {
	return s.wire(w).signal
}

// SetSignal sets the signal of wire w. If the signal changes, all the actions
// registered on w are called in registration order before SetSignal returns.
// Setting a wire to its current value does nothing.
//
func (s *Simulator) SetSignal(w Wire, v bool) {
	p := s.wire(w)
	if p.signal == v {
		return
	}
	p.signal = v
	// p may be invalidated by actions allocating new wires.
	// Actions added during the loop already ran once when registered.
	rs := p.reactions
	for _, a := range rs {
		a(s)
	}
}

// AddAction registers a to be called whenever the signal of w changes, then
// calls it once.
//
func (s *Simulator) AddAction(w Wire, a Action) {
	p := s.wire(w)
	p.reactions = append(p.reactions, a)
	a(s)
}

// Probe reports the signal of w, labeled label, to the simulator's Reporter
// now and every time it changes.
//
func (s *Simulator) Probe(label string, w Wire) {
	s.AddAction(w, func(s *Simulator) {
		s.reporter.Report(label, s.now, s.Signal(w))
	})
}
