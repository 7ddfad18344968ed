// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import "github.com/db47h/eventsim"

// Mux installs a multiplexer made of an inverter, two AND gates and an OR
// gate.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(s *eventsim.Simulator, a, b, sel, out eventsim.Wire, d Delays) {
	notSel, w0, w1 := s.NewWire(), s.NewWire(), s.NewWire()
	Inverter(s, sel, notSel, d.Inverter)
	And(s, a, notSel, w0, d.And)
	And(s, b, sel, w1, d.And)
	Or(s, w0, w1, out, d.Or)
}

// MuxDelay returns the longest propagation delay through a Mux.
//
func MuxDelay(d Delays) eventsim.Time {
	return d.Inverter + d.And + d.Or
}
