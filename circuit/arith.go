// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import (
	"github.com/db47h/eventsim"
	"github.com/pkg/errors"
)

// HalfAdder installs a half adder.
//
//	Inputs: a, b
//	Outputs: sum, carry
//	Function: sum = lsb(a + b)
//	          carry = msb(a + b)
//
func HalfAdder(s *eventsim.Simulator, a, b, sum, carry eventsim.Wire, d Delays) {
	d1, e := s.NewWire(), s.NewWire()
	Or(s, a, b, d1, d.Or)
	And(s, a, b, carry, d.And)
	Inverter(s, carry, e, d.Inverter)
	And(s, d1, e, sum, d.And)
}

// FullAdder installs a full adder.
//
//	Inputs: a, b, cin
//	Outputs: sum, cout
//	Function: sum = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(s *eventsim.Simulator, a, b, cin, sum, cout eventsim.Wire, d Delays) {
	s1, c1, c2 := s.NewWire(), s.NewWire(), s.NewWire()
	HalfAdder(s, b, cin, s1, c1, d)
	HalfAdder(s, a, s1, sum, c2, d)
	Or(s, c1, c2, cout, d.Or)
}

// RippleCarryAdder installs an N-bits adder made of N chained full adders.
// All buses must have the same, non zero, width.
//
//	Inputs: a[bits], b[bits], cin
//	Outputs: sum[bits], cout
//	Function: sum = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func RippleCarryAdder(s *eventsim.Simulator, a, b []eventsim.Wire, cin eventsim.Wire, sum []eventsim.Wire, cout eventsim.Wire, d Delays) error {
	bits := len(a)
	if bits == 0 {
		return errors.New("empty bus")
	}
	if len(b) != bits || len(sum) != bits {
		return errors.Errorf("bus width mismatch: a[%d], b[%d], sum[%d]", len(a), len(b), len(sum))
	}
	c := cin
	for i := 0; i < bits; i++ {
		co := cout
		if i < bits-1 {
			co = s.NewWire()
		}
		FullAdder(s, a[i], b[i], c, sum[i], co, d)
		c = co
	}
	return nil
}

// HalfAdderDelay returns the longest propagation delay from any input of a
// HalfAdder to its sum and carry outputs.
//
func HalfAdderDelay(d Delays) (sum, carry eventsim.Time) {
	return max(d.Or, d.And+d.Inverter) + d.And, d.And
}

// FullAdderDelay returns the longest propagation delay from any input of a
// FullAdder to its sum and cout outputs.
//
func FullAdderDelay(d Delays) (sum, cout eventsim.Time) {
	hs, hc := HalfAdderDelay(d)
	return 2 * hs, hs + hc + d.Or
}

// RippleCarryDelay returns the longest propagation delay from any input of
// a RippleCarryAdder of the given width to any of its outputs.
//
func RippleCarryDelay(bits int, d Delays) eventsim.Time {
	if bits <= 0 {
		return 0
	}
	// the carry in of each stage goes through both half adders.
	fs, fc := FullAdderDelay(d)
	n := eventsim.Time(bits)
	return max((n-1)*fc+fs, n*fc)
}
