/*
Package eventsim provides a discrete-event simulator and the primitives needed
to model digital circuits on top of it.

A Simulator owns a time-ordered agenda of pending actions and an arena of
wires. A wire carries a boolean signal and a list of reactions that run every
time the signal changes. Gates (see package circuit) install reactions on
their inputs that schedule delayed writes to their outputs, so that running
the agenda propagates signal changes through the circuit with accurate
propagation delays:

	s := eventsim.New()
	in, out := s.NewWire(), s.NewWire()
	circuit.Inverter(s, in, out, 2)
	s.Probe("out", out)
	s.SetSignal(in, true)
	s.Run()

Simulated time is purely logical. Actions run one at a time, to completion,
in non-decreasing time order; actions scheduled for the same time run in the
order they were scheduled. A Simulator is not safe for concurrent use, but
independent simulators do not share any state.

*/
package eventsim
