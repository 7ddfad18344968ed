// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package eventsim

import (
	"sort"
	"strconv"
)

// A Board maps wire names to the wires of a Simulator. It is a convenience
// for building and probing circuits by name; the simulator itself only deals
// with Wire handles.
//
type Board struct {
	m map[string]Wire
	s *Simulator
}

// NewBoard returns an empty board that allocates its wires in s.
//
func NewBoard(s *Simulator) *Board {
	return &Board{m: make(map[string]Wire), s: s}
}

// Simulator returns the simulator the board allocates its wires in.
//
func (b *Board) Simulator() *Simulator { return b.s }

// Wire returns the wire with the given name.
// This function panics if the wire does not exist.
//
func (b *Board) Wire(name string) Wire {
	w, ok := b.m[name]
	if !ok {
		panic("wire " + name + " does not exist")
	}
	return w
}

// WireOrNew returns the wire with the given name.
// If no such wire exists a new one is allocated.
//
func (b *Board) WireOrNew(name string) Wire {
	w, ok := b.m[name]
	if !ok {
		w = b.s.NewWire()
		b.m[name] = w
	}
	return w
}

// NewBus allocates a bus of n wires named name[0] to name[n-1]. Wires that
// already exist are reused.
//
func (b *Board) NewBus(name string, n int) []Wire {
	out := make([]Wire, n)
	for i := range out {
		out[i] = b.WireOrNew(BusPinName(name, i))
	}
	return out
}

// Bus returns the wires of the bus with the given name.
// This function panics if the bus does not exist.
//
func (b *Board) Bus(name string) []Wire {
	out := make([]Wire, 0)
	i := 0
	for {
		w, ok := b.m[BusPinName(name, i)]
		if !ok {
			break
		}
		out = append(out, w)
		i++
	}
	if len(out) == 0 {
		panic("bus " + name + " does not exist")
	}
	return out
}

// Names returns the sorted list of wire names.
//
func (b *Board) Names() []string {
	ns := make([]string, 0, len(b.m))
	for n := range b.m {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Probe sets a probe on the named wire, using its name as label.
//
func (b *Board) Probe(name string) {
	b.s.Probe(name, b.Wire(name))
}

// BusPinName returns the pin name for the n-th bit of the given bus name.
//
func BusPinName(bus string, bit int) string {
	return bus + "[" + strconv.Itoa(bit) + "]"
}
