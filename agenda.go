// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package eventsim

// Time is a point in simulated time, or a delay between two such points.
//
type Time int64

// An Action is a callback run by a Simulator, either as a scheduled event or
// as a reaction to a wire's signal change.
//
type Action func(s *Simulator)

// An Event is an Action scheduled to run at a given time.
//
type Event struct {
	Time   Time
	Action Action
}

// Agenda is a list of events kept in non-decreasing time order. Events
// sharing the same time are kept in insertion order.
//
// The zero value is an empty agenda ready to use.
//
type Agenda struct {
	events []Event
	head   int // index of the earliest event
}

// Insert adds e to the agenda, after any event with the same or an earlier
// time.
//
func (a *Agenda) Insert(e Event) {
	i := len(a.events)
	// most events are scheduled in the near future, scan from the tail.
	for i > a.head && a.events[i-1].Time > e.Time {
		i--
	}
	a.events = append(a.events, Event{})
	copy(a.events[i+1:], a.events[i:])
	a.events[i] = e
}

// Pop removes and returns the earliest event. It returns false if the agenda
// is empty.
//
func (a *Agenda) Pop() (Event, bool) {
	if a.Len() == 0 {
		return Event{}, false
	}
	e := a.events[a.head]
	a.events[a.head] = Event{}
	a.head++
	switch {
	case a.head == len(a.events):
		a.events = a.events[:0]
		a.head = 0
	case a.head >= len(a.events)/2:
		// popped slots make up half the slice: move the pending events back
		// to the front so that Insert reuses the storage.
		n := copy(a.events, a.events[a.head:])
		clear(a.events[n:])
		a.events = a.events[:n]
		a.head = 0
	}
	return e, true
}

// Peek returns the earliest event without removing it.
//
func (a *Agenda) Peek() (Event, bool) {
	if a.Len() == 0 {
		return Event{}, false
	}
	return a.events[a.head], true
}

// Len returns the number of pending events.
//
func (a *Agenda) Len() int { return len(a.events) - a.head }
