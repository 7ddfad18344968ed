// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package eventsim

import (
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNegativeDelay is returned when scheduling an action in the past.
	ErrNegativeDelay = errors.New("negative delay")
	// ErrStepLimit is returned by Run and RunUntil when the number of events
	// executed in a single run exceeds the limit set with WithMaxSteps.
	ErrStepLimit = errors.New("step limit exceeded")
	// ErrTimeOverflow is returned when the scheduled time does not fit in a Time.
	ErrTimeOverflow = errors.New("time overflow")
)

// Simulator is a discrete-event simulation session. It owns the agenda, the
// simulation clock and all the wires created with NewWire.
//
type Simulator struct {
	id       uuid.UUID
	now      Time
	agenda   Agenda
	wires    []wire
	log      *slog.Logger
	reporter Reporter
	maxSteps uint64
	steps    uint64
	idle     bool // the last run drained the agenda
}

// An Option configures a Simulator.
//
type Option func(s *Simulator)

// WithLogger sets the logger used by the simulator. The default is
// slog.Default().
//
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// WithReporter sets the Reporter that receives probe reports. The default
// reporter logs them at Info level.
//
func WithReporter(r Reporter) Option {
	return func(s *Simulator) { s.reporter = r }
}

// WithMaxSteps limits the number of events executed by a single call to Run
// or RunUntil. A circuit with a zero-delay feedback loop never drains its
// agenda, this is a guard against such circuits. 0 means no limit.
//
func WithMaxSteps(n uint64) Option {
	return func(s *Simulator) { s.maxSteps = n }
}

// WithID forces the simulator's ID. By default, a random UUID is used.
//
func WithID(id uuid.UUID) Option {
	return func(s *Simulator) { s.id = id }
}

// New returns a new Simulator at time 0 with an empty agenda.
//
func New(opts ...Option) *Simulator {
	s := &Simulator{idle: true}
	for _, o := range opts {
		o(s)
	}
	if s.id == uuid.Nil {
		s.id = uuid.New()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With("sim", s.id.String())
	if s.reporter == nil {
		s.reporter = logReporter{s.log}
	}
	return s
}

// ID returns the simulator's ID. It is attached to every log record.
//
func (s *Simulator) ID() uuid.UUID { return s.id }

// Now returns the current simulation time: the time of the most recently
// executed event, or 0 if no event has run yet.
//
func (s *Simulator) Now() Time { return s.now }

// Pending returns the number of events in the agenda.
//
func (s *Simulator) Pending() int { return s.agenda.Len() }

// Steps returns the number of events executed by the last (or current) call
// to Run, RunUntil or the current sequence of Step calls.
//
func (s *Simulator) Steps() uint64 { return s.steps }

// Schedule schedules a to run after the given delay, relative to the current
// simulation time. Actions scheduled for the same time run in the order they
// were scheduled.
//
func (s *Simulator) Schedule(delay Time, a Action) error {
	if delay < 0 {
		return errors.Wrapf(ErrNegativeDelay, "schedule at %d%+d", s.now, delay)
	}
	if delay > math.MaxInt64-s.now {
		return errors.Wrapf(ErrTimeOverflow, "schedule at %d%+d", s.now, delay)
	}
	s.agenda.Insert(Event{Time: s.now + delay, Action: a})
	return nil
}

// AfterDelay is like Schedule but panics if delay is negative or if the
// resulting time overflows.
//
func (s *Simulator) AfterDelay(delay Time, a Action) {
	if err := s.Schedule(delay, a); err != nil {
		panic(err)
	}
}

// Run executes scheduled events until the agenda is empty. Events scheduled
// by running actions are executed within the same run.
//
// Run does not return if the circuit contains a feedback loop with no
// propagation delay, unless a step limit has been set with WithMaxSteps.
//
func (s *Simulator) Run() error {
	return s.run(func(Time) bool { return true })
}

// RunUntil is like Run but stops before executing events scheduled after
// limit. Once it returns, the simulation time is limit, unless it was already
// past it.
//
func (s *Simulator) RunUntil(limit Time) error {
	if err := s.run(func(t Time) bool { return t <= limit }); err != nil {
		return err
	}
	if s.now < limit {
		s.now = limit
	}
	return nil
}

// Step executes the earliest event in the agenda. It returns false if the
// agenda is empty.
//
func (s *Simulator) Step() bool {
	e, ok := s.agenda.Pop()
	if !ok {
		s.idle = true
		return false
	}
	if s.idle {
		s.steps = 0
	}
	s.exec(e)
	s.idle = s.agenda.Len() == 0
	return true
}

func (s *Simulator) run(before func(Time) bool) error {
	if s.agenda.Len() == 0 {
		return nil
	}
	s.steps = 0
	if s.idle {
		s.idle = false
		s.AfterDelay(0, func(s *Simulator) {
			s.log.Info("simulation started", "time", s.now)
		})
	}
	for {
		e, ok := s.agenda.Peek()
		if !ok {
			break
		}
		if !before(e.Time) {
			return nil
		}
		if s.maxSteps > 0 && s.steps >= s.maxSteps {
			return errors.Wrapf(ErrStepLimit, "%d events executed, now at %d, %d pending", s.steps, s.now, s.agenda.Len())
		}
		s.agenda.Pop()
		s.exec(e)
	}
	s.idle = true
	s.log.Debug("simulation drained", "time", s.now, "steps", s.steps)
	return nil
}

func (s *Simulator) exec(e Event) {
	s.now = e.Time
	s.steps++
	s.log.Debug("event", "time", e.Time)
	e.Action(s)
}
