// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import (
	"io"
	"os"

	"github.com/db47h/eventsim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Delays holds the propagation delays of the primitive gates used by
// composite circuits.
//
type Delays struct {
	Inverter eventsim.Time `yaml:"inverter_delay"`
	And      eventsim.Time `yaml:"and_gate_delay"`
	Or       eventsim.Time `yaml:"or_gate_delay"`
}

// DefaultDelays returns the default gate delays: 2 for inverters, 3 for AND
// gates and 5 for OR gates.
//
func DefaultDelays() Delays {
	return Delays{Inverter: 2, And: 3, Or: 5}
}

// Validate returns an error if any delay is negative.
//
func (d Delays) Validate() error {
	switch {
	case d.Inverter < 0:
		return errors.Errorf("negative inverter delay %d", d.Inverter)
	case d.And < 0:
		return errors.Errorf("negative and gate delay %d", d.And)
	case d.Or < 0:
		return errors.Errorf("negative or gate delay %d", d.Or)
	}
	return nil
}

// ParseDelays reads gate delays from YAML data:
//
//	inverter_delay: 2
//	and_gate_delay: 3
//	or_gate_delay: 5
//
// Missing keys keep their default value.
//
func ParseDelays(r io.Reader) (Delays, error) {
	d := DefaultDelays()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && err != io.EOF {
		return Delays{}, errors.Wrap(err, "decode delays")
	}
	if err := d.Validate(); err != nil {
		return Delays{}, err
	}
	return d, nil
}

// LoadDelays reads gate delays from the named YAML file. See ParseDelays.
//
func LoadDelays(name string) (Delays, error) {
	f, err := os.Open(name)
	if err != nil {
		return Delays{}, errors.Wrap(err, "load delays")
	}
	defer f.Close()
	d, err := ParseDelays(f)
	if err != nil {
		return Delays{}, errors.Wrap(err, name)
	}
	return d, nil
}
