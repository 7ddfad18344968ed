// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuit

import "github.com/db47h/eventsim"

// Int64 returns the signals of a bus as an int64. Wire 0 is lsb.
//
func Int64(s *eventsim.Simulator, bus []eventsim.Wire) int64 {
	var out int64
	for bit, w := range bus {
		if s.Signal(w) {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetInt64 sets the signals of a bus to the given int64 value. Wire 0 is lsb.
//
func SetInt64(s *eventsim.Simulator, bus []eventsim.Wire, v int64) {
	for bit, w := range bus {
		s.SetSignal(w, v&(1<<uint(bit)) != 0)
	}
}
