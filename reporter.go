// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package eventsim

import (
	"log/slog"
	"strconv"
)

// A Reporter receives the reports of probes set with Simulator.Probe.
//
type Reporter interface {
	Report(label string, t Time, v bool)
}

// ReporterFunc adapts a function to the Reporter interface.
//
type ReporterFunc func(label string, t Time, v bool)

// Report calls f(label, t, v).
//
func (f ReporterFunc) Report(label string, t Time, v bool) { f(label, t, v) }

type logReporter struct {
	log *slog.Logger
}

func (r logReporter) Report(label string, t Time, v bool) {
	r.log.Info("probe", "label", label, "time", t, "value", v)
}

// A Sample is a single probe report.
//
type Sample struct {
	Label string `json:"label"`
	Time  Time   `json:"time"`
	Value bool   `json:"value"`
}

// String returns the sample formatted as "label time New-value = 0|1".
//
func (s Sample) String() string {
	v := "0"
	if s.Value {
		v = "1"
	}
	return s.Label + " " + strconv.FormatInt(int64(s.Time), 10) + " New-value = " + v
}

// Recorder is a Reporter that keeps all probe reports in memory.
//
type Recorder struct {
	samples []Sample
}

// Report implements Reporter.
//
func (r *Recorder) Report(label string, t Time, v bool) {
	r.samples = append(r.samples, Sample{label, t, v})
}

// Samples returns all recorded samples in reporting order.
//
func (r *Recorder) Samples() []Sample { return r.samples }

// Filter returns the samples recorded for the given label.
//
func (r *Recorder) Filter(label string) []Sample {
	var out []Sample
	for _, s := range r.samples {
		if s.Label == label {
			out = append(out, s)
		}
	}
	return out
}

// Last returns the most recent sample for the given label.
//
func (r *Recorder) Last(label string) (Sample, bool) {
	for i := len(r.samples) - 1; i >= 0; i-- {
		if r.samples[i].Label == label {
			return r.samples[i], true
		}
	}
	return Sample{}, false
}

// Reset discards all recorded samples.
//
func (r *Recorder) Reset() { r.samples = nil }
