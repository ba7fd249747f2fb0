// Package metrics exports classification counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sarchlab/scasm/core"
)

const namespace = "scasm"

// Recorder counts classified lines. It implements core.Observer.
type Recorder struct {
	lines      *prometheus.CounterVec
	unmatched  prometheus.Counter
	errorSpans *prometheus.CounterVec
}

// NewRecorder creates a recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "lines_total",
			Help:      "Lines classified, by matched opcode.",
		}, []string{"opcode"}),
		unmatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "unmatched_lines_total",
			Help:      "Lines that matched no pattern.",
		}),
		errorSpans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "error_spans_total",
			Help:      "Error spans emitted, by opcode of the line.",
		}, []string{"opcode"}),
	}

	reg.MustRegister(r.lines, r.unmatched, r.errorSpans)

	return r
}

// ObserveLine records one classified line.
func (r *Recorder) ObserveLine(line core.Line) {
	if !line.Matched {
		r.unmatched.Inc()
		r.errorSpans.WithLabelValues("none").Inc()
		return
	}

	opcode := line.Opcode.String()
	r.lines.WithLabelValues(opcode).Inc()

	errs, _ := line.ErrorSpans()
	if len(errs) > 0 {
		r.errorSpans.WithLabelValues(opcode).Add(float64(len(errs)))
	}
}
