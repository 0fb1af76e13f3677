// Package metrics provides Prometheus metrics for the terminal interpreter.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UnknownCommand is the label used for every unrecognised command name,
// keeping label cardinality bounded by the command table.
const UnknownCommand = "unknown"

// Collector holds the interpreter metrics and implements shell.Observer.
type Collector struct {
	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	sessionsActive  prometheus.Gauge
	sessionsTotal   prometheus.Counter
}

// NewCollector registers the metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "termfolio_commands_total",
				Help: "Total number of executed input lines",
			},
			[]string{"command", "known"},
		),
		commandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "termfolio_command_duration_seconds",
				Help:    "Command dispatch duration in seconds",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"command"},
		),
		sessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "termfolio_sessions_active",
				Help: "Number of live interpreter sessions",
			},
		),
		sessionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "termfolio_sessions_total",
				Help: "Total number of sessions created",
			},
		),
	}
}

// CommandExecuted records one executed line.
func (c *Collector) CommandExecuted(name string, known bool, elapsed time.Duration) {
	if !known {
		name = UnknownCommand
	}
	c.commandsTotal.WithLabelValues(name, strconv.FormatBool(known)).Inc()
	c.commandDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// SessionOpened records a new session.
func (c *Collector) SessionOpened() {
	c.sessionsActive.Inc()
	c.sessionsTotal.Inc()
}

// SessionClosed records a session being deleted or evicted.
func (c *Collector) SessionClosed() {
	c.sessionsActive.Dec()
}
