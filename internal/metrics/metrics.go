// Package metrics exposes simulation counters to Prometheus. A nil *Recorder is
// valid and records nothing, so callers never need to guard it.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hoopsim"

// Recorder holds the simulation collectors on a private registry
type Recorder struct {
	registry *prometheus.Registry

	gamesSimulated  *prometheus.CounterVec
	gamesSkipped    prometheus.Counter
	possessions     prometheus.Histogram
	overtimeGames   prometheus.Counter
	simDuration     prometheus.Histogram
	seriesCompleted *prometheus.CounterVec
	bracketAdvances *prometheus.CounterVec
}

// NewRecorder registers every collector on a fresh registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		gamesSimulated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_simulated_total",
			Help:      "Games simulated, by whether they were playoff games.",
		}, []string{"playoff"}),
		gamesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_skipped_total",
			Help:      "Scheduled games skipped because they were already played.",
		}),
		possessions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "game_possessions",
			Help:      "Possessions per simulated game, overtime included.",
			Buckets:   prometheus.LinearBuckets(180, 10, 8),
		}),
		overtimeGames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overtime_games_total",
			Help:      "Games that needed at least one overtime period.",
		}),
		simDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "game_simulation_seconds",
			Help:      "Wall time spent simulating one game.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10),
		}),
		seriesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "series_completed_total",
			Help:      "Playoff series completed, by round.",
		}, []string{"round"}),
		bracketAdvances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bracket_advances_total",
			Help:      "Bracket transitions into a round.",
		}, []string{"round"}),
	}

	r.registry.MustRegister(
		r.gamesSimulated,
		r.gamesSkipped,
		r.possessions,
		r.overtimeGames,
		r.simDuration,
		r.seriesCompleted,
		r.bracketAdvances,
	)
	return r
}

// RecordGame tracks one simulated game
func (r *Recorder) RecordGame(playoff bool, possessions, overtimes int, duration time.Duration) {
	if r == nil {
		return
	}
	r.gamesSimulated.WithLabelValues(strconv.FormatBool(playoff)).Inc()
	r.possessions.Observe(float64(possessions))
	if overtimes > 0 {
		r.overtimeGames.Inc()
	}
	r.simDuration.Observe(duration.Seconds())
}

// RecordSkipped tracks games a batch run did not replay
func (r *Recorder) RecordSkipped(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.gamesSkipped.Add(float64(n))
}

// RecordSeriesCompleted tracks a finished playoff series
func (r *Recorder) RecordSeriesCompleted(round string) {
	if r == nil {
		return
	}
	r.seriesCompleted.WithLabelValues(round).Inc()
}

// RecordAdvance tracks the bracket moving into round
func (r *Recorder) RecordAdvance(round string) {
	if r == nil {
		return
	}
	r.bracketAdvances.WithLabelValues(round).Inc()
}

// Registry exposes the underlying registry for scraping or tests
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
