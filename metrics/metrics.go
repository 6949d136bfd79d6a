package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "kext"

// Collector groups the solver instruments.
type Collector struct {
	runs     *prometheus.CounterVec
	subsets  prometheus.Counter
	trials   prometheus.Counter
	duration *prometheus.HistogramVec
	lastCost *prometheus.GaugeVec
}

// NewCollector creates and registers the instruments on reg.
// Registering twice on the same registry panics, as with promauto.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		// runs counts finished solver runs by algorithm and status
		// ("optimal", "approximate", "aborted", "infeasible", "error").
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Solver runs by algorithm and outcome",
		}, []string{"algorithm", "status"}),

		subsets: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "exact_subsets_evaluated_total",
			Help:      "k-subsets scored by the exact search",
		}),

		trials: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "approx_trials_total",
			Help:      "Randomized trial mappings built by the approximate search",
		}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Solver wall time",
			Buckets:   []float64{0.001, 0.01, 0.1, 1, 10, 60, 600},
		}, []string{"algorithm"}),

		lastCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_cost",
			Help:      "Combined cost of the most recent solution",
		}, []string{"algorithm"}),
	}
}

// ObserveRun records one finished run. cost < 0 leaves the cost gauge alone.
func (c *Collector) ObserveRun(algorithm, status string, elapsed time.Duration, cost int) {
	if c == nil {
		return
	}
	c.runs.WithLabelValues(algorithm, status).Inc()
	c.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if cost >= 0 {
		c.lastCost.WithLabelValues(algorithm).Set(float64(cost))
	}
}

// AddSubsets adds n to the evaluated-subset counter.
func (c *Collector) AddSubsets(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.subsets.Add(float64(n))
}

// AddTrials adds n to the trial counter.
func (c *Collector) AddTrials(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.trials.Add(float64(n))
}
