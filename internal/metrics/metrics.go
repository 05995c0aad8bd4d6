package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query pipeline Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "odorsource",
			Name:      "queries_total",
			Help:      "Total number of processed queries by outcome",
		},
		[]string{"outcome"},
	)

	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "odorsource",
			Name:      "query_duration_seconds",
			Help:      "Query pipeline duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	ExtractionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "odorsource",
			Name:      "extraction_total",
			Help:      "Successful location extractions by cascade stage",
		},
		[]string{"stage"},
	)

	GeocodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "odorsource",
			Name:      "geocode_total",
			Help:      "Geocoding lookups by result",
		},
		[]string{"result"}, // "ok" / "no_match" / "error" / "cache_hit"
	)
)

var registered bool

// Register registers query pipeline metrics. Must be called once from main.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(ExtractionTotal)
	prometheus.MustRegister(GeocodeTotal)
	registered = true
}
