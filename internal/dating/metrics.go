package dating

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dating_compatibility_scores",
			Help:    "Distribution of compatibility scores in generated feeds",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	matchesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dating_matches_generated_total",
			Help: "Total number of feed entries generated",
		},
	)

	swipeActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dating_swipe_actions_total",
			Help: "Total number of swipe actions by outcome",
		},
		[]string{"action"},
	)

	conversationsOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dating_conversations_opened_total",
			Help: "Total number of conversations opened from matches",
		},
	)
)

func recordFeed(matches []*MatchResult) {
	matchesGenerated.Add(float64(len(matches)))
	for _, m := range matches {
		compatibilityScores.Observe(float64(m.CompatibilityScore))
	}
}

func recordSwipe(action string) {
	swipeActions.WithLabelValues(action).Inc()
}
