package model

import "time"

// MetricType enumerates the five growth dimensions a user can score.
type MetricType string

const (
	MetricResilience MetricType = "resilience"
	MetricLearning   MetricType = "learning"
	MetricChallenge  MetricType = "challenge"
	MetricFeedback   MetricType = "feedback"
	MetricEffort     MetricType = "effort"
)

// MetricTypes lists every valid metric type in analysis order.
var MetricTypes = []MetricType{
	MetricResilience,
	MetricLearning,
	MetricChallenge,
	MetricFeedback,
	MetricEffort,
}

// ValidMetricType reports whether t is one of the five known types.
func ValidMetricType(t MetricType) bool {
	for _, known := range MetricTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Metric is an append-only row in the `metrics` table: a single 1-10
// self-assessment for one type at one point in time.
type Metric struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Type      MetricType `json:"type"`
	Value     int        `json:"value"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MetricTrend is the derived per-type summary over the current 30-day
// window compared against the previous one. It is never persisted.
type MetricTrend struct {
	Type         MetricType `json:"type"`
	Change       float64    `json:"change"` // percentage vs the previous window
	Trend        string     `json:"trend"`  // increasing | decreasing | stable
	AverageValue float64    `json:"averageValue"`
	DataPoints   int        `json:"dataPoints"`
}

// GrowthArea flags a metric type with room to grow. Strength is in [0,1];
// lower strength means more improvement opportunity.
type GrowthArea struct {
	Type        MetricType `json:"type"`
	Strength    float64    `json:"strength"`
	Suggestions []string   `json:"suggestions"`
}

// ProgressAnalysis is the full response of the metrics analyzer.
type ProgressAnalysis struct {
	TimeRange       DateRange                   `json:"timeRange"`
	Metrics         map[MetricType]*MetricTrend `json:"metrics"`
	TopGrowthAreas  []GrowthArea                `json:"topGrowthAreas"`
	OverallGrowth   float64                     `json:"overallGrowth"`
	Insights        []string                    `json:"insights"`
	Recommendations []string                    `json:"recommendations"`
}
