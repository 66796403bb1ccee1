package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/journalup/journal-up/internal/ai"
	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/model"
	"github.com/journalup/journal-up/internal/repository"
)

const analysisWindow = 30 * 24 * time.Hour

// trendDeadband is the percent-change band treated as "stable".
const trendDeadband = 5.0

// MetricsService records growth metrics and derives trend analysis over
// two fixed 30-day windows. AI may be an ai.Disabled client; analysis then
// falls back to locally generated insight text.
type MetricsService struct {
	Metrics *repository.MetricsRepo
	AI      ai.Client
}

// RecordMetric appends a single self-assessment. Values outside 1-10 and
// unknown types are Validation errors; there is no dedup or rate limit.
func (s *MetricsService) RecordMetric(ctx context.Context, userID string, metricType model.MetricType, value int, notes string) (model.Metric, error) {
	if !model.ValidMetricType(metricType) {
		return model.Metric{}, apperr.Validation("unknown metric type")
	}
	if value < 1 || value > 10 {
		return model.Metric{}, apperr.Validation("metric value must be between 1 and 10")
	}
	return s.Metrics.Record(ctx, userID, metricType, value, notes)
}

// GetMetrics returns the user's metrics, optionally restricted to an
// inclusive time range, ordered by creation time ascending.
func (s *MetricsService) GetMetrics(ctx context.Context, userID string, timeRange *model.DateRange) ([]model.Metric, error) {
	var start, end *time.Time
	if timeRange != nil {
		start, end = &timeRange.Start, &timeRange.End
	}
	return s.Metrics.List(ctx, userID, start, end)
}

// AnalyzeProgress compares the last 30 days of metrics with the 30 days
// before and derives per-type trends, ranked growth areas and an overall
// growth score, plus narrative insights (AI-generated when available).
func (s *MetricsService) AnalyzeProgress(ctx context.Context, userID string) (model.ProgressAnalysis, error) {
	now := time.Now().UTC()
	current := model.DateRange{Start: now.Add(-analysisWindow), End: now}
	previous := model.DateRange{Start: current.Start.Add(-analysisWindow), End: current.Start}

	currentMetrics, err := s.GetMetrics(ctx, userID, &current)
	if err != nil {
		return model.ProgressAnalysis{}, err
	}
	previousMetrics, err := s.GetMetrics(ctx, userID, &previous)
	if err != nil {
		return model.ProgressAnalysis{}, err
	}

	trends := calculateMetricTrends(currentMetrics, previousMetrics)
	growthAreas := calculateGrowthAreas(trends)
	overall := calculateOverallGrowth(trends)

	insights, recommendations, err := s.generateInsights(ctx, trends, growthAreas)
	if err != nil {
		return model.ProgressAnalysis{}, err
	}

	return model.ProgressAnalysis{
		TimeRange:       current,
		Metrics:         trends,
		TopGrowthAreas:  growthAreas,
		OverallGrowth:   overall,
		Insights:        insights,
		Recommendations: recommendations,
	}, nil
}

// calculateMetricTrends builds the per-type trend table. Types with no
// data in the current window are skipped entirely. With no prior-window
// data the previous average defaults to the current one, which reads as a
// deliberate 0% change rather than an undefined trend.
func calculateMetricTrends(currentMetrics, previousMetrics []model.Metric) map[model.MetricType]*model.MetricTrend {
	trends := make(map[model.MetricType]*model.MetricTrend)

	for _, metricType := range model.MetricTypes {
		currentSum, currentCount := sumByType(currentMetrics, metricType)
		if currentCount == 0 {
			continue
		}
		currentAvg := currentSum / float64(currentCount)

		previousAvg := currentAvg
		if previousSum, previousCount := sumByType(previousMetrics, metricType); previousCount > 0 {
			previousAvg = previousSum / float64(previousCount)
		}

		change := 0.0
		if previousAvg != 0 {
			change = (currentAvg - previousAvg) / previousAvg * 100
		}

		trend := "stable"
		if change > trendDeadband {
			trend = "increasing"
		} else if change < -trendDeadband {
			trend = "decreasing"
		}

		trends[metricType] = &model.MetricTrend{
			Type:         metricType,
			Change:       round2(change),
			Trend:        trend,
			AverageValue: round2(currentAvg),
			DataPoints:   currentCount,
		}
	}
	return trends
}

func sumByType(metrics []model.Metric, metricType model.MetricType) (sum float64, count int) {
	for _, m := range metrics {
		if m.Type == metricType {
			sum += float64(m.Value)
			count++
		}
	}
	return sum, count
}

// strength normalizes the 1-10 average onto [0,1] and nudges it by the
// trend direction, clamped to [0,1].
func strength(t *model.MetricTrend) float64 {
	normalized := (t.AverageValue - 1) / 9
	switch t.Trend {
	case "increasing":
		normalized += 0.1
	case "decreasing":
		normalized -= 0.1
	}
	return clamp01(normalized)
}

// calculateGrowthAreas ranks every observed type by strength ascending and
// keeps the 3 weakest: the areas with the most room to grow.
func calculateGrowthAreas(trends map[model.MetricType]*model.MetricTrend) []model.GrowthArea {
	areas := make([]model.GrowthArea, 0, len(trends))
	for metricType, trend := range trends {
		areas = append(areas, model.GrowthArea{
			Type:        metricType,
			Strength:    strength(trend),
			Suggestions: growthSuggestions[metricType],
		})
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].Strength < areas[j].Strength })
	if len(areas) > 3 {
		areas = areas[:3]
	}
	return areas
}

// calculateOverallGrowth averages every per-type strength term, clamped.
func calculateOverallGrowth(trends map[model.MetricType]*model.MetricTrend) float64 {
	if len(trends) == 0 {
		return 0
	}
	total := 0.0
	for _, trend := range trends {
		normalized := (trend.AverageValue - 1) / 9
		switch trend.Trend {
		case "increasing":
			normalized += 0.1
		case "decreasing":
			normalized -= 0.1
		}
		total += normalized
	}
	return clamp01(total / float64(len(trends)))
}

// growthSuggestions is the static per-type improvement table.
var growthSuggestions = map[model.MetricType][]string{
	model.MetricResilience: {
		"Practice mindfulness meditation to build emotional resilience",
		"Keep a resilience journal to track challenges and victories",
		"Develop a support network for difficult times",
	},
	model.MetricLearning: {
		"Set specific learning goals for each week",
		"Try new learning methods or resources",
		"Share your knowledge with others to reinforce learning",
	},
	model.MetricChallenge: {
		"Take on one new challenge each week",
		"Break down big challenges into smaller steps",
		"Celebrate small victories along the way",
	},
	model.MetricFeedback: {
		"Seek feedback from trusted peers or mentors",
		"Reflect on feedback to identify areas for improvement",
		"Act on feedback to make positive changes",
	},
	model.MetricEffort: {
		"Set realistic goals and deadlines",
		"Break tasks into smaller, manageable chunks",
		"Use a task list or planner to stay organized",
	},
}

// generateInsights asks the AI collaborator for narrative insight text.
// When AI is disabled the locally derived fallback is used; any other
// failure surfaces as a generic service error, never retried.
func (s *MetricsService) generateInsights(ctx context.Context, trends map[model.MetricType]*model.MetricTrend, growthAreas []model.GrowthArea) (insights, recommendations []string, err error) {
	if s.AI == nil {
		return staticInsights(trends), staticRecommendations(growthAreas), nil
	}
	narrative, aiErr := s.AI.GenerateNarrative(ctx, buildAnalysisPrompt(trends, growthAreas))
	if aiErr != nil {
		if aiErr == ai.ErrDisabled {
			return staticInsights(trends), staticRecommendations(growthAreas), nil
		}
		log.Printf("metrics: ai narrative failed: %v", aiErr)
		return nil, nil, apperr.Internal("METRICS_ERROR", "failed to analyze metrics")
	}
	insights, recommendations = parseNarrative(narrative)
	return insights, recommendations, nil
}

// buildAnalysisPrompt summarizes trends and growth areas for the AI call.
func buildAnalysisPrompt(trends map[model.MetricType]*model.MetricTrend, growthAreas []model.GrowthArea) string {
	var b strings.Builder
	b.WriteString("Based on the user's growth metrics:\n")
	for _, metricType := range model.MetricTypes {
		if t, ok := trends[metricType]; ok {
			fmt.Fprintf(&b, "- %s: %s (%.2f%% change)\n", t.Type, t.Trend, t.Change)
		}
	}
	b.WriteString("\nAnd their top growth areas:\n")
	for _, area := range growthAreas {
		fmt.Fprintf(&b, "- %s (strength: %.0f%%)\n", area.Type, area.Strength*100)
	}
	b.WriteString("\nPlease provide:\n1. Key insights about their growth journey\n")
	b.WriteString("2. Specific recommendations for improvement\n\n")
	b.WriteString("Format your response as:\n[insights]\nRECOMMENDATIONS:\n[recommendations]")
	return b.String()
}

// parseNarrative splits the AI response on the RECOMMENDATIONS: divider
// and strips list bullets from both halves.
func parseNarrative(narrative string) (insights, recommendations []string) {
	parts := strings.SplitN(narrative, "RECOMMENDATIONS:", 2)
	insights = splitLines(parts[0])
	if len(parts) == 2 {
		recommendations = splitLines(parts[1])
	}
	return insights, recommendations
}

func splitLines(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// staticInsights describes every trend that left the deadband.
func staticInsights(trends map[model.MetricType]*model.MetricTrend) []string {
	insights := make([]string, 0, len(trends))
	for _, metricType := range model.MetricTypes {
		t, ok := trends[metricType]
		if !ok || math.Abs(t.Change) <= trendDeadband {
			continue
		}
		direction := "decreased"
		if t.Trend == "increasing" {
			direction = "improved"
		}
		magnitude := "slightly"
		if math.Abs(t.Change) > 20 {
			magnitude = "significantly"
		}
		insights = append(insights, fmt.Sprintf("Your %s has %s %s (%.2f%% change).",
			t.Type, magnitude, direction, math.Abs(t.Change)))
	}
	return insights
}

// staticRecommendations picks the first two suggestions per growth area.
func staticRecommendations(growthAreas []model.GrowthArea) []string {
	recs := make([]string, 0, 2*len(growthAreas))
	for _, area := range growthAreas {
		suggestions := area.Suggestions
		if len(suggestions) > 2 {
			suggestions = suggestions[:2]
		}
		recs = append(recs, suggestions...)
	}
	return recs
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }
