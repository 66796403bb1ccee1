package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/model"
	"github.com/journalup/journal-up/internal/repository"
)

func newMetricsService(t *testing.T) (*MetricsService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &MetricsService{Metrics: repository.NewMetricsRepo(db)}, mock
}

var metricColumns = []string{"id", "user_id", "type", "value", "notes", "created_at"}

func TestRecordMetricRejectsOutOfRangeValues(t *testing.T) {
	svc, mock := newMetricsService(t)

	for _, value := range []int{0, 11, -1} {
		_, err := svc.RecordMetric(context.Background(), "u1", model.MetricEffort, value, "")
		e := apperr.From(err)
		require.NotNil(t, e, "value %d", value)
		assert.Equal(t, 400, e.Status)
		assert.Equal(t, "VALIDATION_ERROR", e.Code)
	}
	// validation failures never reach the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordMetricRejectsUnknownType(t *testing.T) {
	svc, mock := newMetricsService(t)

	_, err := svc.RecordMetric(context.Background(), "u1", model.MetricType("vibes"), 5, "")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, 400, e.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordMetricAcceptsBoundaryValues(t *testing.T) {
	svc, mock := newMetricsService(t)
	now := time.Now()

	for _, value := range []int{1, 10} {
		mock.ExpectQuery(`INSERT INTO metrics`).
			WithArgs("u1", model.MetricEffort, value, "").
			WillReturnRows(sqlmock.NewRows(metricColumns).
				AddRow("m1", "u1", "effort", value, "", now))

		m, err := svc.RecordMetric(context.Background(), "u1", model.MetricEffort, value, "")
		require.NoError(t, err, "value %d", value)
		assert.Equal(t, value, m.Value)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func metricsOf(metricType model.MetricType, values ...int) []model.Metric {
	out := make([]model.Metric, 0, len(values))
	for _, v := range values {
		out = append(out, model.Metric{UserID: "u1", Type: metricType, Value: v})
	}
	return out
}

func TestCalculateMetricTrendsNoPreviousData(t *testing.T) {
	current := metricsOf(model.MetricEffort, 5, 7)

	trends := calculateMetricTrends(current, nil)
	require.Contains(t, trends, model.MetricEffort)

	effort := trends[model.MetricEffort]
	assert.Equal(t, 6.0, effort.AverageValue)
	assert.Equal(t, 0.0, effort.Change)
	assert.Equal(t, "stable", effort.Trend)
	assert.Equal(t, 2, effort.DataPoints)
}

func TestCalculateMetricTrendsIncreasing(t *testing.T) {
	current := metricsOf(model.MetricLearning, 8)
	previous := metricsOf(model.MetricLearning, 5)

	trends := calculateMetricTrends(current, previous)
	learning := trends[model.MetricLearning]
	require.NotNil(t, learning)
	assert.Equal(t, 60.0, learning.Change)
	assert.Equal(t, "increasing", learning.Trend)
}

func TestCalculateMetricTrendsDecreasing(t *testing.T) {
	current := metricsOf(model.MetricChallenge, 4)
	previous := metricsOf(model.MetricChallenge, 8)

	trends := calculateMetricTrends(current, previous)
	challenge := trends[model.MetricChallenge]
	require.NotNil(t, challenge)
	assert.Equal(t, -50.0, challenge.Change)
	assert.Equal(t, "decreasing", challenge.Trend)
}

func TestCalculateMetricTrendsWithinDeadbandIsStable(t *testing.T) {
	current := metricsOf(model.MetricFeedback, 10, 10)
	previous := metricsOf(model.MetricFeedback, 10)

	trends := calculateMetricTrends(current, previous)
	assert.Equal(t, "stable", trends[model.MetricFeedback].Trend)
}

func TestCalculateMetricTrendsSkipsTypesWithoutCurrentData(t *testing.T) {
	previous := metricsOf(model.MetricEffort, 5)

	trends := calculateMetricTrends(nil, previous)
	assert.Empty(t, trends)
}

func TestStrengthClamps(t *testing.T) {
	high := &model.MetricTrend{AverageValue: 10, Trend: "increasing"}
	assert.Equal(t, 1.0, strength(high))

	low := &model.MetricTrend{AverageValue: 1, Trend: "decreasing"}
	assert.Equal(t, 0.0, strength(low))

	mid := &model.MetricTrend{AverageValue: 5.5, Trend: "stable"}
	assert.InDelta(t, 0.5, strength(mid), 0.001)
}

func TestCalculateGrowthAreasKeepsThreeWeakest(t *testing.T) {
	trends := map[model.MetricType]*model.MetricTrend{
		model.MetricResilience: {Type: model.MetricResilience, AverageValue: 9, Trend: "stable"},
		model.MetricLearning:   {Type: model.MetricLearning, AverageValue: 2, Trend: "stable"},
		model.MetricChallenge:  {Type: model.MetricChallenge, AverageValue: 5, Trend: "stable"},
		model.MetricFeedback:   {Type: model.MetricFeedback, AverageValue: 7, Trend: "stable"},
		model.MetricEffort:     {Type: model.MetricEffort, AverageValue: 3, Trend: "stable"},
	}

	areas := calculateGrowthAreas(trends)
	require.Len(t, areas, 3)
	assert.Equal(t, model.MetricLearning, areas[0].Type)
	assert.Equal(t, model.MetricEffort, areas[1].Type)
	assert.Equal(t, model.MetricChallenge, areas[2].Type)
	for _, area := range areas {
		assert.Len(t, area.Suggestions, 3)
	}
}

func TestCalculateGrowthAreasFewerTypes(t *testing.T) {
	trends := map[model.MetricType]*model.MetricTrend{
		model.MetricEffort: {Type: model.MetricEffort, AverageValue: 5, Trend: "stable"},
	}
	areas := calculateGrowthAreas(trends)
	assert.Len(t, areas, 1)
}

func TestCalculateOverallGrowth(t *testing.T) {
	assert.Equal(t, 0.0, calculateOverallGrowth(nil))

	trends := map[model.MetricType]*model.MetricTrend{
		model.MetricEffort:   {AverageValue: 10, Trend: "stable"},
		model.MetricLearning: {AverageValue: 1, Trend: "stable"},
	}
	assert.InDelta(t, 0.5, calculateOverallGrowth(trends), 0.001)
}

func TestParseNarrative(t *testing.T) {
	narrative := "You are growing steadily.\n- Keep at it.\nRECOMMENDATIONS:\n- Try harder challenges\n- Ask for feedback\n"

	insights, recommendations := parseNarrative(narrative)
	assert.Equal(t, []string{"You are growing steadily.", "Keep at it."}, insights)
	assert.Equal(t, []string{"Try harder challenges", "Ask for feedback"}, recommendations)
}

func TestParseNarrativeWithoutDivider(t *testing.T) {
	insights, recommendations := parseNarrative("just some text")
	assert.Equal(t, []string{"just some text"}, insights)
	assert.Empty(t, recommendations)
}

func TestStaticInsightsSkipsStableTrends(t *testing.T) {
	trends := map[model.MetricType]*model.MetricTrend{
		model.MetricEffort:   {Type: model.MetricEffort, Change: 2, Trend: "stable"},
		model.MetricLearning: {Type: model.MetricLearning, Change: 25, Trend: "increasing"},
		model.MetricFeedback: {Type: model.MetricFeedback, Change: -10, Trend: "decreasing"},
	}

	insights := staticInsights(trends)
	require.Len(t, insights, 2)
	assert.Contains(t, insights[0], "significantly improved")
	assert.Contains(t, insights[1], "slightly decreased")
}

func TestStaticRecommendationsTakesTwoPerArea(t *testing.T) {
	areas := []model.GrowthArea{
		{Type: model.MetricEffort, Suggestions: growthSuggestions[model.MetricEffort]},
		{Type: model.MetricLearning, Suggestions: growthSuggestions[model.MetricLearning]},
	}
	recs := staticRecommendations(areas)
	assert.Len(t, recs, 4)
}
