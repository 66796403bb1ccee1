package ai

import (
	"strings"

	"github.com/journalup/journal-up/internal/model"
)

// EntryAnalysis is the outcome of scoring a single journal entry.
type EntryAnalysis struct {
	Sentiment        float64                      // [-1, 1]
	SentimentLabel   string                       // positive | neutral | negative
	GrowthIndicators map[model.MetricType]float64 // per type, [0, 10]
}

// Analyzer scores journal entry text. Implementations must be
// deterministic so repeated analysis of the same entry agrees.
type Analyzer interface {
	AnalyzeEntry(content string) EntryAnalysis
}

// LexiconAnalyzer scores text by counting hits against small word lists.
// It is intentionally simple: a stand-in with honest, reproducible output
// until a provider-backed analyzer takes its place.
type LexiconAnalyzer struct{}

var positiveWords = []string{
	"happy", "grateful", "proud", "excited", "calm", "hopeful", "accomplished",
	"confident", "joy", "love", "progress", "succeeded", "better", "energized",
}

var negativeWords = []string{
	"sad", "angry", "anxious", "tired", "frustrated", "worried", "afraid",
	"failed", "stuck", "overwhelmed", "stressed", "worse", "hopeless",
}

// growthLexicon maps each metric type to words that signal it in entry text.
var growthLexicon = map[model.MetricType][]string{
	model.MetricResilience: {"recovered", "bounced", "persisted", "setback", "coped", "endured", "kept going"},
	model.MetricLearning:   {"learned", "studied", "discovered", "understood", "practiced", "read", "course"},
	model.MetricChallenge:  {"challenge", "difficult", "attempted", "pushed", "risk", "tried", "new"},
	model.MetricFeedback:   {"feedback", "advice", "review", "mentor", "suggestion", "asked", "listened"},
	model.MetricEffort:     {"worked", "effort", "focused", "finished", "completed", "dedicated", "consistent"},
}

func countHits(text string, words []string) int {
	n := 0
	for _, w := range words {
		n += strings.Count(text, w)
	}
	return n
}

// AnalyzeEntry scores content. Sentiment is the normalized balance of
// positive vs negative hits; each growth indicator scales hit counts onto
// the same 0-10 range the metrics API uses.
func (LexiconAnalyzer) AnalyzeEntry(content string) EntryAnalysis {
	text := strings.ToLower(content)

	pos := countHits(text, positiveWords)
	neg := countHits(text, negativeWords)
	sentiment := 0.0
	if pos+neg > 0 {
		sentiment = float64(pos-neg) / float64(pos+neg)
	}

	label := "neutral"
	if sentiment > 0.3 {
		label = "positive"
	} else if sentiment < -0.3 {
		label = "negative"
	}

	indicators := make(map[model.MetricType]float64, len(growthLexicon))
	for metricType, words := range growthLexicon {
		hits := countHits(text, words)
		score := float64(hits) * 2.5
		if score > 10 {
			score = 10
		}
		indicators[metricType] = score
	}

	return EntryAnalysis{
		Sentiment:        sentiment,
		SentimentLabel:   label,
		GrowthIndicators: indicators,
	}
}
