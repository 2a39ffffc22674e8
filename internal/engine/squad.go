package engine

import (
	"math"

	"github.com/avilanova/barcarate/internal/model"
)

// Squad analysis thresholds.
const (
	weakGroupRating   = 78 // below this a group is flagged
	lowGroupRating    = 75 // below this the reason is the rating itself
	highPriorityLimit = 70 // below this a flagged group is high priority
	minGroupDepth     = 2  // fewer incumbents than this flags the group
	summarySampleSize = 3  // representative players per group
)

// SummarizeSquad aggregates one roster of rated players into per-position
// summaries, flags weak groups and computes the team-wide totals.
func (e *Engine) SummarizeSquad(players []model.RatedPlayer) model.SquadReport {
	summaries := make([]model.PositionSummary, 0, len(model.Positions()))
	for _, pos := range model.Positions() {
		summaries = append(summaries, e.summarizePosition(pos, players))
	}

	return model.SquadReport{
		OverallRating:    averageRating(players),
		PositionAnalysis: summaries,
		ImprovementAreas: e.improvementAreas(summaries),
		TotalPlayers:     len(players),
		AverageAge:       averageAge(players),
		TotalValue:       totalValue(players),
	}
}

func (e *Engine) summarizePosition(pos model.Position, players []model.RatedPlayer) model.PositionSummary {
	var group []model.RatedPlayer
	for _, p := range players {
		if p.Position == pos {
			group = append(group, p)
		}
	}

	avg := 0.0
	if len(group) > 0 {
		sum := 0
		for _, p := range group {
			sum += p.Rating
		}
		avg = round1(float64(sum) / float64(len(group)))
	}

	sample := group
	if len(sample) > summarySampleSize {
		sample = sample[:summarySampleSize]
	}

	return model.PositionSummary{
		Position:         pos,
		Count:            len(group),
		AverageRating:    avg,
		Players:          sample,
		NeedsImprovement: avg < weakGroupRating || len(group) < minGroupDepth,
	}
}

// improvementAreas turns flagged summaries into prioritized scouting
// advice. Reason precedence: a low average outranks thin depth, which
// outranks the generic quality nudge.
func (e *Engine) improvementAreas(summaries []model.PositionSummary) []model.ImprovementArea {
	areas := make([]model.ImprovementArea, 0, len(summaries))
	for _, s := range summaries {
		if !s.NeedsImprovement {
			continue
		}

		// An empty group has no average worth judging, so depth wins there.
		reason := "needs quality improvement"
		switch {
		case s.Count == 0:
			reason = "insufficient squad depth"
		case s.AverageRating < lowGroupRating:
			reason = "low average rating"
		case s.Count < minGroupDepth:
			reason = "insufficient squad depth"
		}

		priority := "medium"
		if s.AverageRating < highPriorityLimit {
			priority = "high"
		}

		suggestion, ok := e.tables.Suggestions[s.Position]
		if !ok {
			suggestion = "assess current squad quality"
		}

		areas = append(areas, model.ImprovementArea{
			Position:   s.Position,
			Priority:   priority,
			Reason:     reason,
			Suggestion: suggestion,
		})
	}
	return areas
}

func averageRating(players []model.RatedPlayer) float64 {
	if len(players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range players {
		sum += p.Rating
	}
	return round1(float64(sum) / float64(len(players)))
}

func averageAge(players []model.RatedPlayer) float64 {
	if len(players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range players {
		sum += p.Age
	}
	return round1(float64(sum) / float64(len(players)))
}

func totalValue(players []model.RatedPlayer) int64 {
	var total int64
	for _, p := range players {
		total += p.MarketValue
	}
	return total
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
