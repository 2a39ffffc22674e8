package engine

import (
	"math"

	"github.com/avilanova/barcarate/internal/model"
)

// Market value baselines in currency units.
const (
	scoutValueBase  = 2_000_000
	rosterValueBase = 1_000_000
)

// scoutValue estimates a transfer target's market value from season
// statistics, age and the prestige of the selling club.
func (e *Engine) scoutValue(p model.PlayerRecord) int64 {
	value := float64(scoutValueBase)

	value *= 1 +
		float64(p.Stats.Goals)*0.1 +
		float64(p.Stats.Assists)*0.05 +
		float64(p.Stats.Appearances)*0.01

	switch {
	case p.Age <= 23:
		value *= 2.0 // young talent premium
	case p.Age <= 26:
		value *= 1.5
	case p.Age <= 29:
		value *= 1.2
	case p.Age > 32:
		value *= 0.6
	}

	value *= e.tables.prestigeMultiplier(p.Team.ID)

	return int64(math.Round(value))
}

// rosterValue estimates a home squad player's value from the rating the
// roster strategy produced, since no statistics exist for them.
func (e *Engine) rosterValue(p model.PlayerRecord, rating int) int64 {
	value := float64(rosterValueBase)

	value *= float64(rating) / 70

	switch {
	case p.Age <= 25:
		value *= 1.5
	case p.Age <= 28:
		value *= 1.2
	case p.Age > 30:
		value *= 0.8
	}

	return int64(math.Round(value))
}
