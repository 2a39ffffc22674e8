package engine

import (
	"hash/fnv"
	"math"

	"github.com/avilanova/barcarate/internal/model"
)

// Rating bounds shared by both strategies.
const (
	ratingFloor = 50
	ratingCeil  = 95
)

// RatingStrategy converts a raw player record into a quality rating on
// the [50, 95] scale. Two strategies exist because the upstream exposes
// two very different input shapes: scouted transfer targets come with a
// full statistics block, while squad listings for the home club carry
// only age and position.
type RatingStrategy interface {
	Rate(p model.PlayerRecord) int
}

// ScoutRating scores transfer targets from their full season statistics.
type ScoutRating struct{}

func (ScoutRating) Rate(p model.PlayerRecord) int {
	rating := 65.0

	// Proven players first: minutes on the pitch count for a lot.
	switch {
	case p.Stats.Appearances > 20:
		rating += 10
	case p.Stats.Appearances > 10:
		rating += 5
	}

	goals := float64(p.Stats.Goals)
	assists := float64(p.Stats.Assists)
	rating += math.Min(15, goals*0.5+assists*0.3)

	switch {
	case p.Stats.PassAccuracy > 85:
		rating += 5
	case p.Stats.PassAccuracy > 75:
		rating += 2
	}

	switch {
	case p.Age >= 22 && p.Age <= 28:
		rating += 8 // prime years
	case p.Age >= 18 && p.Age <= 21:
		rating += 5 // young talent
	case p.Age >= 29 && p.Age <= 32:
		rating += 3 // experienced
	case p.Age > 32:
		rating -= 3 // declining
	}

	switch p.Position {
	case model.Attacker:
		rating += goals * 0.8
	case model.Midfielder:
		rating += assists * 0.6
	case model.Defender:
		rating += math.Max(0, float64(p.Stats.Appearances-p.Stats.GoalsConceded)*0.2)
	}

	return clampRating(math.Round(rating))
}

// RosterRating scores home squad players, for whom the upstream squad
// endpoint exposes no statistics. The formula leans on age and position
// plus a small spread so same-aged teammates do not tie exactly; the
// spread is a stable hash of the player ID, which keeps repeated calls
// reproducible for the same player.
type RosterRating struct{}

func (RosterRating) Rate(p model.PlayerRecord) int {
	rating := 75.0

	switch {
	case p.Age >= 18 && p.Age <= 23:
		rating += 5
	case p.Age >= 24 && p.Age <= 29:
		rating += 10
	case p.Age >= 30 && p.Age <= 32:
		rating += 5
	case p.Age > 32:
		rating -= 5
	}

	switch p.Position {
	case model.Defender:
		rating += 2
	case model.Midfielder:
		rating += 5
	case model.Attacker:
		rating += 8
	}

	rating += identitySpread(p.ID)

	return clampRating(math.Round(rating))
}

// identitySpread maps a player ID onto a deterministic offset in [0, 10).
func identitySpread(id int64) float64 {
	h := fnv.New32a()
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(id >> (8 * i))
	}
	h.Write(buf[:])
	return float64(h.Sum32()%1000) / 100.0
}

func clampRating(r float64) int {
	if r < ratingFloor {
		return ratingFloor
	}
	if r > ratingCeil {
		return ratingCeil
	}
	return int(r)
}
