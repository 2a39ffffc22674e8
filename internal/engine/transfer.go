package engine

import (
	"math"

	"github.com/avilanova/barcarate/internal/model"
)

// Composite weights for the five transfer factors. They sum to 1.0 so the
// composite stays on the same 0-10 scale as the sub-scores.
const (
	weightSquadFit = 0.25
	weightValue    = 0.20
	weightAge      = 0.15
	weightQuality  = 0.25
	weightPosition = 0.15

	rivalPenalty = 1.5

	// defaultCandidateRating stands in when the caller supplies no rating.
	defaultCandidateRating = 75
	// extremeFee marks fees large enough to squeeze the rest of the window.
	extremeFee = 100_000_000
)

// EvaluateTransfer compares a candidate against the current roster across
// the five weighted factors and produces the composite recommendation.
func (e *Engine) EvaluateTransfer(candidate model.TransferCandidate, roster []model.RatedPlayer) model.TransferEvaluation {
	if candidate.Rating == 0 {
		candidate.Rating = defaultCandidateRating
	}
	if candidate.CurrentTeam == "" {
		candidate.CurrentTeam = "Unknown"
	}

	rivalry := e.rivalryFactor(candidate.CurrentTeam)

	cost := candidate.MarketValue
	if cost == 0 {
		cost = e.estimateTransferCost(candidate)
	}

	factors := model.TransferFactors{
		SquadFit: squadFitScore(roster, candidate.Position, candidate.Rating),
		Value:    valueScore(cost, candidate.Rating),
		Age:      ageScore(candidate.Age),
		Quality:  qualityScore(candidate.Rating),
		Position: positionalNeedScore(roster, candidate.Position),
	}

	composite := compositeRating(factors, rivalry.IsRival)

	ev := model.TransferEvaluation{
		Player:         candidate,
		TransferRating: composite,
		Factors:        factors,
		Pros:           e.transferPros(factors, candidate, rivalry),
		Cons:           e.transferCons(factors, candidate, cost, rivalry),
		Recommendation: recommendation(composite),
		EstimatedCost:  cost,
		Rivalry:        rivalry,
	}

	e.log.Debug().
		Str("candidate", candidate.Name).
		Float64("transfer_rating", composite).
		Bool("rival", rivalry.IsRival).
		Msg("transfer evaluated")
	return ev
}

// squadFitScore compares the candidate rating to the roster's mean rating
// at the same position. An empty group defaults to a mean of 70 so new
// positions are still scoreable.
func squadFitScore(roster []model.RatedPlayer, pos model.Position, rating int) int {
	sum, n := 0, 0
	for _, p := range roster {
		if p.Position == pos {
			sum += p.Rating
			n++
		}
	}
	avg := 70.0
	if n > 0 {
		avg = float64(sum) / float64(n)
	}

	r := float64(rating)
	switch {
	case r > avg+10:
		return 9
	case r > avg+5:
		return 8
	case r > avg:
		return 7
	case r > avg-5:
		return 6
	default:
		return 4
	}
}

// valueScore rates the asking price against a rating-derived baseline.
func valueScore(cost int64, rating int) int {
	expected := float64(rating) * 1_000_000
	c := float64(cost)
	switch {
	case c < expected*0.5:
		return 9 // bargain
	case c < expected*0.7:
		return 8 // good value
	case c < expected*1.0:
		return 7 // fair
	case c < expected*1.3:
		return 6 // slightly overpriced
	case c < expected*1.5:
		return 5 // overpriced
	default:
		return 3 // very expensive
	}
}

func ageScore(age int) int {
	switch {
	case age >= 22 && age <= 26:
		return 9
	case age >= 18 && age <= 29:
		return 8
	case age >= 30 && age <= 32:
		return 6
	case age > 32:
		return 4
	default:
		return 5 // under 18
	}
}

func qualityScore(rating int) int {
	switch {
	case rating >= 90:
		return 10
	case rating >= 85:
		return 9
	case rating >= 80:
		return 8
	case rating >= 75:
		return 7
	case rating >= 70:
		return 6
	default:
		return 4
	}
}

// positionalNeedScore measures scarcity at the candidate's position.
func positionalNeedScore(roster []model.RatedPlayer, pos model.Position) int {
	count, best := 0, 0
	for _, p := range roster {
		if p.Position == pos {
			count++
			if p.Rating > best {
				best = p.Rating
			}
		}
	}

	switch {
	case count < 2:
		return 9
	case best < 75:
		return 8
	case best < 80:
		return 7
	case count < 3:
		return 6
	default:
		return 5
	}
}

func compositeRating(f model.TransferFactors, rival bool) float64 {
	rating := float64(f.SquadFit)*weightSquadFit +
		float64(f.Value)*weightValue +
		float64(f.Age)*weightAge +
		float64(f.Quality)*weightQuality +
		float64(f.Position)*weightPosition

	if rival {
		rating -= rivalPenalty
	}

	return math.Round(rating*10) / 10
}

func (e *Engine) transferPros(f model.TransferFactors, c model.TransferCandidate, rivalry model.Rivalry) []string {
	var pros []string

	if f.Quality >= 8 {
		pros = append(pros, "exceptional player quality")
	}
	if f.SquadFit >= 8 {
		pros = append(pros, "would improve current squad significantly")
	}
	if f.Age >= 8 {
		pros = append(pros, "excellent age profile for long-term investment")
	}
	if f.Value >= 8 {
		pros = append(pros, "great value for money")
	}
	if f.Position >= 8 {
		pros = append(pros, "addresses key squad weakness")
	}

	if c.Age <= 23 && f.Quality >= 7 {
		pros = append(pros, "young talent with high potential")
	}
	if rivalry.IsRival && f.Quality >= 8 {
		pros = append(pros, "weakens direct rival while strengthening "+e.tables.HomeClub.Name)
	}

	if len(pros) == 0 {
		pros = append(pros, "would add squad depth")
	}
	return pros
}

func (e *Engine) transferCons(f model.TransferFactors, c model.TransferCandidate, cost int64, rivalry model.Rivalry) []string {
	var cons []string

	if f.Quality <= 6 {
		cons = append(cons, "questionable player quality for "+e.tables.HomeClub.Name+" standard")
	}
	if f.Value <= 5 {
		cons = append(cons, "overpriced for the quality offered")
	}
	if f.Age <= 5 {
		cons = append(cons, "age concerns - limited long-term value")
	}
	if f.Position <= 5 {
		cons = append(cons, "position already well covered in squad")
	}

	if c.Age >= 32 {
		cons = append(cons, "declining years ahead")
	}
	if rivalry.IsRival {
		cons = append(cons, "potential fan backlash due to rivalry")
	}
	if f.SquadFit <= 6 {
		cons = append(cons, "may struggle to break into first team")
	}
	if cost > extremeFee {
		cons = append(cons, "extremely high transfer fee could impact other signings")
	}

	if len(cons) == 0 {
		cons = append(cons, "minimal obvious drawbacks")
	}
	return cons
}

// recommendation maps the composite onto the five fixed tiers.
func recommendation(rating float64) string {
	switch {
	case rating >= 8.5:
		return "highly recommended - excellent signing that would significantly strengthen the squad"
	case rating >= 7.5:
		return "recommended - good addition that addresses squad needs"
	case rating >= 6.5:
		return "consider - decent option but explore alternatives first"
	case rating >= 5.5:
		return "not recommended - significant concerns outweigh benefits"
	default:
		return "avoid - poor value and unlikely to improve the squad"
	}
}

// estimateTransferCost projects a fee when the caller supplies none:
// rating baseline, age premium, then the selling-club surcharge.
func (e *Engine) estimateTransferCost(c model.TransferCandidate) int64 {
	cost := float64(c.Rating) * 1_200_000

	switch {
	case c.Age <= 23:
		cost *= 1.8
	case c.Age <= 26:
		cost *= 1.4
	case c.Age <= 29:
		cost *= 1.1
	case c.Age >= 32:
		cost *= 0.7
	}

	cost *= e.tables.costSurcharge(c.CurrentTeam)

	return int64(math.Round(cost))
}

// rivalryFactor flags candidates playing for the principal rival.
func (e *Engine) rivalryFactor(club string) model.Rivalry {
	if e.tables.IsPrincipalRival(club) {
		return model.Rivalry{
			IsRival:      true,
			RivalryLevel: "maximum",
			Description:  "el clasico rivalry - historically contentious transfer",
		}
	}
	return model.Rivalry{
		IsRival:      false,
		RivalryLevel: "none",
		Description:  "no significant rivalry concerns",
	}
}
