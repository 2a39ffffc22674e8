package engine

import (
	"strings"

	"github.com/avilanova/barcarate/internal/model"
)

// Tables holds the club-specific constants the engine scores against:
// prestige tiers, rivalry designations and the fixed scouting texts.
// It is injected at construction and never mutated, so a deployment can
// swap the home club without touching any formula.
type Tables struct {
	// HomeClub is the club whose squad is analyzed; its players are
	// excluded from transfer search results.
	HomeClub model.Team

	// PrincipalRival triggers the rivalry penalty and messaging.
	// Matching is a case-insensitive substring test on the club name.
	PrincipalRival string
	// SecondaryRival only affects the transfer cost surcharge.
	SecondaryRival string
	// SurchargeClubs are mid-tier selling clubs that command a premium.
	SurchargeClubs []string

	// EliteClubs and ContenderClubs drive the team prestige multiplier
	// in scout valuations, keyed by upstream team ID.
	EliteClubs     []int64
	ContenderClubs []int64

	// Suggestions are the fixed per-position scouting hints attached to
	// flagged improvement areas.
	Suggestions map[model.Position]string

	// Strengths and Weaknesses are the fixed per-position trait lists
	// used for roster players.
	Strengths  map[model.Position][]string
	Weaknesses map[model.Position][]string
}

// DefaultTables returns the Barcelona deployment the service ships with.
func DefaultTables() Tables {
	return Tables{
		HomeClub:       model.Team{ID: 529, Name: "Barcelona"},
		PrincipalRival: "real madrid",
		SecondaryRival: "atlético",
		SurchargeClubs: []string{"sevilla", "valencia", "athletic"},
		EliteClubs:     []int64{529, 541, 530},
		ContenderClubs: []int64{532, 533, 536},
		Suggestions: map[model.Position]string{
			model.Goalkeeper: "consider a reliable backup or young prospect",
			model.Defender:   "look for pace and leadership in the backline",
			model.Midfielder: "need creative playmakers or defensive stability",
			model.Attacker:   "require clinical finishers and pace on the wings",
		},
		Strengths: map[model.Position][]string{
			model.Goalkeeper: {"shot stopping", "distribution", "commanding area"},
			model.Defender:   {"tackling", "aerial ability", "positioning"},
			model.Midfielder: {"passing", "vision", "work rate"},
			model.Attacker:   {"finishing", "pace", "dribbling"},
		},
		Weaknesses: map[model.Position][]string{
			model.Goalkeeper: {"distribution under pressure"},
			model.Defender:   {"pace", "attacking contribution"},
			model.Midfielder: {"defensive work", "physicality"},
			model.Attacker:   {"defensive contribution", "consistency"},
		},
	}
}

// IsPrincipalRival reports whether the given club name belongs to the
// principal rival.
func (t Tables) IsPrincipalRival(club string) bool {
	return containsFold(club, t.PrincipalRival)
}

// costSurcharge returns the selling-club multiplier applied to estimated
// transfer fees. Rival clubs know exactly who is asking.
func (t Tables) costSurcharge(club string) float64 {
	switch {
	case containsFold(club, t.PrincipalRival):
		return 2.5
	case containsFold(club, t.SecondaryRival):
		return 1.8
	default:
		for _, mid := range t.SurchargeClubs {
			if containsFold(club, mid) {
				return 1.3
			}
		}
		return 1.0
	}
}

// prestigeMultiplier maps a team ID onto the valuation tier multiplier.
func (t Tables) prestigeMultiplier(teamID int64) float64 {
	for _, id := range t.EliteClubs {
		if id == teamID {
			return 2.0
		}
	}
	for _, id := range t.ContenderClubs {
		if id == teamID {
			return 1.3
		}
	}
	return 1.0
}

func containsFold(s, sub string) bool {
	if sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
