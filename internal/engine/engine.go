// Package engine implements the scoring core: player rating, market
// valuation, squad analysis and transfer evaluation. Everything here is
// a pure function over immutable records; the only state an Engine holds
// is the injected club tables, so instances are safe for concurrent use.
package engine

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/avilanova/barcarate/internal/model"
)

// searchResultCap bounds how many rated players a search returns.
const searchResultCap = 20

// Engine evaluates players and squads against the configured club tables.
type Engine struct {
	tables Tables
	scout  RatingStrategy
	roster RatingStrategy
	log    zerolog.Logger
}

// New builds an Engine with the default rating strategies.
func New(tables Tables, logger zerolog.Logger) *Engine {
	l := logger.With().Str("module", "engine").Logger()
	return &Engine{
		tables: tables,
		scout:  ScoutRating{},
		roster: RosterRating{},
		log:    l,
	}
}

// Tables exposes the injected club tables to collaborators that need the
// home club identity.
func (e *Engine) Tables() Tables { return e.tables }

// RateAndValue scores a scouted transfer target: full-statistics rating
// plus a prestige-aware market value.
func (e *Engine) RateAndValue(p model.PlayerRecord) model.RatedPlayer {
	return model.RatedPlayer{
		PlayerRecord: p,
		Rating:       e.scout.Rate(p),
		MarketValue:  e.scoutValue(p),
	}
}

// RateRosterPlayer scores a home squad player, for whom only age and
// position are known, and attaches the fixed trait lists the squad views
// render.
func (e *Engine) RateRosterPlayer(p model.PlayerRecord) model.RatedPlayer {
	rating := e.roster.Rate(p)
	return model.RatedPlayer{
		PlayerRecord: p,
		Rating:       rating,
		MarketValue:  e.rosterValue(p, rating),
		Strengths:    e.playerStrengths(p.Position, rating),
		Weaknesses:   e.playerWeaknesses(p.Position, rating),
	}
}

// SearchAndFilter rates raw search results, applies the name, position
// and team filters, drops home club players (they are not transfer
// targets) and returns at most searchResultCap entries sorted by rating,
// best first.
func (e *Engine) SearchAndFilter(records []model.PlayerRecord, query, position, team string) []model.RatedPlayer {
	rated := make([]model.RatedPlayer, 0, len(records))
	for _, rec := range records {
		if rec.Team.ID == e.tables.HomeClub.ID {
			continue
		}
		if query != "" && !containsFold(rec.Name, query) {
			continue
		}
		if position != "" && position != "all" && !containsFold(string(rec.Position), position) {
			continue
		}
		if team != "" && team != "all" && !containsFold(rec.Team.Name, team) {
			continue
		}
		rated = append(rated, e.RateAndValue(rec))
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rating > rated[j].Rating
	})

	if len(rated) > searchResultCap {
		rated = rated[:searchResultCap]
	}

	e.log.Debug().
		Int("matched", len(rated)).
		Str("query", strings.ToLower(query)).
		Msg("search filtered")
	return rated
}

// playerStrengths returns the fixed trait list for the position, with
// leadership traits added for standout ratings.
func (e *Engine) playerStrengths(pos model.Position, rating int) []string {
	base, ok := e.tables.Strengths[pos]
	if !ok {
		base = []string{"technique", "physicality"}
	}
	out := make([]string, len(base), len(base)+2)
	copy(out, base)
	if rating > 85 {
		out = append(out, "leadership", "consistency")
	}
	return out
}

func (e *Engine) playerWeaknesses(pos model.Position, rating int) []string {
	if rating > 85 {
		return []string{"minimal weaknesses"}
	}
	base, ok := e.tables.Weaknesses[pos]
	if !ok {
		return []string{"needs development"}
	}
	out := make([]string, len(base))
	copy(out, base)
	return out
}
