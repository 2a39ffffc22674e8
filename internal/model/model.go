// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import (
	"strings"
	"time"
)

// Position is one of the four canonical football positions the engine
// understands. Upstream payloads are normalized into this set.
type Position string

const (
	Goalkeeper Position = "Goalkeeper"
	Defender   Position = "Defender"
	Midfielder Position = "Midfielder"
	Attacker   Position = "Attacker"
)

// Positions lists the canonical positions in tactical order.
// Squad analysis iterates this to produce one summary per group.
func Positions() []Position {
	return []Position{Goalkeeper, Defender, Midfielder, Attacker}
}

// ParsePosition folds free-form position strings onto the canonical set.
// Forwards, strikers and wingers count as attackers; anything
// unrecognized defaults to midfielder, the least scoring-sensitive group.
func ParsePosition(raw string) Position {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "goalkeeper"), s == "g":
		return Goalkeeper
	case strings.Contains(s, "defender"), strings.Contains(s, "back"):
		return Defender
	case strings.Contains(s, "midfielder"):
		return Midfielder
	case strings.Contains(s, "attacker"), strings.Contains(s, "forward"), strings.Contains(s, "striker"), strings.Contains(s, "winger"):
		return Attacker
	default:
		return Midfielder
	}
}

// Team identifies the club a player belongs to. IDs follow the upstream
// provider's numbering and are treated as opaque.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// PlayerStats holds the per-season performance counters the engine scores on.
// Every field defaults to zero when the upstream omits it.
type PlayerStats struct {
	Appearances   int `json:"appearances"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	GoalsConceded int `json:"goalsConceded,omitempty"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
	PassAccuracy  int `json:"passAccuracy"`
}

// PlayerRecord is the immutable raw input to the rating and valuation
// engines, already parsed out of the upstream payload.
type PlayerRecord struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Age         int         `json:"age"`
	Nationality string      `json:"nationality"`
	Photo       string      `json:"photo,omitempty"`
	Team        Team        `json:"team"`
	Position    Position    `json:"position"`
	Stats       PlayerStats `json:"stats"`
}

// RatedPlayer is a PlayerRecord enriched with the engine's rating and
// market value. Strengths and weaknesses are only populated for roster
// players, where the squad views render them.
type RatedPlayer struct {
	PlayerRecord
	Rating      int      `json:"rating"`
	MarketValue int64    `json:"marketValue"`
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
}

// Squad is the home club roster as served to clients.
type Squad struct {
	Team        Team          `json:"team"`
	Players     []RatedPlayer `json:"players"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// PositionSummary aggregates one positional group of the roster.
type PositionSummary struct {
	Position         Position      `json:"position"`
	Count            int           `json:"count"`
	AverageRating    float64       `json:"averageRating"`
	Players          []RatedPlayer `json:"players"`
	NeedsImprovement bool          `json:"needsImprovement"`
}

// ImprovementArea flags a positional group the analysis considers weak,
// with a priority, a reason and a scouting suggestion.
type ImprovementArea struct {
	Position   Position `json:"position"`
	Priority   string   `json:"priority"`
	Reason     string   `json:"reason"`
	Suggestion string   `json:"suggestion"`
}

// SquadReport is the full squad analysis output.
type SquadReport struct {
	OverallRating    float64           `json:"overallRating"`
	PositionAnalysis []PositionSummary `json:"positionAnalysis"`
	ImprovementAreas []ImprovementArea `json:"improvementAreas"`
	TotalPlayers     int               `json:"totalPlayers"`
	AverageAge       float64           `json:"averageAge"`
	TotalValue       int64             `json:"totalValue"`
}

// TransferCandidate describes the player a transfer evaluation is asked
// about. Rating and MarketValue are optional; absent values are estimated
// by the engine.
type TransferCandidate struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	CurrentTeam string   `json:"currentTeam"`
	Position    Position `json:"position"`
	Age         int      `json:"age"`
	Rating      int      `json:"rating,omitempty"`
	MarketValue int64    `json:"marketValue,omitempty"`
}

// TransferFactors are the five weighted sub-scores of a transfer
// evaluation, each on a small ordinal scale.
type TransferFactors struct {
	SquadFit int `json:"squadFit"`
	Value    int `json:"value"`
	Age      int `json:"age"`
	Quality  int `json:"quality"`
	Position int `json:"position"`
}

// Rivalry describes whether the candidate plays for the principal rival.
type Rivalry struct {
	IsRival      bool   `json:"isRival"`
	RivalryLevel string `json:"rivalryLevel"`
	Description  string `json:"description"`
}

// TransferEvaluation is the composite verdict on acquiring a candidate.
type TransferEvaluation struct {
	Player         TransferCandidate `json:"player"`
	TransferRating float64           `json:"transferRating"`
	Factors        TransferFactors   `json:"factors"`
	Pros           []string          `json:"pros"`
	Cons           []string          `json:"cons"`
	Recommendation string            `json:"recommendation"`
	EstimatedCost  int64             `json:"estimatedCost"`
	Rivalry        Rivalry           `json:"rivalry"`
}
