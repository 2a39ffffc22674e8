package engine_test

import (
	"math"
	"strings"
	"testing"

	"github.com/avilanova/barcarate/internal/model"
)

func attackerRoster(ratings ...int) []model.RatedPlayer {
	var roster []model.RatedPlayer
	for i, r := range ratings {
		roster = append(roster, rated(int64(i+1), model.Attacker, r, 25, 1_000_000))
	}
	return roster
}

func TestEvaluateTransfer_RivalAttacker(t *testing.T) {
	e := newTestEngine()
	candidate := model.TransferCandidate{
		ID:          101,
		Name:        "Vinícius Júnior",
		CurrentTeam: "Real Madrid",
		Position:    model.Attacker,
		Age:         24,
		Rating:      95,
	}
	// Attacker group mean 80, best 82, depth 3.
	roster := attackerRoster(82, 80, 78)

	ev := e.EvaluateTransfer(candidate, roster)

	if ev.Factors.SquadFit != 9 {
		t.Fatalf("squadFit = %d, want 9 (95 > 80+10)", ev.Factors.SquadFit)
	}
	if ev.Factors.Quality != 10 {
		t.Fatalf("quality = %d, want 10", ev.Factors.Quality)
	}
	if ev.Factors.Age != 9 {
		t.Fatalf("age = %d, want 9 for a 24-year-old", ev.Factors.Age)
	}
	if !ev.Rivalry.IsRival || ev.Rivalry.RivalryLevel != "maximum" {
		t.Fatalf("expected maximum rivalry, got %+v", ev.Rivalry)
	}
	if ev.EstimatedCost != int64(math.Round(95*1_200_000*1.4*2.5)) {
		t.Fatalf("estimated cost = %d", ev.EstimatedCost)
	}
}

func TestEvaluateTransfer_RivalPenaltyIsExact(t *testing.T) {
	e := newTestEngine()
	roster := attackerRoster(82, 80, 78)

	// Fixed market value keeps the value factor identical across clubs, so
	// the composite difference isolates the rivalry penalty.
	base := model.TransferCandidate{
		ID:          1,
		Name:        "Candidate",
		Position:    model.Attacker,
		Age:         24,
		Rating:      88,
		MarketValue: 60_000_000,
	}

	neutral := base
	neutral.CurrentTeam = "Girona"
	rival := base
	rival.CurrentTeam = "Real Madrid CF"

	evNeutral := e.EvaluateTransfer(neutral, roster)
	evRival := e.EvaluateTransfer(rival, roster)

	if evNeutral.Factors != evRival.Factors {
		t.Fatalf("factors diverged: %+v vs %+v", evNeutral.Factors, evRival.Factors)
	}
	diff := math.Round((evNeutral.TransferRating-evRival.TransferRating)*10) / 10
	if diff != 1.5 {
		t.Fatalf("rival penalty = %v, want exactly 1.5", diff)
	}
}

func TestEvaluateTransfer_CompositeWithinScale(t *testing.T) {
	e := newTestEngine()
	roster := attackerRoster(82, 80, 78)

	for age := 16; age <= 40; age += 4 {
		for rating := 50; rating <= 95; rating += 5 {
			c := model.TransferCandidate{
				ID:       1,
				Name:     "Probe",
				Position: model.Attacker,
				Age:      age,
				Rating:   rating,
			}
			ev := e.EvaluateTransfer(c, roster)
			if ev.TransferRating < 0 || ev.TransferRating > 10 {
				t.Fatalf("composite %v outside scale for age=%d rating=%d", ev.TransferRating, age, rating)
			}
			if len(ev.Pros) == 0 || len(ev.Cons) == 0 {
				t.Fatalf("pros/cons must never be empty")
			}
		}
	}
}

func TestEvaluateTransfer_FactorTables(t *testing.T) {
	e := newTestEngine()

	t.Run("positional scarcity", func(t *testing.T) {
		cases := []struct {
			name   string
			roster []model.RatedPlayer
			want   int
		}{
			{"no incumbents", nil, 9},
			{"one incumbent", attackerRoster(90), 9},
			{"weak incumbents", attackerRoster(74, 72), 8},
			{"modest incumbents", attackerRoster(79, 78), 7},
			{"two strong incumbents", attackerRoster(85, 84), 6},
			{"well covered", attackerRoster(85, 84, 83), 5},
		}
		for _, tc := range cases {
			c := model.TransferCandidate{ID: 1, Name: "P", Position: model.Attacker, Age: 24, Rating: 80}
			ev := e.EvaluateTransfer(c, tc.roster)
			if ev.Factors.Position != tc.want {
				t.Fatalf("%s: position = %d, want %d", tc.name, ev.Factors.Position, tc.want)
			}
		}
	})

	t.Run("value thresholds", func(t *testing.T) {
		cases := []struct {
			cost int64
			want int
		}{
			{30_000_000, 9},  // bargain: < 0.5x baseline
			{50_000_000, 8},  // good value
			{75_000_000, 7},  // fair
			{100_000_000, 6}, // slightly overpriced
			{115_000_000, 5}, // overpriced
			{150_000_000, 3}, // very expensive
		}
		for _, tc := range cases {
			c := model.TransferCandidate{
				ID: 1, Name: "P", Position: model.Attacker,
				Age: 24, Rating: 80, MarketValue: tc.cost,
			}
			ev := e.EvaluateTransfer(c, attackerRoster(80))
			if ev.Factors.Value != tc.want {
				t.Fatalf("cost %d: value = %d, want %d", tc.cost, ev.Factors.Value, tc.want)
			}
		}
	})

	t.Run("age bands", func(t *testing.T) {
		cases := []struct {
			age  int
			want int
		}{{17, 5}, {19, 8}, {24, 9}, {28, 8}, {31, 6}, {34, 4}}
		for _, tc := range cases {
			c := model.TransferCandidate{ID: 1, Name: "P", Position: model.Attacker, Age: tc.age, Rating: 80}
			ev := e.EvaluateTransfer(c, attackerRoster(80))
			if ev.Factors.Age != tc.want {
				t.Fatalf("age %d: factor = %d, want %d", tc.age, ev.Factors.Age, tc.want)
			}
		}
	})
}

func TestEvaluateTransfer_Recommendations(t *testing.T) {
	e := newTestEngine()

	// A world-class bargain at a needy position lands in the top tier.
	strong := model.TransferCandidate{
		ID: 1, Name: "Star", Position: model.Goalkeeper,
		Age: 24, Rating: 92, MarketValue: 40_000_000,
	}
	ev := e.EvaluateTransfer(strong, attackerRoster(80, 79, 78))
	if !strings.HasPrefix(ev.Recommendation, "highly recommended") {
		t.Fatalf("recommendation = %q, want highly recommended tier (rating %v)", ev.Recommendation, ev.TransferRating)
	}

	// An old, overpriced squad player from the rival bottoms out.
	weak := model.TransferCandidate{
		ID: 2, Name: "Veteran", CurrentTeam: "Real Madrid", Position: model.Attacker,
		Age: 35, Rating: 62, MarketValue: 120_000_000,
	}
	ev = e.EvaluateTransfer(weak, attackerRoster(85, 84, 83))
	if !strings.HasPrefix(ev.Recommendation, "avoid") {
		t.Fatalf("recommendation = %q, want avoid tier (rating %v)", ev.Recommendation, ev.TransferRating)
	}
}

func TestEvaluateTransfer_ProsAndConsRules(t *testing.T) {
	e := newTestEngine()

	t.Run("young rival star", func(t *testing.T) {
		c := model.TransferCandidate{
			ID: 1, Name: "Prodigy", CurrentTeam: "Real Madrid",
			Position: model.Attacker, Age: 21, Rating: 90, MarketValue: 50_000_000,
		}
		ev := e.EvaluateTransfer(c, attackerRoster(78, 76))

		wantPros := []string{
			"young talent with high potential",
			"weakens direct rival while strengthening Barcelona",
		}
		for _, want := range wantPros {
			if !containsString(ev.Pros, want) {
				t.Fatalf("pros %v missing %q", ev.Pros, want)
			}
		}
		if !containsString(ev.Cons, "potential fan backlash due to rivalry") {
			t.Fatalf("cons %v missing rivalry backlash", ev.Cons)
		}
	})

	t.Run("extreme fee", func(t *testing.T) {
		c := model.TransferCandidate{
			ID: 2, Name: "Galáctico", CurrentTeam: "Girona",
			Position: model.Attacker, Age: 24, Rating: 92, MarketValue: 150_000_000,
		}
		ev := e.EvaluateTransfer(c, attackerRoster(78, 76))
		if !containsString(ev.Cons, "extremely high transfer fee could impact other signings") {
			t.Fatalf("cons %v missing extreme fee warning", ev.Cons)
		}
	})

	t.Run("default fillers", func(t *testing.T) {
		// Ordinary candidate triggering no rule on either side still gets
		// one filler entry each.
		c := model.TransferCandidate{
			ID: 3, Name: "Journeyman", CurrentTeam: "Getafe",
			Position: model.Attacker, Age: 30, Rating: 77, MarketValue: 70_000_000,
		}
		ev := e.EvaluateTransfer(c, attackerRoster(76, 75, 74))
		if len(ev.Pros) != 1 || ev.Pros[0] != "would add squad depth" {
			t.Fatalf("pros = %v, want the single filler", ev.Pros)
		}
		if len(ev.Cons) != 1 || ev.Cons[0] != "minimal obvious drawbacks" {
			t.Fatalf("cons = %v, want the single filler", ev.Cons)
		}
	})
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
