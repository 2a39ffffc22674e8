package upstream

import (
	"encoding/json"
	"strings"

	"github.com/avilanova/barcarate/internal/model"
)

// Wire shapes for the football-data provider (api-football v3). Nested
// blocks are frequently null or absent, so counters are pointers and the
// mapping defaults them to zero. Note the provider's own spelling of
// "appearences".

type envelope struct {
	Errors   json.RawMessage `json:"errors"`
	Response json.RawMessage `json:"response"`
}

type apiPlayer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Photo       string `json:"photo"`
}

type apiTeam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type apiGames struct {
	Appearances *int   `json:"appearences"`
	Position    string `json:"position"`
	Rating      string `json:"rating"`
}

type apiGoals struct {
	Total    *int `json:"total"`
	Assists  *int `json:"assists"`
	Conceded *int `json:"conceded"`
}

type apiPasses struct {
	Accuracy *int `json:"accuracy"`
}

type apiCards struct {
	Yellow *int `json:"yellow"`
	Red    *int `json:"red"`
}

type apiStatistics struct {
	Team   apiTeam   `json:"team"`
	Games  apiGames  `json:"games"`
	Goals  apiGoals  `json:"goals"`
	Passes apiPasses `json:"passes"`
	Cards  apiCards  `json:"cards"`
}

type searchEntry struct {
	Player     apiPlayer       `json:"player"`
	Statistics []apiStatistics `json:"statistics"`
}

type apiSquadPlayer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
	Photo       string `json:"photo"`
}

type squadEntry struct {
	Team    apiTeam          `json:"team"`
	Players []apiSquadPlayer `json:"players"`
}

// hasAPIErrors reports whether the provider's errors field carries
// anything. The provider emits either an empty array, an empty object or
// a populated structure, so presence is judged structurally.
func hasAPIErrors(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	switch trimmed {
	case "", "null", "[]", "{}":
		return false
	default:
		return true
	}
}

// mapSearchEntries flattens search results into PlayerRecords. The
// provider returns one statistics block per competition; the first one
// is the league the search was scoped to, so scoring reads from it.
func mapSearchEntries(entries []searchEntry) []model.PlayerRecord {
	records := make([]model.PlayerRecord, 0, len(entries))
	for _, e := range entries {
		var stats apiStatistics
		if len(e.Statistics) > 0 {
			stats = e.Statistics[0]
		}
		records = append(records, model.PlayerRecord{
			ID:          e.Player.ID,
			Name:        e.Player.Name,
			Age:         e.Player.Age,
			Nationality: e.Player.Nationality,
			Photo:       e.Player.Photo,
			Team: model.Team{
				ID:   stats.Team.ID,
				Name: stats.Team.Name,
				Logo: stats.Team.Logo,
			},
			Position: model.ParsePosition(stats.Games.Position),
			Stats: model.PlayerStats{
				Appearances:   deref(stats.Games.Appearances),
				Goals:         deref(stats.Goals.Total),
				Assists:       deref(stats.Goals.Assists),
				GoalsConceded: deref(stats.Goals.Conceded),
				YellowCards:   deref(stats.Cards.Yellow),
				RedCards:      deref(stats.Cards.Red),
				PassAccuracy:  deref(stats.Passes.Accuracy),
			},
		})
	}
	return records
}

func mapSquadEntry(entry squadEntry) (model.Team, []model.PlayerRecord) {
	team := model.Team{ID: entry.Team.ID, Name: entry.Team.Name, Logo: entry.Team.Logo}
	records := make([]model.PlayerRecord, 0, len(entry.Players))
	for _, p := range entry.Players {
		records = append(records, model.PlayerRecord{
			ID:          p.ID,
			Name:        p.Name,
			Age:         p.Age,
			Nationality: p.Nationality,
			Photo:       p.Photo,
			Team:        team,
			Position:    model.ParsePosition(p.Position),
		})
	}
	return team, records
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
