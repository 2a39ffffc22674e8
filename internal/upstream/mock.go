package upstream

// Fixture dataset served when the provider is unreachable and the
// deployment allows mock fallback. Shapes mirror real provider payloads
// so the mapping path stays identical.

func mockSquadEntry() squadEntry {
	return squadEntry{
		Team: apiTeam{
			ID:   529,
			Name: "Barcelona",
			Logo: "https://media.api-sports.io/football/teams/529.png",
		},
		Players: []apiSquadPlayer{
			{ID: 1, Name: "Robert Lewandowski", Age: 35, Position: "Attacker", Nationality: "Poland", Photo: "https://media.api-sports.io/football/players/1.png"},
			{ID: 2, Name: "Pedri González", Age: 21, Position: "Midfielder", Nationality: "Spain", Photo: "https://media.api-sports.io/football/players/2.png"},
			{ID: 3, Name: "Gavi", Age: 20, Position: "Midfielder", Nationality: "Spain", Photo: "https://media.api-sports.io/football/players/3.png"},
			{ID: 4, Name: "Ronald Araújo", Age: 25, Position: "Defender", Nationality: "Uruguay", Photo: "https://media.api-sports.io/football/players/4.png"},
			{ID: 5, Name: "Marc-André ter Stegen", Age: 31, Position: "Goalkeeper", Nationality: "Germany", Photo: "https://media.api-sports.io/football/players/5.png"},
		},
	}
}

func mockSearchEntries() []searchEntry {
	return []searchEntry{
		{
			Player: apiPlayer{
				ID:          101,
				Name:        "Vinícius Júnior",
				Age:         24,
				Nationality: "Brazil",
				Photo:       "https://media.api-sports.io/football/players/101.png",
			},
			Statistics: []apiStatistics{{
				Team:   apiTeam{ID: 541, Name: "Real Madrid", Logo: "https://media.api-sports.io/football/teams/541.png"},
				Games:  apiGames{Appearances: intp(35), Position: "Attacker", Rating: "7.8"},
				Goals:  apiGoals{Total: intp(15), Assists: intp(8)},
				Passes: apiPasses{Accuracy: intp(82)},
			}},
		},
		{
			Player: apiPlayer{
				ID:          102,
				Name:        "Antoine Griezmann",
				Age:         33,
				Nationality: "France",
				Photo:       "https://media.api-sports.io/football/players/102.png",
			},
			Statistics: []apiStatistics{{
				Team:   apiTeam{ID: 530, Name: "Atlético Madrid", Logo: "https://media.api-sports.io/football/teams/530.png"},
				Games:  apiGames{Appearances: intp(32), Position: "Attacker", Rating: "7.5"},
				Goals:  apiGoals{Total: intp(12), Assists: intp(6)},
				Passes: apiPasses{Accuracy: intp(85)},
			}},
		},
	}
}

func intp(v int) *int { return &v }
