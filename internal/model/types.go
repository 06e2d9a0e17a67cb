package model

// Scope identifies the tournament a query or mutation is qualified by.
// The empty scope means "whatever tournament the backend considers active".
type Scope string

// Machine is a pinball machine registered with the backend.
type Machine struct {
	Abbreviation string `json:"abbreviation"`
	LongName     string `json:"long_name"`
	Room         string `json:"room"`
}

// Player is a registered player. The abbreviation is two uppercase letters
// followed by a two-digit checksum, computed client-side before submission.
type Player struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Guest        bool   `json:"guest"`
}

// Score is a single recorded game result. Scores carry no identifier of
// their own; deletion addresses them by the (machine, player, points)
// triple, which is ambiguous when duplicates exist.
type Score struct {
	Date                string `json:"date"`
	PinballAbbreviation string `json:"pinball_abbreviation"`
	PlayerAbbreviation  string `json:"player_abbreviation"`
	Points              int    `json:"points"`
}

// ScoresByMachine maps a machine abbreviation to that machine's scores in
// fetch order. It is derived, never persisted, and rebuilt on every load.
type ScoresByMachine map[string][]Score

// Clone returns a deep copy of the mapping.
func (m ScoresByMachine) Clone() ScoresByMachine {
	out := make(ScoresByMachine, len(m))
	for abbr, scores := range m {
		cp := make([]Score, len(scores))
		copy(cp, scores)
		out[abbr] = cp
	}
	return out
}

// TotalScores returns the number of scores across all machines.
func (m ScoresByMachine) TotalScores() int {
	n := 0
	for _, scores := range m {
		n += len(scores)
	}
	return n
}

// ActiveTournament is the backend's answer to the active-tournament query.
type ActiveTournament struct {
	ActiveTournamentName string `json:"active_tournament_name"`
}

// CatalogMachine is a candidate machine from the external machine catalog.
// Shortname may be empty; machines without one get a random fallback code.
type CatalogMachine struct {
	ID        string `json:"opdb_id"`
	Name      string `json:"name"`
	Shortname string `json:"shortname"`
}

// PlayerNameLookup builds the abbreviation -> full name mapping used by the
// text search filter.
func PlayerNameLookup(players []Player) map[string]string {
	lookup := make(map[string]string, len(players))
	for _, p := range players {
		lookup[p.Abbreviation] = p.Name
	}
	return lookup
}
