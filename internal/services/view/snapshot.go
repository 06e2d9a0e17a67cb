package view

import (
	"strings"

	"github.com/aixtraball/pinadmin/internal/model"
)

// Snapshot is the last successfully fetched state the score views are
// derived from: the machine list, the aggregated scores and the player
// name lookup. Filtering is stateless; every query recomputes the full
// view from the snapshot, nothing is diffed incrementally.
type Snapshot struct {
	Machines    []model.Machine
	Scores      model.ScoresByMachine
	PlayerNames map[string]string
}

// View is a filtered rendering of a snapshot.
type View struct {
	Machines []model.Machine
	Scores   model.ScoresByMachine
}

// Search derives the view for a free-text query.
//
// An empty query is the identity transform: the full machine list and the
// full aggregated scores. For a non-empty query a machine is retained when
// it has at least one score in the unfiltered view and either its own name
// or one of its scores' player names contains the query, case-insensitive.
// Within a retained machine the score list is re-filtered independently;
// a machine-name match keeps all of that machine's scores.
func (s Snapshot) Search(query string) View {
	if query == "" {
		return View{Machines: s.Machines, Scores: s.Scores}
	}

	needle := strings.ToLower(query)

	machines := make([]model.Machine, 0, len(s.Machines))
	scores := make(model.ScoresByMachine, len(s.Machines))

	for _, machine := range s.Machines {
		machineScores := s.Scores[machine.Abbreviation]
		if len(machineScores) == 0 {
			continue
		}

		nameMatch := strings.Contains(strings.ToLower(machine.LongName), needle)
		if !nameMatch && !s.anyPlayerMatches(machineScores, needle) {
			continue
		}

		machines = append(machines, machine)
		if nameMatch {
			scores[machine.Abbreviation] = machineScores
			continue
		}

		kept := make([]model.Score, 0, len(machineScores))
		for _, score := range machineScores {
			if s.playerMatches(score.PlayerAbbreviation, needle) {
				kept = append(kept, score)
			}
		}
		scores[machine.Abbreviation] = kept
	}

	return View{Machines: machines, Scores: scores}
}

func (s Snapshot) anyPlayerMatches(scores []model.Score, needle string) bool {
	for _, score := range scores {
		if s.playerMatches(score.PlayerAbbreviation, needle) {
			return true
		}
	}
	return false
}

func (s Snapshot) playerMatches(abbreviation, needle string) bool {
	name, ok := s.PlayerNames[abbreviation]
	return ok && strings.Contains(strings.ToLower(name), needle)
}
