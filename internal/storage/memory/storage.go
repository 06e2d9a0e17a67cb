package memory

import (
	"context"
	"sync"

	"github.com/aixtraball/pinadmin/internal/model"
	"github.com/aixtraball/pinadmin/internal/storage"
)

// Storage is an in-memory implementation of the storage interface. It is
// the default for tests and local development.
type Storage struct {
	mu sync.RWMutex

	tournaments []string
	active      string
	data        map[string]*tournamentData
}

// tournamentData holds one tournament's scoped collections. Slices keep
// insertion order; the score view relies on fetch order being stable.
type tournamentData struct {
	machines []model.Machine
	players  []model.Player
	scores   map[string][]model.Score
}

func newTournamentData() *tournamentData {
	return &tournamentData{
		scores: make(map[string][]model.Score),
	}
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		data: make(map[string]*tournamentData),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Tournament operations

func (s *Storage) CreateTournament(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[name]; ok {
		return model.ErrTournamentExists
	}
	s.tournaments = append(s.tournaments, name)
	s.data[name] = newTournamentData()
	return nil
}

func (s *Storage) TournamentExists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[name]
	return ok, nil
}

func (s *Storage) Tournaments(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.tournaments))
	copy(out, s.tournaments)
	return out, nil
}

func (s *Storage) ActiveTournament(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, nil
}

func (s *Storage) SetActiveTournament(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[name]; !ok {
		return model.ErrTournamentNotFound
	}
	s.active = name
	return nil
}

// Machine operations

func (s *Storage) SaveMachine(ctx context.Context, tournament string, machine model.Machine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.ErrTournamentNotFound
	}
	for _, m := range td.machines {
		if m.Abbreviation == machine.Abbreviation {
			return model.ErrMachineExists
		}
	}
	td.machines = append(td.machines, machine)
	return nil
}

func (s *Storage) GetMachine(ctx context.Context, tournament, abbreviation string) (model.Machine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.Machine{}, model.ErrTournamentNotFound
	}
	for _, m := range td.machines {
		if m.Abbreviation == abbreviation {
			return m, nil
		}
	}
	return model.Machine{}, model.ErrMachineNotFound
}

func (s *Storage) Machines(ctx context.Context, tournament string) ([]model.Machine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	td, ok := s.data[tournament]
	if !ok {
		return nil, model.ErrTournamentNotFound
	}
	out := make([]model.Machine, len(td.machines))
	copy(out, td.machines)
	return out, nil
}

func (s *Storage) DeleteMachine(ctx context.Context, tournament, abbreviation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.ErrTournamentNotFound
	}
	for i, m := range td.machines {
		if m.Abbreviation == abbreviation {
			td.machines = append(td.machines[:i], td.machines[i+1:]...)
			return nil
		}
	}
	return model.ErrMachineNotFound
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, tournament string, player model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.ErrTournamentNotFound
	}
	for _, p := range td.players {
		if p.Abbreviation == player.Abbreviation {
			return model.ErrPlayerExists
		}
	}
	td.players = append(td.players, player)
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, tournament, abbreviation string) (model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.Player{}, model.ErrTournamentNotFound
	}
	for _, p := range td.players {
		if p.Abbreviation == abbreviation {
			return p, nil
		}
	}
	return model.Player{}, model.ErrPlayerNotFound
}

func (s *Storage) Players(ctx context.Context, tournament string) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	td, ok := s.data[tournament]
	if !ok {
		return nil, model.ErrTournamentNotFound
	}
	out := make([]model.Player, len(td.players))
	copy(out, td.players)
	return out, nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, tournament string, player model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.ErrTournamentNotFound
	}
	for i, p := range td.players {
		if p.Abbreviation == player.Abbreviation {
			td.players[i] = player
			return nil
		}
	}
	return model.ErrPlayerNotFound
}

func (s *Storage) DeletePlayer(ctx context.Context, tournament, abbreviation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.ErrTournamentNotFound
	}
	for i, p := range td.players {
		if p.Abbreviation == abbreviation {
			td.players = append(td.players[:i], td.players[i+1:]...)
			return nil
		}
	}
	return model.ErrPlayerNotFound
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, tournament string, score model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.ErrTournamentNotFound
	}
	abbr := score.PinballAbbreviation
	td.scores[abbr] = append(td.scores[abbr], score)
	return nil
}

func (s *Storage) ScoresForMachine(ctx context.Context, tournament, machineAbbreviation string) ([]model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	td, ok := s.data[tournament]
	if !ok {
		return nil, model.ErrTournamentNotFound
	}
	scores := td.scores[machineAbbreviation]
	out := make([]model.Score, len(scores))
	copy(out, scores)
	return out, nil
}

func (s *Storage) DeleteScore(ctx context.Context, tournament, machineAbbreviation, playerAbbreviation string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.ErrTournamentNotFound
	}
	scores := td.scores[machineAbbreviation]
	for i, score := range scores {
		if score.PlayerAbbreviation == playerAbbreviation && score.Points == points {
			// First match in stored order; duplicates are indistinguishable
			td.scores[machineAbbreviation] = append(scores[:i], scores[i+1:]...)
			return nil
		}
	}
	return model.ErrScoreNotFound
}

func (s *Storage) DeleteScoresForMachine(ctx context.Context, tournament, machineAbbreviation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	td, ok := s.data[tournament]
	if !ok {
		return model.ErrTournamentNotFound
	}
	delete(td.scores, machineAbbreviation)
	return nil
}
