package storage

import (
	"context"

	"github.com/aixtraball/pinadmin/internal/model"
)

// Storage defines the interface for the development backend's persistence.
// Machines, players and scores are scoped by tournament name; listings
// preserve insertion order, which is the order the client sees scores in.
type Storage interface {
	// Tournament operations
	CreateTournament(ctx context.Context, name string) error
	TournamentExists(ctx context.Context, name string) (bool, error)
	Tournaments(ctx context.Context) ([]string, error)
	ActiveTournament(ctx context.Context) (string, error)
	SetActiveTournament(ctx context.Context, name string) error

	// Machine operations
	SaveMachine(ctx context.Context, tournament string, machine model.Machine) error
	GetMachine(ctx context.Context, tournament, abbreviation string) (model.Machine, error)
	Machines(ctx context.Context, tournament string) ([]model.Machine, error)
	DeleteMachine(ctx context.Context, tournament, abbreviation string) error

	// Player operations
	SavePlayer(ctx context.Context, tournament string, player model.Player) error
	GetPlayer(ctx context.Context, tournament, abbreviation string) (model.Player, error)
	Players(ctx context.Context, tournament string) ([]model.Player, error)
	UpdatePlayer(ctx context.Context, tournament string, player model.Player) error
	DeletePlayer(ctx context.Context, tournament, abbreviation string) error

	// Score operations. DeleteScore removes exactly one score matching the
	// (machine, player, points) triple; which one is unspecified when
	// duplicates exist.
	AppendScore(ctx context.Context, tournament string, score model.Score) error
	ScoresForMachine(ctx context.Context, tournament, machineAbbreviation string) ([]model.Score, error)
	DeleteScore(ctx context.Context, tournament, machineAbbreviation, playerAbbreviation string, points int) error
	DeleteScoresForMachine(ctx context.Context, tournament, machineAbbreviation string) error
}
