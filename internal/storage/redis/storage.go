package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aixtraball/pinadmin/internal/model"
	"github.com/aixtraball/pinadmin/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Machines and players live in per-tournament hashes with a companion
// order list; scores live in per-machine lists so fetch order is the
// insertion order the client expects.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Tournament operations

func (s *Storage) CreateTournament(ctx context.Context, name string) error {
	exists, err := s.TournamentExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrTournamentExists
	}
	return s.client.RPush(ctx, tournamentsKey(), name).Err()
}

func (s *Storage) TournamentExists(ctx context.Context, name string) (bool, error) {
	names, err := s.client.LRange(ctx, tournamentsKey(), 0, -1).Result()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *Storage) Tournaments(ctx context.Context) ([]string, error) {
	return s.client.LRange(ctx, tournamentsKey(), 0, -1).Result()
}

func (s *Storage) ActiveTournament(ctx context.Context) (string, error) {
	name, err := s.client.Get(ctx, activeTournamentKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

func (s *Storage) SetActiveTournament(ctx context.Context, name string) error {
	exists, err := s.TournamentExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrTournamentNotFound
	}
	return s.client.Set(ctx, activeTournamentKey(), name, 0).Err()
}

// requireTournament fails with ErrTournamentNotFound for unknown scopes.
func (s *Storage) requireTournament(ctx context.Context, name string) error {
	exists, err := s.TournamentExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrTournamentNotFound
	}
	return nil
}

// Machine operations

func (s *Storage) SaveMachine(ctx context.Context, tournament string, machine model.Machine) error {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return err
	}

	exists, err := s.client.HExists(ctx, machinesKey(tournament), machine.Abbreviation).Result()
	if err != nil {
		return err
	}
	if exists {
		return model.ErrMachineExists
	}

	data, err := json.Marshal(machine)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, machinesKey(tournament), machine.Abbreviation, data)
	pipe.RPush(ctx, machineOrderKey(tournament), machine.Abbreviation)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMachine(ctx context.Context, tournament, abbreviation string) (model.Machine, error) {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return model.Machine{}, err
	}

	data, err := s.client.HGet(ctx, machinesKey(tournament), abbreviation).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Machine{}, model.ErrMachineNotFound
		}
		return model.Machine{}, err
	}

	var machine model.Machine
	if err := json.Unmarshal(data, &machine); err != nil {
		return model.Machine{}, err
	}
	return machine, nil
}

func (s *Storage) Machines(ctx context.Context, tournament string) ([]model.Machine, error) {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return nil, err
	}

	order, err := s.client.LRange(ctx, machineOrderKey(tournament), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	machines := make([]model.Machine, 0, len(order))
	for _, abbr := range order {
		data, err := s.client.HGet(ctx, machinesKey(tournament), abbr).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var machine model.Machine
		if err := json.Unmarshal(data, &machine); err != nil {
			return nil, err
		}
		machines = append(machines, machine)
	}
	return machines, nil
}

func (s *Storage) DeleteMachine(ctx context.Context, tournament, abbreviation string) error {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return err
	}

	removed, err := s.client.HDel(ctx, machinesKey(tournament), abbreviation).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return model.ErrMachineNotFound
	}
	return s.client.LRem(ctx, machineOrderKey(tournament), 1, abbreviation).Err()
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, tournament string, player model.Player) error {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return err
	}

	exists, err := s.client.HExists(ctx, playersKey(tournament), player.Abbreviation).Result()
	if err != nil {
		return err
	}
	if exists {
		return model.ErrPlayerExists
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, playersKey(tournament), player.Abbreviation, data)
	pipe.RPush(ctx, playerOrderKey(tournament), player.Abbreviation)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, tournament, abbreviation string) (model.Player, error) {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return model.Player{}, err
	}

	data, err := s.client.HGet(ctx, playersKey(tournament), abbreviation).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Player{}, model.ErrPlayerNotFound
		}
		return model.Player{}, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return model.Player{}, err
	}
	return player, nil
}

func (s *Storage) Players(ctx context.Context, tournament string) ([]model.Player, error) {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return nil, err
	}

	order, err := s.client.LRange(ctx, playerOrderKey(tournament), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	players := make([]model.Player, 0, len(order))
	for _, abbr := range order {
		data, err := s.client.HGet(ctx, playersKey(tournament), abbr).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var player model.Player
		if err := json.Unmarshal(data, &player); err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, tournament string, player model.Player) error {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return err
	}

	exists, err := s.client.HExists(ctx, playersKey(tournament), player.Abbreviation).Result()
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrPlayerNotFound
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, playersKey(tournament), player.Abbreviation, data).Err()
}

func (s *Storage) DeletePlayer(ctx context.Context, tournament, abbreviation string) error {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return err
	}

	removed, err := s.client.HDel(ctx, playersKey(tournament), abbreviation).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return model.ErrPlayerNotFound
	}
	return s.client.LRem(ctx, playerOrderKey(tournament), 1, abbreviation).Err()
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, tournament string, score model.Score) error {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return err
	}

	data, err := json.Marshal(score)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, scoresKey(tournament, score.PinballAbbreviation), data).Err()
}

func (s *Storage) ScoresForMachine(ctx context.Context, tournament, machineAbbreviation string) ([]model.Score, error) {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return nil, err
	}

	raw, err := s.client.LRange(ctx, scoresKey(tournament, machineAbbreviation), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]model.Score, 0, len(raw))
	for _, item := range raw {
		var score model.Score
		if err := json.Unmarshal([]byte(item), &score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, nil
}

func (s *Storage) DeleteScore(ctx context.Context, tournament, machineAbbreviation, playerAbbreviation string, points int) error {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return err
	}

	key := scoresKey(tournament, machineAbbreviation)
	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return err
	}

	for _, item := range raw {
		var score model.Score
		if err := json.Unmarshal([]byte(item), &score); err != nil {
			return err
		}
		if score.PlayerAbbreviation == playerAbbreviation && score.Points == points {
			// LREM with count 1 drops the first occurrence of this exact
			// value, so identical duplicates lose exactly one entry
			return s.client.LRem(ctx, key, 1, item).Err()
		}
	}
	return model.ErrScoreNotFound
}

func (s *Storage) DeleteScoresForMachine(ctx context.Context, tournament, machineAbbreviation string) error {
	if err := s.requireTournament(ctx, tournament); err != nil {
		return err
	}
	return s.client.Del(ctx, scoresKey(tournament, machineAbbreviation)).Err()
}
