package aggregate

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aixtraball/pinadmin/internal/dependencies/clock"
	"github.com/aixtraball/pinadmin/internal/model"
	"github.com/aixtraball/pinadmin/internal/services/recency"
)

// ScoreFetcher is the slice of the backend client the aggregator needs.
type ScoreFetcher interface {
	ScoresForMachine(ctx context.Context, scope model.Scope, abbreviation string) ([]model.Score, error)
}

// Service joins per-machine score queries into one ScoresByMachine mapping.
type Service struct {
	fetcher ScoreFetcher
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new aggregation service.
func New(fetcher ScoreFetcher, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		clock:   clk,
		logger:  logger.With(slog.String("component", "aggregate")),
	}
}

// ScoresByMachine issues one score query per machine concurrently and
// merges the results under each machine's abbreviation, applying the
// recency mode per machine before the merge.
//
// The join is all-or-nothing: if any single query fails, the whole
// aggregation fails and no partial mapping is returned. On success the
// mapping has an entry for every machine passed in, including an empty
// slice for machines with no scores.
func (s *Service) ScoresByMachine(ctx context.Context, scope model.Scope, machines []model.Machine, mode recency.Mode) (model.ScoresByMachine, error) {
	results := make([][]model.Score, len(machines))

	g, gctx := errgroup.WithContext(ctx)
	for i, machine := range machines {
		g.Go(func() error {
			scores, err := s.fetcher.ScoresForMachine(gctx, scope, machine.Abbreviation)
			if err != nil {
				return err
			}
			results[i] = recency.Filter(scores, mode, s.clock)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn("score aggregation failed",
			slog.String("scope", string(scope)),
			slog.Int("machines", len(machines)),
			slog.String("error", err.Error()))
		return nil, err
	}

	merged := make(model.ScoresByMachine, len(machines))
	for i, machine := range machines {
		merged[machine.Abbreviation] = results[i]
	}

	s.logger.Debug("score aggregation complete",
		slog.String("scope", string(scope)),
		slog.Int("machines", len(machines)),
		slog.Int("scores", merged.TotalScores()))

	return merged, nil
}
