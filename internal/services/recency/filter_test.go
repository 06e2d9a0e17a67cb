package recency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aixtraball/pinadmin/internal/dependencies/mocks"
	"github.com/aixtraball/pinadmin/internal/model"
)

type FilterSuite struct {
	suite.Suite
	clock *mocks.MockClock
}

func TestFilterSuite(t *testing.T) {
	suite.Run(t, new(FilterSuite))
}

func (s *FilterSuite) SetupTest() {
	// Mid-afternoon on 2026-03-10
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local))
}

func (s *FilterSuite) score(date string, points int) model.Score {
	return model.Score{
		Date:                date,
		PinballAbbreviation: "MM",
		PlayerAbbreviation:  "AB53",
		Points:              points,
	}
}

func (s *FilterSuite) TestAllModePassesThrough() {
	scores := []model.Score{
		s.score("2020-01-01", 100),
		s.score("2026-03-10", 200),
	}

	result := Filter(scores, ModeAll, s.clock)

	s.Equal(scores, result)
}

func (s *FilterSuite) TestAllModeNilBecomesEmpty() {
	result := Filter(nil, ModeAll, s.clock)

	s.NotNil(result)
	s.Empty(result)
}

func (s *FilterSuite) TestLatestKeepsTodayAndYesterday() {
	scores := []model.Score{
		s.score("2026-03-10", 100),
		s.score("2026-03-09", 200),
		s.score("2026-03-08", 300),
		s.score("2025-03-10", 400),
	}

	result := Filter(scores, ModeLatest, s.clock)

	s.Len(result, 2)
	s.Equal("2026-03-10", result[0].Date)
	s.Equal("2026-03-09", result[1].Date)
}

func (s *FilterSuite) TestLatestIsCalendarDayNotRollingWindow() {
	// Just after midnight: a score from two calendar days ago is out even
	// though it is within 48 hours.
	s.clock.Set(time.Date(2026, 3, 10, 0, 30, 0, 0, time.Local))

	scores := []model.Score{
		s.score("2026-03-09", 100),
		s.score("2026-03-08", 200),
	}

	result := Filter(scores, ModeLatest, s.clock)

	s.Len(result, 1)
	s.Equal("2026-03-09", result[0].Date)
}

func (s *FilterSuite) TestLatestAcrossMonthBoundary() {
	s.clock.Set(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))

	scores := []model.Score{
		s.score("2026-03-01", 100),
		s.score("2026-02-28", 200),
		s.score("2026-02-27", 300),
	}

	result := Filter(scores, ModeLatest, s.clock)

	s.Len(result, 2)
}

func (s *FilterSuite) TestLatestEmptyResultIsNonNil() {
	scores := []model.Score{s.score("2020-01-01", 100)}

	result := Filter(scores, ModeLatest, s.clock)

	s.NotNil(result)
	s.Empty(result)
}

func (s *FilterSuite) TestLatestIsIdempotent() {
	scores := []model.Score{
		s.score("2026-03-10", 100),
		s.score("2026-03-08", 200),
	}

	once := Filter(scores, ModeLatest, s.clock)
	twice := Filter(once, ModeLatest, s.clock)

	s.Equal(once, twice)
}
