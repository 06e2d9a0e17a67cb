package view

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aixtraball/pinadmin/internal/model"
)

type SnapshotSuite struct {
	suite.Suite
	snapshot Snapshot
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSuite))
}

func (s *SnapshotSuite) SetupTest() {
	machines := []model.Machine{
		{Abbreviation: "MM", LongName: "Medieval Madness", Room: "main"},
		{Abbreviation: "AFM", LongName: "Attack From Mars", Room: "main"},
		{Abbreviation: "TZ", LongName: "Twilight Zone", Room: "back"},
	}
	scores := model.ScoresByMachine{
		"MM": {
			{Date: "2026-03-10", PinballAbbreviation: "MM", PlayerAbbreviation: "AS73", Points: 1000},
			{Date: "2026-03-10", PinballAbbreviation: "MM", PlayerAbbreviation: "BJ21", Points: 2000},
		},
		"AFM": {
			{Date: "2026-03-09", PinballAbbreviation: "AFM", PlayerAbbreviation: "BJ21", Points: 500},
		},
		"TZ": {},
	}
	s.snapshot = Snapshot{
		Machines: machines,
		Scores:   scores,
		PlayerNames: map[string]string{
			"AS73": "Alice Smith",
			"BJ21": "Bob Jones",
		},
	}
}

func (s *SnapshotSuite) TestEmptyQueryIsIdentity() {
	result := s.snapshot.Search("")

	s.Equal(s.snapshot.Machines, result.Machines)
	s.Equal(s.snapshot.Scores, result.Scores)
}

func (s *SnapshotSuite) TestMachineNameMatchKeepsAllScores() {
	result := s.snapshot.Search("medieval")

	s.Require().Len(result.Machines, 1)
	s.Equal("MM", result.Machines[0].Abbreviation)
	s.Len(result.Scores["MM"], 2)
}

func (s *SnapshotSuite) TestPlayerNameMatchKeepsOnlyMatchingScores() {
	result := s.snapshot.Search("alice")

	s.Require().Len(result.Machines, 1)
	s.Equal("MM", result.Machines[0].Abbreviation)
	s.Require().Len(result.Scores["MM"], 1)
	s.Equal("AS73", result.Scores["MM"][0].PlayerAbbreviation)
}

func (s *SnapshotSuite) TestPlayerMatchAcrossMachines() {
	result := s.snapshot.Search("bob")

	s.Len(result.Machines, 2)
	s.Len(result.Scores["MM"], 1)
	s.Len(result.Scores["AFM"], 1)
}

func (s *SnapshotSuite) TestCaseInsensitive() {
	lower := s.snapshot.Search("mars")
	upper := s.snapshot.Search("MARS")

	s.Equal(lower, upper)
	s.Len(lower.Machines, 1)
}

func (s *SnapshotSuite) TestScorelessMachineNeverMatches() {
	// Twilight Zone has no scores, so even a direct name hit drops it.
	result := s.snapshot.Search("twilight")

	s.Empty(result.Machines)
}

func (s *SnapshotSuite) TestNoMatch() {
	result := s.snapshot.Search("zzz")

	s.Empty(result.Machines)
	s.Empty(result.Scores)
}

func (s *SnapshotSuite) TestUnknownPlayerAbbreviationDoesNotMatch() {
	s.snapshot.Scores["MM"] = append(s.snapshot.Scores["MM"], model.Score{
		PinballAbbreviation: "MM", PlayerAbbreviation: "XX99", Points: 10,
	})

	result := s.snapshot.Search("xx99")

	s.Empty(result.Machines)
}

func (s *SnapshotSuite) TestSearchDoesNotMutateSnapshot() {
	before := len(s.snapshot.Scores["MM"])

	_ = s.snapshot.Search("alice")
	_ = s.snapshot.Search("")

	s.Len(s.snapshot.Scores["MM"], before)
	s.Len(s.snapshot.Machines, 3)
}

func (s *SnapshotSuite) TestRefilterFromSameSnapshot() {
	// Narrow then broaden: later queries see the full snapshot, not the
	// previous result.
	narrow := s.snapshot.Search("alice")
	s.Len(narrow.Machines, 1)

	broad := s.snapshot.Search("bob")
	s.Len(broad.Machines, 2)
}
