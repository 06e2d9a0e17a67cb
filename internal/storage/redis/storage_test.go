package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/aixtraball/pinadmin/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()

	s.Require().NoError(s.storage.CreateTournament(s.ctx, "spring-league"))
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) score(machine, player string, points int) model.Score {
	return model.Score{
		Date:                "2026-03-10",
		PinballAbbreviation: machine,
		PlayerAbbreviation:  player,
		Points:              points,
	}
}

// Tournament tests

func (s *StorageSuite) TestCreateDuplicateTournament() {
	err := s.storage.CreateTournament(s.ctx, "spring-league")
	s.ErrorIs(err, model.ErrTournamentExists)
}

func (s *StorageSuite) TestTournamentsInCreationOrder() {
	s.Require().NoError(s.storage.CreateTournament(s.ctx, "autumn-open"))

	names, err := s.storage.Tournaments(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"spring-league", "autumn-open"}, names)
}

func (s *StorageSuite) TestActiveTournamentDefaultsEmpty() {
	active, err := s.storage.ActiveTournament(s.ctx)
	s.Require().NoError(err)
	s.Empty(active)
}

func (s *StorageSuite) TestSetActiveTournament() {
	s.Require().NoError(s.storage.SetActiveTournament(s.ctx, "spring-league"))

	active, err := s.storage.ActiveTournament(s.ctx)
	s.Require().NoError(err)
	s.Equal("spring-league", active)
}

func (s *StorageSuite) TestSetActiveUnknownTournament() {
	err := s.storage.SetActiveTournament(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrTournamentNotFound)
}

// Machine tests

func (s *StorageSuite) TestSaveAndGetMachine() {
	machine := model.Machine{Abbreviation: "MM", LongName: "Medieval Madness", Room: "main"}
	s.Require().NoError(s.storage.SaveMachine(s.ctx, "spring-league", machine))

	got, err := s.storage.GetMachine(s.ctx, "spring-league", "MM")
	s.Require().NoError(err)
	s.Equal(machine, got)
}

func (s *StorageSuite) TestSaveDuplicateMachine() {
	machine := model.Machine{Abbreviation: "MM", LongName: "Medieval Madness"}
	s.Require().NoError(s.storage.SaveMachine(s.ctx, "spring-league", machine))

	err := s.storage.SaveMachine(s.ctx, "spring-league", machine)
	s.ErrorIs(err, model.ErrMachineExists)
}

func (s *StorageSuite) TestMachinesPreserveInsertionOrder() {
	for _, abbr := range []string{"TZ", "MM", "AFM"} {
		s.Require().NoError(s.storage.SaveMachine(s.ctx, "spring-league", model.Machine{Abbreviation: abbr}))
	}

	machines, err := s.storage.Machines(s.ctx, "spring-league")
	s.Require().NoError(err)
	s.Require().Len(machines, 3)
	s.Equal("TZ", machines[0].Abbreviation)
	s.Equal("MM", machines[1].Abbreviation)
	s.Equal("AFM", machines[2].Abbreviation)
}

func (s *StorageSuite) TestDeleteMachine() {
	s.Require().NoError(s.storage.SaveMachine(s.ctx, "spring-league", model.Machine{Abbreviation: "MM"}))
	s.Require().NoError(s.storage.DeleteMachine(s.ctx, "spring-league", "MM"))

	_, err := s.storage.GetMachine(s.ctx, "spring-league", "MM")
	s.ErrorIs(err, model.ErrMachineNotFound)

	machines, err := s.storage.Machines(s.ctx, "spring-league")
	s.Require().NoError(err)
	s.Empty(machines)
}

func (s *StorageSuite) TestDeleteMachineNotFound() {
	err := s.storage.DeleteMachine(s.ctx, "spring-league", "XX")
	s.ErrorIs(err, model.ErrMachineNotFound)
}

func (s *StorageSuite) TestUnknownTournamentScope() {
	_, err := s.storage.Machines(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrTournamentNotFound)
}

func (s *StorageSuite) TestMachinesScopedByTournament() {
	s.Require().NoError(s.storage.CreateTournament(s.ctx, "autumn-open"))
	s.Require().NoError(s.storage.SaveMachine(s.ctx, "spring-league", model.Machine{Abbreviation: "MM"}))

	machines, err := s.storage.Machines(s.ctx, "autumn-open")
	s.Require().NoError(err)
	s.Empty(machines)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := model.Player{Abbreviation: "AB50", Name: "Al Bo", Guest: true}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, "spring-league", player))

	got, err := s.storage.GetPlayer(s.ctx, "spring-league", "AB50")
	s.Require().NoError(err)
	s.Equal(player, got)
}

func (s *StorageSuite) TestSaveDuplicatePlayer() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, "spring-league", model.Player{Abbreviation: "AB50"}))

	err := s.storage.SavePlayer(s.ctx, "spring-league", model.Player{Abbreviation: "AB50"})
	s.ErrorIs(err, model.ErrPlayerExists)
}

func (s *StorageSuite) TestUpdatePlayer() {
	player := model.Player{Abbreviation: "AB50", Name: "Al Bo"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, "spring-league", player))

	player.Guest = true
	s.Require().NoError(s.storage.UpdatePlayer(s.ctx, "spring-league", player))

	got, err := s.storage.GetPlayer(s.ctx, "spring-league", "AB50")
	s.Require().NoError(err)
	s.True(got.Guest)
}

func (s *StorageSuite) TestUpdateUnknownPlayer() {
	err := s.storage.UpdatePlayer(s.ctx, "spring-league", model.Player{Abbreviation: "XX00"})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayerKeepsOrderListConsistent() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, "spring-league", model.Player{Abbreviation: "AB50"}))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, "spring-league", model.Player{Abbreviation: "CD11"}))

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "spring-league", "AB50"))

	players, err := s.storage.Players(s.ctx, "spring-league")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("CD11", players[0].Abbreviation)
}

// Score tests

func (s *StorageSuite) TestAppendAndListScores() {
	s.Require().NoError(s.storage.AppendScore(s.ctx, "spring-league", s.score("MM", "AB50", 1000)))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "spring-league", s.score("MM", "CD11", 2000)))

	scores, err := s.storage.ScoresForMachine(s.ctx, "spring-league", "MM")
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Equal(1000, scores[0].Points)
	s.Equal(2000, scores[1].Points)
}

func (s *StorageSuite) TestDeleteScoreRemovesExactlyOneDuplicate() {
	s.Require().NoError(s.storage.AppendScore(s.ctx, "spring-league", s.score("MM", "AB50", 1000)))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "spring-league", s.score("MM", "AB50", 1000)))

	s.Require().NoError(s.storage.DeleteScore(s.ctx, "spring-league", "MM", "AB50", 1000))

	scores, err := s.storage.ScoresForMachine(s.ctx, "spring-league", "MM")
	s.Require().NoError(err)
	s.Len(scores, 1)
}

func (s *StorageSuite) TestDeleteScoreNotFound() {
	err := s.storage.DeleteScore(s.ctx, "spring-league", "MM", "AB50", 1000)
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *StorageSuite) TestDeleteScoresForMachine() {
	s.Require().NoError(s.storage.AppendScore(s.ctx, "spring-league", s.score("MM", "AB50", 1000)))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "spring-league", s.score("AFM", "AB50", 500)))

	s.Require().NoError(s.storage.DeleteScoresForMachine(s.ctx, "spring-league", "MM"))

	mm, err := s.storage.ScoresForMachine(s.ctx, "spring-league", "MM")
	s.Require().NoError(err)
	s.Empty(mm)

	afm, err := s.storage.ScoresForMachine(s.ctx, "spring-league", "AFM")
	s.Require().NoError(err)
	s.Len(afm, 1)
}

func (s *StorageSuite) TestScoresScopedByTournament() {
	s.Require().NoError(s.storage.CreateTournament(s.ctx, "autumn-open"))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "spring-league", s.score("MM", "AB50", 1000)))

	scores, err := s.storage.ScoresForMachine(s.ctx, "autumn-open", "MM")
	s.Require().NoError(err)
	s.Empty(scores)
}
