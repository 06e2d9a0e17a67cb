package scope

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aixtraball/pinadmin/internal/model"
	"github.com/aixtraball/pinadmin/internal/testutil"
)

// fakeBackend is an in-memory stand-in for the tournament endpoints.
type fakeBackend struct {
	active      string
	tournaments []string
	setErr      error
	createErr   error
	activeErr   error
}

func (f *fakeBackend) ActiveTournament(ctx context.Context) (string, error) {
	return f.active, f.activeErr
}

func (f *fakeBackend) SetActiveTournament(ctx context.Context, name string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.active = name
	return nil
}

func (f *fakeBackend) Tournaments(ctx context.Context) ([]string, error) {
	return f.tournaments, nil
}

func (f *fakeBackend) CreateTournament(ctx context.Context, name, template string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tournaments = append(f.tournaments, name)
	return nil
}

type ManagerSuite struct {
	suite.Suite
	backend *fakeBackend
	manager *Manager
	ctx     context.Context
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.backend = &fakeBackend{
		active:      "spring-league",
		tournaments: []string{"spring-league", "autumn-open"},
	}
	s.manager = New(s.backend, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ManagerSuite) TestScopeStartsUnset() {
	_, ok := s.manager.Current()
	s.False(ok)
}

func (s *ManagerSuite) TestRefreshAdoptsBackendActive() {
	err := s.manager.Refresh(s.ctx)

	s.Require().NoError(err)
	scope, ok := s.manager.Current()
	s.True(ok)
	s.Equal(model.Scope("spring-league"), scope)
}

func (s *ManagerSuite) TestRefreshWithNoActiveTournament() {
	s.backend.active = ""

	err := s.manager.Refresh(s.ctx)

	s.Require().NoError(err)
	_, ok := s.manager.Current()
	s.False(ok)
}

func (s *ManagerSuite) TestRefreshDoesNotNotify() {
	ch := s.manager.Subscribe()

	err := s.manager.Refresh(s.ctx)

	s.Require().NoError(err)
	select {
	case <-ch:
		s.Fail("refresh must not notify subscribers")
	default:
	}
}

func (s *ManagerSuite) TestSetActiveMovesScopeAndNotifies() {
	ch := s.manager.Subscribe()

	err := s.manager.SetActive(s.ctx, "autumn-open")

	s.Require().NoError(err)
	scope, ok := s.manager.Current()
	s.True(ok)
	s.Equal(model.Scope("autumn-open"), scope)
	s.Equal("autumn-open", s.backend.active)

	select {
	case <-ch:
	default:
		s.Fail("expected a reload notification")
	}
}

func (s *ManagerSuite) TestFailedSetActiveLeavesScopeUntouched() {
	s.Require().NoError(s.manager.Refresh(s.ctx))
	ch := s.manager.Subscribe()
	s.backend.setErr = errors.New("tournament not found")

	err := s.manager.SetActive(s.ctx, "nonexistent")

	s.Error(err)
	scope, ok := s.manager.Current()
	s.True(ok)
	s.Equal(model.Scope("spring-league"), scope)

	select {
	case <-ch:
		s.Fail("failed switch must not notify")
	default:
	}
}

func (s *ManagerSuite) TestNotifyReachesAllSubscribers() {
	ch1 := s.manager.Subscribe()
	ch2 := s.manager.Subscribe()

	s.Require().NoError(s.manager.SetActive(s.ctx, "autumn-open"))

	for _, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		default:
			s.Fail("subscriber missed the notification")
		}
	}
}

func (s *ManagerSuite) TestFullSubscriberBufferDropsBroadcast() {
	ch := s.manager.Subscribe()

	s.Require().NoError(s.manager.SetActive(s.ctx, "autumn-open"))
	s.Require().NoError(s.manager.SetActive(s.ctx, "spring-league"))

	// One reload stays queued; the second broadcast was dropped.
	<-ch
	select {
	case <-ch:
		s.Fail("expected exactly one queued notification")
	default:
	}
}

func (s *ManagerSuite) TestCreateDoesNotChangeScopeOrNotify() {
	s.Require().NoError(s.manager.Refresh(s.ctx))
	ch := s.manager.Subscribe()

	err := s.manager.Create(s.ctx, "winter-cup", "spring-league")

	s.Require().NoError(err)
	scope, _ := s.manager.Current()
	s.Equal(model.Scope("spring-league"), scope)
	s.Contains(s.backend.tournaments, "winter-cup")

	select {
	case <-ch:
		s.Fail("create must not notify")
	default:
	}
}

func (s *ManagerSuite) TestTournamentsPassThrough() {
	names, err := s.manager.Tournaments(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{"spring-league", "autumn-open"}, names)
}
