package cli

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type LockSuite struct {
	suite.Suite
	cfg *Config
}

func TestLockSuite(t *testing.T) {
	suite.Run(t, new(LockSuite))
}

func (s *LockSuite) SetupTest() {
	s.cfg = DefaultConfig()
	s.cfg.ConfigDir = s.T().TempDir()
}

func (s *LockSuite) TestStartsLocked() {
	s.False(s.cfg.IsAuthenticated())
}

func (s *LockSuite) TestDefaultPINAcceptedBeforeSet() {
	ok, err := s.cfg.VerifyPIN(DefaultPIN)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.cfg.VerifyPIN("0000")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *LockSuite) TestUnlockAndLock() {
	s.Require().NoError(s.cfg.Unlock(DefaultPIN))
	s.True(s.cfg.IsAuthenticated())

	s.Require().NoError(s.cfg.Lock())
	s.False(s.cfg.IsAuthenticated())
}

func (s *LockSuite) TestUnlockWithWrongPIN() {
	err := s.cfg.Unlock("9999")

	s.Error(err)
	s.False(s.cfg.IsAuthenticated())
}

func (s *LockSuite) TestLockWhenAlreadyLocked() {
	s.NoError(s.cfg.Lock())
}

func (s *LockSuite) TestSetPINReplacesDefault() {
	s.Require().NoError(s.cfg.SetPIN(DefaultPIN, "4321"))

	ok, err := s.cfg.VerifyPIN("4321")
	s.Require().NoError(err)
	s.True(ok)

	// The default PIN no longer works once a custom one is stored
	ok, err = s.cfg.VerifyPIN(DefaultPIN)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *LockSuite) TestSetPINRequiresCurrentPIN() {
	err := s.cfg.SetPIN("9999", "4321")

	s.Error(err)

	ok, verr := s.cfg.VerifyPIN(DefaultPIN)
	s.Require().NoError(verr)
	s.True(ok)
}

func (s *LockSuite) TestUnlockWithNewPIN() {
	s.Require().NoError(s.cfg.SetPIN(DefaultPIN, "4321"))

	s.Error(s.cfg.Unlock(DefaultPIN))
	s.Require().NoError(s.cfg.Unlock("4321"))
	s.True(s.cfg.IsAuthenticated())
}
