package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPIN applies until an admin sets their own PIN.
const DefaultPIN = "1234"

// pinPath is where the bcrypt hash of the PIN is stored.
func (c *Config) pinPath() string {
	return filepath.Join(c.ConfigDir, "pin")
}

// authPath marks the CLI as unlocked while it exists.
func (c *Config) authPath() string {
	return filepath.Join(c.ConfigDir, "authenticated")
}

// IsAuthenticated reports whether the CLI is currently unlocked.
func (c *Config) IsAuthenticated() bool {
	_, err := os.Stat(c.authPath())
	return err == nil
}

// VerifyPIN checks a PIN against the stored hash, falling back to the
// default PIN when none has been set.
func (c *Config) VerifyPIN(pin string) (bool, error) {
	hash, err := os.ReadFile(c.pinPath())
	if err != nil {
		if os.IsNotExist(err) {
			return pin == DefaultPIN, nil
		}
		return false, err
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(pin)) == nil, nil
}

// Unlock verifies the PIN and persists the authenticated marker.
func (c *Config) Unlock(pin string) error {
	ok, err := c.VerifyPIN(pin)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("incorrect PIN")
	}

	if err := os.MkdirAll(c.ConfigDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(c.authPath(), []byte("1"), 0600)
}

// Lock removes the authenticated marker.
func (c *Config) Lock() error {
	if err := os.Remove(c.authPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SetPIN replaces the stored PIN after verifying the current one.
func (c *Config) SetPIN(current, next string) error {
	ok, err := c.VerifyPIN(current)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("incorrect PIN")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.ConfigDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(c.pinPath(), hash, 0600)
}

// ensureUnlocked guards destructive commands behind the PIN gate.
func ensureUnlocked() error {
	if !cfg.IsAuthenticated() {
		return fmt.Errorf("locked: run 'pinadmin unlock' first")
	}
	return nil
}

func newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Lock the CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Lock(); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Locked")
			return nil
		},
	}
}

func newUnlockCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the CLI with a PIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Unlock(pin); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Unlocked")
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "PIN (required)")
	_ = cmd.MarkFlagRequired("pin")

	return cmd
}

func newPinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "PIN management commands",
	}

	cmd.AddCommand(newPinSetCmd())
	return cmd
}

func newPinSetCmd() *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the PIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(next) != 4 {
				return fmt.Errorf("--new must be 4 digits")
			}
			if err := cfg.SetPIN(current, next); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("PIN updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current PIN (required)")
	cmd.Flags().StringVar(&next, "new", "", "New PIN (required)")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}
