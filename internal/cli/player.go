package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aixtraball/pinadmin/internal/dependencies/random"
	"github.com/aixtraball/pinadmin/internal/model"
	"github.com/aixtraball/pinadmin/internal/services/abbrev"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerToggleGuestCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players in the tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := backend.Players(cmd.Context(), scopeFlag())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(players)
			return nil
		},
	}
}

func newPlayerAddCmd() *cobra.Command {
	var first, last string
	var guest bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player",
		Long: `Add a player to the tournament.

The player's abbreviation is derived from their name: the first letter of
each name part, followed by a two-digit checksum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureUnlocked(); err != nil {
				return err
			}

			gen := abbrev.New(random.New())
			player := model.Player{
				Abbreviation: gen.PlayerCode(first, last),
				Name:         strings.TrimSpace(first + " " + last),
				Guest:        guest,
			}
			if err := backend.AddPlayer(cmd.Context(), scopeFlag(), player); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Added player %s (%s)", player.Name, player.Abbreviation))
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name (required)")
	cmd.Flags().StringVar(&last, "last", "", "Last name (required)")
	cmd.Flags().BoolVar(&guest, "guest", false, "Mark the player as a guest")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <abbreviation>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureUnlocked(); err != nil {
				return err
			}

			abbreviation := args[0]
			if !confirm(cmd, fmt.Sprintf("Delete player %s?", abbreviation)) {
				NewOutput(cfg.Output).PrintMessage("Aborted")
				return nil
			}

			if err := backend.DeletePlayer(cmd.Context(), scopeFlag(), abbreviation); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted player %s", abbreviation))
			return nil
		},
	}
}

func newPlayerToggleGuestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-guest <abbreviation>",
		Short: "Toggle a player's guest status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureUnlocked(); err != nil {
				return err
			}

			if err := backend.ToggleGuest(cmd.Context(), scopeFlag(), args[0]); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Toggled guest status for %s", args[0]))
			return nil
		},
	}
}
