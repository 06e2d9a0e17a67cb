package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aixtraball/pinadmin/internal/services/scope"
)

func newTournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Tournament management commands",
	}

	cmd.AddCommand(newTournamentListCmd())
	cmd.AddCommand(newTournamentActiveCmd())
	cmd.AddCommand(newTournamentSetActiveCmd())
	cmd.AddCommand(newTournamentCreateCmd())

	return cmd
}

func newTournamentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tournaments",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := backend.Tournaments(cmd.Context())
			if err != nil {
				return err
			}
			active, err := backend.ActiveTournament(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(TournamentList{Active: active, Names: names})
			return nil
		},
	}
}

func newTournamentActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "Show the active tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := backend.ActiveTournament(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(active)
			return nil
		},
	}
}

func newTournamentSetActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-active <name>",
		Short: "Switch the active tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureUnlocked(); err != nil {
				return err
			}

			mgr := scope.New(backend, logger)
			if err := mgr.SetActive(cmd.Context(), args[0]); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Active tournament: %s", args[0]))
			return nil
		},
	}
}

func newTournamentCreateCmd() *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tournament",
		Long: `Create a tournament. With --template, machines, players and scores are
copied from the named tournament. The active tournament is not changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureUnlocked(); err != nil {
				return err
			}

			mgr := scope.New(backend, logger)
			if err := mgr.Create(cmd.Context(), args[0], template); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Created tournament %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "Tournament to copy machines, players and scores from")

	return cmd
}
