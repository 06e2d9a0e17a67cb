package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aixtraball/pinadmin/internal/client"
	"github.com/aixtraball/pinadmin/internal/model"
)

var (
	cfg     *Config
	backend *client.Client
	catalog *client.CatalogClient
	logger  *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pinadmin",
		Short: "Administrative CLI for the pinball-scoring backend",
		Long: `pinadmin is an administrative client for the pinball-scoring backend.

It lists machines, players and scores, performs add/delete operations, and
renders tournament-scoped, time-windowed score views aggregated across all
machines.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))

			backend = client.New(cfg.ServerURL)
			catalog = client.NewCatalog(cfg.CatalogURL, cfg.CatalogToken)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Backend URL (env: PINADMIN_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.CatalogURL, "catalog", cfg.CatalogURL, "Machine catalog URL (env: PINADMIN_CATALOG)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Tournament, "tournament", "t", cfg.Tournament, "Tournament scope; empty uses the backend's active tournament")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&cfg.AssumeYes, "yes", "y", cfg.AssumeYes, "Skip confirmation prompts")

	// Add subcommands
	rootCmd.AddCommand(newMachineCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newTournamentCmd())
	rootCmd.AddCommand(newLockCmd())
	rootCmd.AddCommand(newUnlockCmd())
	rootCmd.AddCommand(newPinCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// scopeFlag returns the explicit tournament scope from the global flag.
func scopeFlag() model.Scope {
	return model.Scope(cfg.Tournament)
}

// confirm asks a yes/no question before a destructive operation.
func confirm(cmd *cobra.Command, prompt string) bool {
	if cfg.AssumeYes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// confirmExact requires the expected text to be retyped. On mismatch the
// operation aborts before the backend is contacted.
func confirmExact(cmd *cobra.Command, prompt, expected string) error {
	if cfg.AssumeYes {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	if strings.TrimSpace(line) != expected {
		return model.ErrValidationMismatch
	}
	return nil
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := backend.Tournaments(cmd.Context()); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Backend reachable")
			return nil
		},
	}
}
