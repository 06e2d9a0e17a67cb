package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aixtraball/pinadmin/internal/dependencies/clock"
	"github.com/aixtraball/pinadmin/internal/model"
	"github.com/aixtraball/pinadmin/internal/services/aggregate"
	"github.com/aixtraball/pinadmin/internal/services/recency"
	"github.com/aixtraball/pinadmin/internal/services/view"
)

func newScoresCmd() *cobra.Command {
	var latest bool
	var search string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show scores aggregated across all machines",
		Long: `Show scores for every machine in the tournament.

Scores are fetched for all machines concurrently; if any fetch fails, the
whole view fails. --latest restricts the view to scores from today or
yesterday. --search narrows the view to machines whose name matches, or
which hold a score by a matching player. --interactive re-runs the search
against the fetched snapshot as you type queries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope := scopeFlag()

			machines, err := backend.Machines(ctx, scope)
			if err != nil {
				return err
			}
			players, err := backend.Players(ctx, scope)
			if err != nil {
				return err
			}

			mode := recency.ModeAll
			if latest {
				mode = recency.ModeLatest
			}

			agg := aggregate.New(backend, clock.New(), logger)
			scores, err := agg.ScoresByMachine(ctx, scope, machines, mode)
			if err != nil {
				return err
			}

			snapshot := view.Snapshot{
				Machines:    machines,
				Scores:      scores,
				PlayerNames: model.PlayerNameLookup(players),
			}

			out := NewOutput(cfg.Output)
			if interactive {
				return runInteractiveSearch(cmd, snapshot, out)
			}

			filtered := snapshot.Search(search)
			out.Print(ScoresView{
				Tournament:  string(scope),
				Machines:    filtered.Machines,
				Scores:      filtered.Scores,
				PlayerNames: snapshot.PlayerNames,
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&latest, "latest", false, "Only scores from today or yesterday")
	cmd.Flags().StringVar(&search, "search", "", "Filter by machine or player name")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Interactively refilter the fetched snapshot")

	return cmd
}

// runInteractiveSearch reads queries from stdin and refilters the snapshot
// for each one. Queries are debounced so rapid edits only render once. The
// snapshot is never refetched; an empty query restores the full view.
func runInteractiveSearch(cmd *cobra.Command, snapshot view.Snapshot, out *Output) error {
	deb := view.NewDebouncer(view.DebounceInterval)
	defer deb.Close()

	go func() {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			deb.Send(strings.TrimSpace(scanner.Text()))
		}
		deb.Close()
	}()

	filtered := snapshot.Search("")
	printView(out, filtered, snapshot.PlayerNames)
	fmt.Fprintln(cmd.OutOrStdout(), "Type a query and press enter (empty to reset, ctrl-d to quit)")

	for {
		select {
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		case query, ok := <-deb.Queries():
			if !ok {
				return nil
			}
			filtered = snapshot.Search(query)
			printView(out, filtered, snapshot.PlayerNames)
		}
	}
}

func printView(out *Output, v view.View, playerNames map[string]string) {
	out.Print(ScoresView{
		Tournament:  cfg.Tournament,
		Machines:    v.Machines,
		Scores:      v.Scores,
		PlayerNames: playerNames,
	})
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score management commands",
	}

	cmd.AddCommand(newScoreDeleteCmd())
	return cmd
}

func newScoreDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <machine> <player> <points>",
		Short: "Delete a single score entry",
		Long: `Delete the score identified by machine abbreviation, player abbreviation
and point value. If several entries share the same triple, only one is
removed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureUnlocked(); err != nil {
				return err
			}

			points, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("points must be an integer: %w", err)
			}

			prompt := fmt.Sprintf("Delete score %d by %s on %s?", points, args[1], args[0])
			if !confirm(cmd, prompt) {
				NewOutput(cfg.Output).PrintMessage("Aborted")
				return nil
			}

			if err := backend.DeleteScore(cmd.Context(), scopeFlag(), args[0], args[1], points); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Deleted score")
			return nil
		},
	}
}
