package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aixtraball/pinadmin/internal/dependencies/random"
	"github.com/aixtraball/pinadmin/internal/model"
	"github.com/aixtraball/pinadmin/internal/services/abbrev"
)

func newMachineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "machine",
		Short: "Machine management commands",
	}

	cmd.AddCommand(newMachineListCmd())
	cmd.AddCommand(newMachineAddCmd())
	cmd.AddCommand(newMachineDeleteCmd())
	cmd.AddCommand(newMachineSearchCmd())

	return cmd
}

func newMachineListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List machines in the tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			machines, err := backend.Machines(cmd.Context(), scopeFlag())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(machines)
			return nil
		},
	}
}

func newMachineAddCmd() *cobra.Command {
	var abbreviation, name, room string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureUnlocked(); err != nil {
				return err
			}

			machine := model.Machine{
				Abbreviation: abbreviation,
				LongName:     name,
				Room:         room,
			}
			if err := backend.AddMachine(cmd.Context(), machine); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Added machine %s (%s)", name, abbreviation))
			return nil
		},
	}

	cmd.Flags().StringVar(&abbreviation, "abbreviation", "", "Machine abbreviation (required)")
	cmd.Flags().StringVar(&name, "name", "", "Machine name (required)")
	cmd.Flags().StringVar(&room, "room", "", "Room the machine is located in")
	_ = cmd.MarkFlagRequired("abbreviation")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMachineDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <abbreviation>",
		Short: "Delete a machine and its scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureUnlocked(); err != nil {
				return err
			}

			abbreviation := args[0]
			prompt := fmt.Sprintf("Deleting machine %s removes all of its scores. Retype the abbreviation to confirm", abbreviation)
			if err := confirmExact(cmd, prompt, abbreviation); err != nil {
				return err
			}

			if err := backend.DeleteMachine(cmd.Context(), abbreviation); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted machine %s", abbreviation))
			return nil
		},
	}
}

func newMachineSearchCmd() *cobra.Command {
	var addID, room string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the machine catalog",
		Long: `Search the machine catalog for machines matching the query.

Results are annotated with the code each machine would be added under and
whether a machine with that code or name already exists in the tournament.
Use --add with a catalog id to add one of the results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := catalog.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			machines, err := backend.Machines(cmd.Context(), scopeFlag())
			if err != nil {
				return err
			}

			gen := abbrev.New(random.New())
			results := make([]CatalogResult, 0, len(candidates))
			for _, c := range candidates {
				results = append(results, CatalogResult{
					CatalogMachine: c,
					Code:           gen.ResolveCode(c),
					AlreadyAdded:   abbrev.AlreadyAdded(c, machines),
				})
			}

			if addID == "" {
				NewOutput(cfg.Output).Print(results)
				return nil
			}

			if err := ensureUnlocked(); err != nil {
				return err
			}
			for _, r := range results {
				if r.ID != addID {
					continue
				}
				if r.AlreadyAdded {
					return fmt.Errorf("machine %q already added", r.Name)
				}
				machine := model.Machine{
					Abbreviation: r.Code,
					LongName:     r.Name,
					Room:         room,
				}
				if err := backend.AddMachine(cmd.Context(), machine); err != nil {
					return err
				}
				NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Added machine %s (%s)", r.Name, r.Code))
				return nil
			}
			return fmt.Errorf("catalog id %q not in results", addID)
		},
	}

	cmd.Flags().StringVar(&addID, "add", "", "Catalog id of a result to add")
	cmd.Flags().StringVar(&room, "room", "", "Room for the added machine")

	return cmd
}
