package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aixtraball/pinadmin/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []model.Machine:
		o.printMachines(v)
	case []model.Player:
		o.printPlayers(v)
	case model.Player:
		o.printPlayer(v)
	case ScoresView:
		o.printScoresView(v)
	case []CatalogResult:
		o.printCatalogResults(v)
	case TournamentList:
		o.printTournamentList(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ScoresView is the aggregated, filtered score view rendered to the admin.
type ScoresView struct {
	Tournament  string                `json:"tournament,omitempty"`
	Machines    []model.Machine       `json:"machines"`
	Scores      model.ScoresByMachine `json:"scores"`
	PlayerNames map[string]string     `json:"player_names,omitempty"`
}

// CatalogResult is a catalog candidate annotated with the code it would be
// added under and whether it duplicates an existing machine.
type CatalogResult struct {
	model.CatalogMachine
	Code         string `json:"code"`
	AlreadyAdded bool   `json:"already_added"`
}

// TournamentList pairs the tournament names with the active one.
type TournamentList struct {
	Active string   `json:"active"`
	Names  []string `json:"names"`
}

func (o *Output) printMachines(machines []model.Machine) {
	if len(machines) == 0 {
		fmt.Println("No machines")
		return
	}
	fmt.Printf("Machines (%d):\n", len(machines))
	for _, m := range machines {
		fmt.Printf("  %-6s %s (room %s)\n", m.Abbreviation, m.LongName, m.Room)
	}
}

func (o *Output) printPlayers(players []model.Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		o.printPlayerLine(p)
	}
}

func (o *Output) printPlayer(p model.Player) {
	o.printPlayerLine(p)
}

func (o *Output) printPlayerLine(p model.Player) {
	guestStr := ""
	if p.Guest {
		guestStr = " [guest]"
	}
	fmt.Printf("  %-4s %s%s\n", p.Abbreviation, p.Name, guestStr)
}

func (o *Output) printScoresView(v ScoresView) {
	if v.Tournament != "" {
		fmt.Printf("Tournament: %s\n", v.Tournament)
	}
	if len(v.Machines) == 0 {
		fmt.Println("No machines")
		return
	}

	for _, m := range v.Machines {
		scores := v.Scores[m.Abbreviation]
		fmt.Printf("%s (%s): %d scores\n", m.LongName, m.Abbreviation, len(scores))
		for _, s := range scores {
			name := v.PlayerNames[s.PlayerAbbreviation]
			if name == "" {
				name = s.PlayerAbbreviation
			}
			fmt.Printf("  %s  %-20s %d\n", s.Date, name, s.Points)
		}
	}
}

func (o *Output) printCatalogResults(results []CatalogResult) {
	if len(results) == 0 {
		fmt.Println("No matches")
		return
	}
	fmt.Printf("Catalog matches (%d):\n", len(results))
	for _, r := range results {
		marker := ""
		if r.AlreadyAdded {
			marker = " [already added]"
		}
		fmt.Printf("  %-10s %-6s %s%s\n", r.ID, r.Code, r.Name, marker)
	}
}

func (o *Output) printTournamentList(t TournamentList) {
	if len(t.Names) == 0 {
		fmt.Println("No tournaments")
		return
	}
	fmt.Printf("Tournaments (%d):\n", len(t.Names))
	for _, name := range t.Names {
		marker := ""
		if name == t.Active {
			marker = " [active]"
		}
		fmt.Printf("  %s%s\n", name, marker)
	}
}
