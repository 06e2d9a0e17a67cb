package abbrev

import (
	"fmt"
	"strings"

	"github.com/aixtraball/pinadmin/internal/dependencies/random"
	"github.com/aixtraball/pinadmin/internal/model"
)

// fallbackAlphabet is the character set for random machine codes.
const fallbackAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// fallbackLength is the length of a random machine code. These codes are
// not checksum-based and are not validated against player codes.
const fallbackLength = 3

// Generator derives player abbreviations and machine fallback codes.
type Generator struct {
	random random.Random
}

// New creates a new Generator.
func New(rnd random.Random) *Generator {
	return &Generator{random: rnd}
}

// PlayerCode derives the deterministic player abbreviation from a name
// pair: the uppercased first characters of the first and last name,
// followed by a two-digit checksum. Different name pairs can legitimately
// produce the same code; the checksum reduces but does not eliminate
// collisions, and nothing beyond the backend's uniqueness check rejects
// them.
func (g *Generator) PlayerCode(firstName, lastName string) string {
	return initial(firstName) + initial(lastName) + checksum(firstName, lastName)
}

// MachineFallbackCode generates a random code for a catalog machine that
// has no shortname.
func (g *Generator) MachineFallbackCode() string {
	return g.random.String(fallbackLength, fallbackAlphabet)
}

// ResolveCode returns the code a catalog candidate would be added under:
// its shortname when it has one, a random fallback code otherwise.
func (g *Generator) ResolveCode(candidate model.CatalogMachine) string {
	if candidate.Shortname != "" {
		return candidate.Shortname
	}
	return g.MachineFallbackCode()
}

// AlreadyAdded reports whether a catalog candidate duplicates an existing
// machine: its shortname matches an existing abbreviation or its full name
// matches an existing long name, both case-insensitive. The check is
// advisory; it is not re-validated against concurrent additions.
func AlreadyAdded(candidate model.CatalogMachine, machines []model.Machine) bool {
	for _, machine := range machines {
		if candidate.Shortname != "" && strings.EqualFold(candidate.Shortname, machine.Abbreviation) {
			return true
		}
		if strings.EqualFold(candidate.Name, machine.LongName) {
			return true
		}
	}
	return false
}

// initial returns the uppercased first character of a name, or empty for
// an empty name.
func initial(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

// checksum is the two-digit, zero-padded sum of the character codes of
// both names, mod 100.
func checksum(firstName, lastName string) string {
	return fmt.Sprintf("%02d", (charSum(firstName)+charSum(lastName))%100)
}

func charSum(s string) int {
	sum := 0
	for _, r := range s {
		sum += int(r)
	}
	return sum
}
