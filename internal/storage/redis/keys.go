package redis

import "fmt"

// Key prefix for all backend data
const keyPrefix = "pinballd"

// tournamentsKey returns the Redis key for the ordered tournament name list
func tournamentsKey() string {
	return fmt.Sprintf("%s:tournaments", keyPrefix)
}

// activeTournamentKey returns the Redis key for the active tournament name
func activeTournamentKey() string {
	return fmt.Sprintf("%s:active_tournament", keyPrefix)
}

// machinesKey returns the Redis key for a tournament's machine hash
func machinesKey(tournament string) string {
	return fmt.Sprintf("%s:t:%s:machines", keyPrefix, tournament)
}

// machineOrderKey returns the Redis key for a tournament's machine insertion order
func machineOrderKey(tournament string) string {
	return fmt.Sprintf("%s:t:%s:machine_order", keyPrefix, tournament)
}

// playersKey returns the Redis key for a tournament's player hash
func playersKey(tournament string) string {
	return fmt.Sprintf("%s:t:%s:players", keyPrefix, tournament)
}

// playerOrderKey returns the Redis key for a tournament's player insertion order
func playerOrderKey(tournament string) string {
	return fmt.Sprintf("%s:t:%s:player_order", keyPrefix, tournament)
}

// scoresKey returns the Redis key for the ordered score list of one machine
func scoresKey(tournament, machineAbbreviation string) string {
	return fmt.Sprintf("%s:t:%s:scores:%s", keyPrefix, tournament, machineAbbreviation)
}
