package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aixtraball/pinadmin/internal/model"
)

// Machines fetches all pinball machines in the given scope.
func (c *Client) Machines(ctx context.Context, scope model.Scope) ([]model.Machine, error) {
	var machines []model.Machine
	if err := c.do(ctx, "list machines", http.MethodGet, "/pinball", scopeQuery(scope), nil, &machines); err != nil {
		return nil, err
	}
	return machines, nil
}

// AddMachine registers a new machine with the backend.
func (c *Client) AddMachine(ctx context.Context, machine model.Machine) error {
	return c.do(ctx, "add machine", http.MethodPost, "/pinball", nil, machine, nil)
}

// DeleteMachine removes a machine. The backend cascades the delete to the
// machine's scores.
func (c *Client) DeleteMachine(ctx context.Context, abbreviation string) error {
	path := "/pinball/" + url.PathEscape(abbreviation)
	return c.do(ctx, "delete machine", http.MethodDelete, path, nil, nil, nil)
}

// ScoresForMachine fetches the scores recorded on one machine in the given
// scope, in the backend's stored order.
func (c *Client) ScoresForMachine(ctx context.Context, scope model.Scope, abbreviation string) ([]model.Score, error) {
	var scores []model.Score
	path := "/scores/pinball/" + url.PathEscape(abbreviation)
	if err := c.do(ctx, "list scores", http.MethodGet, path, scopeQuery(scope), nil, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// DeleteScore removes one score identified by the (machine, player, points)
// triple. When duplicates exist the backend removes an unspecified one of
// them; there is no score identifier to do better with.
func (c *Client) DeleteScore(ctx context.Context, scope model.Scope, machine, player string, points int) error {
	path := fmt.Sprintf("/delete_score/%s/%s/%d", url.PathEscape(machine), url.PathEscape(player), points)
	return c.do(ctx, "delete score", http.MethodDelete, path, scopeQuery(scope), nil, nil)
}

// Players fetches all players in the given scope.
func (c *Client) Players(ctx context.Context, scope model.Scope) ([]model.Player, error) {
	var players []model.Player
	if err := c.do(ctx, "list players", http.MethodGet, "/players", scopeQuery(scope), nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// AddPlayer registers a new player. The abbreviation is expected to have
// been generated client-side (see services/abbrev).
func (c *Client) AddPlayer(ctx context.Context, scope model.Scope, player model.Player) error {
	return c.do(ctx, "add player", http.MethodPost, "/player", scopeQuery(scope), player, nil)
}

// DeletePlayer removes a player by abbreviation.
func (c *Client) DeletePlayer(ctx context.Context, scope model.Scope, abbreviation string) error {
	path := "/player/" + url.PathEscape(abbreviation)
	return c.do(ctx, "delete player", http.MethodDelete, path, scopeQuery(scope), nil, nil)
}

// ToggleGuest flips a player's guest flag.
func (c *Client) ToggleGuest(ctx context.Context, scope model.Scope, abbreviation string) error {
	path := "/player/" + url.PathEscape(abbreviation) + "/toggle_guest_status"
	return c.do(ctx, "toggle guest", http.MethodPut, path, scopeQuery(scope), nil, nil)
}

// ActiveTournament fetches the name of the backend's active tournament.
// An empty name means no tournament is active yet.
func (c *Client) ActiveTournament(ctx context.Context) (string, error) {
	var active model.ActiveTournament
	if err := c.do(ctx, "get active tournament", http.MethodGet, "/get_active_tournament", nil, nil, &active); err != nil {
		return "", err
	}
	return active.ActiveTournamentName, nil
}

// SetActiveTournament makes the named tournament the backend's active one.
func (c *Client) SetActiveTournament(ctx context.Context, name string) error {
	path := "/set_active_tournament/" + url.PathEscape(name)
	return c.do(ctx, "set active tournament", http.MethodPost, path, nil, nil, nil)
}

// Tournaments fetches the list of tournament names.
func (c *Client) Tournaments(ctx context.Context) ([]string, error) {
	var tournaments []string
	if err := c.do(ctx, "list tournaments", http.MethodGet, "/tournaments", nil, nil, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

// createTournamentRequest is the create-tournament body.
type createTournamentRequest struct {
	Name                   string `json:"name"`
	TemplateTournamentName string `json:"template_tournament_name,omitempty"`
}

// CreateTournament creates a tournament, optionally cloning machines,
// players and scores from a template tournament. Creation never changes
// which tournament is active.
func (c *Client) CreateTournament(ctx context.Context, name, template string) error {
	body := createTournamentRequest{Name: name, TemplateTournamentName: template}
	return c.do(ctx, "create tournament", http.MethodPost, "/tournaments", nil, body, nil)
}
