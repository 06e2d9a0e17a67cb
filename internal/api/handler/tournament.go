package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aixtraball/pinadmin/internal/api/apierr"
	"github.com/aixtraball/pinadmin/internal/api/response"
	"github.com/aixtraball/pinadmin/internal/model"
	"github.com/aixtraball/pinadmin/internal/storage"
)

// TournamentHandler handles tournament endpoints
type TournamentHandler struct {
	store storage.Storage
}

// NewTournamentHandler creates a new TournamentHandler
func NewTournamentHandler(store storage.Storage) *TournamentHandler {
	return &TournamentHandler{store: store}
}

// Active handles GET /get_active_tournament. The name is empty until a
// tournament has been activated.
func (h *TournamentHandler) Active(w http.ResponseWriter, r *http.Request) {
	name, err := h.store.ActiveTournament(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, model.ActiveTournament{ActiveTournamentName: name})
}

// SetActive handles POST /set_active_tournament/{name}
func (h *TournamentHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.store.SetActiveTournament(r.Context(), name); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "active tournament set"})
}

// List handles GET /tournaments
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.store.Tournaments(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if tournaments == nil {
		tournaments = []string{}
	}

	response.JSON(w, http.StatusOK, tournaments)
}

// createTournamentRequest is the create-tournament body
type createTournamentRequest struct {
	Name                   string `json:"name"`
	TemplateTournamentName string `json:"template_tournament_name"`
}

// Create handles POST /tournaments. With a template the new tournament is
// seeded with a deep copy of the template's machines, players and scores.
// Creation never changes which tournament is active.
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}

	if req.TemplateTournamentName != "" {
		exists, err := h.store.TournamentExists(r.Context(), req.TemplateTournamentName)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		if !exists {
			apierr.WriteError(w, model.ErrTournamentNotFound)
			return
		}
	}

	if err := h.store.CreateTournament(r.Context(), req.Name); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if req.TemplateTournamentName != "" {
		if err := h.clone(r, req.TemplateTournamentName, req.Name); err != nil {
			apierr.WriteError(w, err)
			return
		}
	}

	response.JSON(w, http.StatusCreated, map[string]string{"message": "tournament created"})
}

// clone copies machines, players and scores from one tournament into
// another.
func (h *TournamentHandler) clone(r *http.Request, from, to string) error {
	ctx := r.Context()

	machines, err := h.store.Machines(ctx, from)
	if err != nil {
		return err
	}
	for _, machine := range machines {
		if err := h.store.SaveMachine(ctx, to, machine); err != nil {
			return err
		}
	}

	players, err := h.store.Players(ctx, from)
	if err != nil {
		return err
	}
	for _, player := range players {
		if err := h.store.SavePlayer(ctx, to, player); err != nil {
			return err
		}
	}

	for _, machine := range machines {
		scores, err := h.store.ScoresForMachine(ctx, from, machine.Abbreviation)
		if err != nil {
			return err
		}
		for _, score := range scores {
			if err := h.store.AppendScore(ctx, to, score); err != nil {
				return err
			}
		}
	}

	return nil
}
