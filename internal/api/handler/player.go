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

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	store storage.Storage
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(store storage.Storage) *PlayerHandler {
	return &PlayerHandler{store: store}
}

// List handles GET /players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	tournament, err := resolveTournament(r, h.store)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	players, err := h.store.Players(r.Context(), tournament)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, players)
}

// Add handles POST /player
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var player model.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if player.Abbreviation == "" || player.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name and abbreviation are required"))
		return
	}

	tournament, err := resolveTournament(r, h.store)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.store.SavePlayer(r.Context(), tournament, player); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, player)
}

// Delete handles DELETE /player/{abbreviation}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	abbreviation := mux.Vars(r)["abbreviation"]

	tournament, err := resolveTournament(r, h.store)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.store.DeletePlayer(r.Context(), tournament, abbreviation); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ToggleGuest handles PUT /player/{abbreviation}/toggle_guest_status
func (h *PlayerHandler) ToggleGuest(w http.ResponseWriter, r *http.Request) {
	abbreviation := mux.Vars(r)["abbreviation"]

	tournament, err := resolveTournament(r, h.store)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	player, err := h.store.GetPlayer(r.Context(), tournament, abbreviation)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	player.Guest = !player.Guest
	if err := h.store.UpdatePlayer(r.Context(), tournament, player); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, player)
}
