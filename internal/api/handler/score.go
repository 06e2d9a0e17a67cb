package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aixtraball/pinadmin/internal/api/apierr"
	"github.com/aixtraball/pinadmin/internal/api/response"
	"github.com/aixtraball/pinadmin/internal/storage"
)

// ScoreHandler handles score endpoints
type ScoreHandler struct {
	store storage.Storage
}

// NewScoreHandler creates a new ScoreHandler
func NewScoreHandler(store storage.Storage) *ScoreHandler {
	return &ScoreHandler{store: store}
}

// ListForMachine handles GET /scores/pinball/{abbreviation}
func (h *ScoreHandler) ListForMachine(w http.ResponseWriter, r *http.Request) {
	abbreviation := mux.Vars(r)["abbreviation"]

	tournament, err := resolveTournament(r, h.store)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	scores, err := h.store.ScoresForMachine(r.Context(), tournament, abbreviation)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, scores)
}

// Delete handles DELETE /delete_score/{machine}/{player}/{points}.
// Scores have no identifier; the triple addresses the first match in
// stored order, so duplicates lose exactly one entry.
func (h *ScoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	machine := vars["machine"]
	player := vars["player"]

	points, err := strconv.Atoi(vars["points"])
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("points must be an integer"))
		return
	}

	tournament, err := resolveTournament(r, h.store)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.store.DeleteScore(r.Context(), tournament, machine, player, points); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
