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

// MachineHandler handles machine endpoints
type MachineHandler struct {
	store storage.Storage
}

// NewMachineHandler creates a new MachineHandler
func NewMachineHandler(store storage.Storage) *MachineHandler {
	return &MachineHandler{store: store}
}

// List handles GET /pinball
func (h *MachineHandler) List(w http.ResponseWriter, r *http.Request) {
	tournament, err := resolveTournament(r, h.store)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	machines, err := h.store.Machines(r.Context(), tournament)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, machines)
}

// Add handles POST /pinball
func (h *MachineHandler) Add(w http.ResponseWriter, r *http.Request) {
	var machine model.Machine
	if err := json.NewDecoder(r.Body).Decode(&machine); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if machine.Abbreviation == "" || machine.LongName == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("abbreviation and long_name are required"))
		return
	}

	tournament, err := resolveTournament(r, h.store)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.store.SaveMachine(r.Context(), tournament, machine); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, machine)
}

// Delete handles DELETE /pinball/{abbreviation}. Deleting a machine
// cascades to its scores.
func (h *MachineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	abbreviation := mux.Vars(r)["abbreviation"]

	tournament, err := resolveTournament(r, h.store)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.store.DeleteMachine(r.Context(), tournament, abbreviation); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if err := h.store.DeleteScoresForMachine(r.Context(), tournament, abbreviation); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
