package handler

import (
	"net/http"

	"github.com/aixtraball/pinadmin/internal/model"
	"github.com/aixtraball/pinadmin/internal/storage"
)

// resolveTournament picks the tournament a request operates on: the
// explicit tournament_name query parameter when present, the active
// tournament otherwise.
func resolveTournament(r *http.Request, store storage.Storage) (string, error) {
	if name := r.URL.Query().Get("tournament_name"); name != "" {
		return name, nil
	}

	active, err := store.ActiveTournament(r.Context())
	if err != nil {
		return "", err
	}
	if active == "" {
		return "", model.ErrNoActiveTournament
	}
	return active, nil
}
