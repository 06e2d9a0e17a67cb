package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aixtraball/pinadmin/internal/api/handler"
	"github.com/aixtraball/pinadmin/internal/api/middleware"
	"github.com/aixtraball/pinadmin/internal/storage"
)

// RouterConfig holds configuration for the backend router
type RouterConfig struct {
	Logger  *slog.Logger
	Storage storage.Storage
}

// NewRouter creates the backend router with all routes configured. The
// paths mirror the production scoring backend so the admin client can be
// pointed at either.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	machineHandler := handler.NewMachineHandler(cfg.Storage)
	playerHandler := handler.NewPlayerHandler(cfg.Storage)
	scoreHandler := handler.NewScoreHandler(cfg.Storage)
	tournamentHandler := handler.NewTournamentHandler(cfg.Storage)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.WithRequestID)
	r.Use(middleware.Logging(cfg.Logger))

	// Machine routes
	r.HandleFunc("/pinball", machineHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/pinball", machineHandler.Add).Methods(http.MethodPost)
	r.HandleFunc("/pinball/{abbreviation}", machineHandler.Delete).Methods(http.MethodDelete)

	// Score routes
	r.HandleFunc("/scores/pinball/{abbreviation}", scoreHandler.ListForMachine).Methods(http.MethodGet)
	r.HandleFunc("/delete_score/{machine}/{player}/{points}", scoreHandler.Delete).Methods(http.MethodDelete)

	// Player routes
	r.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/player", playerHandler.Add).Methods(http.MethodPost)
	r.HandleFunc("/player/{abbreviation}", playerHandler.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/player/{abbreviation}/toggle_guest_status", playerHandler.ToggleGuest).Methods(http.MethodPut)

	// Tournament routes
	r.HandleFunc("/get_active_tournament", tournamentHandler.Active).Methods(http.MethodGet)
	r.HandleFunc("/set_active_tournament/{name}", tournamentHandler.SetActive).Methods(http.MethodPost)
	r.HandleFunc("/tournaments", tournamentHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/tournaments", tournamentHandler.Create).Methods(http.MethodPost)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
