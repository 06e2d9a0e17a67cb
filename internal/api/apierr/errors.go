package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aixtraball/pinadmin/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeMachineNotFound    = "MACHINE_NOT_FOUND"
	CodeMachineExists      = "MACHINE_EXISTS"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodePlayerExists       = "PLAYER_EXISTS"
	CodeScoreNotFound      = "SCORE_NOT_FOUND"
	CodeTournamentNotFound = "TOURNAMENT_NOT_FOUND"
	CodeTournamentExists   = "TOURNAMENT_EXISTS"
	CodeNoActiveTournament = "NO_ACTIVE_TOURNAMENT"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrMachineNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMachineNotFound, "Machine not found"}}
	case errors.Is(err, model.ErrMachineExists):
		return &httpError{http.StatusConflict, APIError{CodeMachineExists, "Machine already exists"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, "Player already exists"}}
	case errors.Is(err, model.ErrScoreNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeScoreNotFound, "Score not found"}}
	case errors.Is(err, model.ErrTournamentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTournamentNotFound, "Tournament not found"}}
	case errors.Is(err, model.ErrTournamentExists):
		return &httpError{http.StatusConflict, APIError{CodeTournamentExists, "Tournament already exists"}}
	case errors.Is(err, model.ErrNoActiveTournament):
		return &httpError{http.StatusConflict, APIError{CodeNoActiveTournament, "No active tournament; pass tournament_name or set one"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
