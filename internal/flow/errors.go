package flow

import (
	"errors"
	"net/http"

	"github.com/mcatur/sol/internal/advisor"
	"github.com/mcatur/sol/internal/outreach"
)

// Domain errors for flow operations.
var (
	ErrInvalidID    = errors.New("malformed session id")
	ErrNotFound     = errors.New("session not found")
	ErrWrongPhase   = errors.New("action not allowed in current phase")
	ErrUnknownOffer = errors.New("offer not in consultation")
	ErrNoGuidance   = errors.New("current question has no guidance")
)

// MapHTTPStatus maps flow domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrWrongPhase):
		return http.StatusConflict
	case errors.Is(err, ErrUnknownOffer), errors.Is(err, ErrNoGuidance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, outreach.ErrUnknownAudience):
		return http.StatusUnprocessableEntity
	case errors.Is(err, advisor.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
