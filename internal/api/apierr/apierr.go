package apierr

import (
	"errors"
	"net/http"

	"pixel_casino/internal/service"
	"pixel_casino/pkg/resp"
)

// Status HTTP статус для ошибки сервиса
func Status(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidBet),
		errors.Is(err, service.ErrBetNotAllowed),
		errors.Is(err, service.ErrInvalidSelection),
		errors.Is(err, service.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUnknownGame),
		errors.Is(err, service.ErrBonusNotFound),
		errors.Is(err, service.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrRoundInProgress),
		errors.Is(err, service.ErrNoActiveRound),
		errors.Is(err, service.ErrBonusClaimed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write Пишет ошибку сервиса. Текст внутренних ошибок не раскрывается
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	resp.WriteError(w, status, msg)
}
