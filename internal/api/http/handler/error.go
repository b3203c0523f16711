package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/newsletter-server/internal/logger"
	"github.com/dtroode/newsletter-server/internal/model"
)

// errorStatus maps a workflow error to an HTTP status and a client safe message.
func errorStatus(err error) (int, string) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Reason
	case errors.Is(err, model.ErrUnknownToken):
		return http.StatusUnauthorized, "unknown confirmation token"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// handleError logs client faults at Info and server faults at Error, then writes the response.
func handleError(w http.ResponseWriter, log *logger.Logger, msg string, err error, args ...any) {
	code, message := errorStatus(err)

	args = append(args, "status", code, "error", err.Error())
	if code >= http.StatusInternalServerError {
		log.Error(msg, args...)
	} else {
		log.Info(msg, args...)
	}

	respondWithError(w, code, message)
}
