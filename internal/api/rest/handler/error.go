package handler

import (
	"errors"
	"net/http"

	"github.com/shooping/list-server/internal/google"
	"github.com/shooping/list-server/internal/model"
)

// handleError maps service errors to HTTP responses. All refresh-token
// failures collapse into one 401 body: the response must not tell an
// unknown secret apart from a revoked or expired one.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrTokenNotFound),
		errors.Is(err, model.ErrTokenReused),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenAlreadyRevoked):
		writeError(w, http.StatusUnauthorized, "invalid_refresh_token", "refresh token is invalid")

	case errors.Is(err, model.ErrAccessTokenExpired),
		errors.Is(err, model.ErrAccessTokenMalformed),
		errors.Is(err, model.ErrBadSignature):
		writeError(w, http.StatusUnauthorized, "invalid_token", "access token is invalid")

	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")

	case errors.Is(err, google.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid_google_token", "google token verification failed")

	case errors.Is(err, model.ErrUnauthorized):
		writeError(w, http.StatusForbidden, "forbidden", "access denied")

	case errors.Is(err, model.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email_taken", "email is already registered")

	case errors.Is(err, model.ErrDuplicateItem):
		writeError(w, http.StatusConflict, "duplicate_item", err.Error())

	case errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "not_found", "resource not found")

	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrInvalidListTitle),
		errors.Is(err, model.ErrInvalidListDescription),
		errors.Is(err, model.ErrInvalidItemName),
		errors.Is(err, model.ErrInvalidItemUnit),
		errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrInvalidUnitPrice),
		errors.Is(err, model.ErrListLimitExceeded):
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())

	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
