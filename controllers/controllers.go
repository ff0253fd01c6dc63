package controllers

import (
	"context"
	"net/http"
	"time"

	"skillswap_server/helpers"
	"skillswap_server/models"
)

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	helpers.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "Welcome to the Skill Swap API"})
}

// requestContext bounds a handler's store calls by timeout.
func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeout)
}

// respondWithServiceError maps err to a status code and a client-safe message.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	helpers.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// respondWithBadRequest reports an undecodable or invalid request body.
func respondWithBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	helpers.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request payload", err)
}

// mayActAs reports whether the caller may act on behalf of email. Without an
// authenticated caller everything is allowed.
func mayActAs(r *http.Request, email string) bool {
	claims, ok := helpers.GetClaims(r.Context())
	if !ok {
		return true
	}
	return claims.Email == email || claims.Role == models.RoleAdmin
}

func respondForbidden(w http.ResponseWriter, r *http.Request) {
	helpers.RespondWithError(w, r, http.StatusForbidden, "You can only act on your own account")
}
