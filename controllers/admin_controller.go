package controllers

import (
	"errors"
	"net/http"
	"time"

	"skillswap_server/helpers"
	"skillswap_server/models"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// AdminController exposes moderation and reporting.
type AdminController struct {
	ModerationService *services.ModerationService
	timeout           time.Duration
}

func NewAdminController(moderationService *services.ModerationService, timeout time.Duration) *AdminController {
	return &AdminController{ModerationService: moderationService, timeout: timeout}
}

func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	accounts, err := c.ModerationService.ListAccounts(ctx)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithJSON(w, r, http.StatusOK, accounts)
}

func (c *AdminController) ReportUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	accounts, err := c.ModerationService.ReportAccounts(ctx)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithJSON(w, r, http.StatusOK, accounts)
}

func (c *AdminController) BanUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if err := c.ModerationService.BanAccount(ctx, mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithStatus(w, r, "banned")
}

func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if err := c.ModerationService.DeleteAccount(ctx, mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithStatus(w, r, "deleted")
}

func (c *AdminController) ListSwaps(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	swaps, err := c.ModerationService.ListSwaps(ctx)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithJSON(w, r, http.StatusOK, swaps)
}

func (c *AdminController) ReportSwaps(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	swaps, err := c.ModerationService.ReportSwaps(ctx)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithJSON(w, r, http.StatusOK, swaps)
}

func (c *AdminController) DeleteSwap(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if err := c.ModerationService.DeleteSwap(ctx, mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithStatus(w, r, "deleted")
}

func (c *AdminController) Announce(w http.ResponseWriter, r *http.Request) {
	var input models.AnnouncementInput
	if err := helpers.DecodeJSON(r, &input); err != nil {
		respondWithBadRequest(w, r, err)
		return
	}
	if input == nil {
		respondWithBadRequest(w, r, errors.New("announcement body must be a JSON object"))
		return
	}

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if _, err := c.ModerationService.PostAnnouncement(ctx, input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithStatus(w, r, "announcement posted")
}
