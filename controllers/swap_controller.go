package controllers

import (
	"context"
	"net/http"
	"time"

	"skillswap_server/helpers"
	"skillswap_server/models"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

type SwapController struct {
	SwapService *services.SwapService
	timeout     time.Duration
}

func NewSwapController(swapService *services.SwapService, timeout time.Duration) *SwapController {
	return &SwapController{SwapService: swapService, timeout: timeout}
}

type swapStatusRequest struct {
	Status *string `json:"status" validate:"required"`
}

func (c *SwapController) Create(w http.ResponseWriter, r *http.Request) {
	var input models.SwapInput
	if err := helpers.DecodeAndValidate(r, &input); err != nil {
		respondWithBadRequest(w, r, err)
		return
	}
	if !mayActAs(r, input.FromUserEmail) {
		respondForbidden(w, r)
		return
	}

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if _, err := c.SwapService.Create(ctx, input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithStatus(w, r, "success")
}

func (c *SwapController) ListForUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	swaps, err := c.SwapService.ListForUser(ctx, email)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithJSON(w, r, http.StatusOK, swaps)
}

func (c *SwapController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req swapStatusRequest
	if err := helpers.DecodeAndValidate(r, &req); err != nil {
		respondWithBadRequest(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if !c.authorizeSwap(ctx, w, r, id) {
		return
	}
	if err := c.SwapService.UpdateStatus(ctx, id, *req.Status); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithStatus(w, r, "updated")
}

func (c *SwapController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if !c.authorizeSwap(ctx, w, r, id) {
		return
	}
	if err := c.SwapService.Delete(ctx, id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithStatus(w, r, "deleted")
}

// authorizeSwap lets an authenticated caller touch swap id only as one of its
// participants or as an admin. It writes the error response when it refuses.
func (c *SwapController) authorizeSwap(ctx context.Context, w http.ResponseWriter, r *http.Request, id string) bool {
	claims, ok := helpers.GetClaims(r.Context())
	if !ok || claims.Role == models.RoleAdmin {
		return true
	}
	if err := c.SwapService.CheckParticipant(ctx, id, claims.Email); err != nil {
		respondWithServiceError(w, r, err)
		return false
	}
	return true
}
