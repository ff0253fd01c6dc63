package controllers

import (
	"net/http"
	"time"

	"skillswap_server/auth"
	"skillswap_server/config"
	"skillswap_server/helpers"
	"skillswap_server/models"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// AccountController handles signup, login and profile requests.
type AccountController struct {
	AccountService *services.AccountService
	authConfig     config.AuthConfig
	timeout        time.Duration
}

func NewAccountController(accountService *services.AccountService, authConfig config.AuthConfig, timeout time.Duration) *AccountController {
	return &AccountController{AccountService: accountService, authConfig: authConfig, timeout: timeout}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Status string          `json:"status"`
	User   *models.Account `json:"user"`
	Token  string          `json:"token,omitempty"`
}

type profileUpdateRequest struct {
	Email string `json:"email" validate:"required"`
	models.ProfileUpdate
}

type visibilityRequest struct {
	Email  string `json:"email" validate:"required"`
	Public *bool  `json:"public" validate:"required"`
}

func (c *AccountController) Signup(w http.ResponseWriter, r *http.Request) {
	var input models.SignupInput
	if err := helpers.DecodeAndValidate(r, &input); err != nil {
		respondWithBadRequest(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if err := c.AccountService.Signup(ctx, input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	helpers.RespondWithJSON(w, r, http.StatusOK, helpers.StatusResponse{Status: "success", Message: "User created"})
}

// Login returns the account and, when a signing secret is configured, a
// bearer token for it.
func (c *AccountController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := helpers.DecodeAndValidate(r, &req); err != nil {
		respondWithBadRequest(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	account, err := c.AccountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	resp := loginResponse{Status: "success", User: account}
	if c.authConfig.JWTSecret != "" {
		token, err := auth.GenerateToken(account.Email, account.Role, []byte(c.authConfig.JWTSecret), c.authConfig.TokenLifetime())
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		resp.Token = token
	}

	helpers.RespondWithJSON(w, r, http.StatusOK, resp)
}

func (c *AccountController) ListPublic(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	accounts, err := c.AccountService.ListPublic(ctx)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithJSON(w, r, http.StatusOK, accounts)
}

func (c *AccountController) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	account, err := c.AccountService.GetByEmail(ctx, email)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithJSON(w, r, http.StatusOK, account)
}

// UpdateProfile merges the allowed profile fields in the body into the
// account named by its email. Role and banned are ignored.
func (c *AccountController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := helpers.DecodeAndValidate(r, &req); err != nil {
		respondWithBadRequest(w, r, err)
		return
	}
	if !mayActAs(r, req.Email) {
		respondForbidden(w, r)
		return
	}

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if err := c.AccountService.UpdateProfile(ctx, req.Email, req.ProfileUpdate); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithStatus(w, r, "success")
}

func (c *AccountController) SetVisibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if err := helpers.DecodeAndValidate(r, &req); err != nil {
		respondWithBadRequest(w, r, err)
		return
	}
	if !mayActAs(r, req.Email) {
		respondForbidden(w, r)
		return
	}

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	if err := c.AccountService.SetVisibility(ctx, req.Email, *req.Public); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	helpers.RespondWithStatus(w, r, "success")
}
