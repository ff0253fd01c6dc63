package controllers

import (
	"net/http"
	"time"

	"skillswap_server/helpers"
	"skillswap_server/services"
)

// MediaController hands out presigned avatar URLs.
type MediaController struct {
	MediaService *services.MediaService
	timeout      time.Duration
}

func NewMediaController(mediaService *services.MediaService, timeout time.Duration) *MediaController {
	return &MediaController{MediaService: mediaService, timeout: timeout}
}

type uploadURLRequest struct {
	Email    string `json:"email" validate:"required"`
	FileName string `json:"file_name" validate:"required"`
	FileType string `json:"file_type" validate:"required"`
}

type readURLRequest struct {
	Key string `json:"key" validate:"required"`
}

// AvatarUploadURL returns a presigned upload URL and the key to save as the
// profile's avatar_key once the upload succeeds.
func (c *MediaController) AvatarUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
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

	url, key, err := c.MediaService.UploadURL(ctx, req.Email, req.FileName, req.FileType)
	if err != nil {
		helpers.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate pre-signed URL", err)
		return
	}
	helpers.RespondWithJSON(w, r, http.StatusOK, map[string]string{"url": url, "key": key})
}

func (c *MediaController) ReadURL(w http.ResponseWriter, r *http.Request) {
	var req readURLRequest
	if err := helpers.DecodeAndValidate(r, &req); err != nil {
		respondWithBadRequest(w, r, err)
		return
	}

	ctx, cancel := requestContext(r, c.timeout)
	defer cancel()

	url, err := c.MediaService.ReadURL(ctx, req.Key)
	if err != nil {
		helpers.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate read pre-signed URL", err)
		return
	}
	helpers.RespondWithJSON(w, r, http.StatusOK, map[string]string{"url": url})
}
