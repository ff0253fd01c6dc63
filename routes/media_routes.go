package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up presigned avatar URL routes under /media
func RegisterMediaRoutes(r *mux.Router, controller *controllers.MediaController, authMW *middleware.AuthMiddleware) {
	mediaRouter := r.PathPrefix("/media").Subrouter()

	mediaRouter.Handle("/avatar/upload-url", protect(authMW, controller.AvatarUploadURL)).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controller.ReadURL).Methods("POST")
}
