package routes

import (
	"skillswap_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up signup and login under /auth
func RegisterAuthRoutes(r *mux.Router, controller *controllers.AccountController) {
	authRouter := r.PathPrefix("/auth").Subrouter()

	authRouter.HandleFunc("/signup", controller.Signup).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
}
