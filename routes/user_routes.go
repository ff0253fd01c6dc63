package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up profile routes under /user
func RegisterUserRoutes(r *mux.Router, controller *controllers.AccountController, authMW *middleware.AuthMiddleware) {
	userRouter := r.PathPrefix("/user").Subrouter()

	// /public must be registered before /{email}
	userRouter.HandleFunc("/public", controller.ListPublic).Methods("GET")
	userRouter.Handle("/update", protect(authMW, controller.UpdateProfile)).Methods("PUT")
	userRouter.Handle("/visibility", protect(authMW, controller.SetVisibility)).Methods("PATCH")
	userRouter.HandleFunc("/{email}", controller.GetByEmail).Methods("GET")
}
