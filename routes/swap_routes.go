package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterSwapRoutes sets up swap request routes under /swap
func RegisterSwapRoutes(r *mux.Router, controller *controllers.SwapController, authMW *middleware.AuthMiddleware) {
	swapRouter := r.PathPrefix("/swap").Subrouter()

	swapRouter.Handle("/request", protect(authMW, controller.Create)).Methods("POST")
	swapRouter.HandleFunc("/user/{email}", controller.ListForUser).Methods("GET")
	swapRouter.Handle("/{id}", protect(authMW, controller.UpdateStatus)).Methods("PATCH")
	swapRouter.Handle("/{id}", protect(authMW, controller.Delete)).Methods("DELETE")
}
