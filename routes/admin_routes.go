package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up moderation and reporting under /admin. Every
// route requires the admin role when tokens are enforced.
func RegisterAdminRoutes(r *mux.Router, controller *controllers.AdminController, authMW *middleware.AuthMiddleware) {
	adminRouter := r.PathPrefix("/admin").Subrouter()
	adminRouter.Use(authMW.Authenticate, authMW.RequireAdmin)

	adminRouter.HandleFunc("/users", controller.ListUsers).Methods("GET")
	adminRouter.HandleFunc("/user/{id}/ban", controller.BanUser).Methods("PATCH")
	adminRouter.HandleFunc("/user/{id}", controller.DeleteUser).Methods("DELETE")
	adminRouter.HandleFunc("/swaps", controller.ListSwaps).Methods("GET")
	adminRouter.HandleFunc("/swap/{id}", controller.DeleteSwap).Methods("DELETE")
	adminRouter.HandleFunc("/announce", controller.Announce).Methods("POST")
	adminRouter.HandleFunc("/report/users", controller.ReportUsers).Methods("GET")
	adminRouter.HandleFunc("/report/swaps", controller.ReportSwaps).Methods("GET")
}
