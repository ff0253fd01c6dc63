package routes

import (
	"log/slog"
	"net/http"

	"skillswap_server/controllers"
	"skillswap_server/middleware"

	"github.com/gorilla/mux"
)

// Controllers bundles the handlers mounted by NewRouter. Media is optional.
type Controllers struct {
	Accounts *controllers.AccountController
	Swaps    *controllers.SwapController
	Admin    *controllers.AdminController
	Media    *controllers.MediaController
}

// RegisterRoutes sets up the health and welcome routes.
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
}

// NewRouter builds the application router. A non-nil socketHandler is
// mounted at /socket.io/.
func NewRouter(c Controllers, authMW *middleware.AuthMiddleware, socketHandler http.Handler, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.NewTraceMiddleware(logger))

	RegisterRoutes(r)
	RegisterAuthRoutes(r, c.Accounts)
	RegisterUserRoutes(r, c.Accounts, authMW)
	RegisterSwapRoutes(r, c.Swaps, authMW)
	RegisterAdminRoutes(r, c.Admin, authMW)
	if c.Media != nil {
		RegisterMediaRoutes(r, c.Media, authMW)
	}
	if socketHandler != nil {
		r.PathPrefix("/socket.io/").Handler(socketHandler)
	}

	return r
}

func protect(authMW *middleware.AuthMiddleware, h http.HandlerFunc) http.Handler {
	return authMW.Authenticate(h)
}
