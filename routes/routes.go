package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/dispatch/handlers"
	"p9e.in/dispatch/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(api *handlers.API) http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/login", api.Login).Methods("POST")

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.SecurityHeaders)
	protected.Use(middleware.JWTMiddleware)

	protected.HandleFunc("/token", api.GetCurrentUser).Methods("GET")

	protected.HandleFunc("/initial-data", api.InitialData).Methods("GET")
	protected.HandleFunc("/trucks", api.SaveTruck).Methods("POST")
	protected.HandleFunc("/trucks/{plate}", api.DeleteTruck).Methods("DELETE")
	protected.HandleFunc("/trips", api.SaveTrip).Methods("POST")
	protected.HandleFunc("/trips/{id}", api.DeleteTrip).Methods("DELETE")
	protected.HandleFunc("/notes", api.GetNote).Methods("GET")
	protected.HandleFunc("/notes", api.SaveNote).Methods("POST")
	protected.HandleFunc("/fds", api.SetOutOfService).Methods("POST")

	// =====================================================
	// Admin Routes (privileged maintenance operations)
	// =====================================================
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", api.Register).Methods("POST")
	admin.HandleFunc("/export", api.ExportFleet).Methods("GET")
	admin.HandleFunc("/trucks/{plate}", api.ForceDeleteTruck).Methods("DELETE")
	admin.HandleFunc("/{entity}/{key}", api.RawFieldPatch).Methods("PATCH")

	return r
}
