package dating

import (
	"github.com/gorilla/mux"

	"github.com/imadgeboyega/soulconnect-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/dating").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Discovery feed
	api.HandleFunc("/discover", handler.Discover).Methods("GET")
	api.HandleFunc("/matches", handler.GetMatches).Methods("GET")

	// Swipe actions
	api.HandleFunc("/matches/{id}/like", handler.Like).Methods("POST")
	api.HandleFunc("/matches/{id}/pass", handler.Pass).Methods("POST")
	api.HandleFunc("/matches/{id}/chat", handler.StartChat).Methods("POST")

	// Compatibility
	api.HandleFunc("/compatibility/{userId}", handler.GetCompatibility).Methods("GET")
	api.HandleFunc("/profile", handler.GetProfile).Methods("GET")
}
