package auth

import (
	"net/http"

	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *Middleware) {
	api := router.PathPrefix("/api/v1/auth").Subrouter()

	// Public routes
	api.HandleFunc("/signin", handler.SignIn).Methods("POST")
	api.HandleFunc("/signup", handler.SignUp).Methods("POST")
	api.HandleFunc("/signout", handler.SignOut).Methods("POST")

	// Protected routes
	api.Handle("/session", authMiddleware.Authenticate(http.HandlerFunc(handler.Session))).Methods("GET")
}
