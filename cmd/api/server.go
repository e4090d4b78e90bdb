package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imadgeboyega/soulconnect-backend/internal/auth"
	"github.com/imadgeboyega/soulconnect-backend/internal/chat"
	"github.com/imadgeboyega/soulconnect-backend/internal/common/utils"
	"github.com/imadgeboyega/soulconnect-backend/internal/dating"
)

var startTime = time.Now()

type app struct {
	logger        *slog.Logger
	authService   auth.Service
	chatService   chat.Service
	datingService dating.Service
}

// newRouter builds the route table. CORS wraps the router itself because mux
// answers an unmatched OPTIONS preflight with 405 before router middleware runs.
func newRouter(a *app) http.Handler {
	router := mux.NewRouter()
	authMiddleware := auth.NewMiddleware(a.authService)

	// Health check and metrics
	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth.RegisterRoutes(router, auth.NewHandler(a.authService, a.logger), authMiddleware)
	dating.RegisterRoutes(router, dating.NewHandler(a.datingService, a.logger), authMiddleware)
	chat.RegisterRoutes(router, chat.NewHandler(a.chatService, a.logger), authMiddleware)

	router.Use(loggingMiddleware(a.logger))

	return corsMiddleware(router)
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	})
}

// loggingMiddleware logs every request with its status and duration
func loggingMiddleware(log *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", time.Since(start),
				"remote_addr", r.RemoteAddr)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
