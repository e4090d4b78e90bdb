// internal/auth/handlers.go

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/imadgeboyega/soulconnect-backend/internal/common/utils"
)

// Handler holds dependencies for auth endpoints
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates a new auth handler
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SignIn handles email/password sign-in
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountNotFound):
			utils.ErrorResponse(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrInvalidPassword):
			utils.ErrorResponse(w, err.Error(), http.StatusUnauthorized)
		default:
			h.logger.Error("sign in failed", "error", err)
			utils.ErrorResponse(w, "Failed to sign in", http.StatusInternalServerError)
		}
		return
	}

	utils.SuccessResponse(w, session, http.StatusOK)
}

// SignUp handles account registration
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, ErrAccountExists) {
			utils.ErrorResponse(w, err.Error(), http.StatusConflict)
			return
		}
		h.logger.Error("sign up failed", "error", err)
		utils.ErrorResponse(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, session, http.StatusCreated)
}

// SignOut revokes the session behind the bearer token
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	token := extractToken(r)
	if token == "" {
		utils.ErrorResponse(w, "Missing or invalid authorization header", http.StatusUnauthorized)
		return
	}

	if err := h.service.SignOut(r.Context(), token); err != nil {
		if errors.Is(err, ErrInvalidSession) {
			utils.ErrorResponse(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}
		h.logger.Error("sign out failed", "error", err)
		utils.ErrorResponse(w, "Failed to sign out", http.StatusInternalServerError)
		return
	}

	utils.MessageResponse(w, "Signed out successfully", http.StatusOK)
}

// Session returns the signed-in user
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	utils.SuccessResponse(w, user, http.StatusOK)
}
