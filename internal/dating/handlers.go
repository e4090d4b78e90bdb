package dating

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/soulconnect-backend/internal/auth"
	"github.com/imadgeboyega/soulconnect-backend/internal/common/utils"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matches, err := h.service.Discover(r.Context(), user.ID)
	if err != nil {
		h.respondError(w, err, "Failed to generate matches")
		return
	}

	utils.SuccessResponse(w, FeedResponse{Matches: matches, Total: len(matches)}, http.StatusOK)
}

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matches, err := h.service.Matches(r.Context(), user.ID)
	if err != nil {
		h.respondError(w, err, "Failed to get matches")
		return
	}

	utils.SuccessResponse(w, FeedResponse{Matches: matches, Total: len(matches)}, http.StatusOK)
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.service.Like(r.Context(), user.ID, mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err, "Failed to like match")
		return
	}

	utils.SuccessResponse(w, result, http.StatusOK)
}

func (h *Handler) Pass(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Pass(r.Context(), user.ID, mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err, "Failed to pass match")
		return
	}

	utils.MessageResponse(w, "Passed", http.StatusOK)
}

func (h *Handler) StartChat(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conv, err := h.service.StartChat(r.Context(), user.ID, mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err, "Failed to start chat")
		return
	}

	utils.SuccessResponse(w, conv, http.StatusOK)
}

func (h *Handler) GetCompatibility(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	report, err := h.service.Compatibility(r.Context(), user.ID, mux.Vars(r)["userId"])
	if err != nil {
		h.respondError(w, err, "Failed to calculate compatibility")
		return
	}

	utils.SuccessResponse(w, report, http.StatusOK)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.service.Profile(r.Context(), user.ID)
	if err != nil {
		h.respondError(w, err, "Failed to get profile")
		return
	}

	utils.SuccessResponse(w, profile, http.StatusOK)
}

func (h *Handler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrProfileNotFound), errors.Is(err, ErrMatchNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrFeedNotLoaded):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidProfile):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error(fallback, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
