package chat

import (
	"encoding/json"
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

func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	convs, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("list conversations failed", "user_id", user.ID, "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get conversations")
		return
	}

	utils.SuccessResponse(w, convs, http.StatusOK)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conv, err := h.service.Get(r.Context(), user.ID, mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}

	utils.SuccessResponse(w, conv, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.service.Send(r.Context(), user.ID, mux.Vars(r)["id"], req.Content)
	if err != nil {
		h.respondError(w, err)
		return
	}

	utils.SuccessResponse(w, msg, http.StatusCreated)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	changed, err := h.service.MarkRead(r.Context(), user.ID, mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err)
		return
	}

	utils.SuccessResponse(w, map[string]int{"marked_read": changed}, http.StatusOK)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrConversationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmptyMessage):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrServiceClosed):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error("chat request failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
