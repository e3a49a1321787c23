package user_api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"contra-api/internal/logger"
	"contra-api/internal/models"
	"contra-api/internal/utils"

	"github.com/go-chi/chi/v5"
)

// UserService is what the handlers need from the service layer.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	GetUserByID(ctx context.Context, id string) (*models.UserDetail, error)
}

type Handler struct {
	UserService UserService
	Logger      *logger.Logger
}

const userNotFoundMessage = "User not found"

func NewHandler(service UserService, log *logger.Logger) *Handler {
	return &Handler{
		UserService: service,
		Logger:      log,
	}
}

// RegisterRoutes mounts the user endpoints on a router already scoped to
// the users prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListUsers)
	r.Get("/{id}", h.GetUserByID)
}

// ListUsers handles GET /api/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		h.Logger.Error("USERS", fmt.Sprintf("Failed to list users: %v", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, users, h.Logger)
}

// GetUserByID handles GET /api/users/{id}
func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when one is set, leaving the segment escaped
	id := chi.URLParam(r, "id")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(id)
		if err != nil {
			utils.WriteJSON(w, http.StatusNotFound, utils.MessageResponse{Message: userNotFoundMessage}, h.Logger)
			return
		}
		id = decoded
	}

	user, err := h.UserService.GetUserByID(r.Context(), id)
	if err != nil {
		h.Logger.Error("USERS", fmt.Sprintf("Failed to get user %s: %v", id, err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if user == nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.MessageResponse{Message: userNotFoundMessage}, h.Logger)
		return
	}

	utils.WriteJSON(w, http.StatusOK, user, h.Logger)
}
