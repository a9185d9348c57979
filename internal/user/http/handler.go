package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/user/domain"
	"github.com/fjod/go_shop/internal/user/store"
)

const serviceName = "user-service"

type UserHandler struct {
	store store.UserStore
	log   *zap.SugaredLogger
}

func NewUserHandler(store store.UserStore, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{store: store, log: log}
}

type CreateUserRequestDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UpdateUserRequestDTO struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

type listResponseDTO struct {
	Users   []*domain.User `json:"users"`
	Count   int            `json:"count"`
	Service string         `json:"service"`
}

type userResponseDTO struct {
	*domain.User
	Service     string     `json:"service"`
	RequestedAt *time.Time `json:"requestedAt,omitempty"`
}

type deletedResponseDTO struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Service string `json:"service"`
}

// GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.store.List()
	httpx.RespondJSON(w, http.StatusOK, listResponseDTO{
		Users:   users,
		Count:   len(users),
		Service: serviceName,
	})
}

// GET /users/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.store.GetByID(id)
	if err != nil {
		httpx.RespondNotFound(w, "User not found", id)
		return
	}

	now := time.Now().UTC()
	httpx.RespondJSON(w, http.StatusOK, userResponseDTO{User: user, Service: serviceName, RequestedAt: &now})
}

// POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Name == "" || req.Email == "" {
		httpx.RespondError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	role := req.Role
	if role == "" {
		role = domain.DefaultRole
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	h.store.Append(user)
	h.log.Infow("user created", "user_id", user.ID, "role", user.Role)

	httpx.RespondJSON(w, http.StatusCreated, userResponseDTO{User: user, Service: serviceName})
}

// PUT /users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.store.Update(id, func(u *domain.User) {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		now := time.Now().UTC()
		u.UpdatedAt = &now
	})
	if err != nil {
		httpx.RespondNotFound(w, "User not found", id)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, userResponseDTO{User: user, Service: serviceName})
}

// DELETE /users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			httpx.RespondNotFound(w, "User not found", id)
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, deletedResponseDTO{
		Message: "User deleted successfully",
		ID:      id,
		Service: serviceName,
	})
}

// Routes mounts the user endpoints on a router.
func (h *UserHandler) Routes(r chi.Router) {
	r.Get("/users", h.List)
	r.Post("/users", h.Create)
	r.Get("/users/{id}", h.GetByID)
	r.Put("/users/{id}", h.Update)
	r.Delete("/users/{id}", h.Delete)
}
