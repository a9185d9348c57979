package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/notification/domain"
	"github.com/fjod/go_shop/internal/notification/service"
	"github.com/fjod/go_shop/internal/notification/store"
)

const serviceName = "notification-service"

type NotificationHandler struct {
	svc *service.Dispatcher
}

func NewNotificationHandler(svc *service.Dispatcher) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type SendRequestDTO struct {
	UserID  string `json:"userId"`
	Type    string `json:"type"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (dto SendRequestDTO) toRequest() service.SendRequest {
	return service.SendRequest{
		UserID:  dto.UserID,
		Type:    dto.Type,
		Message: dto.Message,
		OrderID: dto.OrderID,
		Email:   dto.Email,
		Phone:   dto.Phone,
	}
}

type listResponseDTO struct {
	Notifications []*domain.Notification `json:"notifications"`
	Count         int                    `json:"count"`
	Service       string                 `json:"service"`
}

type unreadResponseDTO struct {
	Notifications []*domain.Notification `json:"notifications"`
	Count         int                    `json:"count"`
	UserID        string                 `json:"userId"`
}

// bulkErrorDTO marks a failed position in a bulk send; the offending
// request is echoed back.
type bulkErrorDTO struct {
	Error string         `json:"error"`
	Data  SendRequestDTO `json:"data"`
}

type bulkResponseDTO struct {
	Results []interface{} `json:"results"`
	Count   int           `json:"count"`
	Service string        `json:"service"`
}

// POST /notifications
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	n, err := h.svc.Send(req.toRequest())
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			httpx.RespondError(w, http.StatusBadRequest, "User ID, type, and message are required")
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, n)
}

// GET /notifications/{id}
func (h *NotificationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotificationNotFound) {
			httpx.RespondNotFound(w, "Notification not found", id)
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, n)
}

// GET /notifications?userId=&type=&limit=
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	notifications := h.svc.List(query.Get("userId"), query.Get("type"), limit)
	httpx.RespondJSON(w, http.StatusOK, listResponseDTO{
		Notifications: notifications,
		Count:         len(notifications),
		Service:       serviceName,
	})
}

// PUT /notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := h.svc.MarkRead(id)
	if err != nil {
		if errors.Is(err, store.ErrNotificationNotFound) {
			httpx.RespondNotFound(w, "Notification not found", id)
			return
		}
		httpx.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, n)
}

// GET /notifications/user/{userId}/unread
func (h *NotificationHandler) UnreadForUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	notifications := h.svc.UnreadForUser(userID)
	httpx.RespondJSON(w, http.StatusOK, unreadResponseDTO{
		Notifications: notifications,
		Count:         len(notifications),
		UserID:        userID,
	})
}

// Routes mounts the notification endpoints on a router.
func (h *NotificationHandler) Routes(r chi.Router) {
	r.Get("/notifications", h.List)
	r.Post("/notifications", h.Send)
	r.Post("/notifications/bulk", h.SendBulk)
	r.Get("/notifications/user/{userId}/unread", h.UnreadForUser)
	r.Get("/notifications/{id}", h.GetByID)
	r.Put("/notifications/{id}/read", h.MarkRead)
}

// POST /notifications/bulk
func (h *NotificationHandler) SendBulk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notifications []SendRequestDTO `json:"notifications"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Notifications == nil {
		httpx.RespondError(w, http.StatusBadRequest, "Notifications must be an array")
		return
	}

	requests := make([]service.SendRequest, 0, len(req.Notifications))
	for _, dto := range req.Notifications {
		requests = append(requests, dto.toRequest())
	}

	results := h.svc.SendBulk(requests)
	entries := make([]interface{}, 0, len(results))
	for i, res := range results {
		if res.Err != nil {
			entries = append(entries, bulkErrorDTO{
				Error: "User ID, type, and message are required",
				Data:  req.Notifications[i],
			})
			continue
		}
		entries = append(entries, res.Notification)
	}

	httpx.RespondJSON(w, http.StatusCreated, bulkResponseDTO{
		Results: entries,
		Count:   len(entries),
		Service: serviceName,
	})
}
