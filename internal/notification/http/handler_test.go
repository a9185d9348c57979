package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/notification/service"
	"github.com/fjod/go_shop/internal/notification/store"
	"github.com/fjod/go_shop/pkg/logger"
)

func newHandler() *NotificationHandler {
	return NewNotificationHandler(service.NewDispatcher(store.NewMemoryStore(), logger.NewNop()))
}

func withID(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func send(t *testing.T, handler *NotificationHandler, payload string) map[string]interface{} {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/notifications", strings.NewReader(payload))
	handler.Send(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody(t, rec)
}

func TestSend_Created(t *testing.T) {
	handler := newHandler()

	body := send(t, handler, `{"userId":"user-1","type":"order_confirmed","message":"hi","orderId":"order-1"}`)
	assert.Equal(t, "sent", body["status"])
	assert.Equal(t, "order-1", body["orderId"])
	assert.NotEmpty(t, body["id"])
}

func TestSend_MissingFields(t *testing.T) {
	handler := newHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/notifications", strings.NewReader(`{"userId":"user-1"}`))
	handler.Send(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User ID, type, and message are required", decodeBody(t, rec)["error"])
}

func TestGetByID_NotFound(t *testing.T) {
	handler := newHandler()

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest("GET", "/notifications/nope", nil), "id", "nope")
	handler.GetByID(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Notification not found", body["error"])
	assert.Equal(t, "nope", body["id"])
}

func TestList_FilterAndCount(t *testing.T) {
	handler := newHandler()
	send(t, handler, `{"userId":"user-1","type":"order_confirmed","message":"a"}`)
	send(t, handler, `{"userId":"user-2","type":"order_confirmed","message":"b"}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/notifications?userId=user-1", nil)
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, "notification-service", body["service"])
}

func TestList_InvalidLimit(t *testing.T) {
	handler := newHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/notifications?limit=abc", nil)
	handler.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkRead_Flow(t *testing.T) {
	handler := newHandler()
	id := send(t, handler, `{"userId":"user-1","type":"order_confirmed","message":"hi"}`)["id"].(string)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest("PUT", "/notifications/"+id+"/read", nil), "id", id)
	handler.MarkRead(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "read", body["status"])
	assert.NotEmpty(t, body["readAt"])
}

func TestUnreadForUser(t *testing.T) {
	handler := newHandler()
	send(t, handler, `{"userId":"user-1","type":"order_confirmed","message":"a"}`)
	send(t, handler, `{"userId":"user-1","type":"order_shipped","message":"b"}`)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest("GET", "/notifications/user/user-1/unread", nil), "userId", "user-1")
	handler.UnreadForUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, "user-1", body["userId"])
}

func TestSendBulk_MixedResults(t *testing.T) {
	handler := newHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/notifications/bulk", strings.NewReader(`{
		"notifications": [
			{"userId":"user-1","type":"order_confirmed","message":"ok"},
			{"userId":"","type":"order_confirmed","message":"bad"}
		]
	}`))
	handler.SendBulk(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])

	results := body["results"].([]interface{})
	require.Len(t, results, 2)

	first := results[0].(map[string]interface{})
	assert.Equal(t, "sent", first["status"])

	second := results[1].(map[string]interface{})
	assert.Equal(t, "User ID, type, and message are required", second["error"])
	assert.NotNil(t, second["data"])
}

func TestSendBulk_NotAnArray(t *testing.T) {
	handler := newHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/notifications/bulk", strings.NewReader(`{"notifications": null}`))
	handler.SendBulk(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Notifications must be an array", decodeBody(t, rec)["error"])
}
