package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/notification/domain"
	"github.com/fjod/go_shop/internal/notification/store"
	"github.com/fjod/go_shop/pkg/logger"
)

func newDispatcher() (*Dispatcher, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewDispatcher(st, logger.NewNop()), st
}

func TestSend_CreatesRecord(t *testing.T) {
	d, st := newDispatcher()

	n, err := d.Send(SendRequest{UserID: "user-1", Type: "order_confirmed", Message: "Your order has been confirmed!", OrderID: "order-1"})
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, domain.StatusSent, n.Status)
	assert.Equal(t, "order-1", n.OrderID)
	assert.False(t, n.CreatedAt.IsZero())
	assert.Nil(t, n.ReadAt)

	stored, err := st.GetByID(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", stored.UserID)
}

func TestSend_Validation(t *testing.T) {
	d, _ := newDispatcher()

	cases := []struct {
		name string
		req  SendRequest
	}{
		{"missing user id", SendRequest{Type: "order_confirmed", Message: "hi"}},
		{"missing type", SendRequest{UserID: "user-1", Message: "hi"}},
		{"missing message", SendRequest{UserID: "user-1", Type: "order_confirmed"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Send(tc.req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, "email", channelFor("order_confirmed"))
	assert.Equal(t, "email", channelFor("order_cancelled"))
	assert.Equal(t, "email", channelFor("payment_failed"))
	assert.Equal(t, "sms", channelFor("order_shipped"))
	assert.Equal(t, "push", channelFor("order_delivered"))
	assert.Equal(t, "generic", channelFor("promo"))
}

func TestList_NewestFirstTruncated(t *testing.T) {
	d, st := newDispatcher()

	base := time.Now().UTC()
	for i, id := range []string{"n-1", "n-2", "n-3"} {
		st.Append(&domain.Notification{
			ID:        id,
			UserID:    "user-1",
			Type:      "order_confirmed",
			Status:    domain.StatusSent,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	result := d.List("user-1", "", 2)
	require.Len(t, result, 2)
	assert.Equal(t, "n-3", result[0].ID)
	assert.Equal(t, "n-2", result[1].ID)
}

func TestList_FiltersUserAndType(t *testing.T) {
	d, _ := newDispatcher()

	_, err := d.Send(SendRequest{UserID: "user-1", Type: "order_confirmed", Message: "a"})
	require.NoError(t, err)
	_, err = d.Send(SendRequest{UserID: "user-1", Type: "order_shipped", Message: "b"})
	require.NoError(t, err)
	_, err = d.Send(SendRequest{UserID: "user-2", Type: "order_confirmed", Message: "c"})
	require.NoError(t, err)

	result := d.List("user-1", "order_confirmed", 0)
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].Message)
}

func TestMarkRead_SecondCallOverwrites(t *testing.T) {
	d, _ := newDispatcher()

	n, err := d.Send(SendRequest{UserID: "user-1", Type: "order_confirmed", Message: "hi"})
	require.NoError(t, err)

	first, err := d.MarkRead(n.ID)
	require.NoError(t, err)
	require.NotNil(t, first.ReadAt)

	time.Sleep(5 * time.Millisecond)

	second, err := d.MarkRead(n.ID)
	require.NoError(t, err)
	require.NotNil(t, second.ReadAt)
	assert.True(t, second.ReadAt.After(*first.ReadAt))
	assert.Equal(t, domain.StatusRead, second.Status)
}

func TestUnreadForUser(t *testing.T) {
	d, _ := newDispatcher()

	a, err := d.Send(SendRequest{UserID: "user-1", Type: "order_confirmed", Message: "a"})
	require.NoError(t, err)
	b, err := d.Send(SendRequest{UserID: "user-1", Type: "order_shipped", Message: "b"})
	require.NoError(t, err)
	_, err = d.Send(SendRequest{UserID: "user-2", Type: "order_confirmed", Message: "c"})
	require.NoError(t, err)

	_, err = d.MarkRead(a.ID)
	require.NoError(t, err)

	unread := d.UnreadForUser("user-1")
	require.Len(t, unread, 1)
	assert.Equal(t, b.ID, unread[0].ID)
}

func TestSendBulk_MixedValidity(t *testing.T) {
	d, st := newDispatcher()

	results := d.SendBulk([]SendRequest{
		{UserID: "user-1", Type: "order_confirmed", Message: "ok"},
		{UserID: "", Type: "order_confirmed", Message: "missing user"},
		{UserID: "user-2", Type: "order_shipped", Message: "also ok"},
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, ErrMissingFields)
	assert.NoError(t, results[2].Err)

	// Only the valid entries were persisted.
	assert.Len(t, st.List(store.Filter{}), 2)
}
