package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func TestOrderDraftLifecycle(t *testing.T) {
	s := NewStore(time.Minute)

	draft := domain.OrderDraft{ProductID: 1, Name: "Coffee Mug", Price: 12.5, Quantity: 2, Description: "A mug"}
	token := s.PutOrderDraft(draft)
	require.NotEmpty(t, token)

	// Peek does not consume.
	got, ok := s.PeekOrderDraft(token)
	require.True(t, ok)
	assert.Equal(t, draft, got)
	_, ok = s.PeekOrderDraft(token)
	assert.True(t, ok)

	// Take consumes; a replay finds nothing.
	got, ok = s.TakeOrderDraft(token)
	require.True(t, ok)
	assert.Equal(t, draft, got)
	_, ok = s.TakeOrderDraft(token)
	assert.False(t, ok)
}

func TestUnknownTokenIsAMiss(t *testing.T) {
	s := NewStore(time.Minute)

	_, ok := s.PeekOrderDraft("nope")
	assert.False(t, ok)
	_, ok = s.TakePaymentDraft("")
	assert.False(t, ok)
}

func TestPaymentDraftLifecycle(t *testing.T) {
	s := NewStore(time.Minute)

	draft := domain.PaymentDraft{
		Order:    domain.Order{ID: 11, Quantity: 2},
		Name:     "Coffee Mug",
		Price:    12.5,
		Quantity: 2,
		Total:    "25.00",
	}
	token := s.PutPaymentDraft(draft)

	got, ok := s.TakePaymentDraft(token)
	require.True(t, ok)
	assert.Equal(t, draft, got)
	_, ok = s.TakePaymentDraft(token)
	assert.False(t, ok)
}

func TestDraftExpires(t *testing.T) {
	s := NewStore(20 * time.Millisecond)

	token := s.PutOrderDraft(domain.OrderDraft{ProductID: 1})
	time.Sleep(50 * time.Millisecond)

	_, ok := s.PeekOrderDraft(token)
	assert.False(t, ok)
}

func TestTokensAreUnique(t *testing.T) {
	s := NewStore(time.Minute)

	a := s.PutOrderDraft(domain.OrderDraft{ProductID: 1})
	b := s.PutOrderDraft(domain.OrderDraft{ProductID: 1})
	assert.NotEqual(t, a, b)
}
