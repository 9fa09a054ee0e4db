// Package checkout keeps the transient state an in-progress purchase carries
// from page to page. Each state bag is stored under a one-time token that the
// redirect passes along in the URL; consuming a token on submit also makes a
// replayed submit harmless. State that is missing, expired or already
// consumed degrades to the pages' "no information available" fallback.
package checkout

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"storefront/internal/domain"
)

// Store is the in-memory token store. Entries expire after the configured TTL
// so an abandoned checkout does not pin memory.
type Store struct {
	items *gocache.Cache
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		items: gocache.New(ttl, 2*ttl),
	}
}

// PutOrderDraft stores d and returns its one-time token.
func (s *Store) PutOrderDraft(d domain.OrderDraft) string {
	token := uuid.New().String()
	s.items.SetDefault(token, d)
	return token
}

// PeekOrderDraft reads without consuming; used when rendering a page that a
// later submit still needs the state for.
func (s *Store) PeekOrderDraft(token string) (domain.OrderDraft, bool) {
	v, found := s.items.Get(token)
	if !found {
		return domain.OrderDraft{}, false
	}
	d, ok := v.(domain.OrderDraft)
	return d, ok
}

// TakeOrderDraft consumes the token. A second Take with the same token fails.
func (s *Store) TakeOrderDraft(token string) (domain.OrderDraft, bool) {
	d, ok := s.PeekOrderDraft(token)
	if ok {
		s.items.Delete(token)
	}
	return d, ok
}

func (s *Store) PutPaymentDraft(d domain.PaymentDraft) string {
	token := uuid.New().String()
	s.items.SetDefault(token, d)
	return token
}

func (s *Store) PeekPaymentDraft(token string) (domain.PaymentDraft, bool) {
	v, found := s.items.Get(token)
	if !found {
		return domain.PaymentDraft{}, false
	}
	d, ok := v.(domain.PaymentDraft)
	return d, ok
}

func (s *Store) TakePaymentDraft(token string) (domain.PaymentDraft, bool) {
	d, ok := s.PeekPaymentDraft(token)
	if ok {
		s.items.Delete(token)
	}
	return d, ok
}
