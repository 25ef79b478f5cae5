package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cartnext/internal/cache"
	"github.com/cartnext/internal/constants"
	"github.com/cartnext/internal/models"

	"github.com/shopspring/decimal"
)

// stubCartStore 可编程的缓存桩
type stubCartStore struct {
	carts    map[string]*models.Cart
	getErr   error
	setErr   error
	lastTTL  time.Duration
	setCalls int
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: map[string]*models.Cart{}}
}

func (s *stubCartStore) Get(ctx context.Context, sessionID string) (*models.Cart, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, false, nil
	}
	return cart, true, nil
}

func (s *stubCartStore) Set(ctx context.Context, sessionID string, cart *models.Cart, ttl time.Duration) error {
	s.setCalls++
	s.lastTTL = ttl
	if s.setErr != nil {
		return s.setErr
	}
	s.carts[sessionID] = cart
	return nil
}

func (s *stubCartStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	_, ok := s.carts[sessionID]
	return ok, nil
}

func assertGuestCart(t *testing.T, cart *models.Cart, sessionID string) {
	t.Helper()
	if cart == nil {
		t.Fatal("expected cart, got nil")
	}
	if cart.UUID != sessionID {
		t.Fatalf("cart uuid want %s got %s", sessionID, cart.UUID)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("guest cart items want 0 got %d", len(cart.Items))
	}
	if cart.Customer.FirstName != constants.GuestCustomerFirstName {
		t.Fatalf("guest first name want %s got %s", constants.GuestCustomerFirstName, cart.Customer.FirstName)
	}
	if cart.Customer.Email != constants.GuestCustomerEmail {
		t.Fatalf("guest email want %s got %s", constants.GuestCustomerEmail, cart.Customer.Email)
	}
	if cart.PaymentMethod != constants.PaymentMethodUnknown {
		t.Fatalf("payment method want %s got %s", constants.PaymentMethodUnknown, cart.PaymentMethod)
	}
}

func TestFetchMissReturnsGuestCart(t *testing.T) {
	store := newStubCartStore()
	repo := NewCartRepository(store)

	cart := repo.Fetch(context.Background(), "sess-1")
	assertGuestCart(t, cart, "sess-1")
}

func TestFetchStoreErrorReturnsGuestCart(t *testing.T) {
	store := newStubCartStore()
	store.getErr = &cache.ConnectorError{Op: "get", Err: errors.New("connection refused")}
	repo := NewCartRepository(store)

	cart := repo.Fetch(context.Background(), "sess-2")
	assertGuestCart(t, cart, "sess-2")
}

func TestFetchDecodeErrorReturnsGuestCart(t *testing.T) {
	store := newStubCartStore()
	store.getErr = fmt.Errorf("%w: unexpected end of JSON input", cache.ErrCartDecode)
	repo := NewCartRepository(store)

	cart := repo.Fetch(context.Background(), "sess-3")
	assertGuestCart(t, cart, "sess-3")
}

func TestFetchHitReturnsStoredCart(t *testing.T) {
	store := newStubCartStore()
	stored := models.NewGuestCart("sess-4")
	stored.AddItem(models.CartItem{
		UUID:        "item-1",
		ProductUUID: "prod-1",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(9.99)),
		Quantity:    2,
	})
	store.carts["sess-4"] = stored
	repo := NewCartRepository(store)

	cart := repo.Fetch(context.Background(), "sess-4")
	if cart != stored {
		t.Fatal("expected stored cart instance")
	}
	if len(cart.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(cart.Items))
	}
}

func TestSaveUsesCartTTL(t *testing.T) {
	store := newStubCartStore()
	repo := NewCartRepository(store)
	cart := models.NewGuestCart("sess-5")

	if err := repo.Save(context.Background(), "sess-5", cart); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if store.setCalls != 1 {
		t.Fatalf("set calls want 1 got %d", store.setCalls)
	}
	if store.lastTTL != constants.CartTTL {
		t.Fatalf("ttl want %v got %v", constants.CartTTL, store.lastTTL)
	}
}

func TestSavePropagatesStoreError(t *testing.T) {
	store := newStubCartStore()
	store.setErr = &cache.ConnectorError{Op: "set", Err: errors.New("connection reset")}
	repo := NewCartRepository(store)

	err := repo.Save(context.Background(), "sess-6", models.NewGuestCart("sess-6"))
	if err == nil {
		t.Fatal("expected save error")
	}
	var connErr *cache.ConnectorError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected connector error, got %v", err)
	}
}
