// Package cart mirrors the server-owned cart. Local state is a read-through
// cache: every mutation is confirm-then-apply (the server's response
// replaces the mirror wholesale) and no optimistic update is ever applied,
// so local and server state cannot diverge.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/booshananamudara/zoura-mobile/internal/client/api"
	"github.com/booshananamudara/zoura-mobile/internal/client/models"
	"github.com/booshananamudara/zoura-mobile/internal/common"
	"github.com/booshananamudara/zoura-mobile/internal/logging"
)

// Service is the client-side cart store. Items, TotalPrice and Count are
// pure projections of the last-confirmed cart; they carry no state of
// their own.
type Service struct {
	api    api.Client
	tokens api.TokenSource
	log    logging.Logger

	mu    sync.Mutex
	cart  *models.Cart
	state MutationState
}

func New(apiClient api.Client, tokens api.TokenSource, log logging.Logger) *Service {
	return &Service{api: apiClient, tokens: tokens, log: log}
}

// Cart returns the last-confirmed server cart, or nil when there is none.
func (s *Service) Cart() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Items projects the current cart's lines. Never nil.
func (s *Service) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return []models.CartItem{}
	}
	return s.cart.Items
}

// TotalPrice passes through the server-computed total.
func (s *Service) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.TotalPrice
}

// Count is the sum of quantities across items.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// MutationState returns the state of the most recent mutation.
func (s *Service) MutationState() MutationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Fetch replaces the local mirror with the server cart. Without a token it
// resolves to an empty cart immediately, issuing no request. A 401 or 404
// also means "no cart" and is not an error: an unauthenticated or
// not-yet-created cart is a normal condition, not a failure.
func (s *Service) Fetch(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		s.replace(nil)
		return nil
	}

	serverCart, err := s.api.Cart(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrNotFound) {
			s.replace(nil)
			return nil
		}
		return fmt.Errorf("fetch cart: %w", err)
	}

	s.replace(serverCart)
	return nil
}

// Add posts the item and applies the server's authoritative cart.
func (s *Service) Add(ctx context.Context, productID string, quantity int, variantID string) error {
	return s.mutate(ctx, func(ctx context.Context) (*models.Cart, error) {
		return s.api.AddCartItem(ctx, productID, quantity, variantID)
	})
}

// Remove deletes one line and applies the server's authoritative cart.
func (s *Service) Remove(ctx context.Context, itemID string) error {
	return s.mutate(ctx, func(ctx context.Context) (*models.Cart, error) {
		return s.api.RemoveCartItem(ctx, itemID)
	})
}

// Clear empties the server cart; the local mirror is dropped only after
// the server confirms.
func (s *Service) Clear(ctx context.Context) error {
	return s.mutate(ctx, func(ctx context.Context) (*models.Cart, error) {
		if err := s.api.ClearCart(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
}

// Checkout creates the order and resets the local cart to an empty shape
// without refetching. A stale fetch racing the server-side clear could
// resurrect items the order already consumed, so the reset is local and
// unconditional. The created order is returned for navigation.
func (s *Service) Checkout(ctx context.Context, addr models.ShippingAddress, paymentMethod string) (*models.Order, error) {
	if err := s.requireToken(ctx); err != nil {
		return nil, err
	}
	if err := s.begin(); err != nil {
		return nil, err
	}

	order, err := s.api.CreateOrder(ctx, addr, paymentMethod)
	if err != nil {
		s.fail(err)
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	s.mu.Lock()
	s.cart = models.EmptyCart()
	s.state = MutationApplied
	s.mu.Unlock()

	return order, nil
}

// mutate runs one confirm-then-apply cycle: token check, pending guard,
// request, wholesale replace on success.
func (s *Service) mutate(ctx context.Context, op func(ctx context.Context) (*models.Cart, error)) error {
	if err := s.requireToken(ctx); err != nil {
		return err
	}
	if err := s.begin(); err != nil {
		return err
	}

	serverCart, err := op(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.cart = serverCart
	s.state = MutationApplied
	s.mu.Unlock()
	return nil
}

func (s *Service) requireToken(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return common.ErrNotAuthenticated
	}
	return nil
}

// begin moves the mutation machine to Pending, rejecting overlap. The UI
// disables triggering controls while pending; this guard backs that up.
func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == MutationPending {
		return common.ErrMutationPending
	}
	s.state = MutationPending
	return nil
}

func (s *Service) fail(err error) {
	s.mu.Lock()
	s.state = MutationFailed
	s.mu.Unlock()
	s.log.Warn(context.Background(), "cart mutation failed", "error", err)
}

func (s *Service) replace(c *models.Cart) {
	s.mu.Lock()
	s.cart = c
	s.mu.Unlock()
}
