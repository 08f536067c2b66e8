// Package orders exposes read-only order history. The client never
// mutates an order's status.
package orders

import (
	"context"
	"fmt"

	"github.com/booshananamudara/zoura-mobile/internal/client/api"
	"github.com/booshananamudara/zoura-mobile/internal/client/models"
)

type Service struct {
	api api.Client
}

func New(apiClient api.Client) *Service {
	return &Service{api: apiClient}
}

// List fetches the authenticated user's orders, newest first as returned
// by the backend.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.api.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
