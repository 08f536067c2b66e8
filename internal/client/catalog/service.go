package catalog

import (
	"context"
	"fmt"

	"github.com/booshananamudara/zoura-mobile/internal/client/api"
	"github.com/booshananamudara/zoura-mobile/internal/client/models"
)

// Service lists the catalog. There is no local product cache: every view
// of the listing refetches, so stock and price are always current.
type Service struct {
	api api.Client
}

func NewService(apiClient api.Client) *Service {
	return &Service{api: apiClient}
}

func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	page, err := s.api.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return page.Products, nil
}
