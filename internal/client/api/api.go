// Package api implements the REST transport to the storefront backend.
// It owns request/response plumbing only; policy (what to do on a 404,
// when to skip a call) belongs to the stores built on top of it.
package api

import (
	"context"

	"github.com/booshananamudara/zoura-mobile/internal/client/models"
)

// TokenSource yields the current bearer token. It is read before every
// authorized call; an empty token means "not logged in".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the backend surface the stores depend on.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) error
	Profile(ctx context.Context) (*models.User, error)

	Products(ctx context.Context) (*models.ProductPage, error)

	Cart(ctx context.Context) (*models.Cart, error)
	AddCartItem(ctx context.Context, productID string, quantity int, variantID string) (*models.Cart, error)
	RemoveCartItem(ctx context.Context, itemID string) (*models.Cart, error)
	ClearCart(ctx context.Context) error

	CreateOrder(ctx context.Context, addr models.ShippingAddress, paymentMethod string) (*models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)

	Feed(ctx context.Context, limit, offset int) (*models.FeedPage, error)
	CreatePost(ctx context.Context, content, imagePath string) (*models.Post, error)
}
