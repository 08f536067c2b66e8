// Package checkout collects shipping and payment input, validates it, and
// drives the cart's checkout operation.
package checkout

import (
	"context"
	"strings"

	"github.com/booshananamudara/zoura-mobile/internal/client/cart"
	"github.com/booshananamudara/zoura-mobile/internal/client/models"
	"github.com/booshananamudara/zoura-mobile/internal/logging"
)

// Payment methods. Only cash on delivery is enabled for now.
const PaymentCashOnDelivery = "cash_on_delivery"

// ValidationError names the failing field so the view can highlight it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Form holds the local checkout state. Nothing here touches the network
// until Submit.
type Form struct {
	Street        string
	City          string
	PostalCode    string
	Phone         string
	PaymentMethod string
}

// Validate checks the form and returns the first failing field. All
// fields must be non-empty and the phone number at least 10 characters.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Street) == "" {
		return &ValidationError{Field: "street", Message: "please enter your street address"}
	}
	if strings.TrimSpace(f.City) == "" {
		return &ValidationError{Field: "city", Message: "please enter your city"}
	}
	if strings.TrimSpace(f.PostalCode) == "" {
		return &ValidationError{Field: "postalCode", Message: "please enter your postal code"}
	}
	phone := strings.TrimSpace(f.Phone)
	if phone == "" {
		return &ValidationError{Field: "phone", Message: "please enter your phone number"}
	}
	if len(phone) < 10 {
		return &ValidationError{Field: "phone", Message: "please enter a valid phone number"}
	}
	if f.PaymentMethod == "" {
		return &ValidationError{Field: "paymentMethod", Message: "please choose a payment method"}
	}
	return nil
}

// address builds the shipping address from trimmed field values.
func (f Form) address() models.ShippingAddress {
	return models.ShippingAddress{
		Street:     strings.TrimSpace(f.Street),
		City:       strings.TrimSpace(f.City),
		PostalCode: strings.TrimSpace(f.PostalCode),
		Phone:      strings.TrimSpace(f.Phone),
	}
}

// Flow submits a validated form through the cart store.
type Flow struct {
	cart *cart.Service
	log  logging.Logger
}

func NewFlow(cartStore *cart.Service, log logging.Logger) *Flow {
	return &Flow{cart: cartStore, log: log}
}

// Submit validates, checks out, then refetches the cart so derived state
// reconciles with the now-empty server cart before the caller navigates
// to the success screen. The refetch is best-effort: the order already
// exists, so a failed reconcile must not fail the submission. Checkout
// already reset the local cart to empty, so the stale window is small.
func (fl *Flow) Submit(ctx context.Context, f Form) (*models.Order, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	order, err := fl.cart.Checkout(ctx, f.address(), f.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if err := fl.cart.Fetch(ctx); err != nil {
		fl.log.Warn(ctx, "cart refresh after checkout failed", "order", order.ID, "error", err)
	}

	return order, nil
}
