package checkout

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booshananamudara/zoura-mobile/internal/client/api"
	"github.com/booshananamudara/zoura-mobile/internal/client/cart"
	"github.com/booshananamudara/zoura-mobile/internal/client/models"
	"github.com/booshananamudara/zoura-mobile/internal/logging"
)

func validForm() Form {
	return Form{
		Street:        "12 High St",
		City:          "Colombo",
		PostalCode:    "00100",
		Phone:         "0771234567",
		PaymentMethod: PaymentCashOnDelivery,
	}
}

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *Form)
		wantField string
	}{
		{name: "valid", mutate: func(f *Form) {}},
		{name: "missing street", mutate: func(f *Form) { f.Street = "  " }, wantField: "street"},
		{name: "missing city", mutate: func(f *Form) { f.City = "" }, wantField: "city"},
		{name: "missing postal code", mutate: func(f *Form) { f.PostalCode = "" }, wantField: "postalCode"},
		{name: "missing phone", mutate: func(f *Form) { f.Phone = "" }, wantField: "phone"},
		{name: "short phone", mutate: func(f *Form) { f.Phone = "123456789" }, wantField: "phone"},
		{name: "ten digit phone ok", mutate: func(f *Form) { f.Phone = "0123456789" }},
		{name: "missing payment method", mutate: func(f *Form) { f.PaymentMethod = "" }, wantField: "paymentMethod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)

			err := f.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

type fakeClient struct {
	api.Client
	createOrderFn func(ctx context.Context, addr models.ShippingAddress, paymentMethod string) (*models.Order, error)
	cartFn        func(ctx context.Context) (*models.Cart, error)
	cartCalls     int
}

func (f *fakeClient) CreateOrder(ctx context.Context, addr models.ShippingAddress, paymentMethod string) (*models.Order, error) {
	return f.createOrderFn(ctx, addr, paymentMethod)
}

func (f *fakeClient) Cart(ctx context.Context) (*models.Cart, error) {
	f.cartCalls++
	if f.cartFn != nil {
		return f.cartFn(ctx)
	}
	return &models.Cart{ID: "c1", Items: []models.CartItem{}}, nil
}

type tokens string

func (t tokens) Token(ctx context.Context) (string, error) { return string(t), nil }

func newFlow(client api.Client) *Flow {
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	return NewFlow(cart.New(client, tokens("tok"), log), log)
}

func TestSubmit_ChecksOutAndReconciles(t *testing.T) {
	client := &fakeClient{
		createOrderFn: func(ctx context.Context, addr models.ShippingAddress, paymentMethod string) (*models.Order, error) {
			assert.Equal(t, "12 High St", addr.Street)
			assert.Equal(t, PaymentCashOnDelivery, paymentMethod)
			return &models.Order{ID: "o1", Status: models.OrderPending}, nil
		},
	}
	flow := newFlow(client)

	order, err := flow.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, 1, client.cartCalls, "submit must refetch the cart after checkout")
}

func TestSubmit_ReconcileFailureDoesNotFailOrder(t *testing.T) {
	client := &fakeClient{
		createOrderFn: func(ctx context.Context, addr models.ShippingAddress, paymentMethod string) (*models.Order, error) {
			return &models.Order{ID: "o1", Status: models.OrderPending}, nil
		},
		cartFn: func(ctx context.Context) (*models.Cart, error) {
			return nil, errors.New("connection reset")
		},
	}
	flow := newFlow(client)

	order, err := flow.Submit(context.Background(), validForm())
	require.NoError(t, err, "a placed order must not be reported as a failure")
	require.NotNil(t, order)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, 1, client.cartCalls)
}

func TestSubmit_ValidationBlocksNetwork(t *testing.T) {
	client := &fakeClient{
		createOrderFn: func(ctx context.Context, addr models.ShippingAddress, paymentMethod string) (*models.Order, error) {
			t.Fatal("checkout must not run with an invalid form")
			return nil, nil
		},
	}
	flow := newFlow(client)

	f := validForm()
	f.Phone = "123"
	_, err := flow.Submit(context.Background(), f)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Field)
}

func TestSubmit_TrimsAddressFields(t *testing.T) {
	client := &fakeClient{
		createOrderFn: func(ctx context.Context, addr models.ShippingAddress, paymentMethod string) (*models.Order, error) {
			assert.Equal(t, "Colombo", addr.City)
			assert.Equal(t, "0771234567", addr.Phone)
			return &models.Order{ID: "o1"}, nil
		},
	}
	flow := newFlow(client)

	f := validForm()
	f.City = "  Colombo  "
	f.Phone = " 0771234567 "
	_, err := flow.Submit(context.Background(), f)
	require.NoError(t, err)
}
