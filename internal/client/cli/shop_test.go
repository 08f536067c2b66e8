package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booshananamudara/zoura-mobile/internal/client/models"
)

func shirt() models.Product {
	return models.Product{
		ID:    "p-shirt",
		Name:  "Shirt",
		Price: "25.00",
		Variants: []models.Variant{
			{ID: "v-red-m", Color: "Red", Size: "M", Stock: 3},
			{ID: "v-red-l", Color: "Red", Size: "L", Stock: 0},
			{ID: "v-blue-m", Color: "Blue", Size: "M", Stock: 5, Price: "27.50"},
		},
	}
}

func TestPickProduct_ByNumberAndByID(t *testing.T) {
	a, _ := newTestApp(&fakeClient{})
	a.products = []models.Product{{ID: "p1", Name: "One"}, {ID: "p2", Name: "Two"}}

	stubInputs(t, []string{"2", "p1", "nope"}, nil)

	p, err := a.pickProduct(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p2", p.ID)

	p, err = a.pickProduct(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = a.pickProduct(context.Background())
	require.Error(t, err)
}

func TestPickProduct_RefreshesEmptyListing(t *testing.T) {
	client := &fakeClient{
		productsFn: func(ctx context.Context) (*models.ProductPage, error) {
			return &models.ProductPage{Products: []models.Product{{ID: "p1", Name: "One"}}, Total: 1}, nil
		},
	}
	a, _ := newTestApp(client)

	stubInputs(t, []string{"1"}, nil)

	p, err := a.pickProduct(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestSelectVariant_PromptsBothAxes(t *testing.T) {
	a, _ := newTestApp(&fakeClient{})
	p := shirt()

	stubInputs(t, []string{"Blue", "M"}, nil)

	sel, err := a.selectVariant(&p)
	require.NoError(t, err)
	require.NotNil(t, sel.Match())
	assert.Equal(t, "v-blue-m", sel.Match().ID)
	assert.Equal(t, "27.50", sel.DisplayPrice())
}

func TestSelectVariant_UnavailableCombination(t *testing.T) {
	a, _ := newTestApp(&fakeClient{})
	p := shirt()

	stubInputs(t, []string{"Blue", "L"}, nil)

	_, err := a.selectVariant(&p)
	require.Error(t, err)
}

func TestSelectVariant_NoVariantsCompletesSilently(t *testing.T) {
	a, _ := newTestApp(&fakeClient{})
	p := models.Product{ID: "p-plain", Name: "Mug", Price: "9.99", Stock: 4}

	sel, err := a.selectVariant(&p)
	require.NoError(t, err)
	assert.Nil(t, sel.Match())
	assert.True(t, sel.Complete())
}

func TestAddToCart_SendsVariantAndQuantity(t *testing.T) {
	var gotProduct, gotVariant string
	var gotQty int
	client := &fakeClient{
		addItemFn: func(ctx context.Context, productID string, quantity int, variantID string) (*models.Cart, error) {
			gotProduct, gotQty, gotVariant = productID, quantity, variantID
			return &models.Cart{
				ID:         "c1",
				Items:      []models.CartItem{{ID: "i1", Quantity: 2, PriceAtAdd: 25}},
				TotalPrice: 50,
			}, nil
		},
	}
	a, store := newTestApp(client)
	store.token = "tok"
	a.products = []models.Product{shirt()}

	stubInputs(t, []string{"1", "Red", "M", "2"}, nil)

	require.NoError(t, a.AddToCart(context.Background()))
	assert.Equal(t, "p-shirt", gotProduct)
	assert.Equal(t, "v-red-m", gotVariant)
	assert.Equal(t, 2, gotQty)
	assert.Equal(t, 2, a.cart.Count())
}

func TestAddToCart_RejectsOutOfStockVariant(t *testing.T) {
	a, _ := newTestApp(&fakeClient{})
	a.products = []models.Product{shirt()}

	stubInputs(t, []string{"1", "Red", "L"}, nil)

	require.NoError(t, a.AddToCart(context.Background()))
	assert.Equal(t, 0, a.cart.Count(), "nothing reaches the server")
}

func TestAddToCart_InvalidQuantity(t *testing.T) {
	a, _ := newTestApp(&fakeClient{})
	a.products = []models.Product{{ID: "p-plain", Name: "Mug", Price: "9.99", Stock: 4}}

	stubInputs(t, []string{"1", "zero"}, nil)

	require.Error(t, a.AddToCart(context.Background()))
}
