package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/booshananamudara/zoura-mobile/internal/client/catalog"
	"github.com/booshananamudara/zoura-mobile/internal/client/models"
)

// Products fetches the catalog and prints a short line per product. The
// listing is cached so show/add can resolve products without refetching.
func (a *App) Products(ctx context.Context) error {
	products, err := a.catalog.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.products = products

	for i, p := range products {
		fmt.Printf("%d. %s — %s (%s, stock %d)\n", i+1, p.Name, p.Price, p.Vendor.ShopName, p.Stock)
	}
	return nil
}

// Show prompts for a product and prints its details. For products with
// variants, the available colors and sizes are listed alongside.
func (a *App) Show(ctx context.Context) error {
	p, err := a.pickProduct(ctx)
	if err != nil {
		return err
	}

	sel := catalog.NewSelection(p)

	fmt.Println(p.Name)
	if p.Description != "" {
		fmt.Println(p.Description)
	}
	fmt.Printf("Price: %s\n", sel.DisplayPrice())
	fmt.Printf("Stock: %d\n", sel.AvailableStock())
	fmt.Printf("Sold by: %s\n", p.Vendor.ShopName)
	if colors := sel.Colors(); len(colors) > 0 {
		fmt.Printf("Colors: %s\n", strings.Join(colors, ", "))
	}
	if sizes := sel.Sizes(); len(sizes) > 0 {
		fmt.Printf("Sizes: %s\n", strings.Join(sizes, ", "))
	}
	for k, v := range p.Attributes {
		fmt.Printf("%s: %s\n", k, v)
	}
	return nil
}

// AddToCart prompts for a product, walks through variant selection when the
// product has selectable axes, asks for a quantity and sends the add to the
// server. The local cart mirror is replaced by the confirmed response.
func (a *App) AddToCart(ctx context.Context) error {
	p, err := a.pickProduct(ctx)
	if err != nil {
		return err
	}

	sel, err := a.selectVariant(p)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	variantID := ""
	if v := sel.Match(); v != nil {
		variantID = v.ID
		if v.Stock <= 0 {
			fmt.Println("This option is out of stock")
			return nil
		}
	}

	qtyText, err := getSimpleText(a.reader, "Enter quantity", os.Stdout)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(qtyText)
	if err != nil || qty <= 0 {
		fmt.Println("Quantity must be a positive number")
		return fmt.Errorf("invalid quantity %q", qtyText)
	}

	if err := a.cart.Add(ctx, p.ID, qty, variantID); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Added. Cart now holds %d item(s), total %.2f\n", a.cart.Count(), a.cart.TotalPrice())
	return nil
}

// pickProduct prompts for a product by listing number or id, refreshing the
// cached listing when it is empty.
func (a *App) pickProduct(ctx context.Context) (*models.Product, error) {
	if len(a.products) == 0 {
		products, err := a.catalog.List(ctx)
		if err != nil {
			log.Printf("error: %v", err)
			return nil, err
		}
		a.products = products
	}

	answer, err := getSimpleText(a.reader, "Enter product number or id", os.Stdout)
	if err != nil {
		return nil, err
	}

	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(a.products) {
		return &a.products[n-1], nil
	}
	for i := range a.products {
		if a.products[i].ID == answer {
			return &a.products[i], nil
		}
	}

	fmt.Println("No such product:", answer)
	return nil, fmt.Errorf("unknown product %q", answer)
}

// selectVariant walks the user through the product's selection axes until
// the selection is complete. Products without variants, or with a single
// variant that defines no axes, complete immediately without prompting.
func (a *App) selectVariant(p *models.Product) (catalog.Selection, error) {
	sel := catalog.NewSelection(p)

	if colors := sel.Colors(); len(colors) > 0 {
		answer, err := getSimpleText(a.reader, "Choose a color ("+strings.Join(colors, ", ")+")", os.Stdout)
		if err != nil {
			return sel, err
		}
		sel = sel.WithColor(answer)
	}
	if sizes := sel.Sizes(); len(sizes) > 0 {
		answer, err := getSimpleText(a.reader, "Choose a size ("+strings.Join(sizes, ", ")+")", os.Stdout)
		if err != nil {
			return sel, err
		}
		sel = sel.WithSize(answer)
	}

	if !sel.Complete() {
		if missing := sel.MissingAxes(); len(missing) > 0 {
			return sel, fmt.Errorf("missing choice for %s", strings.Join(missing, " and "))
		}
		return sel, fmt.Errorf("that combination is not available")
	}
	return sel, nil
}
