package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/booshananamudara/zoura-mobile/internal/common"
)

// ShowCart refetches the cart mirror and prints its lines. Each line shows
// the position number used by the remove command, the unit price captured
// when the item was added, and the quantity.
func (a *App) ShowCart(ctx context.Context) error {
	if err := a.cart.Fetch(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Your cart is empty")
		return nil
	}
	for i, it := range items {
		fmt.Printf("%d. %s x%d @ %.2f\n", i+1, it.Product.Name, it.Quantity, it.PriceAtAdd)
	}
	fmt.Printf("Total: %.2f (%d item(s))\n", a.cart.TotalPrice(), a.cart.Count())
	return nil
}

// RemoveItem prompts for a cart line and asks the server to drop it. The
// mirror is replaced by the confirmed response.
func (a *App) RemoveItem(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Your cart is empty")
		return nil
	}

	answer, err := getSimpleText(a.reader, "Enter cart line number to remove", os.Stdout)
	if err != nil {
		return err
	}
	n := 0
	if _, err := fmt.Sscanf(answer, "%d", &n); err != nil || n < 1 || n > len(items) {
		fmt.Println("No such line:", answer)
		return fmt.Errorf("unknown cart line %q", answer)
	}

	if err := a.cart.Remove(ctx, items[n-1].ID); err != nil {
		if errors.Is(err, common.ErrMutationPending) {
			fmt.Println("Another cart change is still in flight, try again")
		}
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Removed. Cart now holds %d item(s)\n", a.cart.Count())
	return nil
}

// ClearCart empties the server cart and the local mirror with it.
func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cart.Clear(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Cart cleared")
	return nil
}
