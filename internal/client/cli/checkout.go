package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/booshananamudara/zoura-mobile/internal/client/checkout"
)

// Checkout collects the shipping details, validates them locally and places
// the order. Validation failures are reported per field without touching the
// network; after a confirmed order the cart resets to empty.
func (a *App) Checkout(ctx context.Context) error {
	if a.cart.Count() == 0 {
		fmt.Println("Your cart is empty")
		return nil
	}

	form := checkout.Form{PaymentMethod: checkout.PaymentCashOnDelivery}

	var err error
	if form.Street, err = getSimpleText(a.reader, "Enter street address", os.Stdout); err != nil {
		return err
	}
	if form.City, err = getSimpleText(a.reader, "Enter city", os.Stdout); err != nil {
		return err
	}
	if form.PostalCode, err = getSimpleText(a.reader, "Enter postal code", os.Stdout); err != nil {
		return err
	}
	if form.Phone, err = getSimpleText(a.reader, "Enter phone number", os.Stdout); err != nil {
		return err
	}

	order, err := a.checkout.Submit(ctx, form)
	if err != nil {
		var ve *checkout.ValidationError
		if errors.As(err, &ve) {
			fmt.Println(ve.Message)
			return err
		}
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Order %s placed, total %.2f. Pay on delivery.\n", order.ID, order.TotalAmount)
	return nil
}
