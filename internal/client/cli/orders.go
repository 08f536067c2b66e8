package cli

import (
	"context"
	"fmt"
	"log"
)

// Orders prints the order history, newest first as returned by the server.
func (a *App) Orders(ctx context.Context) error {
	list, err := a.orders.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(list) == 0 {
		fmt.Println("No orders yet")
		return nil
	}
	for _, o := range list {
		fmt.Printf("%s  %s  %.2f  %d line(s)  %s\n",
			o.ID, o.Status, o.TotalAmount, len(o.Items), o.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
