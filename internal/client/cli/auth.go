package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/booshananamudara/zoura-mobile/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and creates a new account.
// On success the session service logs the new account in, so the user lands
// in an authenticated prompt immediately.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, name, email, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	_ = a.cart.Fetch(ctx)
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// On success the cart mirror is refreshed so the prompt reflects the
// server cart right away.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	if u := a.session.User(); u != nil {
		fmt.Printf("Welcome, %s!\n", u.Name)
	}
	_ = a.cart.Fetch(ctx)
	return nil
}

// Logout discards the persisted token and the cached profile. It never
// fails; the cart mirror is refetched and collapses to empty because no
// token remains.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	_ = a.cart.Fetch(ctx)
	fmt.Println("Logged out")
	return nil
}

// Profile prints the cached account profile.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Println("Not logged in")
		return common.ErrNotAuthenticated
	}
	fmt.Printf("Name:  %s\n", u.Name)
	fmt.Printf("Email: %s\n", u.Email)
	if u.SubscriptionTier != "" {
		fmt.Printf("Tier:  %s\n", u.SubscriptionTier)
	}
	return nil
}
