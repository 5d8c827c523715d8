package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/moviekeeper/internal/client/catalog"
	"github.com/dmitrijs2005/moviekeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var userErrors = []error{
	common.ErrValidation,
	common.ErrDuplicateAccount,
	common.ErrNotFound,
	common.ErrInvalidCredential,
	common.ErrUnauthenticated,
	common.ErrDuplicateFavorite,
	catalog.ErrCatalog,
}

// report prints err for the user and logs it. Expected outcomes (bad input,
// wrong password, unknown movie) log at warn; anything else is an error.
func (a *App) report(ctx context.Context, op string, err error) error {
	for _, ue := range userErrors {
		if errors.Is(err, ue) {
			printlnFn("Error:", err.Error())
			a.log.Warn(ctx, op+" rejected", "err", err)
			return err
		}
	}
	printlnFn("Something went wrong:", err.Error())
	a.log.Error(ctx, op+" failed", "err", err)
	return err
}

// Register prompts for a username, an email and a password and creates the
// account. It does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.in, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.in, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(a.in, os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.store.Register(ctx, username, email, string(password))
	if err != nil {
		return a.report(ctx, "register", err)
	}

	a.log.Info(ctx, "register ok", "user", acc.Username)
	printlnFn("Account created. You can now login as", acc.Email)
	return nil
}

// Login prompts for an email and a password and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.in, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(a.in, os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	acc, err := a.store.Login(ctx, email, string(password))
	if err != nil {
		return a.report(ctx, "login", err)
	}

	a.log.Info(ctx, "login ok", "user", acc.Username)
	printlnFn("Welcome,", acc.Username)
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return a.report(ctx, "logout", err)
	}
	a.log.Info(ctx, "logout ok")
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the current account.
func (a *App) WhoAmI(ctx context.Context) error {
	acc, ok := a.store.CurrentAccount()
	if !ok {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(acc.Username, "<"+acc.Email+">", "favorites:", len(acc.Favorites),
		"member since", acc.CreatedAt.Format("2006-01-02"))
	return nil
}
