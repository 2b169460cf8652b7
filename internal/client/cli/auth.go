package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dkarpov/jobseekr/internal/client/client"
	"github.com/dkarpov/jobseekr/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and attempts to create an
// account. Validation failures are server-authoritative; their detail is
// shown verbatim so the user can correct the input. On success the server
// signs the new account in and the session flips to authenticated.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, userName, string(password)); err != nil {
		a.printAuthError(err)
		return err
	}

	printlnFn("Welcome,", a.session.Current().User.DisplayName())
	return nil
}

// Login prompts for credentials and authenticates. A 401 detail (e.g.
// "Invalid credentials") is shown verbatim; transport failures get a
// generic retryable message. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, userName, string(password)); err != nil {
		a.printAuthError(err)
		return err
	}

	printlnFn("Signed in as", a.session.Current().User.Username)
	return nil
}

// Logout drops the session client-side. No server call is involved.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Signed out.")
	return nil
}

// WhoAmI forces a re-sync with the server and prints its authoritative view
// of the account. Guarded: requires a signed-in session.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	if err := a.session.CheckAuth(ctx); err != nil {
		printlnFn("Could not reach the server. Please try again.")
		return err
	}

	snap := a.session.Current()
	if snap.User == nil {
		// The re-sync just signed us out; the subscriber already said so.
		return nil
	}
	printlnFn("Username:", snap.User.Username)
	printlnFn("Name:    ", snap.User.DisplayName())
	if snap.User.Title != "" {
		printlnFn("Title:   ", snap.User.Title)
	}
	return nil
}

// DeleteAccount permanently removes the account after an explicit
// confirmation, then returns the user to the unauthenticated entry point.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	answer, err := getSimpleText(a.reader, "This permanently deletes your account. Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.session.DeleteAccount(ctx); err != nil {
		a.printAuthError(err)
		return err
	}

	a.prefs.Reset(ctx)
	printlnFn("Account deleted. Use 'register' to start over.")
	return nil
}

// printAuthError renders a typed API failure: server detail verbatim for
// validation and credential errors, a generic retryable message otherwise.
func (a *App) printAuthError(err error) {
	var ve *client.ValidationError
	var ue *client.UnauthorizedError
	switch {
	case errors.As(err, &ve):
		printlnFn(ve.Detail)
	case errors.As(err, &ue):
		printlnFn(ue.Error())
	case errors.Is(err, client.ErrUnavailable):
		printlnFn("The server is unreachable. Please try again.")
	default:
		printlnFn("Something went wrong:", err.Error())
	}
}
