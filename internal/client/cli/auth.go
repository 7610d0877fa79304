package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the five signup fields and attempts to create a new
// account. On success the server's acknowledgment is printed; the user stays
// anonymous and has to log in separately.
func (a *App) Register(ctx context.Context) error {
	data := client.SignUpData{}

	var err error
	if data.Name, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if data.LastName, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}
	if data.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if data.Password, err = getPassword(a.out); err != nil {
		return err
	}
	if data.PhoneNumber, err = getSimpleText(a.reader, "Enter phone number", a.out); err != nil {
		return err
	}

	msg, err := a.session.Register(ctx, data)
	if err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

// Login prompts for credentials and authenticates. On success the token is
// persisted by the session service, so the login survives restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// printError surfaces server-provided messages verbatim and falls back to a
// generic string for network-level failures.
func (a *App) printError(err error) {
	if errors.Is(err, client.ErrUnavailable) {
		fmt.Fprintln(a.out, "Server unavailable, please try again later")
		return
	}
	fmt.Fprintln(a.out, err.Error())
}
