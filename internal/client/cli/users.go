package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/client/models"
)

func (a *App) list(ctx context.Context) error {
	users, err := a.session.Users(ctx)
	if err != nil {
		a.printError(err)
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users to display")
		return nil
	}

	for _, u := range users {
		a.printUser(&u)
	}
	return nil
}

func (a *App) show(ctx context.Context, id string) error {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	user, err := a.session.User(ctx, id)
	if err != nil {
		a.printError(err)
		return err
	}

	a.printUser(user)
	return nil
}

func (a *App) printUser(u *models.User) {
	fmt.Fprintf(a.out, "%s %s <%s> phone: %s (id: %s)\n", u.Name, u.LastName, u.Email, u.PhoneNumber, u.ID)
}
