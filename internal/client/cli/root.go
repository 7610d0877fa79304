package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/client/client"
)

func (a *App) getStatus() string {
	if a.session.LoggedIn(context.Background()) {
		return "(authenticated)"
	}
	return ""
}

// Root runs the interactive command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to authkeeper CLI (type 'help' for commands)")

	if err := a.session.Ping(ctx); errors.Is(err, client.ErrUnavailable) {
		fmt.Fprintln(a.out, "Warning: server unreachable")
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "akcli %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if a.dispatch(ctx, cmd, args) {
			return
		}
	}
}

// dispatch executes one command; the return value reports whether the loop
// should terminate.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		if a.session.LoggedIn(ctx) {
			fmt.Fprintln(a.out, "Available commands: list, show <id>, logout, exit")
		} else {
			fmt.Fprintln(a.out, "Available commands: register, login, exit")
		}
	case "register":
		_ = a.Register(ctx)
	case "login":
		_ = a.Login(ctx)
	case "logout":
		_ = a.Logout(ctx)
	case "list":
		_ = a.list(ctx)
	case "show":
		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		_ = a.show(ctx, id)
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true
	default:
		fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
	}
	return false
}
