// Package cli implements the interactive shell of the authkeeper client:
// registration and login prompts, the protected user directory views, and
// session persistence across runs.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/client/client"
	"github.com/dmitrijs2005/authkeeper/internal/client/config"
	"github.com/dmitrijs2005/authkeeper/internal/client/services"
)

type App struct {
	config  *config.Config
	session services.SessionService
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.SessionDSN)
	if err != nil {
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr)
	session := services.NewSessionService(apiClient, repos.Metadata)

	return &App{
		config:  c,
		session: session,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
