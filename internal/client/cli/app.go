// Package cli implements the interactive TaskChat terminal client: a word
// command loop over one server connection, holding the session token in
// memory for the lifetime of the process.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/duongnt/taskchat/internal/client/client"
	"github.com/duongnt/taskchat/internal/client/config"
)

type App struct {
	config   *config.Config
	client   *client.Client
	reader   *bufio.Reader
	token    string
	userName string
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	c, err := client.Dial(ctx, cfg.ServerAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		client: c,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}
