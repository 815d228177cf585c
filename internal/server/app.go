// Package server initializes and runs the TaskChat server: it opens the
// storage backend, wires the domain services, and starts the TCP endpoint
// with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/duongnt/taskchat/internal/logging"
	"github.com/duongnt/taskchat/internal/server/chats"
	"github.com/duongnt/taskchat/internal/server/config"
	"github.com/duongnt/taskchat/internal/server/projects"
	"github.com/duongnt/taskchat/internal/server/shared/db"
	"github.com/duongnt/taskchat/internal/server/tasks"
	"github.com/duongnt/taskchat/internal/server/tcp"
	"github.com/duongnt/taskchat/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	store          db.RepositoryManager
	userService    *users.Service
	chatService    *chats.Service
	projectService *projects.Service
	taskService    *tasks.Service
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	store, err := db.NewRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(store.Users(), c)
	cs := chats.NewService(store.Chats())
	ps := projects.NewService(store.Projects())
	ts := tasks.NewService(store.Tasks(), store.Projects())

	return &App{
		config:         c,
		logger:         logger,
		store:          store,
		userService:    us,
		chatService:    cs,
		projectService: ps,
		taskService:    ts,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startTCPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := tcp.NewServer(app.config.EndpointAddr, app.logger,
		app.userService, app.chatService, app.projectService, app.taskService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startTCPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
