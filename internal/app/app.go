package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/middleware"
	"github.com/vancomm/sweeper/internal/mines"
)

type App struct {
	logger    *slog.Logger
	addr      string
	defaults  game.Params
	origins   []string
	newSource func() mines.PositionSource
}

type Option func(*App)

// WithSource replaces the mine placement source of new games.
func WithSource(newSource func() mines.PositionSource) Option {
	return func(a *App) { a.newSource = newSource }
}

// WithOrigins restricts CORS and game connections to the given origins,
// replacing ALLOWED_ORIGINS.
func WithOrigins(origins ...string) Option {
	return func(a *App) { a.origins = origins }
}

func New(logger *slog.Logger, addr string, defaults game.Params, opts ...Option) *App {
	app := &App{
		logger:   logger,
		addr:     addr,
		defaults: defaults,
		newSource: func() mines.PositionSource {
			return mines.NewSource()
		},
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

func (a *App) Handler() (http.Handler, error) {
	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, err
	}
	if len(a.origins) > 0 {
		ws.Origins = a.origins
	}
	return middleware.Wrap(
		a.router(ws),
		middleware.Logging(a.logger),
		middleware.Cors(ws.Origins...),
	), nil
}

// Start serves until ctx is done, then shuts the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return fmt.Errorf("unable to build handler: %w", err)
	}

	server := &http.Server{
		Addr:        a.addr,
		Handler:     handler,
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", a.addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
