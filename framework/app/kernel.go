package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/kindform/framework/config"
	"github.com/km-arc/kindform/framework/container"
	"github.com/km-arc/kindform/framework/providers"
	"github.com/km-arc/kindform/framework/routing"
)

// Version is reported in the startup log.
const Version = "0.1.0"

// Application is the top-level application container. It embeds the IoC
// Container so callers can use app.Bind(), app.Singleton() and friends
// directly, as with $app in Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application with the core providers registered: config,
// logger and router.
func New(envFiles ...string) (*Application, error) {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	a := &Application{Container: c, Providers: registry}
	core := []container.ServiceProvider{
		&providers.ConfigServiceProvider{EnvFiles: envFiles},
		&providers.LogServiceProvider{},
		&providers.RoutingServiceProvider{},
	}
	for _, p := range core {
		if err := a.Register(p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.Container, providers.Config)
}

// Logger resolves *zap.Logger from the container.
func (a *Application) Logger() *zap.Logger {
	return container.MustResolve[*zap.Logger](a.Container, providers.Logger)
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.MustResolve[*routing.Router](a.Container, providers.Router)
}

// Server builds the HTTP server for APP_PORT with the configured timeouts.
func (a *Application) Server() *http.Server {
	cfg := a.Config()
	return &http.Server{
		Addr:         net.JoinHostPort("", cfg.App.Port),
		Handler:      a.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
}

// Run boots the application (if needed) and serves HTTP until ctx is done,
// then shuts down within HTTP_SHUTDOWN_TIMEOUT.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}
	cfg := a.Config()
	logger := a.Logger()
	defer func() { _ = logger.Sync() }()

	ln, err := net.Listen("tcp", net.JoinHostPort("", cfg.App.Port))
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Serve serves HTTP on ln until ctx is done.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	cfg := a.Config()
	logger := a.Logger()
	srv := a.Server()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.String("addr", ln.Addr().String()),
			zap.String("url", cfg.App.URL),
			zap.String("version", Version),
		)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.HTTP.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server stopped")
	return nil
}
