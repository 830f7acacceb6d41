package providers

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/km-arc/kindform/framework/config"
	"github.com/km-arc/kindform/framework/container"
	gohttp "github.com/km-arc/kindform/framework/http"
	"github.com/km-arc/kindform/framework/log"
	"github.com/km-arc/kindform/framework/routing"
)

// Abstract keys bound by the framework providers.
const (
	Config = "config"
	Logger = "logger"
	Router = "router"
	View   = "view"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the configuration from .env and the
// environment.
//
// Bound abstracts:
//   - "config"  → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) error {
	envFiles := p.EnvFiles
	app.Singleton(Config, func(*container.Container) (any, error) {
		return config.Load(envFiles...), nil
	})
	return nil
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider builds the zap logger from the LOG_* settings.
//
// Bound abstracts:
//   - "logger"  → *zap.Logger
type LogServiceProvider struct {
	container.BaseProvider
}

func (p *LogServiceProvider) Register(app *container.Container) error {
	app.Singleton(Logger, func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Config](c, Config)
		if err != nil {
			return nil, err
		}
		logger, err := log.New(cfg.Log)
		if err != nil {
			return nil, err
		}
		return logger.With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env)), nil
	})
	return nil
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router with request logging.
//
// Bound abstracts:
//   - "router"  → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) error {
	app.Singleton(Router, func(c *container.Container) (any, error) {
		logger, err := container.Resolve[*zap.Logger](c, Logger)
		if err != nil {
			return nil, err
		}
		return routing.New(logger), nil
	})
	return nil
}

// ── ViewServiceProvider ───────────────────────────────────────────────────────

// ViewServiceProvider registers the template engine over FS.
//
// Bound abstracts:
//   - "view"   → *gohttp.ViewEngine
type ViewServiceProvider struct {
	container.BaseProvider
	FS  fs.FS
	Ext string // file extension, default: ".html"
}

func (p *ViewServiceProvider) Register(app *container.Container) error {
	fsys := p.FS
	ext := p.Ext
	if ext == "" {
		ext = ".html"
	}
	app.Singleton(View, func(*container.Container) (any, error) {
		return gohttp.NewViewEngine(fsys, ext)
	})
	return nil
}
