package app

import (
	"go.uber.org/zap"

	"github.com/km-arc/kindform/app/datakind"
	"github.com/km-arc/kindform/app/form"
	fwapp "github.com/km-arc/kindform/framework/app"
	"github.com/km-arc/kindform/framework/config"
	"github.com/km-arc/kindform/framework/container"
	gohttp "github.com/km-arc/kindform/framework/http"
	"github.com/km-arc/kindform/framework/providers"
	"github.com/km-arc/kindform/framework/routing"
)

// Abstract keys bound by FormServiceProvider.
const (
	Catalog    = "datakind.catalog"
	Validator  = "datakind.validator"
	Submitter  = "form.submit"
	Form       = "form"
	Controller = "form.controller"
)

// FormServiceProvider wires the data-kind form and mounts its routes.
//
// Bound abstracts:
//   - "datakind.catalog"   → *datakind.Catalog (FORM_CATALOG or built-in)
//   - "datakind.validator" → *datakind.Validator
//   - "form.submit"        → datakind.SubmitFunc (logs every submission)
//   - "form"               → *form.Form
//   - "form.controller"    → *form.Controller
type FormServiceProvider struct {
	// Submit replaces the default logging callback when set.
	Submit datakind.SubmitFunc
}

func (p *FormServiceProvider) Register(app *container.Container) error {
	app.Singleton(Catalog, func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Config](c, providers.Config)
		if err != nil {
			return nil, err
		}
		if cfg.Form.Catalog == "" {
			return datakind.DefaultCatalog(), nil
		}
		return datakind.LoadCatalog(cfg.Form.Catalog)
	})

	app.Singleton(Validator, func(*container.Container) (any, error) {
		return datakind.NewValidator(), nil
	})

	submit := p.Submit
	app.Singleton(Submitter, func(c *container.Container) (any, error) {
		if submit != nil {
			return submit, nil
		}
		logger, err := container.Resolve[*zap.Logger](c, providers.Logger)
		if err != nil {
			return nil, err
		}
		return form.LogSubmit(logger), nil
	})

	app.Singleton(Form, func(c *container.Container) (any, error) {
		cat, err := container.Resolve[*datakind.Catalog](c, Catalog)
		if err != nil {
			return nil, err
		}
		v, err := container.Resolve[*datakind.Validator](c, Validator)
		if err != nil {
			return nil, err
		}
		fn, err := container.Resolve[datakind.SubmitFunc](c, Submitter)
		if err != nil {
			return nil, err
		}
		return form.New(v, cat, fn), nil
	})

	app.Singleton(Controller, func(c *container.Container) (any, error) {
		f, err := container.Resolve[*form.Form](c, Form)
		if err != nil {
			return nil, err
		}
		views, err := container.Resolve[*gohttp.ViewEngine](c, providers.View)
		if err != nil {
			return nil, err
		}
		logger, err := container.Resolve[*zap.Logger](c, providers.Logger)
		if err != nil {
			return nil, err
		}
		cfg, err := container.Resolve[*config.Config](c, providers.Config)
		if err != nil {
			return nil, err
		}
		return form.NewController(f, views, logger, cfg.App.Name), nil
	})
	return nil
}

// Boot builds the controller eagerly, so a bad catalog fails at startup, and
// mounts its routes.
func (p *FormServiceProvider) Boot(app *container.Container) error {
	ctrl, err := container.Resolve[*form.Controller](app, Controller)
	if err != nil {
		return err
	}
	router, err := container.Resolve[*routing.Router](app, providers.Router)
	if err != nil {
		return err
	}
	ctrl.Routes(router)
	return nil
}

// New creates the kindform application: the framework core plus views and
// the form provider, booted.
func New(submit datakind.SubmitFunc, envFiles ...string) (*fwapp.Application, error) {
	a, err := fwapp.New(envFiles...)
	if err != nil {
		return nil, err
	}
	if err := a.Register(&providers.ViewServiceProvider{FS: form.Views()}); err != nil {
		return nil, err
	}
	if err := a.Register(&FormServiceProvider{Submit: submit}); err != nil {
		return nil, err
	}
	if err := a.Boot(); err != nil {
		return nil, err
	}
	return a, nil
}
