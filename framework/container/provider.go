package container

import "fmt"

// ServiceProvider in the manner of Laravel's Illuminate\Support\ServiceProvider.
//
// Register binds services and must not resolve anything. Boot runs after
// every provider has registered, so it may resolve any binding.
//
//	type FormServiceProvider struct{ container.BaseProvider }
//
//	func (p *FormServiceProvider) Register(app *container.Container) error {
//	    app.Singleton("datakind.validator", func(*container.Container) (any, error) {
//	        return datakind.NewValidator(), nil
//	    })
//	    return nil
//	}
type ServiceProvider interface {
	Register(app *Container) error
	Boot(app *Container) error
}

// BaseProvider gives a no-op Boot. Embed it and implement Register.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }

// ProviderRegistry registers and boots ServiceProviders in order.
type ProviderRegistry struct {
	app        *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register method. Registering the
// same provider twice is a no-op. A provider added after Boot is booted
// immediately.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}
	if err := provider.Register(r.app); err != nil {
		return fmt.Errorf("register %T: %w", provider, err)
	}
	r.registered[provider] = true
	r.providers = append(r.providers, provider)

	if r.booted {
		return r.boot(provider)
	}
	return nil
}

// Boot calls Boot on all registered providers, in registration order, and
// stops at the first error.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, provider := range r.providers {
		if err := r.boot(provider); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProviderRegistry) boot(provider ServiceProvider) error {
	if err := provider.Boot(r.app); err != nil {
		return fmt.Errorf("boot %T: %w", provider, err)
	}
	return nil
}

// Booted returns true if Boot has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
