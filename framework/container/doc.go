// Package container provides a small Laravel-style IoC container and a
// Service Provider registry.
//
// Go has no constructor reflection, so every binding is an explicit factory.
// Factories return an error; Make wraps it with the abstract's name.
//
// # Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&FormServiceProvider{})
//  3. Boot: registry.Boot(); every binding may be resolved after this
//  4. Serve requests
//
// # Bindings
//
//	// Transient: new instance every Make()
//	c.Bind("clock", func(*container.Container) (any, error) { return time.Now(), nil })
//
//	// Singleton: created once, reused; a failed build stays failed
//	c.Singleton("datakind.catalog", func(c *container.Container) (any, error) {
//	    cfg, err := container.Resolve[*config.Config](c, "config")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return datakind.LoadCatalog(cfg.Form.Catalog)
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
// # Resolving
//
//	raw, err := c.Make("config")
//	cfg, err := container.Resolve[*config.Config](c, "config")
//	cfg := container.MustResolve[*config.Config](c, "config") // after Boot
package container
