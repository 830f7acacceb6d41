package container

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotBound is returned by Make for an abstract nobody registered.
var ErrNotBound = errors.New("container: no binding registered")

// Factory builds a concrete value, resolving its own dependencies from c.
type Factory func(c *Container) (any, error)

// binding holds a registered factory and, for singletons, its cached result.
type binding struct {
	factory   Factory
	singleton bool

	once     sync.Once
	instance any
	err      error
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is a small IoC container in the style of Laravel's
// Illuminate\Container\Container: Bind / Singleton / Instance / Make.
//
// Factories run outside the container lock, so they may resolve other
// abstracts. A singleton factory runs at most once; its error is cached too.
type Container struct {
	mu       sync.RWMutex
	bindings map[string]*binding
}

// New creates an empty container.
func New() *Container {
	c := &Container{bindings: make(map[string]*binding)}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient factory: every Make builds a new value.
//
//	c.Bind("form.state", func(c *container.Container) (any, error) {
//	    return form.NewState(), nil
//	})
func (c *Container) Bind(abstract string, factory Factory) {
	c.set(abstract, &binding{factory: factory})
}

// Singleton registers a factory whose result is cached after first resolution.
//
//	c.Singleton("logger", func(c *container.Container) (any, error) {
//	    cfg, err := container.Resolve[*config.Config](c, "config")
//	    ...
//	})
func (c *Container) Singleton(abstract string, factory Factory) {
	c.set(abstract, &binding{factory: factory, singleton: true})
}

// Instance registers a pre-built value as a singleton.
func (c *Container) Instance(abstract string, instance any) {
	b := &binding{singleton: true, instance: instance}
	b.once.Do(func() {})
	c.set(abstract, b)
}

func (c *Container) set(abstract string, b *binding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[abstract] = b
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container.
func (c *Container) Make(abstract string) (any, error) {
	c.mu.RLock()
	b, ok := c.bindings[abstract]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w for [%s]", ErrNotBound, abstract)
	}

	if !b.singleton {
		return c.build(abstract, b.factory)
	}
	b.once.Do(func() {
		b.instance, b.err = c.build(abstract, b.factory)
	})
	return b.instance, b.err
}

func (c *Container) build(abstract string, f Factory) (any, error) {
	instance, err := f(c)
	if err != nil {
		return nil, fmt.Errorf("container: build [%s]: %w", abstract, err)
	}
	return instance, nil
}

// Bound returns true if an abstract has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bindings[abstract]
	return ok
}

// Bindings returns the registered abstract keys, sorted.
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings))
	for k := range c.bindings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result.
//
//	// Instead of: v, _ := c.Make("datakind.validator"); v.(*datakind.Validator)
//	// Write:      v, err := container.Resolve[*datakind.Validator](c, "datakind.validator")
func Resolve[T any](c *Container, abstract string) (T, error) {
	var zero T
	instance, err := c.Make(abstract)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%T]: [%s] resolved to %T", zero, abstract, instance)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error. Use it only after Boot,
// where a failure means the wiring itself is wrong.
func MustResolve[T any](c *Container, abstract string) T {
	typed, err := Resolve[T](c, abstract)
	if err != nil {
		panic(err)
	}
	return typed
}
