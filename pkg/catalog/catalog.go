package catalog

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Demo runs one pattern demonstration, writing its transcript to w.
// Demos are deterministic and side-effect free apart from the writes.
type Demo func(ctx context.Context, w io.Writer) error

// Catalog manages the available demonstrations.
type Catalog struct {
	mu    sync.RWMutex
	demos map[string]Demo
}

// New creates a new empty catalog.
func New() *Catalog {
	return &Catalog{
		demos: make(map[string]Demo),
	}
}

// Register adds a demonstration to the catalog.
// If a demo with the same name exists, it is overwritten.
func (c *Catalog) Register(name string, d Demo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.demos[name] = d
}

// Run looks up a demonstration by name and executes it against w.
// Returns an error if the demo is not found.
func (c *Catalog) Run(ctx context.Context, name string, w io.Writer) error {
	c.mu.RLock()
	d, ok := c.demos[name]
	c.mu.RUnlock()

	if !ok {
		return fmt.Errorf("pattern not found: %s", name)
	}

	return d(ctx, w)
}

// Has reports whether a demonstration is registered under name.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.demos[name]
	return ok
}

// Names returns the registered demo names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.demos))
	for name := range c.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
