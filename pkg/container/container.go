// Package container resolves helper implementations by name.
package container

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrHelperNotFound is returned when no helper is registered under a name.
var ErrHelperNotFound = errors.New("helper not found")

// Container holds named helpers. A helper is any value whose methods
// implement actions, or a value implementing actor.Performer.
type Container struct {
	helpers map[string]any
	order   []string
	mu      sync.RWMutex
}

// New creates an empty Container.
func New() *Container {
	return &Container{
		helpers: make(map[string]any),
	}
}

// Create replaces every helper with the given ones.
func (c *Container) Create(helpers map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.helpers = make(map[string]any)
	c.order = nil
	c.add(helpers)
}

// Append adds helpers, replacing any already registered under the same name.
// New names are ordered alphabetically after the existing ones.
func (c *Container) Append(helpers map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.add(helpers)
}

func (c *Container) add(helpers map[string]any) {
	names := make([]string, 0, len(helpers))
	for name := range helpers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, exists := c.helpers[name]; !exists {
			c.order = append(c.order, name)
		}
		c.helpers[name] = helpers[name]
	}
}

// Clear removes every helper.
func (c *Container) Clear() {
	c.Create(nil)
}

// Helper returns a helper by name
func (c *Container) Helper(name string) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h, ok := c.helpers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHelperNotFound, name)
	}
	return h, nil
}

// Helpers returns the helper names in registration order.
func (c *Container) Helpers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Default returns the first registered helper and its name.
func (c *Container) Default() (string, any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.order) == 0 {
		return "", nil, fmt.Errorf("%w: no helpers registered", ErrHelperNotFound)
	}
	name := c.order[0]
	return name, c.helpers[name], nil
}
