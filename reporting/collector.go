package reporting

import (
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Renderer processes events and produces output.
type Renderer interface {
	// OnEvent is called for each event as it occurs.
	OnEvent(event Event)
	// Render writes the final output. It is called once, from Complete.
	Render() error
}

// Collector receives events and routes them to renderers.
// Thread-safe for concurrent event emission.
type Collector struct {
	mu        sync.Mutex
	renderers []Renderer
	closed    bool
}

// NewCollector creates a new Collector.
func NewCollector() *Collector {
	return &Collector{
		renderers: make([]Renderer, 0),
	}
}

// AddRenderer adds a renderer to receive events.
// Must be called during setup before any concurrent operations.
func (c *Collector) AddRenderer(r Renderer) {
	if r == nil {
		return
	}
	c.renderers = append(c.renderers, r)
}

// Emit sends an event to all renderers.
func (c *Collector) Emit(event Event) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	for _, r := range c.renderers {
		r.OnEvent(event)
	}
}

func (c *Collector) RecordFound(resourceType, region, identifier string) {
	c.Emit(ResourceFound{
		ResourceType: resourceType,
		Region:       region,
		Identifier:   identifier,
	})
}

func (c *Collector) RecordDeleted(resourceType, region, identifier string, err error) {
	event := ResourceDeleted{
		ResourceType: resourceType,
		Region:       region,
		Identifier:   identifier,
		Success:      err == nil,
	}
	if err != nil {
		event.Error = err.Error()
	}
	c.Emit(event)
}

func (c *Collector) RecordError(resourceType, region, description string, err error) {
	event := GeneralError{
		ResourceType: resourceType,
		Region:       region,
		Description:  description,
	}
	if err != nil {
		event.Error = err.Error()
	}
	c.Emit(event)
}

// Complete marks collection as finished and asks every renderer to write its output.
// Safe to call multiple times - subsequent calls are no-ops.
func (c *Collector) Complete() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var allErrs *multierror.Error
	for _, r := range c.renderers {
		if err := r.Render(); err != nil {
			allErrs = multierror.Append(allErrs, err)
		}
	}
	return allErrs.ErrorOrNil()
}
