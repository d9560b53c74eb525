// Package reporting provides event-driven reporting for ecs-nuke runs.
//
// Key components:
//   - Event: Interface for reportable events (ResourceFound, ResourceDeleted, GeneralError)
//   - Collector: Thread-safe event collector that routes events to renderers
//   - Renderer: Interface for output handlers (implemented in renderers package)
//
// The collector is passed explicitly as a function parameter to functions that need it.
package reporting

// Event is the interface for all reportable events.
type Event interface {
	EventType() string
}

// ResourceFound is emitted when a resource is listed and selected for teardown.
type ResourceFound struct {
	ResourceType string `json:"resource_type"`
	Region       string `json:"region"`
	Identifier   string `json:"identifier"`
}

func (e ResourceFound) EventType() string { return "resource_found" }

// ResourceDeleted is emitted after a teardown attempt of a single resource.
type ResourceDeleted struct {
	ResourceType string `json:"resource_type"`
	Region       string `json:"region,omitempty"`
	Identifier   string `json:"identifier"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"` // empty if success
}

func (e ResourceDeleted) EventType() string { return "resource_deleted" }

// GeneralError is emitted for errors not tied to a specific resource, such as a failed listing.
type GeneralError struct {
	ResourceType string `json:"resource_type,omitempty"` // optional
	Region       string `json:"region,omitempty"`
	Description  string `json:"description"`
	Error        string `json:"error"`
}

func (e GeneralError) EventType() string { return "general_error" }
