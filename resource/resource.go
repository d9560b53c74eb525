// Package resource holds the pieces shared by every ECS teardown pipeline: the scope a pipeline
// runs in, the bounded concurrency executor and ordered multi-step teardowns.
package resource

// Scope identifies where a pipeline is running. For ECS this is always a single region.
type Scope struct {
	Region    string
	AccountID string
}

// String returns a human-readable representation of the scope for logging
func (s Scope) String() string {
	if s.AccountID != "" {
		return s.AccountID + "/" + s.Region
	}
	return s.Region
}
