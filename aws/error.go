package aws

import "fmt"

type ClientConstructionError struct {
	Region     string
	Underlying error
}

func (err ClientConstructionError) Error() string {
	return fmt.Sprintf("Unable to create an ECS client for region %s. Original error: %v", err.Region, err.Underlying)
}

func (err ClientConstructionError) Unwrap() error {
	return err.Underlying
}

// PipelineError is a failure that stopped a pipeline for a whole region, such as a listing
// error. Failures of individual resources are reported as outcomes instead.
type PipelineError struct {
	Region     string
	Stage      string
	Underlying error
}

func (err PipelineError) Error() string {
	return fmt.Sprintf("Error during %s in region %s: %v", err.Stage, err.Region, err.Underlying)
}

func (err PipelineError) Unwrap() error {
	return err.Underlying
}

type InvalidActionError struct {
	Value string
}

func (err InvalidActionError) Error() string {
	return fmt.Sprintf("Invalid action %q. Valid actions are: %s", err.Value, joinValues(Actions()))
}

type InvalidScopeError struct {
	Value string
}

func (err InvalidScopeError) Error() string {
	return fmt.Sprintf("Invalid scope %q. Valid scopes are: %s", err.Value, joinValues(RegionScopes()))
}
