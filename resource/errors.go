package resource

import "fmt"

// PanicError is returned in place of an operation that panicked.
type PanicError struct {
	Identifier string
	Value      interface{}
	Stack      string
}

func (err PanicError) Error() string {
	return fmt.Sprintf("operation for %s panicked: %v", err.Identifier, err.Value)
}

// StepError is returned when a step of a multi-step teardown fails. The steps before it have
// already been applied.
type StepError struct {
	Identifier string
	Step       string
	Index      int
	Underlying error
}

func (err StepError) Error() string {
	return fmt.Sprintf("%s step %d (%s): %v", err.Identifier, err.Index, err.Step, err.Underlying)
}

func (err StepError) Unwrap() error {
	return err.Underlying
}
