package config

import (
	"errors"
	"fmt"
)

var ErrNoRegions = errors.New("no regions listed")

// MissingCredentialError is returned at startup when a required credential value is not set in
// either the environment or the env file.
type MissingCredentialError struct {
	Name string
}

func (e MissingCredentialError) Error() string {
	return fmt.Sprintf("Missing required value %s: set it in the environment or the env file", e.Name)
}

type EnvFileReadError struct {
	FilePath   string
	Underlying error
}

func (e EnvFileReadError) Error() string {
	return fmt.Sprintf("Error reading env file %s: %v", e.FilePath, e.Underlying)
}

func (e EnvFileReadError) Unwrap() error {
	return e.Underlying
}

type RegionsFileError struct {
	FilePath   string
	Underlying error
}

func (e RegionsFileError) Error() string {
	return fmt.Sprintf("Error reading regions file %s: %v", e.FilePath, e.Underlying)
}

func (e RegionsFileError) Unwrap() error {
	return e.Underlying
}
