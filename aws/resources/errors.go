package resources

import (
	"fmt"
	"sort"
	"strings"
)

// MalformedResponseError is returned when a call succeeded but the response lacks a field the
// teardown relies on.
type MalformedResponseError struct {
	Operation string
	Field     string
}

func (err MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: missing %s", err.Operation, err.Field)
}

// BatchFailureError carries the per identifier failures a batch call reported while the call
// itself succeeded.
type BatchFailureError struct {
	Operation string
	Failures  map[string]string
}

func (err BatchFailureError) Error() string {
	ids := make([]string, 0, len(err.Failures))
	for id := range err.Failures {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	details := make([]string, 0, len(ids))
	for _, id := range ids {
		details = append(details, fmt.Sprintf("%s: %s", id, err.Failures[id]))
	}
	return fmt.Sprintf("%s failed for %d resources: %s", err.Operation, len(ids), strings.Join(details, "; "))
}

// ItemFailureError is the failure of a single identifier inside a batch call.
type ItemFailureError struct {
	Operation  string
	Identifier string
	Reason     string
}

func (err ItemFailureError) Error() string {
	return fmt.Sprintf("%s failed for %s: %s", err.Operation, err.Identifier, err.Reason)
}
