package util

import (
	"context"
	"errors"

	"github.com/aws/smithy-go"
)

var ErrInSufficientPermission = errors.New("error:INSUFFICIENT_PERMISSION")
var ErrContextExecutionTimeout = errors.New("error:EXECUTION_TIMEOUT")

const AWsUnauthorizedError string = "UnauthorizedOperation"
const AwsAccessDeniedError string = "AccessDeniedException"

// TransformAWSError maps a few well known AWS API failures onto sentinel errors so the report shows
// something an operator can act on. Anything else is returned unchanged.
// ref : https://docs.aws.amazon.com/AmazonECS/latest/APIReference/CommonErrors.html
func TransformAWSError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case AWsUnauthorizedError, AwsAccessDeniedError:
			return ErrInSufficientPermission
		case "RequestCanceled":
			return ErrContextExecutionTimeout
		}
	}

	if CheckDeadlineExceeded(err) {
		return ErrContextExecutionTimeout
	}
	return err
}

// Check if the error is due to context deadline exceeded
func CheckDeadlineExceeded(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
