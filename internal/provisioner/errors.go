package provisioner

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/aws/smithy-go"
)

// Category classifies a provisioning failure for the CLI boundary.
type Category string

const (
	// CategoryValidation covers bad local input, caught before any network call.
	CategoryValidation Category = "validation"
	// CategoryAuthorization covers permission faults from the provider.
	CategoryAuthorization Category = "authorization"
	// CategoryConflict covers name collisions with existing resources.
	CategoryConflict Category = "conflict"
	// CategoryNotFound covers lookups of resources that do not exist.
	CategoryNotFound Category = "not-found"
	// CategoryRemote covers any other provider-side failure.
	CategoryRemote Category = "remote"
)

// Error is a categorized provisioning failure.
type Error struct {
	Category Category
	Op       string
	Err      error

	// Transient marks remote errors worth retrying (throttling,
	// provider-side internal faults).
	Transient bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s: %v", e.Category, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationErr(format string, args ...any) *Error {
	return &Error{Category: CategoryValidation, Op: "validate input", Err: fmt.Errorf(format, args...)}
}

// IsValidation reports whether err is a local input validation failure.
func IsValidation(err error) bool { return hasCategory(err, CategoryValidation) }

// IsAuthorization reports whether err is a provider permission fault.
func IsAuthorization(err error) bool { return hasCategory(err, CategoryAuthorization) }

// IsConflict reports whether err is a name collision.
func IsConflict(err error) bool { return hasCategory(err, CategoryConflict) }

// IsNotFound reports whether err is a missing-resource fault.
func IsNotFound(err error) bool { return hasCategory(err, CategoryNotFound) }

func hasCategory(err error, c Category) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Category == c
}

// classify maps a Bedrock control-plane error onto the CLI taxonomy.
// Typed SDK faults are checked first, then smithy API error codes for
// services that do not return the exact SDK types.
func classify(op string, err error) *Error {
	if err == nil {
		return nil
	}

	var accessDenied *types.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return &Error{Category: CategoryAuthorization, Op: op, Err: err}
	}

	var conflict *types.ConflictException
	if errors.As(err, &conflict) {
		return &Error{Category: CategoryConflict, Op: op, Err: err}
	}

	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return &Error{Category: CategoryNotFound, Op: op, Err: err}
	}

	var throttled *types.ThrottlingException
	if errors.As(err, &throttled) {
		return &Error{Category: CategoryRemote, Op: op, Err: err, Transient: true}
	}

	var internal *types.InternalServerException
	if errors.As(err, &internal) {
		return &Error{Category: CategoryRemote, Op: op, Err: err, Transient: true}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException", "AccessDenied", "UnauthorizedOperation":
			return &Error{Category: CategoryAuthorization, Op: op, Err: err}
		case "ConflictException":
			return &Error{Category: CategoryConflict, Op: op, Err: err}
		case "ResourceNotFoundException":
			return &Error{Category: CategoryNotFound, Op: op, Err: err}
		case "ThrottlingException", "Throttling", "TooManyRequestsException":
			return &Error{Category: CategoryRemote, Op: op, Err: err, Transient: true}
		}
		return &Error{Category: CategoryRemote, Op: op, Err: err}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Category: CategoryRemote, Op: op, Err: err}
	}

	// Plain transport faults (connection reset, DNS) are worth retrying.
	return &Error{Category: CategoryRemote, Op: op, Err: err, Transient: true}
}
