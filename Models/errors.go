package Models

import "fmt"

// ValidationError reports malformed or missing input. Operations validate
// before touching the document, so a ValidationError means no state changed.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// DuplicateUserError is returned when registering a (clinic, phone) pair
// that already exists.
type DuplicateUserError struct {
	Clinic string
	Phone  string
}

func (e DuplicateUserError) Error() string {
	return fmt.Sprintf("user with clinic %q and phone %q already exists", e.Clinic, e.Phone)
}

type NotFoundError struct {
	What string
}

func (e NotFoundError) Error() string { return e.What + " not found" }

// PreconditionError reports an operation attempted while a required
// invariant does not hold, e.g. printing an unpaid invoice.
type PreconditionError struct {
	Message string
}

func (e PreconditionError) Error() string { return e.Message }

// StorageError wraps persistence or import/export I/O failures. Persistence
// failures inside mutations are logged and swallowed; only export paths
// surface a StorageError to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string { return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err) }

func (e StorageError) Unwrap() error { return e.Err }
