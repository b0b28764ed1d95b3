package users

import "codeberg.org/mutker/erroror"

// Error catalog for the users domain.
var (
	// Validation errors
	ErrNameTooShort  = erroror.Validation("User.Name", "Name is too short")
	ErrEmailInvalid  = erroror.Validation("User.Email", "Email address is malformed")
	ErrAgeOutOfRange = erroror.Validation("User.Age", "Age must be between 0 and 150")

	// Lookup and uniqueness errors
	ErrNotFound       = erroror.NotFound("User.NotFound", "User does not exist")
	ErrDuplicateEmail = erroror.Conflict("User.DuplicateEmail", "Email address is already registered")

	// Configuration errors
	ErrInvalidDBPath = erroror.Validation("User.Storage.Path", "Database path must not be empty")
)

// storageError wraps an infrastructure fault as an unexpected-kind
// domain error, keeping the cause in metadata for diagnostics.
func storageError(operation string, err error) erroror.Error {
	return erroror.Unexpected("User.Storage", "User storage operation failed").
		WithMetadata(map[string]any{
			"operation": operation,
			"cause":     err.Error(),
		})
}
