package repository

import "errors"

// Sentinel errors shared by all repositories. Handlers map these onto HTTP
// statuses; repositories wrap them with entity-specific detail.
var (
	// ErrValidation: a required field is missing or a value is out of
	// range. Raised before any store mutation.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName: the entity's name is already taken by another row
	// of the same table.
	ErrDuplicateName = errors.New("name already in use")

	// ErrUnknownReference: a name column references an entity that does
	// not currently exist.
	ErrUnknownReference = errors.New("referenced entity does not exist")

	// ErrNameReferenced: renaming was rejected because existing records
	// still reference the old name.
	ErrNameReferenced = errors.New("name is referenced by existing records")
)
