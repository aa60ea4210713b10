package tasks

import "errors"

// Common task service errors. All of these are rejections of caller input
// and map to a 400 at the API boundary.
var (
	// ErrInvalidSortField is returned when a sort field is not in the
	// allow-list. Unknown fields are never silently ignored; dropping them
	// would make pagination order depend on unvalidated input.
	ErrInvalidSortField = errors.New("unknown sort field")

	// ErrInvalidLimit is returned when a page size is outside [1, 100].
	ErrInvalidLimit = errors.New("limit must be between 1 and 100")

	// ErrInvalidPage is returned when a page number is below 1.
	ErrInvalidPage = errors.New("page must be at least 1")

	// ErrEmptyUpdate is returned when an update patch carries no fields.
	ErrEmptyUpdate = errors.New("update must include at least one field")
)
