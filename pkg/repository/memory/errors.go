package memory

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNotFound is returned when the requested entity does not exist
	ErrNotFound = goerr.New("not found")

	// ErrDuplicateID is returned when adding a record whose ID already exists
	ErrDuplicateID = goerr.New("duplicate record ID")
)
