package types

import "errors"

var (
	// ErrMigrationNotAllowed is returned by Migrate unless the contract is
	// currently in the Migrating state.
	ErrMigrationNotAllowed = errors.New("upgrade: migration not allowed outside the migrating state")
)
