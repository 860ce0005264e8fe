package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrResourceNotFound is returned by Get and Delete when no resource is
	// stored under the requested id.
	ErrResourceNotFound = errors.New("resource was not found")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")

	ErrBuildingSQLQuery = errors.New("error building SQL query")
	ErrExecutingQuery   = errors.New("error executing query")
	ErrScanningRow      = errors.New("error scanning row")
	ErrConnectingDB     = errors.New("error connecting database")
	ErrMigratingDB      = errors.New("error migrating database")
)
