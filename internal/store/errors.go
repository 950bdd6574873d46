package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoSessionWasFound is returned when a session lookup by token
	// produces no row. Expired and invalidated sessions collapse into this
	// condition from the caller's perspective.
	ErrNoSessionWasFound = errors.New("no session was found")

	// ErrNoMeasurementWasFound is returned when an operation targets a
	// measurement (identified by id and user_id) that does not exist.
	ErrNoMeasurementWasFound = errors.New("no measurement was found")

	// ErrNoWaterEntryWasFound is returned when an operation targets a water
	// log entry that does not exist for the given user.
	ErrNoWaterEntryWasFound = errors.New("no water entry was found")

	// ErrNoFastWasFound is returned when an operation targets a fasting
	// window that does not exist for the given user.
	ErrNoFastWasFound = errors.New("no fast was found")

	// ErrOpenFastExists is returned when starting a fast while another one
	// is still open; the partial unique index on fasts enforces at most one
	// open window per user.
	ErrOpenFastExists = errors.New("an unfinished fast already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
