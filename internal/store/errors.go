package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVaultTaskNotFound is returned when an update targets a task that
	// does not exist or belongs to another user.
	ErrVaultTaskNotFound = errors.New("vault task was not found")

	// ErrVersionConflict is returned when the version supplied with an
	// update does not match the stored one: someone else changed the task
	// since the caller last read it.
	ErrVersionConflict = errors.New("vault task version conflict occurred")

	// ErrVaultTaskAlreadyExists is returned when an insert hits the
	// primary key of an existing task.
	ErrVaultTaskAlreadyExists = errors.New("vault task already exists")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These wrap the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails. The
	// transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a single row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan vault task row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan vault task rows")
)
