// Package errors provides error handling conventions for the teamforge CLI.
//
// It re-exports the constructors of github.com/cockroachdb/errors (New, Newf,
// Wrap, Wrapf, Is, As, Join) so callers import a single package, defines
// sentinel errors for common failure conditions, and provides an ExitError
// type for CLI exit code handling.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(team.ErrInvalidTeam, "Fix the team file and retry")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
