// Package logging provides structured logging for the teamforge CLI using slog.
//
// Text output goes through a TTY-aware handler that colorizes levels and
// masks secret-looking attribute values (MCP server tokens, auth headers).
// JSON output uses the standard library handler. A [MultiHandler] fans records
// out to several handlers, which the CLI uses for --log-file.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("deploying", "target", "claude")
//
// # Context
//
// Commands store the configured logger in their context with [NewContext];
// library code retrieves it with [FromContext].
//
// # Testing
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//	}
package logging
