package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a config schema version other than CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidTarget indicates an unrecognized target name.
	ErrInvalidTarget = errors.New("invalid default target")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidRetention indicates a negative snapshot retention.
	ErrInvalidRetention = errors.New("backup retention must be >= 0")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, &FieldError{Value: strconv.Itoa(cfg.Version), Err: ErrUnsupportedVersion})
	}

	for _, target := range cfg.DefaultTargets {
		if !paths.ValidTarget(target) {
			errs = append(errs, &FieldError{Value: target, Err: ErrInvalidTarget})
		}
	}

	if name := cfg.Deploy.RulesFileName; name != "" {
		if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
			errs = append(errs, &FieldError{Field: "deploy.rules_file_name", Value: name, Err: ErrInvalidPath})
		}
	}

	if err := validatePath(cfg.Backup.Dir); err != nil {
		errs = append(errs, &FieldError{Field: "backup.dir", Value: cfg.Backup.Dir, Err: err})
	}

	if cfg.Backup.Retention < 0 {
		errs = append(errs, &FieldError{Value: strconv.Itoa(cfg.Backup.Retention), Err: ErrInvalidRetention})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError ties a validation failure to the offending value.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Err.Error() + ": " + e.Value
	}
	return e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
