package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is used for the application's own config and data directories.
const AppName = "teamforge"

// Target identifiers for supported AI coding assistants.
const (
	TargetClaude = "claude"
	TargetGemini = "gemini"
	TargetCline  = "cline"
)

// targetProjectDirs maps targets to their project-scoped root, relative to
// the project directory. This is the directory ClearExisting wipes.
var targetProjectDirs = map[string]string{
	TargetClaude: ".claude",
	TargetGemini: ".gemini",
	TargetCline:  ".clinerules",
}

// targetGlobalDirs maps targets to their home-scoped directory.
// Empty means the target keeps nothing under the home directory.
var targetGlobalDirs = map[string]string{
	TargetClaude: ".claude",
	TargetGemini: ".gemini",
	TargetCline:  "",
}

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the permission for directories created in project trees.
const DefaultDirPerm = 0o755

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrap(ErrHomeDirNotFound, "resolving home directory")
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
func DataHome() string {
	return xdg.DataHome
}

// AppConfigDir returns <ConfigHome>/teamforge.
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// BackupDir returns the default directory for pre-deploy snapshots.
// Returns: <DataHome>/teamforge/backups/
func BackupDir() string {
	return filepath.Join(DataHome(), AppName, "backups")
}

// ValidTarget returns true if the target identifier is recognized.
func ValidTarget(target string) bool {
	_, ok := targetProjectDirs[target]
	return ok
}

// Targets returns all supported target identifiers in display order.
func Targets() []string {
	return []string{
		TargetClaude,
		TargetGemini,
		TargetCline,
	}
}

// ProjectConfigDir returns the project-scoped root for a target.
//
//   - claude: <projectRoot>/.claude/
//   - gemini: <projectRoot>/.gemini/
//   - cline:  <projectRoot>/.clinerules/
//
// Returns an empty string for unknown targets or empty projectRoot.
func ProjectConfigDir(target, projectRoot string) string {
	if projectRoot == "" {
		return ""
	}
	rel, ok := targetProjectDirs[target]
	if !ok {
		return ""
	}
	return filepath.Join(projectRoot, rel)
}

// GlobalConfigDir returns the home-scoped directory for a target.
// Returns an empty string for unknown targets, targets without a global
// directory, or an empty home.
func GlobalConfigDir(target, home string) string {
	rel := targetGlobalDirs[target]
	if rel == "" || home == "" {
		return ""
	}
	return filepath.Join(home, rel)
}
