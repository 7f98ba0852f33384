package backup

import (
	"io/fs"
	"time"

	"github.com/thoreinstein/teamforge/internal/errors"
)

// ManifestVersion is the manifest format version.
const ManifestVersion = 1

// ManifestFile is the manifest's name inside each backup directory.
const ManifestFile = "manifest.json"

// DefaultRetentionCount is the number of backups kept per target.
const DefaultRetentionCount = 5

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates no backups exist for the specified target.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrBackupCorrupted indicates a stored file no longer matches the
	// SHA256 hash in its manifest.
	ErrBackupCorrupted = errors.New("backup corrupted")

	// ErrTargetRequired is returned when no target id is given.
	ErrTargetRequired = errors.New("target is required")
)

// Manifest describes one snapshot. It is stored as manifest.json in the
// backup directory.
type Manifest struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Target    string    `json:"target"`

	// Files are the regular files captured, with their hashes.
	Files []File `json:"files"`

	// Dirs existed at snapshot time. Restore empties them before putting
	// the captured files back, so files added later disappear.
	Dirs []string `json:"dirs,omitempty"`

	// Absent paths did not exist at snapshot time. Restore removes them.
	Absent []string `json:"absent,omitempty"`

	TeamforgeVersion string `json:"teamforge_version"`

	// ID is the backup directory name. Populated on load, not stored.
	ID string `json:"-"`
}

// File is one captured file.
type File struct {
	OriginalPath string      `json:"original_path"`
	RelPath      string      `json:"rel_path"`
	SHA256Hash   string      `json:"sha256_hash"`
	Mode         fs.FileMode `json:"mode"`
}
