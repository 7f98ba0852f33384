package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/paths"
	"github.com/thoreinstein/teamforge/pkg/fileutil"
)

// Version is recorded in every manifest. The CLI sets it at startup.
var Version = "dev"

const idLayout = "20060102T150405"

// Manager creates, restores, lists and prunes snapshots.
type Manager struct {
	fs             afero.Fs
	rootDir        string
	retentionCount int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithFs sets the filesystem both the snapshot sources and the backup
// store live on.
func WithFs(fs afero.Fs) Option {
	return func(m *Manager) {
		m.fs = fs
	}
}

// WithBackupDir sets the root backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		if dir != "" {
			m.rootDir = dir
		}
	}
}

// WithRetentionCount sets the number of backups to retain per target.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// WithClock overrides time.Now for backup ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager on the OS filesystem storing backups under
// paths.BackupDir.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		fs:             afero.NewOsFs(),
		rootDir:        paths.BackupDir(),
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RetentionCount returns the number of backups Prune keeps by default.
func (m *Manager) RetentionCount() int {
	return m.retentionCount
}

// Backup snapshots paths for target. Files are copied with their mode and
// SHA256 hash, directories recursively. Paths that do not exist are
// recorded as absent so Restore can remove what a later deploy creates.
func (m *Manager) Backup(target string, sources []string) (*Manifest, error) {
	if target == "" {
		return nil, ErrTargetRequired
	}
	if len(sources) == 0 {
		return nil, errors.New("at least one path is required")
	}

	backupID, err := m.nextID(target)
	if err != nil {
		return nil, err
	}
	backupPath := m.backupPath(target, backupID)

	if err := m.fs.MkdirAll(backupPath, paths.DefaultDirPerm); err != nil {
		return nil, errors.Wrap(err, "creating backup directory")
	}

	manifest := &Manifest{
		Version:          ManifestVersion,
		CreatedAt:        m.now().UTC(),
		Target:           target,
		Files:            []File{},
		TeamforgeVersion: Version,
		ID:               backupID,
	}

	seen := make(map[string]bool)
	for _, src := range dedupe(sources) {
		info, err := m.fs.Stat(src)
		if err != nil {
			if os.IsNotExist(err) {
				manifest.Absent = append(manifest.Absent, src)
				continue
			}
			_ = m.fs.RemoveAll(backupPath)
			return nil, errors.Wrapf(err, "stat %s", src)
		}

		if info.IsDir() {
			manifest.Dirs = append(manifest.Dirs, src)
		}

		err = afero.Walk(m.fs, src, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || seen[path] {
				return nil
			}
			seen[path] = true

			f, err := m.backupFile(path, backupPath)
			if err != nil {
				return errors.Wrapf(err, "backing up %s", path)
			}
			manifest.Files = append(manifest.Files, *f)
			return nil
		})
		if err != nil {
			_ = m.fs.RemoveAll(backupPath)
			return nil, err
		}
	}

	manifestPath := filepath.Join(backupPath, ManifestFile)
	if err := fileutil.AtomicWriteJSON(m.fs, manifestPath, manifest); err != nil {
		_ = m.fs.RemoveAll(backupPath)
		return nil, errors.Wrap(err, "writing manifest")
	}

	return manifest, nil
}

// nextID returns a timestamp id, suffixed when a backup with the same
// second already exists.
func (m *Manager) nextID(target string) (string, error) {
	base := m.now().UTC().Format(idLayout)
	id := base
	for n := 1; ; n++ {
		exists, err := afero.Exists(m.fs, m.backupPath(target, id))
		if err != nil {
			return "", errors.Wrap(err, "checking backup directory")
		}
		if !exists {
			return id, nil
		}
		id = base + "-" + strconv.Itoa(n)
	}
}

func (m *Manager) backupFile(src, backupPath string) (*File, error) {
	relPath := generateRelPath(src)
	dst := filepath.Join(backupPath, relPath)

	if err := m.fs.MkdirAll(filepath.Dir(dst), paths.DefaultDirPerm); err != nil {
		return nil, errors.Wrap(err, "creating parent directory")
	}

	info, err := m.fs.Stat(src)
	if err != nil {
		return nil, errors.Wrap(err, "stat source file")
	}
	data, err := afero.ReadFile(m.fs, src)
	if err != nil {
		return nil, errors.Wrap(err, "reading source file")
	}
	if err := afero.WriteFile(m.fs, dst, data, info.Mode().Perm()); err != nil {
		return nil, errors.Wrap(err, "copying file")
	}

	return &File{
		OriginalPath: src,
		RelPath:      relPath,
		SHA256Hash:   hashBytes(data),
		Mode:         info.Mode().Perm(),
	}, nil
}

// Restore puts a target's files back as they were when backupID was taken.
// Every stored file is verified against its hash before anything on disk
// changes.
func (m *Manager) Restore(target, backupID string) error {
	manifest, err := m.Get(target, backupID)
	if err != nil {
		return err
	}
	backupPath := m.backupPath(target, manifest.ID)

	contents := make([][]byte, len(manifest.Files))
	for i, f := range manifest.Files {
		data, err := afero.ReadFile(m.fs, filepath.Join(backupPath, f.RelPath))
		if err != nil {
			return errors.Wrapf(err, "reading backup file %s", f.RelPath)
		}
		if hashBytes(data) != f.SHA256Hash {
			return errors.Wrapf(ErrBackupCorrupted, "file %s hash mismatch", f.RelPath)
		}
		contents[i] = data
	}

	for _, p := range slices.Concat(manifest.Absent, manifest.Dirs) {
		if err := m.fs.RemoveAll(p); err != nil {
			return errors.Wrapf(err, "removing %s", p)
		}
	}

	for i, f := range manifest.Files {
		if err := m.fs.MkdirAll(filepath.Dir(f.OriginalPath), paths.DefaultDirPerm); err != nil {
			return errors.Wrapf(err, "creating directory for %s", f.OriginalPath)
		}
		if err := fileutil.AtomicWriteFile(m.fs, f.OriginalPath, contents[i], f.Mode); err != nil {
			return errors.Wrapf(err, "restoring %s", f.OriginalPath)
		}
	}
	for _, dir := range manifest.Dirs {
		if err := m.fs.MkdirAll(dir, paths.DefaultDirPerm); err != nil {
			return errors.Wrapf(err, "recreating %s", dir)
		}
	}

	return nil
}

// Latest returns the newest backup for target.
func (m *Manager) Latest(target string) (*Manifest, error) {
	manifests, err := m.List(target)
	if err != nil {
		return nil, err
	}
	return &manifests[0], nil
}

// List returns all backups for target, newest first.
func (m *Manager) List(target string) ([]Manifest, error) {
	if target == "" {
		return nil, ErrTargetRequired
	}

	entries, err := afero.ReadDir(m.fs, m.targetBackupDir(target))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(target, entry.Name())
		if err != nil {
			// Skip invalid backup directories
			continue
		}
		manifests = append(manifests, *manifest)
	}

	if len(manifests) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})

	return manifests, nil
}

// Prune removes backups beyond the newest keep for target and returns the
// ids removed.
func (m *Manager) Prune(target string, keep int) ([]string, error) {
	if target == "" {
		return nil, ErrTargetRequired
	}
	if keep < 0 {
		return nil, errors.New("keep must be non-negative")
	}

	manifests, err := m.List(target)
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil, nil
		}
		return nil, err
	}

	var removed []string
	for i := keep; i < len(manifests); i++ {
		if err := m.fs.RemoveAll(m.backupPath(target, manifests[i].ID)); err != nil {
			return removed, errors.Wrapf(err, "removing backup %s", manifests[i].ID)
		}
		removed = append(removed, manifests[i].ID)
	}
	return removed, nil
}

// Get returns the manifest for one backup.
func (m *Manager) Get(target, backupID string) (*Manifest, error) {
	if target == "" {
		return nil, ErrTargetRequired
	}
	if backupID == "" {
		return nil, errors.New("backup ID is required")
	}

	data, err := afero.ReadFile(m.fs, filepath.Join(m.backupPath(target, backupID), ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s not found", backupID)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}

	manifest.ID = backupID
	return &manifest, nil
}

func (m *Manager) backupPath(target, backupID string) string {
	return filepath.Join(m.targetBackupDir(target), backupID)
}

func (m *Manager) targetBackupDir(target string) string {
	return filepath.Join(m.rootDir, target)
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// generateRelPath maps an absolute path to its location inside a backup
// directory: leading separator dropped, colons removed.
func generateRelPath(absPath string) string {
	clean := filepath.Clean(absPath)
	clean = strings.TrimLeft(clean, string(filepath.Separator))
	return strings.ReplaceAll(clean, ":", "")
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, p := range in {
		p = filepath.Clean(p)
		if p == "." || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
