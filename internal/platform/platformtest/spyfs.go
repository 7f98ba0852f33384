// Package platformtest provides filesystem and provider doubles for
// deploy tests.
package platformtest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// tempMarker identifies the temp files created by atomic writes.
const tempMarker = ".teamforge-atomic-"

// SpyFs wraps an afero.Fs and counts file writes per final path.
//
// An atomic write (temp file + rename) counts once, against the rename
// target. Direct writes through OpenFile or Create count against the
// opened path. Failures can be injected per path.
type SpyFs struct {
	afero.Fs

	mu      sync.Mutex
	writes  map[string]int
	removed []string
	fail    map[string]error
}

// NewSpyFs wraps base. A nil base means a fresh in-memory filesystem.
func NewSpyFs(base afero.Fs) *SpyFs {
	if base == nil {
		base = afero.NewMemMapFs()
	}
	return &SpyFs{
		Fs:     base,
		writes: make(map[string]int),
		fail:   make(map[string]error),
	}
}

// FailOn makes every write, mkdir or remove of path return err.
func (s *SpyFs) FailOn(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[filepath.Clean(path)] = err
}

func (s *SpyFs) failure(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fail[filepath.Clean(path)]
}

func (s *SpyFs) record(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes[filepath.Clean(path)]++
}

// Create implements afero.Fs.
func (s *SpyFs) Create(name string) (afero.File, error) {
	if err := s.failure(name); err != nil {
		return nil, err
	}
	if !isTemp(name) {
		s.record(name)
	}
	return s.Fs.Create(name)
}

// OpenFile implements afero.Fs.
func (s *SpyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_APPEND) != 0 {
		if err := s.failure(name); err != nil {
			return nil, err
		}
		if !isTemp(name) {
			s.record(name)
		}
	}
	return s.Fs.OpenFile(name, flag, perm)
}

// Rename implements afero.Fs.
func (s *SpyFs) Rename(oldname, newname string) error {
	if err := s.failure(newname); err != nil {
		return err
	}
	if err := s.Fs.Rename(oldname, newname); err != nil {
		return err
	}
	s.record(newname)
	return nil
}

// MkdirAll implements afero.Fs.
func (s *SpyFs) MkdirAll(path string, perm os.FileMode) error {
	if err := s.failure(path); err != nil {
		return err
	}
	return s.Fs.MkdirAll(path, perm)
}

// RemoveAll implements afero.Fs.
func (s *SpyFs) RemoveAll(path string) error {
	if err := s.failure(path); err != nil {
		return err
	}
	s.mu.Lock()
	s.removed = append(s.removed, filepath.Clean(path))
	s.mu.Unlock()
	return s.Fs.RemoveAll(path)
}

// Writes returns how many times path was written.
func (s *SpyFs) Writes(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[filepath.Clean(path)]
}

// TotalWrites returns the number of writes across all paths.
func (s *SpyFs) TotalWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.writes {
		n += c
	}
	return n
}

// Written returns every written path, sorted.
func (s *SpyFs) Written() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.writes))
	for p := range s.writes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// WrittenUnder returns written paths inside dir, sorted.
func (s *SpyFs) WrittenUnder(dir string) []string {
	prefix := filepath.Clean(dir) + string(filepath.Separator)
	var out []string
	for _, p := range s.Written() {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out
}

// Removed returns every RemoveAll target in call order.
func (s *SpyFs) Removed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.removed))
	copy(out, s.removed)
	return out
}

// Reset forgets recorded writes and removals but keeps injected failures.
func (s *SpyFs) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = make(map[string]int)
	s.removed = nil
}

func isTemp(name string) bool {
	return strings.Contains(filepath.Base(name), tempMarker)
}
