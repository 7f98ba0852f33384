package platform

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/logging"
	"github.com/thoreinstein/teamforge/pkg/fileutil"
)

// Permissions for generated directories and files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Files is the write side shared by the concrete providers: atomic writes,
// read-merge-write of JSON documents and directory management, each logged
// at debug level.
type Files struct {
	Fs     afero.Fs
	Logger *slog.Logger
}

// NewFiles returns a Files over fs. A nil logger discards output.
func NewFiles(fs afero.Fs, logger *slog.Logger) Files {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return Files{Fs: fs, Logger: logger}
}

// Write atomically replaces path with data.
func (f Files) Write(path string, data []byte) error {
	if err := fileutil.AtomicWriteFile(f.Fs, path, data, FilePerm); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	f.Logger.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}

// WriteText atomically replaces path with text, newline terminated.
func (f Files) WriteText(path, text string) error {
	return f.Write(path, []byte(EnsureNewline(text)))
}

// Doc is a named text document written by WriteDocs.
type Doc struct {
	Name string
	Text string
}

// WriteDocs creates dir and writes every non-blank doc into it. It returns
// the written paths in docs order.
func (f Files) WriteDocs(dir string, docs []Doc) ([]string, error) {
	if err := f.MkdirAll(dir); err != nil {
		return nil, err
	}

	var written []string
	for _, d := range docs {
		if strings.TrimSpace(d.Text) == "" {
			continue
		}
		path := filepath.Join(dir, d.Name)
		if err := f.WriteText(path, d.Text); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// WriteJSON atomically replaces path with v as indented JSON.
func (f Files) WriteJSON(path string, v any) error {
	data, err := fileutil.MarshalJSON(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	return f.Write(path, data)
}

// MergeJSON loads the JSON object at path (missing means empty), lets
// update change it, and writes it back. Keys update leaves alone survive.
func (f Files) MergeJSON(path string, update func(doc map[string]any)) error {
	doc, err := fileutil.ReadJSONDocument(f.Fs, path)
	if err != nil {
		return err
	}
	update(doc)
	return f.WriteJSON(path, doc)
}

// MkdirAll creates dir and its parents.
func (f Files) MkdirAll(dir string) error {
	if err := f.Fs.MkdirAll(dir, DirPerm); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	return nil
}

// RemoveAll deletes path recursively. A missing path is not an error.
func (f Files) RemoveAll(path string) error {
	if err := f.Fs.RemoveAll(path); err != nil {
		return errors.Wrapf(err, "removing %s", path)
	}
	f.Logger.Debug("removed", "path", path)
	return nil
}

// IsDir reports whether path exists and is a directory.
func (f Files) IsDir(path string) bool {
	info, err := f.Fs.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is not a directory.
func (f Files) IsFile(path string) bool {
	info, err := f.Fs.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureNewline returns s with a trailing newline. Empty input stays empty.
func EnsureNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
