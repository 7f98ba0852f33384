package fileutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/thoreinstein/teamforge/internal/errors"
)

// MaxFileSize is the maximum file size we'll read (1MB).
// This prevents memory exhaustion from maliciously large files.
const MaxFileSize = 1024 * 1024 // 1MB

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ErrNotObject indicates a JSON document whose top level is not an object.
var ErrNotObject = errors.New("JSON document is not an object")

// ReadFileWithLimit reads a file up to MaxFileSize.
// It returns an error if the file is larger than the limit.
func ReadFileWithLimit(fs afero.Fs, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// ReadJSONDocument loads a JSON object for read-merge-write updates.
//
// A missing or empty file yields an empty map. Comments and trailing commas
// are tolerated; they are not preserved on the next write.
func ReadJSONDocument(fs afero.Fs, path string) (map[string]any, error) {
	data, err := ReadFileWithLimit(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	clean := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(clean)) == 0 {
		return map[string]any{}, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(clean, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errors.Wrapf(ErrNotObject, "parsing %s", path)
		}
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if doc == nil {
		// literal null
		doc = map[string]any{}
	}
	return doc, nil
}
