package team

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/pkg/fileutil"
	"github.com/thoreinstein/teamforge/pkg/frontmatter"
)

// Format is a Team file encoding.
type Format string

// Supported Team file formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat indicates a Team file extension with no decoder.
var ErrUnknownFormat = errors.New("unknown team file format")

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
}

// Decode parses a Team document without resolving file references or
// validating it.
func Decode(data []byte, format Format) (*Team, error) {
	var t Team
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil {
			return nil, errors.Wrap(err, "parsing YAML")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&t); err != nil {
			return nil, errors.Wrap(err, "parsing JSON")
		}
	case FormatTOML:
		// TOML has no union types, so route through JSON to reuse the
		// ToolSet string-or-list decoding.
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "parsing TOML")
		}
		buf, err := json.Marshal(raw)
		if err != nil {
			return nil, errors.Wrap(err, "converting TOML")
		}
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&t); err != nil {
			return nil, errors.Wrap(err, "parsing TOML")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return &t, nil
}

// Load reads a Team file, resolves agent file references relative to it and
// validates the result.
func Load(fs afero.Fs, path string) (*Team, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fileutil.ReadFileWithLimit(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading team file %s", path)
	}

	t, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	if err := ResolveAgentFiles(fs, t, filepath.Dir(path)); err != nil {
		return nil, err
	}

	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// agentHeader is the header accepted in referenced agent documents.
type agentHeader struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Tools       ToolSet  `yaml:"tools"`
	Model       string   `yaml:"model"`
}

// ResolveAgentFiles fills agents that carry a File reference. Fields set in
// the Team file win over the referenced document's header.
func ResolveAgentFiles(fs afero.Fs, t *Team, baseDir string) error {
	for i := range t.Agents {
		a := &t.Agents[i]
		if a.File == "" {
			continue
		}

		path := a.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		header, body, err := frontmatter.ParseFile[agentHeader](fs, path)
		switch {
		case errors.Is(err, frontmatter.ErrNoFrontmatter):
			raw, readErr := fileutil.ReadFileWithLimit(fs, path)
			if readErr != nil {
				return errors.Wrapf(readErr, "agent %q: reading %s", a.ID, a.File)
			}
			header, body = &agentHeader{}, string(raw)
		case err != nil:
			return errors.Wrapf(err, "agent %q", a.ID)
		}

		if a.Name == "" {
			a.Name = header.Name
		}
		if a.Description == "" {
			a.Description = header.Description
		}
		if len(a.Tags) == 0 {
			a.Tags = header.Tags
		}
		if a.Tools.IsEmpty() {
			a.Tools = header.Tools
		}
		if a.Model == "" {
			a.Model = header.Model
		}
		if a.Template == "" {
			a.Template = strings.TrimLeft(body, "\n")
		}
	}
	return nil
}
