package frontmatter

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SkillMeta is the header of a skill document.
type SkillMeta struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tools       []string `yaml:"tools"`
}

// AgentMeta is the header of an agent document referenced from a Team file.
type AgentMeta struct {
	Name   string   `yaml:"name"`
	Tags   []string `yaml:"tags"`
	Tools  string   `yaml:"tools"`
	Model  string   `yaml:"model"`
	Hidden bool     `yaml:"hidden"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta *SkillMeta
		wantBody string
		wantErr  error
	}{
		{
			name:     "header and body",
			input:    "---\nname: release\ndescription: Cut a release\ntools:\n  - Bash\n  - Read\n---\n\n# Release\n",
			wantMeta: &SkillMeta{Name: "release", Description: "Cut a release", Tools: []string{"Bash", "Read"}},
			wantBody: "\n# Release\n",
		},
		{
			name:     "empty header",
			input:    "---\n---\n\nBody.\n",
			wantMeta: &SkillMeta{},
			wantBody: "\nBody.\n",
		},
		{
			name:     "header only",
			input:    "---\nname: bare\n---\n",
			wantMeta: &SkillMeta{Name: "bare"},
		},
		{
			name:     "closing delimiter without newline",
			input:    "---\nname: minimal\n---",
			wantMeta: &SkillMeta{Name: "minimal"},
		},
		{
			name:     "closing delimiter with trailing spaces",
			input:    "---\nname: padded\n---  \nbody\n",
			wantMeta: &SkillMeta{Name: "padded"},
			wantBody: "body\n",
		},
		{
			name:     "CRLF line endings",
			input:    "---\r\nname: windows\r\n---\r\n\r\nBody.\r\n",
			wantMeta: &SkillMeta{Name: "windows"},
			wantBody: "\nBody.\n",
		},
		{
			name:     "block scalar description",
			input:    "---\nname: multi\ndescription: |\n  line one\n  line two\n---\nbody\n",
			wantMeta: &SkillMeta{Name: "multi", Description: "line one\nline two\n"},
			wantBody: "body\n",
		},
		{name: "plain markdown", input: "# Title\n\ntext", wantErr: ErrNoFrontmatter},
		{name: "two-dash delimiter", input: "--\nname: x\n--\n", wantErr: ErrNoFrontmatter},
		{name: "empty input", input: "", wantErr: ErrNoFrontmatter},
		{name: "unclosed header", input: "---\nname: unclosed\n", wantErr: ErrNoFrontmatter},
		{name: "invalid YAML", input: "---\nname: [broken\n---\nbody\n", wantErr: ErrInvalidYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := Parse[SkillMeta](strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParse_AgentMeta(t *testing.T) {
	input := `---
name: security-auditor
tags:
  - security
  - review
tools: Read, Grep
model: opus
hidden: true
---

You audit code for vulnerabilities.
`
	meta, body, err := Parse[AgentMeta](strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meta.Name != "security-auditor" {
		t.Errorf("name: got %q, want %q", meta.Name, "security-auditor")
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "security" || meta.Tags[1] != "review" {
		t.Errorf("tags: got %v, want [security review]", meta.Tags)
	}
	if meta.Tools != "Read, Grep" {
		t.Errorf("tools: got %q, want %q", meta.Tools, "Read, Grep")
	}
	if meta.Model != "opus" || !meta.Hidden {
		t.Errorf("model/hidden: got %q/%v", meta.Model, meta.Hidden)
	}

	wantBody := "\nYou audit code for vulnerabilities.\n"
	if body != wantBody {
		t.Errorf("body: got %q, want %q", body, wantBody)
	}
}

func TestParseFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		path := "/team/agents/reviewer.md"

		content := `---
name: file-skill
description: Parsed from file
tools:
  - fileutil
---

File body content.
`
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		meta, body, err := ParseFile[SkillMeta](fs, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if meta.Name != "file-skill" {
			t.Errorf("name: got %q, want %q", meta.Name, "file-skill")
		}
		if meta.Description != "Parsed from file" {
			t.Errorf("description: got %q, want %q", meta.Description, "Parsed from file")
		}
		if len(meta.Tools) != 1 || meta.Tools[0] != "fileutil" {
			t.Errorf("tools: got %v, want [fileutil]", meta.Tools)
		}

		wantBody := "\nFile body content.\n"
		if body != wantBody {
			t.Errorf("body: got %q, want %q", body, wantBody)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, _, err := ParseFile[SkillMeta](afero.NewMemMapFs(), "/nonexistent/path/to/file.md")
		if err == nil {
			t.Fatal("expected error for nonexistent file, got nil")
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("file without frontmatter", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		path := "/team/nofm.md"

		if err := afero.WriteFile(fs, path, []byte("# No Frontmatter\n\nJust content."), 0o644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		_, _, err := ParseFile[SkillMeta](fs, path)
		if err == nil {
			t.Fatal("expected error for file without frontmatter")
		}
		if !errors.Is(err, ErrNoFrontmatter) {
			t.Errorf("expected ErrNoFrontmatter, got %v", err)
		}
	})
}

func TestFormat(t *testing.T) {
	type header struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description,omitempty"`
		Tags        []string `yaml:"tags,omitempty"`
	}

	tests := []struct {
		name   string
		matter header
		body   string
		want   string
	}{
		{
			name:   "header and body",
			matter: header{Name: "reviewer", Tags: []string{"qa", "go"}},
			body:   "Review the diff.",
			want:   "---\nname: reviewer\ntags:\n  - qa\n  - go\n---\n\nReview the diff.\n",
		},
		{
			name:   "empty body",
			matter: header{Name: "bare", Description: "only a header"},
			want:   "---\nname: bare\ndescription: only a header\n---\n",
		},
		{
			name:   "body keeps trailing newline",
			matter: header{Name: "x"},
			body:   "line\n",
			want:   "---\nname: x\n---\n\nline\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.matter, tt.body)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	in := SkillMeta{Name: "round", Description: "trip", Tools: []string{"Read"}}
	data, err := Format(in, "Body text.")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	meta, body, err := Parse[SkillMeta](strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if meta.Name != in.Name || meta.Description != in.Description {
		t.Errorf("meta = %+v, want %+v", meta, in)
	}
	if body != "\nBody text.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestErrorsAreCorrectlySentinel(t *testing.T) {
	t.Run("ErrNoFrontmatter is identifiable", func(t *testing.T) {
		_, _, err := Parse[SkillMeta](strings.NewReader("no frontmatter"))
		if !errors.Is(err, ErrNoFrontmatter) {
			t.Errorf("expected errors.Is(err, ErrNoFrontmatter) to be true, got false for: %v", err)
		}
	})

	t.Run("ErrInvalidYAML is identifiable", func(t *testing.T) {
		input := "---\ninvalid: [broken\n---\nbody"
		_, _, err := Parse[SkillMeta](strings.NewReader(input))
		if !errors.Is(err, ErrInvalidYAML) {
			t.Errorf("expected errors.Is(err, ErrInvalidYAML) to be true, got false for: %v", err)
		}
	})
}
