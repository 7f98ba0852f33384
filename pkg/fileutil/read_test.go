package fileutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/teamforge/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"small file", 100, false},
		{"exact limit", MaxFileSize, false},
		{"too large", MaxFileSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := "/data/" + tt.name
			require.NoError(t, afero.WriteFile(fs, path, make([]byte, tt.size), 0o644))

			_, err := ReadFileWithLimit(fs, path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadFileWithLimit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrFileTooLarge) {
				t.Errorf("expected ErrFileTooLarge, got %v", err)
			}
		})
	}
}

func TestReadJSONDocument(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    map[string]any
		wantErr error
	}{
		{name: "missing file", content: nil, want: map[string]any{}},
		{name: "empty file", content: ptr("  \n"), want: map[string]any{}},
		{name: "null", content: ptr("null"), want: map[string]any{}},
		{
			name:    "plain object",
			content: ptr(`{"theme": "dark", "n": 2}`),
			want:    map[string]any{"theme": "dark", "n": float64(2)},
		},
		{
			name: "comments and trailing comma",
			content: ptr(`{
  // editor theme
  "theme": "dark", /* block */
  "tools": ["a", "b",],
}`),
			want: map[string]any{"theme": "dark", "tools": []any{"a", "b"}},
		},
		{name: "array at top level", content: ptr(`[1, 2]`), wantErr: ErrNotObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := "/home/dev/.gemini/settings.json"
			if tt.content != nil {
				require.NoError(t, afero.WriteFile(fs, path, []byte(*tt.content), 0o644))
			}

			got, err := ReadJSONDocument(fs, path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadJSONDocument_Malformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/x.json", []byte(`{"a": `), 0o644))

	_, err := ReadJSONDocument(fs, "/x.json")
	assert.Error(t, err)
}

func ptr(s string) *string { return &s }
