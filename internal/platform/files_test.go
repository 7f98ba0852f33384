package platform_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/platform/platformtest"
)

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a\n"},
		{"a\n", "a\n"},
		{"a\n\n", "a\n\n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, platform.EnsureNewline(tt.in), "input %q", tt.in)
	}
}

func TestFiles_WriteText(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := platform.NewFiles(fs, nil)

	require.NoError(t, files.WriteText("/out/rules.md", "Rules"))

	data, err := afero.ReadFile(fs, "/out/rules.md")
	require.NoError(t, err)
	assert.Equal(t, "Rules\n", string(data))
}

func TestFiles_WriteDocs(t *testing.T) {
	spy := platformtest.NewSpyFs(nil)
	files := platform.NewFiles(spy, nil)

	written, err := files.WriteDocs("/out/memory", []platform.Doc{
		{Name: "brief.md", Text: "# Brief"},
		{Name: "tech.md", Text: " \n\t"},
		{Name: "active.md", Text: "now\n"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/out/memory/brief.md", "/out/memory/active.md"}, written)
	assert.Zero(t, spy.Writes("/out/memory/tech.md"))

	data, err := afero.ReadFile(spy, "/out/memory/brief.md")
	require.NoError(t, err)
	assert.Equal(t, "# Brief\n", string(data))

	isDir, err := afero.IsDir(spy, "/out/memory")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestFiles_WriteDocsStopsOnFailure(t *testing.T) {
	spy := platformtest.NewSpyFs(nil)
	boom := errors.New("disk full")
	spy.FailOn("/out/memory/tech.md", boom)

	written, err := platform.NewFiles(spy, nil).WriteDocs("/out/memory", []platform.Doc{
		{Name: "brief.md", Text: "b"},
		{Name: "tech.md", Text: "t"},
		{Name: "active.md", Text: "a"},
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"/out/memory/brief.md"}, written)
	assert.Zero(t, spy.Writes("/out/memory/active.md"))
}

func TestFiles_IsDirIsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/file", []byte("x"), 0o644))
	files := platform.NewFiles(fs, nil)

	assert.True(t, files.IsDir("/p"))
	assert.False(t, files.IsFile("/p"))
	assert.True(t, files.IsFile("/p/file"))
	assert.False(t, files.IsDir("/p/file"))
	assert.False(t, files.IsDir("/missing"))
	assert.False(t, files.IsFile("/missing"))
}
