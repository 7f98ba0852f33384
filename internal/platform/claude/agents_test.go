package claude_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/platform/claude"
	"github.com/thoreinstein/teamforge/internal/team"
)

func TestFormatAgent(t *testing.T) {
	tests := []struct {
		name  string
		agent team.Agent
		want  string
	}{
		{
			name: "minimal",
			agent: team.Agent{
				ID:          "architect",
				Name:        "Architect",
				Description: "Designs systems",
				Template:    "You design systems.\n",
			},
			want: "---\nname: Architect\ndescription: Designs systems\n---\n\nYou design systems.\n",
		},
		{
			name: "tags tools and model",
			agent: team.Agent{
				ID:          "reviewer",
				Name:        "Reviewer",
				Description: "Reviews code",
				Tags:        []string{"review", "go"},
				Tools:       team.Tools("Read", "Grep"),
				Model:       "sonnet",
				Template:    "Review carefully.",
			},
			want: "---\nname: Reviewer\ndescription: Reviews code\ntags:\n  - review\n  - go\ntools: Read, Grep\nmodel: sonnet\n---\n\nReview carefully.\n",
		},
		{
			name: "wildcard tools",
			agent: team.Agent{
				ID:       "ops",
				Name:     "Ops",
				Tools:    team.AllTools(),
				Template: "Operate.",
			},
			want: "---\nname: Ops\ndescription: \"\"\ntools: '*'\n---\n\nOperate.\n",
		},
		{
			name: "custom instructions appended",
			agent: team.Agent{
				ID:                 "writer",
				Name:               "Writer",
				Description:        "Writes docs",
				Template:           "Write docs.\n\n",
				CustomInstructions: "  Prefer short sentences.  ",
			},
			want: "---\nname: Writer\ndescription: Writes docs\n---\n\nWrite docs.\n\n## Custom Instructions\n\nPrefer short sentences.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := claude.FormatAgent(tt.agent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDeployAgents_RejectsUnsafeID(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := claude.New(fs)
	ps := p.OutputPaths(projectRoot, homeDir)

	_, err := p.DeployAgents(ps, []team.Agent{{ID: "../escape"}}, platform.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, claude.ErrInvalidID)
}

func TestFormatSkill(t *testing.T) {
	tests := []struct {
		name  string
		skill team.Skill
		want  string
	}{
		{
			name:  "with header",
			skill: team.Skill{ID: "lint", Name: "lint", Description: "Run linters", Content: "Run golangci-lint."},
			want:  "---\nname: lint\ndescription: Run linters\n---\n\nRun golangci-lint.\n",
		},
		{
			name:  "no header without name or description",
			skill: team.Skill{ID: "fmt", Instructions: "Run gofmt."},
			want:  "Run gofmt.\n",
		},
		{
			name:  "content wins over instructions",
			skill: team.Skill{ID: "x", Description: "d", Content: "content", Instructions: "instructions"},
			want:  "---\ndescription: d\n---\n\ncontent\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := claude.FormatSkill(tt.skill)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
