package claude

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
	"github.com/thoreinstein/teamforge/pkg/frontmatter"
)

// ErrInvalidID indicates an agent or skill id unusable as a file name.
var ErrInvalidID = errors.New("id is not a safe file name")

// CustomInstructionsHeading introduces appended per-agent instructions.
const CustomInstructionsHeading = "## Custom Instructions"

// agentHeader is the YAML header of .claude/agents/{id}.md.
type agentHeader struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags,omitempty"`
	Tools       string   `yaml:"tools,omitempty"`
	Model       string   `yaml:"model,omitempty"`
}

// DeployAgents writes one markdown document per agent.
func (p *Provider) DeployAgents(ps platform.PathSet, agents []team.Agent, _ platform.Options) (platform.Outcome, error) {
	files := make([]string, 0, len(agents))
	for _, a := range agents {
		if !team.ValidID(a.ID) {
			return platform.Outcome{}, errors.Wrapf(ErrInvalidID, "agent %q", a.ID)
		}

		data, err := FormatAgent(a)
		if err != nil {
			return platform.Outcome{}, errors.Wrapf(err, "formatting agent %q", a.ID)
		}

		path := filepath.Join(ps.AgentsDir, a.ID+".md")
		if err := p.files.Write(path, data); err != nil {
			return platform.Outcome{}, err
		}
		files = append(files, path)
	}
	return platform.Succeeded(len(agents), files...), nil
}

// FormatAgent renders an agent document: header, template, then the custom
// instructions section when present.
func FormatAgent(a team.Agent) ([]byte, error) {
	header := agentHeader{
		Name:        a.DisplayName(),
		Description: a.Description,
		Tags:        a.Tags,
		Tools:       a.Tools.String(),
		Model:       a.Model,
	}

	body := strings.TrimRight(a.Template, "\n")
	if ci := strings.TrimSpace(a.CustomInstructions); ci != "" {
		if body != "" {
			body += "\n\n"
		}
		body += CustomInstructionsHeading + "\n\n" + ci
	}

	return frontmatter.Format(header, body)
}
