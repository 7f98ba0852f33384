package claude

import (
	"path/filepath"

	"github.com/thoreinstein/teamforge/internal/errors"
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
	"github.com/thoreinstein/teamforge/pkg/frontmatter"
)

type skillHeader struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// DeploySkills writes .claude/skills/{id}/SKILL.md for each skill.
func (p *Provider) DeploySkills(ps platform.PathSet, skills []team.Skill, _ platform.Options) (platform.Outcome, error) {
	files := make([]string, 0, len(skills))
	for _, s := range skills {
		if !team.ValidID(s.ID) {
			return platform.Outcome{}, errors.Wrapf(ErrInvalidID, "skill %q", s.ID)
		}

		dir := filepath.Join(ps.SkillsDir, s.ID)
		if err := p.files.MkdirAll(dir); err != nil {
			return platform.Outcome{}, err
		}

		data, err := FormatSkill(s)
		if err != nil {
			return platform.Outcome{}, errors.Wrapf(err, "formatting skill %q", s.ID)
		}

		path := filepath.Join(dir, SkillManifest)
		if err := p.files.Write(path, data); err != nil {
			return platform.Outcome{}, err
		}
		files = append(files, path)
	}
	return platform.Succeeded(len(skills), files...), nil
}

// FormatSkill renders a skill manifest. The header appears only when the
// skill has a name or description.
func FormatSkill(s team.Skill) ([]byte, error) {
	body := s.Body()
	if s.Name == "" && s.Description == "" {
		return []byte(platform.EnsureNewline(body)), nil
	}
	return frontmatter.Format(skillHeader{Name: s.Name, Description: s.Description}, body)
}
