package cline

import (
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// Memory bank document names, following Cline's memory bank convention.
const (
	ProjectBriefFile  = "projectbrief.md"
	TechContextFile   = "techContext.md"
	ActiveContextFile = "activeContext.md"
)

// DeployMemory writes the non-blank memory documents to {project}/memory-bank.
func (p *Provider) DeployMemory(ps platform.PathSet, bank team.MemoryBank, _ platform.Options) (platform.Outcome, error) {
	written, err := p.files.WriteDocs(ps.MemoryDir, []platform.Doc{
		{Name: ProjectBriefFile, Text: bank.Brief},
		{Name: TechContextFile, Text: bank.Tech},
		{Name: ActiveContextFile, Text: bank.Active},
	})
	if err != nil {
		return platform.Outcome{}, err
	}
	return platform.Succeeded(len(written), written...), nil
}
