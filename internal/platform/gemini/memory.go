package gemini

import (
	"github.com/thoreinstein/teamforge/internal/platform"
	"github.com/thoreinstein/teamforge/internal/team"
)

// Memory bank document names.
const (
	BriefFile  = "brief.md"
	TechFile   = "tech.md"
	ActiveFile = "active.md"
)

// DeployMemory writes the non-blank memory documents under
// .gemini/memory-bank.
func (p *Provider) DeployMemory(ps platform.PathSet, bank team.MemoryBank, _ platform.Options) (platform.Outcome, error) {
	written, err := p.files.WriteDocs(ps.MemoryDir, []platform.Doc{
		{Name: BriefFile, Text: bank.Brief},
		{Name: TechFile, Text: bank.Tech},
		{Name: ActiveFile, Text: bank.Active},
	})
	if err != nil {
		return platform.Outcome{}, err
	}
	return platform.Succeeded(len(written), written...), nil
}
