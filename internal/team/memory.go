package team

import (
	"fmt"
	"strings"
)

// MemoryFor returns the bank a deploy should write. A Team's own bank wins;
// otherwise seed produces a starter bank from the Team's metadata.
func (t *Team) MemoryFor(seed bool) (MemoryBank, bool) {
	if t.HasMemory() {
		return *t.Memory, true
	}
	if seed {
		return SeedMemoryBank(t), true
	}
	return MemoryBank{}, false
}

// SeedMemoryBank builds starter documents from the Team's name,
// description, agents and MCP servers.
func SeedMemoryBank(t *Team) MemoryBank {
	var brief strings.Builder
	brief.WriteString("# Project Brief\n\n")
	fmt.Fprintf(&brief, "## %s\n\n", nonEmpty(t.Name, t.ID, "Team"))
	if t.Description != "" {
		brief.WriteString(t.Description)
		brief.WriteString("\n")
	} else {
		brief.WriteString("Describe the project's goals and scope here.\n")
	}

	var tech strings.Builder
	tech.WriteString("# Tech Context\n\n")
	if len(t.MCPServers) > 0 {
		tech.WriteString("## MCP Servers\n\n")
		for _, s := range t.MCPServers {
			fmt.Fprintf(&tech, "- %s (%s)\n", s.ID, s.Transport())
		}
	} else {
		tech.WriteString("Record languages, frameworks and tooling here.\n")
	}

	var active strings.Builder
	active.WriteString("# Active Context\n\n")
	if len(t.Agents) > 0 {
		active.WriteString("## Team\n\n")
		for _, a := range t.Agents {
			if a.Description != "" {
				fmt.Fprintf(&active, "- **%s**: %s\n", a.DisplayName(), a.Description)
			} else {
				fmt.Fprintf(&active, "- **%s**\n", a.DisplayName())
			}
		}
	} else {
		active.WriteString("Track current focus and next steps here.\n")
	}

	return MemoryBank{
		Brief:  brief.String(),
		Tech:   tech.String(),
		Active: active.String(),
	}
}

func nonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
