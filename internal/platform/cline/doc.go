// Package cline deploys Teams for the Cline VS Code extension.
//
// The constitution becomes {project}/.clinerules, or a document inside the
// {project}/.clinerules/ folder when Options.UseRulesFolder is set. MCP
// servers go to {project}/.vscode/cline_mcp_settings.json and the memory
// bank to {project}/memory-bank/. Cline has no agents, skills, hooks or
// settings document.
package cline
