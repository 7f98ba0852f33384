// Package gemini deploys Teams for Gemini CLI.
//
// Layout:
//
//	{project}/GEMINI.md                     constitution
//	{home}/.gemini/GEMINI.md                constitution with DeployGlobal
//	{home}/.gemini/settings.json            mcpServers, coreTools, excludeTools
//	{project}/.gemini/memory-bank/*.md      brief, tech, active
//
// The settings document is shared by every project on the machine and may
// contain comments; it is always read, merged and written back so unrelated
// keys survive. Agents, skills and hooks are not supported.
package gemini
