// Package claude deploys Teams into Claude Code's project layout.
//
//	{project}/CLAUDE.md                     constitution (CLAUDE.local.md with UseLocal)
//	{project}/.mcp.json                     {"mcpServers": {id: {...}}}
//	{project}/.claude/agents/{id}.md        YAML header + template
//	{project}/.claude/skills/{id}/SKILL.md  optional header + body
//	{project}/.claude/settings.json         version, hooks, permissions, env
//
// Hooks are not separate files: DeployHooks reports them as merged and
// DeploySettings groups them by event. Both JSON documents are updated in
// place, so keys written by Claude Code itself are preserved.
package claude
