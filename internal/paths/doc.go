// Package paths resolves the directories and files teamforge reads and writes.
//
// It knows two kinds of locations: the application's own directories (config
// file, backups), resolved through github.com/adrg/xdg, and the per-target
// layout roots of each supported AI coding assistant.
//
//	| Target | Project root  | Home dir   | Instructions |
//	|--------|---------------|------------|--------------|
//	| claude | .claude/      | ~/.claude/ | CLAUDE.md    |
//	| gemini | .gemini/      | ~/.gemini/ | GEMINI.md    |
//	| cline  | .clinerules/  | (none)     | .clinerules  |
//
// Functions here never touch the filesystem; callers decide when to create
// anything.
package paths
