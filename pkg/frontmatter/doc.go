// Package frontmatter reads and writes Markdown documents that start with a
// YAML header delimited by "---" lines.
//
// Generated agent and skill files are produced with [Format]; agent files
// referenced from a Team definition are read back with [Parse] or
// [ParseFile].
//
// # Basic Usage
//
//	type AgentMeta struct {
//		Name  string `yaml:"name"`
//		Model string `yaml:"model"`
//	}
//
//	meta, body, err := frontmatter.ParseFile[AgentMeta](fs, "agents/reviewer.md")
//	if errors.Is(err, frontmatter.ErrNoFrontmatter) {
//		// the whole file is the body
//	}
//
// # Errors
//
//   - [ErrNoFrontmatter]: the document lacks an opening or closing delimiter
//   - [ErrInvalidYAML]: the header exists but is not valid YAML
//
// Both LF and CRLF line endings are accepted; bodies are returned with LF.
package frontmatter
