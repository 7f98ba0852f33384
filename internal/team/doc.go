// Package team defines the platform-neutral Team model and loads it from
// YAML, JSON or TOML files.
//
// A Team file looks like:
//
//	id: backend
//	name: Backend Team
//	constitution: |
//	  Prefer small, reviewed changes.
//	agents:
//	  - id: reviewer
//	    name: Code Reviewer
//	    tools: Read, Grep
//	    template: Review every diff for correctness.
//	  - id: architect
//	    file: agents/architect.md
//	mcpServers:
//	  - id: filesystem
//	    type: stdio
//	    command: npx
//	    args: ["-y", "@modelcontextprotocol/server-filesystem"]
//
// Agents with a file reference are completed from that markdown document's
// YAML header and body. [Load] validates the result with [Validate].
package team
