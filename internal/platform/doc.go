// Package platform defines how a Team is deployed to a target AI coding
// assistant.
//
// A [Provider] translates each Team section into one target's files. Every
// provider declares static [Capabilities]; [Guard] turns calls for
// unsupported features into "Not supported" skips so implementations only
// handle what they can represent. [Deploy] is the default sequence:
//
//	paths := provider.OutputPaths(projectRoot, homeDir)
//	provider.PrepareDirectories(paths, opts)
//	constitution, agents, skills, hooks, mcpServers, settings, memory
//
// Only non-empty Team sections are attempted. The first failing step stops
// the rest and marks the [Result] failed; files already written stay on
// disk. Skipped sections with content add a warning to the Result.
//
// [Registry] maps target ids to providers in registration order, and
// [Detect] reports whether a target already has files in a project.
package platform
