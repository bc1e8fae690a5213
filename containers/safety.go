//go:build !containersafety

package containers

// failSoft turns precondition violations into silent no-ops instead of
// returned errors. It is flipped by the containersafety build tag; the tag
// changes behavior, never types.
const failSoft = false
