//go:build containersafety

package containers

// failSoft turns precondition violations into silent no-ops instead of
// returned errors.
const failSoft = true
