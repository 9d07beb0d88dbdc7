package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads every manifest found under the given paths, translates
	// them into the format-agnostic model, and returns the aggregated
	// workspace. Loading is all-or-nothing: any malformed manifest fails
	// the whole operation.
	Load(ctx context.Context, paths ...string) (*Workspace, error)
}
