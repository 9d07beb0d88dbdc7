package config

// Action identifies what a manifest asks the invoking harness to do.
type Action string

// ActionSimulation is the only action currently defined.
const ActionSimulation Action = "simulation"

// Scope is one named entry of the modules mapping: a scope name plus an
// ordered list of relative module search paths.
type Scope struct {
	Name  string
	Paths []string
}

// ScopeList preserves the source order of the modules mapping. The scope
// named "local" must always be present.
type ScopeList []Scope

// LocalScope is the scope name every manifest is required to define.
const LocalScope = "local"

// Lookup returns the path list for the named scope.
func (l ScopeList) Lookup(name string) ([]string, bool) {
	for _, s := range l {
		if s.Name == name {
			return s.Paths, true
		}
	}
	return nil, false
}

// ToolOptions carries the opaque flag strings for one simulator tool.
// The strings are owned by the simulator and passed through verbatim.
type ToolOptions struct {
	Opt     string `yaml:"opt,omitempty"`
	ElabOpt string `yaml:"elab_opt,omitempty"`
}

// Manifest is the format-agnostic representation of a single simulation
// manifest. A Loader constructs it once; it is never mutated afterwards.
type Manifest struct {
	Action    Action    `yaml:"action"`
	SimTool   string    `yaml:"sim_tool"`
	TopModule string    `yaml:"top_module"`
	Modules   ScopeList `yaml:"modules"`

	// ToolOptions maps a simulator tool name to its flag strings, collected
	// from `<tool>_opt` and `<tool>_elab_opt` attributes.
	ToolOptions map[string]ToolOptions `yaml:"tool_options,omitempty"`

	// PostCmdTemplate is the template SimPostCmd was rendered from, either
	// the manifest's own sim_post_cmd attribute or the tool catalog default.
	PostCmdTemplate string `yaml:"sim_post_cmd_template"`

	// SimPostCmd is the fully interpolated post-simulation command. It is
	// derived deterministically from TopModule alone via two textual
	// substitutions into PostCmdTemplate.
	SimPostCmd string `yaml:"sim_post_cmd"`

	// Source is the file the manifest was loaded from. Provenance only;
	// it does not survive serialization.
	Source string `yaml:"-"`
}

// Options returns the flag strings for the manifest's selected tool.
func (m *Manifest) Options() ToolOptions {
	return m.ToolOptions[m.SimTool]
}

// Workspace aggregates every manifest discovered under the configured
// paths, in discovery order.
type Workspace struct {
	Manifests []*Manifest `yaml:"manifests"`
}

// Lookup returns the manifest for the given top module.
func (w *Workspace) Lookup(topModule string) (*Manifest, bool) {
	for _, m := range w.Manifests {
		if m.TopModule == topModule {
			return m, true
		}
	}
	return nil, false
}
