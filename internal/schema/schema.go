package schema

import "github.com/hashicorp/hcl/v2"

// ManifestFile mirrors the attribute layout of a manifest .hcl file. All
// attributes are decoded as optional so that required-field checks happen
// in the loader, where absence maps to the manifest error taxonomy rather
// than a raw HCL diagnostic.
type ManifestFile struct {
	Action    string `hcl:"action,optional"`
	SimTool   string `hcl:"sim_tool,optional"`
	TopModule string `hcl:"top_module,optional"`

	// Modules is kept as a raw expression so the loader can preserve the
	// source order of the scope mapping, which evaluation to a map would
	// destroy.
	Modules hcl.Expression `hcl:"modules,optional"`

	// SimPostCmd, when present, overrides the tool catalog's default post
	// command template.
	SimPostCmd string `hcl:"sim_post_cmd,optional"`

	// Remain collects the per-tool option attributes (`<tool>_opt`,
	// `<tool>_elab_opt`), whose names are not known statically.
	Remain hcl.Body `hcl:",remain"`
}
