// Package plan assembles simulator invocations from loaded manifests.
// The plan is the tool's final product: the harness that consumes it is
// responsible for actually running the simulator.
package plan

import (
	"context"
	"strings"

	"github.com/vk/simgridgo/internal/config"
	"github.com/vk/simgridgo/internal/ctxlog"
	"github.com/vk/simgridgo/internal/simulator"
)

// Invocation is the fully assembled command pair for one manifest: the
// elaboration command as an argv slice, and the post-simulation command
// as the single interpolated string the manifest contract defines.
type Invocation struct {
	TopModule  string           `yaml:"top_module"`
	SimTool    string           `yaml:"sim_tool"`
	WaveFormat string           `yaml:"wave_format"`
	Modules    config.ScopeList `yaml:"modules"`
	Elaborate  []string         `yaml:"elaborate"`
	PostCmd    string           `yaml:"post_cmd"`
}

// Build assembles the invocation plan for every manifest in the workspace,
// in workspace order.
func Build(ctx context.Context, ws *config.Workspace, catalog *simulator.Catalog) ([]*Invocation, error) {
	logger := ctxlog.FromContext(ctx)

	invocations := make([]*Invocation, 0, len(ws.Manifests))
	for _, m := range ws.Manifests {
		tool, err := catalog.Resolve(m.SimTool)
		if err != nil {
			return nil, err
		}
		inv := buildOne(m, tool)
		logger.Debug("Invocation assembled.", "top_module", inv.TopModule, "sim_tool", inv.SimTool)
		invocations = append(invocations, inv)
	}
	return invocations, nil
}

// buildOne assembles a single invocation. The elaboration argv is the
// tool binary, the manifest's analysis options, the tool's elaboration
// arguments, the manifest's elaboration options, and the top module name.
func buildOne(m *config.Manifest, tool *simulator.Tool) *Invocation {
	opts := m.Options()

	argv := []string{tool.Binary}
	argv = append(argv, strings.Fields(opts.Opt)...)
	argv = append(argv, tool.ElabArgs...)
	argv = append(argv, strings.Fields(opts.ElabOpt)...)
	argv = append(argv, m.TopModule)

	return &Invocation{
		TopModule:  m.TopModule,
		SimTool:    m.SimTool,
		WaveFormat: tool.WaveFormat,
		Modules:    m.Modules,
		Elaborate:  argv,
		PostCmd:    m.SimPostCmd,
	}
}
