package loading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/simgridgo/internal/app"
	"github.com/vk/simgridgo/internal/config"
	"github.com/vk/simgridgo/internal/testutil"
)

// The canonical manifest: an nvc testbench with local module scope and
// per-tool analysis and elaboration options.
const intDivHCL = `
	action     = "simulation"
	sim_tool   = "nvc"
	top_module = "int_div_tb"

	modules = { local = ["../"] }

	nvc_opt      = "--std=2008"
	nvc_elab_opt = "--no-collapse"
`

func TestLoading_IntDivManifest(t *testing.T) {
	// --- Act ---
	result := testutil.RunLoaderTest(t, map[string]string{
		"int_div_tb.hcl": intDivHCL,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Len(t, result.Workspace.Manifests, 1)

	m := result.Workspace.Manifests[0]
	assert.Equal(t, config.ActionSimulation, m.Action)
	assert.Equal(t, "nvc", m.SimTool)
	assert.Equal(t, "int_div_tb", m.TopModule)

	paths, ok := m.Modules.Lookup("local")
	require.True(t, ok)
	assert.Equal(t, []string{"../"}, paths)

	assert.Equal(t, "--std=2008", m.ToolOptions["nvc"].Opt)
	assert.Equal(t, "--no-collapse", m.ToolOptions["nvc"].ElabOpt)

	// The post command is derived from top_module alone: two substitutions
	// into the tool's default template.
	assert.Equal(t,
		"nvc -r --dump-arrays --exit-severity=error int_div_tb --wave=int_div_tb.fst --format=fst",
		m.SimPostCmd)
}

func TestLoading_ActionDefaultsToSimulation(t *testing.T) {
	result := testutil.RunLoaderTest(t, map[string]string{
		"tb.hcl": `
			sim_tool   = "nvc"
			top_module = "int_div_tb"
			modules    = { local = ["../"] }
		`,
	})

	require.NoError(t, result.Err)
	require.Len(t, result.Workspace.Manifests, 1)
	assert.Equal(t, config.ActionSimulation, result.Workspace.Manifests[0].Action)
}

func TestLoading_ScopeOrderPreserved(t *testing.T) {
	result := testutil.RunLoaderTest(t, map[string]string{
		"tb.hcl": `
			sim_tool   = "nvc"
			top_module = "int_div_tb"
			modules = {
				vendor = ["../../vendor/b", "../../vendor/a"]
				local  = ["../", "../common"]
			}
		`,
	})

	require.NoError(t, result.Err)
	modules := result.Workspace.Manifests[0].Modules
	require.Len(t, modules, 2)

	assert.Equal(t, "vendor", modules[0].Name)
	assert.Equal(t, []string{"../../vendor/b", "../../vendor/a"}, modules[0].Paths)
	assert.Equal(t, "local", modules[1].Name)
	assert.Equal(t, []string{"../", "../common"}, modules[1].Paths)
}

func TestLoading_PostCmdTemplateOverride(t *testing.T) {
	result := testutil.RunLoaderTest(t, map[string]string{
		"tb.hcl": `
			sim_tool     = "nvc"
			top_module   = "int_div_tb"
			modules      = { local = ["../"] }
			sim_post_cmd = "nvc -r %s --wave=%s.vcd --format=vcd"
		`,
	})

	require.NoError(t, result.Err)
	m := result.Workspace.Manifests[0]
	assert.Equal(t, "nvc -r %s --wave=%s.vcd --format=vcd", m.PostCmdTemplate)
	assert.Equal(t, "nvc -r int_div_tb --wave=int_div_tb.vcd --format=vcd", m.SimPostCmd)
}

func TestLoading_MultipleManifests(t *testing.T) {
	result := testutil.RunLoaderTest(t, map[string]string{
		"a/int_div_tb.hcl": intDivHCL,
		"b/uart_tx_tb.hcl": `
			sim_tool   = "ghdl"
			top_module = "uart_tx_tb"
			modules    = { local = ["../"] }
		`,
	})

	require.NoError(t, result.Err)
	require.Len(t, result.Workspace.Manifests, 2)

	// Discovery order is lexical over the manifest root.
	assert.Equal(t, "int_div_tb", result.Workspace.Manifests[0].TopModule)
	assert.Equal(t, "uart_tx_tb", result.Workspace.Manifests[1].TopModule)
	assert.Equal(t, "ghdl -r uart_tx_tb --wave=uart_tx_tb.ghw", result.Workspace.Manifests[1].SimPostCmd)
}

func TestLoading_SimToolOverrideFlag(t *testing.T) {
	result := testutil.RunLoaderTest(t, map[string]string{
		"tb.hcl": `
			sim_tool   = "nvc"
			top_module = "int_div_tb"
			modules    = { local = ["../"] }
		`,
	}, func(cfg *app.Config) {
		cfg.SimTool = "ghdl"
	})

	require.NoError(t, result.Err)
	m := result.Workspace.Manifests[0]
	assert.Equal(t, "ghdl", m.SimTool)
	assert.Equal(t, "ghdl -r int_div_tb --wave=int_div_tb.ghw", m.SimPostCmd)
}

func TestLoading_RoundTripThroughYAML(t *testing.T) {
	result := testutil.RunLoaderTest(t, map[string]string{
		"int_div_tb.hcl": intDivHCL,
	})
	require.NoError(t, result.Err)

	data, err := config.EncodeYAML(result.Workspace)
	require.NoError(t, err)

	reloaded, err := config.DecodeYAML(data)
	require.NoError(t, err)

	// Source is provenance only and does not survive serialization; blank
	// it before the field-for-field comparison.
	expected := *result.Workspace.Manifests[0]
	expected.Source = ""
	require.Len(t, reloaded.Manifests, 1)
	assert.Equal(t, &expected, reloaded.Manifests[0])
}
