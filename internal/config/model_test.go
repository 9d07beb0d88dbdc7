package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeList_Lookup(t *testing.T) {
	scopes := ScopeList{
		{Name: "local", Paths: []string{"../"}},
		{Name: "vendor", Paths: []string{"../../vendor"}},
	}

	paths, ok := scopes.Lookup("local")
	require.True(t, ok)
	assert.Equal(t, []string{"../"}, paths)

	_, ok = scopes.Lookup("missing")
	assert.False(t, ok)
}

func TestWorkspace_Lookup(t *testing.T) {
	ws := &Workspace{
		Manifests: []*Manifest{
			{TopModule: "int_div_tb"},
			{TopModule: "uart_tx_tb"},
		},
	}

	m, ok := ws.Lookup("uart_tx_tb")
	require.True(t, ok)
	assert.Equal(t, "uart_tx_tb", m.TopModule)

	_, ok = ws.Lookup("missing_tb")
	assert.False(t, ok)
}

func TestManifest_Options(t *testing.T) {
	m := &Manifest{
		SimTool: "nvc",
		ToolOptions: map[string]ToolOptions{
			"nvc":  {Opt: "--std=2008", ElabOpt: "--no-collapse"},
			"ghdl": {Opt: "--std=08"},
		},
	}

	assert.Equal(t, ToolOptions{Opt: "--std=2008", ElabOpt: "--no-collapse"}, m.Options())

	// Options for a tool the manifest carries no attributes for are empty.
	m.SimTool = "xsim"
	assert.Zero(t, m.Options())
}
