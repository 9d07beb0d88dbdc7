// Package simulator is the catalog of known HDL simulator tools. Each
// tool entry carries just enough to assemble command lines: the binary
// name, the elaboration arguments, and the default post-simulation
// command template. The flags themselves are opaque strings owned by the
// simulator, not by this tool.
package simulator

import (
	"fmt"

	"github.com/vk/simgridgo/internal/config"
)

// Tool describes one simulator backend.
type Tool struct {
	// Name is the value the manifest's sim_tool attribute selects.
	Name string

	// Binary is the executable the harness invokes.
	Binary string

	// ElabArgs are the arguments that put the binary into elaboration
	// mode, placed between the analysis options and the top module name.
	ElabArgs []string

	// WaveFormat is the waveform dump format the default template selects.
	WaveFormat string

	// PostCmdTemplate is the default post-simulation command template,
	// with two `%s` placeholders for the top module name.
	PostCmdTemplate string
}

// Catalog holds the registered tools, preserving registration order.
type Catalog struct {
	tools map[string]*Tool
	order []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tools: make(map[string]*Tool)}
}

// Register adds a tool to the catalog. Registering the same name twice is
// a programmer error.
func (c *Catalog) Register(t *Tool) {
	if _, exists := c.tools[t.Name]; exists {
		panic(fmt.Sprintf("simulator: tool %q registered twice", t.Name))
	}
	c.tools[t.Name] = t
	c.order = append(c.order, t.Name)
}

// Lookup returns the tool registered under the given name.
func (c *Catalog) Lookup(name string) (*Tool, bool) {
	t, ok := c.tools[name]
	return t, ok
}

// Resolve is Lookup with the loader's error contract: an unknown name is
// reported as config.ErrUnknownTool together with the known names.
func (c *Catalog) Resolve(name string) (*Tool, error) {
	t, ok := c.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known tools: %v)", config.ErrUnknownTool, name, c.Names())
	}
	return t, nil
}

// Names returns the registered tool names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Default returns a catalog populated with the built-in tools.
func Default() *Catalog {
	c := NewCatalog()
	for _, t := range builtinTools {
		c.Register(t)
	}
	return c
}

// builtinTools is the definitive list of simulator backends compiled into
// the simgrid binary.
var builtinTools = []*Tool{
	{
		Name:            "nvc",
		Binary:          "nvc",
		ElabArgs:        []string{"-e"},
		WaveFormat:      "fst",
		PostCmdTemplate: "nvc -r --dump-arrays --exit-severity=error %s --wave=%s.fst --format=fst",
	},
	{
		Name:            "ghdl",
		Binary:          "ghdl",
		ElabArgs:        []string{"-e"},
		WaveFormat:      "ghw",
		PostCmdTemplate: "ghdl -r %s --wave=%s.ghw",
	},
	{
		Name:            "questa",
		Binary:          "vsim",
		ElabArgs:        []string{"-c"},
		WaveFormat:      "wlf",
		PostCmdTemplate: "vsim -c -do \"run -all; quit\" %s -wlf %s.wlf",
	},
	{
		Name:            "xsim",
		Binary:          "xsim",
		ElabArgs:        []string{"-R"},
		WaveFormat:      "wdb",
		PostCmdTemplate: "xsim -R %s --wdb %s.wdb",
	},
}
