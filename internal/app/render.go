package app

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/simgridgo/internal/plan"
)

// renderPlan writes the invocation plan to the output writer in the
// requested format.
func (a *App) renderPlan(invocations []*plan.Invocation, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(invocations)
		if err != nil {
			return err
		}
		_, err = a.outW.Write(data)
		return err
	default:
		return a.renderText(invocations)
	}
}

// renderText writes a human-readable plan, one block per manifest.
func (a *App) renderText(invocations []*plan.Invocation) error {
	for _, inv := range invocations {
		fmt.Fprintf(a.outW, "%s (%s)\n", inv.TopModule, inv.SimTool)
		for _, scope := range inv.Modules {
			fmt.Fprintf(a.outW, "  modules[%s]: %s\n", scope.Name, strings.Join(scope.Paths, " "))
		}
		fmt.Fprintf(a.outW, "  elaborate: %s\n", strings.Join(inv.Elaborate, " "))
		fmt.Fprintf(a.outW, "  post_cmd:  %s\n", inv.PostCmd)
	}
	return nil
}
