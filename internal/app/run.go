package app

import (
	"context"
	"fmt"

	"github.com/vk/simgridgo/internal/ctxlog"
	"github.com/vk/simgridgo/internal/plan"
)

// Run executes the main application logic: assemble the invocation plan
// for every loaded manifest and write it to the output writer. Running the
// simulator itself is the harness's job, not ours.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.workspace.Manifests) == 0 {
		a.logger.Warn("No manifests found, nothing to plan.")
		return nil
	}

	invocations, err := plan.Build(ctx, a.workspace, a.catalog)
	if err != nil {
		return fmt.Errorf("failed to build invocation plan: %w", err)
	}
	a.logger.Debug("Invocation plan built.", "invocation_count", len(invocations))

	if err := a.renderPlan(invocations, appConfig.Output); err != nil {
		return fmt.Errorf("failed to render invocation plan: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
