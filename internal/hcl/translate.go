// This file translates a decoded schema.ManifestFile into the
// format-agnostic config.Manifest, enforcing the manifest error taxonomy
// (missing fields, unknown action/tool, malformed template) along the way.

package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/simgridgo/internal/config"
	"github.com/vk/simgridgo/internal/ctxlog"
	"github.com/vk/simgridgo/internal/postcmd"
	"github.com/vk/simgridgo/internal/schema"
)

// translateManifest converts the HCL-specific manifest schema into the
// agnostic model. It validates required fields, resolves the simulator
// selection against the catalog, and renders the post command.
func (l *Loader) translateManifest(ctx context.Context, file string, raw *schema.ManifestFile) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx).With("manifest", file)
	logger.Debug("Translating HCL manifest to internal config model.")

	if raw.TopModule == "" {
		return nil, &config.FieldError{Field: "top_module", Source: file}
	}
	if raw.SimTool == "" {
		return nil, &config.FieldError{Field: "sim_tool", Source: file}
	}
	if raw.Modules == nil {
		return nil, &config.FieldError{Field: "modules", Source: file}
	}

	action := config.Action(raw.Action)
	if raw.Action == "" {
		action = config.ActionSimulation
	}
	if action != config.ActionSimulation {
		return nil, fmt.Errorf("%w: %q in %s", config.ErrUnknownAction, raw.Action, file)
	}

	simTool := raw.SimTool
	if l.toolOverride != "" {
		logger.Debug("Overriding manifest simulator selection.", "sim_tool", l.toolOverride)
		simTool = l.toolOverride
	}
	tool, err := l.catalog.Resolve(simTool)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	scopes, err := translateScopes(raw.Modules)
	if err != nil {
		return nil, fmt.Errorf("%s: modules: %w", file, err)
	}
	if _, ok := scopes.Lookup(config.LocalScope); !ok {
		return nil, &config.FieldError{Field: "modules." + config.LocalScope, Source: file}
	}

	toolOptions, err := translateToolOptions(raw.Remain)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	template := raw.SimPostCmd
	if template == "" {
		template = tool.PostCmdTemplate
	}
	simPostCmd, err := postcmd.Render(template, raw.TopModule)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	logger.Debug("Manifest translated.", "top_module", raw.TopModule, "sim_tool", simTool, "scopes", len(scopes))
	return &config.Manifest{
		Action:          action,
		SimTool:         simTool,
		TopModule:       raw.TopModule,
		Modules:         scopes,
		ToolOptions:     toolOptions,
		PostCmdTemplate: template,
		SimPostCmd:      simPostCmd,
		Source:          file,
	}, nil
}

// translateScopes converts the modules attribute expression into an
// ordered scope list. For native HCL syntax the object constructor items
// are walked in source order; evaluating the expression to a map first
// would lose that order.
func translateScopes(expr hcl.Expression) (config.ScopeList, error) {
	if oc, ok := expr.(*hclsyntax.ObjectConsExpr); ok {
		scopes := make(config.ScopeList, 0, len(oc.Items))
		for _, item := range oc.Items {
			keyVal, diags := item.KeyExpr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid scope name: %w", diags)
			}
			name, err := stringValue(keyVal)
			if err != nil {
				return nil, fmt.Errorf("invalid scope name: %w", err)
			}
			paths, err := pathList(item.ValueExpr)
			if err != nil {
				return nil, fmt.Errorf("scope %q: %w", name, err)
			}
			scopes = append(scopes, config.Scope{Name: name, Paths: paths})
		}
		return scopes, nil
	}

	// Non-native syntax (e.g. JSON manifests) offers no source order, so
	// fall back to the evaluator's deterministic iteration order.
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("cannot evaluate mapping: %w", diags)
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("expected a mapping of scope name to path list, got %s", val.Type().FriendlyName())
	}
	var scopes config.ScopeList
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		name, err := stringValue(k)
		if err != nil {
			return nil, fmt.Errorf("invalid scope name: %w", err)
		}
		paths, err := pathValues(v)
		if err != nil {
			return nil, fmt.Errorf("scope %q: %w", name, err)
		}
		scopes = append(scopes, config.Scope{Name: name, Paths: paths})
	}
	return scopes, nil
}

// pathList evaluates a scope's value expression into its path strings,
// preserving element order.
func pathList(expr hcl.Expression) ([]string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("cannot evaluate path list: %w", diags)
	}
	return pathValues(val)
}

func pathValues(val cty.Value) ([]string, error) {
	if !val.Type().IsTupleType() && !val.Type().IsListType() {
		return nil, fmt.Errorf("expected a list of path strings, got %s", val.Type().FriendlyName())
	}
	var paths []string
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		s, err := stringValue(v)
		if err != nil {
			return nil, err
		}
		paths = append(paths, s)
	}
	return paths, nil
}

// stringValue converts a cty value to a Go string.
func stringValue(val cty.Value) (string, error) {
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	if converted.IsNull() {
		return "", fmt.Errorf("unexpected null value")
	}
	return converted.AsString(), nil
}

// translateToolOptions collects the per-tool option attributes left over
// after schema decoding. Recognized shapes are `<tool>_opt` and
// `<tool>_elab_opt`; anything else in a manifest is a mistake worth
// failing loudly on.
func translateToolOptions(remain hcl.Body) (map[string]config.ToolOptions, error) {
	if remain == nil {
		return nil, nil
	}
	attrs, diags := remain.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("unsupported manifest content: %w", diags)
	}
	if len(attrs) == 0 {
		return nil, nil
	}

	options := make(map[string]config.ToolOptions)
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("attribute %q: %w", name, diags)
		}
		s, err := stringValue(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}

		if tool, ok := strings.CutSuffix(name, "_elab_opt"); ok && tool != "" {
			opts := options[tool]
			opts.ElabOpt = s
			options[tool] = opts
			continue
		}
		if tool, ok := strings.CutSuffix(name, "_opt"); ok && tool != "" {
			opts := options[tool]
			opts.Opt = s
			options[tool] = opts
			continue
		}
		return nil, fmt.Errorf("unsupported manifest attribute %q", name)
	}
	return options, nil
}
