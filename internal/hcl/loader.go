package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/simgridgo/internal/config"
	"github.com/vk/simgridgo/internal/ctxlog"
	"github.com/vk/simgridgo/internal/fsutil"
	"github.com/vk/simgridgo/internal/schema"
	"github.com/vk/simgridgo/internal/simulator"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	catalog *simulator.Catalog

	// toolOverride, when non-empty, replaces every manifest's sim_tool
	// selection, mirroring the -sim-tool CLI flag.
	toolOverride string
}

// NewLoader creates a new HCL manifest loader backed by the given tool
// catalog. A non-empty toolOverride forces the simulator selection for
// every loaded manifest.
func NewLoader(catalog *simulator.Catalog, toolOverride string) *Loader {
	return &Loader{catalog: catalog, toolOverride: toolOverride}
}

// Load orchestrates the entire manifest loading process. It is agnostic
// to the origin of the paths; each discovered file yields one manifest.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Workspace, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findManifestFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	ws := &config.Workspace{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", file, diags)
		}

		var raw schema.ManifestFile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &raw)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", file, diags)
		}

		manifest, err := l.translateManifest(ctx, file, &raw)
		if err != nil {
			return nil, err
		}

		if _, exists := ws.Lookup(manifest.TopModule); exists {
			return nil, fmt.Errorf("%w: %q redefined in %s", config.ErrDuplicateManifest, manifest.TopModule, file)
		}
		ws.Manifests = append(ws.Manifests, manifest)
	}

	logger.Debug("Manifest loading complete.", "manifests", len(ws.Manifests))
	return ws, nil
}

// findManifestFiles walks all given paths and returns a flat, de-duplicated
// list of .hcl files in discovery order.
func (l *Loader) findManifestFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to find manifest files in %s: %w", path, err)
			}
		} else if filepath.Ext(path) == ".hcl" {
			found = []string{path}
		}

		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
