package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/simgridgo/internal/app"
	"github.com/vk/simgridgo/internal/config"
	"github.com/vk/simgridgo/internal/hcl"
	"github.com/vk/simgridgo/internal/simulator"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Workspace *config.Workspace
}

// RunLoaderTest provides a standardized harness for running loader
// integration tests against an in-tree set of manifest files. The files
// map uses paths relative to the manifest root (e.g. "int_div_tb.hcl").
func RunLoaderTest(t *testing.T, files map[string]string, mutate ...func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunLoaderTestWithContext(context.Background(), t, files, mutate...)
}

// RunLoaderTestWithContext is RunLoaderTest with a caller-provided context.
func RunLoaderTestWithContext(ctx context.Context, t *testing.T, files map[string]string, mutate ...func(*app.Config)) *HarnessResult {
	t.Helper()

	// 1. Write all manifest files to a temporary directory. Relative paths
	//    with subdirectories create the directory structure naturally.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 2. Configure the app against the temporary manifest root.
	appConfig := &app.Config{
		ManifestPath: tmpDir,
		Output:       "text",
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	for _, m := range mutate {
		m(appConfig)
	}

	logBuffer := &SafeBuffer{}

	// 3. Construct the app, converting a startup panic into a harness error.
	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("SIMGRID_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		catalog := simulator.Default()
		loader := hcl.NewLoader(catalog, appConfig.SimTool)
		testApp = app.NewApp(logBuffer, appConfig, loader, catalog)
	}()

	if panicErr != nil {
		// Keep the error chain intact so tests can use errors.Is on the
		// manifest sentinels.
		harnessErr := fmt.Errorf("application startup panicked | %v", panicErr)
		if err, ok := panicErr.(error); ok {
			harnessErr = fmt.Errorf("application startup panicked | %w", err)
		}
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       harnessErr,
		}
	}

	runErr := testApp.Run(ctx, appConfig)

	if os.Getenv("SIMGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		Workspace: testApp.Workspace(),
	}
}
