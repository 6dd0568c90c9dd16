package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/flowscript/internal/app"
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

// HarnessResult holds the outcomes of a full document-to-script run.
type HarnessResult struct {
	Script    string
	LogOutput string
	Err       error
}

// CompileDocument provides a standardized harness for end-to-end tests: it
// writes the given HCL files to a temporary directory, runs the application
// against it, and returns the compiled script, the log output, and any error.
func CompileDocument(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return CompileDocumentWithConfig(context.Background(), t, files, nil)
}

// CompileDocumentWithConfig is CompileDocument with caller control over the
// context and the configuration. A nil mutate leaves the defaults in place.
func CompileDocumentWithConfig(ctx context.Context, t *testing.T, files map[string]string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-flowscript-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	rawCfg := app.Config{
		DocumentPath: tmpDir,
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	if mutate != nil {
		mutate(&rawCfg)
	}
	cfg, err := app.NewConfig(rawCfg)
	require.NoError(t, err)

	scriptBuffer := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}

	testApp := app.New(scriptBuffer, logBuffer, cfg)
	runErr := testApp.Run(ctx, cfg)

	if os.Getenv("FLOWSCRIPT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Script:    scriptBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
	}
}
