// Package testutil holds file helpers shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test helper
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// WriteFile writes content to dir/name and returns the full path. An empty
// dir means a fresh temporary directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
