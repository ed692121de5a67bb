package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testAppManifest = `{
    "type": "application",
    "source-directories": ["src"],
    "elm-version": "0.19.1",
    "dependencies": {"direct": {}, "indirect": {}},
    "test-dependencies": {"direct": {}, "indirect": {}}
}`

func setupProject(t *testing.T, manifest string, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "elm.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestRunValidate_Valid(t *testing.T) {
	root := setupProject(t, testAppManifest, "src")
	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	if err := runValidate(validateCmd, []string{root}); err != nil {
		t.Fatalf("runValidate error: %v", err)
	}
	if !strings.Contains(buf.String(), "is valid") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRunValidate_MissingSourceDir(t *testing.T) {
	root := setupProject(t, testAppManifest) // no src/ on disk
	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	if err := runValidate(validateCmd, []string{root}); err == nil {
		t.Fatal("runValidate succeeded with a missing source directory")
	}
	if !strings.Contains(buf.String(), "missing source directory: src") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRunValidate_SchemaIssues(t *testing.T) {
	root := setupProject(t, `{"type": "library"}`)
	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	if err := runValidate(validateCmd, []string{root}); err == nil {
		t.Fatal("runValidate succeeded on a bad manifest")
	}
}

func TestProjectRoot(t *testing.T) {
	if got := projectRoot([]string{"/tmp/somewhere"}); got != "/tmp/somewhere" {
		t.Errorf("projectRoot = %q", got)
	}
	if got := projectRoot(nil); got == "" {
		t.Error("projectRoot(nil) is empty")
	}
}
