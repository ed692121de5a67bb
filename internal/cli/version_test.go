package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abcdef0", "2026-08-29"
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("version command error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "elmkit 1.2.3") || !strings.Contains(out, "abcdef0") {
		t.Errorf("output = %q", out)
	}
}
