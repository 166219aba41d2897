package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	tests := []struct {
		name     string
		shell    Shell
		contains []string
	}{
		{
			name:     "bash",
			shell:    ShellBash,
			contains: []string{"_webshot", "complete -o default -F _webshot webshot", "--output", "doctor"},
		},
		{
			name:     "zsh",
			shell:    ShellZsh,
			contains: []string{"#compdef webshot", "_arguments", "--output", "--quality"},
		},
		{
			name:     "fish",
			shell:    ShellFish,
			contains: []string{"complete -c webshot", "-l output", "-a doctor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) unexpected error: %v", tt.shell, err)
			}
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletionUnsupportedShell(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "powershell")
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("GenerateCompletion() error = %v, want %v", err, ErrUnsupportedShell)
	}
}

func TestExtractFlagsCoversCaptureFlags(t *testing.T) {
	flags := extractFlags(buildCaptureFlagSet())

	byName := make(map[string]flagDef, len(flags))
	for _, f := range flags {
		byName[f.Long] = f
	}

	// Spot-check a flag from each group to catch registration drift.
	for _, name := range []string{"output", "width", "mobile", "no-full-page", "quality", "username", "quiet"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("extracted flags missing --%s", name)
		}
	}
	if byName["output"].Short != "o" {
		t.Errorf("output shorthand = %q, want o", byName["output"].Short)
	}
}

func TestRunCompletionNoArgsPrintsUsage(t *testing.T) {
	env, stdout, _ := testEnv()

	if err := runCompletion(nil, env); err != nil {
		t.Fatalf("runCompletion() unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Supported shells") {
		t.Errorf("stdout = %q, want completion usage", stdout.String())
	}
}
