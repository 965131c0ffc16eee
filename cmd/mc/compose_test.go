package main

import (
	"strings"
	"testing"
)

func TestNewComposeCmd(t *testing.T) {
	cmd := newComposeCmd()
	if cmd.Use != "compose" {
		t.Errorf("Use = %q, want %q", cmd.Use, "compose")
	}

	for _, name := range []string{"recipient", "context", "tone", "details", "template", "config"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag", name)
		}
	}

	toneFlag := cmd.Flags().Lookup("tone")
	if toneFlag.DefValue != "friendly" {
		t.Errorf("--tone default = %q, want %q", toneFlag.DefValue, "friendly")
	}
}

func TestComposeCmd_MissingRecipient(t *testing.T) {
	if _, err := runCmd(t, "compose"); err == nil {
		t.Fatal("expected error for missing --recipient flag")
	}
}

func TestComposeCmd_MissingAPIKey(t *testing.T) {
	cfg := writeTestConfig(t)
	t.Setenv("GROQ_API_KEY", "")

	_, err := runCmd(t, "compose", "--recipient", "Alice", "--context", "hi", "-c", cfg)
	if err == nil {
		t.Fatal("expected error when the api key is unavailable")
	}
	if !strings.Contains(err.Error(), "api key is required") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "api key is required")
	}
}

func TestComposeCmd_UnknownTemplate(t *testing.T) {
	cfg := writeTestConfig(t)
	t.Setenv("GROQ_API_KEY", "test-key")

	_, err := runCmd(t, "compose",
		"--recipient", "Alice", "--template", "missing", "-c", cfg)
	if err == nil {
		t.Fatal("expected error for unknown template id")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "not found")
	}
}
