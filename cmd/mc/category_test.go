package main

import (
	"strings"
	"testing"
)

func TestNewCategoryCmd(t *testing.T) {
	cmd := newCategoryCmd()
	if cmd.Use != "category" {
		t.Errorf("Use = %q, want %q", cmd.Use, "category")
	}
	if !cmd.HasSubCommands() {
		t.Error("category command should have subcommands")
	}
}

func TestCategoryAddCmd_MissingName(t *testing.T) {
	if _, err := runCmd(t, "category", "add"); err == nil {
		t.Fatal("expected error for missing --name flag")
	}
}

func TestCategoryAddListRm(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := runCmd(t, "category", "add",
		"--name", "Work",
		"--description", "Work-related messages",
		"-c", cfg,
	)
	if err != nil {
		t.Fatalf("category add failed: %v", err)
	}
	id := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(out), "Created category "))

	out, err = runCmd(t, "category", "list", "-c", cfg)
	if err != nil {
		t.Fatalf("category list failed: %v", err)
	}
	if !strings.Contains(out, "Work") {
		t.Errorf("expected list to show the category, got: %s", out)
	}
	if !strings.Contains(out, "#3B82F6") {
		t.Errorf("expected default color in list, got: %s", out)
	}

	if _, err := runCmd(t, "category", "rm", id, "-c", cfg); err != nil {
		t.Fatalf("category rm failed: %v", err)
	}

	out, err = runCmd(t, "category", "list", "-c", cfg)
	if err != nil {
		t.Fatalf("category list failed: %v", err)
	}
	if !strings.Contains(out, "No categories yet.") {
		t.Errorf("expected empty list, got: %s", out)
	}
}

func TestCategoryRm_LeavesTemplateDangling(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := runCmd(t, "category", "add", "--name", "Personal", "-c", cfg)
	if err != nil {
		t.Fatalf("category add failed: %v", err)
	}
	catID := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(out), "Created category "))

	_, err = runCmd(t, "template", "add",
		"--name", "Birthday", "--context", "Birthday wishes", "--category", catID, "-c", cfg)
	if err != nil {
		t.Fatalf("template add failed: %v", err)
	}

	if _, err := runCmd(t, "category", "rm", catID, "-c", cfg); err != nil {
		t.Fatalf("category rm failed: %v", err)
	}

	out, err = runCmd(t, "template", "list", "-c", cfg)
	if err != nil {
		t.Fatalf("template list failed: %v", err)
	}
	if !strings.Contains(out, "Birthday") {
		t.Errorf("template should survive category deletion, got: %s", out)
	}
	if !strings.Contains(out, "No category") {
		t.Errorf("dangling reference should render as 'No category', got: %s", out)
	}
}
