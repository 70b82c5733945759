// ABOUTME: Tests for add command
// ABOUTME: Verifies flag setup and catalog writes through a temp store
package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewAddCmd(t *testing.T) {
	cmd := NewAddCmd()

	if cmd.Use != "add [title]" {
		t.Errorf("Use = %q, want %q", cmd.Use, "add [title]")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestAddCmd_Flags(t *testing.T) {
	cmd := NewAddCmd()

	tests := []struct {
		flagName string
		defValue string
	}{
		{"author", ""},
		{"genre", ""},
		{"rating", "0"},
		{"cover-url", ""},
		{"goodreads-url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				t.Fatalf("--%s flag not found", tt.flagName)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("--%s default = %q, want %q", tt.flagName, flag.DefValue, tt.defValue)
			}
		})
	}
}

func TestAddCmd_RequiresTitle(t *testing.T) {
	cmd := NewAddCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when title argument is missing")
	}
}

func TestAddCmd_WritesCatalog(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cmd := NewAddCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"The Night Circus", "--author", "Erin Morgenstern", "--genre", "fantasy"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	if !strings.Contains(outputStr, "Added") {
		t.Errorf("Output should confirm the add, got:\n%s", outputStr)
	}
	if !strings.Contains(outputStr, "book_") {
		t.Errorf("Output should include the assigned book ID, got:\n%s", outputStr)
	}

	// The book should now be visible to list.
	listCmd := NewListCmd()
	var listOutput bytes.Buffer
	listCmd.SetOut(&listOutput)
	listCmd.SetErr(&listOutput)

	if err := listCmd.Execute(); err != nil {
		t.Fatalf("list Execute() error = %v", err)
	}
	if !strings.Contains(listOutput.String(), "The Night Circus") {
		t.Errorf("List output should contain the added book, got:\n%s", listOutput.String())
	}
}
