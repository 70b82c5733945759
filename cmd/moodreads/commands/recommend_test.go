// ABOUTME: Tests for recommend command
// ABOUTME: Verifies flag setup and limit validation
package commands

import (
	"bytes"
	"testing"
)

func TestNewRecommendCmd(t *testing.T) {
	cmd := NewRecommendCmd()

	if cmd.Use != "recommend [mood query]" {
		t.Errorf("Use = %q, want %q", cmd.Use, "recommend [mood query]")
	}

	flag := cmd.Flags().Lookup("limit")
	if flag == nil {
		t.Fatal("--limit flag not found")
	}
	if flag.DefValue != "5" {
		t.Errorf("--limit default = %q, want %q", flag.DefValue, "5")
	}
}

func TestRecommendCmd_RequiresQuery(t *testing.T) {
	cmd := NewRecommendCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when mood query argument is missing")
	}
}

func TestRecommendCmd_RejectsNonPositiveLimit(t *testing.T) {
	for _, limit := range []string{"0", "-3"} {
		t.Run(limit, func(t *testing.T) {
			cmd := NewRecommendCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"something cozy", "--limit", limit})

			if err := cmd.Execute(); err == nil {
				t.Errorf("Expected error for --limit %s", limit)
			}
		})
	}
}
