// ABOUTME: Tests for lexicon command
// ABOUTME: Verifies label listing in table and JSON formats
package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLexiconCmd_ListsLabels(t *testing.T) {
	cmd := NewLexiconCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	for _, want := range []string{"DIM", "joy", "melancholy", "closed lexicon"} {
		if !strings.Contains(outputStr, want) {
			t.Errorf("Output should contain %q, got:\n%s", want, outputStr)
		}
	}
}

func TestLexiconCmd_JSONFormat(t *testing.T) {
	originalFormat := outputFormat
	outputFormat = "json"
	defer func() { outputFormat = originalFormat }()

	cmd := NewLexiconCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var labels []string
	if err := json.Unmarshal(output.Bytes(), &labels); err != nil {
		t.Fatalf("Output should be valid JSON: %v\n%s", err, output.String())
	}
	if len(labels) == 0 || labels[0] != "joy" {
		t.Errorf("labels[0] = %v, want joy first", labels)
	}
}
