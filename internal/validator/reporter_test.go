package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/thoreinstein/teamforge/internal/platform"
)

func TestReporter_Report(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	result := &Result{Valid: true}
	result.AddWarning("gemini", platform.FeatureAgents, "2 agent(s) not supported by gemini and will be skipped")

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatText)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Validation passed with 1 warning(s)") {
			t.Errorf("output missing warning summary:\n%s", output)
		}
		if !strings.Contains(output, "gemini [agents] 2 agent(s) not supported") {
			t.Errorf("output missing warning details:\n%s", output)
		}
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatJSON)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode JSON output: %v", err)
		}
		if decoded["valid"] != true {
			t.Errorf("valid = %v, want true", decoded["valid"])
		}
		warnings, _ := decoded["warnings"].([]any)
		if len(warnings) != 1 {
			t.Fatalf("warnings count = %d, want 1", len(warnings))
		}
		w := warnings[0].(map[string]any)
		if w["severity"] != "warning" || w["target"] != "gemini" || w["feature"] != "agents" {
			t.Errorf("unexpected warning %v", w)
		}
	})

	t.Run("errors fail", func(t *testing.T) {
		var buf bytes.Buffer
		failed := &Result{Valid: true}
		failed.AddError("claude", platform.FeatureSettings, "conflict")
		if err := NewReporter(&buf, FormatText).Report(failed); err != nil {
			t.Fatalf("Report() error: %v", err)
		}
		if !strings.Contains(buf.String(), "Validation failed: 1 error(s)") {
			t.Errorf("output missing failure summary:\n%s", buf.String())
		}
	})

	t.Run("empty result text", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatText)
		if err := reporter.Report(&Result{Valid: true}); err != nil {
			t.Fatalf("Report() error: %v", err)
		}
		if !strings.Contains(buf.String(), "Validation passed") {
			t.Error("output missing success message")
		}
	})
}
