package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

// reportJSON writes the result as JSON.
func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

// reportText writes the result as human-readable text.
func (r *Reporter) reportText(result *Result) error {
	if !result.HasErrors() && !result.HasWarnings() {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return nil
	}

	summary := []string{}
	if len(result.Errors) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(result.Errors)))
	}
	if len(result.Warnings) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(result.Warnings)))
	}
	if result.HasErrors() {
		fmt.Fprintf(r.out, "Validation failed: %s\n\n", strings.Join(summary, ", "))
	} else {
		fmt.Fprintf(r.out, "Validation passed with %s\n\n", strings.Join(summary, ", "))
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(r.out, "Errors:")
		for _, err := range result.Errors {
			r.printIssue(err, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, warn := range result.Warnings {
			r.printIssue(warn, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

// Format:  • target [feature] message
func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()

	var sb strings.Builder
	sb.WriteString("  • ")
	if i.Target != "" {
		sb.WriteString(printer(i.Target))
		sb.WriteString(" ")
	}
	if i.Feature != "" {
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("[%s] ", i.Feature))
	}
	sb.WriteString(i.Message)

	fmt.Fprintln(r.out, sb.String())
}
