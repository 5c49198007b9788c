// Package report renders validation findings for humans and machines.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/defcheck/internal/errors"
	"github.com/thoreinstein/defcheck/pkg/definition"
	"github.com/thoreinstein/defcheck/pkg/validator"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "report format %q", s)
	}
}

// FileResult holds the errors found in one definition file.
type FileResult struct {
	Path   string
	Errors []validator.Error
}

// Results is the outcome of a validation run.
type Results []FileResult

// ErrorCount returns the total number of errors across all files.
func (rs Results) ErrorCount() int {
	n := 0
	for _, r := range rs {
		n += len(r.Errors)
	}
	return n
}

// HasErrors reports whether any file has errors.
func (rs Results) HasErrors() bool {
	return rs.ErrorCount() > 0
}

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

// Report writes the results to the output.
func (r *Reporter) Report(results Results) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(results)
	default:
		return r.reportText(results)
	}
}

type jsonReport struct {
	Files  int         `json:"files"`
	Errors int         `json:"errors"`
	Issues []jsonIssue `json:"issues"`
}

type jsonIssue struct {
	Path       string `json:"path"`
	Definition string `json:"definition"`
	Message    string `json:"message"`
}

func (r *Reporter) reportJSON(results Results) error {
	rep := jsonReport{
		Files:  len(results),
		Errors: results.ErrorCount(),
		Issues: make([]jsonIssue, 0, results.ErrorCount()),
	}
	for _, fr := range results {
		for _, e := range fr.Errors {
			rep.Issues = append(rep.Issues, jsonIssue{
				Path:       fr.Path,
				Definition: definition.Label(e.Definition()),
				Message:    e.Message(),
			})
		}
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(rep), "encoding JSON report")
}

func (r *Reporter) reportText(results Results) error {
	var buf bytes.Buffer
	writeText(&buf, results)
	_, err := r.out.Write(buf.Bytes())
	return errors.Wrap(err, "writing text report")
}

func writeText(w io.Writer, results Results) {
	count := results.ErrorCount()
	if count == 0 {
		fmt.Fprintln(w, color.GreenString("✓ %d file(s) passed validation", len(results)))
		return
	}

	failed := 0
	for _, fr := range results {
		if len(fr.Errors) > 0 {
			failed++
		}
	}
	fmt.Fprintf(w, "Validation failed: %s in %d of %d file(s)\n\n",
		color.RedString("%d error(s)", count), failed, len(results))

	label := color.New(color.FgRed).SprintFunc()
	for _, fr := range results {
		if len(fr.Errors) == 0 {
			continue
		}
		fmt.Fprintln(w, color.New(color.Bold).Sprint(fr.Path))
		for _, e := range fr.Errors {
			fmt.Fprintf(w, "  • %s: %s\n", label(definition.Label(e.Definition())), e.Message())
		}
		fmt.Fprintln(w)
	}
}
