package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarchlab/scasm/core"
	"github.com/sarchlab/scasm/isa"
)

// Report represents the lint result of one source
type Report struct {
	Source         string
	LineCount      int
	Issues         []Issue
	SyntaxIssues   []Issue
	FunctionIssues []Issue
	FormIssues     []Issue
}

// GenerateReport runs lint over classified lines and groups the issues by type
func GenerateReport(source string, lines []core.Line) *Report {
	report := &Report{
		Source:    source,
		LineCount: len(lines),
	}

	report.Issues = RunLint(lines)

	for _, issue := range report.Issues {
		switch issue.Type {
		case IssueSyntax:
			report.SyntaxIssues = append(report.SyntaxIssues, issue)
		case IssueFunction:
			report.FunctionIssues = append(report.FunctionIssues, issue)
		default:
			report.FormIssues = append(report.FormIssues, issue)
		}
	}

	return report
}

// OK reports whether the source has no issues.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// WriteReport writes a formatted report to a writer
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "LINT REPORT: %s\n", r.Source)
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nClassified %d lines\n", r.LineCount)

	if r.OK() {
		fmt.Fprintln(w, "No issues found")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "Found %d issues:\n", len(r.Issues))

	writeGroup(w, dash, IssueSyntax, r.SyntaxIssues)
	writeGroup(w, dash, IssueFunction, r.FunctionIssues)
	writeGroup(w, dash, IssueForm, r.FormIssues)

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintf(w, "Summary: %d issues (%d SYNTAX, %d FUNCTION, %d FORM)\n",
		len(r.Issues), len(r.SyntaxIssues), len(r.FunctionIssues), len(r.FormIssues))
	fmt.Fprintln(w)
}

func writeGroup(w io.Writer, dash string, t IssueType, issues []Issue) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s ISSUES (%d):\n", t, len(issues))
	fmt.Fprintln(w, dash)
	for _, issue := range issues {
		op := "-"
		if issue.Type != IssueSyntax || issue.Opcode == isa.OpConst {
			op = issue.Opcode.String()
		}
		fmt.Fprintf(w, "  [%d:%d op=%s] %s\n",
			issue.Line, issue.Column, op, issue.Message)
	}
}

// SaveReportToFile saves the report to a file
func (r *Report) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
