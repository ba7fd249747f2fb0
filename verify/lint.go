package verify

import (
	"fmt"
	"strings"

	"github.com/sarchlab/scasm/core"
	"github.com/sarchlab/scasm/isa"
)

// RunLint collects one issue per Error span, in line order.
// Returns an empty list if no line has an error.
func RunLint(lines []core.Line) []Issue {
	var issues []Issue

	for _, line := range lines {
		spans, offsets := line.ErrorSpans()
		if len(spans) == 0 {
			continue
		}

		core.LogLine(line)

		for i, s := range spans {
			issue := Issue{
				Line:   line.Index + 1,
				Column: offsets[i] + 1,
				Opcode: line.Opcode,
				Text:   s.Text,
			}
			issue.Type, issue.Message = describe(line, s)
			issues = append(issues, issue)
		}
	}

	return issues
}

func describe(line core.Line, s core.Span) (IssueType, string) {
	switch {
	case !line.Matched:
		return IssueSyntax, fmt.Sprintf("Unrecognized line: %q", strings.TrimSpace(s.Text))
	case line.Payload != nil && !line.Payload.Matched:
		return IssueSyntax, fmt.Sprintf("Invalid ^const value: %q", strings.TrimSpace(s.Text))
	case line.Payload != nil:
		return describe(*line.Payload, s)
	case line.Opcode == isa.OpExtFunRetDat2:
		return IssueFunction, fmt.Sprintf(
			"Function %q is not accepted in the %s form", strings.TrimSpace(s.Text), line.Opcode)
	case line.Opcode.IsFunctionCall() && s.Text != line.Text:
		return IssueFunction, fmt.Sprintf("Unknown function %q", strings.TrimSpace(s.Text))
	default:
		return IssueForm, fmt.Sprintf("Unsupported %s form", line.Opcode)
	}
}

// CountByType groups issues by type.
func CountByType(issues []Issue) map[IssueType]int {
	counts := make(map[IssueType]int)
	for _, issue := range issues {
		counts[issue.Type]++
	}
	return counts
}
