// Package verify reports the problems the classifier found in an SC
// assembly source.
//
// Classification never fails: malformed text is carried through as Error
// spans. This package turns those spans back into located issues so that a
// tool can print them, count them, or refuse a source that has any.
//
// # Issue Kinds
//
//   - SYNTAX: the line matches no pattern, or it is a ^const directive
//     whose payload matches no pattern.
//   - FUNCTION: a FUN call names a function the function table rejects.
//     For the "FUN @ret name $a $b" form a known name is the one rejected.
//   - FORM: the line has the shape of a recognized form that has no
//     decomposition ("FUN @ret name $a"), so the whole line is an error.
//
// A ^const directive is judged by its payload, so an unknown function in
// "^const FUN name" is a FUNCTION issue.
//
// # Locations
//
// Issue.Line is 1-based, as editors show it. Issue.Column is the 1-based
// byte column of the offending span in the classified text.
//
// # Usage Example
//
//	lines := core.Classify(source)
//	report := verify.GenerateReport("contract.asm", lines)
//	report.WriteReport(os.Stdout)
//	if !report.OK() {
//	    os.Exit(1)
//	}
package verify

import (
	"github.com/sarchlab/scasm/isa"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueSyntax   IssueType = "SYNTAX"   // No pattern matched
	IssueFunction IssueType = "FUNCTION" // Function name rejected
	IssueForm     IssueType = "FORM"     // Recognized form without decomposition
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType
	Line    int        // 1-based line number
	Column  int        // 1-based byte column of the offending text
	Opcode  isa.Opcode // Opcode of the line, meaningless for unmatched lines
	Text    string     // Offending text
	Message string     // Human-readable description
}
