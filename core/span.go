package core

import (
	"strings"

	"github.com/sarchlab/scasm/isa"
)

// Category is the semantic role of a span.
type Category int

const (
	PlainText Category = iota
	Instruction
	Variable
	Number
	Label
	Comment
	Directive
	Declaration
	Error
)

var categoryNames = [...]string{
	PlainText:   "text",
	Instruction: "instruction",
	Variable:    "variable",
	Number:      "number",
	Label:       "label",
	Comment:     "comment",
	Directive:   "directive",
	Declaration: "declaration",
	Error:       "error",
}

var categoryClasses = [...]string{
	PlainText:   "",
	Instruction: "asmInstruction",
	Variable:    "asmVariable",
	Number:      "asmNumber",
	Label:       "asmLabel",
	Comment:     "asmComment",
	Directive:   "asmDirective",
	Declaration: "asmVariable",
	Error:       "asmError",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Class returns the presentation class conventionally used for the
// category. PlainText has none.
func (c Category) Class() string {
	if c < 0 || int(c) >= len(categoryClasses) {
		return ""
	}
	return categoryClasses[c]
}

// Span is a contiguous run of a source line tagged with one category.
type Span struct {
	Text     string
	Category Category
	// Ref is the bare name the span refers to, without sigil or
	// surrounding whitespace. Empty when the span names nothing.
	Ref string
}

// Line is the classification of one source line.
type Line struct {
	// Index of the line in the input, starting at 0.
	Index int
	Text  string
	// Opcode of the matching pattern. Meaningless when Matched is false.
	Opcode  isa.Opcode
	Matched bool
	Spans   []Span
	// Payload is the classification of the text after ^const, on its own
	// and untrimmed. Nil for every other line.
	Payload *Line
}

// String concatenates the span texts.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// HasError reports whether any span is an Error span.
func (l Line) HasError() bool {
	for _, s := range l.Spans {
		if s.Category == Error {
			return true
		}
	}
	return false
}

// ErrorSpans returns the Error spans with their byte offsets in String().
func (l Line) ErrorSpans() (spans []Span, offsets []int) {
	offset := 0
	for _, s := range l.Spans {
		if s.Category == Error {
			spans = append(spans, s)
			offsets = append(offsets, offset)
		}
		offset += len(s.Text)
	}
	return spans, offsets
}
