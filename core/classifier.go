// Package core classifies lines of SC assembly into tagged spans.
package core

import (
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sarchlab/scasm/isa"
)

// Observer is notified of every line a Classifier produces.
type Observer interface {
	ObserveLine(line Line)
}

// Classifier splits source text into classified lines. It is safe for
// concurrent use.
type Classifier struct {
	isa      *isa.ISA
	split    map[isa.Opcode]decomposeFunc
	cache    *lru.Cache[string, Line]
	observer Observer
}

var defaultClassifier = NewBuilder().Build()

// Classify classifies text with the default grammar and no cache.
func Classify(text string) []Line {
	return defaultClassifier.Classify(text)
}

// ISA returns the grammar the classifier matches against.
func (c *Classifier) ISA() *isa.ISA {
	return c.isa
}

// Classify splits text on '\n' and classifies every line. The result has
// exactly one Line per input line, in input order.
func (c *Classifier) Classify(text string) []Line {
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, len(rawLines))

	for i, raw := range rawLines {
		lines[i] = c.classify(i, raw)
	}

	return lines
}

// ClassifyLine classifies a single line.
func (c *Classifier) ClassifyLine(text string) Line {
	return c.classify(0, text)
}

func (c *Classifier) classify(index int, text string) Line {
	line := c.lookup(text)
	line.Index = index
	if line.Payload != nil {
		line.Payload.Index = index
	}

	Trace("Classify",
		"Line", index,
		"Opcode", line.Opcode.String(),
		"Matched", line.Matched,
		"Spans", len(line.Spans),
	)

	if c.observer != nil {
		c.observer.ObserveLine(line)
	}

	return line
}

func (c *Classifier) lookup(text string) Line {
	if c.cache == nil {
		return c.decompose(text)
	}

	if hit, ok := c.cache.Get(text); ok {
		return cloneLine(hit)
	}

	line := c.decompose(text)
	c.cache.Add(text, cloneLine(line))

	return line
}

// decompose finds the first pattern matching text and splits the match
// into spans. Text that matches nothing, or matches a form without a
// decomposition, becomes a single Error span.
func (c *Classifier) decompose(text string) Line {
	line := Line{Text: text}

	entry, parts, ok := c.isa.Match(text)
	if !ok {
		line.Spans = spans(tagged(text, Error))
		return line
	}

	line.Opcode = entry.Opcode
	line.Matched = true

	if entry.Opcode == isa.OpConst {
		return c.decomposeConst(line, parts)
	}

	split, ok := c.split[entry.Opcode]
	if !ok {
		line.Spans = spans(tagged(text, Error))
		return line
	}

	line.Spans = split(parts)

	return line
}

func cloneLine(line Line) Line {
	line.Spans = slices.Clone(line.Spans)
	if line.Payload != nil {
		payload := cloneLine(*line.Payload)
		line.Payload = &payload
	}

	return line
}

// trimEdges removes grammar whitespace from the unclassified text at both
// ends of a span sequence. Classified spans keep their text.
func trimEdges(list []Span) []Span {
	for len(list) > 0 && list[0].Category == PlainText {
		list[0].Text = strings.TrimLeftFunc(list[0].Text, isa.IsSpace)
		if list[0].Text != "" {
			break
		}
		list = list[1:]
	}

	for len(list) > 0 && list[len(list)-1].Category == PlainText {
		last := &list[len(list)-1]
		last.Text = strings.TrimRightFunc(last.Text, isa.IsSpace)
		if last.Text != "" {
			break
		}
		list = list[:len(list)-1]
	}

	return list
}
