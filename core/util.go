package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace sits below debug. Classification logs every line at it.
const (
	LevelTrace slog.Level = slog.LevelDebug - 4
)

func Trace(msg string, args ...any) {
	ctx := context.Background()
	if !slog.Default().Enabled(ctx, LevelTrace) {
		return
	}
	slog.Log(ctx, LevelTrace, msg, args...)
}

// WriteTable renders one row per span.
func WriteTable(w io.Writer, lines []Line) {
	t := table.NewWriter()
	t.SetTitle("Classified spans")
	t.AppendHeader(table.Row{"Line", "Opcode", "Category", "Text", "Ref"})

	for _, line := range lines {
		opcode := "-"
		if line.Matched {
			opcode = line.Opcode.String()
		}

		if len(line.Spans) == 0 {
			t.AppendRow(table.Row{line.Index + 1, opcode, "", "", ""})
			continue
		}

		for _, s := range line.Spans {
			t.AppendRow(table.Row{line.Index + 1, opcode, s.Category, fmt.Sprintf("%q", s.Text), s.Ref})
		}
		t.AppendSeparator()
	}

	fmt.Fprintln(w, t.Render())
}

// WritePlain writes each line as its spans, one line per source line:
// category[text] separated by spaces.
func WritePlain(w io.Writer, lines []Line) {
	for _, line := range lines {
		parts := make([]string, 0, len(line.Spans))
		for _, s := range line.Spans {
			parts = append(parts, fmt.Sprintf("%s%q", s.Category, s.Text))
		}
		fmt.Fprintf(w, "%d\t%s\n", line.Index+1, strings.Join(parts, " "))
	}
}

func LogLine(line Line) {
	slog.Debug("Line",
		"Index", line.Index,
		"Opcode", line.Opcode.String(),
		"Matched", line.Matched,
		"Spans", line.Spans,
	)
}
