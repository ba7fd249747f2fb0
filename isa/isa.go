// Package isa holds the instruction grammar of the SC assembly dialect: the
// ordered opcode-pattern table and the API function table.
package isa

import (
	"regexp"
	"strings"
)

// PatternEntry is one row of the instruction grammar.
type PatternEntry struct {
	Opcode Opcode
	// Encoded size of the instruction in bytes. Informational only.
	Size    int
	Pattern *regexp.Regexp
}

// FunctionEntry maps an API function code to its name.
type FunctionEntry struct {
	Code uint16
	Name string
}

// ISA is a struct that represents the grammar of an instruction set.
type ISA struct {
	// name of the ISA.
	isaName string
	// patterns in match order.
	entries []PatternEntry
	// known API functions.
	functions []FunctionEntry
}

// Constructor for ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName: name,
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// RegisterPattern appends a pattern to the table. In expr, `\s` stands for
// the ECMAScript whitespace set rather than RE2's ASCII one.
func (isa *ISA) RegisterPattern(op Opcode, size int, expr string) {
	isa.RegisterEntry(PatternEntry{
		Opcode:  op,
		Size:    size,
		Pattern: regexp.MustCompile(strings.ReplaceAll(expr, `\s`, spaceClass)),
	})
}

// RegisterEntry appends an already compiled entry to the table.
func (isa *ISA) RegisterEntry(entry PatternEntry) {
	isa.entries = append(isa.entries, entry)
}

// RegisterFunction adds an API function name.
func (isa *ISA) RegisterFunction(code uint16, name string) {
	isa.functions = append(isa.functions, FunctionEntry{Code: code, Name: name})
}

// Entries returns the pattern table in match order. The slice must not be
// modified.
func (isa *ISA) Entries() []PatternEntry {
	return isa.entries
}

// Functions returns the function table. The slice must not be modified.
func (isa *ISA) Functions() []FunctionEntry {
	return isa.functions
}

// Match tries every pattern in table order against the whole line and
// returns the first entry that matches, with its submatches.
func (isa *ISA) Match(line string) (PatternEntry, []string, bool) {
	for _, entry := range isa.entries {
		parts := entry.Pattern.FindStringSubmatch(line)
		if parts != nil {
			return entry, parts, true
		}
	}

	return PatternEntry{}, nil, false
}

// LookupFunction scans the function table for an entry whose name equals
// the trimmed name.
func (isa *ISA) LookupFunction(name string) (FunctionEntry, bool) {
	name = TrimSpace(name)
	for _, f := range isa.functions {
		if f.Name == name {
			return f, true
		}
	}

	return FunctionEntry{}, false
}
