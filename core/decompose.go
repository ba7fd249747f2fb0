package core

import (
	"slices"

	"github.com/sarchlab/scasm/isa"
)

// decomposeFunc turns the submatches of a pattern into spans. parts[0] is
// the whole match.
type decomposeFunc func(parts []string) []Span

func (c *Classifier) decomposers() map[isa.Opcode]decomposeFunc {
	return map[isa.Opcode]decomposeFunc{
		isa.OpBlank:   c.splitBlank,
		isa.OpLabel:   c.splitLabel,
		isa.OpComment: c.splitComment,
		isa.OpDeclare: c.splitDeclare,
		isa.OpProgram: c.splitProgram,

		isa.OpSetVal: c.splitSetVal,

		isa.OpSetDat: c.splitBinary,
		isa.OpAddDat: c.splitBinary,
		isa.OpSubDat: c.splitBinary,
		isa.OpMulDat: c.splitBinary,
		isa.OpDivDat: c.splitBinary,
		isa.OpBorDat: c.splitBinary,
		isa.OpAndDat: c.splitBinary,
		isa.OpXorDat: c.splitBinary,
		isa.OpModDat: c.splitBinary,
		isa.OpShlDat: c.splitBinary,
		isa.OpShrDat: c.splitBinary,

		isa.OpClrDat: c.splitUnary,
		isa.OpIncDat: c.splitUnary,
		isa.OpDecDat: c.splitUnary,
		isa.OpNotDat: c.splitUnary,
		isa.OpPshDat: c.splitUnary,
		isa.OpPopDat: c.splitUnary,
		isa.OpSlpDat: c.splitUnary,
		isa.OpFizDat: c.splitUnary,
		isa.OpStzDat: c.splitUnary,

		isa.OpRetSub: c.splitBare,
		isa.OpFinImd: c.splitBare,
		isa.OpStpImd: c.splitBare,
		isa.OpSetPcs: c.splitBare,
		isa.OpNop:    c.splitBare,

		isa.OpSetInd: c.splitSetInd,
		isa.OpSetIdx: c.splitSetIdx,
		isa.OpIndDat: c.splitIndDat,
		isa.OpIdxDat: c.splitIdxDat,

		isa.OpJmpSub: c.splitJump,
		isa.OpJmpAdr: c.splitJump,
		isa.OpErrAdr: c.splitJump,

		isa.OpBzrDat: c.splitBranchZero,
		isa.OpBnzDat: c.splitBranchZero,

		isa.OpBgtDat: c.splitBranchCompare,
		isa.OpBltDat: c.splitBranchCompare,
		isa.OpBgeDat: c.splitBranchCompare,
		isa.OpBleDat: c.splitBranchCompare,
		isa.OpBeqDat: c.splitBranchCompare,
		isa.OpBneDat: c.splitBranchCompare,

		isa.OpExtFun:        c.splitExtFun,
		isa.OpExtFunDat:     c.splitExtFunDat,
		isa.OpExtFunDat2:    c.splitExtFunDat2,
		isa.OpExtFunRet:     c.splitExtFunRet,
		isa.OpExtFunRetDat2: c.splitExtFunRetDat2,
		// OpConst recurses in decomposeConst. OpExtFunRetDat has no
		// decomposition and is reported as an error.
	}
}

func (c *Classifier) splitBlank(parts []string) []Span {
	return spans(plain(parts[0]))
}

func (c *Classifier) splitLabel(parts []string) []Span {
	return spans(Span{Text: parts[0], Category: Label, Ref: parts[1]})
}

func (c *Classifier) splitComment(parts []string) []Span {
	return spans(
		tagged(parts[1], Directive),
		tagged(parts[2], Comment),
	)
}

func (c *Classifier) splitDeclare(parts []string) []Span {
	return spans(
		tagged(parts[1], Directive),
		Span{Text: parts[2], Category: Declaration, Ref: isa.TrimSpace(parts[2])},
	)
}

// decomposeConst classifies the payload of a ^const directive as a line of
// its own and inlines the result.
func (c *Classifier) decomposeConst(line Line, parts []string) Line {
	payload := c.decompose(parts[2])
	line.Payload = &payload

	inlined := trimEdges(slices.Clone(payload.Spans))
	line.Spans = append(spans(tagged(parts[1], Directive)), inlined...)

	return line
}

func (c *Classifier) splitProgram(parts []string) []Span {
	return spans(
		tagged(parts[1], Directive),
		plain(parts[2]),
	)
}

func (c *Classifier) splitSetVal(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Variable),
		operand(parts[3], Number),
	)
}

func (c *Classifier) splitBinary(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Variable),
		operand(parts[3], Variable),
	)
}

func (c *Classifier) splitUnary(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Variable),
	)
}

func (c *Classifier) splitBare(parts []string) []Span {
	return spans(tagged(parts[0], Instruction))
}

// SET @var $($ptr)
func (c *Classifier) splitSetInd(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Variable),
		plain(parts[3]),
		operand(parts[4], Variable),
		plain(parts[5]),
	)
}

// SET @var $($ptr + $idx)
func (c *Classifier) splitSetIdx(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Variable),
		plain(parts[3]),
		operand(parts[4], Variable),
		plain(parts[5]),
		operand(parts[6], Variable),
		plain(parts[7]),
	)
}

// SET @($ptr) $var
func (c *Classifier) splitIndDat(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		plain(parts[2]),
		operand(parts[3], Variable),
		plain(parts[4]),
		operand(parts[5], Variable),
	)
}

// SET @($ptr + $idx) $var
func (c *Classifier) splitIdxDat(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		plain(parts[2]),
		operand(parts[3], Variable),
		plain(parts[4]),
		operand(parts[5], Variable),
		plain(parts[6]),
		operand(parts[7], Variable),
	)
}

func (c *Classifier) splitJump(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Label),
	)
}

func (c *Classifier) splitBranchZero(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Variable),
		operand(parts[3], Label),
	)
}

func (c *Classifier) splitBranchCompare(parts []string) []Span {
	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Variable),
		operand(parts[3], Variable),
		operand(parts[4], Label),
	)
}

// FUN name
func (c *Classifier) splitExtFun(parts []string) []Span {
	if !c.knownFunction(parts[2]) {
		return spans(
			tagged(parts[1], Instruction),
			tagged(parts[2], Error),
		)
	}

	return spans(tagged(parts[0], Instruction))
}

// FUN name $a
func (c *Classifier) splitExtFunDat(parts []string) []Span {
	if !c.knownFunction(parts[2]) {
		return spans(
			tagged(parts[1], Instruction),
			tagged(parts[2], Error),
			operand(parts[3], Variable),
		)
	}

	return spans(
		tagged(parts[1]+parts[2], Instruction),
		operand(parts[3], Variable),
	)
}

// FUN name $a $b
func (c *Classifier) splitExtFunDat2(parts []string) []Span {
	if !c.knownFunction(parts[2]) {
		return spans(
			tagged(parts[1], Instruction),
			tagged(parts[2], Error),
			operand(parts[3], Variable),
			operand(parts[4], Variable),
		)
	}

	return spans(
		tagged(parts[1]+parts[2], Instruction),
		operand(parts[3], Variable),
		operand(parts[4], Variable),
	)
}

// FUN @ret name
func (c *Classifier) splitExtFunRet(parts []string) []Span {
	name := Instruction
	if !c.knownFunction(parts[3]) {
		name = Error
	}

	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Variable),
		tagged(parts[3], name),
	)
}

// FUN @ret name $a $b
//
// The name check is inverted for this form: a known function is flagged.
// TODO: confirm with the assembler owners whether this is intended before
// aligning it with the other call forms.
func (c *Classifier) splitExtFunRetDat2(parts []string) []Span {
	name := Instruction
	if c.knownFunction(parts[3]) {
		name = Error
	}

	return spans(
		tagged(parts[1], Instruction),
		operand(parts[2], Variable),
		tagged(parts[3], name),
		operand(parts[4], Variable),
		operand(parts[5], Variable),
	)
}

func (c *Classifier) knownFunction(name string) bool {
	_, ok := c.isa.LookupFunction(name)
	return ok
}

func tagged(text string, category Category) Span {
	return Span{Text: text, Category: category}
}

func plain(text string) Span {
	return Span{Text: text, Category: PlainText}
}

// operand tags a sigil-prefixed operand and records the name it refers to.
func operand(text string, category Category) Span {
	ref := ""
	if len(text) > 1 {
		ref = isa.TrimSpace(text[1:])
	}

	return Span{Text: text, Category: category, Ref: ref}
}

// spans drops empty spans.
func spans(list ...Span) []Span {
	out := make([]Span, 0, len(list))
	for _, s := range list {
		if s.Text != "" {
			out = append(out, s)
		}
	}

	return out
}
