package core_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/scasm/core"
	"github.com/sarchlab/scasm/isa"
)

func span(text string, category core.Category, ref ...string) core.Span {
	s := core.Span{Text: text, Category: category}
	if len(ref) > 0 {
		s.Ref = ref[0]
	}
	return s
}

var _ = Describe("Classifier", func() {
	var c *core.Classifier

	BeforeEach(func() {
		c = core.NewBuilder().Build()
	})

	classify := func(text string) core.Line {
		return c.ClassifyLine(text)
	}

	Context("Directives", func() {
		It("should keep an empty line as a blank line without spans", func() {
			line := classify("")
			Expect(line.Matched).To(BeTrue())
			Expect(line.Opcode).To(Equal(isa.OpBlank))
			Expect(line.Spans).To(BeEmpty())
		})

		It("should keep whitespace of a blank line as plain text", func() {
			line := classify(" \t ")
			Expect(line.Opcode).To(Equal(isa.OpBlank))
			Expect(line.Spans).To(Equal([]core.Span{span(" \t ", core.PlainText)}))
		})

		It("should classify a label definition as one label span", func() {
			line := classify("label:")
			Expect(line.Opcode).To(Equal(isa.OpLabel))
			Expect(line.Spans).To(Equal([]core.Span{span("label:", core.Label, "label")}))
		})

		It("should keep surrounding whitespace inside the label span", func() {
			line := classify("  loop:  ")
			Expect(line.Spans).To(Equal([]core.Span{span("  loop:  ", core.Label, "loop")}))
		})

		It("should split a comment directive", func() {
			line := classify("^comment hello world")
			Expect(line.Opcode).To(Equal(isa.OpComment))
			Expect(line.Spans).To(Equal([]core.Span{
				span("^comment", core.Directive),
				span(" hello world", core.Comment),
			}))
		})

		It("should split a declare directive", func() {
			line := classify("^declare counter ")
			Expect(line.Opcode).To(Equal(isa.OpDeclare))
			Expect(line.Spans).To(Equal([]core.Span{
				span("^declare", core.Directive),
				span(" counter ", core.Declaration, "counter"),
			}))
		})

		It("should split a program directive", func() {
			line := classify("^program name Some Contract")
			Expect(line.Opcode).To(Equal(isa.OpProgram))
			Expect(line.Spans).To(Equal([]core.Span{
				span("^program name", core.Directive),
				span(" Some Contract", core.PlainText),
			}))
		})

		It("should reject a declare directive with two names", func() {
			line := classify("^declare a b")
			Expect(line.Matched).To(BeFalse())
			Expect(line.Spans).To(Equal([]core.Span{span("^declare a b", core.Error)}))
		})
	})

	Context("Const directive", func() {
		It("should classify the payload as an instruction", func() {
			line := classify("^const SET @x #0000000000000005")
			Expect(line.Opcode).To(Equal(isa.OpConst))
			Expect(line.Spans).To(Equal([]core.Span{
				span("^const", core.Directive),
				span(" SET ", core.Instruction),
				span("@x ", core.Variable, "x"),
				span("#0000000000000005", core.Number, "0000000000000005"),
			}))
		})

		It("should produce the same spans as the payload on its own", func() {
			payload := " SET @a $($b + $c)"
			inline := classify("^const" + payload)
			alone := classify(payload)
			Expect(inline.Spans[1:]).To(Equal(alone.Spans))
		})

		It("should flag a payload that is not an instruction", func() {
			line := classify("^const MYVAL SET @x #0000000000000005")
			Expect(line.Opcode).To(Equal(isa.OpConst))
			Expect(line.Spans).To(Equal([]core.Span{
				span("^const", core.Directive),
				span(" MYVAL SET @x #0000000000000005", core.Error),
			}))
		})

		It("should keep the payload classification", func() {
			line := classify("^const FUN @r get_A1 $a")
			Expect(line.Payload).NotTo(BeNil())
			Expect(line.Payload.Text).To(Equal(" FUN @r get_A1 $a"))
			Expect(line.Payload.Opcode).To(Equal(isa.OpExtFunRetDat))
			Expect(line.Payload.Matched).To(BeTrue())
			Expect(line.Payload.Spans).To(Equal([]core.Span{
				span(" FUN @r get_A1 $a", core.Error),
			}))
		})

		It("should mark an unmatched payload", func() {
			line := classify("^const MYVAL")
			Expect(line.Payload).NotTo(BeNil())
			Expect(line.Payload.Matched).To(BeFalse())
		})

		It("should leave the payload empty on other lines", func() {
			Expect(classify("SET @a $b").Payload).To(BeNil())
		})

		It("should trim unclassified whitespace at the end of the payload", func() {
			line := classify("^const SET @a $($b)  ")
			Expect(line.Spans).To(Equal([]core.Span{
				span("^const", core.Directive),
				span(" SET ", core.Instruction),
				span("@a", core.Variable, "a"),
				span(" $(", core.PlainText),
				span("$b", core.Variable, "b"),
				span(")", core.PlainText),
			}))
		})

		It("should drop a blank payload", func() {
			line := classify("^const \t")
			Expect(line.Spans).To(Equal([]core.Span{span("^const", core.Directive)}))
		})

		It("should recurse into a nested const directive", func() {
			line := classify("^const ^const NOP")
			Expect(line.Spans).To(Equal([]core.Span{
				span("^const", core.Directive),
				span(" ^const", core.Directive),
				span(" NOP", core.Instruction),
			}))
		})
	})

	Context("Operand instructions", func() {
		It("should split SET with an immediate", func() {
			line := classify("SET @var #0000000000000001")
			Expect(line.Opcode).To(Equal(isa.OpSetVal))
			Expect(line.Spans).To(Equal([]core.Span{
				span("SET ", core.Instruction),
				span("@var ", core.Variable, "var"),
				span("#0000000000000001", core.Number, "0000000000000001"),
			}))
		})

		It("should reject an immediate with upper-case hex digits", func() {
			line := classify("SET @var #000000000000000A")
			Expect(line.Matched).To(BeFalse())
		})

		It("should reject an immediate with fifteen digits", func() {
			line := classify("SET @var #000000000000001")
			Expect(line.Matched).To(BeFalse())
		})

		DescribeTable("binary forms",
			func(text string, op isa.Opcode, keyword string) {
				line := classify(text)
				Expect(line.Opcode).To(Equal(op))
				Expect(line.Spans).To(Equal([]core.Span{
					span(keyword, core.Instruction),
					span("@a ", core.Variable, "a"),
					span("$b", core.Variable, "b"),
				}))
			},
			Entry("SET", "SET @a $b", isa.OpSetDat, "SET "),
			Entry("ADD", "ADD @a $b", isa.OpAddDat, "ADD "),
			Entry("SUB", "SUB @a $b", isa.OpSubDat, "SUB "),
			Entry("MUL", "MUL @a $b", isa.OpMulDat, "MUL "),
			Entry("DIV", "DIV @a $b", isa.OpDivDat, "DIV "),
			Entry("BOR", "BOR @a $b", isa.OpBorDat, "BOR "),
			Entry("AND", "AND @a $b", isa.OpAndDat, "AND "),
			Entry("XOR", "XOR @a $b", isa.OpXorDat, "XOR "),
			Entry("MOD", "MOD @a $b", isa.OpModDat, "MOD "),
			Entry("SHL", "SHL @a $b", isa.OpShlDat, "SHL "),
			Entry("SHR", "SHR @a $b", isa.OpShrDat, "SHR "),
		)

		DescribeTable("unary forms",
			func(text string, op isa.Opcode, operand, ref string) {
				line := classify(text)
				Expect(line.Opcode).To(Equal(op))
				Expect(line.Spans).To(Equal([]core.Span{
					span(text[:4], core.Instruction),
					span(operand, core.Variable, ref),
				}))
			},
			Entry("CLR", "CLR @a", isa.OpClrDat, "@a", "a"),
			Entry("INC", "INC @a", isa.OpIncDat, "@a", "a"),
			Entry("DEC", "DEC @a", isa.OpDecDat, "@a", "a"),
			Entry("NOT", "NOT @a", isa.OpNotDat, "@a", "a"),
			Entry("PSH", "PSH $a", isa.OpPshDat, "$a", "a"),
			Entry("POP", "POP @a", isa.OpPopDat, "@a", "a"),
			Entry("SLP", "SLP $a", isa.OpSlpDat, "$a", "a"),
			Entry("FIZ", "FIZ $a", isa.OpFizDat, "$a", "a"),
			Entry("STZ", "STZ $tmp ", isa.OpStzDat, "$tmp ", "tmp"),
		)

		DescribeTable("forms without operands",
			func(text string, op isa.Opcode) {
				line := classify(text)
				Expect(line.Opcode).To(Equal(op))
				Expect(line.Spans).To(Equal([]core.Span{span(text, core.Instruction)}))
			},
			Entry("RET", "RET", isa.OpRetSub),
			Entry("FIN", " FIN ", isa.OpFinImd),
			Entry("STP", "STP", isa.OpStpImd),
			Entry("PCS", "PCS", isa.OpSetPcs),
			Entry("NOP", "  NOP  ", isa.OpNop),
		)

		It("should reject lower-case keywords", func() {
			Expect(classify("nop").Matched).To(BeFalse())
		})
	})

	Context("Indirect addressing", func() {
		It("should split SET @var $($ptr)", func() {
			line := classify("SET @a $($b)")
			Expect(line.Opcode).To(Equal(isa.OpSetInd))
			Expect(line.Spans).To(Equal([]core.Span{
				span("SET ", core.Instruction),
				span("@a", core.Variable, "a"),
				span(" $(", core.PlainText),
				span("$b", core.Variable, "b"),
				span(")", core.PlainText),
			}))
		})

		It("should split SET @var $($ptr + $idx)", func() {
			line := classify("SET @a $($b + $c)")
			Expect(line.Opcode).To(Equal(isa.OpSetIdx))
			Expect(line.Spans).To(Equal([]core.Span{
				span("SET ", core.Instruction),
				span("@a ", core.Variable, "a"),
				span("$(", core.PlainText),
				span("$b", core.Variable, "b"),
				span(" + ", core.PlainText),
				span("$c", core.Variable, "c"),
				span(")", core.PlainText),
			}))
		})

		It("should split SET @($ptr) $var", func() {
			line := classify("SET @($a) $b")
			Expect(line.Opcode).To(Equal(isa.OpIndDat))
			Expect(line.Spans).To(Equal([]core.Span{
				span("SET ", core.Instruction),
				span("@(", core.PlainText),
				span("$a", core.Variable, "a"),
				span(") ", core.PlainText),
				span("$b", core.Variable, "b"),
			}))
		})

		It("should split SET @($ptr + $idx) $var", func() {
			line := classify("SET @($a+$b) $c")
			Expect(line.Opcode).To(Equal(isa.OpIdxDat))
			Expect(line.Spans).To(Equal([]core.Span{
				span("SET ", core.Instruction),
				span("@(", core.PlainText),
				span("$a", core.Variable, "a"),
				span("+", core.PlainText),
				span("$b", core.Variable, "b"),
				span(") ", core.PlainText),
				span("$c", core.Variable, "c"),
			}))
		})
	})

	Context("Jumps and branches", func() {
		DescribeTable("jumps",
			func(text string, op isa.Opcode) {
				line := classify(text)
				Expect(line.Opcode).To(Equal(op))
				Expect(line.Spans).To(Equal([]core.Span{
					span(text[:4], core.Instruction),
					span(":target", core.Label, "target"),
				}))
			},
			Entry("JSR", "JSR :target", isa.OpJmpSub),
			Entry("JMP", "JMP :target", isa.OpJmpAdr),
			Entry("ERR", "ERR :target", isa.OpErrAdr),
		)

		It("should split BZR", func() {
			line := classify("BZR $a :done")
			Expect(line.Opcode).To(Equal(isa.OpBzrDat))
			Expect(line.Spans).To(Equal([]core.Span{
				span("BZR ", core.Instruction),
				span("$a ", core.Variable, "a"),
				span(":done", core.Label, "done"),
			}))
		})

		It("should split BNZ", func() {
			Expect(classify("BNZ $a :done").Opcode).To(Equal(isa.OpBnzDat))
		})

		DescribeTable("comparisons",
			func(keyword string, op isa.Opcode) {
				line := classify(keyword + " $a $b :done")
				Expect(line.Opcode).To(Equal(op))
				Expect(line.Spans).To(Equal([]core.Span{
					span(keyword+" ", core.Instruction),
					span("$a ", core.Variable, "a"),
					span("$b ", core.Variable, "b"),
					span(":done", core.Label, "done"),
				}))
			},
			Entry("BGT", "BGT", isa.OpBgtDat),
			Entry("BLT", "BLT", isa.OpBltDat),
			Entry("BGE", "BGE", isa.OpBgeDat),
			Entry("BLE", "BLE", isa.OpBleDat),
			Entry("BEQ", "BEQ", isa.OpBeqDat),
			Entry("BNE", "BNE", isa.OpBneDat),
		)
	})

	Context("Function calls", func() {
		It("should keep a known function as one instruction span", func() {
			line := classify("FUN get_A1")
			Expect(line.Opcode).To(Equal(isa.OpExtFun))
			Expect(line.Spans).To(Equal([]core.Span{span("FUN get_A1", core.Instruction)}))
		})

		It("should flag an unknown function name", func() {
			line := classify("FUN bogus_name")
			Expect(line.Opcode).To(Equal(isa.OpExtFun))
			Expect(line.Spans).To(Equal([]core.Span{
				span("FUN ", core.Instruction),
				span("bogus_name", core.Error),
			}))
		})

		It("should compare function names case-sensitively", func() {
			line := classify("FUN GET_A1")
			Expect(line.HasError()).To(BeTrue())
		})

		It("should merge keyword and known name with one argument", func() {
			line := classify("FUN set_A1 $a")
			Expect(line.Opcode).To(Equal(isa.OpExtFunDat))
			Expect(line.Spans).To(Equal([]core.Span{
				span("FUN set_A1 ", core.Instruction),
				span("$a", core.Variable, "a"),
			}))
		})

		It("should flag an unknown name with one argument", func() {
			line := classify("FUN nope $a")
			Expect(line.Spans).To(Equal([]core.Span{
				span("FUN ", core.Instruction),
				span("nope ", core.Error),
				span("$a", core.Variable, "a"),
			}))
		})

		It("should merge keyword and known name with two arguments", func() {
			line := classify("FUN set_A1_A2 $a $b")
			Expect(line.Opcode).To(Equal(isa.OpExtFunDat2))
			Expect(line.Spans).To(Equal([]core.Span{
				span("FUN set_A1_A2 ", core.Instruction),
				span("$a ", core.Variable, "a"),
				span("$b", core.Variable, "b"),
			}))
		})

		It("should flag an unknown name with two arguments", func() {
			line := classify("FUN nope $a $b")
			Expect(line.Spans).To(Equal([]core.Span{
				span("FUN ", core.Instruction),
				span("nope ", core.Error),
				span("$a ", core.Variable, "a"),
				span("$b", core.Variable, "b"),
			}))
		})

		It("should classify a known name returning into a register", func() {
			line := classify("FUN @r get_A1")
			Expect(line.Opcode).To(Equal(isa.OpExtFunRet))
			Expect(line.Spans).To(Equal([]core.Span{
				span("FUN ", core.Instruction),
				span("@r ", core.Variable, "r"),
				span("get_A1", core.Instruction),
			}))
		})

		It("should flag an unknown name returning into a register", func() {
			line := classify("FUN @r nope")
			Expect(line.Spans).To(Equal([]core.Span{
				span("FUN ", core.Instruction),
				span("@r ", core.Variable, "r"),
				span("nope", core.Error),
			}))
		})

		It("should report the register form with one argument as an error", func() {
			line := classify("FUN @r get_A1 $a")
			Expect(line.Matched).To(BeTrue())
			Expect(line.Opcode).To(Equal(isa.OpExtFunRetDat))
			Expect(line.Spans).To(Equal([]core.Span{span("FUN @r get_A1 $a", core.Error)}))
		})

		It("should flag a known name in the register form with two arguments", func() {
			line := classify("FUN @r get_A1 $a $b")
			Expect(line.Opcode).To(Equal(isa.OpExtFunRetDat2))
			Expect(line.Spans).To(Equal([]core.Span{
				span("FUN ", core.Instruction),
				span("@r ", core.Variable, "r"),
				span("get_A1 ", core.Error),
				span("$a ", core.Variable, "a"),
				span("$b", core.Variable, "b"),
			}))
		})

		It("should accept an unknown name in the register form with two arguments", func() {
			line := classify("FUN @r nope $a $b")
			Expect(line.HasError()).To(BeFalse())
			Expect(line.Spans[2]).To(Equal(span("nope ", core.Instruction)))
		})
	})

	Context("Malformed text", func() {
		It("should classify an unparseable line as one error span", func() {
			line := classify("garbage !! text")
			Expect(line.Matched).To(BeFalse())
			Expect(line.Spans).To(Equal([]core.Span{span("garbage !! text", core.Error)}))
		})

		It("should locate error spans", func() {
			line := classify("FUN nope $a")
			errs, offsets := line.ErrorSpans()
			Expect(errs).To(HaveLen(1))
			Expect(offsets).To(Equal([]int{4}))
		})
	})

	Context("Whitespace", func() {
		It("should accept non-breaking spaces as separators", func() {
			line := classify("SET\u00a0@a\u00a0$b")
			Expect(line.Opcode).To(Equal(isa.OpSetDat))
			Expect(line.Spans[1].Ref).To(Equal("a"))
		})

		It("should accept a vertical tab before an instruction", func() {
			Expect(classify("\vNOP").Opcode).To(Equal(isa.OpNop))
		})

		It("should keep carriage returns in the comment text", func() {
			line := classify("^comment windows\r")
			Expect(line.String()).To(Equal("^comment windows\r"))
		})

		It("should keep the comment text after a line separator", func() {
			line := classify("^comment one\u2028two")
			Expect(line.Spans).To(Equal([]core.Span{
				span("^comment", core.Directive),
				span(" one\u2028two", core.Comment),
			}))
		})
	})

	Context("Multi-line text", func() {
		It("should return one line per input line in order", func() {
			lines := c.Classify("label:\nNOP\n\ngarbage")
			Expect(lines).To(HaveLen(4))
			for i, line := range lines {
				Expect(line.Index).To(Equal(i))
			}
			Expect(lines[0].Opcode).To(Equal(isa.OpLabel))
			Expect(lines[1].Opcode).To(Equal(isa.OpNop))
			Expect(lines[2].Opcode).To(Equal(isa.OpBlank))
			Expect(lines[3].Matched).To(BeFalse())
		})

		It("should return one blank line for empty text", func() {
			lines := core.Classify("")
			Expect(lines).To(HaveLen(1))
			Expect(lines[0].Opcode).To(Equal(isa.OpBlank))
		})

		It("should keep a trailing empty line", func() {
			Expect(core.Classify("NOP\n")).To(HaveLen(2))
		})
	})
})

var _ = Describe("Category", func() {
	It("should name presentation classes", func() {
		Expect(core.Instruction.Class()).To(Equal("asmInstruction"))
		Expect(core.Declaration.Class()).To(Equal("asmVariable"))
		Expect(core.PlainText.Class()).To(BeEmpty())
		Expect(core.Error.String()).To(Equal("error"))
		Expect(core.Category(42).String()).To(Equal("unknown"))
	})
})

var _ = Describe("Line", func() {
	It("should concatenate span texts", func() {
		line := core.Line{Spans: []core.Span{
			span("SET ", core.Instruction),
			span("@a ", core.Variable, "a"),
			span("$b", core.Variable, "b"),
		}}
		Expect(line.String()).To(Equal("SET @a $b"))
		Expect(strings.Contains(line.String(), "@a")).To(BeTrue())
	})
})
