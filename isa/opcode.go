package isa

import "fmt"

// Opcode identifies an instruction form or a directive.
type Opcode uint8

// Pseudo opcodes for lines that are not instructions.
const (
	OpBlank   Opcode = 0xf0
	OpLabel   Opcode = 0xf1
	OpComment Opcode = 0xf2
	OpDeclare Opcode = 0xf3
	OpConst   Opcode = 0xf4
	OpProgram Opcode = 0xf5
)

const (
	OpSetVal        Opcode = 0x01 // SET @var #0000000000000001
	OpSetDat        Opcode = 0x02 // SET @var $var
	OpClrDat        Opcode = 0x03
	OpIncDat        Opcode = 0x04
	OpDecDat        Opcode = 0x05
	OpAddDat        Opcode = 0x06
	OpSubDat        Opcode = 0x07
	OpMulDat        Opcode = 0x08
	OpDivDat        Opcode = 0x09
	OpBorDat        Opcode = 0x0a
	OpAndDat        Opcode = 0x0b
	OpXorDat        Opcode = 0x0c
	OpNotDat        Opcode = 0x0d
	OpSetInd        Opcode = 0x0e // SET @var $($ptr)
	OpSetIdx        Opcode = 0x0f // SET @var $($ptr + $idx)
	OpPshDat        Opcode = 0x10
	OpPopDat        Opcode = 0x11
	OpJmpSub        Opcode = 0x12
	OpRetSub        Opcode = 0x13
	OpIndDat        Opcode = 0x14 // SET @($ptr) $var
	OpIdxDat        Opcode = 0x15 // SET @($ptr + $idx) $var
	OpModDat        Opcode = 0x16
	OpShlDat        Opcode = 0x17
	OpShrDat        Opcode = 0x18
	OpJmpAdr        Opcode = 0x1a
	OpBzrDat        Opcode = 0x1b
	OpBnzDat        Opcode = 0x1e
	OpBgtDat        Opcode = 0x1f
	OpBltDat        Opcode = 0x20
	OpBgeDat        Opcode = 0x21
	OpBleDat        Opcode = 0x22
	OpBeqDat        Opcode = 0x23
	OpBneDat        Opcode = 0x24
	OpSlpDat        Opcode = 0x25
	OpFizDat        Opcode = 0x26
	OpStzDat        Opcode = 0x27
	OpFinImd        Opcode = 0x28
	OpStpImd        Opcode = 0x29
	OpErrAdr        Opcode = 0x2b
	OpSetPcs        Opcode = 0x30
	OpExtFun        Opcode = 0x32 // FUN name
	OpExtFunDat     Opcode = 0x33 // FUN name $a
	OpExtFunDat2    Opcode = 0x34 // FUN name $a $b
	OpExtFunRet     Opcode = 0x35 // FUN @ret name
	OpExtFunRetDat  Opcode = 0x36 // FUN @ret name $a
	OpExtFunRetDat2 Opcode = 0x37 // FUN @ret name $a $b
	OpNop           Opcode = 0x7f
)

var mnemonics = map[Opcode]string{
	OpBlank:   "BLANK",
	OpLabel:   "LABEL",
	OpComment: "COMMENT",
	OpDeclare: "DECLARE",
	OpConst:   "CONST",
	OpProgram: "PROGRAM",

	OpSetVal:        "SET_VAL",
	OpSetDat:        "SET_DAT",
	OpClrDat:        "CLR_DAT",
	OpIncDat:        "INC_DAT",
	OpDecDat:        "DEC_DAT",
	OpAddDat:        "ADD_DAT",
	OpSubDat:        "SUB_DAT",
	OpMulDat:        "MUL_DAT",
	OpDivDat:        "DIV_DAT",
	OpBorDat:        "BOR_DAT",
	OpAndDat:        "AND_DAT",
	OpXorDat:        "XOR_DAT",
	OpNotDat:        "NOT_DAT",
	OpSetInd:        "SET_IND",
	OpSetIdx:        "SET_IDX",
	OpPshDat:        "PSH_DAT",
	OpPopDat:        "POP_DAT",
	OpJmpSub:        "JMP_SUB",
	OpRetSub:        "RET_SUB",
	OpIndDat:        "IND_DAT",
	OpIdxDat:        "IDX_DAT",
	OpModDat:        "MOD_DAT",
	OpShlDat:        "SHL_DAT",
	OpShrDat:        "SHR_DAT",
	OpJmpAdr:        "JMP_ADR",
	OpBzrDat:        "BZR_DAT",
	OpBnzDat:        "BNZ_DAT",
	OpBgtDat:        "BGT_DAT",
	OpBltDat:        "BLT_DAT",
	OpBgeDat:        "BGE_DAT",
	OpBleDat:        "BLE_DAT",
	OpBeqDat:        "BEQ_DAT",
	OpBneDat:        "BNE_DAT",
	OpSlpDat:        "SLP_DAT",
	OpFizDat:        "FIZ_DAT",
	OpStzDat:        "STZ_DAT",
	OpFinImd:        "FIN_IMD",
	OpStpImd:        "STP_IMD",
	OpErrAdr:        "ERR_ADR",
	OpSetPcs:        "SET_PCS",
	OpExtFun:        "EXT_FUN",
	OpExtFunDat:     "EXT_FUN_DAT",
	OpExtFunDat2:    "EXT_FUN_DAT_2",
	OpExtFunRet:     "EXT_FUN_RET",
	OpExtFunRetDat:  "EXT_FUN_RET_DAT",
	OpExtFunRetDat2: "EXT_FUN_RET_DAT_2",
	OpNop:           "NOP",
}

func (op Opcode) String() string {
	if name, ok := mnemonics[op]; ok {
		return name
	}

	return fmt.Sprintf("0x%02x", uint8(op))
}

// IsPseudo reports whether op is a directive rather than an instruction.
func (op Opcode) IsPseudo() bool {
	return op >= OpBlank
}

// IsFunctionCall reports whether op is one of the FUN call forms.
func (op Opcode) IsFunctionCall() bool {
	return op >= OpExtFun && op <= OpExtFunRetDat2
}
