package isa

var defaultISA = newDefaultISA()

// Default returns the SC assembly grammar. It is shared and must be treated
// as read-only.
func Default() *ISA {
	return defaultISA
}

func newDefaultISA() *ISA {
	isa := NewISA("SC Assembly")

	// Directives come first so that no instruction pattern shadows them.
	isa.RegisterPattern(OpBlank, 0, `^\s*$`)
	isa.RegisterPattern(OpLabel, 0, `^\s*(\w+):\s*$`)
	isa.RegisterPattern(OpComment, 0, `^(\s*\^comment)(\s+.*)`)
	isa.RegisterPattern(OpDeclare, 0, `^(\s*\^declare)(\s+\w+\s*)$`)
	isa.RegisterPattern(OpConst, 0, `^(\s*\^const)(\s+.*)`)
	isa.RegisterPattern(OpProgram, 0, `^(\s*\^program\s+\w+)(\s+(?s:.+))$`)

	isa.RegisterPattern(OpSetVal, 13, `^(\s*SET\s+)(@\w+\s+)(#[\da-f]{16}\b\s*)$`)
	isa.RegisterPattern(OpSetDat, 9, `^(\s*SET\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpClrDat, 5, `^(\s*CLR\s+)(@\w+\s*)$`)
	isa.RegisterPattern(OpIncDat, 5, `^(\s*INC\s+)(@\w+\s*)$`)
	isa.RegisterPattern(OpDecDat, 5, `^(\s*DEC\s+)(@\w+\s*)$`)
	isa.RegisterPattern(OpAddDat, 9, `^(\s*ADD\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpSubDat, 9, `^(\s*SUB\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpMulDat, 9, `^(\s*MUL\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpDivDat, 9, `^(\s*DIV\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpBorDat, 9, `^(\s*BOR\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpAndDat, 9, `^(\s*AND\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpXorDat, 9, `^(\s*XOR\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpNotDat, 5, `^(\s*NOT\s+)(@\w+\s*)$`)
	isa.RegisterPattern(OpSetInd, 9, `^(\s*SET\s+)(@\w+)(\s+\$\()(\$\w+)(\)\s*)$`)
	isa.RegisterPattern(OpSetIdx, 13, `^(\s*SET\s+)(@\w+\s+)(\$\()(\$\w+)(\s*\+\s*)(\$\w+)(\)\s*)$`)
	isa.RegisterPattern(OpPshDat, 5, `^(\s*PSH\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpPopDat, 5, `^(\s*POP\s+)(@\w+\s*)$`)
	isa.RegisterPattern(OpJmpSub, 5, `^(\s*JSR\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpRetSub, 1, `^\s*RET\s*$`)
	isa.RegisterPattern(OpIndDat, 9, `^(\s*SET\s+)(@\()(\$\w+)(\)\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpIdxDat, 13, `^(\s*SET\s+)(@\()(\$\w+)(\s*\+\s*)(\$\w+)(\)\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpModDat, 9, `^(\s*MOD\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpShlDat, 9, `^(\s*SHL\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpShrDat, 9, `^(\s*SHR\s+)(@\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpJmpAdr, 5, `^(\s*JMP\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpBzrDat, 6, `^(\s*BZR\s+)(\$\w+\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpBnzDat, 6, `^(\s*BNZ\s+)(\$\w+\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpBgtDat, 10, `^(\s*BGT\s+)(\$\w+\s+)(\$\w+\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpBltDat, 10, `^(\s*BLT\s+)(\$\w+\s+)(\$\w+\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpBgeDat, 10, `^(\s*BGE\s+)(\$\w+\s+)(\$\w+\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpBleDat, 10, `^(\s*BLE\s+)(\$\w+\s+)(\$\w+\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpBeqDat, 10, `^(\s*BEQ\s+)(\$\w+\s+)(\$\w+\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpBneDat, 10, `^(\s*BNE\s+)(\$\w+\s+)(\$\w+\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpSlpDat, 5, `^(\s*SLP\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpFizDat, 5, `^(\s*FIZ\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpStzDat, 5, `^(\s*STZ\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpFinImd, 1, `^\s*FIN\s*$`)
	isa.RegisterPattern(OpStpImd, 1, `^\s*STP\s*$`)
	isa.RegisterPattern(OpErrAdr, 5, `^(\s*ERR\s+)(:\w+\s*)$`)
	isa.RegisterPattern(OpSetPcs, 1, `^\s*PCS\s*$`)
	isa.RegisterPattern(OpExtFun, 3, `^(\s*FUN\s+)(\w+\s*)$`)
	isa.RegisterPattern(OpExtFunDat, 7, `^(\s*FUN\s+)(\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpExtFunDat2, 11, `^(\s*FUN\s+)(\w+\s+)(\$\w+\s+)(\$(\w+)\s*)$`)
	isa.RegisterPattern(OpExtFunRet, 7, `^(\s*FUN\s+)(@\w+\s+)(\w+\s*)$`)
	isa.RegisterPattern(OpExtFunRetDat, 11, `^\s*(FUN)\s+@(\w+)\s+(\w+)\s+\$(\w+)\s*$`)
	isa.RegisterPattern(OpExtFunRetDat2, 15, `^(\s*FUN\s+)(@\w+\s+)(\w+\s+)(\$\w+\s+)(\$\w+\s*)$`)
	isa.RegisterPattern(OpNop, 1, `^\s*NOP\s*$`)

	registerDefaultFunctions(isa)

	return isa
}

func registerDefaultFunctions(isa *ISA) {
	isa.RegisterFunction(0x0100, "get_A1")
	isa.RegisterFunction(0x0101, "get_A2")
	isa.RegisterFunction(0x0102, "get_A3")
	isa.RegisterFunction(0x0103, "get_A4")
	isa.RegisterFunction(0x0104, "get_B1")
	isa.RegisterFunction(0x0105, "get_B2")
	isa.RegisterFunction(0x0106, "get_B3")
	isa.RegisterFunction(0x0107, "get_B4")
	isa.RegisterFunction(0x0110, "set_A1")
	isa.RegisterFunction(0x0111, "set_A2")
	isa.RegisterFunction(0x0112, "set_A3")
	isa.RegisterFunction(0x0113, "set_A4")
	isa.RegisterFunction(0x0114, "set_A1_A2")
	isa.RegisterFunction(0x0115, "set_A3_A4")
	isa.RegisterFunction(0x0116, "set_B1")
	isa.RegisterFunction(0x0117, "set_B2")
	isa.RegisterFunction(0x0118, "set_B3")
	isa.RegisterFunction(0x0119, "set_B4")
	isa.RegisterFunction(0x011a, "set_B1_B2")
	isa.RegisterFunction(0x011b, "set_B3_B4")
	isa.RegisterFunction(0x0120, "clear_A")
	isa.RegisterFunction(0x0121, "clear_B")
	isa.RegisterFunction(0x0122, "clear_A_B")
	isa.RegisterFunction(0x0123, "copy_A_From_B")
	isa.RegisterFunction(0x0124, "copy_B_From_A")
	isa.RegisterFunction(0x0125, "check_A_Is_Zero")
	isa.RegisterFunction(0x0126, "check_B_Is_Zero")
	isa.RegisterFunction(0x0127, "check_A_equals_B")
	isa.RegisterFunction(0x0128, "swap_A_and_B")
	isa.RegisterFunction(0x0129, "OR_A_with_B")
	isa.RegisterFunction(0x012a, "OR_B_with_A")
	isa.RegisterFunction(0x012b, "AND_A_with_B")
	isa.RegisterFunction(0x012c, "AND_B_with_A")
	isa.RegisterFunction(0x012d, "XOR_A_with_B")
	isa.RegisterFunction(0x012e, "XOR_B_with_A")
	isa.RegisterFunction(0x0140, "add_A_to_B")
	isa.RegisterFunction(0x0141, "add_B_to_A")
	isa.RegisterFunction(0x0142, "sub_A_from_B")
	isa.RegisterFunction(0x0143, "sub_B_from_A")
	isa.RegisterFunction(0x0144, "mul_A_by_B")
	isa.RegisterFunction(0x0145, "mul_B_by_A")
	isa.RegisterFunction(0x0146, "div_A_by_B")
	isa.RegisterFunction(0x0147, "div_B_by_A")

	isa.RegisterFunction(0x0200, "MD5_A_to_B")
	isa.RegisterFunction(0x0201, "check_MD5_A_with_B")
	isa.RegisterFunction(0x0202, "HASH160_A_to_B")
	isa.RegisterFunction(0x0203, "check_HASH160_A_with_B")
	isa.RegisterFunction(0x0204, "SHA256_A_to_B")
	isa.RegisterFunction(0x0205, "check_SHA256_A_with_B")

	isa.RegisterFunction(0x0300, "get_Block_Timestamp")
	isa.RegisterFunction(0x0301, "get_Creation_Timestamp")
	isa.RegisterFunction(0x0302, "get_Last_Block_Timestamp")
	isa.RegisterFunction(0x0303, "put_Last_Block_Hash_In_A")
	isa.RegisterFunction(0x0304, "A_to_Tx_after_Timestamp")
	isa.RegisterFunction(0x0305, "get_Type_for_Tx_in_A")
	isa.RegisterFunction(0x0306, "get_Amount_for_Tx_in_A")
	isa.RegisterFunction(0x0307, "get_Timestamp_for_Tx_in_A")
	isa.RegisterFunction(0x0308, "get_Ticket_Id_for_Tx_in_A")
	isa.RegisterFunction(0x0309, "message_from_Tx_in_A_to_B")
	isa.RegisterFunction(0x030a, "B_to_Address_of_Tx_in_A")
	isa.RegisterFunction(0x030b, "B_to_Address_of_Creator")

	isa.RegisterFunction(0x0400, "get_Current_Balance")
	isa.RegisterFunction(0x0401, "get_Previous_Balance")
	isa.RegisterFunction(0x0402, "send_to_Address_in_B")
	isa.RegisterFunction(0x0403, "send_All_to_Address_in_B")
	isa.RegisterFunction(0x0404, "send_Old_to_Address_in_B")
	isa.RegisterFunction(0x0405, "send_A_to_Address_in_B")
	isa.RegisterFunction(0x0406, "add_Minutes_to_Timestamp")
}
