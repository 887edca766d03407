package cpu

import "fmt"

// Operation is the instruction family an opcode decodes to.
type Operation uint8

const (
	// OpInvalid is one of the opcodes with no instruction behind it.
	// Executing it locks up the CPU.
	OpInvalid Operation = iota

	// block 0
	OpNop
	OpStop
	OpLdR16N16
	OpLdMemA
	OpLdAMem
	OpLdA16SP
	OpIncR16
	OpDecR16
	OpAddHLR16
	OpIncR8
	OpDecR8
	OpLdR8N8
	OpJr
	OpJrCond
	OpRlca
	OpRrca
	OpRla
	OpRra
	OpDaa
	OpCpl
	OpScf
	OpCcf

	// block 1
	OpLdR8R8
	OpHalt

	// block 2, and the n8 forms in block 3
	OpAdd
	OpAdc
	OpSub
	OpSbc
	OpAnd
	OpXor
	OpOr
	OpCp

	// block 3
	OpRet
	OpRetCond
	OpReti
	OpPop
	OpPush
	OpJp
	OpJpCond
	OpJpHL
	OpCall
	OpCallCond
	OpRst
	OpPrefix
	OpLdhA8A
	OpLdhCA
	OpLdA16A
	OpLdhAA8
	OpLdhAC
	OpLdAA16
	OpAddSPE8
	OpLdHLSPE8
	OpLdSPHL
	OpDi
	OpEi

	// CB prefixed
	OpRlc
	OpRrc
	OpRl
	OpRr
	OpSla
	OpSra
	OpSwap
	OpSrl
	OpBit
	OpRes
	OpSet
)

var operationNames = map[Operation]string{
	OpInvalid:  "ILLEGAL",
	OpNop:      "NOP",
	OpStop:     "STOP",
	OpLdR16N16: "LD",
	OpLdMemA:   "LD",
	OpLdAMem:   "LD",
	OpLdA16SP:  "LD",
	OpIncR16:   "INC",
	OpDecR16:   "DEC",
	OpAddHLR16: "ADD",
	OpIncR8:    "INC",
	OpDecR8:    "DEC",
	OpLdR8N8:   "LD",
	OpJr:       "JR",
	OpJrCond:   "JR",
	OpRlca:     "RLCA",
	OpRrca:     "RRCA",
	OpRla:      "RLA",
	OpRra:      "RRA",
	OpDaa:      "DAA",
	OpCpl:      "CPL",
	OpScf:      "SCF",
	OpCcf:      "CCF",
	OpLdR8R8:   "LD",
	OpHalt:     "HALT",
	OpAdd:      "ADD",
	OpAdc:      "ADC",
	OpSub:      "SUB",
	OpSbc:      "SBC",
	OpAnd:      "AND",
	OpXor:      "XOR",
	OpOr:       "OR",
	OpCp:       "CP",
	OpRet:      "RET",
	OpRetCond:  "RET",
	OpReti:     "RETI",
	OpPop:      "POP",
	OpPush:     "PUSH",
	OpJp:       "JP",
	OpJpCond:   "JP",
	OpJpHL:     "JP",
	OpCall:     "CALL",
	OpCallCond: "CALL",
	OpRst:      "RST",
	OpPrefix:   "PREFIX",
	OpLdhA8A:   "LDH",
	OpLdhCA:    "LDH",
	OpLdA16A:   "LD",
	OpLdhAA8:   "LDH",
	OpLdhAC:    "LDH",
	OpLdAA16:   "LD",
	OpAddSPE8:  "ADD",
	OpLdHLSPE8: "LD",
	OpLdSPHL:   "LD",
	OpDi:       "DI",
	OpEi:       "EI",
	OpRlc:      "RLC",
	OpRrc:      "RRC",
	OpRl:       "RL",
	OpRr:       "RR",
	OpSla:      "SLA",
	OpSra:      "SRA",
	OpSwap:     "SWAP",
	OpSrl:      "SRL",
	OpBit:      "BIT",
	OpRes:      "RES",
	OpSet:      "SET",
}

// String returns the mnemonic of the operation, without operands.
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", uint8(o))
}
