package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCell(f *testing.F) {
	for op := range uint16(OPCODE_COUNT) {
		f.Add(op<<12, uint16(0), uint16(0))
		f.Add((op<<12)|0x0fff, uint16(127), uint16(0xffff))
		f.Add((op<<12)|0x0a5a, uint16(64), uint16(0x8000))
	}

	f.Fuzz(func(t *testing.T, word uint16, pc uint16, fill uint16) {
		assert := assert.New(t)

		cell := NewCell()
		cell.SetPc(pc)
		for n := range cell.Register {
			cell.Register[n] = fill ^ uint16(n*0x1111)
		}
		for n := range cell.Memory {
			cell.Memory[n] = fill + uint16(n*3)
		}
		cell.Write(pc, word)
		prior := *cell

		code := Code(word)

		err := cell.RunInstruction(pc)
		assert.NoError(err)

		assert.Less(cell.Pc, uint16(MEMORY_SIZE))
		assert.Equal(1, cell.Ticks)

		op := code.Opcode()
		if op.SetsSign() {
			dst := CodeReg((word >> 9) & 7)
			assert.Equal(SignOf(cell.Reg(dst)), cell.LastSign, code.String())
		} else {
			assert.Equal(prior.LastSign, cell.LastSign, code.String())
		}

		switch op {
		case OP_BR, OP_JMP, OP_JSR:
			assert.Equal(prior.Memory, cell.Memory, code.String())
		case OP_LOOK, OP_SETBC, OP_SNDACC:
			assert.Equal(1, cell.Noops)
			assert.Equal(prior.Register, cell.Register)
			assert.Equal(prior.Pc, cell.Pc)
		}
	})
}
