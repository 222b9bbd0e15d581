package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cell/cell"
)

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		src  string
		err  error
	}){
		{"ok", "def handle(code):\n    pass\n", nil},
		{"missing", "x = 1\n", ErrScriptMissingHandle},
		{"not_callable", "handle = 3\n", ErrScriptMissingHandle},
		{"toplevel_builtin", "x = pc()\ndef handle(code):\n    pass\n", ErrScriptNoCell},
	}

	for _, entry := range table {
		handler, err := Compile(entry.name, entry.src)
		if entry.err == nil {
			assert.NoError(err, entry.name)
			assert.NotNil(handler, entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
			assert.Nil(handler, entry.name)
		}
	}

	_, err := Compile("syntax", "def handle(code)\n")
	var serr *ErrScript
	assert.True(errors.As(err, &serr))
	assert.Equal("syntax", serr.Name)
}

func TestHandler_Builtins(t *testing.T) {
	assert := assert.New(t)

	src := `
def handle(code):
    if code >> 12 != 8:
        fail("wrong opcode")
    p = payload()
    set_reg(1, reg(1) + p)
    set_mem(200, mem(3) + 1)
    set_reg(2, 0x8000)
    update_sign(2)
    set_pc(pc() + 130)
`
	handler, err := Compile("look", src)
	assert.NoError(err)

	c := cell.NewCell()
	c.SetPc(5)
	c.Register[1] = 0x10
	c.Memory[3] = 0x41
	err = c.SetHandler(cell.OP_LOOK, handler)
	assert.NoError(err)

	err = c.Execute(cell.MakeCodeReserved(cell.OP_LOOK, 0x020))
	assert.NoError(err)

	assert.Equal(uint16(0x30), c.Register[1])
	assert.Equal(uint16(0x42), c.Memory[72])
	assert.Equal(uint16(0x8000), c.Register[2])
	assert.Equal(cell.SIGN_NEGATIVE, c.LastSign)
	assert.Equal(uint16(7), c.Pc)
	assert.Equal(0, c.Noops)
}

func TestHandler_Fail(t *testing.T) {
	assert := assert.New(t)

	handler, err := Compile("sndacc", "def handle(code):\n    fail('refused')\n")
	assert.NoError(err)

	c := cell.NewCell()
	c.SetHandler(cell.OP_SNDACC, handler)

	err = c.Execute(cell.MakeCodeReserved(cell.OP_SNDACC, 0))
	assert.ErrorIs(err, cell.ErrHandler)

	var serr *ErrScript
	assert.True(errors.As(err, &serr))
	assert.Equal("sndacc", serr.Name)
	assert.Contains(serr.Error(), "refused")
}
