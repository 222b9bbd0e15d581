package script

import (
	"go.starlark.net/starlark"

	"github.com/ezrec/cell/cell"
)

var builtins = starlark.StringDict{
	"pc":          starlark.NewBuiltin("pc", builtinPc),
	"set_pc":      starlark.NewBuiltin("set_pc", builtinSetPc),
	"reg":         starlark.NewBuiltin("reg", builtinReg),
	"set_reg":     starlark.NewBuiltin("set_reg", builtinSetReg),
	"mem":         starlark.NewBuiltin("mem", builtinMem),
	"set_mem":     starlark.NewBuiltin("set_mem", builtinSetMem),
	"update_sign": starlark.NewBuiltin("update_sign", builtinUpdateSign),
	"payload":     starlark.NewBuiltin("payload", builtinPayload),
}

// threadCell returns the cell bound to the running handler.
func threadCell(thread *starlark.Thread) (c *cell.Cell, err error) {
	c, ok := thread.Local(localCell).(*cell.Cell)
	if !ok || c == nil {
		err = ErrScriptNoCell
	}
	return
}

func makeWord(value uint16) starlark.Value {
	return starlark.MakeInt(int(value))
}

func builtinPc(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	c, err := threadCell(thread)
	if err != nil {
		return nil, err
	}
	return makeWord(c.Pc), nil
}

func builtinSetPc(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value); err != nil {
		return nil, err
	}
	c, err := threadCell(thread)
	if err != nil {
		return nil, err
	}
	c.SetPc(uint16(value))
	return starlark.None, nil
}

func builtinReg(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var index int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &index); err != nil {
		return nil, err
	}
	c, err := threadCell(thread)
	if err != nil {
		return nil, err
	}
	return makeWord(c.Reg(cell.CodeReg(index))), nil
}

func builtinSetReg(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var index, value int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &index, &value); err != nil {
		return nil, err
	}
	c, err := threadCell(thread)
	if err != nil {
		return nil, err
	}
	c.SetReg(cell.CodeReg(index), uint16(value))
	return starlark.None, nil
}

func builtinMem(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addr); err != nil {
		return nil, err
	}
	c, err := threadCell(thread)
	if err != nil {
		return nil, err
	}
	return makeWord(c.Read(uint16(addr))), nil
}

func builtinSetMem(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, value int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &addr, &value); err != nil {
		return nil, err
	}
	c, err := threadCell(thread)
	if err != nil {
		return nil, err
	}
	c.Write(uint16(addr), uint16(value))
	return starlark.None, nil
}

func builtinUpdateSign(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var index int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &index); err != nil {
		return nil, err
	}
	c, err := threadCell(thread)
	if err != nil {
		return nil, err
	}
	c.LastSign = cell.SignOf(c.Reg(cell.CodeReg(index)))
	return starlark.None, nil
}

func builtinPayload(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	code, ok := thread.Local(localCode).(cell.Code)
	if !ok {
		return nil, ErrScriptNoCell
	}
	return makeWord(code.Payload()), nil
}
