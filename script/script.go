// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script implements reserved opcode handlers in Starlark.
//
// A script must define a function `handle(code)`, called with the
// instruction word each time its opcode is dispatched. The cell state is
// reached through builtins:
//
//	pc()            set_pc(value)
//	reg(index)      set_reg(index, value)
//	mem(addr)       set_mem(addr, value)
//	update_sign(index)
//	payload()
//
// All writes pass through the cell's accessors, so addresses and the
// program counter stay within memory.
package script

import (
	"errors"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cell/cell"
	"github.com/ezrec/cell/translate"
)

var f = translate.From

var (
	ErrScriptMissingHandle = errors.New(f("script does not define handle(code)"))
	ErrScriptNoCell        = errors.New(f("script builtin called outside of a handler"))
)

const (
	localCell = "cell"
	localCode = "code"
)

// ErrScript wraps a Starlark failure with the script name.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("script %v: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// Handler is a cell.Handler backed by a Starlark `handle` function.
type Handler struct {
	Verbose bool // If set, logs each call and print() output.

	Name   string
	handle starlark.Callable
}

var _ cell.Handler = (*Handler)(nil)

// Compile executes src once and returns a Handler bound to the `handle`
// function it defines.
func Compile(name string, src string) (handler *Handler, err error) {
	handler = &Handler{Name: name}

	thread := handler.thread()
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, thread, name, src, builtins)
	if err != nil {
		err = &ErrScript{Name: name, Err: err}
		handler = nil
		return
	}

	fn, ok := dict["handle"].(starlark.Callable)
	if !ok {
		err = &ErrScript{Name: name, Err: ErrScriptMissingHandle}
		handler = nil
		return
	}

	handler.handle = fn

	return
}

func (handler *Handler) thread() *starlark.Thread {
	return &starlark.Thread{
		Name: handler.Name,
		Print: func(_ *starlark.Thread, msg string) {
			if handler.Verbose {
				log.Printf("script: %v: %v", handler.Name, msg)
			}
		},
	}
}

// Handle calls the script's `handle(code)` against c.
func (handler *Handler) Handle(c *cell.Cell, code cell.Code) (err error) {
	if handler.Verbose {
		log.Printf("script: %v: %v", handler.Name, code)
	}

	thread := handler.thread()
	thread.SetLocal(localCell, c)
	thread.SetLocal(localCode, code)

	args := starlark.Tuple{starlark.MakeInt(int(code))}
	_, err = starlark.Call(thread, handler.handle, args, nil)
	if err != nil {
		err = &ErrScript{Name: handler.Name, Err: err}
	}

	return
}
