package cell

import (
	"log"
)

// Handler executes a reserved opcode (LOOK, SETBC or SNDACC).
//
// Inter-cell traffic must be modeled by the handler as explicit message
// passing; a handler must never share a Cell's registers or memory with
// another Cell.
type Handler interface {
	Handle(cell *Cell, code Code) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(cell *Cell, code Code) error

func (hf HandlerFunc) Handle(cell *Cell, code Code) error {
	return hf(cell, code)
}

// SetHandler installs the handler for a reserved opcode.
// A nil handler restores the default no-op.
func (cell *Cell) SetHandler(op Opcode, handler Handler) (err error) {
	if !op.Reserved() {
		err = ErrOpcodeNotReserved
		return
	}

	cell.handler[op] = handler

	return
}

// GetHandler returns the handler installed for op, or nil.
func (cell *Cell) GetHandler(op Opcode) (handler Handler) {
	if op.Reserved() {
		handler = cell.handler[op]
	}
	return
}

// reserved dispatches a reserved opcode.
func (cell *Cell) reserved(code Code) (err error) {
	handler := cell.handler[code.Opcode()]
	if handler == nil {
		if cell.Verbose {
			log.Printf("cell: %v: no-op", code.Opcode())
		}
		cell.Noops++
		return
	}

	err = handler.Handle(cell, code)

	return
}
