package cell

import (
	"errors"

	"github.com/ezrec/cell/translate"
)

var f = translate.From

var (
	ErrOpcodeNotReserved = errors.New(f("opcode not reserved"))
	ErrHandler           = errors.New(f("handler failed"))
)

// ErrOpcode annotates a failure with the instruction word that caused it.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("opcode 0x%04x %v", uint16(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
