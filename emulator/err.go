package emulator

import (
	"github.com/ezrec/cell/translate"
)

var f = translate.From

// ErrRuntime indicates the address of a runtime error.
type ErrRuntime struct {
	Addr uint16
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("addr 0x%02x %v", err.Addr, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
