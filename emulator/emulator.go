// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives a single cell.Cell: it places instruction
// words in memory and repeatedly runs an address, reporting the value
// of a watched register.
package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/cell/cell"
	"github.com/ezrec/cell/internal"
)

const (
	DEFAULT_CODE = cell.Code(0x102F) // add.r0.r0.#15
)

var _emulator_defines = map[string]string{
	"DEFAULT_CODE": fmt.Sprintf("0x%04X", uint16(DEFAULT_CODE)),
}

// Emulator state: one Cell and its reserved opcode handlers.
type Emulator struct {
	Verbose    bool // If set, enables verbose logging.
	*cell.Cell      // Reference to the cell simulation.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cell: cell.NewCell(),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cell.Defines(),
	)
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cell.Verbose = emu.Verbose
	emu.Cell.Reset()
}

// Load places codes in memory starting at addr, wrapping at the end of
// memory.
func (emu *Emulator) Load(addr uint16, codes ...cell.Code) {
	for n, code := range codes {
		emu.Cell.Write(addr+uint16(n), uint16(code))
	}
}

// Tick runs the instruction at addr.
func (emu *Emulator) Tick(addr uint16) (err error) {
	emu.Cell.Verbose = emu.Verbose

	err = emu.Cell.RunInstruction(addr)
	if err != nil {
		err = &ErrRuntime{Addr: addr % cell.MEMORY_SIZE, Err: err}
	}

	return
}

// Run executes the instruction at addr count times, yielding the
// iteration and the value of reg after each. A negative count runs until
// the consumer stops. Iteration stops at the first error, which is
// stored in *errp when errp is not nil.
func (emu *Emulator) Run(addr uint16, count int, reg cell.CodeReg, errp *error) iter.Seq2[int, uint16] {
	return func(yield func(n int, value uint16) bool) {
		for n := 0; count < 0 || n < count; n++ {
			err := emu.Tick(addr)
			if err != nil {
				if emu.Verbose {
					log.Printf("emulator: %v", err)
				}
				if errp != nil {
					*errp = err
				}
				return
			}
			if !yield(n, emu.Cell.Reg(reg)) {
				return
			}
		}
	}
}
