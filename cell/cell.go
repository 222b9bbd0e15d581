// Package cell simulates a single Cell processing unit: a small 16-bit
// word machine with an LC-3 derived instruction set, eight registers and
// 128 words of memory.
package cell

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

const (
	MEMORY_SIZE    = 128 // Words of memory.
	REGISTER_COUNT = 8   // Number of registers.
	REG_LINK       = 7   // Register holding the JSR return address.
)

var _cell_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"REG_LINK":       fmt.Sprintf("%d", REG_LINK),
}

// Cell is the architectural state of one processing unit.
//
// Every address derived from arithmetic is reduced modulo MEMORY_SIZE
// before use, so no instruction can reach outside Memory.
type Cell struct {
	Verbose bool // Set to enable verbose logging.

	Pc       uint16                 // Program counter, always < MEMORY_SIZE.
	LastSign Sign                   // Condition flag.
	Register [REGISTER_COUNT]uint16 // Register file.
	Memory   [MEMORY_SIZE]uint16    // Word addressed memory.

	Ticks int // Instructions executed.
	Noops int // Reserved opcodes dispatched to the default no-op.

	handler [OPCODE_COUNT]Handler // Reserved opcode extension hooks.
}

// NewCell creates a Cell with all state zeroed.
func NewCell() (cell *Cell) {
	cell = &Cell{}

	return
}

// Defines for the cell.
func (cell *Cell) Defines() iter.Seq2[string, string] {
	return maps.All(_cell_defines)
}

// Reset the cell state.
// - Clears the program counter, registers and memory.
// - Sets the condition flag to zero.
// - Zeros statistics counters.
//
// Installed reserved opcode handlers are kept.
func (cell *Cell) Reset() {
	if cell.Verbose {
		log.Printf("cell: reset")
	}

	cell.Pc = 0
	cell.LastSign = SIGN_ZERO
	clear(cell.Register[:])
	clear(cell.Memory[:])
	cell.Ticks = 0
	cell.Noops = 0
}

// SetPc sets the program counter, modulo MEMORY_SIZE.
func (cell *Cell) SetPc(value uint16) {
	cell.Pc = value % MEMORY_SIZE
}

// Read returns the memory word at addr, modulo MEMORY_SIZE.
func (cell *Cell) Read(addr uint16) uint16 {
	return cell.Memory[addr%MEMORY_SIZE]
}

// Write sets the memory word at addr, modulo MEMORY_SIZE.
func (cell *Cell) Write(addr uint16, value uint16) {
	cell.Memory[addr%MEMORY_SIZE] = value
}

// Reg returns the value of a register.
func (cell *Cell) Reg(reg CodeReg) uint16 {
	return cell.Register[reg&MASK_REG]
}

// SetReg sets the value of a register. The condition flag is not changed.
func (cell *Cell) SetReg(reg CodeReg, value uint16) {
	cell.Register[reg&MASK_REG] = value
}

// pcOffset returns pc + offset, wrapped to 16 bits and reduced to an
// address.
func (cell *Cell) pcOffset(offset uint16) uint16 {
	return (cell.Pc + offset) % MEMORY_SIZE
}

// String returns the current cell state as a string.
func (cell *Cell) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cell.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "sign", cell.LastSign)
	for n, val := range cell.Register {
		text += fmt.Sprintf("% 5s: %04X\n", CodeReg(n).String(), val)
	}

	return
}
