// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"maps"
	"slices"

	"github.com/ezrec/cell/cell"
	"github.com/ezrec/cell/emulator"
	"github.com/ezrec/cell/script"
)

func main() {
	var word uint
	var addr uint
	var count int
	var reg uint
	var hook string
	var defines bool
	var verbose bool

	flag.UintVar(&word, "w", uint(emulator.DEFAULT_CODE), "Instruction word to place at the address")
	flag.UintVar(&addr, "a", 0, "Address to run")
	flag.IntVar(&count, "n", 10000, "Iterations, negative to run forever")
	flag.UintVar(&reg, "r", 0, "Register to print after each iteration")
	flag.StringVar(&hook, "s", "", ".star script handling the reserved opcodes")
	flag.BoolVar(&defines, "defines", false, "Print the defines and exit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if word > 0xffff {
		log.Fatalf("%v: -w 0x%x is wider than 16 bits", os.Args[0], word)
	}

	if reg >= cell.REGISTER_COUNT {
		log.Fatalf("%v: -r %d is not a register", os.Args[0], reg)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if defines {
		all := maps.Collect(emu.Defines())
		for _, key := range slices.Sorted(maps.Keys(all)) {
			fmt.Printf("%v=%v\n", key, all[key])
		}
		return
	}

	if len(hook) != 0 {
		src, err := os.ReadFile(hook)
		if err != nil {
			log.Fatalf("%v: %v", hook, err)
		}
		handler, err := script.Compile(hook, string(src))
		if err != nil {
			log.Fatalf("%v: %v", hook, err)
		}
		handler.Verbose = verbose
		for _, op := range []cell.Opcode{cell.OP_LOOK, cell.OP_SETBC, cell.OP_SNDACC} {
			err = emu.Cell.SetHandler(op, handler)
			if err != nil {
				log.Fatalf("%v: %v", hook, err)
			}
		}
	}

	emu.Reset()
	emu.Load(uint16(addr), cell.Code(word))

	var err error
	for n, value := range emu.Run(uint16(addr), count, cell.CodeReg(reg), &err) {
		fmt.Printf("%v: %v\n", n, value)
	}
	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		log.Printf("cell: %d ticks, %d no-ops\n%v", emu.Cell.Ticks, emu.Cell.Noops, emu.Cell)
	}
}
