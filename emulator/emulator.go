// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/spirovm/cpu"
	"github.com/ezrec/spirovm/internal"
	"github.com/ezrec/spirovm/io"
)

const (
	ROM_BASE = 0x8000 // Address of the first ROM byte.
	ROM_SIZE = 0x1000 // 4K of ROM
)

var _emulator_defines = map[string]string{
	"ROM_BASE": fmt.Sprintf("%#x", ROM_BASE),
	"ROM_SIZE": fmt.Sprintf("%#x", ROM_SIZE),
}

// Emulator state. CPU + ROM memory.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Listing of the program decoded at the last reset.

	Rom   io.Rom // ROM memory.
	Entry uint32 // ROM address the program is decoded from.

	Frames int // Frames run since reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Rom:     *io.NewRom(ROM_BASE, ROM_SIZE),
		Entry:   ROM_BASE,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Load stores a ROM image at addr. The ROM is unchanged if the image
// does not fit.
func (emu *Emulator) Load(addr uint32, image []byte) (err error) {
	err = emu.Rom.Store(addr, image)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emu: loaded %d bytes at %#x", len(image), addr)
		emu.dump(addr, len(image))
	}

	return
}

// dump logs the non-zero ROM bytes in the n bytes at addr.
func (emu *Emulator) dump(addr uint32, n int) {
	for at, value := range emu.Rom.Bytes() {
		if at >= addr && uint64(at-addr) < uint64(n) {
			log.Printf("emu: %#x: %#02x", at, value)
		}
	}
}

// LoadProgram replaces the ROM contents with the program's binary image,
// stored at ROM_BASE, and sets the entry to ROM_BASE.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	image, err := prog.Binary()
	if err != nil {
		return
	}

	// Check the fit before the ROM is cleared.
	_, err = emu.Rom.Fetch(ROM_BASE, len(image))
	if err != nil {
		return
	}

	emu.Rom.Clear()
	err = emu.Load(ROM_BASE, image)
	if err != nil {
		return
	}

	emu.Entry = ROM_BASE

	return
}

// Reset the emulator, and decode the program from the ROM entry.
func (emu *Emulator) Reset() (err error) {
	image, err := emu.Rom.Image(emu.Entry)
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.LoadRom(image)
	emu.Program = emu.Cpu.Program()
	emu.Frames = 0

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	return emu.Cpu.Tick()
}

// Frame runs up to perFrame ticks, stopping early if the CPU halts.
func (emu *Emulator) Frame(perFrame int) (done bool) {
	for range perFrame {
		done = emu.Tick()
		if done {
			break
		}
	}

	emu.Frames++

	return
}

// Run runs frames until the CPU halts, or until the frame limit is
// reached if frames is positive. After each frame, the frame callback (if
// not nil) is given the CPU state.
//
// Run stops with the context's error if it is cancelled between frames.
func (emu *Emulator) Run(ctx context.Context, frames int, perFrame int, frame func(cp *cpu.Cpu) error) (err error) {
	defer func() {
		if err != nil {
			err = &ErrRuntime{Frame: emu.Frames, Err: err}
		}
	}()

	for frames <= 0 || emu.Frames < frames {
		err = ctx.Err()
		if err != nil {
			return
		}

		done := emu.Frame(max(perFrame, 1))

		if frame != nil {
			err = frame(emu.Cpu)
			if err != nil {
				return
			}
		}

		if done {
			if emu.Verbose {
				log.Printf("emu: halted after %d ticks, %d frames", emu.Ticks(), emu.Frames)
			}
			break
		}
	}

	return
}
