// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/spirovm/config"
	"github.com/ezrec/spirovm/cpu"
	"github.com/ezrec/spirovm/emulator"
	"github.com/ezrec/spirovm/internal"
	"github.com/ezrec/spirovm/io"
	"github.com/ezrec/spirovm/render"
	"github.com/ezrec/spirovm/translate"
)

func main() {
	var compile string
	var romfile string
	var conffile string
	var output string
	var frames int
	var perFrame int
	var disasm bool
	var trace int
	var verbose bool

	flag.StringVar(&compile, "c", "", ".sv file to compile")
	flag.StringVar(&romfile, "r", "", ".rom image to load ('-' for stdin)")
	flag.StringVar(&conffile, "f", "", "spirovm.toml configuration")
	flag.StringVar(&output, "o", "-", "PNG output")
	flag.IntVar(&frames, "n", -1, "Frames to run (0 runs until halted)")
	flag.IntVar(&perFrame, "t", 0, "Ticks per frame")
	flag.BoolVar(&disasm, "d", false, "Disassemble the program, do not execute")
	flag.IntVar(&trace, "l", 0, "List the first N commands executed, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	conf := config.Default()
	if len(conffile) != 0 {
		var err error
		conf, err = config.Load(conffile)
		if err != nil {
			log.Fatal(err)
		}
	}
	if len(conf.Language) != 0 {
		translate.SetLanguage(conf.Language)
	}
	if frames >= 0 {
		conf.Run.Frames = frames
	}
	if perFrame > 0 {
		conf.Run.TicksPerFrame = perFrame
	}

	opts, err := conf.RenderOptions()
	if err != nil {
		log.Fatalf("%v: %v", conffile, err)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		err = emu.LoadProgram(prog)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case len(romfile) != 0:
		tape := &io.Tape{Input: os.Stdin, Limit: emu.Rom.Size()}
		if romfile != "-" {
			inf, err := os.Open(romfile)
			if err != nil {
				log.Fatalf("%v: %v", romfile, err)
			}
			defer inf.Close()
			tape.Input = inf
		}
		image, err := tape.ReadImage()
		if err != nil {
			log.Fatalf("%v: %v", romfile, err)
		}
		addr := conf.Rom.Address
		if addr == 0 {
			addr = emulator.ROM_BASE
		}
		err = emu.Load(addr, image)
		if err != nil {
			log.Fatalf("%v: %v", romfile, err)
		}
		emu.Entry = addr
	default:
		log.Fatalf("%v: one of -c or -r is required", os.Args[0])
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	if disasm {
		err = cpu.Disassemble(emu.Program, os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if trace > 0 {
		n := 0
		for cmd := range internal.IterSeqTake(emu.Program.Commands(), trace) {
			fmt.Printf("%6d: %v\n", n, cmd)
			n++
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = emu.Run(ctx, conf.Run.Frames, conf.Run.TicksPerFrame, nil)
	if err != nil {
		log.Print(err)
	}

	if verbose {
		log.Printf("%v", emu.Cpu)
	}

	img, err := render.Image(emu.Cpu, opts)
	if err != nil {
		log.Fatal(err)
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	err = render.WritePNG(ouf, img)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
