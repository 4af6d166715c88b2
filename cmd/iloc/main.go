// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/tebeka/atexit"

	"github.com/ezrec/iloc/check"
	"github.com/ezrec/iloc/emulator"
	"github.com/ezrec/iloc/listing"
	"github.com/ezrec/iloc/translate"
	"github.com/ezrec/iloc/tui"
	"github.com/ezrec/iloc/vm"
)

const DEFAULT_PROGRAM = "program.iloc"

func main() {
	var memorySize int
	var verbose bool
	var batch bool
	var expect string
	var interval time.Duration
	var lang string

	flag.IntVar(&memorySize, "m", vm.MEMORY_SIZE, "Memory size in bytes")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&batch, "batch", false, "Run to completion and print the final state")
	flag.StringVar(&expect, "expect", "", "Register expression that must hold at the end (implies -batch)")
	flag.DurationVar(&interval, "interval", tui.DEFAULT_INTERVAL, "Time between steps when running")
	flag.StringVar(&lang, "lang", "", "Message language (BCP 47 tag)")

	flag.Parse()

	if len(lang) != 0 {
		err := translate.Use(lang)
		if err != nil {
			atexit.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	if flag.NArg() > 1 {
		atexit.Fatalf("%v: %v", os.Args[0], f("unknown arguments: %v", flag.Args()[1:]))
	}

	if memorySize < vm.WORD_SIZE {
		atexit.Fatalf("%v: %v", os.Args[0], f("memory size %d too small", memorySize))
	}

	source := DEFAULT_PROGRAM
	if flag.NArg() == 1 {
		source = flag.Arg(0)
	}

	inf, err := os.Open(source)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}
	lst, err := listing.Parse(inf)
	inf.Close()
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	emu := emulator.NewEmulator(memorySize)
	emu.Verbose = verbose
	emu.Load(lst)

	if batch || len(expect) != 0 {
		err = emu.Run(context.Background())
		snap := emu.Snapshot()
		if rerr := report(os.Stdout, &snap); rerr != nil {
			atexit.Fatal(rerr)
		}
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}

		if len(expect) != 0 {
			ok, err := check.Eval(expect, snap.Registers)
			if err != nil {
				atexit.Fatal(err)
			}
			if !ok {
				log.Printf("%v", f("expectation failed: %v", expect))
				atexit.Exit(1)
			}
		}

		atexit.Exit(0)
	}

	console := tui.NewTerminal()
	err = console.Open()
	if err != nil {
		atexit.Fatal(err)
	}
	atexit.Register(func() { console.Close() })

	session := &tui.Session{
		Verbose:  verbose,
		Emu:      emu,
		Interval: interval,
		In:       console.In,
		Out:      console.Out,
		Size:     console.Size,
	}

	err = session.Run(context.Background())
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	atexit.Exit(0)
}
