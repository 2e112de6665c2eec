package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/CoolSpy3/hmmm-language-support-sub000/hmmm"
	"github.com/CoolSpy3/hmmm-language-support-sub000/runtime"
)

func main() {
	var compile string
	var binary string
	var output string
	var save bool
	var disassemble bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".hmmm source file to assemble")
	flag.StringVar(&binary, "b", "", ".hb binary listing to load")
	flag.StringVar(&output, "o", "-", "Listing output")
	flag.BoolVar(&save, "s", false, "Save binary listing, do not execute")
	flag.BoolVar(&disassemble, "d", false, "Disassemble, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var source string
	var mode runtime.Mode
	switch {
	case len(compile) != 0 && len(binary) != 0:
		log.Fatalf("%v: -c and -b are mutually exclusive", os.Args[0])
	case len(compile) != 0:
		source = compile
		mode = runtime.MODE_ASSEMBLY
	case len(binary) != 0:
		source = binary
		mode = runtime.MODE_BINARY
	default:
		log.Fatalf("%v: One of -c or -b is required", os.Args[0])
	}

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	rt := runtime.New(runtime.DefaultConfig())
	rt.Verbose = verbose

	if err = rt.Configure(inf, mode); err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if save || disassemble {
		ouf := os.Stdout
		if output != "-" {
			ouf, err = os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
		}

		if save {
			fmt.Fprint(ouf, rt.Program().Listing())
			return
		}

		for addr, word := range rt.Program().Instructions() {
			text, derr := hmmm.Disassemble(word)
			if derr != nil {
				text = hmmm.FormatWord(word)
			}
			fmt.Fprintf(ouf, "%d %v\n", addr, text)
		}
		return
	}

	rt.OnEvent = func(event runtime.Event) {
		switch event.Kind {
		case runtime.EVENT_OUTPUT:
			switch event.Stream {
			case runtime.STREAM_STDOUT:
				fmt.Println(event.Text)
			default:
				fmt.Fprintln(os.Stderr, event.Text)
			}
		}
	}

	stdin := bufio.NewScanner(os.Stdin)
	for {
		rt.Continue(false)

		switch rt.Phase() {
		case runtime.PHASE_AWAITING_INPUT:
			if !stdin.Scan() {
				rt.Terminate()
				return
			}
			rt.ProvideInput(stdin.Text())
		case runtime.PHASE_HALTED:
			return
		default:
			log.Fatalf("%v: Stopped unexpectedly in phase %v", os.Args[0], rt.Phase())
		}
	}
}
