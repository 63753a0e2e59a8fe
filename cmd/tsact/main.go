// Command tsact loads an ASCII AIGER combinational netlist and runs a
// command script against it: structural transforms (nand, move, dual,
// buffByScoap, ...), analyses (stats, scoap, fanout), and output writers
// (tex, dot, dump, blif, sim, spice, blifmap, writeHeatMap).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/stdr"

	"github.com/circuitwright/tsact/aiger"
	"github.com/circuitwright/tsact/boolnet"
	"github.com/circuitwright/tsact/builder"
	"github.com/circuitwright/tsact/command"
	"github.com/circuitwright/tsact/library"
	"github.com/circuitwright/tsact/logctx"
	"github.com/circuitwright/tsact/writer"
)

var (
	srcPath     = flag.String("s", "", "source AAG file (required)")
	cmdScript   = flag.String("c", "", "command script to run (';' or newline separated) (required)")
	libDir      = flag.String("l", "", "cell library base directory")
	mapAlgName  = flag.String("m", "negative", "mapping algorithm: negative|positive|natural|complementary")
	verbose     = flag.Bool("v", false, "enable trace logging")
	veryVerbose = flag.Bool("vv", false, "enable trace and debug logging")
)

func parseMapAlgorithm(name string) (writer.MapAlgorithm, error) {
	switch name {
	case "negative", "default":
		return writer.MapNegative, nil
	case "positive":
		return writer.MapPositive, nil
	case "natural":
		return writer.MapNatural, nil
	case "complementary":
		return writer.MapComplementary, nil
	default:
		return 0, fmt.Errorf("unknown mapping algorithm %q", name)
	}
}

func basenameFor(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[:i]
		}
		if path[i] == '/' {
			break
		}
	}
	return path
}

func run() error {
	flag.Parse()
	if *srcPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required -s source file")
	}
	if *cmdScript == "" {
		flag.Usage()
		return fmt.Errorf("missing required -c command script")
	}

	mapAlg, err := parseMapAlgorithm(*mapAlgName)
	if err != nil {
		return err
	}

	f, err := os.Open(*srcPath)
	if err != nil {
		return err
	}
	defer f.Close()

	plan, err := aiger.Read(f)
	if err != nil {
		return err
	}
	net, err := builder.Build(plan)
	if err != nil {
		return err
	}

	var lib *library.Library
	if *libDir != "" {
		lib, err = library.Open(*libDir)
		if err != nil {
			return err
		}
	}

	base := stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	sess := &command.Session{
		Net:      net,
		Basename: basenameFor(*srcPath),
		Lib:      lib,
		MapAlg:   mapAlg,
		Color:    boolnet.ColorNone,
		Log:      logctx.New(base, *verbose, *veryVerbose),
		Stdout:   os.Stdout,
	}

	return command.Run(sess, *cmdScript)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tsact:", err)
		os.Exit(1)
	}
}
