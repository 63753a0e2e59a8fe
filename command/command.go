// Package command implements the semicolon/newline-delimited command
// script language the CLI executes against a loaded network: a flat
// dispatch table of named commands, each a thin wrapper around one
// boolnet transform, writer format, or simulation step.
package command

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/circuitwright/tsact/boolnet"
	"github.com/circuitwright/tsact/library"
	"github.com/circuitwright/tsact/logctx"
	"github.com/circuitwright/tsact/writer"
)

// Session is the shared state every command runs against: the loaded
// network, the output basename commands that write files use, an
// optional cell library, the active mapping algorithm, the current gate
// color filter, the logging context commands report through, and the
// writer for human-facing text (help, simulation output) that bypasses
// the logging channels.
type Session struct {
	Net      *boolnet.Network
	Basename string
	Lib      *library.Library
	MapAlg   writer.MapAlgorithm
	Color    boolnet.Color
	Log      *logctx.Context
	Stdout   io.Writer
}

// ErrUnknownCommand means a script referenced a name not in the dispatch
// table.
var ErrUnknownCommand = errors.New("command: unknown command")

// ErrMissingArg means a command that requires an argument word did not
// get one.
var ErrMissingArg = errors.New("command: missing required argument")

// Command is one named entry in the dispatch table.
type Command struct {
	Name string
	Help string
	Run  func(s *Session, args []string) error
}

// Table lists every recognized command.
var Table []Command

func init() {
	Table = []Command{
		{"help", "print help", runHelp},
		{"stats", "print statistics", runStats},
		{"tex", "print network to LaTeX format", runTeX},
		{"dot", "print network to Graphviz DOT format", runDot},
		{"dump", "print network details to text file", runDump},
		{"spice", "print network to ngSPICE netlist", runSpice},
		{"blif", "print network to BLIF format", runBlif},
		{"sim", "print network to SIM format (IRSIM)", runSim},
		{"blifmap", "map to two-input gates and write to blif", runBlifMap},
		{"markIn", "G \t mark input tree (G is # of gates)", runMarkIn},
		{"markOut", "G \t mark output tree (G is # of gates)", runMarkOut},
		{"scoap", "compute network's SCOAP", runScoap},
		{"inOutTree", "compute IN/OUT tree for all gates", runInOutTree},
		{"fanout", "compute network's average fan-out", runFanout},
		{"nand", "move inverters to AND-gate outputs", runNand},
		{"buffByScoap", "C \t Insert buffers to Scoap MAXs (C is # of buffers)", runBuffByScoap},
		{"move", "move inverters to circuit IN/OUTs", runMove},
		{"dual", "convert the single-rail circuit to its dual-rail version", runDual},
		{"dualAlt", "convert the single-rail circuit to its dual-rail version with alternating spacer", runDualAlt},
		{"dualred", "L \t perform dual-rail reduction heuristic", runDualRed},
		{"place2rect", "place NET to rectangle", runPlace2Rect},
		{"simVect", "VECT \t simulate given vector VECT", runSimVect},
		{"printSimOut", "Print simulation output", runPrintSimOut},
		{"writeHeatMap", "Write heatMap describing circuit state based on the simulated input", runWriteHeatMap},
	}
}

func lookup(name string) (Command, bool) {
	for _, c := range Table {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// splitScript breaks a command script into individual command
// invocations, delimited by ';' or a newline.
func splitScript(script string) []string {
	return strings.FieldsFunc(script, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	})
}

// Run parses script into individual commands and executes each in order
// against s, stopping at the first error. A command whose numeric
// argument does not parse also prints the help text before the error is
// returned.
func Run(s *Session, script string) error {
	for _, stmt := range splitScript(script) {
		fields := strings.Fields(stmt)
		if len(fields) == 0 {
			continue
		}
		name, args := fields[0], fields[1:]
		cmd, ok := lookup(name)
		if !ok {
			return errors.Wrapf(ErrUnknownCommand, "%q", name)
		}
		if err := cmd.Run(s, args); err != nil {
			if _, isNum := errors.Cause(err).(*strconv.NumError); isNum {
				runHelp(s, nil)
			}
			return errors.Wrapf(err, "command %q", name)
		}
	}
	return nil
}

func requireIntArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrMissingArg
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(err, "parsing argument %q", args[0])
	}
	return v, nil
}
