package command_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"

	"github.com/circuitwright/tsact/boolnet"
	"github.com/circuitwright/tsact/command"
	"github.com/circuitwright/tsact/logctx"
)

func buildTwoInputAnd() *boolnet.Network {
	n := boolnet.NewNetwork(2, 1, 1)
	g := n.GateAt(0)
	g.SetFunction(boolnet.FnAnd)
	boolnet.Connect(n.InputAt(0), g, false)
	boolnet.Connect(n.InputAt(1), g, false)
	boolnet.Connect(g, n.OutputAt(0), false)
	n.ComputeNetDepth()
	return n
}

func newSession(t *testing.T) (*command.Session, *bytes.Buffer) {
	t.Helper()
	base := funcr.New(func(prefix, args string) {}, funcr.Options{})
	var out bytes.Buffer
	return &command.Session{
		Net:    buildTwoInputAnd(),
		Log:    logctx.New(base, false, false),
		Stdout: &out,
	}, &out
}

func TestRunUnknownCommand(t *testing.T) {
	s, _ := newSession(t)
	if err := command.Run(s, "bogus"); err == nil {
		t.Fatal("Run() = nil, want error for unknown command")
	}
}

func TestRunMissingArg(t *testing.T) {
	s, _ := newSession(t)
	if err := command.Run(s, "markIn"); err == nil {
		t.Fatal("Run() = nil, want error for missing argument")
	}
}

func TestRunNand(t *testing.T) {
	s, _ := newSession(t)
	if err := command.Run(s, "nand"); err != nil {
		t.Fatalf("Run(nand) error = %v", err)
	}
}

func TestRunMove(t *testing.T) {
	s, _ := newSession(t)
	if err := command.Run(s, "move"); err != nil {
		t.Fatalf("Run(move) error = %v", err)
	}
}

func TestRunScoap(t *testing.T) {
	s, _ := newSession(t)
	if err := command.Run(s, "scoap"); err != nil {
		t.Fatalf("Run(scoap) error = %v", err)
	}
	if s.Net.NetSumScoap() == 0 {
		t.Errorf("NetSumScoap() = 0 after scoap command, want nonzero")
	}
}

func TestRunScriptMultipleStatements(t *testing.T) {
	s, _ := newSession(t)
	if err := command.Run(s, "scoap; fanout\ninOutTree"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRunSimVectAndPrintSimOut(t *testing.T) {
	s, out := newSession(t)
	if err := command.Run(s, "simVect 3"); err != nil {
		t.Fatalf("Run(simVect) error = %v", err)
	}
	if err := command.Run(s, "printSimOut"); err != nil {
		t.Fatalf("Run(printSimOut) error = %v", err)
	}
	if out.Len() == 0 {
		t.Error("printSimOut wrote nothing to Stdout")
	}
}

func TestRunSimVectAcceptsHexPrefix(t *testing.T) {
	s, out := newSession(t)
	if err := command.Run(s, "simVect 0x3"); err != nil {
		t.Fatalf("Run(simVect 0x3) error = %v", err)
	}
	if err := command.Run(s, "printSimOut"); err != nil {
		t.Fatalf("Run(printSimOut) error = %v", err)
	}
	if !strings.Contains(out.String(), "Output: 0b1") {
		t.Errorf("printSimOut = %q, want AND(1,1)=1 output after simVect 0x3", out.String())
	}
}

func TestRunHelpListsCommands(t *testing.T) {
	s, out := newSession(t)
	if err := command.Run(s, "help"); err != nil {
		t.Fatalf("Run(help) error = %v", err)
	}
	if !strings.Contains(out.String(), "stats") {
		t.Errorf("help output missing command listing: %q", out.String())
	}
}
