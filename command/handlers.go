package command

import (
	"fmt"
	"strconv"

	"github.com/circuitwright/tsact/boolnet"
	"github.com/circuitwright/tsact/writer"
)

func netWriter(s *Session) *writer.Writer {
	return writer.NewWriter(s.Basename, s.Net, s.Lib, s.MapAlg)
}

func runHelp(s *Session, args []string) error {
	fmt.Fprintln(s.Stdout, "Commands:")
	for _, c := range Table {
		fmt.Fprintf(s.Stdout, "  %-16s %s\n", c.Name, c.Help)
	}
	return nil
}

func runStats(s *Session, args []string) error {
	n := s.Net
	s.Log.Stats.Info("net statistics",
		"inputs", len(n.Inputs()),
		"outputs", len(n.Outputs()),
		"gates", len(n.Gates()),
		"avgFanOut", n.NetAvgFanOut(),
		"netDepth", n.NetDepth(),
		"scoap", n.NetSumScoap(),
	)
	return nil
}

func runTeX(s *Session, args []string) error     { return netWriter(s).TeX(s.Color) }
func runDot(s *Session, args []string) error     { return netWriter(s).Dot(s.Color) }
func runDump(s *Session, args []string) error    { return netWriter(s).Dump(s.Color) }
func runSpice(s *Session, args []string) error   { return netWriter(s).NgSpice(s.Color) }
func runBlif(s *Session, args []string) error    { return netWriter(s).Blif(s.Color) }
func runSim(s *Session, args []string) error     { return netWriter(s).IRSIM(s.Color) }
func runPlace2Rect(s *Session, args []string) error {
	s.Net.Place2Rect()
	return nil
}

func runBlifMap(s *Session, args []string) error {
	if s.MapAlg == writer.MapComplementary {
		s.Color = boolnet.ColorDualBase
		s.Net.ColorBaseGates(s.Color)
	}
	return netWriter(s).BlifMap(s.Color)
}

func runMarkIn(s *Session, args []string) error {
	idx, err := requireIntArg(args)
	if err != nil {
		return err
	}
	g := s.Net.GateAt(idx)
	if g == nil {
		return fmt.Errorf("command: no such gate %d", idx)
	}
	s.Color = boolnet.ColorInTree
	boolnet.MarkInTree(g, boolnet.ColorInTree)
	return nil
}

func runMarkOut(s *Session, args []string) error {
	idx, err := requireIntArg(args)
	if err != nil {
		return err
	}
	g := s.Net.GateAt(idx)
	if g == nil {
		return fmt.Errorf("command: no such gate %d", idx)
	}
	s.Color = boolnet.ColorOutTree
	boolnet.MarkOutTree(g, boolnet.ColorOutTree)
	return nil
}

func runScoap(s *Session, args []string) error {
	s.Net.ComputeSumScoap()
	return nil
}

func runInOutTree(s *Session, args []string) error {
	s.Net.ComputeInOutTrees()
	return nil
}

func runFanout(s *Session, args []string) error {
	s.Net.ComputeAvgFanOut()
	return nil
}

func runNand(s *Session, args []string) error {
	boolnet.ConvNAND(s.Net)
	return nil
}

func runBuffByScoap(s *Session, args []string) error {
	count, err := requireIntArg(args)
	if err != nil {
		return err
	}
	if count > 0 {
		boolnet.InsertBuffsByScoap(s.Net, count)
		s.Net.ComputeNetDepth()
	}
	return nil
}

func runMove(s *Session, args []string) error {
	boolnet.MoveInverters(s.Net)
	return nil
}

func runDual(s *Session, args []string) error {
	boolnet.ConvDualRail(s.Net)
	return nil
}

func runDualAlt(s *Session, args []string) error {
	boolnet.ConvDualRail(s.Net)
	boolnet.EnableAltSpacer(s.Net)
	return nil
}

func runDualRed(s *Session, args []string) error {
	level, err := requireIntArg(args)
	if err != nil {
		return err
	}
	boolnet.ConvDualRail(s.Net)
	boolnet.DualRailReduction(s.Net, level)
	return nil
}

func runSimVect(s *Session, args []string) error {
	if len(args) == 0 {
		return ErrMissingArg
	}
	v, err := strconv.ParseUint(args[0], 0, 32)
	if err != nil {
		return err
	}
	s.Net.SimInVect(uint32(v))
	return nil
}

func runPrintSimOut(s *Session, args []string) error {
	s.Net.PrintSimOut(s.Stdout)
	return nil
}

func runWriteHeatMap(s *Session, args []string) error {
	wr := writer.NewWriter(s.Basename, s.Net, nil, s.MapAlg)
	return wr.HeatMap(s.Color)
}
