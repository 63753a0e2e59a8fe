package boolnet

import "testing"

// buildAndChainDepth3 builds INPUT_0..3 -> g1=AND(in0,in1) -> g2=AND(not g1,in2)
// -> g3=AND(g2,in3) -> OUT_0, the "AND chain of depth 3" used by several
// scenarios and property checks.
func buildAndChainDepth3() *Network {
	n := NewNetwork(4, 3, 1)
	in0, in1, in2, in3 := n.InputAt(0), n.InputAt(1), n.InputAt(2), n.InputAt(3)
	g1, g2, g3 := n.GateAt(0), n.GateAt(1), n.GateAt(2)
	o := n.OutputAt(0)
	g1.SetFunction(FnAnd)
	g2.SetFunction(FnAnd)
	g3.SetFunction(FnAnd)
	connect(in0, g1, false)
	connect(in1, g1, false)
	connect(g1, g2, true)
	connect(in2, g2, false)
	connect(g2, g3, false)
	connect(in3, g3, false)
	connect(g3, o, false)
	return n
}

func simulateAll(n *Network, numInputs int) []bool {
	out := make([]bool, 0, 1<<uint(numInputs))
	for v := uint32(0); v < uint32(1)<<uint(numInputs); v++ {
		n.SimInVect(v)
		out = append(out, n.OutputAt(0).SimValue())
	}
	return out
}

func TestP1P2InvariantsHoldAfterEveryTransform(t *testing.T) {
	n := buildAndChainDepth3()
	MoveInverters(n)
	if err := n.CheckInvariants(); err != nil {
		t.Fatalf("after MoveInverters: %v", err)
	}
	ConvNAND(n)
	if err := n.CheckInvariants(); err != nil {
		t.Fatalf("after ConvNAND: %v", err)
	}
	ConvDualRail(n)
	if err := n.CheckInvariants(); err != nil {
		t.Fatalf("after ConvDualRail: %v", err)
	}
	EnableAltSpacer(n)
	if err := n.CheckInvariants(); err != nil {
		t.Fatalf("after EnableAltSpacer: %v", err)
	}
	InsertBuffsByScoap(n, 2)
	if err := n.CheckInvariants(); err != nil {
		t.Fatalf("after InsertBuffsByScoap: %v", err)
	}
}

func TestP3SemanticEquivalenceAcrossMoveInverters(t *testing.T) {
	n := buildAndChainDepth3()
	before := simulateAll(n, 4)
	MoveInverters(n)
	after := simulateAll(n, 4)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("vector %d: before=%v after=%v, MoveInverters changed behavior", i, before[i], after[i])
		}
	}
}

func TestP3SemanticEquivalenceAcrossConvNAND(t *testing.T) {
	n := NewNetwork(2, 1, 1)
	i0, i1 := n.InputAt(0), n.InputAt(1)
	g := n.GateAt(0)
	o := n.OutputAt(0)
	g.SetFunction(FnAnd)
	connect(i0, g, false)
	connect(i1, g, false)
	connect(g, o, true)

	before := simulateAll(n, 2)
	ConvNAND(n)
	after := simulateAll(n, 2)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("vector %d: before=%v after=%v, ConvNAND changed behavior", i, before[i], after[i])
		}
	}
}

func TestP3SemanticEquivalenceAcrossConvDualRailPrimaryRail(t *testing.T) {
	n := buildTwoInputAnd()
	before := simulateAll(n, 2)
	ConvDualRail(n)
	after := make([]bool, 0, len(before))
	for v := uint32(0); v < 4; v++ {
		n.SimInVect(v)
		after = append(after, n.OutputAt(0).SimValue())
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("vector %d: primary rail before=%v after=%v, ConvDualRail changed the primary rail's behavior", i, before[i], after[i])
		}
	}
}

func TestP4DepthMonotoneAndAccurate(t *testing.T) {
	n := buildAndChainDepth3()
	if got := n.ComputeNetDepth(); got != 4 {
		t.Fatalf("ComputeNetDepth() = %d, want 4", got)
	}
	MoveInverters(n)
	got := n.ComputeNetDepth()
	max := 0
	for _, o := range n.Outputs() {
		if o.Depth() > max {
			max = o.Depth()
		}
	}
	if got != max {
		t.Errorf("ComputeNetDepth() = %d, does not match actual longest path %d", got, max)
	}
}

func TestP5ScoapBoundaries(t *testing.T) {
	n := buildAndChainDepth3()
	n.ComputeSumScoap()
	for _, in := range n.Inputs() {
		if in.CC0() != 1 || in.CC1() != 1 {
			t.Errorf("input %s: (cc0,cc1) = (%d,%d), want (1,1)", in.Name(), in.CC0(), in.CC1())
		}
	}
	for _, out := range n.Outputs() {
		if out.CO() != 0 {
			t.Errorf("output %s: co = %d, want 0", out.Name(), out.CO())
		}
	}
	for _, g := range n.Gates() {
		if g.CC0() == Infinity || g.CC1() == Infinity || g.CO() == Infinity {
			t.Errorf("gate %s has an unresolved SCOAP value: cc0=%d cc1=%d co=%d", g.Name(), g.CC0(), g.CC1(), g.CO())
		}
	}
}

func TestP6DualityAfterConvDualRail(t *testing.T) {
	n := buildAndChainDepth3()
	ConvDualRail(n)
	for _, g := range append([]*Gate{}, n.Gates()...) {
		h := g.Complement()
		if h == nil {
			continue
		}
		if h.Function() != dual(g.Function()) {
			t.Errorf("gate %s function %s, complement %s function %s: not dual", g.Name(), g.Function(), h.Name(), h.Function())
		}
		if g.FanIn() != h.FanIn() {
			t.Errorf("gate %s fan-in %d != complement fan-in %d", g.Name(), g.FanIn(), h.FanIn())
		}
	}
	for _, in := range n.Inputs() {
		if in.Complement() == nil {
			t.Errorf("input %s has no complement", in.Name())
		}
	}
	for _, out := range n.Outputs() {
		if out.Complement() == nil {
			t.Errorf("output %s has no complement", out.Name())
		}
	}
}

func TestP7InverterEliminationAfterConvDualRail(t *testing.T) {
	n := buildAndChainDepth3()
	ConvDualRail(n)
	for _, g := range n.Gates() {
		if g.OutputInverting() {
			t.Errorf("inner gate %s still has outputInverting set after ConvDualRail", g.Name())
		}
		for i := 0; i < g.FanIn(); i++ {
			if g.Inverting(i) {
				t.Errorf("inner gate %s still has an inverting input edge after ConvDualRail", g.Name())
			}
		}
	}
}

func TestP8ConeCoverage(t *testing.T) {
	n := buildAndChainDepth3()
	o := n.OutputAt(0)
	const testColor Color = 1 << 5
	MarkInTree(o, testColor)

	var onPath func(g *Gate) bool
	onPath = func(g *Gate) bool {
		if g == o {
			return true
		}
		for _, f := range g.Followers() {
			if onPath(f) {
				return true
			}
		}
		return false
	}

	for _, in := range n.Inputs() {
		if !onPath(in) {
			continue
		}
		if !in.hasColor(testColor) {
			t.Errorf("input %s is on a path to the colored output but was not colored", in.Name())
		}
	}
	for _, g := range n.Gates() {
		if !onPath(g) {
			continue
		}
		if !g.hasColor(testColor) {
			t.Errorf("gate %s is on a path to the colored output but was not colored", g.Name())
		}
	}
}
