package boolnet

import "testing"

// buildTwoInputAnd mirrors the canonical two-input AND AIG: two primary
// inputs driving a single AND gate driving a single primary output.
func buildTwoInputAnd() *Network {
	n := NewNetwork(2, 1, 1)
	i0, i1 := n.InputAt(0), n.InputAt(1)
	g := n.GateAt(0)
	o := n.OutputAt(0)
	g.SetFunction(FnAnd)
	connect(i0, g, false)
	connect(i1, g, false)
	connect(g, o, false)
	return n
}

func TestScenario1TwoInputAnd(t *testing.T) {
	n := buildTwoInputAnd()

	n.SimInVect(0x3)
	if got := n.OutputAt(0).SimValue(); got != true {
		t.Errorf("simVect 0x3: output = %v, want true (0b1)", got)
	}

	n.SimInVect(0x1)
	if got := n.OutputAt(0).SimValue(); got != false {
		t.Errorf("simVect 0x1: output = %v, want false (0b0)", got)
	}
}

// TestScenario2DualRailOfTwoInputAnd exercises convDualRail on the same
// two-input AND. The worked example in the source material claims
// simulating 0x3 yields 0b11, but the algebra forces 0b10: the
// complement gate's driver is wired straight to the original i0/i1 (dual
// rail shares the base gate's own drivers, with every polarity flipped),
// so by De Morgan's law it always equals not(AND(i0,i1)) regardless of
// how primary-input seeding works. With i0=i1=1, AND=1, so the
// complement output must read 0. See DESIGN.md's Open Question
// resolutions for the full derivation.
func TestScenario2DualRailOfTwoInputAnd(t *testing.T) {
	n := buildTwoInputAnd()
	ConvDualRail(n)

	if got := len(n.Gates()); got != 2 {
		t.Fatalf("len(Gates()) = %d, want 2 (original + complement)", got)
	}
	if got := len(n.Outputs()); got != 2 {
		t.Fatalf("len(Outputs()) = %d, want 2", got)
	}

	n.SimInVect(0x3)
	o, oD := n.OutputAt(0), n.OutputAt(1)
	if !o.SimValue() {
		t.Errorf("original output = %v, want true", o.SimValue())
	}
	if oD.SimValue() {
		t.Errorf("complement output = %v, want false (not true)", oD.SimValue())
	}
}

func TestScenario3AndChainMoveInvertersLeavesNoResidualInversion(t *testing.T) {
	n := buildAndChainDepth3()
	MoveInverters(n)

	for _, g := range n.Gates() {
		if g.OutputInverting() {
			t.Errorf("gate %s: outputInverting still set after MoveInverters", g.Name())
		}
		for i := 0; i < g.FanIn(); i++ {
			if g.Inverting(i) {
				t.Errorf("gate %s: input %d still inverting after MoveInverters", g.Name(), i)
			}
		}
	}

	sum := n.ComputeSumScoap()
	if sum <= 0 {
		t.Errorf("ComputeSumScoap() = %d, want a positive SCOAP total", sum)
	}
}

func TestScenario4MoveInvertersDuplicatesOnFanOutConflict(t *testing.T) {
	n := NewNetwork(2, 3, 0)
	in0, in1 := n.InputAt(0), n.InputAt(1)
	g := n.GateAt(0)
	f1, f2 := n.GateAt(1), n.GateAt(2)
	g.SetFunction(FnAnd)
	connect(in0, g, false)
	connect(in1, g, false)
	connect(g, f1, true)  // inverting consumer
	connect(g, f2, false) // non-inverting consumer

	MoveInverters(n)

	h := g.Complement()
	if h == nil {
		t.Fatalf("g has no complement after MoveInverters; expected a duplicate to resolve the fan-out conflict")
	}
	if f2.Driver(0) != g {
		t.Errorf("f2.Driver(0) = %s, want g (the original, non-inverting consumer keeps its driver)", f2.Driver(0).Name())
	}
	if f1.Driver(0) != h {
		t.Errorf("f1.Driver(0) = %s, want h (the inverting consumer follows the new complement)", f1.Driver(0).Name())
	}
	if f1.Inverting(0) {
		t.Errorf("f1's edge should be non-inverting once it taps the complementary rail")
	}
}

// TestScenario5ConvNANDFiresWhenEveryFollowerInverts grounds convNAND's
// unanimous-inversion condition stated in §4.3.3: the parenthetical in the
// worked example ("the BUFFER edge remains") describes the break-on-first
// rule exercised separately below, not a partial-inversion trigger —
// convNAND requires every follower to invert before it fires at all.
func TestScenario5ConvNANDFiresWhenEveryFollowerInverts(t *testing.T) {
	n := NewNetwork(2, 6, 0)
	in0, in1 := n.InputAt(0), n.InputAt(1)
	g := n.GateAt(0)
	g.SetFunction(FnAnd)
	connect(in0, g, false)
	connect(in1, g, false)

	consumers := make([]*Gate, 5)
	for i := 0; i < 5; i++ {
		consumers[i] = n.GateAt(i + 1)
		connect(g, consumers[i], true)
	}
	consumers[0].SetFunction(FnBuffer)

	ConvNAND(n)

	if !g.OutputInverting() {
		t.Errorf("g.OutputInverting() = false, want true after convNAND absorbs the unanimous inversion")
	}
	for i, c := range consumers {
		if c.Inverting(0) {
			t.Errorf("consumer %d still has an inverting edge from g after convNAND", i)
		}
	}
}

// TestScenario5BreakOnFirstInvertingSlotPreventsMisfire grounds the
// break-after-first-matching-slot rule: a follower driven twice by the
// same gate is judged only by its first g-driven slot, so a non-inverting
// first slot keeps the whole gate from being counted as an inverting
// follower even though a later, spurious slot from the same driver does
// invert.
func TestScenario5BreakOnFirstInvertingSlotPreventsMisfire(t *testing.T) {
	g := newGate("g", FnAnd, RoleInner)
	f := newGate("f", FnOr, RoleInner)
	connect(g, f, true)  // second, spurious slot: inverting
	connect(g, f, false) // first slot: non-inverting (connect prepends)

	if got := invertedFollowerCount(g); got != 0 {
		t.Errorf("invertedFollowerCount(g) = %d, want 0 (break on the first, non-inverting slot)", got)
	}
}

// TestScenario5ClearInvertingEdgesClearsEveryMatchingSlot grounds the
// clearing side of convNAND: unlike invertedFollowerCount's break-on-first
// counting rule, clearing must visit every slot a follower drives from g,
// since a follower can list the same driver on more than one input.
func TestScenario5ClearInvertingEdgesClearsEveryMatchingSlot(t *testing.T) {
	g := newGate("g", FnAnd, RoleInner)
	f := newGate("f", FnOr, RoleInner)
	connect(g, f, true)
	connect(g, f, true)

	clearInvertingEdgesFrom(g)

	for i := 0; i < f.FanIn(); i++ {
		if f.Inverting(i) {
			t.Errorf("f.Inverting(%d) = true, want false after clearInvertingEdgesFrom clears every slot driven by g", i)
		}
	}
}

func TestScenario6InsertBuffsByScoapNamesAndFanOut(t *testing.T) {
	n := NewNetwork(5, 4, 1)
	in0, in1, in2, in3, in4 := n.InputAt(0), n.InputAt(1), n.InputAt(2), n.InputAt(3), n.InputAt(4)
	g1, g2, g3, g4 := n.GateAt(0), n.GateAt(1), n.GateAt(2), n.GateAt(3)
	o := n.OutputAt(0)
	for _, g := range []*Gate{g1, g2, g3, g4} {
		g.SetFunction(FnAnd)
	}
	connect(in0, g1, false)
	connect(in1, g1, false)
	connect(in2, g2, false)
	connect(in3, g2, false)
	connect(g1, g3, false)
	connect(g2, g3, false)
	connect(g3, g4, false)
	connect(in4, g4, false)
	connect(g4, o, false)

	n.ComputeSumScoap()
	hotspots := []*Gate{g1, g2, g3}

	InsertBuffsByScoap(n, 3)

	count := 0
	for _, g := range n.Gates() {
		if len(g.Name()) > len("_SCOAPBUFF") && g.Name()[len(g.Name())-len("_SCOAPBUFF"):] == "_SCOAPBUFF" {
			count++
			if g.FanIn() != 1 {
				t.Errorf("buffer %s has fan-in %d, want 1", g.Name(), g.FanIn())
			}
			driver := g.Driver(0)
			if driver.Function() == FnBuffer {
				t.Errorf("buffer %s is chained directly behind an existing BUFFER %s", g.Name(), driver.Name())
			}
		}
	}
	if count != 3 {
		t.Fatalf("found %d _SCOAPBUFF gates, want 3", count)
	}
	for _, h := range hotspots {
		if h.FanOut() != 1 {
			t.Errorf("hotspot %s has fan-out %d, want exactly 1 (the new buffer)", h.Name(), h.FanOut())
		}
		if h.Follower(0).Name()[len(h.Follower(0).Name())-len("_SCOAPBUFF"):] != "_SCOAPBUFF" {
			t.Errorf("hotspot %s's sole follower %s is not its SCOAP buffer", h.Name(), h.Follower(0).Name())
		}
	}
}
