package boolnet

// MoveInverters normalizes the netlist into a monotone (inverter-free)
// region with inverters pushed to primary-input and primary-output
// buffers, duplicating a gate into its complement only where a genuine
// fan-out conflict forces it.
//
// The outer loop runs until a full pass fires nothing; each pass first
// runs an inner loop of moveout/move rewrites, repeated for as long as
// moveShiftInverters(false) reports that it shifted something, then
// attempts exactly one conflict resolution via move_shiftInverters(true).
// A conflict resolution creates one new gate and strictly reduces the
// remaining conflict count, so the outer loop terminates.
func MoveInverters(n *Network) {
	for {
		for {
			if moveoutChangeToEqGates(n) {
				moveoutShiftInvertersToOutputs(n)
				moveChangeToEqGates(n)
			}
			fired := moveShiftInverters(n, false)
			moveChangeToEqGates(n)
			if !fired {
				break
			}
		}
		if !moveShiftInverters(n, true) {
			break
		}
	}
	moveShiftInvertersToInputBuffers(n)
	moveShiftInvertersInOutputBuffers(n)
}

// moveChangeToEqGates applies changeToEqGate to every gate whose
// outputInverting bit is set, pushing that inversion through as a
// function/polarity swap. Returns whether anything fired.
func moveChangeToEqGates(n *Network) bool {
	fired := false
	for _, g := range append([]*Gate{}, n.gates...) {
		if g.outputInverting {
			changeToEqGate(g)
			fired = true
		}
	}
	return fired
}

// moveShiftInverters scans every inner gate's fan-out. When every follower
// inverts the edge from g (and they are not all primary outputs — an
// intentional exception that keeps output buffers from gaining a stray
// inverter here), the inversion is absorbed into g itself: its output
// polarity flips, a pre-existing complement is merged away (it is now
// redundant), and the consumer-side bits are cleared.
//
// When only some followers invert (a conflict) and solveConflict is true,
// g is duplicated into a complementary twin, the inverting followers move
// to the twin, and the scan stops — at most one conflict is resolved per
// call, matching the outer fixpoint's one-duplicate-per-iteration pace.
func moveShiftInverters(n *Network, solveConflict bool) bool {
	fired := false
	for _, g := range append([]*Gate{}, n.gates...) {
		total := g.FanOut()
		if total == 0 {
			continue
		}
		inv := 0
		invOutputs := 0
		for _, f := range g.followers {
			for i := 0; i < f.FanIn(); i++ {
				if f.Driver(i) == g {
					if f.Inverting(i) {
						inv++
						if f.Role() == RoleOutput {
							invOutputs++
						}
					}
					break
				}
			}
		}
		if inv == total {
			if invOutputs == total {
				continue
			}
			g.FlipOutputInverting()
			if h := g.complement; h != nil {
				n.mergeEqGates(g, h)
			}
			clearInvertingEdgesFrom(g)
			fired = true
			continue
		}
		if inv > 0 && inv < total && solveConflict {
			resolveMoveConflict(n, g)
			return true
		}
	}
	return fired
}

// resolveMoveConflict duplicates g into a complementary twin (reusing an
// existing complement if present) and redirects only the inverting
// followers to it, clearing their inverting bit since the twin already
// computes the negated value.
func resolveMoveConflict(n *Network, g *Gate) {
	h := g.complement
	if h == nil {
		h = newGate(g.name+"_CPLM", g.function, RoleInner)
		for i := 0; i < g.FanIn(); i++ {
			connect(g.Driver(i), h, g.Inverting(i))
		}
		h.outputInverting = !g.outputInverting
		g.setComplement(h)
		h.setComplement(g)
		n.addInnerGate(h)
	}
	for _, f := range append([]*Gate{}, g.followers...) {
		for i := 0; i < f.FanIn(); i++ {
			if f.Driver(i) == g {
				if f.Inverting(i) {
					disconnect(g, f)
					connect(h, f, false)
				}
				break
			}
		}
	}
}

// moveoutChangeToEqGates fires on a gate with a non-inverting output whose
// every input inverts: the function swaps to its dual, every input
// polarity bit clears, and the inversion reappears as outputInverting.
// Returns whether anything fired.
func moveoutChangeToEqGates(n *Network) bool {
	fired := false
	for _, g := range append([]*Gate{}, n.gates...) {
		if g.outputInverting || g.FanIn() == 0 {
			continue
		}
		allInverting := true
		for i := 0; i < g.FanIn(); i++ {
			if !g.Inverting(i) {
				allInverting = false
				break
			}
		}
		if !allInverting {
			continue
		}
		g.function = dual(g.function)
		for i := 0; i < g.FanIn(); i++ {
			g.SetInverting(i, false)
		}
		g.outputInverting = true
		fired = true
	}
	return fired
}

// moveoutShiftInvertersToOutputs repeatedly finds and collapses a tree of
// inverters rooted at each primary output, until no such tree remains.
func moveoutShiftInvertersToOutputs(n *Network) {
	for _, o := range n.outputs {
		for moveoutDetectTreeOfInverters(o) {
			moveoutMoveInvertersInTreeOfInverters(n, o)
		}
	}
}

// moveoutDetectTreeOfInverters reports whether every path backward from
// gate is already inverting, terminates at a single-fan-out inverting
// driver, or continues through a single-fan-out non-inverting driver
// (recursively). A driver with more than one follower blocks the tree:
// collapsing it would change the value seen by its other consumers.
func moveoutDetectTreeOfInverters(gate *Gate) bool {
	if gate.Role() == RoleInput {
		return false
	}
	for i := 0; i < gate.FanIn(); i++ {
		if gate.Inverting(i) {
			continue
		}
		d := gate.Driver(i)
		if d.outputInverting && d.FanOut() == 1 {
			continue
		}
		if d.FanOut() > 1 {
			return false
		}
		if !moveoutDetectTreeOfInverters(d) {
			return false
		}
	}
	return true
}

// moveoutMoveInvertersInTreeOfInverters collapses one layer of the tree
// detected by moveoutDetectTreeOfInverters: every single-fan-out inverting
// driver has its outputInverting cleared and the consuming edge inverted
// instead, merging away the driver's now-redundant complement if any; gate
// itself finally absorbs its own polarity via changeToEqGate.
func moveoutMoveInvertersInTreeOfInverters(n *Network, gate *Gate) {
	for i := 0; i < gate.FanIn(); i++ {
		if gate.Inverting(i) {
			continue
		}
		d := gate.Driver(i)
		if d.outputInverting && d.FanOut() == 1 {
			d.outputInverting = false
			gate.SetInverting(i, true)
			if c := d.complement; c != nil {
				n.mergeEqGates(c, d)
			}
			continue
		}
		moveoutMoveInvertersInTreeOfInverters(n, d)
		i--
	}
	changeToEqGate(gate)
}

// moveShiftInvertersToInputBuffers finalizes moveInverters at the primary
// inputs: when every follower of a primary input inverts, the input
// buffer's own polarity flips instead; otherwise the input is duplicated
// into a complementary input buffer (fan-in 1, driven by the original,
// depth reset to 0 per I3) and only the inverting followers move to it.
func moveShiftInvertersToInputBuffers(n *Network) {
	for _, in := range append([]*Gate{}, n.inputs...) {
		total := in.FanOut()
		if total == 0 {
			continue
		}
		inv := invertedFollowerCount(in)
		if inv == total {
			in.FlipOutputInverting()
			clearInvertingEdgesFrom(in)
			continue
		}
		if inv == 0 {
			continue
		}
		h := in.complement
		if h == nil {
			h = newGate(in.name+"_CPLM", FnBuffer, RoleInput)
			connect(in, h, true)
			h.resetDepth()
			h.setComplement(in)
			in.setComplement(h)
			n.addInputGate(h)
		}
		for _, f := range append([]*Gate{}, in.followers...) {
			for i := 0; i < f.FanIn(); i++ {
				if f.Driver(i) == in {
					if f.Inverting(i) {
						disconnect(in, f)
						connect(h, f, false)
					}
					break
				}
			}
		}
	}
}

// moveShiftInvertersInOutputBuffers finalizes moveInverters at the primary
// outputs: an inverting driver edge is cleared and replaced by the output
// buffer's own outputInverting bit.
func moveShiftInvertersInOutputBuffers(n *Network) {
	for _, o := range n.outputs {
		if o.FanIn() == 1 && o.Inverting(0) {
			o.SetInverting(0, false)
			o.SetOutputInverting(true)
		}
	}
}
