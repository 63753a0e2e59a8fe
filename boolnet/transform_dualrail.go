package boolnet

// flipFollowerEdgeBit toggles the polarity bit of the edge driven by g on
// follower f, in place, without disturbing edge order.
func flipFollowerEdgeBit(g, f *Gate) {
	for i := range f.inputs {
		if f.inputs[i].driver == g {
			f.inputs[i].inverting = !f.inputs[i].inverting
			return
		}
	}
}

// redirectInvertingInputs clears every inverting input bit on g, in place,
// redirecting each such edge to its driver's complement when one exists.
// Used by convDualRail's cleanup pass, which only ever runs on a graph
// where every driver with a residual inverting consumer already has a
// complement (every inner gate and every primary input was just given
// one).
func redirectInvertingInputs(g *Gate) {
	for i := range g.inputs {
		if !g.inputs[i].inverting {
			continue
		}
		d := g.inputs[i].driver
		g.inputs[i].inverting = false
		if c := d.complement; c != nil && c != d {
			d.remFollow(g)
			g.inputs[i].driver = c
			c.newFollow(g)
		}
	}
}

// ConvDualRail duplicates the whole combinational graph into a
// complementary copy: every inner gate gets a dual-function twin sharing
// its drivers with every polarity flipped, every primary input gets a
// complementary buffer, and every primary output gets a twin driven by its
// driver's complement. A cleanup pass then eliminates every residual
// inversion on inner gates and outputs, redirecting inverting edges to the
// driver's complement instead, so the monotone part of the resulting graph
// carries no inverters at all — polarity is expressed purely by which rail
// a consumer taps.
func ConvDualRail(n *Network) {
	origGates := append([]*Gate{}, n.gates...)
	for _, g := range origGates {
		h := newGate(g.name+"_D", dual(g.function), RoleInner)
		h.outputInverting = g.outputInverting
		for i := 0; i < g.FanIn(); i++ {
			connect(g.Driver(i), h, !g.Inverting(i))
		}
		g.setComplement(h)
		h.setComplement(g)
		n.addInnerGate(h)
	}

	origInputs := append([]*Gate{}, n.inputs...)
	for _, in := range origInputs {
		h := newGate(in.name+"_D", FnBuffer, RoleInput)
		connect(in, h, true)
		h.resetDepth()
		in.setComplement(h)
		h.setComplement(in)
		n.addInputGate(h)
	}

	origOutputs := append([]*Gate{}, n.outputs...)
	for _, o := range origOutputs {
		driver := o.Driver(0)
		driverInv := o.Inverting(0)
		compDriver := driver.complement
		h := newGate(o.name+"_D", FnBuffer, RoleOutput)
		connect(compDriver, h, driverInv)
		o.setComplement(h)
		h.setComplement(o)
		n.addOutputGate(h)
		if driverInv {
			disconnect(driver, o)
			disconnect(compDriver, h)
			connect(compDriver, o, false)
			connect(driver, h, false)
		}
	}

	for _, g := range n.gates {
		if g.outputInverting {
			for _, f := range append([]*Gate{}, g.followers...) {
				flipFollowerEdgeBit(g, f)
			}
			g.outputInverting = false
		}
	}
	for _, g := range n.gates {
		redirectInvertingInputs(g)
	}
	for _, o := range n.outputs {
		redirectInvertingInputs(o)
	}
}

// DualRailReduction is a recognized entry point for a post-duplication
// heuristic reduction (by minimum-inputs or minimum-gates count) that was
// never finished upstream; it is a documented no-op here; level is
// accepted and ignored.
func DualRailReduction(n *Network, level int) {
	_ = n
	_ = level
}
