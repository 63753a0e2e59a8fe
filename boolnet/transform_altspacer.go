package boolnet

// EnableAltSpacer realizes the alternating-spacer dual-rail variant on a
// graph already expanded by ConvDualRail. It negates the dual-rail output
// convention (every inner gate now inverts its own output), then, for
// every gate in the first half of the gate list — which, immediately
// after ConvDualRail, is exactly the set of original (pre-duplication)
// gates, since their complementary twins were all appended after them —
// balances depth parity: any follower sharing the gate's own depth parity
// would otherwise see two same-parity transitions in the same spacer
// phase, so a mutually-complementary pair of inverting buffers is spliced
// in between the gate (and its complement) and that follower (and the
// follower's complement), preserving the rail crossing.
func EnableAltSpacer(n *Network) {
	for _, g := range n.gates {
		g.outputInverting = true
	}

	half := (len(n.gates) + 1) / 2
	firstHalf := append([]*Gate{}, n.gates[:half]...)

	for _, g := range firstHalf {
		h := g.complement
		if h == nil {
			continue
		}
		var sameParity []*Gate
		for _, f := range append([]*Gate{}, g.followers...) {
			if f.depth%2 == g.depth%2 {
				sameParity = append(sameParity, f)
			}
		}
		if len(sameParity) == 0 {
			continue
		}

		inv0 := newGate(g.name+"_BALANCE0", FnBuffer, RoleInner)
		inv1 := newGate(g.name+"_BALANCE1", FnBuffer, RoleInner)
		inv0.outputInverting = true
		inv1.outputInverting = true
		inv0.setComplement(inv1)
		inv1.setComplement(inv0)
		connect(g, inv0, false)
		connect(h, inv1, false)
		n.addInnerGate(inv0)
		n.addInnerGate(inv1)

		for _, f := range sameParity {
			inv := edgeInverting(f, g)
			disconnect(g, f)
			connect(inv0, f, inv)

			if fc := f.complement; fc != nil {
				invc := edgeInverting(fc, h)
				disconnect(h, fc)
				connect(inv1, fc, invc)
			}
		}
	}
}
