package boolnet

import "fmt"

// Network owns every Gate it ever allocates, arranged in four ordered
// collections: inner gates, primary inputs, primary outputs, and inserted
// buffers (a subset of gates also tracked for SCOAP boundary handling).
// Deletions happen only through mergeEqGates and RemOutput; nothing else
// ever removes a gate from its owning collection.
type Network struct {
	gates   []*Gate
	inputs  []*Gate
	outputs []*Gate
	buffers []*Gate

	netDepth     int
	netSumScoap  int
	netAvgFanOut float64
	placed       bool
}

// NewNetwork allocates numInputs primary inputs (INPUT_k), numGates inner
// gates (GATE_k), and numOutputs primary outputs (OUT_k). Inputs and
// outputs default to BUFFER/INPUT and BUFFER/OUTPUT; inner gates default to
// BUFFER/INNER and are switched to AND by the builder as AND lines are
// wired in.
func NewNetwork(numInputs, numGates, numOutputs int) *Network {
	n := &Network{
		inputs:  make([]*Gate, 0, numInputs),
		gates:   make([]*Gate, 0, numGates),
		outputs: make([]*Gate, 0, numOutputs),
	}
	for k := 0; k < numInputs; k++ {
		n.inputs = append(n.inputs, newGate(fmt.Sprintf("INPUT_%d", k), FnBuffer, RoleInput))
	}
	for k := 0; k < numGates; k++ {
		n.gates = append(n.gates, newGate(fmt.Sprintf("GATE_%d", k), FnBuffer, RoleInner))
	}
	for k := 0; k < numOutputs; k++ {
		n.outputs = append(n.outputs, newGate(fmt.Sprintf("OUT_%d", k), FnBuffer, RoleOutput))
	}
	return n
}

// Gates returns the inner-gate collection (excludes inputs/outputs, but
// includes SCOAP buffers and alt-spacer balancers spliced in as inner
// gates).
func (n *Network) Gates() []*Gate { return n.gates }

// Inputs returns the primary-input collection.
func (n *Network) Inputs() []*Gate { return n.inputs }

// Outputs returns the primary-output collection.
func (n *Network) Outputs() []*Gate { return n.outputs }

// Buffers returns the SCOAP-boundary buffer collection, a subset of Gates.
func (n *Network) Buffers() []*Gate { return n.buffers }

// NetDepth, NetSumScoap, NetAvgFanOut, Placed expose the cached scalars.
func (n *Network) NetDepth() int        { return n.netDepth }
func (n *Network) NetSumScoap() int     { return n.netSumScoap }
func (n *Network) NetAvgFanOut() float64 { return n.netAvgFanOut }
func (n *Network) Placed() bool         { return n.placed }

// addInnerGate appends a freshly allocated inner gate (used by transforms
// that duplicate or splice in new gates: dual-rail twins, alt-spacer
// balancers, SCOAP buffers, move-conflict duplicates).
func (n *Network) addInnerGate(g *Gate) {
	n.gates = append(n.gates, g)
}

// addInputGate appends a freshly allocated primary-input gate (used by
// moveInverters' conflict-duplication finalization step).
func (n *Network) addInputGate(g *Gate) {
	n.inputs = append(n.inputs, g)
}

// addOutputGate appends a freshly allocated primary-output gate (used by
// convDualRail to add each output's complementary twin).
func (n *Network) addOutputGate(g *Gate) {
	n.outputs = append(n.outputs, g)
}

// addBuffer records g as both an inner gate and an SCOAP-boundary buffer.
func (n *Network) addBuffer(g *Gate) {
	n.gates = append(n.gates, g)
	n.buffers = append(n.buffers, g)
}

// RemOutput drops the output slot at index i, disconnecting it from its
// driver. Used when the AIGER builder encounters a constant output
// literal.
func (n *Network) RemOutput(i int) {
	if i < 0 || i >= len(n.outputs) {
		return
	}
	o := n.outputs[i]
	if o.FanIn() > 0 {
		disconnect(o.Driver(0), o)
	}
	n.outputs = append(n.outputs[:i], n.outputs[i+1:]...)
}

// MergeEqGates is the exported entry point for command dispatch and
// tests; see mergeEqGates.
func (n *Network) MergeEqGates(dead, survivor *Gate) { n.mergeEqGates(dead, survivor) }

// mergeEqGates removes dead from the network: its followers are retargeted
// to survivor, its complement link (if pointing at dead) is cleared on the
// partner, and it is erased from the inner-gate collection.
func (n *Network) mergeEqGates(dead, survivor *Gate) {
	for _, d := range append([]*Gate{}, driversOf(dead)...) {
		disconnect(d, dead)
	}
	for _, f := range append([]*Gate{}, dead.followers...) {
		inv := edgeInverting(f, dead)
		disconnect(dead, f)
		connect(survivor, f, inv)
	}
	if c := dead.complement; c != nil && c.complement == dead {
		c.setComplement(nil)
	}
	for i, g := range n.gates {
		if g == dead {
			n.gates = append(n.gates[:i], n.gates[i+1:]...)
			break
		}
	}
	for i, g := range n.buffers {
		if g == dead {
			n.buffers = append(n.buffers[:i], n.buffers[i+1:]...)
			break
		}
	}
}

// driversOf returns the drivers of every input edge of g.
func driversOf(g *Gate) []*Gate {
	ds := make([]*Gate, 0, g.FanIn())
	for i := 0; i < g.FanIn(); i++ {
		ds = append(ds, g.Driver(i))
	}
	return ds
}

// edgeInverting returns the polarity bit of the edge driven by driver on
// follower, or false if no such edge exists.
func edgeInverting(follower, driver *Gate) bool {
	for i := 0; i < follower.FanIn(); i++ {
		if follower.Driver(i) == driver {
			return follower.Inverting(i)
		}
	}
	return false
}

// GateAt, InputAt, OutputAt index into the respective collection, or
// return nil if i is out of range. Used by the command dispatcher to
// resolve a numeric argument like "markIn 3" to a gate.
func (n *Network) GateAt(i int) *Gate {
	if i < 0 || i >= len(n.gates) {
		return nil
	}
	return n.gates[i]
}

func (n *Network) InputAt(i int) *Gate {
	if i < 0 || i >= len(n.inputs) {
		return nil
	}
	return n.inputs[i]
}

func (n *Network) OutputAt(i int) *Gate {
	if i < 0 || i >= len(n.outputs) {
		return nil
	}
	return n.outputs[i]
}

// GateByName scans every collection for a gate with the given name, or
// returns nil.
func (n *Network) GateByName(name string) *Gate {
	for _, g := range n.allGates() {
		if g.name == name {
			return g
		}
	}
	return nil
}

// allGates returns every gate the network owns, in inputs, inner, outputs
// order; used by passes that need to walk the whole graph.
func (n *Network) allGates() []*Gate {
	all := make([]*Gate, 0, len(n.inputs)+len(n.gates)+len(n.outputs))
	all = append(all, n.inputs...)
	all = append(all, n.gates...)
	all = append(all, n.outputs...)
	return all
}
