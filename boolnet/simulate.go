package boolnet

import (
	"fmt"
	"io"
)

// SimInVect sets the simulated value of each *genuine* primary input
// (fan-in 0) k to bit k of bits (up to 32 such inputs; an input whose
// outputInverting bit is set takes the complement of its bit), then breadth-first
// propagates the change: each dequeued gate recomputes its own output
// value and enqueues its followers. A polarity-splitting duplicate input
// introduced by moveInverters or convDualRail has fan-in 1, so it is not
// force-set here — it is simply a BUFFER gate reached and computed in the
// normal BFS sweep once its true-input driver fires. Re-enqueuing a gate
// more than once is harmless, since computeOutputValue is idempotent
// within a pass.
func (n *Network) SimInVect(bits uint32) {
	trueInputs := make([]*Gate, 0, len(n.inputs))
	for _, in := range n.inputs {
		if in.FanIn() == 0 {
			trueInputs = append(trueInputs, in)
		}
	}
	max := len(trueInputs)
	if max > 32 {
		max = 32
	}
	queue := make([]*Gate, 0, len(n.gates))
	for k := 0; k < max; k++ {
		in := trueInputs[k]
		v := (bits>>uint(k))&1 == 1
		if in.outputInverting {
			v = !v
		}
		in.SetSimValue(v)
		queue = append(queue, in.followers...)
	}
	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]
		g.computeOutputValue()
		queue = append(queue, g.followers...)
	}
}

// PrintSimOut writes the last-simulated output bits, in declaration order,
// as "Output: 0b<bits>".
func (n *Network) PrintSimOut(w io.Writer) {
	fmt.Fprint(w, "Output: 0b")
	for _, o := range n.outputs {
		if o.SimValue() {
			fmt.Fprint(w, "1")
		} else {
			fmt.Fprint(w, "0")
		}
	}
	fmt.Fprintln(w)
}
