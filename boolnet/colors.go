package boolnet

// MarkInTree walks the driver graph from g back to every primary input
// reachable from it, using an explicit stack (not recursion), or-ing c
// into every visited gate's color.
func MarkInTree(g *Gate, c Color) {
	stack := []*Gate{g}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur.addColor(c)
		for i := 0; i < cur.FanIn(); i++ {
			stack = append(stack, cur.Driver(i))
		}
	}
}

// MarkOutTree is the follower-side dual of MarkInTree, walking forward
// to every primary output reachable from g.
func MarkOutTree(g *Gate, c Color) {
	stack := []*Gate{g}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur.addColor(c)
		stack = append(stack, cur.followers...)
	}
}

// ColorBaseGates colors every gate with no complement, and for each
// complementary pair colors exactly one side — whichever one is visited
// first, since by the time its partner is visited the partner's
// complement (this gate) is already colored and is skipped. Every primary
// input and output is colored unconditionally (I5).
func (n *Network) ColorBaseGates(c Color) {
	for _, g := range n.gates {
		if g.complement == nil || !g.complement.hasColor(c) {
			g.addColor(c)
		}
	}
	for _, in := range n.inputs {
		in.addColor(c)
	}
	for _, out := range n.outputs {
		out.addColor(c)
	}
}
