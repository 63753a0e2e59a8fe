package boolnet

import "math"

// Place2Rect assigns every inner gate a rectangular coordinate by
// breadth-first walking forward from the primary inputs, placing the i-th
// visited gate at (i mod edge, i div edge) where edge = ceil(sqrt(#inner
// gates)). A gate is only enqueued once its depth matches its driver's
// depth + 1, so the walk advances layer by layer.
func (n *Network) Place2Rect() {
	edge := int(math.Ceil(math.Sqrt(float64(len(n.gates)))))
	if edge < 1 {
		edge = 1
	}

	visited := make(map[*Gate]bool, len(n.gates))
	queue := make([]*Gate, 0, len(n.gates))
	for _, in := range n.inputs {
		queue = append(queue, in.followers...)
	}

	x, y := 0, 0
	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]
		if g.role != RoleInner || visited[g] {
			continue
		}
		visited[g] = true
		g.placeAt(x, y)
		x++
		if x == edge {
			x = 0
			y++
		}
		for _, f := range g.followers {
			if f.depth == g.depth+1 {
				queue = append(queue, f)
			}
		}
	}
	n.placed = true
}
