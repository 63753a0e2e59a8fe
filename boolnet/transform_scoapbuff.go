package boolnet

import "container/heap"

// scoapHeap is a container/heap max-heap over gates ordered by
// co * cc0 * cc1 — the hardest-to-test gates surface first.
type scoapHeap []*Gate

func (h scoapHeap) Len() int { return len(h) }
func (h scoapHeap) Less(i, j int) bool {
	return scoapScore(h[i]) > scoapScore(h[j])
}
func (h scoapHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *scoapHeap) Push(x any)   { *h = append(*h, x.(*Gate)) }
func (h *scoapHeap) Pop() any {
	old := *h
	n := len(old)
	g := old[n-1]
	*h = old[:n-1]
	return g
}

func scoapScore(g *Gate) int { return g.co * g.cc0 * g.cc1 }

// InsertBuffsByScoap pops the count hardest-to-test inner gates (by
// co*cc0*cc1) and splices an INNER BUFFER "<name>_SCOAPBUFF" between each
// one and its followers, adding the buffer to both the inner-gate and
// buffer collections so it becomes an SCOAP boundary on the next
// ComputeSumScoap. BUFFER gates, gates with no followers, and gates whose
// sole follower is itself a BUFFER are skipped — the last rule prevents
// chaining a buffer immediately behind another one. The loop runs exactly
// count times (or until the candidate heap is exhausted, whichever comes
// first) — not bounded by the heap's shrinking size as it pops.
func InsertBuffsByScoap(n *Network, count int) {
	h := &scoapHeap{}
	heap.Init(h)
	for _, g := range n.gates {
		if g.function == FnBuffer {
			continue
		}
		if g.FanOut() == 0 {
			continue
		}
		if g.FanOut() == 1 && g.Follower(0).function == FnBuffer {
			continue
		}
		heap.Push(h, g)
	}

	for i := 0; i < count && h.Len() > 0; i++ {
		g := heap.Pop(h).(*Gate)
		buf := newGate(g.name+"_SCOAPBUFF", FnBuffer, RoleInner)
		for _, f := range append([]*Gate{}, g.followers...) {
			inv := edgeInverting(f, g)
			disconnect(g, f)
			connect(buf, f, inv)
		}
		connect(g, buf, false)
		n.addBuffer(buf)
	}
}
