package boolnet

import "github.com/pkg/errors"

// Sentinel errors surfaced by CheckInvariants, the defensive consistency
// check used by tests (and available to any caller that wants to validate
// a graph after a sequence of transforms).
var (
	// ErrBrokenSymmetry means some gate's input edge is not mirrored by a
	// matching entry in the driver's follower list, or vice versa (I1).
	ErrBrokenSymmetry = errors.New("boolnet: driver/follower symmetry broken")
	// ErrCycle means the driver graph is not a DAG (I6).
	ErrCycle = errors.New("boolnet: cycle detected in driver graph")
)

// CheckInvariants verifies I1 (driver/follower symmetry) and I6
// (acyclicity) over the whole network. It is not called by any
// transformation; it exists so tests can assert P1/P2 after a pass.
func (n *Network) CheckInvariants() error {
	for _, g := range n.allGates() {
		for i := 0; i < g.FanIn(); i++ {
			d := g.Driver(i)
			found := false
			for _, f := range d.followers {
				if f == g {
					found = true
					break
				}
			}
			if !found {
				return errors.Wrapf(ErrBrokenSymmetry, "gate %s driver %s missing follower link", g.name, d.name)
			}
		}
		for _, f := range g.followers {
			found := false
			for i := 0; i < f.FanIn(); i++ {
				if f.Driver(i) == g {
					found = true
					break
				}
			}
			if !found {
				return errors.Wrapf(ErrBrokenSymmetry, "gate %s follower %s missing driver link", g.name, f.name)
			}
		}
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	mark := make(map[*Gate]int, len(n.allGates()))
	var visit func(g *Gate) error
	visit = func(g *Gate) error {
		switch mark[g] {
		case black:
			return nil
		case gray:
			return errors.Wrapf(ErrCycle, "at gate %s", g.name)
		}
		mark[g] = gray
		for i := 0; i < g.FanIn(); i++ {
			if err := visit(g.Driver(i)); err != nil {
				return err
			}
		}
		mark[g] = black
		return nil
	}
	for _, g := range n.allGates() {
		if err := visit(g); err != nil {
			return err
		}
	}
	return nil
}
