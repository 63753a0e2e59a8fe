// Package boolnet implements the gate-level Boolean network: the atomic
// Gate node, the owning Network container, and every structural
// transformation and analysis pass that mutates or inspects it.
package boolnet

import "math"

// Function tags the combinational behavior of a Gate. XOR is carried as an
// enum placeholder only; construction and the transforms in this package
// never produce it.
type Function int

const (
	FnBuffer Function = iota
	FnAnd
	FnOr
	FnXor
)

func (f Function) String() string {
	switch f {
	case FnBuffer:
		return "BUFFER"
	case FnAnd:
		return "AND"
	case FnOr:
		return "OR"
	case FnXor:
		return "XOR"
	default:
		return "?"
	}
}

// dual returns the function that shares the AND/OR duality used by
// dual-rail expansion; BUFFER and XOR are self-dual here.
func dual(f Function) Function {
	switch f {
	case FnAnd:
		return FnOr
	case FnOr:
		return FnAnd
	default:
		return f
	}
}

// Role classifies a gate's position in the network.
type Role int

const (
	RoleInput Role = iota
	RoleInner
	RoleOutput
)

// Color is a bitfield recording which cone(s) a gate has been visited by.
type Color uint8

const (
	ColorNone     Color = 0
	ColorInTree   Color = 1 << 0
	ColorOutTree  Color = 1 << 1
	ColorDualBase Color = 1 << 2
)

// Infinity is the SCOAP sentinel for "not yet computed".
const Infinity = math.MaxInt32

// Model is optional writer-attached metadata describing a technology cell.
// The core never reads it.
type Model struct {
	Name            string
	InternalDelay   float64
	PrechargeDelay  float64
	InputCapacity   float64
	OutputCurrent   float64
	Size            float64
}

// edge is one (driver, inverting) pair in a gate's input list.
type edge struct {
	driver    *Gate
	inverting bool
}

// Gate is the atomic node of the network. All graph edges (inputs,
// followers, complement) are plain pointers into the owning Network's
// arena; Network is the only thing that ever allocates or frees one.
type Gate struct {
	name     string
	function Function
	role     Role

	inputs    []edge
	followers []*Gate

	outputInverting bool
	depth           int

	cc0, cc1, co int

	color Color

	placed bool
	x, y   int

	complement *Gate

	simValue bool

	inTreeSize, outTreeSize int

	Model *Model
}

func newGate(name string, fn Function, role Role) *Gate {
	return &Gate{
		name:     name,
		function: fn,
		role:     role,
		depth:    0,
		cc0:      Infinity,
		cc1:      Infinity,
		co:       Infinity,
		color:    ColorNone,
	}
}

// Name returns the gate's unique human-readable identifier.
func (g *Gate) Name() string { return g.name }

// Function returns the gate's logic function.
func (g *Gate) Function() Function { return g.function }

// SetFunction overwrites the gate's logic function; used by the builder
// while wiring AND lines and by transforms that swap polarity duals.
func (g *Gate) SetFunction(fn Function) { g.function = fn }

// Role returns whether this is a primary input, an inner gate, or a
// primary output.
func (g *Gate) Role() Role { return g.role }

// OutputInverting reports the gate's output-polarity bit.
func (g *Gate) OutputInverting() bool { return g.outputInverting }

// SetOutputInverting sets the gate's output-polarity bit.
func (g *Gate) SetOutputInverting(v bool) { g.outputInverting = v }

// FlipOutputInverting toggles the gate's output-polarity bit.
func (g *Gate) FlipOutputInverting() { g.outputInverting = !g.outputInverting }

// FanIn returns the number of drivers.
func (g *Gate) FanIn() int { return len(g.inputs) }

// FanOut returns the number of followers.
func (g *Gate) FanOut() int { return len(g.followers) }

// Driver returns the i-th driver, or nil if i is out of range.
func (g *Gate) Driver(i int) *Gate {
	if i < 0 || i >= len(g.inputs) {
		return nil
	}
	return g.inputs[i].driver
}

// Inverting reports the polarity bit of the i-th input edge.
func (g *Gate) Inverting(i int) bool {
	if i < 0 || i >= len(g.inputs) {
		return false
	}
	return g.inputs[i].inverting
}

// SetInverting sets the polarity bit of the i-th input edge.
func (g *Gate) SetInverting(i int, v bool) {
	if i < 0 || i >= len(g.inputs) {
		return
	}
	g.inputs[i].inverting = v
}

// Follower returns the i-th follower, or nil if i is out of range.
func (g *Gate) Follower(i int) *Gate {
	if i < 0 || i >= len(g.followers) {
		return nil
	}
	return g.followers[i]
}

// Followers returns the live follower slice. Callers must not retain it
// across a mutation of g.
func (g *Gate) Followers() []*Gate { return g.followers }

// Depth returns g's current depth (0 for a primary input).
func (g *Gate) Depth() int { return g.depth }

// newInput prepends (driver, inverting) to g's input list and grows g's
// depth if driver is deep enough. The caller is responsible for also
// calling driver.newFollow(g) to preserve I1.
func (g *Gate) newInput(driver *Gate, inverting bool) {
	g.inputs = append([]edge{{driver: driver, inverting: inverting}}, g.inputs...)
	g.setDepth(driver.depth + 1)
}

// newFollow appends follower to g's follower list. Paired with
// follower.newInput(g, ...) by the caller to preserve I1.
func (g *Gate) newFollow(follower *Gate) {
	g.followers = append(g.followers, follower)
}

// remInput removes the first input edge driven by driver, if any.
func (g *Gate) remInput(driver *Gate) {
	for i, e := range g.inputs {
		if e.driver == driver {
			g.inputs = append(g.inputs[:i], g.inputs[i+1:]...)
			break
		}
	}
}

// remFollow removes the first occurrence of follower, if any.
func (g *Gate) remFollow(follower *Gate) {
	for i, f := range g.followers {
		if f == follower {
			g.followers = append(g.followers[:i], g.followers[i+1:]...)
			break
		}
	}
}

// swapDriver replaces the first input edge driven by old with new,
// preserving the edge's polarity bit, and grows depth if new is deeper.
func (g *Gate) swapDriver(old, new_ *Gate) {
	for i, e := range g.inputs {
		if e.driver == old {
			g.inputs[i].driver = new_
			g.setDepth(new_.depth + 1)
			return
		}
	}
}

// setDepth monotonically raises g's depth to d, propagating d+1 to every
// follower when it actually changes. Returns whether anything changed.
func (g *Gate) setDepth(d int) bool {
	if d <= g.depth {
		return false
	}
	g.depth = d
	for _, f := range g.followers {
		f.setDepth(d + 1)
	}
	return true
}

// resetDepth unconditionally clears depth to 0, used when splicing in a
// fresh duplicate input buffer.
func (g *Gate) resetDepth() { g.depth = 0 }

// Connect is the exported entry point for the builder and for tests; see
// connect.
func Connect(driver, follower *Gate, inverting bool) { connect(driver, follower, inverting) }

// Disconnect is the exported entry point for the builder and for tests;
// see disconnect.
func Disconnect(driver, follower *Gate) { disconnect(driver, follower) }

// connect wires driver -> follower with the given polarity, keeping both
// sides of the edge consistent (I1). This is the only way an edge should
// ever be created.
func connect(driver, follower *Gate, inverting bool) {
	follower.newInput(driver, inverting)
	driver.newFollow(follower)
}

// disconnect removes the driver -> follower edge from both sides.
func disconnect(driver, follower *Gate) {
	follower.remInput(driver)
	driver.remFollow(follower)
}

// computeOutputValue evaluates g from its drivers' simValue and stores the
// result in g.simValue. Each function case computes its own result; none
// relies on falling through to a neighboring case.
func (g *Gate) computeOutputValue() bool {
	var v bool
	switch g.function {
	case FnAnd:
		v = true
		for _, e := range g.inputs {
			dv := e.driver.simValue
			if e.inverting {
				dv = !dv
			}
			v = v && dv
		}
	case FnOr:
		v = false
		for _, e := range g.inputs {
			dv := e.driver.simValue
			if e.inverting {
				dv = !dv
			}
			v = v || dv
		}
	case FnXor:
		v = false
		for _, e := range g.inputs {
			dv := e.driver.simValue
			if e.inverting {
				dv = !dv
			}
			v = v != dv
		}
	case FnBuffer:
		if len(g.inputs) > 0 {
			dv := g.inputs[0].driver.simValue
			if g.inputs[0].inverting {
				dv = !dv
			}
			v = dv
		}
	}
	if g.outputInverting {
		v = !v
	}
	g.simValue = v
	return v
}

// SimValue returns the last value computed for this gate (or set directly
// on a primary input by simInVect).
func (g *Gate) SimValue() bool { return g.simValue }

// SetSimValue sets the gate's simulated value directly, used to seed
// primary inputs before a simulation pass.
func (g *Gate) SetSimValue(v bool) { g.simValue = v }

// CC0, CC1, CO return the gate's SCOAP triple; Infinity until computed.
func (g *Gate) CC0() int { return g.cc0 }
func (g *Gate) CC1() int { return g.cc1 }
func (g *Gate) CO() int  { return g.co }

// setControlability stores a new (cc0, cc1) pair unconditionally. Used for
// boundary seeding; computeControlability (scoap.go) enforces the
// strictly-decreasing update rule for interior gates.
func (g *Gate) setControlability(cc0, cc1 int) {
	g.cc0 = cc0
	g.cc1 = cc1
}

// setObservability stores a new co value unconditionally. Used for
// boundary seeding.
func (g *Gate) setObservability(co int) {
	g.co = co
}

// addColor bit-ors c into the gate's color field.
func (g *Gate) addColor(c Color) { g.color |= c }

// hasColor reports whether (g.color & c) != 0; c == ColorNone is the
// "any gate" sentinel and always reports true.
func (g *Gate) hasColor(c Color) bool {
	if c == ColorNone {
		return true
	}
	return g.color&c != 0
}

// Color exposes the gate's full color bitfield for inspection.
func (g *Gate) Color() Color { return g.color }

// HasColor reports whether (g.Color() & c) != 0; c == ColorNone is the
// "any gate" sentinel and always reports true. Writers use this to filter
// output to a single colored subset of the network.
func (g *Gate) HasColor(c Color) bool { return g.hasColor(c) }

// Complement returns the gate's paired twin, or nil.
func (g *Gate) Complement() *Gate { return g.complement }

// setComplement is a one-way setter; callers set both sides unless
// intentionally breaking the pair.
func (g *Gate) setComplement(h *Gate) { g.complement = h }

// Placed reports whether place2Rect has assigned this gate coordinates.
func (g *Gate) Placed() bool  { return g.placed }
func (g *Gate) X() int        { return g.x }
func (g *Gate) Y() int        { return g.y }
func (g *Gate) placeAt(x, y int) {
	g.placed = true
	g.x, g.y = x, y
}

// InTreeSize, OutTreeSize return the last computed cached tree sizes.
func (g *Gate) InTreeSize() int  { return g.inTreeSize }
func (g *Gate) OutTreeSize() int { return g.outTreeSize }

// computeInTreeSize is a post-order recursion over drivers, summing 1 per
// edge plus the driver's own in-tree size. Not memoized across calls.
func (g *Gate) computeInTreeSize() int {
	size := 0
	for _, e := range g.inputs {
		size += 1 + e.driver.computeInTreeSize()
	}
	g.inTreeSize = size
	return size
}

// computeOutTreeSize is the follower-side dual of computeInTreeSize.
func (g *Gate) computeOutTreeSize() int {
	size := 0
	for _, f := range g.followers {
		size += 1 + f.computeOutTreeSize()
	}
	g.outTreeSize = size
	return size
}
