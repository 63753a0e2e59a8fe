package boolnet

import "testing"

func TestNewInputPrependsAndGrowsDepth(t *testing.T) {
	a := newGate("a", FnBuffer, RoleInput)
	b := newGate("b", FnBuffer, RoleInput)
	g := newGate("g", FnAnd, RoleInner)

	connect(a, g, false)
	connect(b, g, true)

	if g.FanIn() != 2 {
		t.Fatalf("FanIn() = %d, want 2", g.FanIn())
	}
	// connect appends via newFollow on the driver side but prepends via
	// newInput on the follower side, so b (connected second) lands first.
	if g.Driver(0) != b || g.Driver(1) != a {
		t.Fatalf("unexpected driver order: %s, %s", g.Driver(0).Name(), g.Driver(1).Name())
	}
	if g.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", g.Depth())
	}
}

func TestSetDepthMonotoneAndPropagates(t *testing.T) {
	a := newGate("a", FnBuffer, RoleInput)
	g := newGate("g", FnBuffer, RoleInner)
	h := newGate("h", FnBuffer, RoleInner)
	connect(a, g, false)
	connect(g, h, false)

	if h.Depth() != 2 {
		t.Fatalf("h.Depth() = %d, want 2", h.Depth())
	}
	if g.setDepth(0) {
		t.Fatalf("setDepth with a smaller value should not change anything")
	}
	if !g.setDepth(5) {
		t.Fatalf("setDepth with a larger value should report a change")
	}
	if h.Depth() != 6 {
		t.Fatalf("h.Depth() = %d, want 6 after driver depth grew", h.Depth())
	}
}

func TestRemInputRemovesFirstMatchOnly(t *testing.T) {
	a := newGate("a", FnBuffer, RoleInput)
	g := newGate("g", FnAnd, RoleInner)
	connect(a, g, false)
	connect(a, g, true)

	if g.FanIn() != 2 {
		t.Fatalf("FanIn() = %d, want 2", g.FanIn())
	}
	disconnect(a, g)
	if g.FanIn() != 1 {
		t.Fatalf("FanIn() = %d, want 1 after one disconnect", g.FanIn())
	}
	if a.FanOut() != 1 {
		t.Fatalf("a.FanOut() = %d, want 1 after one disconnect", a.FanOut())
	}
}

func TestComputeOutputValueEachFunction(t *testing.T) {
	a := newGate("a", FnBuffer, RoleInput)
	b := newGate("b", FnBuffer, RoleInput)
	a.SetSimValue(true)
	b.SetSimValue(false)

	and := newGate("and", FnAnd, RoleInner)
	connect(a, and, false)
	connect(b, and, false)
	if v := and.computeOutputValue(); v != false {
		t.Errorf("AND(1,0) = %v, want false", v)
	}

	or := newGate("or", FnOr, RoleInner)
	connect(a, or, false)
	connect(b, or, false)
	if v := or.computeOutputValue(); v != true {
		t.Errorf("OR(1,0) = %v, want true", v)
	}

	xor := newGate("xor", FnXor, RoleInner)
	connect(a, xor, false)
	connect(b, xor, false)
	if v := xor.computeOutputValue(); v != true {
		t.Errorf("XOR(1,0) = %v, want true", v)
	}

	buf := newGate("buf", FnBuffer, RoleInner)
	connect(a, buf, true)
	if v := buf.computeOutputValue(); v != false {
		t.Errorf("BUFFER(not 1) = %v, want false", v)
	}

	buf.SetOutputInverting(true)
	if v := buf.computeOutputValue(); v != true {
		t.Errorf("BUFFER(not 1) with outputInverting = %v, want true", v)
	}
}

func TestComputeInOutTreeSize(t *testing.T) {
	a := newGate("a", FnBuffer, RoleInput)
	b := newGate("b", FnBuffer, RoleInput)
	g := newGate("g", FnAnd, RoleInner)
	o := newGate("o", FnBuffer, RoleOutput)
	connect(a, g, false)
	connect(b, g, false)
	connect(g, o, false)

	if size := o.computeInTreeSize(); size != 3 {
		t.Errorf("o.InTreeSize() = %d, want 3 (g, a, b edges)", size)
	}
	if size := a.computeOutTreeSize(); size != 2 {
		t.Errorf("a.OutTreeSize() = %d, want 2 (g, o edges)", size)
	}
}
