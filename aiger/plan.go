package aiger

// AndLine is one AIGER AND definition: lhs = rhs0 & rhs1, all three as raw
// AIGER literals (even=positive, odd=negated; value>>1 is the variable).
type AndLine struct {
	Lhs, Rhs0, Rhs1 uint
}

// Plan is the fully-parsed, side-effect-free result of reading an ASCII
// AIGER stream: just the header counts and the raw literal data, with no
// reference to any Network. The builder package turns a Plan into a
// *boolnet.Network.
type Plan struct {
	NumInputs  int
	OutputLits []uint
	AndLines   []AndLine
}
