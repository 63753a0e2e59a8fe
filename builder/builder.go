// Package builder turns an aiger.Plan into a *boolnet.Network: a pure
// function with no side effects beyond allocating and wiring gates, kept
// deliberately separate from the ASCII reader (spec's "side-effectful
// constructor" design note).
package builder

import (
	"github.com/pkg/errors"

	"github.com/circuitwright/tsact/aiger"
	"github.com/circuitwright/tsact/boolnet"
)

// ErrConstantOperand means an AND line or output referenced the AIGER
// constant literal (0 or 1) as an AND operand, which — unlike a constant
// output, which simply drops the output slot — this builder does not
// resolve to a gate. Real-world AIGER tool chains fold constants away
// before emitting AND lines; a Plan containing one is out of scope.
var ErrConstantOperand = errors.New("builder: constant literal used as an AND operand")

// Build allocates INPUT_k/GATE_k/OUT_k gates from plan's header counts,
// wires every AND line and output literal, drops any output whose literal
// is the constant 0 or 1, and calls ComputeNetDepth once before
// returning.
func Build(plan *aiger.Plan) (*boolnet.Network, error) {
	n := boolnet.NewNetwork(plan.NumInputs, len(plan.AndLines), len(plan.OutputLits))

	for k, al := range plan.AndLines {
		gate := n.GateAt(k)
		gate.SetFunction(boolnet.FnAnd)
		d0, inv0, err := resolve(n, plan.NumInputs, al.Rhs0)
		if err != nil {
			return nil, errors.Wrapf(err, "and line %d, rhs0", k)
		}
		boolnet.Connect(d0, gate, inv0)
		d1, inv1, err := resolve(n, plan.NumInputs, al.Rhs1)
		if err != nil {
			return nil, errors.Wrapf(err, "and line %d, rhs1", k)
		}
		boolnet.Connect(d1, gate, inv1)
	}

	var constantOutputs []int
	for k, lit := range plan.OutputLits {
		if lit == 0 || lit == 1 {
			constantOutputs = append(constantOutputs, k)
			continue
		}
		driver, inv, err := resolve(n, plan.NumInputs, lit)
		if err != nil {
			return nil, errors.Wrapf(err, "output %d", k)
		}
		boolnet.Connect(driver, n.OutputAt(k), inv)
	}
	for i := len(constantOutputs) - 1; i >= 0; i-- {
		n.RemOutput(constantOutputs[i])
	}

	n.ComputeNetDepth()
	return n, nil
}

// resolve maps an AIGER literal to its driving gate and edge polarity: a
// literal whose variable index is within 1..numInputs is a primary input
// (INPUT_{var-1}); above that it is an AND gate's output
// (GATE_{var-numInputs-1}).
func resolve(n *boolnet.Network, numInputs int, lit uint) (*boolnet.Gate, bool, error) {
	v := int(lit / 2)
	inverting := lit%2 == 1
	if v == 0 {
		return nil, false, ErrConstantOperand
	}
	if v <= numInputs {
		g := n.InputAt(v - 1)
		if g == nil {
			return nil, false, errors.Errorf("input index %d out of range", v-1)
		}
		return g, inverting, nil
	}
	g := n.GateAt(v - numInputs - 1)
	if g == nil {
		return nil, false, errors.Errorf("gate index %d out of range", v-numInputs-1)
	}
	return g, inverting, nil
}
