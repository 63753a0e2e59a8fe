package boolnet

// changeToEqGate swaps g's function between AND and OR, flips
// outputInverting, and flips every input's polarity bit. The result
// computes the same function (De Morgan duality), just restated with the
// opposite gate shape.
func changeToEqGate(g *Gate) {
	g.function = dual(g.function)
	g.outputInverting = !g.outputInverting
	for i := range g.inputs {
		g.inputs[i].inverting = !g.inputs[i].inverting
	}
}

// ChangeToEqGate is the exported entry point for command dispatch and
// tests.
func ChangeToEqGate(g *Gate) { changeToEqGate(g) }
