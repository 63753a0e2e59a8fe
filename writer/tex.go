package writer

import (
	"fmt"
	"io"

	"github.com/circuitwright/tsact/boolnet"
)

// WriteTeX renders net as a standalone circuitikz document: one node per
// colored input/gate/output positioned on a grid by depth, followed by the
// edges between them (with a small circle marking an inverting input).
func WriteTeX(w io.Writer, net *boolnet.Network, color boolnet.Color) error {
	cnt := make([]int, net.NetDepth()+1)

	fmt.Fprintln(w, `\documentclass{standalone}`)
	fmt.Fprintln(w, `\usepackage{circuitikz}`)
	fmt.Fprintln(w, `\begin{document}`)
	fmt.Fprintln(w, `\begin{circuitikz} \draw`)

	placeNode := func(g *boolnet.Gate, label string) {
		d := g.Depth()
		fmt.Fprintf(w, "(%d,%d) node[%s, color=blue] (%s) {} node[yshift=-1.0cm] {%s}\n",
			4*d, 4*cnt[d], texPortName(g), g.Name(), label)
		cnt[d]++
	}

	for i, in := range net.Inputs() {
		if in.HasColor(color) {
			placeNode(in, fmt.Sprintf("%d (%d)", i, 2*i+2))
		}
	}
	for _, out := range net.Outputs() {
		if out.HasColor(color) {
			placeNode(out, "")
		}
	}
	for i, g := range net.Gates() {
		if !g.HasColor(color) {
			continue
		}
		d := g.Depth()
		fmt.Fprintf(w, "(%d,%d) node[%s, color=blue] (%s) {} node[yshift=-1.0cm,xshift=-0.6cm] {%d (%d)}\n",
			4*d, 4*cnt[d], texPortName(g), g.Name(), i, 2*(i+len(net.Inputs())+1))
		fmt.Fprintf(w, "node[yshift=-1.5cm,xshift=-0.6cm] {SCOAP: %d/%d/%d}\n", g.CC0(), g.CC1(), g.CO())
		fmt.Fprintf(w, "node[yshift=0.2cm,xshift=0.8cm] {FO = %d}\n", g.FanOut())
		cnt[d]++
	}

	fmt.Fprintln(w, `;\draw[thick]`)

	drawEdge := func(g *boolnet.Gate) {
		for j := 0; j < g.FanIn(); j++ {
			d := g.Driver(j)
			if d == nil || !d.HasColor(color) {
				continue
			}
			fmt.Fprint(w, `;\draw[color=red, thick]`)
			in := fmt.Sprintf(".in %d", j+1)
			if g.Function() == boolnet.FnBuffer {
				in = ".in"
			}
			fmt.Fprintf(w, "(%s.out) -- (%s%s)\n", d.Name(), g.Name(), in)
			if g.Inverting(j) {
				fmt.Fprintf(w, `;\draw (%s%s) [xshift=0.12cm,thick,color=blue,fill=white]circle (0.1cm);`+"\n", g.Name(), in)
			}
		}
	}

	for _, g := range net.Gates() {
		if g.HasColor(color) {
			drawEdge(g)
		}
	}

	for _, in := range net.Inputs() {
		if in.HasColor(color) && in.FanIn() == 1 {
			fmt.Fprint(w, `;\draw[color=blue, thick]`)
			fmt.Fprintf(w, "(%s.out) -- (%s.in)\n", in.Driver(0).Name(), in.Name())
		}
	}

	for _, out := range net.Outputs() {
		if !out.HasColor(color) {
			continue
		}
		fmt.Fprint(w, `;\draw[color=red, thick]`)
		fmt.Fprintf(w, "(%s.out) -- (%s.in)\n", out.Driver(0).Name(), out.Name())
		if out.Inverting(0) {
			fmt.Fprintf(w, `;\draw (%s.in) [xshift=0.12cm,thick,color=blue,fill=white]circle (0.1cm);`+"\n", out.Name())
		}
	}

	fmt.Fprintln(w, `;\end{circuitikz}`)
	fmt.Fprintln(w, `\end{document}`)
	return nil
}

func texPortName(g *boolnet.Gate) string {
	switch g.Function() {
	case boolnet.FnAnd:
		if g.OutputInverting() {
			return "nand port"
		}
		return "and port"
	case boolnet.FnOr:
		if g.OutputInverting() {
			return "nor port"
		}
		return "or port"
	case boolnet.FnXor:
		if g.OutputInverting() {
			return "nxor port"
		}
		return "xor port"
	default:
		if g.OutputInverting() {
			return "not port"
		}
		return "buffer"
	}
}

// TeX writes net to basename+".tex".
func (wr *Writer) TeX(color boolnet.Color) error {
	f, err := wr.create(".tex")
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTeX(f, wr.Net, color)
}
