package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/circuitwright/tsact/boolnet"
)

// WriteDot renders net as a Graphviz DOT graph, ranking nodes by depth
// (rank=same per depth level) and marking a polarity mismatch between a
// driver's output and the consuming edge with a hollow-dot arrowhead.
func WriteDot(w io.Writer, net *boolnet.Network, color boolnet.Color) error {
	ranks := make([]strings.Builder, net.NetDepth()+1)

	fmt.Fprintln(w, "graph circ {")
	fmt.Fprintln(w, "  splines=ortho;")
	fmt.Fprintln(w, "  nodesep=0.005;")
	fmt.Fprintln(w, `  rankdir="RL";`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  node [shape=box width=1.5];")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Circuit inputs:")

	for _, in := range net.Inputs() {
		if !in.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "  %s [label=\"%s\" shape=circle];\n", in.Name(), in.Name())
		ranks[0].WriteString(in.Name())
		ranks[0].WriteByte(' ')
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Circuit outputs:")
	for _, out := range net.Outputs() {
		if !out.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "  %s [label=\"%s\" shape=circle];\n", out.Name(), out.Name())
		ranks[net.NetDepth()].WriteString(out.Name())
		ranks[net.NetDepth()].WriteByte(' ')
		writeDotEdges(w, out, color)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Circuit gates:")
	for _, g := range net.Gates() {
		if !g.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "  %s [label=<%s<BR /><FONT POINT-SIZE=\"10\">%s</FONT>>];\n",
			g.Name(), g.Function(), g.Name())
		ranks[g.Depth()].WriteString(g.Name())
		ranks[g.Depth()].WriteByte(' ')
		writeDotEdges(w, g, color)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Gate levels (ranks):")
	for i := 0; i <= net.NetDepth(); i++ {
		fmt.Fprintf(w, "  { rank=same; %s };\n", ranks[i].String())
	}

	fmt.Fprintln(w, "}")
	return nil
}

func writeDotEdges(w io.Writer, g *boolnet.Gate, color boolnet.Color) {
	for j := 0; j < g.FanIn(); j++ {
		d := g.Driver(j)
		if d == nil || !d.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "  %s -- %s [", g.Name(), d.Name())
		if g.Inverting(j) != d.OutputInverting() {
			if d.OutputInverting() {
				fmt.Fprint(w, ` dir=forward arrowhead="odot"`)
			} else {
				fmt.Fprint(w, ` dir=back arrowtail="odot"`)
			}
		}
		fmt.Fprintln(w, "];")
	}
}

// Dot writes net to basename+".dot".
func (wr *Writer) Dot(color boolnet.Color) error {
	f, err := wr.create(".dot")
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteDot(f, wr.Net, color)
}
