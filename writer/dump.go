package writer

import (
	"fmt"
	"io"

	"github.com/circuitwright/tsact/boolnet"
)

// WriteDump renders net as a plain-text report: every colored input,
// output, and gate with its SCOAP triple and in/out cone sizes.
func WriteDump(w io.Writer, net *boolnet.Network, color boolnet.Color) error {
	fmt.Fprintln(w, "TSaCt2 dump file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Circuit inputs:")
	for _, in := range net.Inputs() {
		if !in.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "  - %s\n", in.Name())
		fmt.Fprintf(w, "    * SCOAP: %d/%d/%d\n", in.CC0(), in.CC1(), in.CO())
		fmt.Fprintf(w, "    * OUT TREE: %d\n", in.OutTreeSize())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Circuit outputs:")
	for _, out := range net.Outputs() {
		if !out.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "  - %s\n", out.Name())
		fmt.Fprintf(w, "    * SCOAP: %d/%d/%d\n", out.CC0(), out.CC1(), out.CO())
		fmt.Fprintf(w, "    * IN TREE: %d\n", out.InTreeSize())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Circuit gates:")
	for _, g := range net.Gates() {
		if !g.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "  - %s\n", g.Name())
		fmt.Fprintf(w, "    * SCOAP: %d/%d/%d\n", g.CC0(), g.CC1(), g.CO())
		fmt.Fprintf(w, "    * OUT TREE: %d\n", g.OutTreeSize())
		fmt.Fprintf(w, "    * IN TREE: %d\n", g.InTreeSize())
	}
	fmt.Fprintln(w)
	return nil
}

// Dump writes net to basename+".txt".
func (wr *Writer) Dump(color boolnet.Color) error {
	f, err := wr.create(".txt")
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteDump(f, wr.Net, color)
}
