package writer

import (
	"fmt"
	"io"

	"github.com/circuitwright/tsact/boolnet"
)

// WriteBlif renders net as an unmapped BLIF model: a .names cover per
// gate using the gate's own AND/OR/BUFFER function and polarity, no
// technology cells involved.
func WriteBlif(w io.Writer, net *boolnet.Network, basename string, color boolnet.Color) error {
	fmt.Fprintf(w, ".model %s\n", basename)

	fmt.Fprint(w, ".inputs")
	for _, in := range net.Inputs() {
		if in.HasColor(color) && in.FanIn() == 0 {
			fmt.Fprintf(w, " %s", in.Name())
		}
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, ".outputs")
	for _, out := range net.Outputs() {
		if out.HasColor(color) {
			fmt.Fprintf(w, " %s", out.Name())
		}
	}
	fmt.Fprintln(w)

	for _, in := range net.Inputs() {
		if in.HasColor(color) && in.FanIn() != 0 {
			writeBlifNames(w, in)
		}
	}
	for _, g := range net.Gates() {
		if g.HasColor(color) {
			writeBlifNames(w, g)
		}
	}
	for _, out := range net.Outputs() {
		if out.HasColor(color) {
			writeBlifNames(w, out)
		}
	}

	fmt.Fprintln(w, ".end")
	return nil
}

func writeBlifNames(w io.Writer, g *boolnet.Gate) {
	fmt.Fprint(w, ".names")
	for j := 0; j < g.FanIn(); j++ {
		fmt.Fprintf(w, " %s", g.Driver(j).Name())
	}
	fmt.Fprintf(w, " %s\n", g.Name())
	fmt.Fprintln(w, blifCover(g))
}

// blifCover returns the single-line BLIF cover for an AND/OR/BUFFER gate,
// encoding each input's required polarity (0 if the edge inverts, else 1
// for AND / the mirror for OR) and the output row symbol for the gate's
// own output polarity.
func blifCover(g *boolnet.Gate) string {
	var cover []byte
	switch g.Function() {
	case boolnet.FnAnd:
		for j := 0; j < g.FanIn(); j++ {
			if g.Inverting(j) {
				cover = append(cover, '0')
			} else {
				cover = append(cover, '1')
			}
		}
		if g.OutputInverting() {
			cover = append(cover, ' ', '0')
		} else {
			cover = append(cover, ' ', '1')
		}
	case boolnet.FnOr:
		for j := 0; j < g.FanIn(); j++ {
			if g.Inverting(j) {
				cover = append(cover, '1')
			} else {
				cover = append(cover, '0')
			}
		}
		if g.OutputInverting() {
			cover = append(cover, ' ', '1')
		} else {
			cover = append(cover, ' ', '0')
		}
	case boolnet.FnBuffer:
		for j := 0; j < g.FanIn(); j++ {
			if g.Inverting(j) {
				cover = append(cover, '0')
			} else {
				cover = append(cover, '1')
			}
		}
		if g.OutputInverting() {
			cover = append(cover, ' ', '0')
		} else {
			cover = append(cover, ' ', '1')
		}
	default:
		return "ERROR"
	}
	return string(cover)
}

// Blif writes net to basename+".blif".
func (wr *Writer) Blif(color boolnet.Color) error {
	f, err := wr.create(".blif")
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteBlif(f, wr.Net, wr.Basename, color)
}
