package writer

import (
	"fmt"
	"io"

	"github.com/circuitwright/tsact/boolnet"
)

// WriteHeatMap renders net's current simulation state as a CSV-ish table,
// one row per colored gate: its placed (x,y) coordinate if net has been
// placed, else its (depth, position-within-depth), followed by a bitmask
// of which driver inputs currently read true.
func WriteHeatMap(w io.Writer, net *boolnet.Network, color boolnet.Color) error {
	cnt := make([]int, net.NetDepth()+1)

	if net.Placed() {
		fmt.Fprintln(w, "gate name; x; y; gate state;")
	} else {
		fmt.Fprintln(w, "gate name; depth; cnt; gate state;")
	}

	for _, g := range net.Gates() {
		if !g.HasColor(color) {
			continue
		}
		if net.Placed() {
			fmt.Fprintf(w, "%s; %d; %d; ", g.Name(), g.X(), g.Y())
		} else {
			fmt.Fprintf(w, "%s; %d; %d; ", g.Name(), g.Depth(), cnt[g.Depth()])
			cnt[g.Depth()]++
		}

		var state uint8
		for j := 0; j < g.FanIn(); j++ {
			if g.Driver(j).SimValue() {
				state |= 0x01 << uint(j)
			}
		}
		fmt.Fprintf(w, "%d; \n", state)
	}
	return nil
}

// HeatMap writes net to basename+".heat".
func (wr *Writer) HeatMap(color boolnet.Color) error {
	f, err := wr.create(".heat")
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteHeatMap(f, wr.Net, color)
}
