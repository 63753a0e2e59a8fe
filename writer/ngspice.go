package writer

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/circuitwright/tsact/boolnet"
	"github.com/circuitwright/tsact/library"
)

// WriteNgSpice renders net as an ngspice subcircuit netlist: one mapped
// cell per input inverter, output inverter, and inner gate, each bracketed
// by a BEGIN/END comment naming the gate it came from.
func WriteNgSpice(w io.Writer, net *boolnet.Network, basename string, lib *library.Library, mapAlg MapAlgorithm, color boolnet.Color) error {
	if lib == nil {
		return ErrNoLibrary
	}
	ok, err := lib.LoadModels(library.FormatNgSpice)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrap(ErrMissingCells, "loading basic NGSPICE models failed")
	}

	fmt.Fprintf(w, "* SPICE3 netlist of %s created by tsact\n", basename)

	fmt.Fprintln(w, "* ")
	fmt.Fprintln(w, "* *** input inverters *** ")
	fmt.Fprintln(w, "* ")
	for _, in := range net.Inputs() {
		if !in.HasColor(color) || in.FanIn() != 1 {
			continue
		}
		fmt.Fprintf(w, "* BEGIN :: Input %s\n\n", in.Name())
		s, err := getFromLibrary(lib, in, library.FormatNgSpice, mapAlg)
		if err != nil {
			return err
		}
		fmt.Fprint(w, s)
		fmt.Fprintf(w, "* END :: Input %s\n\n", in.Name())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "* ")
	fmt.Fprintln(w, "* *** output inverters *** ")
	fmt.Fprintln(w, "* ")
	for _, out := range net.Outputs() {
		if !out.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "* BEGIN :: Output %s\n\n", out.Name())
		s, err := getFromLibrary(lib, out, library.FormatNgSpice, mapAlg)
		if err != nil {
			return err
		}
		fmt.Fprint(w, s)
		fmt.Fprintf(w, "* END :: Output %s\n\n", out.Name())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "* ")
	fmt.Fprintln(w, "* *** gates ***")
	fmt.Fprintln(w, "* ")
	for _, g := range net.Gates() {
		if !g.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "* BEGIN :: Gate %s\n\n", g.Name())
		s, err := getFromLibrary(lib, g, library.FormatNgSpice, mapAlg)
		if err != nil {
			return err
		}
		fmt.Fprint(w, s)
		fmt.Fprintf(w, "* END :: Gate %s\n\n", g.Name())
	}

	fmt.Fprintln(w, ".end")
	return nil
}

// NgSpice writes net to basename+".spice".
func (wr *Writer) NgSpice(color boolnet.Color) error {
	f, err := wr.create(".spice")
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteNgSpice(f, wr.Net, wr.Basename, wr.Lib, wr.MapAlg, color)
}
