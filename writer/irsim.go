package writer

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/circuitwright/tsact/boolnet"
	"github.com/circuitwright/tsact/library"
)

// WriteIRSIM renders net as an IRSIM .sim switch-level netlist, mapping
// every gate through lib using mapAlg. It requires lib to have loaded the
// IRSIM format's models first.
func WriteIRSIM(w io.Writer, net *boolnet.Network, basename string, lib *library.Library, mapAlg MapAlgorithm, color boolnet.Color) error {
	if lib == nil {
		return ErrNoLibrary
	}
	ok, err := lib.LoadModels(library.FormatIRSIM)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrap(ErrMissingCells, "loading basic IRSIM models failed")
	}

	fmt.Fprintf(w, "|Name: %s\n", basename)
	fmt.Fprintln(w, "|units: 100 tech: scmos ")
	fmt.Fprintln(w, "|  ")
	fmt.Fprintf(w, "|vector in_0 INPUT_0:%d\n", len(net.Inputs())/2-1)
	fmt.Fprintf(w, "|vector in_1 D_INPUT_0:%d\n", len(net.Inputs())/2-1)
	fmt.Fprintf(w, "|vector in INPUT_0:%d\n", len(net.Inputs())-1)
	fmt.Fprintf(w, "|vector out_0 OUT_0:%d\n", len(net.Outputs())/2-1)
	fmt.Fprintf(w, "|vector out_1 D_OUT_0:%d\n", len(net.Outputs())/2-1)
	fmt.Fprintf(w, "|vector out OUT_0:%d\n", len(net.Outputs())-1)
	fmt.Fprintln(w, "|  ")
	fmt.Fprintln(w, "|type gate source drain length width  ")
	fmt.Fprintln(w, "|---- ---- ------ ----- ------ -----  ")
	fmt.Fprintln(w)

	for _, g := range net.Gates() {
		if !g.HasColor(color) {
			continue
		}
		s, err := getFromLibrary(lib, g, library.FormatIRSIM, mapAlg)
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, s)
		fmt.Fprintln(w)
	}

	for i, out := range net.Outputs() {
		if !out.HasColor(color) {
			continue
		}
		fmt.Fprintf(w, "| output %d\n", i)
		s, err := getFromLibrary(lib, out, library.FormatIRSIM, mapAlg)
		if err != nil {
			return err
		}
		fmt.Fprint(w, s)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "| EOF")
	return nil
}

// IRSIM writes net to basename+".sim".
func (wr *Writer) IRSIM(color boolnet.Color) error {
	f, err := wr.create(".sim")
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteIRSIM(f, wr.Net, wr.Basename, wr.Lib, wr.MapAlg, color)
}
