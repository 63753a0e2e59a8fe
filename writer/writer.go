// Package writer renders a boolnet.Network to the various external
// formats the rest of the toolchain is expected to interoperate with:
// circuitikz TeX, Graphviz DOT, a human-readable dump, BLIF (unmapped and
// technology-mapped), an IRSIM .sim netlist, an ngspice netlist, and a
// per-gate heatmap table. Every Write* function is a pure reader of the
// network plus (for the technology-mapped formats) a cell library; the
// Writer type is a thin facade that additionally owns the output
// basename and creates files on disk.
package writer

import (
	"os"

	"github.com/pkg/errors"

	"github.com/circuitwright/tsact/boolnet"
	"github.com/circuitwright/tsact/library"
)

// MapAlgorithm selects how a gate is rendered into library cells for the
// technology-mapped formats (sim, ngspice, mapped blif).
type MapAlgorithm int

const (
	// MapNegative renders every gate as NAND/NOR plus INV correction cells.
	MapNegative MapAlgorithm = iota
	// MapPositive renders every gate as AND/OR plus INV correction cells.
	MapPositive
	// MapNatural picks MapNegative for an inverting gate, MapPositive
	// otherwise, minimizing the correction-inverter count.
	MapNatural
	// MapComplementary renders a dual-rail gate and its complement as a
	// single cAND/cOR cell pair.
	MapComplementary
)

func (m MapAlgorithm) String() string {
	switch m {
	case MapNegative:
		return "NEGATIVE"
	case MapPositive:
		return "POSITIVE"
	case MapNatural:
		return "NATURAL"
	case MapComplementary:
		return "COMPLEMENTARY"
	default:
		return "?"
	}
}

// Writer binds an output basename, the network to render, and (for the
// technology-mapped formats) a cell library and mapping algorithm.
type Writer struct {
	Basename string
	Net      *boolnet.Network
	Lib      *library.Library
	MapAlg   MapAlgorithm
}

// NewWriter constructs a Writer. lib may be nil; the plain-text formats
// (TeX, Dot, Dump, Blif, HeatMap) never consult it, and the
// technology-mapped formats report ErrNoLibrary if it is nil when called.
func NewWriter(basename string, net *boolnet.Network, lib *library.Library, mapAlg MapAlgorithm) *Writer {
	return &Writer{Basename: basename, Net: net, Lib: lib, MapAlg: mapAlg}
}

// ErrNoLibrary means a technology-mapped format was requested without a
// cell library.
var ErrNoLibrary = errors.New("writer: no gate library available; load one first")

func (wr *Writer) create(ext string) (*os.File, error) {
	f, err := os.Create(wr.Basename + ext)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s%s", wr.Basename, ext)
	}
	return f, nil
}
