package writer

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"

	"github.com/circuitwright/tsact/boolnet"
	"github.com/circuitwright/tsact/library"
)

// ErrFanInTooHigh means a gate has more than two inputs; the
// technology-mapped formats only understand two-input (N)AND/(N)OR cells
// and a one-input inverter, matching the cell shapes a library actually
// ships.
var ErrFanInTooHigh = errors.New("writer: gate has more than two inputs; convert to two-input form first")

// ErrMissingCells means the library does not have the cell shapes a
// mapping algorithm needs.
var ErrMissingCells = errors.New("writer: required cell shapes not found in library")

// ErrNoComplement means MapComplementary was asked to render a gate that
// has no dual-rail complement.
var ErrNoComplement = errors.New("writer: gate has no complement; run dual-rail conversion first")

// ErrInvertingComplementBuffer means MapComplementary encountered an
// inverting BUFFER gate, which a dual-rail network should never produce
// (an inverting buffer's complement would itself need to invert, which
// breaks the single cAND/cOR-pair-per-signal invariant).
var ErrInvertingComplementBuffer = errors.New("writer: inverting buffer gate has no complementary cell")

// CellData is the template execution context for one cell instance: Name
// is the instance's own identifier, In/IIn are the true-rail and
// complement-rail input signal names (index 0, 1), and Out/IOut are the
// true-rail and complement-rail (or internal) output signal names.
type CellData struct {
	Name string
	In   [2]string
	IIn  [2]string
	Out  string
	IOut string
}

func execCell(tmpl *template.Template, data CellData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "executing cell template")
	}
	return buf.String(), nil
}

// getFromLibraryNegative renders gate as a NAND/NOR cell plus up to three
// INV correction cells: one on the output if gate is non-inverting, and
// one per input edge that inverts.
func getFromLibraryNegative(lib *library.Library, gate *boolnet.Gate, f library.Format) (string, error) {
	if gate.FanIn() > 2 {
		return "", ErrFanInTooHigh
	}
	inv, nand, nor := lib.Inv(f), lib.Nand(f), lib.Nor(f)
	if inv == nil || nand == nil || nor == nil {
		return "", ErrMissingCells
	}

	var out string

	if gate.Function() == boolnet.FnAnd || gate.Function() == boolnet.FnOr {
		cell := nand
		if gate.Function() == boolnet.FnOr {
			cell = nor
		}

		out0 := gate.Name() + "_I0_OUT"
		if gate.OutputInverting() {
			out0 = gate.Name()
		}
		in0 := gate.Driver(0).Name()
		if gate.Inverting(0) {
			in0 = gate.Name() + "_I1_OUT"
		}
		in1 := gate.Driver(1).Name()
		if gate.Inverting(1) {
			in1 = gate.Name() + "_I2_OUT"
		}
		s, err := execCell(cell, CellData{Name: gate.Name() + "_I0", In: [2]string{in0, in1}, Out: out0})
		if err != nil {
			return "", err
		}
		out += s

		if !gate.OutputInverting() {
			s, err := execCell(inv, CellData{Name: gate.Name() + "_I3", In: [2]string{gate.Name() + "_I0_OUT"}, Out: gate.Name()})
			if err != nil {
				return "", err
			}
			out += s
		}
		if gate.Inverting(0) {
			s, err := execCell(inv, CellData{Name: gate.Name() + "_I1", In: [2]string{gate.Driver(0).Name()}, Out: gate.Name() + "_I1_OUT"})
			if err != nil {
				return "", err
			}
			out += s
		}
		if gate.Inverting(1) {
			s, err := execCell(inv, CellData{Name: gate.Name() + "_I2", In: [2]string{gate.Driver(1).Name()}, Out: gate.Name() + "_I2_OUT"})
			if err != nil {
				return "", err
			}
			out += s
		}
		return out, nil
	}

	// BUFFER: emit an inverter only if input and output polarity disagree.
	if gate.OutputInverting() != gate.Inverting(0) {
		return execCell(inv, CellData{Name: gate.Name(), In: [2]string{gate.Driver(0).Name()}, Out: gate.Name()})
	}
	return "", nil
}

// getFromLibraryPositive renders gate as an AND/OR cell plus up to three
// INV correction cells, the dual of getFromLibraryNegative.
func getFromLibraryPositive(lib *library.Library, gate *boolnet.Gate, f library.Format) (string, error) {
	if gate.FanIn() > 2 {
		return "", ErrFanInTooHigh
	}
	inv, aand, oor := lib.Inv(f), lib.And(f), lib.Or(f)
	if inv == nil || aand == nil || oor == nil {
		return "", ErrMissingCells
	}

	var out string

	if gate.Function() == boolnet.FnAnd || gate.Function() == boolnet.FnOr {
		cell := aand
		if gate.Function() == boolnet.FnOr {
			cell = oor
		}

		out0 := gate.Name()
		if gate.OutputInverting() {
			out0 = gate.Name() + "_I0_OUT"
		}
		in0 := gate.Driver(0).Name()
		if gate.Inverting(0) {
			in0 = gate.Name() + "_I1_OUT"
		}
		in1 := gate.Driver(1).Name()
		if gate.Inverting(1) {
			in1 = gate.Name() + "_I2_OUT"
		}
		s, err := execCell(cell, CellData{Name: gate.Name() + "_I0", In: [2]string{in0, in1}, Out: out0})
		if err != nil {
			return "", err
		}
		out += s

		if gate.OutputInverting() {
			s, err := execCell(inv, CellData{Name: gate.Name() + "_I3", In: [2]string{gate.Name() + "_I0_OUT"}, Out: gate.Name()})
			if err != nil {
				return "", err
			}
			out += s
		}
		if gate.Inverting(0) {
			s, err := execCell(inv, CellData{Name: gate.Name() + "_I1", In: [2]string{gate.Driver(0).Name()}, Out: gate.Name() + "_I1_OUT"})
			if err != nil {
				return "", err
			}
			out += s
		}
		if gate.Inverting(1) {
			s, err := execCell(inv, CellData{Name: gate.Name() + "_I2", In: [2]string{gate.Driver(1).Name()}, Out: gate.Name() + "_I2_OUT"})
			if err != nil {
				return "", err
			}
			out += s
		}
		return out, nil
	}

	if gate.OutputInverting() != gate.Inverting(0) {
		return execCell(inv, CellData{Name: gate.Name(), In: [2]string{gate.Driver(0).Name()}, Out: gate.Name()})
	}
	return "", nil
}

// getFromLibraryComplementary renders a dual-rail gate and its complement
// together as a single cAND/cOR cell, wiring both rails' inputs and
// outputs in one instance.
func getFromLibraryComplementary(lib *library.Library, gate *boolnet.Gate, f library.Format) (string, error) {
	complement := gate.Complement()
	if complement == nil {
		return "", ErrNoComplement
	}
	if gate.FanIn() > 2 {
		return "", ErrFanInTooHigh
	}
	cand, cor := lib.CAnd(f), lib.COr(f)
	if cand == nil || cor == nil {
		return "", ErrMissingCells
	}

	if gate.Function() != boolnet.FnAnd && gate.Function() != boolnet.FnOr {
		if !gate.OutputInverting() {
			return "", nil
		}
		return "", ErrInvertingComplementBuffer
	}

	cell := cand
	if gate.Function() == boolnet.FnOr {
		cell = cor
	}

	data := CellData{Name: gate.Name()}
	if gate.OutputInverting() {
		data.IOut = gate.Name()
		data.Out = complement.Name()
	} else {
		data.IOut = complement.Name()
		data.Out = gate.Name()
	}

	for j := 0; j < 2; j++ {
		if gate.Inverting(j) {
			data.In[j] = complement.Driver(j).Name()
			data.IIn[j] = gate.Driver(j).Name()
		} else {
			data.In[j] = gate.Driver(j).Name()
			data.IIn[j] = complement.Driver(j).Name()
		}
	}

	return execCell(cell, data)
}

// getFromLibrary dispatches on mapAlg; MapNatural picks MapNegative for
// an inverting gate and MapPositive otherwise, which minimizes the
// correction-inverter count for that gate.
func getFromLibrary(lib *library.Library, gate *boolnet.Gate, f library.Format, mapAlg MapAlgorithm) (string, error) {
	switch mapAlg {
	case MapNegative:
		return getFromLibraryNegative(lib, gate, f)
	case MapPositive:
		return getFromLibraryPositive(lib, gate, f)
	case MapNatural:
		if gate.OutputInverting() {
			return getFromLibraryNegative(lib, gate, f)
		}
		return getFromLibraryPositive(lib, gate, f)
	case MapComplementary:
		return getFromLibraryComplementary(lib, gate, f)
	default:
		return "", errors.Errorf("writer: unknown mapping algorithm %v", mapAlg)
	}
}
