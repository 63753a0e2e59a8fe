// Package library loads technology-cell templates from an on-disk cell
// library directory, one subdirectory per output format (irsim, blif,
// blifmap, tex, ngspice), each containing one file per cell shape keyed by
// function and inverted/non-inverted input and output counts.
package library

import (
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/pkg/errors"

	"github.com/circuitwright/tsact/boolnet"
)

// Format names one of the five supported library directories.
type Format int

const (
	FormatIRSIM Format = iota
	FormatBLIF
	FormatBLIFMAP
	FormatTeX
	FormatNgSpice
	numFormats
)

var formatDirs = [numFormats]string{"irsim", "blif", "blifmap", "tex", "ngspice"}

func (f Format) String() string {
	switch f {
	case FormatIRSIM:
		return "IRSIM"
	case FormatBLIF:
		return "BLIF"
	case FormatBLIFMAP:
		return "BLIFMAP"
	case FormatTeX:
		return "TeX"
	case FormatNgSpice:
		return "ngSPICE"
	default:
		return "?"
	}
}

// ErrLibraryNotFound means the given base directory does not exist or is
// not a directory.
var ErrLibraryNotFound = errors.New("library: base directory not found")

// Library is a cell library rooted at a directory on disk.
type Library struct {
	baseDir   string
	hasFormat [numFormats]bool

	inv, nand, and_, nor, or_, cand, cor [numFormats]*template.Template
}

// Open inspects baseDir and records which of the five format
// subdirectories are present; it does not load any templates yet.
func Open(baseDir string) (*Library, error) {
	info, err := os.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return nil, errors.Wrapf(ErrLibraryNotFound, "%s", baseDir)
	}
	lib := &Library{baseDir: baseDir}
	for f := Format(0); f < numFormats; f++ {
		sub := filepath.Join(baseDir, formatDirs[f])
		if si, err := os.Stat(sub); err == nil && si.IsDir() {
			lib.hasFormat[f] = true
		}
	}
	return lib, nil
}

// HasFormat reports whether baseDir contains a subdirectory for f.
func (lib *Library) HasFormat(f Format) bool { return lib.hasFormat[f] }

// LoadModels loads the seven well-known cell shapes (INV, AND, NAND, OR,
// NOR, and the two complementary AND/OR pairs) for format f. It reports
// false without error if f's subdirectory is absent, and true only if at
// least one complete mapping set (INV+NAND+NOR, or INV+AND+OR, or the
// complementary AND/OR pair) loaded successfully.
func (lib *Library) LoadModels(f Format) (bool, error) {
	if !lib.hasFormat[f] {
		return false, nil
	}
	var err error
	if lib.inv[f], err = lib.loadCellTemplate(boolnet.FnBuffer, 1, 0, 0, 1, f); err != nil {
		return false, err
	}
	if lib.and_[f], err = lib.loadCellTemplate(boolnet.FnAnd, 2, 0, 1, 0, f); err != nil {
		return false, err
	}
	if lib.nand[f], err = lib.loadCellTemplate(boolnet.FnAnd, 2, 0, 0, 1, f); err != nil {
		return false, err
	}
	if lib.nor[f], err = lib.loadCellTemplate(boolnet.FnOr, 2, 0, 0, 1, f); err != nil {
		return false, err
	}
	if lib.or_[f], err = lib.loadCellTemplate(boolnet.FnOr, 2, 0, 1, 0, f); err != nil {
		return false, err
	}
	if lib.cand[f], err = lib.loadCellTemplate(boolnet.FnAnd, 2, 2, 1, 1, f); err != nil {
		return false, err
	}
	if lib.cor[f], err = lib.loadCellTemplate(boolnet.FnOr, 2, 2, 1, 1, f); err != nil {
		return false, err
	}

	nandSet := lib.inv[f] != nil && lib.nand[f] != nil && lib.nor[f] != nil
	andSet := lib.inv[f] != nil && lib.and_[f] != nil && lib.or_[f] != nil
	dualRailSet := lib.cand[f] != nil && lib.cor[f] != nil
	return nandSet || andSet || dualRailSet, nil
}

// Inv, And, Nand, Nor, Or, CAnd, COr return the loaded template for the
// corresponding well-known shape, or nil if LoadModels has not run or
// found none on disk.
func (lib *Library) Inv(f Format) *template.Template  { return lib.inv[f] }
func (lib *Library) And(f Format) *template.Template  { return lib.and_[f] }
func (lib *Library) Nand(f Format) *template.Template { return lib.nand[f] }
func (lib *Library) Nor(f Format) *template.Template  { return lib.nor[f] }
func (lib *Library) Or(f Format) *template.Template   { return lib.or_[f] }
func (lib *Library) CAnd(f Format) *template.Template { return lib.cand[f] }
func (lib *Library) COr(f Format) *template.Template  { return lib.cor[f] }

// CellTemplate loads an arbitrary cell shape by its full parameters,
// beyond the seven well-known ones LoadModels caches. Returns (nil, nil)
// if the shape has no file on disk — a missing template is not an error,
// a missing cell is simply unmapped, not an error.
func (lib *Library) CellTemplate(fn boolnet.Function, nonInvertedInputs, invertedInputs, nonInvertedOutputs, invertedOutputs int, f Format) (*template.Template, error) {
	return lib.loadCellTemplate(fn, nonInvertedInputs, invertedInputs, nonInvertedOutputs, invertedOutputs, f)
}

func (lib *Library) loadCellTemplate(fn boolnet.Function, nonInvertedInputs, invertedInputs, nonInvertedOutputs, invertedOutputs int, f Format) (*template.Template, error) {
	name := cellFileName(fn, nonInvertedInputs, invertedInputs, nonInvertedOutputs, invertedOutputs)
	path := filepath.Join(lib.baseDir, formatDirs[f], name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading cell template %s", path)
	}
	tmpl, err := template.New(name).Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing cell template %s", path)
	}
	return tmpl, nil
}

func cellFileName(fn boolnet.Function, nonInvertedInputs, invertedInputs, nonInvertedOutputs, invertedOutputs int) string {
	return gateFunctionName(fn) + "_" +
		strconv.Itoa(nonInvertedInputs) + "_" +
		strconv.Itoa(invertedInputs) + "_" +
		strconv.Itoa(nonInvertedOutputs) + "_" +
		strconv.Itoa(invertedOutputs)
}

// gateFunctionName maps a gate function to its cell-filename prefix;
// anything that is not AND, OR, or XOR falls back to BUFFER.
func gateFunctionName(fn boolnet.Function) string {
	switch fn {
	case boolnet.FnAnd:
		return "AND"
	case boolnet.FnOr:
		return "OR"
	case boolnet.FnXor:
		return "XOR"
	default:
		return "BUFFER"
	}
}

