package aiger

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Read parses an ASCII AIGER stream ("aag M I L O A" header, followed by
// I input literals, O output literals, and A "lhs rhs0 rhs1" AND lines)
// into a Plan. It is a pure function: no Network is touched, nothing is
// logged, and the returned error (if any) is one of the sentinels in
// errors.go. Errors from the header are returned as the bare sentinel;
// errors from input, output and AND lines are wrapped with the line's
// position.
func Read(r io.Reader) (*Plan, error) {
	br := bufio.NewReader(r)

	magic, err := readNonWS(br)
	if err != nil {
		return nil, err
	}
	switch magic {
	case "aag":
		// ascii, proceed
	case "aig":
		return nil, ErrBinaryFormat
	default:
		return nil, ErrBadHeader
	}

	m, i, l, o, a, err := readHeaderCounts(br)
	if err != nil {
		return nil, err
	}
	if l != 0 {
		return nil, ErrLatchesUnsupported
	}
	if m != i+l+a {
		return nil, ErrBadMagicCounts
	}

	maxLit := 2*m + 1

	for k := uint(0); k < i; k++ {
		// AIGER input lines are just a primary-input literal; the reader
		// only needs the count, since inputs are assigned INPUT_k in
		// declaration order and their literal value (2k+2) is implied.
		if _, err := readUint(br); err != nil {
			return nil, errors.Wrapf(err, "input line %d", k)
		}
		if err := readNL(br); err != nil {
			return nil, errors.Wrapf(err, "input line %d", k)
		}
	}

	outputs := make([]uint, 0, o)
	for k := uint(0); k < o; k++ {
		lit, err := readUint(br)
		if err != nil {
			return nil, errors.Wrapf(err, "output line %d", k)
		}
		if lit > maxLit {
			return nil, errors.Wrapf(ErrLitOutOfRange, "output line %d", k)
		}
		if err := readNL(br); err != nil {
			return nil, errors.Wrapf(err, "output line %d", k)
		}
		outputs = append(outputs, lit)
	}

	ands := make([]AndLine, 0, a)
	for k := uint(0); k < a; k++ {
		lhs, err := readUint(br)
		if err != nil {
			return nil, errors.Wrapf(err, "and line %d", k)
		}
		if err := expectByte(br, ' '); err != nil {
			return nil, errors.Wrapf(err, "and line %d", k)
		}
		rhs0, err := readUint(br)
		if err != nil {
			return nil, errors.Wrapf(err, "and line %d", k)
		}
		if err := expectByte(br, ' '); err != nil {
			return nil, errors.Wrapf(err, "and line %d", k)
		}
		rhs1, err := readUint(br)
		if err != nil {
			return nil, errors.Wrapf(err, "and line %d", k)
		}
		if err := readNL(br); err != nil {
			return nil, errors.Wrapf(err, "and line %d", k)
		}
		if lhs > maxLit || rhs0 > maxLit || rhs1 > maxLit {
			return nil, errors.Wrapf(ErrLitOutOfRange, "and line %d", k)
		}
		ands = append(ands, AndLine{Lhs: lhs, Rhs0: rhs0, Rhs1: rhs1})
	}

	return &Plan{
		NumInputs:  int(i),
		OutputLits: outputs,
		AndLines:   ands,
	}, nil
}

// readHeaderCounts reads the five space-separated decimal counts that
// follow the "aag"/"aig" magic token and the trailing newline.
func readHeaderCounts(r *bufio.Reader) (m, i, l, o, a uint, err error) {
	if err = expectByte(r, ' '); err != nil {
		return
	}
	if m, err = readUint(r); err != nil {
		return
	}
	if err = expectByte(r, ' '); err != nil {
		return
	}
	if i, err = readUint(r); err != nil {
		return
	}
	if err = expectByte(r, ' '); err != nil {
		return
	}
	if l, err = readUint(r); err != nil {
		return
	}
	if err = expectByte(r, ' '); err != nil {
		return
	}
	if o, err = readUint(r); err != nil {
		return
	}
	if err = expectByte(r, ' '); err != nil {
		return
	}
	if a, err = readUint(r); err != nil {
		return
	}
	err = readNL(r)
	return
}

// readNonWS reads a run of non-whitespace bytes as a token (used for the
// "aag"/"aig" magic).
func readNonWS(r *bufio.Reader) (string, error) {
	var buf []byte
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			break
		}
		if e != nil {
			return "", e
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			r.UnreadByte()
			break
		}
		buf = append(buf, b)
	}
	if len(buf) == 0 {
		return "", ErrPrematureEOF
	}
	return string(buf), nil
}

// readUint reads a run of decimal digits as an unsigned literal.
func readUint(r *bufio.Reader) (uint, error) {
	var result uint
	first := true
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			break
		}
		if e != nil {
			return 0, e
		}
		if b < '0' || b > '9' {
			r.UnreadByte()
			break
		}
		result = result*10 + uint(b-'0')
		first = false
	}
	if first {
		return 0, ErrUnexpectedChar
	}
	return result, nil
}

// expectByte consumes exactly one byte and requires it to equal want.
func expectByte(r *bufio.Reader, want byte) error {
	b, e := r.ReadByte()
	if e == io.EOF {
		return ErrPrematureEOF
	}
	if e != nil {
		return e
	}
	if b != want {
		return ErrUnexpectedChar
	}
	return nil
}

// readNL consumes exactly one newline byte.
func readNL(r *bufio.Reader) error {
	return expectByte(r, '\n')
}
