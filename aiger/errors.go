// Package aiger reads the ASCII AIGER format (a textual And-Inverter Graph
// serialization) into a Plan value: a pure function from bytes to data,
// with no Network reference and no side effects.
package aiger

import "github.com/pkg/errors"

// Sentinel errors surfaced while reading an ASCII AIGER stream.
var (
	// ErrPrematureEOF means the stream ended before the header's declared
	// counts were satisfied.
	ErrPrematureEOF = errors.New("aiger: premature EOF")
	// ErrBadHeader means the leading magic word was neither "aag" nor
	// "aig". Unparsable header counts are reported as ErrUnexpectedChar or
	// ErrPrematureEOF instead.
	ErrBadHeader = errors.New("aiger: bad header")
	// ErrUnexpectedChar means a byte that should have been a digit, space,
	// or newline was none of those.
	ErrUnexpectedChar = errors.New("aiger: unexpected character")
	// ErrBinaryFormat means the stream declared itself "aig" (binary);
	// this reader only accepts the ASCII "aag" format.
	ErrBinaryFormat = errors.New("aiger: binary aig format not supported")
	// ErrLatchesUnsupported means L != 0 in the header.
	ErrLatchesUnsupported = errors.New("aiger: latches not supported")
	// ErrBadMagicCounts means M != I + L + A.
	ErrBadMagicCounts = errors.New("aiger: M does not equal I + L + A")
	// ErrLitOutOfRange means a literal exceeded 2*M+1.
	ErrLitOutOfRange = errors.New("aiger: literal out of range")
)
