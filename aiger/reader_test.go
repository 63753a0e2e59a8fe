package aiger

import (
	"strings"
	"testing"
)

const twoInputAndAAG = "aag 3 2 0 1 1\n2\n4\n6\n6 2 4\n"

func TestReadTwoInputAnd(t *testing.T) {
	plan, err := Read(strings.NewReader(twoInputAndAAG))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if plan.NumInputs != 2 {
		t.Errorf("NumInputs = %d, want 2", plan.NumInputs)
	}
	if len(plan.OutputLits) != 1 || plan.OutputLits[0] != 6 {
		t.Errorf("OutputLits = %v, want [6]", plan.OutputLits)
	}
	if len(plan.AndLines) != 1 {
		t.Fatalf("len(AndLines) = %d, want 1", len(plan.AndLines))
	}
	al := plan.AndLines[0]
	if al.Lhs != 6 || al.Rhs0 != 2 || al.Rhs1 != 4 {
		t.Errorf("AndLines[0] = %+v, want {6 2 4}", al)
	}
}

func TestReadRejectsBinaryMagic(t *testing.T) {
	_, err := Read(strings.NewReader("aig 3 2 0 1 1\n"))
	if err != ErrBinaryFormat {
		t.Errorf("Read() error = %v, want ErrBinaryFormat", err)
	}
}

func TestReadRejectsLatches(t *testing.T) {
	_, err := Read(strings.NewReader("aag 4 2 1 1 1\n2\n4\n6\n6 2 4\n"))
	if err != ErrLatchesUnsupported {
		t.Errorf("Read() error = %v, want ErrLatchesUnsupported", err)
	}
}

func TestReadRejectsBadMagicCounts(t *testing.T) {
	_, err := Read(strings.NewReader("aag 99 2 0 1 1\n2\n4\n6\n6 2 4\n"))
	if err != ErrBadMagicCounts {
		t.Errorf("Read() error = %v, want ErrBadMagicCounts", err)
	}
}

func TestReadRejectsGarbageHeader(t *testing.T) {
	_, err := Read(strings.NewReader("not-aiger\n"))
	if err != ErrBadHeader {
		t.Errorf("Read() error = %v, want ErrBadHeader", err)
	}
}
