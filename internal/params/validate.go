package params

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	ErrInvalidWidth     = errors.New("unsupported state width")
	ErrInvalidDegree    = errors.New("s-box degree must be odd")
	ErrInvalidRounds    = errors.New("number of full rounds must be even")
	ErrShapeMismatch    = errors.New("parameter shape mismatch")
	ErrInternalDiagonal = errors.New("internal diagonal does not match the fixed matrix")
)

// SupportedWidth reports whether the linear layers are defined for width t.
func SupportedWidth(t int) bool {
	return t == 2 || t == 3 || (t >= 4 && t <= 24 && t%4 == 0)
}

// ValidateShape checks the (width, degree, full rounds) combination.
func ValidateShape(width int, degree uint64, fullRounds int) error {
	if !SupportedWidth(width) {
		return fmt.Errorf("poseidon2: width %d: %w", width, ErrInvalidWidth)
	}
	if degree%2 == 0 {
		return fmt.Errorf("poseidon2: degree %d: %w", degree, ErrInvalidDegree)
	}
	if fullRounds%2 != 0 {
		return fmt.Errorf("poseidon2: %d full rounds: %w", fullRounds, ErrInvalidRounds)
	}
	return nil
}

// Validate checks shape and sizes of the parameter set.
func Validate(p *Parameters) error {
	if err := ValidateShape(p.Width, p.Degree, p.FullRounds); err != nil {
		return err
	}
	if len(p.DiagM1) != p.Width {
		return fmt.Errorf("poseidon2: diagonal length %d, want %d: %w", len(p.DiagM1), p.Width, ErrShapeMismatch)
	}
	if len(p.RCExternal) != p.FullRounds {
		return fmt.Errorf("poseidon2: %d external round constant rows, want %d: %w", len(p.RCExternal), p.FullRounds, ErrShapeMismatch)
	}
	for i, row := range p.RCExternal {
		if len(row) != p.Width {
			return fmt.Errorf("poseidon2: external round %d has %d constants, want %d: %w", i, len(row), p.Width, ErrShapeMismatch)
		}
	}
	if len(p.RCInternal) != p.PartialRounds {
		return fmt.Errorf("poseidon2: %d internal round constants, want %d: %w", len(p.RCInternal), p.PartialRounds, ErrShapeMismatch)
	}

	// Widths 2 and 3 use hardcoded matrices; the table must agree with them.
	var want []uint64
	switch p.Width {
	case 2:
		want = []uint64{1, 2}
	case 3:
		want = []uint64{1, 1, 2}
	}
	for i, w := range want {
		var e fr.Element
		e.SetUint64(w)
		if !p.DiagM1[i].Equal(&e) {
			return fmt.Errorf("poseidon2: width %d diagonal entry %d: %w", p.Width, i, ErrInternalDiagonal)
		}
	}
	return nil
}
