package poseidon2

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/emulated/emparams"

	"github.com/vocdoni/zkkernels/internal/params"
)

// FrParams defines the emulated parameters for the BN254 scalar field.
type FrParams = emparams.BN254Fr

func constElement(f *emulated.Field[FrParams], fe fr.Element) *emulated.Element[FrParams] {
	return f.NewElement(fe.BigInt(new(big.Int)))
}

// Convenience wrapper around the native parameter set.
func nativeParams(width int) (*params.Parameters, error) {
	p, ok := params.AllParameters[width]
	if !ok {
		return nil, fmt.Errorf("poseidon2: unsupported width %d: %w", width, params.ErrInvalidWidth)
	}
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}
