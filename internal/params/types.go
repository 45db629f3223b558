package params

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Degree is the S-box exponent for BN254.
const Degree = 5

// Parameters bundles all constants needed by the permutation.
type Parameters struct {
	Width         int
	Degree        uint64
	FullRounds    int
	PartialRounds int

	// DiagM1 holds the diagonal of the internal matrix, each entry minus one.
	DiagM1     []fr.Element
	RCExternal [][]fr.Element
	RCInternal []fr.Element
}

// table is the hex form of a parameter set, in round order.
type table struct {
	width         int
	fullRounds    int
	partialRounds int
	diagM1        []string
	rcExternal    [][]string
	rcInternal    []string
}

func (t *table) parameters() (*Parameters, error) {
	p := &Parameters{
		Width:         t.width,
		Degree:        Degree,
		FullRounds:    t.fullRounds,
		PartialRounds: t.partialRounds,
		RCExternal:    make([][]fr.Element, len(t.rcExternal)),
	}
	var err error
	if p.DiagM1, err = parseHex(t.diagM1); err != nil {
		return nil, err
	}
	for i, row := range t.rcExternal {
		if p.RCExternal[i], err = parseHex(row); err != nil {
			return nil, err
		}
	}
	if p.RCInternal, err = parseHex(t.rcInternal); err != nil {
		return nil, err
	}
	return p, nil
}

func parseHex(in []string) ([]fr.Element, error) {
	out := make([]fr.Element, len(in))
	for i, s := range in {
		if _, err := out[i].SetString(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}
