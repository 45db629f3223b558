package poseidon2

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// permute mutates the state in place: an initial external mix, R_F/2 full
// rounds, R_P partial rounds, then the remaining R_F/2 full rounds.
func (p *Permutation) permute(state []fr.Element) {
	matMulExternal(state)

	half := p.params.FullRounds / 2

	// First half of full rounds.
	for _, rc := range p.params.RCExternal[:half] {
		p.externalRound(state, rc)
	}

	// Partial rounds.
	for i := range p.params.RCInternal {
		p.internalRound(state, &p.params.RCInternal[i])
	}

	// Second half of full rounds.
	for _, rc := range p.params.RCExternal[half:] {
		p.externalRound(state, rc)
	}
}

func (p *Permutation) externalRound(state, rc []fr.Element) {
	addRoundConstants(state, rc)
	p.fullSBox(state)
	matMulExternal(state)
}

func (p *Permutation) internalRound(state []fr.Element, rc *fr.Element) {
	state[0].Add(&state[0], rc)
	p.sbox(&state[0])
	matMulInternal(state, p.params.DiagM1)
}

func addRoundConstants(state, rc []fr.Element) {
	for i := range state {
		state[i].Add(&state[i], &rc[i])
	}
}
