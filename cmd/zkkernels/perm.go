package main

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/vocdoni/zkkernels/poseidon2"
)

// runPerm permutes the state given on the command line and prints one
// element per line.
func runPerm(log zerolog.Logger, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("perm", flag.ContinueOnError)
	width := fs.IntP("width", "t", 0, "state width; defaults to the number of inputs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	inputs := fs.Args()
	if *width == 0 {
		*width = len(inputs)
	}
	if len(inputs) != *width {
		return fmt.Errorf("perm: got %d inputs for width %d", len(inputs), *width)
	}

	perm, err := poseidon2.ForWidth(*width)
	if err != nil {
		return err
	}
	state := make([]fr.Element, *width)
	for i, s := range inputs {
		if _, err := state[i].SetString(s); err != nil {
			return fmt.Errorf("perm: input %d: %w", i, err)
		}
	}
	log.Debug().Int("width", *width).Msg("permuting state")

	for _, e := range perm.Permutation(state) {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}
