package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/vocdoni/zkkernels/babyjubjub"
)

// runMul multiplies a subgroup point by a scalar with the constant-time
// ladder and prints the affine x and y coordinates.
func runMul(log zerolog.Logger, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("mul", flag.ContinueOnError)
	xs := fs.StringP("x", "x", "", "x coordinate of the base point")
	ys := fs.StringP("y", "y", "", "y coordinate of the base point")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("mul: expected exactly one scalar")
	}
	k, ok := new(big.Int).SetString(fs.Arg(0), 0)
	if !ok {
		return fmt.Errorf("mul: invalid scalar %q", fs.Arg(0))
	}

	base := babyjubjub.Generator()
	switch {
	case *xs == "" && *ys == "":
	case *xs == "" || *ys == "":
		return errors.New("mul: -x and -y must be given together")
	default:
		if _, err := base.X.SetString(*xs); err != nil {
			return fmt.Errorf("mul: x: %w", err)
		}
		if _, err := base.Y.SetString(*ys); err != nil {
			return fmt.Errorf("mul: y: %w", err)
		}
		if !base.IsInSubgroup() {
			return errors.New("mul: base point is not in the prime-order subgroup")
		}
	}
	log.Debug().Str("x", base.X.String()).Str("y", base.Y.String()).Msg("base point")

	var p babyjubjub.Point
	p.FromAffine(&base)
	r := babyjubjub.ScalarMulBig(&p, k)
	out := r.Affine()
	_, err := fmt.Fprintf(w, "%s\n%s\n", out.X.String(), out.Y.String())
	return err
}
