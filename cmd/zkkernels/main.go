package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

var verbose bool

func init() {
	flag.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flag.Usage = usage
	flag.CommandLine.SetInterspersed(false)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: zkkernels [-v] <command> [arguments]

Commands:
  perm [-t width] x0 x1 ...   print the Poseidon2 permutation of a BN254 state
  mul [-x X -y Y] k           print k·P on BabyJubJub (P defaults to the generator)

Global flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "perm":
		err = runPerm(log, args[1:], os.Stdout)
	case "mul":
		err = runMul(log, args[1:], os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown command %q\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("command", args[0]).Msg("failed")
		os.Exit(1)
	}
}
