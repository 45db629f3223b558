package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRunPerm(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPerm(zerolog.Nop(), []string{"0", "1"}, &out))
	require.Equal(t,
		"13120422956170837922441672802975889424559262309139960702680326932494325745547\n"+
			"5923567162677888564808904842769941181302763723060647224839027357562627386465\n",
		out.String())

	out.Reset()
	require.NoError(t, runPerm(zerolog.Nop(), []string{"-t", "3", "0", "1", "2"}, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "5297208644449048816064511434384511824916970985131888684874823260532015509555", lines[0])
}

func TestRunPermErrors(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, runPerm(zerolog.Nop(), []string{"-t", "4", "0", "1"}, &out))
	require.Error(t, runPerm(zerolog.Nop(), []string{"0", "1", "2", "3", "4"}, &out))
	require.Error(t, runPerm(zerolog.Nop(), []string{"0", "zz"}, &out))
	require.Empty(t, out.String())
}

func TestRunMul(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runMul(zerolog.Nop(), []string{"1"}, &out))
	require.Equal(t,
		"5299619240641551281634865583518297030282874472190772894086521144482721001553\n"+
			"16950150798460657717958625567821834550301663161624707787222815936182638968203\n",
		out.String())

	out.Reset()
	require.NoError(t, runMul(zerolog.Nop(), []string{"0"}, &out))
	require.Equal(t, "0\n1\n", out.String())

	// 2·G computed twice: once from the generator, once as 1·(2·G)
	out.Reset()
	require.NoError(t, runMul(zerolog.Nop(), []string{"2"}, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var again bytes.Buffer
	require.NoError(t, runMul(zerolog.Nop(), []string{"-x", lines[0], "-y", lines[1], "1"}, &again))
	require.Equal(t, out.String(), again.String())
}

func TestRunMulErrors(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, runMul(zerolog.Nop(), nil, &out))
	require.Error(t, runMul(zerolog.Nop(), []string{"abc"}, &out))
	require.Error(t, runMul(zerolog.Nop(), []string{"-x", "1", "5"}, &out))
	require.Error(t, runMul(zerolog.Nop(), []string{"-x", "1", "-y", "1", "5"}, &out))
	// (0, -1) is on the curve but has order two
	minusOne := "21888242871839275222246405745257275088548364400416034343698204186575808495616"
	require.Error(t, runMul(zerolog.Nop(), []string{"-x", "0", "-y", minusOne, "5"}, &out))
	require.Empty(t, out.String())
}
