package babyjubjub

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	require.Equal(t, uint64(0), mask(0))
	require.Equal(t, ^uint64(0), mask(1))
}

func TestSelectAndSwapElements(t *testing.T) {
	var a, b fr.Element
	a.SetRandom()
	b.SetRandom()
	origA, origB := a, b

	x := a
	selectElement(&x, &b, mask(0))
	require.True(t, x.Equal(&origA))
	selectElement(&x, &b, mask(1))
	require.True(t, x.Equal(&origB))

	swapElements(&a, &b, mask(0))
	require.True(t, a.Equal(&origA))
	require.True(t, b.Equal(&origB))
	swapElements(&a, &b, mask(1))
	require.True(t, a.Equal(&origB))
	require.True(t, b.Equal(&origA))
}

func TestConditionalPointOps(t *testing.T) {
	g := Generator()
	var p Point
	p.FromAffine(&g)
	var q Point
	q.Double(&p)

	rp, rq := p.reduced(), q.reduced()
	a, b := rp, rq

	conditionalSwap(&a, &b, 0)
	require.Equal(t, rp, a)
	require.Equal(t, rq, b)

	conditionalSwap(&a, &b, 1)
	require.Equal(t, rq, a)
	require.Equal(t, rp, b)

	conditionalSelect(&a, &b, 0)
	require.Equal(t, rq, a)
	conditionalSelect(&a, &b, 1)
	require.Equal(t, rp, a)

	// results stay valid field elements
	var out twistededwards.PointAffine
	out.FromExtended(&a)
	require.True(t, out.IsOnCurve())
}
