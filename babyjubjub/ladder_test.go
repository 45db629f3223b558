package babyjubjub

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/stretchr/testify/require"
)

// doubleAndAdd is a variable-time reference built on the same group law.
func doubleAndAdd(base *Point, k *big.Int) Point {
	acc := Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc.Double(&acc)
		if k.Bit(i) == 1 {
			acc.Add(&acc, base)
		}
	}
	return acc
}

func generatorPoint() Point {
	g := Generator()
	var p Point
	p.FromAffine(&g)
	return p
}

func randomScalar(t testing.TB) *big.Int {
	k, err := rand.Int(rand.Reader, order)
	require.NoError(t, err)
	return k
}

func TestScalarMulBoundaries(t *testing.T) {
	g := generatorPoint()

	zero := ScalarMul(&g, []uint64{0, 0, 0, 0})
	require.True(t, zero.IsIdentity())
	empty := ScalarMul(&g, nil)
	require.True(t, empty.IsIdentity())

	one := ScalarMul(&g, []uint64{0, 0, 0, 1})
	require.True(t, one.Equal(&g))

	two := ScalarMul(&g, []uint64{2})
	var dbl Point
	dbl.Double(&g)
	require.True(t, two.Equal(&dbl))

	id := Identity()
	k := scalarWords(randomScalar(t))
	r := ScalarMul(&id, k[:])
	require.True(t, r.IsIdentity())
}

func TestScalarMulMatchesDoubleAndAdd(t *testing.T) {
	g := generatorPoint()
	for range 32 {
		k := randomScalar(t)
		w := scalarWords(k)
		got := ScalarMul(&g, w[:])
		want := doubleAndAdd(&g, k)
		require.True(t, got.Equal(&want), "k = %s", k)
		require.True(t, got.IsOnCurve())
	}
}

func TestScalarMulMatchesGnarkCrypto(t *testing.T) {
	g := Generator()
	tg := g.ToTwisted()
	for range 16 {
		k := randomScalar(t)
		var ref twistededwards.PointAffine
		ref.ScalarMultiplication(&tg, k)
		var want PointAffine
		want.FromTwisted(&ref)

		w := scalarWords(k)
		got := ScalarMulAffine(&g, w[:])
		gotAffine := got.Affine()
		require.True(t, gotAffine.Equal(&want), "k = %s", k)
	}
}

func TestScalarMulHomomorphism(t *testing.T) {
	g := generatorPoint()
	half := new(big.Int).Rsh(order, 1)
	for range 16 {
		a := randomScalar(t)
		b := randomScalar(t)
		a.Mod(a, half)
		b.Mod(b, half)
		sum := new(big.Int).Add(a, b)

		pa := ScalarMulBig(&g, a)
		pb := ScalarMulBig(&g, b)
		psum := ScalarMulBig(&g, sum)
		var r Point
		r.Add(&pa, &pb)
		require.True(t, r.Equal(&psum))
	}
}

func TestScalarMulLeadingZeroWords(t *testing.T) {
	g := generatorPoint()
	short := ScalarMul(&g, []uint64{12345})
	long := ScalarMul(&g, []uint64{0, 0, 0, 0, 0, 12345})
	require.True(t, short.Equal(&long))
}

func TestScalarMulBigReduces(t *testing.T) {
	g := generatorPoint()

	r := ScalarMulBig(&g, order)
	require.True(t, r.IsIdentity())

	k := new(big.Int).Add(order, big.NewInt(1))
	r = ScalarMulBig(&g, k)
	require.True(t, r.Equal(&g))

	// -1 reduces to order-1, giving -G
	r = ScalarMulBig(&g, big.NewInt(-1))
	var neg Point
	neg.Neg(&g)
	require.True(t, r.Equal(&neg))
}

func TestCofactorInverse(t *testing.T) {
	// [8]·[8⁻¹ mod n]·G = G
	g := generatorPoint()
	p := ScalarMulBig(&g, cofactorInv)
	w := scalarWords(cofactor)
	p = ScalarMul(&p, w[:])
	require.True(t, p.Equal(&g))
}

// countOps replaces the swap and select hooks with counting wrappers.
func countOps(t *testing.T) (swaps, selects *int) {
	swaps, selects = new(int), new(int)
	origSwap, origSelect := swapPoints, selectPoint
	swapPoints = func(a, b *twistededwards.PointExtended, c uint64) {
		*swaps++
		origSwap(a, b, c)
	}
	selectPoint = func(a, b *twistededwards.PointExtended, c uint64) {
		*selects++
		origSelect(a, b, c)
	}
	t.Cleanup(func() {
		swapPoints, selectPoint = origSwap, origSelect
	})
	return swaps, selects
}

func TestScalarMulOperationCount(t *testing.T) {
	swaps, selects := countOps(t)
	g := generatorPoint()

	scalars := [][]uint64{
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)},
		{1 << 63, 0, 0, 0},
	}
	for range 8 {
		w := scalarWords(randomScalar(t))
		scalars = append(scalars, w[:])
	}
	for _, s := range scalars {
		*swaps, *selects = 0, 0
		ScalarMul(&g, s)
		require.Equal(t, 64*len(s), *swaps, "scalar %x", s)
		require.Equal(t, 1, *selects, "scalar %x", s)
	}

	*swaps, *selects = 0, 0
	ScalarMul(&g, []uint64{7})
	require.Equal(t, 64, *swaps)
}

func TestCurveConfig(t *testing.T) {
	p := Curve.Params()
	require.Equal(t, "168700", p.A.String())
	require.Equal(t, "168696", p.D.String())
	require.Equal(t, "168698", p.MontA.String())
	require.Equal(t, "1", p.MontB.String())
	require.Equal(t, int64(8), p.Cofactor.Int64())
	require.Equal(t, 251, p.Order.BitLen())
	require.True(t, p.Generator.IsOnCurve())

	// 8·8⁻¹ ≡ 1 mod n
	check := new(big.Int).Mul(p.Cofactor, p.CofactorInv)
	require.Equal(t, int64(1), check.Mod(check, p.Order).Int64())

	// Params hands out copies
	p.Order.SetInt64(1)
	require.Equal(t, 251, Curve.Params().Order.BitLen())

	g := p.Generator
	k := []uint64{0, 0, 3, 5}
	a := Curve.MulAffine(&g, k)
	var gp Point
	gp.FromAffine(&g)
	b := Curve.MulProjective(&gp, k)
	require.True(t, a.Equal(&b))
}

func BenchmarkScalarMul(b *testing.B) {
	g := generatorPoint()
	w := scalarWords(randomScalar(b))
	for b.Loop() {
		ScalarMul(&g, w[:])
	}
}

func BenchmarkGnarkCryptoScalarMul(b *testing.B) {
	g := Generator()
	tg := g.ToTwisted()
	k := randomScalar(b)
	var r twistededwards.PointAffine
	for b.Loop() {
		r.ScalarMultiplication(&tg, k)
	}
}
