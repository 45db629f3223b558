package babyjubjub

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
)

var (
	// ErrNotOnCurve is returned when decoded coordinates do not satisfy the
	// curve equation.
	ErrNotOnCurve = errors.New("point is not on the curve")
	// ErrEncoding is returned for encodings of the wrong length or with a
	// coordinate outside the field.
	ErrEncoding = errors.New("invalid point encoding")
)

// PointAffine is a point in affine coordinates.
type PointAffine struct {
	X, Y fr.Element
}

// Point is a point in extended coordinates (X:Y:Z:T) with x = X/Z, y = Y/Z
// and x·y = T/Z.
type Point struct {
	X, Y, Z, T fr.Element
}

// Identity returns the neutral element (0, 1).
func Identity() Point {
	var p Point
	p.Y.SetOne()
	p.Z.SetOne()
	return p
}

// Generator returns the generator of the prime-order subgroup.
func Generator() PointAffine {
	return generator
}

// FromAffine sets p to the extended form of a.
func (p *Point) FromAffine(a *PointAffine) *Point {
	p.X = a.X
	p.Y = a.Y
	p.Z.SetOne()
	p.T.Mul(&a.X, &a.Y)
	return p
}

// FromExtended sets p to the affine form of q.
func (p *PointAffine) FromExtended(q *Point) *PointAffine {
	var zInv fr.Element
	zInv.Inverse(&q.Z)
	p.X.Mul(&q.X, &zInv)
	p.Y.Mul(&q.Y, &zInv)
	return p
}

// Affine returns the affine form of p.
func (p *Point) Affine() PointAffine {
	var a PointAffine
	a.FromExtended(p)
	return a
}

// reduced maps p into gnark-crypto's a = -1 model.
func (p *Point) reduced() twistededwards.PointExtended {
	r := twistededwards.PointExtended{X: p.X, Y: p.Y, Z: p.Z, T: p.T}
	r.X.Mul(&r.X, &scale)
	r.T.Mul(&r.T, &scale)
	return r
}

func fromReduced(r *twistededwards.PointExtended) Point {
	p := Point{X: r.X, Y: r.Y, Z: r.Z, T: r.T}
	p.X.Mul(&p.X, &scaleInv)
	p.T.Mul(&p.T, &scaleInv)
	return p
}

// Add sets p = a + b.
func (p *Point) Add(a, b *Point) *Point {
	ra, rb := a.reduced(), b.reduced()
	var r twistededwards.PointExtended
	r.Add(&ra, &rb)
	*p = fromReduced(&r)
	return p
}

// Double sets p = 2·a.
func (p *Point) Double(a *Point) *Point {
	ra := a.reduced()
	var r twistededwards.PointExtended
	r.Double(&ra)
	*p = fromReduced(&r)
	return p
}

// Neg sets p = -a.
func (p *Point) Neg(a *Point) *Point {
	*p = *a
	p.X.Neg(&p.X)
	p.T.Neg(&p.T)
	return p
}

// Equal reports whether p and q represent the same point.
func (p *Point) Equal(q *Point) bool {
	var l, r fr.Element
	l.Mul(&p.X, &q.Z)
	r.Mul(&q.X, &p.Z)
	if !l.Equal(&r) {
		return false
	}
	l.Mul(&p.Y, &q.Z)
	r.Mul(&q.Y, &p.Z)
	return l.Equal(&r)
}

// IsIdentity reports whether p is the neutral element.
func (p *Point) IsIdentity() bool {
	return p.X.IsZero() && p.Y.Equal(&p.Z)
}

// IsOnCurve reports whether p satisfies a·X² + Y² = Z² + d·T² and X·Y = Z·T.
func (p *Point) IsOnCurve() bool {
	if p.Z.IsZero() {
		return false
	}
	var x2, y2, z2, t2, l, r fr.Element
	x2.Square(&p.X)
	y2.Square(&p.Y)
	z2.Square(&p.Z)
	t2.Square(&p.T)
	l.Mul(&x2, &curveA).Add(&l, &y2)
	r.Mul(&t2, &curveD).Add(&r, &z2)
	if !l.Equal(&r) {
		return false
	}
	l.Mul(&p.X, &p.Y)
	r.Mul(&p.Z, &p.T)
	return l.Equal(&r)
}

// Equal reports whether p and q are the same point.
func (p *PointAffine) Equal(q *PointAffine) bool {
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

// IsOnCurve reports whether p satisfies a·x² + y² = 1 + d·x²·y².
func (p *PointAffine) IsOnCurve() bool {
	var x2, y2, l, r fr.Element
	x2.Square(&p.X)
	y2.Square(&p.Y)
	l.Mul(&x2, &curveA).Add(&l, &y2)
	r.Mul(&x2, &y2).Mul(&r, &curveD)
	var one fr.Element
	one.SetOne()
	r.Add(&r, &one)
	return l.Equal(&r)
}

// IsInSubgroup reports whether p lies on the curve and in the prime-order
// subgroup.
func (p *PointAffine) IsInSubgroup() bool {
	if !p.IsOnCurve() {
		return false
	}
	r := ScalarMulAffine(p, orderWords[:])
	return r.IsIdentity()
}

// Bytes returns the 64-byte encoding X‖Y, each coordinate big-endian.
func (p *PointAffine) Bytes() [64]byte {
	var out [64]byte
	x, y := p.X.Bytes(), p.Y.Bytes()
	copy(out[:32], x[:])
	copy(out[32:], y[:])
	return out
}

// SetBytes decodes an encoding produced by Bytes. Coordinates must be
// canonical field elements and the point must be on the curve.
func (p *PointAffine) SetBytes(buf []byte) error {
	if len(buf) != 64 {
		return fmt.Errorf("babyjubjub: %d bytes: %w", len(buf), ErrEncoding)
	}
	var q PointAffine
	if err := q.X.SetBytesCanonical(buf[:32]); err != nil {
		return fmt.Errorf("babyjubjub: x coordinate: %w: %w", ErrEncoding, err)
	}
	if err := q.Y.SetBytesCanonical(buf[32:]); err != nil {
		return fmt.Errorf("babyjubjub: y coordinate: %w: %w", ErrEncoding, err)
	}
	if !q.IsOnCurve() {
		return fmt.Errorf("babyjubjub: %w", ErrNotOnCurve)
	}
	*p = q
	return nil
}

// ToTwisted returns p in gnark-crypto's a = -1 coordinates, as used by its
// bn254/twistededwards package and by gnark circuits.
func (p *PointAffine) ToTwisted() twistededwards.PointAffine {
	var r twistededwards.PointAffine
	r.X.Mul(&p.X, &scale)
	r.Y = p.Y
	return r
}

// FromTwisted sets p from gnark-crypto's a = -1 coordinates.
func (p *PointAffine) FromTwisted(q *twistededwards.PointAffine) *PointAffine {
	p.X.Mul(&q.X, &scaleInv)
	p.Y = q.Y
	return p
}
