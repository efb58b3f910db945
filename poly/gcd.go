package poly

import (
	"math/big"

	"github.com/pkg/errors"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
)

// GCD computes the polynomial greatest common divisor of a and b up
// to a unit, via the primitive Euclidean PRS: each remainder in the
// pseudo-remainder sequence has its content stripped before the next
// step, which keeps the intermediate coefficients from growing the
// way a naive pseudo-remainder chain would. The result is always
// primitive (content 1, positive leading coefficient); combine with
// the numeric GCD of Content(a) and Content(b) to recover the full
// content-aware GCD, which is what FullGCD does.
func GCD(a, b Poly) (Poly, error) {
	if err := sameGenerator(a, b); err != nil {
		return Poly{}, err
	}
	if a.IsZero() {
		pb, _, err := PrimitivePart(b)
		return pb, err
	}
	if b.IsZero() {
		pa, _, err := PrimitivePart(a)
		return pa, err
	}
	pa, _, err := PrimitivePart(a)
	if err != nil {
		return Poly{}, err
	}
	pb, _, err := PrimitivePart(b)
	if err != nil {
		return Poly{}, err
	}
	for !pb.IsZero() {
		r, err := PseudoRem(pa, pb)
		if err != nil {
			return Poly{}, errors.Wrap(err, "polynomial gcd: pseudo-remainder step")
		}
		if r.IsZero() {
			pa, pb = pb, Poly{}
			break
		}
		pr, _, err := PrimitivePart(r)
		if err != nil {
			return Poly{}, errors.Wrap(err, "polynomial gcd: primitive part of remainder")
		}
		pa, pb = pb, pr
	}
	return pa, nil
}

// FullGCD is GCD with the numeric content folded back in: gcd(a,b) =
// gcd(content(a), content(b)) * primitiveGCD(a,b).
func FullGCD(a, b Poly) (Poly, error) {
	ca, err := Content(a)
	if err != nil {
		return Poly{}, err
	}
	cb, err := Content(b)
	if err != nil {
		return Poly{}, err
	}
	contentGCD := expr.NewNumeric(numeric.One)
	va, oka := ca.Numeric()
	vb, okb := cb.Numeric()
	if oka && okb {
		if ia, ok := va.(numeric.Integer); ok {
			if ib, ok := vb.(numeric.Integer); ok {
				g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(ia.Int), new(big.Int).Abs(ib.Int))
				contentGCD = expr.NewNumeric(numeric.NewInteger(g))
			}
		}
	}
	pg, err := GCD(a, b)
	if err != nil {
		return Poly{}, err
	}
	return Scale(pg, contentGCD)
}
