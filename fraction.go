package quantum

import "math/big"

var bigOne = big.NewInt(1)

/*
limitDenominator returns the fraction p/q with 1 <= q <= bound closest
to num/den, with ties resolved toward the smaller denominator. This is
the standard continued-fraction search: walk the convergents until the
denominator would exceed the bound, then decide between the last
convergent and the closing semiconvergent.
*/
func limitDenominator(num, den, bound *big.Int) (*big.Int, *big.Int) {
	g := new(big.Int).GCD(nil, nil, num, den)
	n := new(big.Int).Quo(num, g)
	d := new(big.Int).Quo(den, g)
	if d.Cmp(bound) <= 0 {
		return n, d
	}
	denReduced := new(big.Int).Set(d)

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	a := new(big.Int)
	for {
		a.Quo(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(bound) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2

		rem := new(big.Int).Sub(n, new(big.Int).Mul(a, d))
		n, d = d, rem
	}

	// Closing semiconvergent with the largest in-bound denominator.
	k := new(big.Int).Sub(bound, q0)
	k.Quo(k, q1)
	qk := new(big.Int).Add(q0, new(big.Int).Mul(k, q1))

	// 2*d*qk <= denReduced exactly when the last convergent p1/q1 is at
	// least as close as the semiconvergent.
	lhs := new(big.Int).Mul(d, qk)
	lhs.Lsh(lhs, 1)
	if lhs.Cmp(denReduced) <= 0 {
		return p1, q1
	}
	pk := new(big.Int).Add(p0, new(big.Int).Mul(k, p1))
	return pk, qk
}
