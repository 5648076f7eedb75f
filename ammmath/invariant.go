// Package ammmath implements the fixed-point Newton solvers for the
// StableSwap bonding curve: the invariant D and the output-balance y.
// All arithmetic is unsigned 256-bit (github.com/holiman/uint256) over
// canonical 18-decimal balances, with multiplication performed before
// division exactly in the order the invariant's rounding contract
// requires. Do not reassociate the expressions below: the truncation
// points are load-bearing for economic correctness, not incidental.
package ammmath

import (
	"github.com/holiman/uint256"
)

// NCoins is the fixed basket size this engine supports. The invariant
// solver is not generalized to other coin counts.
const NCoins = 3

// MaxIterations bounds every Newton loop below. Both computeD and
// computeY converge in far fewer steps for realistic inputs; the bound
// exists so a pathological input cannot loop forever. A loop that hits
// the bound returns its last iterate as-is, without an error.
const MaxIterations = 255

var (
	nBig = uint256.NewInt(NCoins)
	one = uint256.NewInt(1)
	nPlus = uint256.NewInt(NCoins + 1)
)

// ComputeD solves the StableSwap invariant for the given canonical
// balances xp and amplification coefficient amp. Returns 0 if every
// balance is zero.
//
// D is found by Newton's method on:
//
//	Ann*S + D_P*n = D * ((Ann-1) + (n+1)*D_P/D)
//
// reshaped into the iteration used below; this function must not
// change the order of the multiplications it performs.
func ComputeD(xp []*uint256.Int, amp uint64) *uint256.Int {
	s := uint256.NewInt(0)
	for _, x := range xp {
		s.Add(s, x)
	}
	if s.IsZero() {
		return uint256.NewInt(0)
	}

	ann := new(uint256.Int).Mul(uint256.NewInt(amp), nBig)

	d := new(uint256.Int).Set(s)
	prev := new(uint256.Int)
	dP := new(uint256.Int)

	for i := 0; i < MaxIterations; i++ {
		dP.Set(d)
		for _, x := range xp {
			// dP = dP * D / (x * N)
			denom := new(uint256.Int).Mul(x, nBig)
			dP.Mul(dP, d)
			dP.Div(dP, denom)
		}

		prev.Set(d)

		// numerator = (Ann*S + D_P*N) * D
		num := new(uint256.Int).Mul(ann, s)
		num.Add(num, new(uint256.Int).Mul(dP, nBig))
		num.Mul(num, d)

		// denominator = (Ann-1)*D + (N+1)*D_P
		annMinus1 := new(uint256.Int).Sub(ann, one)
		den := new(uint256.Int).Mul(annMinus1, d)
		den.Add(den, new(uint256.Int).Mul(nPlus, dP))

		d.Div(num, den)

		diff := absDiff(d, prev)
		if diff.Cmp(one) <= 0 {
			return d
		}
	}
	return d
}

// ComputeY solves for the new canonical balance of output asset j that
// preserves the invariant D given that asset i's balance becomes xNew
// and every other asset's balance stays as in xp. Requires i != j and
// both indices within [0, len(xp)).
func ComputeY(i, j int, xNew *uint256.Int, xp []*uint256.Int, amp uint64) *uint256.Int {
	d := ComputeD(xp, amp)
	ann := new(uint256.Int).Mul(uint256.NewInt(amp), nBig)

	sSum := uint256.NewInt(0)
	c := new(uint256.Int).Set(d)

	for k := range xp {
		var v *uint256.Int
		switch k {
		case i:
			v = xNew
		case j:
			continue
		default:
			v = xp[k]
		}
		sSum.Add(sSum, v)
		// c = c * D / (v * N)
		denom := new(uint256.Int).Mul(v, nBig)
		c.Mul(c, d)
		c.Div(c, denom)
	}

	return solveY(sSum, c, d, ann)
}

// ComputeYGivenD solves for the canonical balance of asset i that
// yields the invariant value d, holding every other asset's balance
// fixed at xp. Unlike ComputeY it does not recompute D from xp first:
// the caller supplies the target D directly. This is the solver a
// single-sided withdrawal uses: it asks what balance asset i must have
// for the pool to sit exactly at a smaller, already-known invariant.
func ComputeYGivenD(i int, xp []*uint256.Int, d *uint256.Int, amp uint64) *uint256.Int {
	ann := new(uint256.Int).Mul(uint256.NewInt(amp), nBig)

	sSum := uint256.NewInt(0)
	c := new(uint256.Int).Set(d)

	for k, v := range xp {
		if k == i {
			continue
		}
		sSum.Add(sSum, v)
		denom := new(uint256.Int).Mul(v, nBig)
		c.Mul(c, d)
		c.Div(c, denom)
	}

	return solveY(sSum, c, d, ann)
}

// solveY runs the shared Newton loop y <- (y^2+c)/(2y+b-D), where
// b = sSum + D/Ann, given the accumulated sSum and c terms from either
// ComputeY or ComputeYGivenD.
func solveY(sSum, c, d, ann *uint256.Int) *uint256.Int {
	// c = c * D / (Ann * N)
	c.Mul(c, d)
	c.Div(c, new(uint256.Int).Mul(ann, nBig))

	// b = S_ + D/Ann
	b := new(uint256.Int).Div(d, ann)
	b.Add(b, sSum)

	y := new(uint256.Int).Set(d)
	prev := new(uint256.Int)
	two := uint256.NewInt(2)

	for iter := 0; iter < MaxIterations; iter++ {
		prev.Set(y)

		// y = (y^2 + c) / (2y + b - D)
		num := new(uint256.Int).Mul(y, y)
		num.Add(num, c)

		den := new(uint256.Int).Mul(two, y)
		den.Add(den, b)
		den.Sub(den, d)

		y.Div(num, den)

		diff := absDiff(y, prev)
		if diff.Cmp(one) <= 0 {
			return y
		}
	}
	return y
}

func absDiff(a, b *uint256.Int) *uint256.Int {
	if a.Cmp(b) >= 0 {
		return new(uint256.Int).Sub(a, b)
	}
	return new(uint256.Int).Sub(b, a)
}
