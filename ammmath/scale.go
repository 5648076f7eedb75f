package ammmath

import (
	"github.com/holiman/uint256"
)

// Precision is the canonical fixed-point scale (10^18) every asset's
// balance is converted to before it reaches ComputeD / ComputeY.
var Precision = uint256.MustFromDecimal("1000000000000000000")

// ToCanonical scales a native-unit balance up to canonical (18-decimal)
// units using the asset's precision multiplier.
func ToCanonical(native *uint256.Int, mul *uint256.Int) *uint256.Int {
	return new(uint256.Int).Mul(native, mul)
}

// FromCanonical scales a canonical-unit balance back down to native
// units, truncating. This is the inverse of ToCanonical; the remainder
// below the asset's native precision is dropped, since native balances
// never carry sub-unit dust.
func FromCanonical(canonical *uint256.Int, mul *uint256.Int) *uint256.Int {
	return new(uint256.Int).Div(canonical, mul)
}

// PrecisionMultiplier returns 10^(18-decimals), the factor that converts
// a balance with the given native decimal count into canonical units.
// decimals must be <= 18.
func PrecisionMultiplier(decimals uint8) *uint256.Int {
	exp := uint256.NewInt(uint64(18 - decimals))
	ten := uint256.NewInt(10)
	return new(uint256.Int).Exp(ten, exp)
}
