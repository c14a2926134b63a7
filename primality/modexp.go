package primality

import "math/big"

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ModExp computes base^exp mod m with left-to-right square-and-multiply.
// exp must be non-negative and m positive. The loop runs once per bit of exp,
// so stack depth is constant regardless of the exponent size.
func ModExp(base, exp, m *big.Int) *big.Int {
	if m.Cmp(one) == 0 {
		return new(big.Int)
	}

	b := new(big.Int).Mod(base, m)
	result := big.NewInt(1)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, m)
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
	}
	return result
}
