package rabin

import "math/big"

// extendedGCD returns gcd(a, b) and Bézout coefficients x, y with
// a*x + b*y = gcd(a, b). a and b must be non-negative.
func extendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	x, y = big.NewInt(1), big.NewInt(0)
	x1, y1 := big.NewInt(0), big.NewInt(1)
	a1, b1 := new(big.Int).Set(a), new(big.Int).Set(b)

	quo := new(big.Int)
	for b1.Sign() != 0 {
		quo.Quo(a1, b1)
		x, x1 = x1, new(big.Int).Sub(x, new(big.Int).Mul(quo, x1))
		y, y1 = y1, new(big.Int).Sub(y, new(big.Int).Mul(quo, y1))
		a1, b1 = b1, new(big.Int).Sub(a1, new(big.Int).Mul(quo, b1))
	}
	return a1, x, y
}
