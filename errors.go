package quantum

import "errors"

var (
	// ErrInvalidConfig reports estimation parameters that can never
	// produce a sample: modulus below 2, zero phase bits, or an empty
	// attempt budget.
	ErrInvalidConfig = errors.New("invalid estimation parameters")

	// ErrInvalidBase reports a base outside [2, n-1] or one sharing a
	// factor with the modulus. Checked before the oracle is ever asked
	// for a sample.
	ErrInvalidBase = errors.New("base is not a valid coprime of the modulus")

	// ErrNoNontrivialFactor reports an exhausted attempt budget.
	ErrNoNontrivialFactor = errors.New("no nontrivial factor found")
)
