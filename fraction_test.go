package quantum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitDenominator(t *testing.T) {
	tests := []struct {
		name  string
		num   int64
		den   int64
		bound int64
		wantP int64
		wantQ int64
	}{
		{
			name: "quarter_phase",
			num:  4, den: 16, bound: 15,
			wantP: 1, wantQ: 4,
		},
		{
			name: "zero_phase",
			num:  0, den: 16, bound: 15,
			wantP: 0, wantQ: 1,
		},
		{
			name: "three_quarters",
			num:  12, den: 16, bound: 15,
			wantP: 3, wantQ: 4,
		},
		{
			name: "already_within_bound",
			num:  3, den: 8, bound: 15,
			wantP: 3, wantQ: 8,
		},
		{
			name: "order_seven_roundtrip", // floor(2^11 * 3/7) = 877
			num:  877, den: 2048, bound: 20,
			wantP: 3, wantQ: 7,
		},
		{
			name: "order_five_roundtrip", // floor(2^8 * 2/5) = 102
			num:  102, den: 256, bound: 21,
			wantP: 2, wantQ: 5,
		},
		{
			name: "pi_convergent",
			num:  314159265, den: 100000000, bound: 1000,
			wantP: 355, wantQ: 113,
		},
		{
			name: "half_phase",
			num:  8, den: 16, bound: 15,
			wantP: 1, wantQ: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, q := limitDenominator(big.NewInt(tt.num), big.NewInt(tt.den), big.NewInt(tt.bound))
			assert.Equal(t, tt.wantP, p.Int64(), "numerator")
			assert.Equal(t, tt.wantQ, q.Int64(), "denominator")
		})
	}
}

func TestLimitDenominatorStaysInBound(t *testing.T) {
	// Every sampled 8-bit phase must map to a denominator in [1, 15].
	bound := big.NewInt(15)
	den := big.NewInt(256)
	for v := int64(0); v < 256; v++ {
		_, q := limitDenominator(big.NewInt(v), den, bound)
		assert.GreaterOrEqual(t, q.Int64(), int64(1), "v=%d", v)
		assert.LessOrEqual(t, q.Int64(), int64(15), "v=%d", v)
	}
}
