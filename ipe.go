package quantum

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/theapemachine/errnie"
)

// PhaseEstimate is the outcome of one iterative phase estimation run.
type PhaseEstimate struct {
	Phase float64 // estimated eigenphase in [0, 1)
	Bits  string  // binary expansion, most significant first
}

/*
IterativePhaseEstimator recovers the eigenphase of a diagonal phase
unitary P(theta) one bit at a time. Each iteration uses a single
ancilla: Hadamard, phase kickback from the controlled power of the
unitary, a classical feedback rotation unwinding the bits already
known, Hadamard, measure. Bits come out least significant first.
*/
type IterativePhaseEstimator struct {
	rng *rand.Rand
}

func NewIterativePhaseEstimator(config *Config) *IterativePhaseEstimator {
	if config == nil {
		config = NewConfig()
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	errnie.Info("NewIterativePhaseEstimator - seed %v", config.Seed)
	return &IterativePhaseEstimator{rng: rand.New(rand.NewSource(seed))}
}

// EstimatePhase runs bits iterations against P(theta). Eigenphases with
// an exact bits-length binary expansion are recovered deterministically;
// anything else rounds probabilistically in the final bit.
func (ipe *IterativePhaseEstimator) EstimatePhase(theta float64, bits int) (*PhaseEstimate, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("%w: bits=%d", ErrInvalidConfig, bits)
	}

	phi := theta / (2 * math.Pi) // eigenphase of P(theta)

	// results[k] holds bit k of 0.x1 x2 ... xbits, extracted from the
	// least significant end upward.
	results := make([]int, bits+1)
	for k := bits; k >= 1; k-- {
		q := NewQubit(1, 0)
		q.ApplyHadamard()

		// Kickback from the controlled P(theta)^(2^(k-1)).
		q.ApplyPhase(2 * math.Pi * pow2Frac(phi, k-1))

		// Feedback rotation unwinding the bits already pinned down.
		feedback := 0.0
		for j := k + 1; j <= bits; j++ {
			if results[j] == 1 {
				feedback += math.Pow(2, float64(k-j-1))
			}
		}
		q.ApplyPhase(-2 * math.Pi * feedback)

		q.ApplyHadamard()
		results[k] = q.Measure(ipe.rng)
	}

	phase := 0.0
	var sb strings.Builder
	for k := 1; k <= bits; k++ {
		phase += float64(results[k]) * math.Pow(2, -float64(k))
		sb.WriteByte('0' + byte(results[k]))
	}
	return &PhaseEstimate{Phase: phase, Bits: sb.String()}, nil
}

// pow2Frac returns the fractional part of 2^e * phi.
func pow2Frac(phi float64, e int) float64 {
	v := phi * math.Pow(2, float64(e))
	return v - math.Floor(v)
}
