package quantum

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// Qubit is a single two-level system tracked by its basis amplitudes.
// It is all the state iterative phase estimation needs: one ancilla,
// reset between iterations.
type Qubit struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude
}

func NewQubit(alpha, beta complex128) *Qubit {
	return &Qubit{
		alpha: alpha,
		beta:  beta,
	}
}

func (q *Qubit) ApplyHadamard() {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	newAlpha := (q.alpha + q.beta) / complex(math.Sqrt(2), 0)
	newBeta := (q.alpha - q.beta) / complex(math.Sqrt(2), 0)
	q.alpha = newAlpha
	q.beta = newBeta
}

// ApplyPhase rotates the |1⟩ amplitude by theta radians.
func (q *Qubit) ApplyPhase(theta float64) {
	q.beta *= cmplx.Exp(complex(0, theta))
}

// Measure collapses the qubit and returns the observed bit.
func (q *Qubit) Measure(rng *rand.Rand) int {
	p0 := cmplx.Abs(q.alpha)
	p0 *= p0
	p1 := cmplx.Abs(q.beta)
	p1 *= p1

	if rng.Float64()*(p0+p1) <= p0 {
		q.alpha, q.beta = 1, 0
		return 0
	}
	q.alpha, q.beta = 0, 1
	return 1
}
