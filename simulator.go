package quantum

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"time"

	"github.com/theapemachine/errnie"
)

// maxSimQubits caps the dense statevector at a size a laptop can hold.
const maxSimQubits = 26

/*
Simulator executes phase-estimation circuits against a dense complex128
statevector and samples a single readout of the counting register. It
is deliberately specialized: it only interprets the gate set emitted by
PhaseEstimationCircuit, not arbitrary circuits.
*/
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator seeds the simulator's measurement randomness. A zero
// seed falls back to the clock.
func NewSimulator(seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// Run plays the circuit from |0...0⟩ and returns one sampled value of
// the counting register.
func (s *Simulator) Run(c *Circuit) (uint64, error) {
	total := c.Counting + c.Work
	if total <= 0 || total > maxSimQubits {
		return 0, fmt.Errorf("cannot simulate %d qubits", total)
	}

	vec := make([]complex128, 1<<total)
	vec[0] = 1

	for _, g := range c.Gates {
		var err error
		vec, err = applyGate(vec, c, g)
		if err != nil {
			return 0, err
		}
	}

	return s.measureCounting(vec, c), nil
}

func applyGate(vec []complex128, c *Circuit, g Gate) ([]complex128, error) {
	switch g.Type {
	case GateHadamard:
		applyHadamard(vec, g.Target)
	case GatePauliX:
		applyPauliX(vec, g.Target)
	case GateSwap:
		applySwap(vec, g.Target, g.Control)
	case GateCPhase:
		applyCPhase(vec, g.Control, g.Target, g.Theta)
	case GateCMulMod:
		return applyCMulMod(vec, c, g), nil
	default:
		return nil, fmt.Errorf("unknown gate type %v", g.Type)
	}
	return vec, nil
}

func applyHadamard(vec []complex128, q int) {
	mask := 1 << q
	inv := complex(1/math.Sqrt2, 0)
	for i := range vec {
		if i&mask == 0 {
			a, b := vec[i], vec[i|mask]
			vec[i] = (a + b) * inv
			vec[i|mask] = (a - b) * inv
		}
	}
}

func applyPauliX(vec []complex128, q int) {
	mask := 1 << q
	for i := range vec {
		if i&mask == 0 {
			vec[i], vec[i|mask] = vec[i|mask], vec[i]
		}
	}
}

func applySwap(vec []complex128, q1, q2 int) {
	m1, m2 := 1<<q1, 1<<q2
	for i := range vec {
		// Visit each swapped pair once, from the side with q1 set.
		if i&m1 != 0 && i&m2 == 0 {
			j := (i &^ m1) | m2
			vec[i], vec[j] = vec[j], vec[i]
		}
	}
}

func applyCPhase(vec []complex128, control, target int, theta float64) {
	mask := 1<<control | 1<<target
	phase := cmplx.Exp(complex(0, theta))
	for i := range vec {
		if i&mask == mask {
			vec[i] *= phase
		}
	}
}

// applyCMulMod permutes the work register, sending |w⟩ to |w*f mod n⟩
// whenever the control qubit is set. Residues at or above n are left in
// place; they never carry amplitude in circuits built here.
func applyCMulMod(vec []complex128, c *Circuit, g Gate) []complex128 {
	out := make([]complex128, len(vec))
	ctrl := 1 << g.Control
	workShift := c.Counting
	workMask := (1<<c.Work - 1) << workShift

	for i, amp := range vec {
		if amp == 0 {
			continue
		}
		j := i
		if i&ctrl != 0 {
			w := uint64(i&workMask) >> workShift
			if w < g.Modulus {
				w2 := w * g.Factor % g.Modulus
				j = (i &^ workMask) | (int(w2) << workShift)
			}
		}
		out[j] += amp
	}
	return out
}

// measureCounting traces out the work register and samples the counting
// register once from the cumulative probability distribution.
func (s *Simulator) measureCounting(vec []complex128, c *Circuit) uint64 {
	countMask := 1<<c.Counting - 1
	probs := make([]float64, 1<<c.Counting)
	total := 0.0
	for i, amp := range vec {
		p := cmplx.Abs(amp)
		p *= p
		probs[i&countMask] += p
		total += p
	}

	r := s.rng.Float64() * total
	cumulative := 0.0
	for value, p := range probs {
		cumulative += p
		if r <= cumulative {
			return uint64(value)
		}
	}
	return uint64(len(probs) - 1)
}

// SimulatorOracle satisfies PhaseOracle by building the order-finding
// circuit for each request and running it once.
type SimulatorOracle struct {
	sim *Simulator
}

func NewSimulatorOracle(config *Config) *SimulatorOracle {
	if config == nil {
		config = NewConfig()
	}
	errnie.Info("NewSimulatorOracle - seed %v", config.Seed)
	return &SimulatorOracle{sim: NewSimulator(config.Seed)}
}

func (o *SimulatorOracle) Sample(ctx context.Context, n, a uint64, bits int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v, err := o.sim.Run(PhaseEstimationCircuit(n, a, bits))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*b", bits, v), nil
}
