package quantum

import (
	"math"
	"math/big"
)

/*
Circuit is a gate list over a counting register (qubits [0, Counting))
and a work register (qubits [Counting, Counting+Work)). The counting
register is little-endian: qubit j holds bit j of the readout value.
*/
type Circuit struct {
	Counting int
	Work     int
	Gates    []Gate
}

// workBits returns the qubit count needed to hold residues mod n.
func workBits(n uint64) int {
	bits := 0
	for v := n - 1; v > 0; v >>= 1 {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	return bits
}

/*
PhaseEstimationCircuit builds the order-finding circuit for a mod n
with bits counting qubits: the work register starts in |1⟩, counting
qubit j controls multiplication by a^(2^j) mod n, and the counting
register is read out through an inverse quantum Fourier transform.
Sampling the counting register afterwards concentrates on values near
multiples of 2^bits divided by the order of a mod n.
*/
func PhaseEstimationCircuit(n, a uint64, bits int) *Circuit {
	c := &Circuit{Counting: bits, Work: workBits(n)}

	// |1⟩ in the work register.
	c.Gates = append(c.Gates, Gate{Type: GatePauliX, Target: bits, Control: -1})

	for j := 0; j < bits; j++ {
		c.Gates = append(c.Gates, Gate{Type: GateHadamard, Target: j, Control: -1})
	}

	// Controlled U^(2^j) is multiplication by the j-th repeated square
	// of a. Squaring runs through big.Int so the factors stay exact for
	// any modulus.
	bigN := new(big.Int).SetUint64(n)
	f := new(big.Int).SetUint64(a % n)
	for j := 0; j < bits; j++ {
		c.Gates = append(c.Gates, Gate{
			Type:    GateCMulMod,
			Target:  -1,
			Control: j,
			Factor:  f.Uint64(),
			Modulus: n,
		})
		f.Mul(f, f)
		f.Mod(f, bigN)
	}

	// Inverse QFT on the counting register: reverse the qubit order,
	// then negative controlled rotations followed by Hadamards.
	for q := 0; q < bits/2; q++ {
		c.Gates = append(c.Gates, Gate{Type: GateSwap, Target: q, Control: bits - 1 - q})
	}
	for j := 0; j < bits; j++ {
		for k := 0; k < j; k++ {
			c.Gates = append(c.Gates, Gate{
				Type:    GateCPhase,
				Target:  j,
				Control: k,
				Theta:   -math.Pi / float64(int(1)<<(j-k)),
			})
		}
		c.Gates = append(c.Gates, Gate{Type: GateHadamard, Target: j, Control: -1})
	}

	return c
}
