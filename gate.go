package quantum

// GateType enumerates the operations the phase-estimation executor
// understands.
type GateType int

const (
	GateHadamard GateType = iota
	GatePauliX
	GateSwap
	GateCPhase
	GateCMulMod
)

func (g GateType) String() string {
	switch g {
	case GateHadamard:
		return "H"
	case GatePauliX:
		return "X"
	case GateSwap:
		return "SWAP"
	case GateCPhase:
		return "CP"
	case GateCMulMod:
		return "CMULMOD"
	default:
		return "UNKNOWN"
	}
}

// Gate is one operation placed on the circuit. Control is -1 for
// single-qubit gates. Swap pairs Target with Control. Theta is the
// rotation angle for controlled phase gates. Factor and Modulus
// parameterize controlled modular multiplication, which acts on the
// whole work register (Target is -1 there).
type Gate struct {
	Type    GateType
	Target  int
	Control int
	Theta   float64
	Factor  uint64
	Modulus uint64
}
