// Package quantum implements the classical half of two small quantum
// algorithms: Shor-style factor recovery from single-shot phase samples
// and iterative phase estimation, together with the statevector
// simulator that stands in for quantum hardware.
package quantum

import (
	"context"
	"fmt"
	"log"
	"math/big"

	"github.com/theapemachine/errnie"
)

// EstimatorState tracks where a factoring run is in its lifecycle.
type EstimatorState int

const (
	StateSampling EstimatorState = iota
	StateDone
)

// FactorResult is the outcome of a successful estimation run.
type FactorResult struct {
	Modulus  uint64
	Factors  [2]uint64 // gcd(a^(r/2)-1, n), gcd(a^(r/2)+1, n)
	Period   uint64
	Sample   string // the phase sample that produced the result
	Attempts int
}

// Nontrivial returns the first member of the factor pair that is a
// proper divisor of the modulus.
func (r *FactorResult) Nontrivial() (uint64, bool) {
	for _, f := range r.Factors {
		if f != 1 && f != r.Modulus {
			return f, true
		}
	}
	return 0, false
}

/*
FactorEstimator recovers a nontrivial factor of a composite modulus
from repeated single-shot phase samples. Each attempt asks the oracle
for one sample, turns it into a period guess through bounded-denominator
rational approximation, and tests the two gcd candidates the guess
implies. All arithmetic past the approximation step is exact.
*/
type FactorEstimator struct {
	oracle  PhaseOracle
	config  *Config
	metrics *Metrics
}

func NewFactorEstimator(oracle PhaseOracle, config *Config) *FactorEstimator {
	if config == nil {
		config = NewConfig()
	}
	errnie.Info(
		"NewFactorEstimator - oracle timeout %v, seed %v",
		config.OracleTimeout,
		config.Seed,
	)
	return &FactorEstimator{
		oracle:  oracle,
		config:  config,
		metrics: newMetrics(),
	}
}

func (fe *FactorEstimator) Metrics() *Metrics {
	return fe.metrics
}

// EstimateFactor runs up to maxAttempts sampling rounds against the
// oracle and returns the first gcd pair containing a proper divisor of
// n. The base is validated before any sample is requested.
func (fe *FactorEstimator) EstimateFactor(ctx context.Context, n, a uint64, bits, maxAttempts int) (*FactorResult, error) {
	if n < 2 || bits <= 0 || maxAttempts <= 0 {
		return nil, fmt.Errorf("%w: n=%d bits=%d maxAttempts=%d", ErrInvalidConfig, n, bits, maxAttempts)
	}
	if a < 2 || a >= n {
		return nil, fmt.Errorf("%w: a=%d is outside [2, %d]", ErrInvalidBase, a, n-1)
	}

	bigN := new(big.Int).SetUint64(n)
	bigA := new(big.Int).SetUint64(a)
	if g := new(big.Int).GCD(nil, nil, bigA, bigN); g.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("%w: gcd(%d, %d) = %s", ErrInvalidBase, a, n, g)
	}

	resolution := new(big.Int).Lsh(bigOne, uint(bits)) // 2^bits

	state := StateSampling
	attempts := 0
	var result *FactorResult
	for state == StateSampling && attempts < maxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		attempts++
		fe.metrics.recordAttempt()

		sample, err := fe.sampleOnce(ctx, n, a, bits)
		if err != nil {
			fe.metrics.recordOracleError()
			log.Printf("attempt %d: oracle sample failed: %v", attempts, err)
			continue
		}
		v, err := parsePhaseSample(sample, bits)
		if err != nil {
			fe.metrics.recordOracleError()
			log.Printf("attempt %d: %v", attempts, err)
			continue
		}

		// Best rational approximation to v/2^bits with denominator <= n.
		_, r := limitDenominator(v, resolution, bigN)
		if r.Bit(0) == 1 {
			fe.metrics.recordOddPeriod()
			log.Printf("attempt %d: sample %s gave odd period %s, retrying", attempts, sample, r)
			continue
		}

		f1, f2 := factorPair(bigA, r, bigN)
		if isTrivial(f1, bigN) && isTrivial(f2, bigN) {
			fe.metrics.recordTrivialPair()
			log.Printf("attempt %d: period %s produced only trivial divisors, retrying", attempts, r)
			continue
		}

		result = &FactorResult{
			Modulus:  n,
			Factors:  [2]uint64{f1.Uint64(), f2.Uint64()},
			Period:   r.Uint64(),
			Sample:   sample,
			Attempts: attempts,
		}
		state = StateDone
	}

	if state == StateDone {
		fe.metrics.recordSuccess()
		log.Printf("factored %d after %d attempt(s): %v", n, attempts, result.Factors)
		return result, nil
	}
	fe.metrics.recordExhausted()
	return nil, fmt.Errorf("%w after %d attempts", ErrNoNontrivialFactor, attempts)
}

// sampleOnce wraps a single oracle shot in the configured timeout.
func (fe *FactorEstimator) sampleOnce(ctx context.Context, n, a uint64, bits int) (string, error) {
	if fe.config.OracleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, fe.config.OracleTimeout)
		defer cancel()
	}
	return fe.oracle.Sample(ctx, n, a, bits)
}

func parsePhaseSample(sample string, bits int) (*big.Int, error) {
	if len(sample) != bits {
		return nil, fmt.Errorf("oracle returned %d bits, want %d", len(sample), bits)
	}
	v, ok := new(big.Int).SetString(sample, 2)
	if !ok {
		return nil, fmt.Errorf("oracle returned malformed sample %q", sample)
	}
	return v, nil
}

// factorPair computes gcd(a^(r/2)-1, n) and gcd(a^(r/2)+1, n). Only
// called with even r.
func factorPair(a, r, n *big.Int) (*big.Int, *big.Int) {
	half := new(big.Int).Rsh(r, 1)
	x := new(big.Int).Exp(a, half, n)

	minus := new(big.Int).Sub(x, bigOne)
	minus.Mod(minus, n)
	plus := new(big.Int).Add(x, bigOne)
	plus.Mod(plus, n)

	f1 := new(big.Int).GCD(nil, nil, minus, n)
	f2 := new(big.Int).GCD(nil, nil, plus, n)
	return f1, f2
}

func isTrivial(f, n *big.Int) bool {
	return f.Cmp(bigOne) == 0 || f.Cmp(n) == 0
}
