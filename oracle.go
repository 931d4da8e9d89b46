package quantum

import (
	"context"
	"fmt"
)

/*
PhaseOracle produces one single-shot sample from the order-finding
circuit parameterized by (n, a, bits). The returned string is exactly
bits binary digits, most significant first; interpreted over 2^bits it
approximates s/r for some s, where r is the order of a mod n.

The sampling distribution belongs entirely to the oracle. The estimator
treats each call as an opaque random draw, which is what makes a
deterministic substitute valid in tests.
*/
type PhaseOracle interface {
	Sample(ctx context.Context, n, a uint64, bits int) (string, error)
}

// OracleFunc adapts a plain function to the PhaseOracle interface.
type OracleFunc func(ctx context.Context, n, a uint64, bits int) (string, error)

func (f OracleFunc) Sample(ctx context.Context, n, a uint64, bits int) (string, error) {
	return f(ctx, n, a, bits)
}

// FixedOracle cycles through a fixed list of samples. It stands in for
// the simulator wherever a deterministic draw is needed.
type FixedOracle struct {
	Samples []string
	next    int
}

func (o *FixedOracle) Sample(ctx context.Context, n, a uint64, bits int) (string, error) {
	if len(o.Samples) == 0 {
		return "", fmt.Errorf("fixed oracle has no samples configured")
	}
	s := o.Samples[o.next%len(o.Samples)]
	o.next++
	return s, nil
}
