package quantum

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEstimateFactor(t *testing.T) {
	Convey("Given a factor estimator over N=15, a=7", t, func() {
		ctx := context.Background()

		Convey("When the oracle returns the exact quarter phase", func() {
			oracle := &FixedOracle{Samples: []string{"0100"}}
			fe := NewFactorEstimator(oracle, nil)

			result, err := fe.EstimateFactor(ctx, 15, 7, 4, 8)

			So(err, ShouldBeNil)
			So(result.Period, ShouldEqual, 4)
			So(result.Attempts, ShouldEqual, 1)
			So(result.Factors[0], ShouldEqual, 3)
			So(result.Factors[1], ShouldEqual, 5)
		})

		Convey("When the first sample collapses to phase zero", func() {
			// Phase 0 approximates to 0/1, period 1 is odd, so the
			// estimator retries and succeeds on the second shot.
			oracle := &FixedOracle{Samples: []string{"0000", "0100"}}
			fe := NewFactorEstimator(oracle, nil)

			result, err := fe.EstimateFactor(ctx, 15, 7, 4, 8)

			So(err, ShouldBeNil)
			So(result.Attempts, ShouldEqual, 2)
			So(result.Factors[0], ShouldEqual, 3)
			So(result.Factors[1], ShouldEqual, 5)
			So(fe.Metrics().Export()["odd_periods"], ShouldEqual, 1)
		})

		Convey("When the base shares a factor with the modulus", func() {
			called := false
			oracle := OracleFunc(func(ctx context.Context, n, a uint64, bits int) (string, error) {
				called = true
				return "0000", nil
			})
			fe := NewFactorEstimator(oracle, nil)

			_, err := fe.EstimateFactor(ctx, 15, 5, 4, 8)

			So(errors.Is(err, ErrInvalidBase), ShouldBeTrue)
			So(called, ShouldBeFalse)
		})

		Convey("When the parameters are out of range", func() {
			fe := NewFactorEstimator(&FixedOracle{Samples: []string{"0100"}}, nil)

			_, err := fe.EstimateFactor(ctx, 1, 7, 4, 8)
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)

			_, err = fe.EstimateFactor(ctx, 15, 7, 0, 8)
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)

			_, err = fe.EstimateFactor(ctx, 15, 7, 4, 0)
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("When no sample ever yields a usable period", func() {
			oracle := &FixedOracle{Samples: []string{"0000"}}
			fe := NewFactorEstimator(oracle, nil)

			_, err := fe.EstimateFactor(ctx, 15, 7, 4, 3)

			So(errors.Is(err, ErrNoNontrivialFactor), ShouldBeTrue)
			So(fe.Metrics().Export()["odd_periods"], ShouldEqual, 3)
			So(fe.Metrics().Export()["exhausted_runs"], ShouldEqual, 1)
		})

		Convey("When the period is even but yields only trivial divisors", func() {
			// a=14 is -1 mod 15: order 2, and 14^1±1 gives gcds {1, 15}.
			oracle := &FixedOracle{Samples: []string{"10"}}
			fe := NewFactorEstimator(oracle, nil)

			_, err := fe.EstimateFactor(ctx, 15, 14, 2, 2)

			So(errors.Is(err, ErrNoNontrivialFactor), ShouldBeTrue)
			So(fe.Metrics().Export()["trivial_pairs"], ShouldEqual, 2)
		})

		Convey("When the oracle keeps failing", func() {
			oracle := OracleFunc(func(ctx context.Context, n, a uint64, bits int) (string, error) {
				return "", errors.New("backend offline")
			})
			fe := NewFactorEstimator(oracle, nil)

			_, err := fe.EstimateFactor(ctx, 15, 7, 4, 2)

			So(errors.Is(err, ErrNoNontrivialFactor), ShouldBeTrue)
			So(fe.Metrics().Export()["oracle_errors"], ShouldEqual, 2)
		})

		Convey("When the oracle returns a malformed sample", func() {
			oracle := &FixedOracle{Samples: []string{"01", "0100"}}
			fe := NewFactorEstimator(oracle, nil)

			result, err := fe.EstimateFactor(ctx, 15, 7, 4, 8)

			So(err, ShouldBeNil)
			So(result.Attempts, ShouldEqual, 2)
			So(fe.Metrics().Export()["oracle_errors"], ShouldEqual, 1)
		})

		Convey("When run twice against the same fixed sample", func() {
			first, err1 := NewFactorEstimator(&FixedOracle{Samples: []string{"0100"}}, nil).
				EstimateFactor(ctx, 15, 7, 4, 8)
			second, err2 := NewFactorEstimator(&FixedOracle{Samples: []string{"0100"}}, nil).
				EstimateFactor(ctx, 15, 7, 4, 8)

			So(err1, ShouldBeNil)
			So(err2, ShouldBeNil)
			So(second.Factors, ShouldResemble, first.Factors)
			So(second.Period, ShouldEqual, first.Period)
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			fe := NewFactorEstimator(&FixedOracle{Samples: []string{"0100"}}, nil)

			_, err := fe.EstimateFactor(cancelled, 15, 7, 4, 8)

			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestFactorResultNontrivial(t *testing.T) {
	Convey("Given a factor result", t, func() {
		Convey("A pair with proper divisors reports the first one", func() {
			r := &FactorResult{Modulus: 15, Factors: [2]uint64{3, 5}}
			f, ok := r.Nontrivial()
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, 3)
		})

		Convey("A half-trivial pair still reports its proper divisor", func() {
			r := &FactorResult{Modulus: 15, Factors: [2]uint64{15, 5}}
			f, ok := r.Nontrivial()
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, 5)
		})

		Convey("An all-trivial pair reports nothing", func() {
			r := &FactorResult{Modulus: 15, Factors: [2]uint64{1, 15}}
			_, ok := r.Nontrivial()
			So(ok, ShouldBeFalse)
		})
	})
}
