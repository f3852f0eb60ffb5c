// Package fibonacci provides seven ways of computing the n-th Fibonacci
// number, from the exponential textbook recursion to iterative fast doubling,
// along with the Calculator abstraction used to benchmark them side by side.
//
// The algorithms themselves are plain functions (Recursive, IterativeArray,
// IterativePair, Matrix, Binet, FastDoublingRecursive, FastDoublingIterative).
// Calculators wrap them with cancellation, tracing, metrics and logging.
package fibonacci

//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Traits describes the static properties of an algorithm.
type Traits struct {
	// Key is the registry name of the algorithm (e.g. "ifd").
	Key string
	// Complexity is a short human-readable cost, e.g. "O(log n)".
	Complexity string
	// Exact is false for algorithms that only approximate F(n).
	Exact bool
	// Exponential marks algorithms whose cost makes large n impractical.
	Exponential bool
}

// Options configures a calculation.
type Options struct {
	// NaiveLimit is the largest n accepted by exponential algorithms.
	// Zero means MaxNaiveIndex.
	NaiveLimit uint64
}

func (o Options) naiveLimit() uint64 {
	if o.NaiveLimit == 0 {
		return MaxNaiveIndex
	}
	return o.NaiveLimit
}

// Calculator defines the public interface for a Fibonacci calculator.
// It is the abstraction used by the orchestration layer to run and compare
// the different algorithms.
type Calculator interface {
	// Calculate computes F(n). It returns ctx.Err() if the context is done
	// before the computation starts.
	Calculate(ctx context.Context, n uint64, opts Options) (*big.Int, error)

	// Name returns the display name of the algorithm.
	Name() string

	// Traits returns the static properties of the algorithm.
	Traits() Traits
}

// coreCalculator is the internal interface implemented by each algorithm.
type coreCalculator interface {
	CalculateCore(n uint64, opts Options) (*big.Int, error)
	Name() string
	Traits() Traits
}

// FibCalculator implements Calculator by decorating a coreCalculator with
// the cross-cutting concerns: cancellation, tracing, metrics and logging.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator wraps core into a Calculator. It panics if core is nil.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("fibonacci: the `coreCalculator` implementation cannot be nil")
	}
	return &FibCalculator{core: core}
}

// Name delegates to the wrapped algorithm.
func (c *FibCalculator) Name() string {
	return c.core.Name()
}

// Traits delegates to the wrapped algorithm.
func (c *FibCalculator) Traits() Traits {
	return c.core.Traits()
}

// Calculate runs the wrapped algorithm for n.
//
// The algorithms are pure and not interruptible, so the context is only
// checked before starting. Each call records
// fibbench_calculations_total, fibbench_calculation_duration_seconds and
// fibbench_result_bits, and opens a "Calculate" span.
func (c *FibCalculator) Calculate(ctx context.Context, n uint64, opts Options) (result *big.Int, err error) {
	traits := c.core.Traits()
	_, span := otel.Tracer("fibonacci").Start(ctx, "Calculate")
	span.SetAttributes(
		attribute.String("fibonacci.algorithm", traits.Key),
		attribute.Int64("fibonacci.n", int64(n)),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		calculationsTotal.WithLabelValues(traits.Key, status).Inc()
		calculationDuration.WithLabelValues(traits.Key).Observe(duration)
		if result != nil {
			resultBits.WithLabelValues(traits.Key).Set(float64(result.BitLen()))
		}

		log.Debug().
			Str("algo", traits.Key).
			Uint64("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	result, err = c.core.CalculateCore(n, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", traits.Key, err)
	}
	return result, nil
}
