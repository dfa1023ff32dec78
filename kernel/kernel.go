// Package kernel sums the elements of a byte-valued array that are greater
// than or equal to 128 without a data-dependent branch in the hot loop.
//
// The selection relies on Go's arithmetic right shift for signed integers:
// (v - 128) >> 31 on an int32 is -1 for v < 128 and 0 otherwise, so its
// complement is a mask that keeps v only when it passes the threshold.
package kernel

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	// Threshold is the smallest value included in the sum.
	Threshold = 128
	// MaxValue is the largest value an element may hold.
	MaxValue = 255
)

// ErrInvalidInput is returned by Validate for out-of-range parameters.
var ErrInvalidInput = errors.New("invalid input")

// Pass performs one branchless pass over data.
func Pass(data []int32) int64 {
	var sum int64
	for _, v := range data {
		t := (v - Threshold) >> 31
		sum += int64(^t & v)
	}
	return sum
}

// Sum performs repeat full passes over data, accumulating into a single sum.
// The passes are executed, not folded into a multiplication, since the
// repeated loop is what gets measured.
func Sum(data []int32, repeat int) int64 {
	var sum int64
	for i := 0; i < repeat; i++ {
		sum += Pass(data)
	}
	return sum
}

// SumParallel splits the repeat loop across workers goroutines. Each worker
// keeps its own partial sum; partials are combined by addition, so the result
// equals Sum(data, repeat). Cancellation is observed between passes.
func SumParallel(ctx context.Context, data []int32, repeat, workers int) (int64, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > repeat {
		workers = repeat
	}
	if workers <= 1 {
		return Sum(data, repeat), nil
	}

	partials := make([]int64, workers)
	eg, egCtx := errgroup.WithContext(ctx)

	share, rest := repeat/workers, repeat%workers
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy; go directive is below 1.22
		n := share
		if w < rest {
			n++
		}
		eg.Go(func() error {
			var sum int64
			for i := 0; i < n; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				sum += Pass(data)
			}
			partials[w] = sum
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var sum int64
	for _, p := range partials {
		sum += p
	}
	return sum, nil
}

// ValidateParams checks the parameters alone: size must be non-negative,
// repeat at least one, and the worst-case sum of size elements over repeat
// passes must fit in an int64. Callers use it to reject bad parameters before
// generating any data.
func ValidateParams(size, repeat int) error {
	if size < 0 {
		return fmt.Errorf("%w: size must not be negative, got %d", ErrInvalidInput, size)
	}
	if repeat < 1 {
		return fmt.Errorf("%w: repeat count must be at least 1, got %d", ErrInvalidInput, repeat)
	}
	if size > 0 && uint64(repeat) > math.MaxInt64/MaxValue/uint64(size) {
		return fmt.Errorf("%w: %d elements repeated %d times may overflow the accumulator", ErrInvalidInput, size, repeat)
	}
	return nil
}

// Validate checks the parameters as ValidateParams does and that every
// element lies in [0, MaxValue].
func Validate(data []int32, repeat int) error {
	if err := ValidateParams(len(data), repeat); err != nil {
		return err
	}
	for i, v := range data {
		if v < 0 || v > MaxValue {
			return fmt.Errorf("%w: element %d has value %d outside [0, %d]", ErrInvalidInput, i, v, MaxValue)
		}
	}
	return nil
}
