// SPDX-License-Identifier: MIT

// Command genla-smoke exercises vectors and matrices end to end: it builds
// operands of the selected element type on the selected allocator, runs the
// element-wise, reduction and normalization operations, and reports the
// allocator balance afterwards.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/genla/container"
	"github.com/katalvlaran/genla/element"
	"github.com/katalvlaran/genla/matrix"
	"github.com/katalvlaran/genla/memory"
	"github.com/katalvlaran/genla/vector"
)

func main() {
	var (
		length  = flag.Int("len", 32, "Vector length")
		typ     = flag.String("type", "fp32", "Element type (fp32, fp64, s32, s64, u8)")
		alloc   = flag.String("alloc", "tracked", "Allocator (heap, mmap, tracked)")
		budget  = flag.Int64("budget", 0, "Byte budget for the tracked allocator (0 = unlimited)")
		verbose = flag.Bool("v", false, "Log rejected operations")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		container.SetLogger(logger)
	}

	a, tracker, err := newAllocator(*alloc, *budget)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: genla-smoke [-len n] [-type fp32|fp64|s32|s64|u8] [-alloc heap|mmap|tracked] [-v]")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch *typ {
	case "fp32":
		err = run[float32](*length, a)
	case "fp64":
		err = run[float64](*length, a)
	case "s32":
		err = run[int32](*length, a)
	case "s64":
		err = run[int64](*length, a)
	case "u8":
		err = run[uint8](*length, a)
	default:
		err = fmt.Errorf("unknown element type %q", *typ)
	}
	if tracker != nil {
		s := tracker.Stats()
		fmt.Printf("\nallocator: %d allocations, %d frees, %d failures, %d live (%d bytes), peak %d bytes\n",
			s.Allocations, s.Frees, s.Failures, s.Live, s.LiveBytes, s.PeakBytes)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newAllocator(kind string, budget int64) (memory.Allocator, *memory.Tracker, error) {
	switch kind {
	case "heap":
		return memory.Heap{}, nil, nil
	case "mmap":
		return memory.Anonymous{}, nil, nil
	case "tracked":
		t := memory.NewTracker(memory.Heap{}, budget)
		return t, t, nil
	default:
		return nil, nil, fmt.Errorf("unknown allocator %q", kind)
	}
}

// run builds two vectors a[i] = i+1 and b[i] = 2, and a 2-column matrix over
// the same values, then prints the results of every operation.
func run[T element.Number](n int, alloc memory.Allocator) (err error) {
	opt := container.WithAllocator(alloc)
	vals := make([]T, n)
	twos := make([]T, n)
	for i := range vals {
		vals[i] = T(i + 1)
		twos[i] = 2
	}

	a, err := vector.FromSlice(vals, element.Standard[T](), opt)
	if err != nil {
		return fmt.Errorf("vector a: %w", err)
	}
	defer destroy(&err, a.Destroy)
	b, err := vector.FromSlice(twos, element.Standard[T](), opt)
	if err != nil {
		return fmt.Errorf("vector b: %w", err)
	}
	defer destroy(&err, b.Destroy)
	out, err := vector.NewStandard[T](n, opt)
	if err != nil {
		return fmt.Errorf("vector out: %w", err)
	}
	defer destroy(&err, out.Destroy)

	fmt.Printf("type %s, len %d, %d bytes per vector\n", a.Type(), a.Len(), a.BufferSize())
	fmt.Printf("a         = %s\n", a)

	if err = vector.Add(out, a, b); err != nil {
		return err
	}
	fmt.Printf("a + b     = %s\n", out)
	if err = vector.ElementwiseMultiply(out, a, b); err != nil {
		return err
	}
	fmt.Printf("a * b     = %s\n", out)

	dot, err := vector.Dot(a, b)
	if err != nil {
		return err
	}
	fmt.Printf("a . b     = %v\n", dot)

	mag, err := vector.MagnitudeSquared(a)
	if err != nil {
		return err
	}
	fmt.Printf("|a|^2     = %v\n", mag)

	if err = vector.Normalize(out, a, element.StandardSqrt[T]()); err != nil {
		return err
	}
	fmt.Printf("a / |a|   = %s\n", out)

	if n%2 == 0 {
		if err = runMatrix(vals, opt); err != nil {
			return err
		}
	}
	return nil
}

// runMatrix lays vals out as a 2-column matrix and scales it.
func runMatrix[T element.Number](vals []T, opt container.Option) (err error) {
	m, err := matrix.FromColumns(2, len(vals)/2, vals, element.Standard[T](), opt)
	if err != nil {
		return fmt.Errorf("matrix: %w", err)
	}
	defer destroy(&err, m.Destroy)

	if err = matrix.Scale(m, m, 3); err != nil {
		return err
	}
	col, err := m.Column(1)
	if err != nil {
		return err
	}
	defer destroy(&err, col.Destroy)
	fmt.Printf("3*M[:,1]  = %s\n", col)
	return nil
}

// destroy runs release and keeps the first error seen.
func destroy(err *error, release func() error) {
	if rerr := release(); rerr != nil && *err == nil {
		*err = rerr
	}
}
