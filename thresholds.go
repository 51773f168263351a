package biguint

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/agbru/biguint/internal/config"
)

// defaultKaratsubaCutoff places the schoolbook/Karatsuba break-even near
// 1024 bits of operand.
const defaultKaratsubaCutoff = 1024 / digitBits

var (
	karatsubaCutoffVal   atomic.Int64
	parallelThresholdVal atomic.Int64

	// parallelSlots bounds the goroutines spawned by parallel Karatsuba
	// recursion across all Numbers in the process.
	parallelSlots = semaphore.NewWeighted(int64(runtime.NumCPU()))
)

func init() {
	t := config.Load(config.Thresholds{
		KaratsubaCutoff: defaultKaratsubaCutoff,
	})
	SetKaratsubaCutoff(t.KaratsubaCutoff)
	SetParallelThreshold(t.ParallelThreshold)
}

// KaratsubaCutoff returns the operand size, in digits, at or below which
// multiplication uses the schoolbook algorithm.
func KaratsubaCutoff() int {
	return int(karatsubaCutoffVal.Load())
}

// SetKaratsubaCutoff overrides the Karatsuba cutoff. Values below 1 are
// clamped to 1. The override applies process-wide; the calibrate package
// computes a measured value for the host.
func SetKaratsubaCutoff(n int) {
	if n < 1 {
		n = 1
	}
	karatsubaCutoffVal.Store(int64(n))
}

// ParallelThreshold returns the operand size, in digits, at or above
// which Karatsuba computes its three sub-products concurrently. Zero
// disables parallelism.
func ParallelThreshold() int {
	return int(parallelThresholdVal.Load())
}

// SetParallelThreshold overrides the parallel threshold. Negative values
// are clamped to 0 (disabled).
func SetParallelThreshold(n int) {
	if n < 0 {
		n = 0
	}
	parallelThresholdVal.Store(int64(n))
}
