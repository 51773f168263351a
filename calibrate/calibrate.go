// Package calibrate measures the engine's tuning thresholds on the host
// it runs on: the schoolbook/Karatsuba crossover and the operand size at
// which parallel recursion starts paying for its overhead. The measured
// profile can be applied process-wide.
//
// Calibration is a pure library facility; it logs through the engine's
// structured logger, records timings in the metrics package and traces
// each run with an OpenTelemetry span.
package calibrate

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/biguint"
	"github.com/agbru/biguint/internal/config"
	"github.com/agbru/biguint/internal/logging"
	"github.com/agbru/biguint/metrics"
)

// Profile holds the thresholds selected by a calibration run.
type Profile struct {
	// KaratsubaCutoff is the measured schoolbook/Karatsuba crossover, in
	// digits.
	KaratsubaCutoff int
	// ParallelThreshold is the measured parallel recursion threshold, in
	// digits; 0 means sequential won.
	ParallelThreshold int
}

// Options configures a calibration run. The zero value is usable.
type Options struct {
	// Logger receives one entry per measurement. Defaults to a stderr
	// logger when BIGUINT_VERBOSE_CALIBRATION is true, 1 or yes, else to
	// a nop.
	Logger logging.Logger
	// Rounds is the number of repetitions per measurement; the best of
	// the rounds is kept. Defaults to 3.
	Rounds int
	// OperandDigits is the operand size for the cutoff sweep.
	// Defaults to 512.
	OperandDigits int
	// ParallelDigits is the operand size for the parallel threshold
	// sweep. Defaults to 4096.
	ParallelDigits int
}

const neverMeasured = time.Duration(1<<63 - 1)

// Run sweeps the candidate thresholds, multiplying fixed pseudo-random
// operands under each setting, and returns the fastest profile. The
// process-wide thresholds are restored on return; use Apply to adopt the
// result. Run honours ctx cancellation between measurements.
func Run(ctx context.Context, opts Options) (Profile, error) {
	logger := opts.Logger
	if logger == nil {
		if config.VerboseCalibration() {
			logger = logging.NewDefaultLogger()
		} else {
			logger = logging.NewNopLogger()
		}
	}
	rounds := opts.Rounds
	if rounds <= 0 {
		rounds = 3
	}
	operandDigits := opts.OperandDigits
	if operandDigits <= 0 {
		operandDigits = 512
	}
	parallelDigits := opts.ParallelDigits
	if parallelDigits <= 0 {
		parallelDigits = 4096
	}

	tracer := otel.Tracer("biguint/calibrate")
	ctx, span := tracer.Start(ctx, "calibrate.Run")
	defer span.End()

	prevCutoff := biguint.KaratsubaCutoff()
	prevParallel := biguint.ParallelThreshold()
	defer func() {
		biguint.SetKaratsubaCutoff(prevCutoff)
		biguint.SetParallelThreshold(prevParallel)
	}()

	// The sweeps use a fixed seed so repeated runs measure the same
	// operands.
	rng := rand.New(rand.NewSource(1))

	// Sweep the Karatsuba cutoff with parallelism off so the two knobs
	// don't confound each other.
	biguint.SetParallelThreshold(0)
	x := randomNumber(rng, operandDigits)
	y := randomNumber(rng, operandDigits)

	best := Profile{KaratsubaCutoff: prevCutoff, ParallelThreshold: prevParallel}
	bestTime := neverMeasured
	for _, cutoff := range config.GenerateKaratsubaCutoffs() {
		if err := ctx.Err(); err != nil {
			return Profile{}, err
		}
		biguint.SetKaratsubaCutoff(cutoff)
		elapsed := measureMul(x, y, rounds)
		logger.Info("measured karatsuba cutoff",
			logging.Int("cutoff", cutoff),
			logging.Int("operand_digits", operandDigits),
			logging.Dur("elapsed", elapsed))
		if elapsed < bestTime {
			bestTime = elapsed
			best.KaratsubaCutoff = cutoff
		}
	}
	biguint.SetKaratsubaCutoff(best.KaratsubaCutoff)

	// Sweep the parallel threshold with the chosen cutoff in place.
	px := randomNumber(rng, parallelDigits)
	py := randomNumber(rng, parallelDigits)

	bestTime = neverMeasured
	for _, threshold := range config.GenerateParallelThresholds() {
		if err := ctx.Err(); err != nil {
			return Profile{}, err
		}
		biguint.SetParallelThreshold(threshold)
		elapsed := measureMul(px, py, rounds)
		logger.Info("measured parallel threshold",
			logging.Int("threshold", threshold),
			logging.Int("operand_digits", parallelDigits),
			logging.Dur("elapsed", elapsed))
		if elapsed < bestTime {
			bestTime = elapsed
			best.ParallelThreshold = threshold
		}
	}

	span.SetAttributes(
		attribute.Int("karatsuba_cutoff", best.KaratsubaCutoff),
		attribute.Int("parallel_threshold", best.ParallelThreshold),
	)
	logger.Info("calibration complete",
		logging.Int("karatsuba_cutoff", best.KaratsubaCutoff),
		logging.Int("parallel_threshold", best.ParallelThreshold))
	return best, nil
}

// Apply adopts a profile process-wide.
func Apply(p Profile) {
	biguint.SetKaratsubaCutoff(p.KaratsubaCutoff)
	biguint.SetParallelThreshold(p.ParallelThreshold)
}

// measureMul multiplies x and y the given number of times and returns
// the fastest round.
func measureMul(x, y *biguint.Number, rounds int) time.Duration {
	best := neverMeasured
	for i := 0; i < rounds; i++ {
		var z biguint.Number
		start := time.Now()
		z.Mul(x, y)
		elapsed := time.Since(start)
		metrics.ObserveCalibration(elapsed)
		if elapsed < best {
			best = elapsed
		}
	}
	return best
}

// randomNumber builds an n-digit operand with a non-zero top digit.
func randomNumber(rng *rand.Rand, n int) *biguint.Number {
	parts := make([]uint64, n)
	for i := range parts {
		parts[i] = rng.Uint64()
	}
	parts[0] |= 1 << 63 // most significant part, keeps the size exact
	return biguint.FromUint64s(parts...)
}
