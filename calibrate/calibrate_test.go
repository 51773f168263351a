package calibrate

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/agbru/biguint"
	"github.com/agbru/biguint/internal/config"
	"github.com/agbru/biguint/internal/logging"
)

// smallOptions keeps calibration runs fast enough for tests.
func smallOptions(logger logging.Logger) Options {
	return Options{
		Logger:         logger,
		Rounds:         1,
		OperandDigits:  48,
		ParallelDigits: 96,
	}
}

func TestRunSelectsCandidate(t *testing.T) {
	profile, err := Run(context.Background(), smallOptions(logging.NewNopLogger()))
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, c := range config.GenerateKaratsubaCutoffs() {
		if profile.KaratsubaCutoff == c {
			found = true
		}
	}
	if !found {
		t.Errorf("KaratsubaCutoff %d is not a swept candidate", profile.KaratsubaCutoff)
	}

	found = false
	for _, c := range config.GenerateParallelThresholds() {
		if profile.ParallelThreshold == c {
			found = true
		}
	}
	if !found {
		t.Errorf("ParallelThreshold %d is not a swept candidate", profile.ParallelThreshold)
	}
}

func TestRunRestoresThresholds(t *testing.T) {
	prevCutoff := biguint.KaratsubaCutoff()
	prevParallel := biguint.ParallelThreshold()

	if _, err := Run(context.Background(), smallOptions(logging.NewNopLogger())); err != nil {
		t.Fatal(err)
	}

	if biguint.KaratsubaCutoff() != prevCutoff {
		t.Errorf("cutoff changed: %d -> %d", prevCutoff, biguint.KaratsubaCutoff())
	}
	if biguint.ParallelThreshold() != prevParallel {
		t.Errorf("parallel threshold changed: %d -> %d", prevParallel, biguint.ParallelThreshold())
	}
}

func TestRunLogsMeasurements(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, "calibrate-test")

	if _, err := Run(context.Background(), smallOptions(logger)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"measured karatsuba cutoff", "measured parallel threshold", "calibration complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Run(ctx, smallOptions(logging.NewNopLogger())); err == nil {
		t.Fatal("cancelled run returned nil error")
	}
}

func TestApply(t *testing.T) {
	prevCutoff := biguint.KaratsubaCutoff()
	prevParallel := biguint.ParallelThreshold()
	defer func() {
		biguint.SetKaratsubaCutoff(prevCutoff)
		biguint.SetParallelThreshold(prevParallel)
	}()

	Apply(Profile{KaratsubaCutoff: 24, ParallelThreshold: 2048})
	if biguint.KaratsubaCutoff() != 24 {
		t.Errorf("cutoff = %d, want 24", biguint.KaratsubaCutoff())
	}
	if biguint.ParallelThreshold() != 2048 {
		t.Errorf("parallel threshold = %d, want 2048", biguint.ParallelThreshold())
	}
}
