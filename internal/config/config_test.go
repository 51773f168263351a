package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPrefix+"KARATSUBA_CUTOFF", "")
	t.Setenv(EnvPrefix+"PARALLEL_THRESHOLD", "")

	got := Load(Thresholds{KaratsubaCutoff: 16})
	if got.KaratsubaCutoff != 16 {
		t.Errorf("KaratsubaCutoff = %d, want 16", got.KaratsubaCutoff)
	}
	if got.ParallelThreshold != EstimateOptimalParallelThreshold() {
		t.Errorf("ParallelThreshold = %d, want adaptive estimate %d",
			got.ParallelThreshold, EstimateOptimalParallelThreshold())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvPrefix+"KARATSUBA_CUTOFF", "24")
	t.Setenv(EnvPrefix+"PARALLEL_THRESHOLD", "128")

	got := Load(Thresholds{KaratsubaCutoff: 16})
	if got.KaratsubaCutoff != 24 {
		t.Errorf("KaratsubaCutoff = %d, want env override 24", got.KaratsubaCutoff)
	}
	if got.ParallelThreshold != 128 {
		t.Errorf("ParallelThreshold = %d, want env override 128", got.ParallelThreshold)
	}
}

func TestLoadMalformedEnvFallsBack(t *testing.T) {
	t.Setenv(EnvPrefix+"KARATSUBA_CUTOFF", "not-a-number")

	got := Load(Thresholds{KaratsubaCutoff: 16})
	if got.KaratsubaCutoff != 16 {
		t.Errorf("KaratsubaCutoff = %d, want default 16", got.KaratsubaCutoff)
	}
}

func TestVerboseCalibration(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"garbage", false},
	}
	for _, c := range cases {
		t.Setenv(EnvPrefix+"VERBOSE_CALIBRATION", c.val)
		if got := VerboseCalibration(); got != c.want {
			t.Errorf("VerboseCalibration with %q = %v, want %v", c.val, got, c.want)
		}
	}
}

func TestGenerateParallelThresholds(t *testing.T) {
	thresholds := GenerateParallelThresholds()
	if len(thresholds) == 0 || thresholds[0] != 0 {
		t.Fatalf("thresholds = %v, sequential must always be measured", thresholds)
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			t.Errorf("thresholds not increasing: %v", thresholds)
		}
	}
}

func TestGenerateKaratsubaCutoffs(t *testing.T) {
	cutoffs := GenerateKaratsubaCutoffs()
	if len(cutoffs) == 0 {
		t.Fatal("no cutoff candidates")
	}
	for _, c := range cutoffs {
		if c < 1 {
			t.Errorf("cutoff %d below 1", c)
		}
	}
}
