//go:build amd64

package cpu

import (
	"runtime"
	"sync"
	"testing"
)

func TestReadCycleCounter(t *testing.T) {
	// Successive reads on the same core never go backwards short of a
	// counter reset.
	c1 := ReadCycleCounter()
	c2 := ReadCycleCounter()

	if c2 < c1 {
		t.Errorf("cycle counter went backwards: c1=%d, c2=%d", c1, c2)
	}
}

func TestReadCycleCounterAdvances(t *testing.T) {
	start := ReadCycleCounter()

	sum := 0
	for i := 0; i < 10000; i++ {
		sum += i
	}

	end := ReadCycleCounter()

	// Prevent the compiler from optimizing away the loop.
	if sum == 0 {
		t.Fatal("sum should not be zero")
	}

	if end == start {
		t.Errorf("cycle counter did not advance across work: start=%d, end=%d", start, end)
	}
}

func TestCycleCounterPrecision(t *testing.T) {
	// Measure how many unique values we can read in rapid succession.
	const samples = 1000

	values := make([]uint64, samples)
	for i := range values {
		values[i] = ReadCycleCounter()
	}

	unique := make(map[uint64]bool)
	for _, v := range values {
		unique[v] = true
	}

	// On a real cycle counter nearly every read is distinct.
	// Require at least 10% uniqueness (very conservative).
	uniqueRatio := float64(len(unique)) / float64(samples)
	if uniqueRatio < 0.1 {
		t.Errorf("cycle counter has low precision: only %.1f%% unique values in %d samples",
			uniqueRatio*100, samples)
	}

	t.Logf("cycle counter uniqueness: %.1f%% (%d unique values in %d samples)",
		uniqueRatio*100, len(unique), samples)
}

func TestReadCycleCounterConcurrent(t *testing.T) {
	const (
		goroutines = 8
		reads      = 1000
	)

	results := make([][]uint64, goroutines)

	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)

		go func() {
			defer wg.Done()

			vals := make([]uint64, reads)
			for i := range vals {
				vals[i] = ReadCycleCounter()
			}

			results[g] = vals
		}()
	}

	wg.Wait()

	for g, vals := range results {
		if len(vals) != reads {
			t.Fatalf("goroutine %d: got %d reads, want %d", g, len(vals), reads)
		}

		for i, v := range vals {
			if v == 0 {
				t.Fatalf("goroutine %d, read %d: counter returned zero", g, i)
			}
		}
	}
}

// TestCycleCounterDebug provides diagnostic information about the counter.
func TestCycleCounterDebug(t *testing.T) {
	t.Logf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)

	c1 := ReadCycleCounter()
	c2 := ReadCycleCounter()
	c3 := ReadCycleCounter()

	t.Logf("Sample readings: c1=%d, c2=%d, c3=%d", c1, c2, c3)
	t.Logf("Deltas: c2-c1=%d, c3-c2=%d", c2-c1, c3-c2)
}

func BenchmarkReadCycleCounter(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ReadCycleCounter()
	}
}
