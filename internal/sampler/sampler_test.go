package sampler

import "testing"

func TestUniformIntStaysInRange(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for i := 0; i < 200; i++ {
			got := UniformInt(1, n)
			if got < 1 || got > n {
				t.Fatalf("UniformInt(1, %d) = %d, out of range", n, got)
			}
		}
	}
}

func TestUniformIntSingleValue(t *testing.T) {
	for i := 0; i < 20; i++ {
		if got := UniformInt(7, 7); got != 7 {
			t.Fatalf("UniformInt(7, 7) = %d, want 7", got)
		}
	}
}

func TestUniformIntCoversRange(t *testing.T) {
	// With 5000 draws over [0, 9] every bucket should be hit; the chance of
	// missing one is astronomically small for a uniform source.
	seen := make(map[int]int)
	const draws = 5000
	for i := 0; i < draws; i++ {
		seen[UniformInt(0, 9)]++
	}
	for v := 0; v <= 9; v++ {
		if seen[v] == 0 {
			t.Errorf("value %d never drawn in %d trials", v, draws)
		}
	}
	// Loose uniformity check: no bucket should be wildly off the expected 500.
	for v, count := range seen {
		if count < 250 || count > 750 {
			t.Errorf("value %d drawn %d times, expected roughly %d", v, count, draws/10)
		}
	}
}

func TestUniformIntInvalidRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for min > max")
		}
	}()
	UniformInt(2, 1)
}
