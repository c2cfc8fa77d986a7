// Package sampler provides bounded uniform random selection for the
// fetch pipeline (page index, item index).
package sampler

import "math/rand"

// UniformInt returns an integer drawn uniformly from the closed range
// [min, max]. Callers must guarantee min <= max.
func UniformInt(min, max int) int {
	if min > max {
		panic("sampler: UniformInt called with min > max")
	}
	return min + rand.Intn(max-min+1)
}
