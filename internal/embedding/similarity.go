package embedding

import (
	"fmt"
	"math"
)

// Cosine computes the cosine similarity between two vectors of equal
// dimensionality. A zero-magnitude operand yields 0 rather than NaN.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimensions do not match: %d vs %d", len(a), len(b))
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), nil
}

// Normalize maps a cosine value from [-1, 1] to [0, 1].
func Normalize(cosine float64) float64 {
	return (cosine + 1) / 2
}
