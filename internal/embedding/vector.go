package embedding

import "math"

// CosineSimilarity returns the cosine of the angle between a and b in
// [-1, 1]. Vectors must have equal, non-zero length; a zero-magnitude
// vector yields similarity 0.
func CosineSimilarity(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionMismatchError{Want: len(a), Got: len(b)}
	}
	if len(a) == 0 {
		return 0, &DimensionMismatchError{Want: 0, Got: 0}
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Guard against floating-point drift outside [-1, 1].
	if sim > 1 {
		sim = 1
	}
	if sim < -1 {
		sim = -1
	}
	return sim, nil
}
