package threshold

// Metrics captures the confusion-matrix counts observed at one candidate
// decision threshold.
type Metrics struct {
	Threshold      float64
	TruePositives  int
	TrueNegatives  int
	FalsePositives int
	FalseNegatives int
}

// Recall returns the true positive rate, TP / (TP + FN).
// Returns 0.0 when the denominator is zero.
func (m Metrics) Recall() float64 {
	denom := m.TruePositives + m.FalseNegatives
	if denom == 0 {
		return 0.0
	}
	return float64(m.TruePositives) / float64(denom)
}

// Precision returns TP / (TP + FP).
// Returns 0.0 when the denominator is zero.
func (m Metrics) Precision() float64 {
	denom := m.TruePositives + m.FalsePositives
	if denom == 0 {
		return 0.0
	}
	return float64(m.TruePositives) / float64(denom)
}

// F1Score returns the harmonic mean of precision and recall.
// Returns 0.0 when precision and recall are both zero.
func (m Metrics) F1Score() float64 {
	p := m.Precision()
	r := m.Recall()
	if p+r == 0 {
		return 0.0
	}
	return 2 * p * r / (p + r)
}
