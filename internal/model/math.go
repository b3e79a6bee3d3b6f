package model

import (
	"math"
	"strconv"
)

// Argmax returns the index and value of the largest score. Ties go to the
// lowest index; an empty slice yields -1.
func Argmax(scores []float32) (int, float32) {
	if len(scores) == 0 {
		return -1, 0
	}
	idx, best := 0, scores[0]
	for i, v := range scores[1:] {
		if v > best {
			idx, best = i+1, v
		}
	}
	return idx, best
}

func Softmax(logits []float32) []float32 {
	out := make([]float32, len(logits))
	if len(logits) == 0 {
		return out
	}
	_, peak := Argmax(logits)
	var sum float64
	for i, v := range logits {
		e := math.Exp(float64(v - peak))
		out[i] = float32(e)
		sum += e
	}
	for i := range out {
		out[i] = float32(float64(out[i]) / sum)
	}
	return out
}

// decide turns raw model output into a Prediction over classes.
func decide(output []float32, classes []string, logits bool) *Prediction {
	scores := make([]float32, len(classes))
	copy(scores, output)
	if logits {
		scores = Softmax(scores)
	}
	idx, conf := Argmax(scores)
	digit := idx
	if n, err := strconv.Atoi(classes[idx]); err == nil {
		digit = n
	}
	return &Prediction{
		Digit:         digit,
		Label:         classes[idx],
		Confidence:    conf,
		Probabilities: scores,
	}
}
