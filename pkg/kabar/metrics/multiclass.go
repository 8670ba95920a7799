package metrics

import "math"

// logLossEpsilon clamps probabilities so log stays finite.
const logLossEpsilon = 1e-15

// Multiclass holds the evaluation figures for the multiclass branch.
type Multiclass struct {
	MacroAccuracy float64
	MicroAccuracy float64
	LogLoss       float64
}

// EvaluateMulticlass computes multiclass metrics from true class keys,
// predicted keys and per-class probabilities. A true key of -1 marks a
// test label unseen during fitting; it counts as a miss and receives
// the epsilon probability in the log-loss.
func EvaluateMulticlass(yTrue, yPred []int, proba [][]float64, classes int) Multiclass {
	if len(yTrue) == 0 {
		return Multiclass{}
	}

	correct := 0
	perClassCorrect := make([]int, classes)
	perClassTotal := make([]int, classes)
	loss := 0.0

	for i := range yTrue {
		k := yTrue[i]
		if k >= 0 && k < classes {
			perClassTotal[k]++
			if yPred[i] == k {
				correct++
				perClassCorrect[k]++
			}
			loss += -math.Log(clamp(proba[i][k]))
		} else {
			loss += -math.Log(logLossEpsilon)
		}
	}

	macro := 0.0
	present := 0
	for c := 0; c < classes; c++ {
		if perClassTotal[c] == 0 {
			continue
		}
		present++
		macro += float64(perClassCorrect[c]) / float64(perClassTotal[c])
	}
	if present > 0 {
		macro /= float64(present)
	}

	return Multiclass{
		MacroAccuracy: macro,
		MicroAccuracy: float64(correct) / float64(len(yTrue)),
		LogLoss:       loss / float64(len(yTrue)),
	}
}

func clamp(p float64) float64 {
	if p < logLossEpsilon {
		return logLossEpsilon
	}
	if p > 1-logLossEpsilon {
		return 1 - logLossEpsilon
	}
	return p
}
