package metrics

import (
	"math"
	"testing"
)

func TestEvaluateMulticlassPerfect(t *testing.T) {
	yTrue := []int{0, 1, 2}
	yPred := []int{0, 1, 2}
	proba := [][]float64{
		{0.8, 0.1, 0.1},
		{0.1, 0.8, 0.1},
		{0.1, 0.1, 0.8},
	}
	m := EvaluateMulticlass(yTrue, yPred, proba, 3)

	if m.MicroAccuracy != 1 {
		t.Errorf("MicroAccuracy = %f, want 1", m.MicroAccuracy)
	}
	if m.MacroAccuracy != 1 {
		t.Errorf("MacroAccuracy = %f, want 1", m.MacroAccuracy)
	}
	want := -math.Log(0.8)
	if math.Abs(m.LogLoss-want) > 1e-12 {
		t.Errorf("LogLoss = %f, want %f", m.LogLoss, want)
	}
}

func TestEvaluateMulticlassImbalanced(t *testing.T) {
	// Class 0 has 4 samples (3 right), class 1 has 1 sample (0 right).
	// Micro = 3/5; Macro = (3/4 + 0)/2.
	yTrue := []int{0, 0, 0, 0, 1}
	yPred := []int{0, 0, 0, 1, 0}
	proba := [][]float64{
		{0.9, 0.1}, {0.9, 0.1}, {0.9, 0.1}, {0.4, 0.6}, {0.7, 0.3},
	}
	m := EvaluateMulticlass(yTrue, yPred, proba, 2)

	if math.Abs(m.MicroAccuracy-0.6) > 1e-12 {
		t.Errorf("MicroAccuracy = %f, want 0.6", m.MicroAccuracy)
	}
	if math.Abs(m.MacroAccuracy-0.375) > 1e-12 {
		t.Errorf("MacroAccuracy = %f, want 0.375", m.MacroAccuracy)
	}
	if m.LogLoss < 0 {
		t.Errorf("LogLoss must be non-negative, got %f", m.LogLoss)
	}
}

func TestEvaluateMulticlassUnknownLabel(t *testing.T) {
	// A -1 key marks a test label unseen at fit time: always a miss,
	// epsilon probability in the loss.
	yTrue := []int{0, -1}
	yPred := []int{0, 0}
	proba := [][]float64{{1, 0}, {0.5, 0.5}}
	m := EvaluateMulticlass(yTrue, yPred, proba, 2)

	if m.MicroAccuracy != 0.5 {
		t.Errorf("MicroAccuracy = %f, want 0.5", m.MicroAccuracy)
	}
	if m.LogLoss <= 0 {
		t.Errorf("Unknown label should contribute a large loss, got %f", m.LogLoss)
	}
}

func TestEvaluateMulticlassEmpty(t *testing.T) {
	m := EvaluateMulticlass(nil, nil, nil, 3)
	if m.MicroAccuracy != 0 || m.MacroAccuracy != 0 || m.LogLoss != 0 {
		t.Errorf("Empty input should give zero metrics, got %+v", m)
	}
}

func TestClampLogLossFinite(t *testing.T) {
	// Zero probability for the true class must not give an infinite loss.
	yTrue := []int{0}
	yPred := []int{1}
	proba := [][]float64{{0, 1}}
	m := EvaluateMulticlass(yTrue, yPred, proba, 2)
	if math.IsInf(m.LogLoss, 0) || math.IsNaN(m.LogLoss) {
		t.Errorf("LogLoss must stay finite, got %f", m.LogLoss)
	}
}
