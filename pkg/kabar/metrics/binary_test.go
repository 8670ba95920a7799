package metrics

import (
	"math"
	"testing"
)

func TestAUCPerfectRanking(t *testing.T) {
	yTrue := []float64{0, 0, 1, 1}
	score := []float64{0.1, 0.2, 0.8, 0.9}
	if auc := AUC(yTrue, score); auc != 1 {
		t.Errorf("Perfect ranking should give AUC 1, got %f", auc)
	}
}

func TestAUCReversedRanking(t *testing.T) {
	yTrue := []float64{0, 0, 1, 1}
	score := []float64{0.9, 0.8, 0.2, 0.1}
	if auc := AUC(yTrue, score); auc != 0 {
		t.Errorf("Reversed ranking should give AUC 0, got %f", auc)
	}
}

func TestAUCTies(t *testing.T) {
	// All scores identical: AUC is 0.5 by tie-averaging.
	yTrue := []float64{0, 1, 0, 1}
	score := []float64{0.5, 0.5, 0.5, 0.5}
	if auc := AUC(yTrue, score); math.Abs(auc-0.5) > 1e-12 {
		t.Errorf("All-tied scores should give AUC 0.5, got %f", auc)
	}
}

func TestAUCSingleClass(t *testing.T) {
	yTrue := []float64{1, 1, 1}
	score := []float64{0.2, 0.5, 0.9}
	if auc := AUC(yTrue, score); auc != 0.5 {
		t.Errorf("Single-class AUC is undefined, expected 0.5 fallback, got %f", auc)
	}
}

func TestPrecisionRecallF1(t *testing.T) {
	// tp=2, fp=1, fn=1
	yTrue := []int{1, 1, 1, 0, 0}
	yPred := []int{1, 1, 0, 1, 0}
	prec, rec, f1 := PrecisionRecallF1(yTrue, yPred)
	if math.Abs(prec-2.0/3.0) > 1e-12 {
		t.Errorf("Precision = %f, want 2/3", prec)
	}
	if math.Abs(rec-2.0/3.0) > 1e-12 {
		t.Errorf("Recall = %f, want 2/3", rec)
	}
	if math.Abs(f1-2.0/3.0) > 1e-12 {
		t.Errorf("F1 = %f, want 2/3", f1)
	}
}

func TestPrecisionRecallF1NoPositivePredictions(t *testing.T) {
	yTrue := []int{1, 0, 1}
	yPred := []int{0, 0, 0}
	prec, rec, f1 := PrecisionRecallF1(yTrue, yPred)
	if prec != 0 || rec != 0 || f1 != 0 {
		t.Errorf("Undefined ratios should be 0, got %f %f %f", prec, rec, f1)
	}
}

func TestEvaluateBinaryRanges(t *testing.T) {
	yTrue := []float64{0, 1, 1, 0, 1, 0, 1, 0}
	proba := []float64{0.2, 0.7, 0.9, 0.4, 0.6, 0.1, 0.3, 0.55}
	m := EvaluateBinary(yTrue, proba)

	for name, v := range map[string]float64{
		"Accuracy":  m.Accuracy,
		"AUC":       m.AUC,
		"F1":        m.F1,
		"Precision": m.Precision,
		"Recall":    m.Recall,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s out of [0,1]: %f", name, v)
		}
	}
}

func TestEvaluateBinaryThreshold(t *testing.T) {
	yTrue := []float64{0, 1}
	proba := []float64{0.49, 0.51}
	m := EvaluateBinary(yTrue, proba)
	if m.Accuracy != 1 {
		t.Errorf("Threshold at 0.5 should classify both correctly, accuracy %f", m.Accuracy)
	}
}
