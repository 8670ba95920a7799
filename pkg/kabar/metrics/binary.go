// Package metrics computes branch-appropriate evaluation figures from
// test-set predictions. All values are plain scalars in [0, 1] except
// LogLoss, which is non-negative.
package metrics

import "sort"

// Binary holds the evaluation figures for the two-class branch.
type Binary struct {
	Accuracy  float64
	AUC       float64
	F1        float64
	Precision float64
	Recall    float64
}

// EvaluateBinary computes all binary metrics from true 0/1 labels and
// predicted probabilities, thresholding at 0.5.
func EvaluateBinary(yTrue, proba []float64) Binary {
	pred := make([]int, len(proba))
	truth := make([]int, len(yTrue))
	for i := range proba {
		if proba[i] >= 0.5 {
			pred[i] = 1
		}
		if yTrue[i] != 0 {
			truth[i] = 1
		}
	}
	prec, rec, f1 := PrecisionRecallF1(truth, pred)
	return Binary{
		Accuracy:  Accuracy(truth, pred),
		AUC:       AUC(yTrue, proba),
		F1:        f1,
		Precision: prec,
		Recall:    rec,
	}
}

// Accuracy is the fraction of matching labels.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// PrecisionRecallF1 computes the positive-class precision, recall and
// F1 for 0/1 labels. Undefined ratios come back as 0.
func PrecisionRecallF1(yTrue, yPred []int) (prec, rec, f1 float64) {
	tp, fp, fn := 0, 0, 0
	for i := range yTrue {
		if yPred[i] == 1 && yTrue[i] == 1 {
			tp++
		}
		if yPred[i] == 1 && yTrue[i] == 0 {
			fp++
		}
		if yPred[i] == 0 && yTrue[i] == 1 {
			fn++
		}
	}
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}

// AUC computes the area under the ROC curve via the rank statistic,
// averaging ranks across score ties. With only one class present the
// curve is undefined and 0.5 is returned.
func AUC(yTrue, score []float64) float64 {
	n := len(yTrue)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return score[idx[a]] < score[idx[b]] })

	rank := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && score[idx[j+1]] == score[idx[i]] {
			j++
		}
		avg := float64(i+j+2) / 2 // 1-based ranks i+1..j+1
		for k := i; k <= j; k++ {
			rank[idx[k]] = avg
		}
		i = j + 1
	}

	var nPos, nNeg float64
	sumRanksPos := 0.0
	for i := range yTrue {
		if yTrue[i] != 0 {
			nPos++
			sumRanksPos += rank[i]
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return 0.5
	}
	return (sumRanksPos - nPos*(nPos+1)/2) / (nPos * nNeg)
}
