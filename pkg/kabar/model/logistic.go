package model

import (
	"math"
	"math/rand"

	"github.com/cognicore/kabar/pkg/kabar/internalerr"
)

// Logistic is a binary logistic-regression classifier. Exported fields
// are the learned parameters and travel with the persisted model.
type Logistic struct {
	W []float64
	B float64

	Config Hyper
}

// NewLogistic initializes a logistic model over nFeatures inputs.
// Weights start at small seeded random values to break symmetry.
func NewLogistic(nFeatures int, h Hyper) *Logistic {
	rng := rand.New(rand.NewSource(h.Seed))
	w := make([]float64, nFeatures)
	for i := range w {
		w[i] = rng.NormFloat64() * 0.01
	}
	return &Logistic{W: w, Config: h}
}

func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

// PredictProba returns p(label=1) for each input row.
func (m *Logistic) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		sum := m.B
		for j, v := range row {
			sum += m.W[j] * v
		}
		out[i] = sigmoid(sum)
	}
	return out
}

// Predict returns 0/1 labels at the 0.5 probability threshold.
func (m *Logistic) Predict(X [][]float64) []float64 {
	proba := m.PredictProba(X)
	out := make([]float64, len(proba))
	for i, p := range proba {
		if p >= 0.5 {
			out[i] = 1
		}
	}
	return out
}

// Score returns the raw (pre-sigmoid) decision value for one row.
func (m *Logistic) Score(x []float64) float64 {
	sum := m.B
	for j, v := range x {
		sum += m.W[j] * v
	}
	return sum
}

// Fit trains with minibatch gradient descent on the binary
// cross-entropy loss. Labels must be 0 or 1.
func (m *Logistic) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return internalerr.ErrEmptyDataset
	}
	if len(X[0]) != len(m.W) {
		return internalerr.ErrDimensionMismatch
	}

	opt := sgd{lr: m.Config.LearningRate}
	rng := rand.New(rand.NewSource(m.Config.Seed))
	batch := m.Config.BatchSize
	if batch <= 0 {
		batch = len(X)
	}

	for ep := 0; ep < m.Config.Epochs; ep++ {
		order := rng.Perm(len(X))
		for start := 0; start < len(order); start += batch {
			end := start + batch
			if end > len(order) {
				end = len(order)
			}
			idx := order[start:end]

			gW := make([]float64, len(m.W))
			gb := 0.0
			for _, i := range idx {
				row := X[i]
				sum := m.B
				for j, v := range row {
					sum += m.W[j] * v
				}
				// dBCE/dz for sigmoid output, averaged over the batch
				d := (sigmoid(sum) - y[i]) / float64(len(idx))
				for j, v := range row {
					gW[j] += d * v
				}
				gb += d
			}

			opt.step(m.W, gW)
			m.B -= m.Config.LearningRate * gb
		}
	}
	return nil
}
