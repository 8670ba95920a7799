package model

import (
	"math"
	"math/rand"

	"github.com/cognicore/kabar/pkg/kabar/internalerr"
)

// Maxent is a maximum-entropy (softmax regression) classifier over a
// fixed number of classes. Labels are class keys in [0, Classes).
type Maxent struct {
	W       [][]float64 // one weight row per class
	B       []float64
	Classes int

	Config Hyper
}

// NewMaxent initializes a maxent model over nFeatures inputs and the
// given number of classes.
func NewMaxent(nFeatures, classes int, h Hyper) *Maxent {
	rng := rand.New(rand.NewSource(h.Seed))
	w := make([][]float64, classes)
	for c := range w {
		w[c] = make([]float64, nFeatures)
		for i := range w[c] {
			w[c][i] = rng.NormFloat64() * 0.01
		}
	}
	return &Maxent{
		W:       w,
		B:       make([]float64, classes),
		Classes: classes,
		Config:  h,
	}
}

// Scores returns the softmax class probabilities for one row.
func (m *Maxent) Scores(x []float64) []float64 {
	z := make([]float64, m.Classes)
	maxZ := math.Inf(-1)
	for c := 0; c < m.Classes; c++ {
		sum := m.B[c]
		for j, v := range x {
			sum += m.W[c][j] * v
		}
		z[c] = sum
		if sum > maxZ {
			maxZ = sum
		}
	}
	// Subtract the max before exponentiating for numeric stability.
	total := 0.0
	for c := range z {
		z[c] = math.Exp(z[c] - maxZ)
		total += z[c]
	}
	for c := range z {
		z[c] /= total
	}
	return z
}

// PredictProba returns per-class probabilities for each input row.
func (m *Maxent) PredictProba(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = m.Scores(row)
	}
	return out
}

// Predict returns the argmax class key for each input row.
func (m *Maxent) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i, row := range X {
		p := m.Scores(row)
		best := 0
		for c := 1; c < len(p); c++ {
			if p[c] > p[best] {
				best = c
			}
		}
		out[i] = best
	}
	return out
}

// Fit trains with minibatch gradient descent on the categorical
// cross-entropy loss. y holds class keys in [0, Classes).
func (m *Maxent) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return internalerr.ErrEmptyDataset
	}
	if len(X[0]) != len(m.W[0]) {
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

			gW := make([][]float64, m.Classes)
			for c := range gW {
				gW[c] = make([]float64, len(m.W[0]))
			}
			gB := make([]float64, m.Classes)

			for _, i := range idx {
				row := X[i]
				p := m.Scores(row)
				for c := 0; c < m.Classes; c++ {
					// dCE/dz_c = p_c - 1{y=c}, averaged over the batch
					d := p[c]
					if y[i] == c {
						d -= 1
					}
					d /= float64(len(idx))
					for j, v := range row {
						gW[c][j] += d * v
					}
					gB[c] += d
				}
			}

			for c := 0; c < m.Classes; c++ {
				opt.step(m.W[c], gW[c])
				m.B[c] -= m.Config.LearningRate * gB[c]
			}
		}
	}
	return nil
}
