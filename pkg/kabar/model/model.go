// Package model implements the two trainers the classification
// pipeline can be built around: binary logistic regression and
// multiclass maximum entropy (softmax regression). Both train with
// minibatch gradient descent from a fixed seed, so a run is
// reproducible given the same data and configuration.
package model

// Hyper holds the shared training hyperparameters.
type Hyper struct {
	LearningRate float64
	Epochs       int
	BatchSize    int
	Seed         int64
}

// DefaultHyper returns the hyperparameters used when none are configured.
func DefaultHyper() Hyper {
	return Hyper{
		LearningRate: 0.1,
		Epochs:       30,
		BatchSize:    32,
		Seed:         42,
	}
}

// sgd performs in-place gradient steps.
type sgd struct {
	lr float64
}

func (o sgd) step(weights, grads []float64) {
	for i := range weights {
		weights[i] -= o.lr * grads[i]
	}
}
