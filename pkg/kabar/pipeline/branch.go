// Package pipeline composes the text-classification stages into one
// fit-able object: text assembly, HTML cleanup, hashed TF-IDF
// featurization, and a branch-dependent trainer. The branch is chosen
// once, from the label cardinality of the whole dataset, before any
// training happens.
package pipeline

// Branch selects which pipeline variant is constructed.
type Branch int

const (
	// Binary is used when exactly two distinct label values exist.
	Binary Branch = iota
	// Multiclass is used for any other label cardinality. A
	// single-label dataset lands here too and trains a degenerate
	// one-class model; callers see the cardinality in the survey.
	Multiclass
)

func (b Branch) String() string {
	if b == Binary {
		return "binary"
	}
	return "multiclass"
}

// Choose picks the branch from the surveyed distinct label values.
// Exactly two distinct values means binary; anything else multiclass.
func Choose(labels []float64) Branch {
	if len(labels) == 2 {
		return Binary
	}
	return Multiclass
}
