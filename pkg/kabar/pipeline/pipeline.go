package pipeline

import (
	"fmt"

	"github.com/cognicore/kabar/pkg/kabar/dataset"
	"github.com/cognicore/kabar/pkg/kabar/feature"
	"github.com/cognicore/kabar/pkg/kabar/ingest"
	"github.com/cognicore/kabar/pkg/kabar/internalerr"
	"github.com/cognicore/kabar/pkg/kabar/metrics"
	"github.com/cognicore/kabar/pkg/kabar/model"
)

// Config holds the run-level settings shared by both branches. One
// featurizer configuration serves both so the feature spaces stay
// directly comparable.
type Config struct {
	Stopwords []string
	Dims      int
	Hyper     model.Hyper
}

// BinaryResult is the output shape of the two-class branch.
type BinaryResult struct {
	PredictedLabel bool
	Score          float64
	Probability    float64
}

// MulticlassResult is the output shape of the multiclass branch: the
// predicted class decoded back to its original label value.
type MulticlassResult struct {
	PredictedLabel string
}

// Result is the branch-tagged prediction union. Exactly one of the
// two pointers is set, matching the pipeline's branch.
type Result struct {
	Branch     Branch
	Binary     *BinaryResult
	Multiclass *MulticlassResult
}

// Evaluation is the branch-tagged metrics union.
type Evaluation struct {
	Binary     *metrics.Binary
	Multiclass *metrics.Multiclass
}

// Pipeline is one end-to-end classification pipeline. Build
// constructs it unfitted; Fit trains it; afterwards it is read-only.
type Pipeline struct {
	Branch Branch
	Vec    *feature.Vectorizer

	// Logit is set on the binary branch, Ment and Keys on the
	// multiclass branch.
	Logit *model.Logistic
	Ment  *model.Maxent
	Keys  *LabelCodec

	Hyper model.Hyper
}

// Build constructs the unfitted pipeline variant for the branch.
func Build(branch Branch, cfg Config) *Pipeline {
	p := &Pipeline{
		Branch: branch,
		Vec:    feature.NewVectorizer(cfg.Dims, cfg.Stopwords),
		Hyper:  cfg.Hyper,
	}
	if branch == Multiclass {
		p.Keys = &LabelCodec{}
	}
	return p
}

// text derives the cleaned classification text for one record.
func text(r dataset.Record) string {
	return ingest.StripHTML(ingest.Assemble(r))
}

// Fit trains the pipeline on the training split: the featurizer learns
// its IDF table, the multiclass codec learns its key mapping, then the
// branch trainer fits on the resulting vectors.
func (p *Pipeline) Fit(train []dataset.Record) error {
	if len(train) == 0 {
		return internalerr.ErrEmptyDataset
	}

	docs := make([]string, len(train))
	for i, r := range train {
		docs[i] = text(r)
	}
	if err := p.Vec.Fit(docs); err != nil {
		return fmt.Errorf("fit featurizer: %w", err)
	}
	X, err := p.Vec.TransformAll(docs)
	if err != nil {
		return fmt.Errorf("featurize training split: %w", err)
	}

	switch p.Branch {
	case Binary:
		// Label pass-through: a nonzero label is the positive class.
		y := make([]float64, len(train))
		for i, r := range train {
			if r.Label != 0 {
				y[i] = 1
			}
		}
		p.Logit = model.NewLogistic(p.Vec.Dims, p.Hyper)
		if err := p.Logit.Fit(X, y); err != nil {
			return fmt.Errorf("fit binary trainer: %w", err)
		}
	case Multiclass:
		labels := make([]float64, len(train))
		for i, r := range train {
			labels[i] = r.Label
		}
		p.Keys.Fit(labels)
		y := make([]int, len(train))
		for i, v := range labels {
			y[i] = p.Keys.Key(v)
		}
		p.Ment = model.NewMaxent(p.Vec.Dims, p.Keys.Len(), p.Hyper)
		if err := p.Ment.Fit(X, y); err != nil {
			return fmt.Errorf("fit multiclass trainer: %w", err)
		}
	}
	return nil
}

// Predict runs one record through the fitted pipeline and returns the
// branch-shaped result.
func (p *Pipeline) Predict(r dataset.Record) (*Result, error) {
	x, err := p.Vec.Transform(text(r))
	if err != nil {
		return nil, err
	}

	switch p.Branch {
	case Binary:
		if p.Logit == nil {
			return nil, internalerr.ErrNoModel
		}
		proba := p.Logit.PredictProba([][]float64{x})[0]
		return &Result{
			Branch: Binary,
			Binary: &BinaryResult{
				PredictedLabel: proba >= 0.5,
				Score:          p.Logit.Score(x),
				Probability:    proba,
			},
		}, nil
	default:
		if p.Ment == nil {
			return nil, internalerr.ErrNoModel
		}
		key := p.Ment.Predict([][]float64{x})[0]
		return &Result{
			Branch: Multiclass,
			Multiclass: &MulticlassResult{
				PredictedLabel: p.Keys.Label(key),
			},
		}, nil
	}
}

// Evaluate applies the fitted pipeline to the test split and computes
// the branch-appropriate metrics.
func (p *Pipeline) Evaluate(test []dataset.Record) (*Evaluation, error) {
	if len(test) == 0 {
		return nil, internalerr.ErrEmptyDataset
	}

	docs := make([]string, len(test))
	for i, r := range test {
		docs[i] = text(r)
	}
	X, err := p.Vec.TransformAll(docs)
	if err != nil {
		return nil, fmt.Errorf("featurize test split: %w", err)
	}

	switch p.Branch {
	case Binary:
		if p.Logit == nil {
			return nil, internalerr.ErrNoModel
		}
		y := make([]float64, len(test))
		for i, r := range test {
			if r.Label != 0 {
				y[i] = 1
			}
		}
		m := metrics.EvaluateBinary(y, p.Logit.PredictProba(X))
		return &Evaluation{Binary: &m}, nil
	default:
		if p.Ment == nil {
			return nil, internalerr.ErrNoModel
		}
		yTrue := make([]int, len(test))
		for i, r := range test {
			yTrue[i] = p.Keys.Key(r.Label)
		}
		m := metrics.EvaluateMulticlass(yTrue, p.Ment.Predict(X), p.Ment.PredictProba(X), p.Keys.Len())
		return &Evaluation{Multiclass: &m}, nil
	}
}
