// Package kabar trains a hoax/category classifier for news items from
// a labeled CSV corpus. It surveys the label column to decide between
// a binary and a multiclass pipeline, trains, evaluates, persists the
// fitted model, and runs one illustrative prediction.
package kabar

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cognicore/kabar/pkg/kabar/config"
	"github.com/cognicore/kabar/pkg/kabar/dataset"
	"github.com/cognicore/kabar/pkg/kabar/model"
	"github.com/cognicore/kabar/pkg/kabar/pipeline"
	"github.com/cognicore/kabar/pkg/kabar/runstore"
)

// The fixed record used for the post-training sanity prediction.
const (
	SampleTitle     = "Contoh judul"
	SampleNarrative = "Isi berita yang mengandung klaim tidak berdasar."
)

// Trainer is the training-and-evaluation orchestrator.
type Trainer struct {
	cfg  config.Config
	runs *runstore.Store
	log  *log.Logger
}

// Options configures a Trainer instance.
type Options struct {
	Config config.Config
	// Runs is the optional run-history store; nil disables history.
	Runs   *runstore.Store
	Logger *log.Logger
}

// New creates a Trainer with the given dependencies.
func New(opts Options) *Trainer {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Trainer{
		cfg:  opts.Config,
		runs: opts.Runs,
		log:  logger,
	}
}

// Report is everything a run produces besides the model file itself.
type Report struct {
	RunID     string
	Labels    []float64
	Branch    pipeline.Branch
	Rows      int
	TrainRows int
	TestRows  int
	Eval      *pipeline.Evaluation
	ModelPath string
	Sample    *pipeline.Result
	// SampleErr is set when the sanity prediction failed. The model
	// file has already been written at that point, so the run itself
	// still succeeds.
	SampleErr error
}

// Run executes one training run: load, survey, build, split, fit,
// evaluate, persist, sample-infer. Any failure before persistence is
// fatal to the run; a sample-inference failure is only reported.
func (t *Trainer) Run(ctx context.Context, datasetPath, modelPath string) (*Report, error) {
	startedAt := time.Now()

	records, err := dataset.LoadCSV(datasetPath)
	if err != nil {
		return nil, err
	}

	// The survey runs over the whole corpus, before splitting, so
	// train and test partitions share one label space.
	labels, err := dataset.Survey(records)
	if err != nil {
		return nil, err
	}
	branch := pipeline.Choose(labels)
	t.log.Info("surveyed labels", "distinct", labels, "branch", branch.String())

	hyper := model.Hyper{
		LearningRate: t.cfg.Trainer.LearningRate,
		Epochs:       t.cfg.Trainer.Epochs,
		BatchSize:    t.cfg.Trainer.BatchSize,
		Seed:         t.cfg.Split.Seed,
	}
	p := pipeline.Build(branch, pipeline.Config{
		Stopwords: t.cfg.Stopwords,
		Dims:      t.cfg.Featurizer.Dims,
		Hyper:     hyper,
	})

	train, test := dataset.Split(records, t.cfg.Split.TestRatio, t.cfg.Split.Seed)
	t.log.Info("split dataset", "rows", len(records), "train", len(train), "test", len(test))

	t.log.Info("training started")
	if err := p.Fit(train); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	t.log.Info("training finished", "elapsed", time.Since(startedAt))

	t.log.Info("evaluating on test split")
	eval, err := p.Evaluate(test)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	schema := pipeline.Schema{
		Columns:     []string{"id", "label", "date", "title", "narrative"},
		Separator:   "\n",
		LabelValues: labels,
	}
	if err := p.Save(modelPath, schema); err != nil {
		return nil, fmt.Errorf("persist: %w", err)
	}
	t.log.Info("model persisted", "path", modelPath)

	rep := &Report{
		Labels:    labels,
		Branch:    branch,
		Rows:      len(records),
		TrainRows: len(train),
		TestRows:  len(test),
		Eval:      eval,
		ModelPath: modelPath,
	}

	if t.runs != nil {
		id, err := t.runs.Append(ctx, runstore.Run{
			StartedAt:   startedAt,
			Branch:      branch.String(),
			DatasetPath: datasetPath,
			Rows:        len(records),
			ModelPath:   modelPath,
			Metrics:     metricsMap(eval),
		})
		if err != nil {
			// History is auxiliary; the trained model is already on disk.
			t.log.Warn("run history not recorded", "err", err)
		} else {
			rep.RunID = id
		}
	}

	sample := dataset.Record{Title: SampleTitle, Narrative: SampleNarrative}
	res, err := p.Predict(sample)
	if err != nil {
		t.log.Error("sample prediction failed", "err", err)
		rep.SampleErr = err
	} else {
		rep.Sample = res
	}

	return rep, nil
}

func metricsMap(eval *pipeline.Evaluation) map[string]float64 {
	m := make(map[string]float64)
	if eval.Binary != nil {
		m["accuracy"] = eval.Binary.Accuracy
		m["auc"] = eval.Binary.AUC
		m["f1"] = eval.Binary.F1
		m["precision"] = eval.Binary.Precision
		m["recall"] = eval.Binary.Recall
	}
	if eval.Multiclass != nil {
		m["macro_accuracy"] = eval.Multiclass.MacroAccuracy
		m["micro_accuracy"] = eval.Multiclass.MicroAccuracy
		m["log_loss"] = eval.Multiclass.LogLoss
	}
	return m
}
