package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cognicore/kabar/internal/logging"
	"github.com/cognicore/kabar/pkg/kabar"
	"github.com/cognicore/kabar/pkg/kabar/config"
	"github.com/cognicore/kabar/pkg/kabar/runstore"
)

const (
	defaultDataPath  = "Data_latih.csv"
	defaultModelPath = "hoax_model.zip"
)

func main() {
	dataPath := defaultDataPath
	modelPath := defaultModelPath
	args := os.Args[1:]
	if len(args) > 0 {
		dataPath = args[0]
	}
	if len(args) > 1 {
		modelPath = args[1]
	}

	// A missing data file ends the run before any pipeline work, with
	// no artifact produced.
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		fmt.Printf("Data file not found: %s\n", dataPath)
		return
	}

	logger := logging.Logger

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}

	ctx := context.Background()

	var runs *runstore.Store
	if cfg.RunsDB != "" {
		runs, err = runstore.Open(ctx, cfg.RunsDB)
		if err != nil {
			logger.Warn("run history unavailable", "err", err)
		} else {
			defer runs.Close()
		}
	}

	trainer := kabar.New(kabar.Options{
		Config: cfg,
		Runs:   runs,
		Logger: logger,
	})

	rep, err := trainer.Run(ctx, dataPath, modelPath)
	if err != nil {
		logger.Fatal("training run failed", "err", err)
	}

	printReport(rep)
}

func printReport(rep *kabar.Report) {
	fmt.Printf("Distinct labels: %v\n", rep.Labels)
	fmt.Printf("Branch: %s\n", rep.Branch)
	fmt.Printf("Rows: %d (train %d / test %d)\n", rep.Rows, rep.TrainRows, rep.TestRows)
	fmt.Println()

	switch {
	case rep.Eval.Binary != nil:
		m := rep.Eval.Binary
		fmt.Println("=== Binary classification metrics ===")
		fmt.Printf("Accuracy : %.2f%%\n", m.Accuracy*100)
		fmt.Printf("AUC      : %.2f%%\n", m.AUC*100)
		fmt.Printf("F1Score  : %.2f%%\n", m.F1*100)
		fmt.Printf("Precision: %.2f%%\n", m.Precision*100)
		fmt.Printf("Recall   : %.2f%%\n", m.Recall*100)
	case rep.Eval.Multiclass != nil:
		m := rep.Eval.Multiclass
		fmt.Println("=== Multiclass classification metrics ===")
		fmt.Printf("MacroAccuracy: %.2f%%\n", m.MacroAccuracy*100)
		fmt.Printf("MicroAccuracy: %.2f%%\n", m.MicroAccuracy*100)
		fmt.Printf("LogLoss      : %.4f\n", m.LogLoss)
	}
	fmt.Println()

	fmt.Printf("Model saved to: %s\n", rep.ModelPath)
	if rep.RunID != "" {
		fmt.Printf("Run recorded: %s\n", rep.RunID)
	}

	switch {
	case rep.SampleErr != nil:
		fmt.Printf("Sample prediction failed: %v\n", rep.SampleErr)
	case rep.Sample.Binary != nil:
		s := rep.Sample.Binary
		fmt.Printf("Sample %q => hoax=%t (probability %.4f)\n",
			kabar.SampleTitle, s.PredictedLabel, s.Probability)
	case rep.Sample.Multiclass != nil:
		fmt.Printf("Sample %q => category %s\n",
			kabar.SampleTitle, rep.Sample.Multiclass.PredictedLabel)
	}
}
