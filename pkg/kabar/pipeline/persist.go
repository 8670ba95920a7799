package pipeline

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
)

// Schema describes the input the model was trained against. It is
// embedded in the artifact so a saved model can be loaded and applied
// without access to the training run.
type Schema struct {
	Columns     []string
	Separator   string
	LabelValues []float64
}

// artifact is the on-disk envelope: the fitted pipeline plus the
// schema it was trained against.
type artifact struct {
	Schema   Schema
	Pipeline *Pipeline
}

// Save serializes the fitted pipeline and its schema to path as a
// single opaque binary file.
func (p *Pipeline) Save(path string, schema Schema) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(artifact{Schema: schema, Pipeline: p}); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write model to %s: %w", path, err)
	}
	return nil
}

// Load restores a persisted pipeline. The result predicts identically
// to the pipeline that was saved, including the featurizer's learned
// IDF table and the multiclass key mapping.
func Load(path string) (*Pipeline, Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Schema{}, fmt.Errorf("read model from %s: %w", path, err)
	}
	var a artifact
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&a); err != nil {
		return nil, Schema{}, fmt.Errorf("decode model: %w", err)
	}
	return a.Pipeline, a.Schema, nil
}
