// Package feature converts assembled news text into fixed-length
// numeric vectors using hashed TF-IDF. The vectorizer follows a
// fit/transform contract: Fit learns document frequencies over the
// training split, Transform projects any text into the learned space.
package feature

import (
	"hash/fnv"
	"math"

	"github.com/cognicore/kabar/pkg/kabar/ingest"
	"github.com/cognicore/kabar/pkg/kabar/internalerr"
)

// DefaultDims is the feature-space size used when none is configured.
const DefaultDims = 8192

// Vectorizer is a hashed TF-IDF featurizer. Exported fields are the
// learned state and travel with the persisted model.
type Vectorizer struct {
	Dims      int
	Stopwords []string
	DocCount  int64
	DocFreq   []int64
	IDF       []float64

	tok *ingest.Tokenizer
}

// NewVectorizer creates an unfitted vectorizer over dims hash buckets.
func NewVectorizer(dims int, stopwords []string) *Vectorizer {
	if dims <= 0 {
		dims = DefaultDims
	}
	return &Vectorizer{
		Dims:      dims,
		Stopwords: stopwords,
	}
}

// tokenizer rebuilds the tokenizer lazily so a gob-decoded vectorizer
// works without an explicit restore step.
func (v *Vectorizer) tokenizer() *ingest.Tokenizer {
	if v.tok == nil {
		v.tok = ingest.NewTokenizer(v.Stopwords)
	}
	return v.tok
}

func (v *Vectorizer) bucket(token string) int {
	h := fnv.New32a()
	h.Write([]byte(token))
	return int(h.Sum32() % uint32(v.Dims))
}

// Fit learns per-bucket document frequencies and the resulting IDF
// weights from the given documents.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return internalerr.ErrEmptyDataset
	}

	v.DocCount = int64(len(docs))
	v.DocFreq = make([]int64, v.Dims)

	for _, doc := range docs {
		seen := make(map[int]struct{})
		for _, tok := range v.tokenizer().Tokenize(doc) {
			seen[v.bucket(tok)] = struct{}{}
		}
		for b := range seen {
			v.DocFreq[b]++
		}
	}

	v.IDF = make([]float64, v.Dims)
	for b, df := range v.DocFreq {
		v.IDF[b] = math.Log(float64(1+v.DocCount)/float64(1+df)) + 1
	}
	return nil
}

// Transform projects one document into the learned feature space:
// term frequency per hash bucket, scaled by IDF, L2-normalized.
// An unfitted vectorizer returns ErrNoModel.
func (v *Vectorizer) Transform(doc string) ([]float64, error) {
	if v.IDF == nil {
		return nil, internalerr.ErrNoModel
	}

	out := make([]float64, v.Dims)
	tokens := v.tokenizer().Tokenize(doc)
	if len(tokens) == 0 {
		return out, nil
	}

	for _, tok := range tokens {
		out[v.bucket(tok)]++
	}

	norm := 0.0
	for b := range out {
		if out[b] == 0 {
			continue
		}
		out[b] = (out[b] / float64(len(tokens))) * v.IDF[b]
		norm += out[b] * out[b]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for b := range out {
			out[b] /= norm
		}
	}
	return out, nil
}

// TransformAll vectorizes a batch of documents.
func (v *Vectorizer) TransformAll(docs []string) ([][]float64, error) {
	out := make([][]float64, len(docs))
	for i, doc := range docs {
		vec, err := v.Transform(doc)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}
