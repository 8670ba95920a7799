package dataset

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/cognicore/kabar/pkg/kabar/internalerr"
)

// Record is one training example as read from the corpus.
// Title and Narrative may be empty; Label is always present because
// rows whose label column does not parse are dropped by the loader.
type Record struct {
	Label     float64
	Title     string
	Narrative string
}

// Column positions in the training CSV. The file carries more columns
// (an identifier and a publication date) that the trainer never reads.
const (
	colID = iota
	colLabel
	colDate
	colTitle
	colNarrative
)

// LoadCSV reads the corpus file. The first row is a header and is skipped.
// Rows with a missing or unparseable label column are dropped; missing
// title or narrative cells become empty strings.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []Record
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) <= colLabel {
			continue
		}
		label, err := strconv.ParseFloat(row[colLabel], 64)
		if err != nil {
			continue
		}
		rec := Record{Label: label}
		if len(row) > colTitle {
			rec.Title = row[colTitle]
		}
		if len(row) > colNarrative {
			rec.Narrative = row[colNarrative]
		}
		records = append(records, rec)
	}
	return records, nil
}

// Survey returns the distinct label values observed across the whole
// dataset in ascending order. It must run over the full corpus, before
// any split, so that train and test partitions share one label space.
func Survey(records []Record) ([]float64, error) {
	if len(records) == 0 {
		return nil, internalerr.ErrEmptyDataset
	}
	seen := make(map[float64]struct{})
	for _, r := range records {
		seen[r.Label] = struct{}{}
	}
	labels := make([]float64, 0, len(seen))
	for v := range seen {
		labels = append(labels, v)
	}
	sort.Float64s(labels)
	return labels, nil
}

// Split partitions records into train and test subsets using a seeded
// permutation, so the same seed and ratio reproduce the same partition.
func Split(records []Record, testRatio float64, seed int64) (train, test []Record) {
	n := len(records)
	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(n)
	nTest := int(float64(n) * testRatio)
	for i := 0; i < n; i++ {
		if i < nTest {
			test = append(test, records[indices[i]])
		} else {
			train = append(train, records[indices[i]])
		}
	}
	return train, test
}
