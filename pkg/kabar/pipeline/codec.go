package pipeline

import (
	"sort"
	"strconv"
)

// LabelCodec maps raw numeric labels into a dense key space for the
// multiclass trainer, and back to label strings for user-facing
// output. The mapping is learned from the training split at fit time
// and travels with the persisted model so predictions decode the same
// way after a reload.
type LabelCodec struct {
	Values []float64

	index map[float64]int
}

// Fit learns the mapping from the training-split labels.
func (c *LabelCodec) Fit(labels []float64) {
	seen := make(map[float64]struct{})
	for _, v := range labels {
		seen[v] = struct{}{}
	}
	c.Values = c.Values[:0]
	for v := range seen {
		c.Values = append(c.Values, v)
	}
	sort.Float64s(c.Values)
	c.rebuild()
}

// Len returns the number of known classes.
func (c *LabelCodec) Len() int { return len(c.Values) }

// Key returns the class key for a raw label, or -1 when the label was
// not seen during fitting.
func (c *LabelCodec) Key(label float64) int {
	if c.index == nil {
		c.rebuild()
	}
	k, ok := c.index[label]
	if !ok {
		return -1
	}
	return k
}

// Label formats the raw label behind a class key for display.
func (c *LabelCodec) Label(key int) string {
	return strconv.FormatFloat(c.Values[key], 'f', -1, 64)
}

func (c *LabelCodec) rebuild() {
	c.index = make(map[float64]int, len(c.Values))
	for k, v := range c.Values {
		c.index[v] = k
	}
}
