package cluster

import (
	"math"
	"sort"

	"github.com/tsawler/ocrfields/model"
)

// Cluster is a run of words lying on the same line (Y axis) or column
// (X axis).
type Cluster struct {
	// Words in the order they were grouped, sorted along the axis.
	Words []model.Word
}

// AverageX returns the mean center X of the cluster's words.
func (c Cluster) AverageX() float64 {
	if len(c.Words) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range c.Words {
		sum += w.CenterX
	}
	return sum / float64(len(c.Words))
}

// AverageY returns the mean center Y of the cluster's words.
func (c Cluster) AverageY() float64 {
	if len(c.Words) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range c.Words {
		sum += w.CenterY
	}
	return sum / float64(len(c.Words))
}

// Average returns the mean center coordinate along axis.
func (c Cluster) Average(axis model.Axis) float64 {
	if axis == model.AxisX {
		return c.AverageX()
	}
	return c.AverageY()
}

// Config holds clustering configuration.
type Config struct {
	// Axis is the coordinate words are grouped by (default: Y, one line per
	// cluster).
	Axis model.Axis

	// Select chooses the cluster returned by Best (default: largest).
	Select model.ClusterSelect

	// Tolerance is the maximum gap between neighbouring words of one
	// cluster (default: fixed 0.02).
	Tolerance model.Tolerance
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Axis:      model.AxisY,
		Select:    model.SelectLargest,
		Tolerance: model.FixedTolerance(model.DefaultClusterTolerance),
	}
}

// ConfigFrom converts a zone's cluster settings.
func ConfigFrom(c model.ClusterConfig) Config {
	return Config{Axis: c.Axis, Select: c.Select, Tolerance: c.Tolerance}
}

// Clusterer groups words and picks the value cluster.
type Clusterer struct {
	config Config
}

// NewClusterer creates a clusterer with default configuration.
func NewClusterer() *Clusterer {
	return &Clusterer{config: DefaultConfig()}
}

// NewClustererWithConfig creates a clusterer with custom configuration.
func NewClustererWithConfig(config Config) *Clusterer {
	return &Clusterer{config: config}
}

// Config returns the clusterer's configuration.
func (c *Clusterer) Config() Config {
	return c.config
}

// ResolveTolerance returns the gap threshold used for words. An auto
// tolerance is the configured factor times the median word extent along
// the axis, counting only positive extents; with no usable extents it falls
// back to DefaultClusterTolerance.
func (c *Clusterer) ResolveTolerance(words []model.Word) float64 {
	tol := c.config.Tolerance
	if !tol.Auto {
		if tol.Value <= 0 {
			return model.DefaultClusterTolerance
		}
		return tol.Value
	}

	factor := tol.AutoFactor
	if factor <= 0 {
		factor = model.DefaultAutoFactor
	}

	sizes := make([]float64, 0, len(words))
	for _, w := range words {
		size := w.Height()
		if c.config.Axis == model.AxisX {
			size = w.Width()
		}
		if size > 0 {
			sizes = append(sizes, size)
		}
	}
	if len(sizes) == 0 {
		return model.DefaultClusterTolerance
	}
	sort.Float64s(sizes)
	// Upper median for even counts.
	return sizes[len(sizes)/2] * factor
}

// Group splits words into clusters ordered along the axis. A new cluster
// starts when the gap to the previous word, not the cluster's first word,
// exceeds the tolerance. The input slice is not modified.
func (c *Clusterer) Group(words []model.Word) []Cluster {
	if len(words) == 0 {
		return nil
	}

	tolerance := c.ResolveTolerance(words)
	pos := func(w model.Word) float64 {
		if c.config.Axis == model.AxisX {
			return w.CenterX
		}
		return w.CenterY
	}

	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pos(sorted[i]) < pos(sorted[j])
	})

	var clusters []Cluster
	current := []model.Word{sorted[0]}
	prev := pos(sorted[0])

	for _, w := range sorted[1:] {
		p := pos(w)
		if math.Abs(p-prev) <= tolerance {
			current = append(current, w)
		} else {
			clusters = append(clusters, Cluster{Words: current})
			current = []model.Word{w}
		}
		prev = p
	}
	clusters = append(clusters, Cluster{Words: current})

	return clusters
}

// Select picks one cluster according to the configured strategy. zone is
// only consulted by SelectCenter. Ties go to the cluster that comes first
// along the axis. The second result is false when clusters is empty.
func (c *Clusterer) Select(clusters []Cluster, zone model.Region) (Cluster, bool) {
	if len(clusters) == 0 {
		return Cluster{}, false
	}

	best := 0
	switch c.config.Select {
	case model.SelectLowest:
		best = pick(clusters, func(a, b Cluster) bool { return a.AverageY() > b.AverageY() })
	case model.SelectHighest:
		best = pick(clusters, func(a, b Cluster) bool { return a.AverageY() < b.AverageY() })
	case model.SelectLeftmost:
		best = pick(clusters, func(a, b Cluster) bool { return a.AverageX() < b.AverageX() })
	case model.SelectRightmost:
		best = pick(clusters, func(a, b Cluster) bool { return a.AverageX() > b.AverageX() })
	case model.SelectCenter:
		center := zone.Y.Mid()
		if c.config.Axis == model.AxisX {
			center = zone.X.Mid()
		}
		dist := func(cl Cluster) float64 { return math.Abs(cl.Average(c.config.Axis) - center) }
		best = pick(clusters, func(a, b Cluster) bool { return dist(a) < dist(b) })
	case model.SelectLargest:
		best = pick(clusters, func(a, b Cluster) bool { return len(a.Words) > len(b.Words) })
	}

	return clusters[best], true
}

// pick returns the index of the first cluster no other cluster beats.
func pick(clusters []Cluster, better func(a, b Cluster) bool) int {
	best := 0
	for i := 1; i < len(clusters); i++ {
		if better(clusters[i], clusters[best]) {
			best = i
		}
	}
	return best
}

// Best groups words and returns the selected cluster sorted left to right.
// When no cluster can be formed the input is returned unchanged.
func (c *Clusterer) Best(words []model.Word, zone model.Region) []model.Word {
	chosen, ok := c.Select(c.Group(words), zone)
	if !ok {
		return words
	}
	out := make([]model.Word, len(chosen.Words))
	copy(out, chosen.Words)
	model.SortLeftToRight(out)
	return out
}
