package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/ocrfields/model"
)

// makeWord creates a word centered at (cx, cy) with the given size.
func makeWord(text string, cx, cy, w, h float64) model.Word {
	return model.NewWord(text, cx-w/2, cy-h/2, cx+w/2, cy+h/2)
}

func texts(words []model.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func TestGroupByPreviousWord(t *testing.T) {
	words := []model.Word{
		makeWord("D", 0.5, 0.20, 0.1, 0.02),
		makeWord("A", 0.5, 0.10, 0.1, 0.02),
		makeWord("C", 0.5, 0.12, 0.1, 0.02),
		makeWord("B", 0.5, 0.11, 0.1, 0.02),
	}
	c := NewClustererWithConfig(Config{Axis: model.AxisY, Tolerance: model.FixedTolerance(0.015)})

	clusters := c.Group(words)
	require.Len(t, clusters, 2)
	// 0.10 and 0.12 are further apart than the tolerance but chained via 0.11.
	assert.Equal(t, []string{"A", "B", "C"}, texts(clusters[0].Words))
	assert.Equal(t, []string{"D"}, texts(clusters[1].Words))

	assert.Equal(t, "D", words[0].Text, "input must not be reordered")
}

func TestGroupXAxis(t *testing.T) {
	words := []model.Word{
		makeWord("LEFT", 0.10, 0.5, 0.05, 0.02),
		makeWord("RIGHT", 0.60, 0.5, 0.05, 0.02),
		makeWord("LEFT2", 0.11, 0.7, 0.05, 0.02),
	}
	c := NewClustererWithConfig(Config{Axis: model.AxisX, Tolerance: model.FixedTolerance(0.02)})
	clusters := c.Group(words)
	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"LEFT", "LEFT2"}, texts(clusters[0].Words))
}

func TestGroupEmpty(t *testing.T) {
	assert.Nil(t, NewClusterer().Group(nil))
}

func TestResolveTolerance(t *testing.T) {
	words := []model.Word{
		makeWord("A", 0.1, 0.1, 0.10, 0.02),
		makeWord("B", 0.2, 0.1, 0.20, 0.03),
		makeWord("C", 0.3, 0.1, 0.40, 0.02),
		model.NewWord("flat", 0.4, 0.1, 0.5, 0.1),
	}

	tests := []struct {
		name string
		cfg  Config
		want float64
	}{
		{"fixed", Config{Tolerance: model.FixedTolerance(0.05)}, 0.05},
		{"zero fixed falls back", Config{}, model.DefaultClusterTolerance},
		{"auto height", Config{Axis: model.AxisY, Tolerance: model.AutoTolerance()}, 0.03},
		{"auto width", Config{Axis: model.AxisX, Tolerance: model.AutoTolerance()}, 0.3},
		{"auto custom factor", Config{Tolerance: model.Tolerance{Auto: true, AutoFactor: 2}}, 0.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewClustererWithConfig(tt.cfg).ResolveTolerance(words)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestResolveToleranceNoExtents(t *testing.T) {
	words := []model.Word{model.NewWord("dot", 0.2, 0.2, 0.2, 0.2)}
	c := NewClustererWithConfig(Config{Tolerance: model.AutoTolerance()})
	assert.Equal(t, model.DefaultClusterTolerance, c.ResolveTolerance(words))
}

func TestSelectStrategies(t *testing.T) {
	label := []model.Word{makeWord("HGT", 0.10, 0.30, 0.05, 0.02)}
	value := []model.Word{
		makeWord("07", 0.30, 0.50, 0.04, 0.02),
		makeWord("5", 0.25, 0.50, 0.02, 0.02),
	}
	clusters := []Cluster{{Words: label}, {Words: value}}
	zone := model.NewRegion(0, 1, 0, 1)

	tests := []struct {
		sel  model.ClusterSelect
		want string
	}{
		{model.SelectLowest, "07"},
		{model.SelectHighest, "HGT"},
		{model.SelectLeftmost, "HGT"},
		{model.SelectRightmost, "07"},
		{model.SelectLargest, "07"},
	}

	for _, tt := range tests {
		t.Run(tt.sel.String(), func(t *testing.T) {
			c := NewClustererWithConfig(Config{Select: tt.sel})
			got, ok := c.Select(clusters, zone)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Words[0].Text)
		})
	}
}

func TestSelectLargestTieKeepsFirst(t *testing.T) {
	clusters := []Cluster{
		{Words: []model.Word{makeWord("FIRST", 0.1, 0.1, 0.1, 0.02)}},
		{Words: []model.Word{makeWord("SECOND", 0.1, 0.5, 0.1, 0.02)}},
	}
	got, ok := NewClusterer().Select(clusters, model.NewRegion(0, 1, 0, 1))
	require.True(t, ok)
	assert.Equal(t, "FIRST", got.Words[0].Text)
}

func TestSelectEmpty(t *testing.T) {
	_, ok := NewClusterer().Select(nil, model.Region{})
	assert.False(t, ok)
}

func TestBestCenterSelection(t *testing.T) {
	zone := model.NewRegion(0.05, 0.50, 0.38, 0.45) // center y = 0.415
	c := NewClustererWithConfig(Config{
		Axis:      model.AxisY,
		Select:    model.SelectCenter,
		Tolerance: model.FixedTolerance(0.02),
	})

	t.Run("value nearer center", func(t *testing.T) {
		words := []model.Word{
			makeWord("Restrictions", 0.20, 0.400, 0.20, 0.02),
			makeWord("NONE", 0.14, 0.428, 0.08, 0.016),
		}
		assert.Equal(t, []string{"NONE"}, texts(c.Best(words, zone)))
	})

	t.Run("label nearer center", func(t *testing.T) {
		words := []model.Word{
			makeWord("Restrictions", 0.20, 0.405, 0.20, 0.02),
			makeWord("NONE", 0.14, 0.430, 0.08, 0.016),
		}
		assert.Equal(t, []string{"Restrictions"}, texts(c.Best(words, zone)))
	})
}

func TestBestSortsLeftToRight(t *testing.T) {
	words := []model.Word{
		makeWord("LABEL", 0.10, 0.10, 0.10, 0.02),
		makeWord("SMITH", 0.40, 0.31, 0.10, 0.02),
		makeWord("JOHN", 0.20, 0.30, 0.10, 0.02),
	}
	c := NewClustererWithConfig(Config{Select: model.SelectLowest, Tolerance: model.AutoTolerance()})
	assert.Equal(t, []string{"JOHN", "SMITH"}, texts(c.Best(words, model.NewRegion(0, 1, 0, 1))))
}

func TestBestEmptyReturnsInput(t *testing.T) {
	assert.Empty(t, NewClusterer().Best(nil, model.Region{}))
}
