// Package cluster separates a field's value from a printed label when both
// fall inside one zone.
//
// Words are grouped along one axis into clusters: a new cluster starts
// wherever the gap between neighbouring words exceeds the tolerance. One
// cluster is then chosen by a selection strategy:
//
//	c := cluster.NewClustererWithConfig(cluster.Config{
//	    Axis:      model.AxisY,
//	    Select:    model.SelectLowest,
//	    Tolerance: model.AutoTolerance(),
//	})
//	value := c.Best(words, zone.Region)
//
// [FilterLabels] removes label-looking words before clustering using
// caller-supplied label patterns and generic scoring heuristics.
package cluster
