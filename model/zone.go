package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidZone is returned by Zone.Validate for malformed configuration.
var ErrInvalidZone = errors.New("invalid zone")

// Axis is the coordinate used for spatial clustering.
type Axis int

const (
	// AxisY groups words sharing a line.
	AxisY Axis = iota
	// AxisX groups words sharing a column.
	AxisX
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ParseAxis converts "x" or "y" to an Axis.
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "y":
		return AxisY, nil
	case "x":
		return AxisX, nil
	}
	return AxisY, fmt.Errorf("unknown cluster axis %q", name)
}

// ClusterSelect is the strategy for choosing one cluster as the field value.
type ClusterSelect int

const (
	// SelectLargest picks the cluster with the most words.
	SelectLargest ClusterSelect = iota
	// SelectLowest picks the cluster lowest on the page (largest average Y).
	SelectLowest
	// SelectHighest picks the cluster highest on the page (smallest average Y).
	SelectHighest
	// SelectLeftmost picks the cluster with the smallest average X.
	SelectLeftmost
	// SelectRightmost picks the cluster with the largest average X.
	SelectRightmost
	// SelectCenter picks the cluster whose average coordinate along the
	// clustering axis is nearest the zone's center.
	SelectCenter
)

var selectNames = [...]string{
	SelectLargest:   "largest",
	SelectLowest:    "lowest",
	SelectHighest:   "highest",
	SelectLeftmost:  "leftmost",
	SelectRightmost: "rightmost",
	SelectCenter:    "center",
}

// String returns the configuration name of the strategy.
func (s ClusterSelect) String() string {
	if s < 0 || int(s) >= len(selectNames) {
		return fmt.Sprintf("ClusterSelect(%d)", int(s))
	}
	return selectNames[s]
}

// ParseClusterSelect converts a configuration name to a ClusterSelect.
// An empty name means SelectLargest.
func ParseClusterSelect(name string) (ClusterSelect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SelectLargest, nil
	}
	for i, n := range selectNames {
		if n == name {
			return ClusterSelect(i), nil
		}
	}
	return SelectLargest, fmt.Errorf("unknown cluster selection %q", name)
}

// Default clustering constants. Both are empirical and can be overridden per
// zone.
const (
	DefaultClusterTolerance = 0.02
	DefaultAutoFactor       = 1.5
)

// Tolerance is the maximum gap between neighbouring words of one cluster.
// When Auto is set the gap is AutoFactor times the median word extent
// along the clustering axis.
type Tolerance struct {
	Auto       bool
	Value      float64
	AutoFactor float64
}

// FixedTolerance returns a fixed tolerance.
func FixedTolerance(v float64) Tolerance {
	return Tolerance{Value: v}
}

// AutoTolerance returns an adaptive tolerance with the default factor.
func AutoTolerance() Tolerance {
	return Tolerance{Auto: true, AutoFactor: DefaultAutoFactor}
}

// String returns "auto" or the fixed value.
func (t Tolerance) String() string {
	if t.Auto {
		return "auto"
	}
	return fmt.Sprintf("%g", t.Value)
}

// ClusterConfig enables spatial clustering for a zone.
type ClusterConfig struct {
	Axis      Axis
	Select    ClusterSelect
	Tolerance Tolerance
}

// Zone is a field's rectangle on the document plus everything needed to
// extract and normalize its value.
type Zone struct {
	// Name is the caller-defined field name, e.g. "date_of_birth".
	Name string

	Region Region
	Format FieldFormat

	// Options holds the format-specific settings. Nil means
	// DefaultOptions(Format).
	Options FormatOptions

	Kind     FieldKind
	TieBreak TieBreak

	// CleanupPattern is removed from each model's zone text (case-insensitive).
	CleanupPattern string
	// ValidationPattern must match the start of the normalized value.
	ValidationPattern string
	// ConsensusPattern drives pattern extraction mode. Group 1 is used when
	// present, otherwise the full match followed by CleanupPattern.
	ConsensusPattern string

	// Cluster enables spatial clustering when non-nil.
	Cluster *ClusterConfig

	// LabelPatterns enables label filtering when non-empty.
	LabelPatterns []string
}

// NewZone creates a zone with default options for the format.
func NewZone(name string, region Region, format FieldFormat) Zone {
	return Zone{
		Name:    name,
		Region:  region,
		Format:  format,
		Options: DefaultOptions(format),
	}
}

// FormatOptions returns the zone's options, falling back to the format
// defaults.
func (z Zone) FormatOptions() FormatOptions {
	if z.Options == nil {
		return DefaultOptions(z.Format)
	}
	return z.Options
}

// EffectiveTieBreak resolves TieBreakAuto against the format and kind.
func (z Zone) EffectiveTieBreak() TieBreak {
	if z.TieBreak == TieBreakAuto {
		return DefaultTieBreak(z.Format, z.Kind)
	}
	return z.TieBreak
}

// Validate checks geometry, format and option consistency. Regex patterns
// are not compiled here; a malformed pattern is reported where it is used.
func (z Zone) Validate() error {
	if !z.Region.Valid() {
		return fmt.Errorf("%w %q: ranges x=[%g,%g] y=[%g,%g] must be ordered and within [0,1]",
			ErrInvalidZone, z.Name, z.Region.X.Min, z.Region.X.Max, z.Region.Y.Min, z.Region.Y.Max)
	}
	if !z.Format.Valid() {
		return fmt.Errorf("%w %q: %s", ErrInvalidZone, z.Name, z.Format)
	}
	if !optionsMatch(z.Format, z.Options) {
		return fmt.Errorf("%w %q: options %T do not fit format %s", ErrInvalidZone, z.Name, z.Options, z.Format)
	}
	if c := z.Cluster; c != nil {
		if !c.Tolerance.Auto && c.Tolerance.Value <= 0 {
			return fmt.Errorf("%w %q: cluster tolerance must be positive", ErrInvalidZone, z.Name)
		}
		if c.Tolerance.Auto && c.Tolerance.AutoFactor < 0 {
			return fmt.Errorf("%w %q: cluster auto factor must not be negative", ErrInvalidZone, z.Name)
		}
	}
	return nil
}
