package template

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/ocrfields/model"
	"github.com/tsawler/ocrfields/pattern"
)

// ErrInvalidTemplate is returned for templates that cannot be turned into
// valid zones.
var ErrInvalidTemplate = errors.New("invalid template")

// Template is a named, ordered set of zones.
type Template struct {
	Name  string
	Zones []model.Zone
}

// Zone returns the zone for a field name.
func (t *Template) Zone(name string) (model.Zone, bool) {
	for _, z := range t.Zones {
		if z.Name == name {
			return z, true
		}
	}
	return model.Zone{}, false
}

// FieldNames returns the field names in template order.
func (t *Template) FieldNames() []string {
	names := make([]string, len(t.Zones))
	for i, z := range t.Zones {
		names[i] = z.Name
	}
	return names
}

type templateFile struct {
	Name   string    `yaml:"name"`
	Fields yaml.Node `yaml:"fields"`
}

type fieldConfig struct {
	XRange []float64 `yaml:"x_range"`
	YRange []float64 `yaml:"y_range"`

	Format string `yaml:"format"`
	Kind   string `yaml:"kind"`

	DateFormat   string `yaml:"date_format"`
	HeightFormat string `yaml:"height_format"`
	WeightFormat string `yaml:"weight_format"`

	CleanupPattern   string `yaml:"cleanup_pattern"`
	Pattern          string `yaml:"pattern"`
	ConsensusExtract string `yaml:"consensus_extract"`

	ClusterBy         string          `yaml:"cluster_by"`
	ClusterSelect     string          `yaml:"cluster_select"`
	ClusterTolerance  *toleranceValue `yaml:"cluster_tolerance"`
	ClusterAutoFactor float64         `yaml:"cluster_auto_factor"`

	LabelPatterns []string `yaml:"label_patterns"`

	TieBreak string `yaml:"tie_break"`
}

// toleranceValue accepts either "auto" or a number.
type toleranceValue struct {
	auto  bool
	value float64
}

func (t *toleranceValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cluster_tolerance must be \"auto\" or a number", node.Line)
	}
	if strings.EqualFold(strings.TrimSpace(node.Value), "auto") {
		t.auto = true
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(node.Value), 64)
	if err != nil {
		return fmt.Errorf("line %d: cluster_tolerance must be \"auto\" or a number, got %q", node.Line, node.Value)
	}
	t.value = v
	return nil
}

// Load reads a template file.
func Load(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a template from r.
func Decode(r io.Reader) (*Template, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a template.
func Parse(data []byte) (*Template, error) {
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	t := &Template{Name: file.Name}
	if file.Fields.Kind == 0 {
		return t, nil
	}
	if file.Fields.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: fields must be a mapping", ErrInvalidTemplate)
	}

	// Content alternates key and value nodes.
	for i := 0; i+1 < len(file.Fields.Content); i += 2 {
		name := file.Fields.Content[i].Value

		var cfg fieldConfig
		if err := file.Fields.Content[i+1].Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidTemplate, name, err)
		}

		zone, err := cfg.zone(name)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidTemplate, name, err)
		}
		if _, dup := t.Zone(name); dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidTemplate, name)
		}
		t.Zones = append(t.Zones, zone)
	}

	return t, nil
}

func (c fieldConfig) zone(name string) (model.Zone, error) {
	if len(c.XRange) != 2 || len(c.YRange) != 2 {
		return model.Zone{}, errors.New("x_range and y_range need exactly two values")
	}
	region := model.NewRegion(c.XRange[0], c.XRange[1], c.YRange[0], c.YRange[1])

	format := model.DetectFormat(name)
	if c.Format != "" {
		f, err := model.ParseFieldFormat(c.Format)
		if err != nil {
			return model.Zone{}, err
		}
		format = f
	}

	zone := model.NewZone(name, region, format)
	zone.CleanupPattern = c.CleanupPattern
	zone.ValidationPattern = c.Pattern
	zone.ConsensusPattern = c.ConsensusExtract
	zone.LabelPatterns = c.LabelPatterns

	zone.Kind = model.DetectKind(name)
	if c.Kind != "" {
		k, err := model.ParseFieldKind(c.Kind)
		if err != nil {
			return model.Zone{}, err
		}
		zone.Kind = k
	}

	tb, err := model.ParseTieBreak(c.TieBreak)
	if err != nil {
		return model.Zone{}, err
	}
	zone.TieBreak = tb

	opts, err := c.options(format)
	if err != nil {
		return model.Zone{}, err
	}
	zone.Options = opts

	cluster, err := c.cluster()
	if err != nil {
		return model.Zone{}, err
	}
	zone.Cluster = cluster

	return zone, zone.Validate()
}

func (c fieldConfig) options(format model.FieldFormat) (model.FormatOptions, error) {
	switch format {
	case model.FormatDate:
		if c.DateFormat == "" {
			return model.DefaultOptions(format), nil
		}
		layout := model.DateLayout(strings.ToUpper(strings.TrimSpace(c.DateFormat)))
		if !layout.Valid() {
			return nil, fmt.Errorf("unknown date_format %q", c.DateFormat)
		}
		return model.DateOptions{Layout: layout}, nil
	case model.FormatHeight:
		units, err := model.ParseUnitSystem(c.HeightFormat)
		if err != nil {
			return nil, fmt.Errorf("height_format: %w", err)
		}
		return model.HeightOptions{Units: units}, nil
	case model.FormatWeight:
		units, err := model.ParseUnitSystem(c.WeightFormat)
		if err != nil {
			return nil, fmt.Errorf("weight_format: %w", err)
		}
		return model.WeightOptions{Units: units}, nil
	case model.FormatString, model.FormatNumber, model.FormatSex, model.FormatEyes,
		model.FormatHair, model.FormatEndorsements, model.FormatRestrictions:
	}
	return model.DefaultOptions(format), nil
}

// cluster returns nil unless one of the cluster keys is set.
func (c fieldConfig) cluster() (*model.ClusterConfig, error) {
	if c.ClusterBy == "" && c.ClusterSelect == "" && c.ClusterTolerance == nil {
		return nil, nil
	}

	axis, err := model.ParseAxis(c.ClusterBy)
	if err != nil {
		return nil, err
	}
	sel, err := model.ParseClusterSelect(c.ClusterSelect)
	if err != nil {
		return nil, err
	}

	tol := model.FixedTolerance(model.DefaultClusterTolerance)
	if t := c.ClusterTolerance; t != nil {
		if t.auto {
			tol = model.AutoTolerance()
			if c.ClusterAutoFactor != 0 {
				tol.AutoFactor = c.ClusterAutoFactor
			}
		} else {
			tol = model.FixedTolerance(t.value)
		}
	}

	return &model.ClusterConfig{Axis: axis, Select: sel, Tolerance: tol}, nil
}

// PatternIssue is a caller regex in a template that does not compile.
type PatternIssue struct {
	Field string
	Key   string
	Err   error
}

func (p PatternIssue) Error() string {
	return fmt.Sprintf("field %q %s: %v", p.Field, p.Key, p.Err)
}

func (p PatternIssue) Unwrap() error {
	return p.Err
}

// CheckPatterns compiles every caller regex of the template and returns the
// ones that fail, in template order.
func (t *Template) CheckPatterns() []PatternIssue {
	var issues []PatternIssue
	check := func(field, key, expr string) {
		if err := pattern.Check(expr); err != nil {
			issues = append(issues, PatternIssue{Field: field, Key: key, Err: err})
		}
	}

	for _, z := range t.Zones {
		check(z.Name, "cleanup_pattern", z.CleanupPattern)
		check(z.Name, "pattern", z.ValidationPattern)
		check(z.Name, "consensus_extract", z.ConsensusPattern)
		for i, lp := range z.LabelPatterns {
			check(z.Name, fmt.Sprintf("label_patterns[%d]", i), lp)
		}
	}
	return issues
}
