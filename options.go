package ocrfields

import (
	"go.uber.org/zap"

	"github.com/tsawler/ocrfields/model"
)

// DefaultExpandMargin is the margin added on every side of a zone when a
// consensus pattern searches around it.
const DefaultExpandMargin = 0.05

// DefaultConcurrency bounds the number of fields or documents processed at
// once by Fields and ExtractBatch.
const DefaultConcurrency = 4

// ExtractOptions holds configuration for field extraction.
type ExtractOptions struct {
	// Models restricts voting to the named models (nil means all)
	models []string

	// Pattern mode search margin
	expandMargin float64

	// Normalize and validate each model's reading before voting
	normalizeBeforeVote bool

	// Skip the pattern fallback in Field
	noPatternFallback bool

	// Overrides every zone's tie-break when not TieBreakAuto
	tieBreak model.TieBreak

	concurrency int

	logger *zap.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		models:              nil,
		expandMargin:        DefaultExpandMargin,
		normalizeBeforeVote: false,
		noPatternFallback:   false,
		tieBreak:            model.TieBreakAuto,
		concurrency:         DefaultConcurrency,
		logger:              zap.NewNop(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		expandMargin:        o.expandMargin,
		normalizeBeforeVote: o.normalizeBeforeVote,
		noPatternFallback:   o.noPatternFallback,
		tieBreak:            o.tieBreak,
		concurrency:         o.concurrency,
		logger:              o.logger,
	}

	// Deep copy models slice
	if o.models != nil {
		newOpts.models = make([]string, len(o.models))
		copy(newOpts.models, o.models)
	}

	return newOpts
}

// tieBreakFor resolves the tie-break rule for a zone.
func (o ExtractOptions) tieBreakFor(zone model.Zone) model.TieBreak {
	if o.tieBreak != model.TieBreakAuto {
		return o.tieBreak
	}
	return zone.EffectiveTieBreak()
}

// allowsModel reports whether a model takes part in voting.
func (o ExtractOptions) allowsModel(name string) bool {
	if o.models == nil {
		return true
	}
	for _, m := range o.models {
		if m == name {
			return true
		}
	}
	return false
}
