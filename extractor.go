package ocrfields

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/ocrfields/model"
	"github.com/tsawler/ocrfields/ocr"
	"github.com/tsawler/ocrfields/spatial"
)

var (
	// ErrNoDocument is returned when an extractor has no document to read.
	ErrNoDocument = errors.New("no document")

	// ErrNoPattern is returned by Pattern for a zone without a consensus
	// pattern.
	ErrNoPattern = errors.New("zone has no consensus pattern")
)

// ReferenceModel names the single reading of a document that carries no
// per-model output: the text of its reference words.
const ReferenceModel = "reference"

// source is the document behind an extractor. It is shared by every
// extractor derived from the same Open or FromDocument call so the file is
// read and indexed once.
type source struct {
	filename string

	once  sync.Once
	doc   *model.Document
	index *spatial.Index
	err   error
}

func (s *source) load() (*model.Document, *spatial.Index, error) {
	if s == nil {
		return nil, nil, ErrNoDocument
	}
	s.once.Do(func() {
		if s.doc == nil {
			if s.filename == "" {
				s.err = ErrNoDocument
				return
			}
			doc, err := ocr.ReadFile(s.filename)
			if err != nil {
				s.err = fmt.Errorf("failed to load %s: %w", s.filename, err)
				return
			}
			s.doc = doc
		}
		s.index = spatial.NewIndex(s.doc.Words)
	})
	return s.doc, s.index, s.err
}

// Extractor provides a fluent interface for extracting fields from OCR
// output. Each configuration method returns a new Extractor instance, making
// it safe for concurrent use and allowing method chaining.
type Extractor struct {
	src *source

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// The document source is shared.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		src:     e.src,
		options: e.options.clone(),
		err:     e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Logger sets the logger used for debug output. A nil logger disables
// logging.
func (e *Extractor) Logger(l *zap.Logger) *Extractor {
	newExt := e.clone()
	if l == nil {
		l = zap.NewNop()
	}
	newExt.options.logger = l
	return newExt
}

// Models restricts voting to the named models. Multiple calls are
// cumulative.
//
// Example:
//
//	result, _, err := ocrfields.Open("scan.json").Models("doctr", "parseq").Field(zone)
func (e *Extractor) Models(names ...string) *Extractor {
	newExt := e.clone()
	newExt.options.models = append(newExt.options.models, names...)
	return newExt
}

// ExpandMargin sets the margin added on every side of a zone before a
// consensus pattern searches it. The default is DefaultExpandMargin.
func (e *Extractor) ExpandMargin(margin float64) *Extractor {
	newExt := e.clone()
	if margin < 0 || margin > 1 {
		newExt.err = fmt.Errorf("expand margin %g outside [0,1]", margin)
		return newExt
	}
	newExt.options.expandMargin = margin
	return newExt
}

// NormalizeBeforeVote normalizes and validates every model's reading first
// and votes only among the valid normalized values. Models whose reading
// is rejected do not count.
func (e *Extractor) NormalizeBeforeVote() *Extractor {
	newExt := e.clone()
	newExt.options.normalizeBeforeVote = true
	return newExt
}

// NoPatternFallback stops Field from trying a zone's consensus pattern
// when the zone vote produces no valid value.
func (e *Extractor) NoPatternFallback() *Extractor {
	newExt := e.clone()
	newExt.options.noPatternFallback = true
	return newExt
}

// TieBreak overrides the character tie-break rule of every zone.
// model.TieBreakAuto restores the per-zone rule.
func (e *Extractor) TieBreak(t model.TieBreak) *Extractor {
	newExt := e.clone()
	newExt.options.tieBreak = t
	return newExt
}

// Concurrency sets how many fields (in Fields) or documents (in
// ExtractBatch) are processed at once. Values below 1 mean 1.
func (e *Extractor) Concurrency(n int) *Extractor {
	newExt := e.clone()
	if n < 1 {
		n = 1
	}
	newExt.options.concurrency = n
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Document returns the decoded document, reading it if needed.
func (e *Extractor) Document() (*model.Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	doc, _, err := e.src.load()
	return doc, err
}

// Field extracts one field. The zone's word positions are read from every
// aligned model, label words are filtered, the best cluster is kept, each
// reading is cleaned and the readings are voted on. The winner is
// normalized to the zone's format and validated.
//
// When the vote yields no valid value and the zone has a consensus pattern,
// the pattern is searched around the zone and its result is used if valid.
// A document without per-model output is read once from its reference
// words.
//
// Example:
//
//	result, warnings, err := ocrfields.Open("scan.json").Field(zone)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Value.Normalized, result.Votes, "/", result.Total)
func (e *Extractor) Field(zone model.Zone) (FieldResult, []Warning, error) {
	if e.err != nil {
		return FieldResult{}, nil, e.err
	}
	if err := zone.Validate(); err != nil {
		return FieldResult{}, nil, err
	}
	doc, idx, err := e.src.load()
	if err != nil {
		return FieldResult{}, nil, err
	}

	var ws warningSet
	return e.field(doc, idx, zone, &ws), ws.list, nil
}

// Pattern extracts one field with the zone's consensus pattern only. Each
// model's text inside the zone expanded by the configured margin is
// searched; capturing group 1 is the value when the pattern has one,
// otherwise the whole match with the cleanup pattern applied.
func (e *Extractor) Pattern(zone model.Zone) (FieldResult, []Warning, error) {
	if e.err != nil {
		return FieldResult{}, nil, e.err
	}
	if err := zone.Validate(); err != nil {
		return FieldResult{}, nil, err
	}
	if strings.TrimSpace(zone.ConsensusPattern) == "" {
		return FieldResult{}, nil, fmt.Errorf("%w: %q", ErrNoPattern, zone.Name)
	}
	doc, idx, err := e.src.load()
	if err != nil {
		return FieldResult{}, nil, err
	}

	var ws warningSet
	return e.patternField(doc, idx, zone, &ws), ws.list, nil
}

// Text returns the zone text of the document's reference words, in reading
// order, with label filtering, clustering and the cleanup pattern applied.
// It ignores per-model output.
func (e *Extractor) Text(zone model.Zone) (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}
	if err := zone.Validate(); err != nil {
		return "", nil, err
	}
	doc, idx, err := e.src.load()
	if err != nil {
		return "", nil, err
	}

	var ws warningSet
	hits := idx.Search(zone.Region)
	if len(hits) == 0 {
		ws.add(Warning{Kind: WarningEmptyZone, Field: zone.Name, Message: "no words in zone"})
		return "", ws.list, nil
	}
	return e.assemble(pick(doc.Words, hits, nil), zone, &ws), ws.list, nil
}

// ModelTexts returns every aligned model's cleaned zone text, before
// voting. A document without per-model output yields a single entry under
// ReferenceModel.
func (e *Extractor) ModelTexts(zone model.Zone) (map[string]string, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := zone.Validate(); err != nil {
		return nil, nil, err
	}
	doc, idx, err := e.src.load()
	if err != nil {
		return nil, nil, err
	}

	var ws warningSet
	texts, _, _ := e.zoneTexts(doc, idx, zone, &ws)
	return texts, ws.list, nil
}

// Fields extracts several fields of the same document concurrently.
// Results and warnings are returned in zone order. An invalid zone fails
// the whole call before any extraction.
//
// Example:
//
//	tmpl, _ := template.Load("us_dl.yaml")
//	results, warnings, err := ocrfields.Open("scan.json").Fields(tmpl.Zones...)
func (e *Extractor) Fields(zones ...model.Zone) ([]FieldResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := validateZones(zones); err != nil {
		return nil, nil, err
	}
	doc, idx, err := e.src.load()
	if err != nil {
		return nil, nil, err
	}

	results := make([]FieldResult, len(zones))
	perField := make([][]Warning, len(zones))

	var g errgroup.Group
	g.SetLimit(e.options.concurrency)
	for i, zone := range zones {
		g.Go(func() error {
			var ws warningSet
			results[i] = e.field(doc, idx, zone, &ws)
			perField[i] = ws.list
			return nil
		})
	}
	_ = g.Wait()

	var warnings []Warning
	for _, ws := range perField {
		warnings = append(warnings, ws...)
	}
	return results, warnings, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func validateZones(zones []model.Zone) error {
	seen := make(map[string]bool, len(zones))
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return err
		}
		if seen[z.Name] {
			return fmt.Errorf("%w %q: duplicate field name", model.ErrInvalidZone, z.Name)
		}
		seen[z.Name] = true
	}
	return nil
}
