package ocrfields

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/ocrfields/cluster"
	"github.com/tsawler/ocrfields/consensus"
	"github.com/tsawler/ocrfields/model"
	"github.com/tsawler/ocrfields/normalize"
	"github.com/tsawler/ocrfields/pattern"
	"github.com/tsawler/ocrfields/spatial"
)

// reading is one model's text for every reference word position.
type reading struct {
	name  string
	texts []string
}

// field runs zone extraction with the optional pattern fallback.
func (e *Extractor) field(doc *model.Document, idx *spatial.Index, zone model.Zone, ws *warningSet) FieldResult {
	res := e.zoneField(doc, idx, zone, ws)
	if res.Value.Valid || e.options.noPatternFallback || strings.TrimSpace(zone.ConsensusPattern) == "" {
		return res
	}

	alt := e.patternField(doc, idx, zone, ws)
	if alt.Value.Valid {
		e.options.logger.Debug("consensus pattern used",
			zap.String("field", zone.Name),
			zap.String("value", alt.Value.Normalized))
		return alt
	}
	return res
}

func (e *Extractor) zoneField(doc *model.Document, idx *spatial.Index, zone model.Zone, ws *warningSet) FieldResult {
	texts, order, excluded := e.zoneTexts(doc, idx, zone, ws)

	from := SourceZone
	if !doc.HasModels() {
		from = SourceText
	}
	res := e.decide(zone, texts, order, from, ws)
	res.Excluded = excluded
	return res
}

// zoneTexts returns each reading's cleaned zone text, the reading names in
// vote order and the excluded models.
func (e *Extractor) zoneTexts(doc *model.Document, idx *spatial.Index, zone model.Zone, ws *warningSet) (map[string]string, []string, []string) {
	readings, excluded := e.readings(doc, zone.Name, ws)

	hits := idx.Search(zone.Region)
	if len(hits) == 0 {
		ws.add(Warning{Kind: WarningEmptyZone, Field: zone.Name, Message: "no words in zone"})
	}

	texts := make(map[string]string, len(readings))
	order := make([]string, 0, len(readings))
	for _, r := range readings {
		texts[r.name] = e.assemble(pick(doc.Words, hits, r.texts), zone, ws)
		order = append(order, r.name)
	}
	return texts, order, excluded
}

// patternField searches every reading's expanded-zone text with the zone's
// consensus pattern and votes on the matches.
func (e *Extractor) patternField(doc *model.Document, idx *spatial.Index, zone model.Zone, ws *warningSet) FieldResult {
	readings, excluded := e.readings(doc, zone.Name, ws)
	hits := idx.Search(zone.Region.Expand(e.options.expandMargin))

	texts := make(map[string]string, len(readings))
	order := make([]string, 0, len(readings))
	found := false
	for _, r := range readings {
		words := pick(doc.Words, hits, r.texts)
		model.SortReadingOrder(words)

		m, err := pattern.Extract(zone.ConsensusPattern, zone.CleanupPattern, joinWords(words))
		if err != nil {
			ws.pattern(zone.Name, err)
		}
		found = found || m.Found
		texts[r.name] = m.Text
		order = append(order, r.name)
	}
	if !found && len(readings) > 0 {
		ws.add(Warning{Kind: WarningNoMatch, Field: zone.Name, Message: "consensus pattern matched no reading"})
	}

	res := e.decide(zone, texts, order, SourcePattern, ws)
	res.Excluded = excluded
	return res
}

// readings returns the model readings taking part in the vote. Misaligned
// models are excluded and reported. A document without models has a single
// reading of its reference words.
func (e *Extractor) readings(doc *model.Document, field string, ws *warningSet) ([]reading, []string) {
	if !doc.HasModels() {
		texts := make([]string, len(doc.Words))
		for i, w := range doc.Words {
			texts[i] = w.Text
		}
		return []reading{{name: ReferenceModel, texts: texts}}, nil
	}

	aligned, excluded := doc.AlignedModels()
	for _, name := range excluded {
		msg := fmt.Sprintf("%d words for %d positions", len(doc.Models[name]), len(doc.Words))
		ws.add(Warning{Kind: WarningModelExcluded, Field: field, Model: name, Message: msg})
		e.options.logger.Debug("model excluded",
			zap.String("field", field),
			zap.String("model", name),
			zap.Int("words", len(doc.Models[name])),
			zap.Int("positions", len(doc.Words)))
	}

	var out []reading
	for _, name := range aligned {
		if e.options.allowsModel(name) {
			out = append(out, reading{name: name, texts: doc.Models[name]})
		}
	}
	return out, excluded
}

// assemble turns zone words into one string: label filtering, cluster
// selection, joining in reading order and the cleanup pattern.
func (e *Extractor) assemble(words []model.Word, zone model.Zone, ws *warningSet) string {
	// Step 1: drop label words
	if len(zone.LabelPatterns) > 0 {
		filtered, err := cluster.FilterLabels(words, zone.LabelPatterns, cluster.HintFor(zone.Format, zone.Kind))
		if err != nil {
			ws.pattern(zone.Name, err)
		}
		words = filtered
	}

	// Step 2: keep the best cluster, or order the words for reading
	if zone.Cluster != nil && len(words) > 0 {
		before := len(words)
		words = cluster.NewClustererWithConfig(cluster.ConfigFrom(*zone.Cluster)).Best(words, zone.Region)
		e.options.logger.Debug("cluster selected",
			zap.String("field", zone.Name),
			zap.Stringer("select", zone.Cluster.Select),
			zap.Int("words", len(words)),
			zap.Int("candidates", before))
	} else {
		model.SortReadingOrder(words)
	}

	// Step 3: join and clean
	text, err := pattern.Cleanup(zone.CleanupPattern, joinWords(words))
	if err != nil {
		ws.pattern(zone.Name, err)
	}
	return text
}

// decide votes on the readings and normalizes the winner.
func (e *Extractor) decide(zone model.Zone, texts map[string]string, order []string, from Source, ws *warningSet) FieldResult {
	if e.options.normalizeBeforeVote {
		return e.decideNormalized(zone, texts, order, from, ws)
	}

	candidates := make([]consensus.Candidate, len(order))
	for i, name := range order {
		candidates[i] = consensus.Candidate{Model: name, Text: texts[name]}
	}
	vote := consensus.Vote(candidates, e.options.tieBreakFor(zone))

	return FieldResult{
		Field:  zone.Name,
		Value:  e.normalizeValue(vote.Text, zone, ws),
		Votes:  vote.Votes,
		Total:  vote.Total,
		Method: vote.Method,
		Source: from,
		Models: texts,
	}
}

// decideNormalized normalizes and validates every reading and votes among
// the valid ones.
func (e *Extractor) decideNormalized(zone model.Zone, texts map[string]string, order []string, from Source, ws *warningSet) FieldResult {
	expr := validationExpr(zone)
	normalized := make(map[string]string, len(order))

	var candidates []consensus.Candidate
	for _, name := range order {
		raw := texts[name]
		if strings.TrimSpace(raw) == "" {
			continue
		}
		value, ok := normalize.Field(raw, zone)
		if !ok {
			continue
		}
		valid, err := normalize.Validate(value, expr)
		if err != nil {
			ws.pattern(zone.Name, err)
		}
		if !valid {
			continue
		}
		normalized[name] = value
		candidates = append(candidates, consensus.Candidate{Model: name, Text: value})
	}

	res := FieldResult{Field: zone.Name, Source: from, Models: normalized, Total: len(order)}
	if len(candidates) == 0 {
		if hasText(texts) {
			ws.add(Warning{Kind: WarningRejected, Field: zone.Name, Message: "no reading produced a valid value"})
		}
		return res
	}

	vote := consensus.Vote(candidates, e.options.tieBreakFor(zone))
	res.Votes, res.Total, res.Method = vote.Votes, vote.Total, vote.Method

	raw := vote.Text
	for _, name := range order {
		if v, ok := normalized[name]; ok && v == vote.Text {
			raw = texts[name]
			break
		}
	}

	// A character vote can assemble a value no single model produced.
	valid, err := normalize.Validate(vote.Text, expr)
	if err != nil {
		ws.pattern(zone.Name, err)
	}
	res.Value = model.NormalizedValue{Raw: raw, Normalized: vote.Text, Valid: valid}
	return res
}

// normalizeValue normalizes raw for the zone and validates the result.
func (e *Extractor) normalizeValue(raw string, zone model.Zone, ws *warningSet) model.NormalizedValue {
	v := model.NormalizedValue{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return v
	}

	norm, ok := normalize.Field(raw, zone)
	if !ok {
		ws.add(Warning{Kind: WarningRejected, Field: zone.Name, Message: fmt.Sprintf("%q is not a valid %s", raw, zone.Format)})
		e.options.logger.Debug("normalization rejected",
			zap.String("field", zone.Name),
			zap.Stringer("format", zone.Format),
			zap.String("raw", raw))
		return v
	}
	v.Normalized = norm

	valid, err := normalize.Validate(norm, validationExpr(zone))
	if err != nil {
		ws.pattern(zone.Name, err)
	}
	if !valid {
		ws.add(Warning{Kind: WarningValidation, Field: zone.Name, Message: fmt.Sprintf("%q does not match the validation pattern", norm)})
	}
	v.Valid = valid
	return v
}

// validationExpr is the zone's validation pattern, or the format default.
func validationExpr(zone model.Zone) string {
	if strings.TrimSpace(zone.ValidationPattern) != "" {
		return zone.ValidationPattern
	}
	return normalize.ValidationPattern(zone.Format, zone.FormatOptions())
}

// pick copies the words at hits, replacing their text with texts[i] when
// texts is not nil.
func pick(words []model.Word, hits []int, texts []string) []model.Word {
	out := make([]model.Word, 0, len(hits))
	for _, i := range hits {
		w := words[i]
		if texts != nil {
			w = w.WithText(texts[i])
		}
		out = append(out, w)
	}
	return out
}

// joinWords joins the non-blank word texts with single spaces.
func joinWords(words []model.Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if t := strings.TrimSpace(w.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func hasText(texts map[string]string) bool {
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			return true
		}
	}
	return false
}
