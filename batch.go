package ocrfields

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/ocrfields/model"
)

// BatchResult holds the fields of one document of a batch.
type BatchResult struct {
	// Index is the document's position in the input.
	Index    int
	Fields   []FieldResult
	Warnings []Warning
}

// ExtractBatch extracts the same zones from many documents using the
// extractor's configuration. Documents are processed concurrently, at most
// Concurrency at a time; the fields of one document are extracted in order.
// Results are returned in input order.
//
// Cancellation is checked between documents. A nil document or an invalid
// zone fails the call before any work starts.
//
// Example:
//
//	results, err := ocrfields.New().Concurrency(8).ExtractBatch(ctx, docs, tmpl.Zones)
func (e *Extractor) ExtractBatch(ctx context.Context, docs []*model.Document, zones []model.Zone) ([]BatchResult, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := validateZones(zones); err != nil {
		return nil, err
	}
	for i, doc := range docs {
		if doc == nil {
			return nil, fmt.Errorf("document %d: %w", i, ErrNoDocument)
		}
	}

	results := make([]BatchResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.concurrency)
	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := &source{doc: doc}
			d, idx, err := src.load()
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}

			var ws warningSet
			fields := make([]FieldResult, len(zones))
			for j, zone := range zones {
				fields[j] = e.field(d, idx, zone, &ws)
			}
			results[i] = BatchResult{Index: i, Fields: fields, Warnings: ws.list}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done after Wait.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.options.logger.Debug("batch complete",
		zap.Int("documents", len(docs)),
		zap.Int("fields", len(zones)))
	return results, nil
}
