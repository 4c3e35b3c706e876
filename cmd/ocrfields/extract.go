package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/ocrfields"
	"github.com/tsawler/ocrfields/model"
	"github.com/tsawler/ocrfields/ocr"
	"github.com/tsawler/ocrfields/template"
)

type extractOptions struct {
	template       string
	models         []string
	normalizeFirst bool
	noFallback     bool
	margin         float64
	concurrency    int
}

type documentOutput struct {
	File     string                  `json:"file"`
	Fields   []ocrfields.FieldResult `json:"fields"`
	Warnings []ocrfields.Warning     `json:"warnings,omitempty"`
}

func newExtractCmd(a *app) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract --template FILE SCAN...",
		Short: "Extract template fields from OCR output files",
		Long: "Extract every field of a zone template from one or more OCR output files.\n" +
			"Each file is an OCR service JSON response or an hOCR document. Results are\n" +
			"written to stdout as JSON, one entry per file.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, a, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.template, "template", "t", "", "Zone template (YAML or JSON)")
	f.StringSliceVar(&opts.models, "models", nil, "Only vote with these models")
	f.BoolVar(&opts.normalizeFirst, "normalize-first", false, "Normalize each model's reading before voting")
	f.BoolVar(&opts.noFallback, "no-fallback", false, "Do not fall back to consensus patterns")
	f.Float64Var(&opts.margin, "margin", ocrfields.DefaultExpandMargin, "Zone expansion searched by consensus patterns")
	f.IntVarP(&opts.concurrency, "concurrency", "j", ocrfields.DefaultConcurrency, "Documents processed at once")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func runExtract(cmd *cobra.Command, a *app, opts *extractOptions, paths []string) error {
	tmpl, err := template.Load(opts.template)
	if err != nil {
		return err
	}
	for _, issue := range tmpl.CheckPatterns() {
		a.logger.Warn("invalid template pattern",
			zap.String("field", issue.Field),
			zap.String("key", issue.Key),
			zap.Error(issue.Err))
	}

	docs := make([]*model.Document, len(paths))
	for i, path := range paths {
		doc, err := ocr.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		a.logger.Debug("document loaded",
			zap.String("file", path),
			zap.Int("words", len(doc.Words)),
			zap.Strings("models", doc.ModelNames()))
		docs[i] = doc
	}

	ext := ocrfields.New().
		Logger(a.logger).
		ExpandMargin(opts.margin).
		Concurrency(opts.concurrency)
	if len(opts.models) > 0 {
		ext = ext.Models(opts.models...)
	}
	if opts.normalizeFirst {
		ext = ext.NormalizeBeforeVote()
	}
	if opts.noFallback {
		ext = ext.NoPatternFallback()
	}

	results, err := ext.ExtractBatch(cmd.Context(), docs, tmpl.Zones)
	if err != nil {
		return err
	}

	out := make([]documentOutput, len(results))
	for i, r := range results {
		out[i] = documentOutput{File: paths[r.Index], Fields: r.Fields, Warnings: r.Warnings}
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
