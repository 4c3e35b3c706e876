package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/ocrfields/model"
	"github.com/tsawler/ocrfields/normalize"
)

var errRejected = errors.New("value rejected")

type normalizeOptions struct {
	format     string
	dateFormat string
	units      string
	kind       string
}

func newNormalizeCmd(a *app) *cobra.Command {
	opts := &normalizeOptions{}

	cmd := &cobra.Command{
		Use:   "normalize --format FORMAT TEXT",
		Short: "Normalize a single value",
		Long: "Normalize TEXT to the canonical form of a field format: string, number, date,\n" +
			"height, weight, sex, eyes, hair, endorsements or restrictions.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, a, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "string", "Field format")
	f.StringVar(&opts.dateFormat, "date-format", string(model.LayoutMonthDayYearDots), "Target date layout")
	f.StringVar(&opts.units, "units", "auto", "Height and weight units: us, metric or auto")
	f.StringVar(&opts.kind, "kind", "", "Field kind: generic, name, address or code")

	return cmd
}

func runNormalize(cmd *cobra.Command, a *app, opts *normalizeOptions, text string) error {
	zone, err := opts.zone()
	if err != nil {
		return err
	}

	value, ok := normalize.Field(text, zone)
	if !ok {
		return fmt.Errorf("%w: %q is not a valid %s", errRejected, text, zone.Format)
	}

	valid, err := normalize.Validate(value, normalize.ValidationPattern(zone.Format, zone.Options))
	if err != nil {
		return err
	}
	if !valid {
		a.logger.Warn("value does not match the default validation pattern", zap.String("value", value))
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}

func (o *normalizeOptions) zone() (model.Zone, error) {
	format, err := model.ParseFieldFormat(o.format)
	if err != nil {
		return model.Zone{}, err
	}
	kind, err := model.ParseFieldKind(o.kind)
	if err != nil {
		return model.Zone{}, err
	}

	zone := model.NewZone("value", model.NewRegion(0, 1, 0, 1), format)
	zone.Kind = kind

	switch format {
	case model.FormatDate:
		layout := model.DateLayout(strings.ToUpper(o.dateFormat))
		if !layout.Valid() {
			return model.Zone{}, fmt.Errorf("unknown date format %q", o.dateFormat)
		}
		zone.Options = model.DateOptions{Layout: layout}
	case model.FormatHeight, model.FormatWeight:
		units, err := model.ParseUnitSystem(o.units)
		if err != nil {
			return model.Zone{}, err
		}
		if format == model.FormatHeight {
			zone.Options = model.HeightOptions{Units: units}
		} else {
			zone.Options = model.WeightOptions{Units: units}
		}
	case model.FormatString, model.FormatNumber, model.FormatSex, model.FormatEyes,
		model.FormatHair, model.FormatEndorsements, model.FormatRestrictions:
	}

	return zone, zone.Validate()
}
