package normalize

import (
	"github.com/tsawler/ocrfields/internal/textnorm"
	"github.com/tsawler/ocrfields/model"
)

// Format applies the normalization rule of format to raw. Options of the
// wrong variant are replaced by the format's defaults. The second result is
// false when the value was rejected.
func Format(raw string, format model.FieldFormat, opts model.FormatOptions) (string, bool) {
	if opts == nil || opts.Format() != format {
		opts = model.DefaultOptions(format)
	}

	switch format {
	case model.FormatString:
		return String(raw)
	case model.FormatNumber:
		return Number(raw)
	case model.FormatDate:
		o, ok := opts.(model.DateOptions)
		if !ok {
			o = model.DefaultOptions(format).(model.DateOptions)
		}
		return Date(raw, o.Layout)
	case model.FormatHeight:
		o, _ := opts.(model.HeightOptions)
		return Height(raw, o.Units)
	case model.FormatWeight:
		o, _ := opts.(model.WeightOptions)
		return Weight(raw, o.Units)
	case model.FormatSex:
		return Sex(raw)
	case model.FormatEyes:
		return EyeColor(raw)
	case model.FormatHair:
		return HairColor(raw)
	case model.FormatEndorsements:
		return Endorsement(raw)
	case model.FormatRestrictions:
		return Restriction(raw)
	}
	return "", false
}

// Kind applies the extra cleaning of a field kind to an already normalized
// value.
func Kind(value string, kind model.FieldKind) (string, bool) {
	switch kind {
	case model.KindName:
		return Name(value)
	case model.KindAddress:
		return Address(value)
	case model.KindGeneric, model.KindCode:
	}
	return value, value != ""
}

// Field normalizes raw for zone: the text is folded to canonical Unicode,
// normalized by the zone's format and then cleaned by its kind.
func Field(raw string, zone model.Zone) (string, bool) {
	v, ok := Format(textnorm.Fold(raw), zone.Format, zone.FormatOptions())
	if !ok {
		return "", false
	}
	return Kind(v, zone.Kind)
}
