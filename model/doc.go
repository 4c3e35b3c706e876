// Package model defines the data shared by every stage of field extraction.
//
// All coordinates are normalized to [0, 1] with the origin at the top-left
// corner of the document image.
//
// # Words and Documents
//
// A [Word] is a recognized word with its box and center point. A [Document]
// holds the reference word list (geometry) together with a [ModelOutputSet]:
// each recognition model's text for the same word positions. Models whose
// word count disagrees with the reference are reported by
// [Document.AlignedModels] and left out of voting.
//
// # Zones
//
// A [Zone] is a field's [Region] plus its extraction settings:
//
//	zone := model.NewZone("date_of_birth", model.NewRegion(0.40, 0.62, 0.30, 0.36), model.FormatDate)
//	zone.Options = model.DateOptions{Layout: model.LayoutDayMonthYearDots}
//	zone.Cluster = &model.ClusterConfig{Axis: model.AxisY, Select: model.SelectCenter, Tolerance: model.AutoTolerance()}
//	if err := zone.Validate(); err != nil {
//	    // handle error
//	}
//
// # Formats
//
// [FieldFormat] is a closed enumeration; format-specific settings are the
// [FormatOptions] variants [DateOptions], [HeightOptions], [WeightOptions]
// and [NoOptions].
//
// # Geometry
//
//   - [InZone] - center-in-rectangle test used for every zone lookup
//   - [Region.Expand] - uniform margin, clamped to the unit square
//   - [AggregateRegion] - smallest region covering a set of words
package model
