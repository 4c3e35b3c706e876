// Package normalize turns a reconciled OCR string into the canonical value
// of a field format, or rejects it.
//
// Every rule is a pure function returning the value and a flag; a false
// flag means "no value", never a failure of the caller:
//
//	v, ok := normalize.Height(`HGT 5'08"`, model.UnitsUS) // "5'08", true
//	v, ok = normalize.Weight("WGT 70 kg", model.UnitsMetric) // "70kg", true
//	v, ok = normalize.Height(`8'02"`, model.UnitsUS) // "", false
//
// [Format] selects the rule for a [model.FieldFormat] and [Field] runs the
// full chain for a zone: Unicode folding, the format rule, then name or
// address cleaning by [model.FieldKind]. Normalizing an already normalized
// value returns it unchanged.
//
// The built-in expressions are compiled on first use into a read-only table
// shared by all goroutines.
package normalize
