// Package template loads zone templates: the per-field rectangles and
// extraction settings authored for one document type.
//
// Templates are YAML (and therefore also JSON) mappings from field name to
// field settings:
//
//	name: us_dl
//	fields:
//	  date_of_birth:
//	    x_range: [0.28, 0.52]
//	    y_range: [0.31, 0.36]
//	    format: date
//	    date_format: MM/DD/YYYY
//	    cleanup_pattern: '^(3\s*)?DOB\s*'
//	  restrictions:
//	    x_range: [0.05, 0.40]
//	    y_range: [0.38, 0.45]
//	    format: restrictions
//	    cluster_by: y
//	    cluster_select: center
//	    cluster_tolerance: auto
//
// Field order is preserved. A missing format or kind is guessed from the
// field name. Every zone is validated on load; caller regexes are checked
// separately by [Template.CheckPatterns] because a broken pattern only
// disables itself during extraction.
package template
