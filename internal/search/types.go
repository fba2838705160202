package search

import (
	"github.com/pathmark-dev/pathmark/internal/alias"
)

// Field identifies which alias attribute produced the winning match.
type Field int

const (
	// FieldName means the alias display name matched.
	FieldName Field = iota
	// FieldPath means the filesystem path matched.
	FieldPath
	// FieldTag means one of the tags matched.
	FieldTag
)

// String returns the lowercase field name for logging and JSON output.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldPath:
		return "path"
	case FieldTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Result pairs a cloned alias record with its relevance score and the
// field that produced the winning match.
type Result struct {
	Alias        alias.Alias `json:"alias"`
	Score        float64     `json:"score"`
	MatchedField Field       `json:"matched_field"`
}
