// Package finding defines the issues reported by the audit checkers.
package finding

// Kind identifies the category of a finding.
type Kind string

// Kinds in report order.
const (
	UnknownCode          Kind = "UNKNOWN_CODE"
	NameMismatch         Kind = "NAME_MISMATCH"
	FlagMismatch         Kind = "FLAG_MISMATCH"
	DuplicateCode        Kind = "DUPLICATE_CODE"
	MissingMappingTarget Kind = "MISSING_MAPPING_TARGET"
	DuplicateSlug        Kind = "DUPLICATE_SLUG"
	InvalidReference     Kind = "INVALID_REFERENCE"
	EmptyReferenceList   Kind = "EMPTY_REFERENCE_LIST"
)

// Kinds returns every kind in report order.
func Kinds() []Kind {
	return []Kind{
		UnknownCode,
		NameMismatch,
		FlagMismatch,
		DuplicateCode,
		MissingMappingTarget,
		DuplicateSlug,
		InvalidReference,
		EmptyReferenceList,
	}
}

// Finding is one issue discovered during a validation pass.
type Finding struct {
	Kind    Kind     `json:"kind"`
	Subject string   `json:"subject"`
	Message string   `json:"message"`
	Related []string `json:"related,omitempty"`
}

// New builds a finding.
func New(kind Kind, subject, message string, related ...string) Finding {
	return Finding{Kind: kind, Subject: subject, Message: message, Related: related}
}
