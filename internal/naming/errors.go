package naming

import "fmt"

// ParseErrorKind classifies template compilation failures.
type ParseErrorKind uint8

const (
	// ParseInvalidExpansion marks a malformed date/time token or an
	// expansion whose key is not in the keyword table.
	ParseInvalidExpansion ParseErrorKind = iota
	// ParseUnterminatedExpansion marks a "{" expansion that reached the end
	// of the template without a closing "}".
	ParseUnterminatedExpansion
	// ParseUnknown marks an un-scannable remainder. The scanner covers every
	// input, so this is defensive.
	ParseUnknown
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseInvalidExpansion:
		return "invalid expansion"
	case ParseUnterminatedExpansion:
		return "unterminated expansion"
	default:
		return "unknown parse failure"
	}
}

// ParseError reports a template compilation failure with the byte range of
// the offending token and the original template for diagnostics.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int    // Byte offset of the offending token.
	Length int    // Byte length of the offending token.
	Source string // The full template string.
}

func (e *ParseError) Error() string {
	end := e.Offset + e.Length
	if end > len(e.Source) {
		end = len(e.Source)
	}
	return fmt.Sprintf("%s at byte %d of %q: %q", e.Kind, e.Offset, e.Source, e.Source[e.Offset:end])
}
