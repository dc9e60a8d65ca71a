package naming

import "strings"

// Scanner states. The scan is a deterministic finite-state walk over the
// template bytes; all delimiters are ASCII, so multi-byte literal runes pass
// through untouched.
type scanState uint8

const (
	stateStart scanState = iota
	stateLiteral
	stateDateTime
	stateExpansionStart
	stateExpansionBody
)

const (
	openExpansion  = '{'
	closeExpansion = '}'
)

// Compile parses a template string into a Format.
//
// Grammar: a template is a sequence of literals (any run without '%' or
// '{'), date/time tokens ('%' plus exactly one following byte), and
// expansions ('{key}' where key is in the keyword table; '{{' escapes a
// single literal '{').
//
// Post-scan, a template with no {image.original_filename} reference gets one
// appended, so every rendered name incorporates the source file's stem.
func Compile(template string) (*Format, error) {
	var segs []Segment

	rest := template
	consumed := 0

	for len(rest) > 0 {
		n, state := scanToken(rest)
		if n <= 0 {
			// Defensive: scanToken always consumes at least one byte.
			return nil, &ParseError{
				Kind:   ParseUnknown,
				Offset: consumed,
				Length: len(template) - consumed,
				Source: template,
			}
		}

		tok := rest[:n]
		rest = rest[n:]

		switch {
		case tok == "{{":
			// The doubled open brace is the language's only escape: two
			// input bytes render one literal '{'.
			segs = append(segs, literalSeg(tok[0:1]))

		case state == stateLiteral:
			segs = append(segs, literalSeg(tok))

		case state == stateDateTime:
			if len(tok) != 2 {
				return nil, &ParseError{
					Kind:   ParseInvalidExpansion,
					Offset: consumed,
					Length: len(tok),
					Source: template,
				}
			}
			segs = append(segs, dateTimeSeg(tok))

		default: // stateExpansionStart or stateExpansionBody
			if !strings.HasSuffix(tok, string(closeExpansion)) || len(tok) < 2 {
				return nil, &ParseError{
					Kind:   ParseUnterminatedExpansion,
					Offset: consumed,
					Length: len(tok),
					Source: template,
				}
			}
			tag, ok := keywordTags[tok[1:len(tok)-1]]
			if !ok {
				return nil, &ParseError{
					Kind:   ParseInvalidExpansion,
					Offset: consumed,
					Length: len(tok),
					Source: template,
				}
			}
			segs = append(segs, metadataSeg(tag))
		}

		consumed += n
	}

	if !containsTag(segs, TagOriginalFilename) {
		segs = append(segs, metadataSeg(TagOriginalFilename))
	}

	return &Format{segments: segs}, nil
}

// scanToken consumes one token from rest and returns its byte length along
// with the state that produced it.
func scanToken(rest string) (int, scanState) {
	state := stateStart
	for i := 0; i < len(rest); i++ {
		c := rest[i]

		switch state {
		case stateStart:
			switch c {
			case '%':
				state = stateDateTime
			case openExpansion:
				state = stateExpansionStart
			default:
				state = stateLiteral
			}

		case stateDateTime:
			// A date/time token is the '%' plus exactly one byte,
			// whatever that byte is.
			return i + 1, stateDateTime

		case stateExpansionStart:
			if c == openExpansion {
				return i + 1, stateExpansionStart // the "{{" escape
			}
			state = stateExpansionBody

		case stateExpansionBody:
			if c == closeExpansion {
				return i + 1, stateExpansionBody
			}

		case stateLiteral:
			if c == '%' || c == openExpansion {
				return i, stateLiteral
			}
		}
	}
	return len(rest), state
}

func containsTag(segs []Segment, tag MetadataTag) bool {
	for _, s := range segs {
		if s.Kind == KindMetadata && s.Tag == tag {
			return true
		}
	}
	return false
}
