// Package naming implements the filename-template mini-language: compiling a
// template string into segments, expanding metadata references, and rendering
// output filenames.
package naming

// SegmentKind selects which variant a [Segment] holds.
type SegmentKind uint8

const (
	KindLiteral  SegmentKind = iota // Verbatim text.
	KindDateTime                    // strftime token, "%" plus one letter.
	KindMetadata                    // Metadata reference.
)

// MetadataTag identifies one expandable metadata reference. The set is
// closed; see the keyword table in keywords.go for the template syntax.
type MetadataTag uint8

const (
	TagCameraMake MetadataTag = iota
	TagCameraModel
	TagCameraShutterSpeed
	TagCameraExposureComp
	TagCameraISO
	TagCameraFlash
	TagLensFStop
	TagLensMake
	TagLensModel
	TagLensFocalLength
	TagLensFocusDistance
	TagImageColorSpace
	TagImageSequenceNumber
	TagImageHeight
	TagImageWidth
	TagImageBitDepth
	TagOriginalFilename
)

// Segment is one atomic piece of a compiled template. Kind selects the
// meaningful payload: Text for literals and date/time tokens, Tag for
// metadata references.
type Segment struct {
	Kind SegmentKind
	Text string
	Tag  MetadataTag
}

func literalSeg(text string) Segment    { return Segment{Kind: KindLiteral, Text: text} }
func dateTimeSeg(tok string) Segment    { return Segment{Kind: KindDateTime, Text: tok} }
func metadataSeg(t MetadataTag) Segment { return Segment{Kind: KindMetadata, Tag: t} }

// Format is a compiled filename template: an ordered, immutable sequence of
// segments. Built once by [Compile] and shared read-only across pipeline
// workers; no locking is required.
type Format struct {
	segments []Segment
}

// Segments returns the compiled segment sequence. Callers must not mutate it.
func (f *Format) Segments() []Segment { return f.segments }
