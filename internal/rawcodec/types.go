// Package rawcodec defines the decoded RAW metadata model and the codec
// collaborator that extracts it from source files and re-encodes them as DNG.
package rawcodec

import "context"

// Metadata holds the EXIF-like attributes decoded from a RAW file. Every
// field is optional: the zero value means the source did not carry it.
// Ratio-valued fields (shutter speed, focal length, focus distance) keep
// their original ratio text, e.g. "1/250".
type Metadata struct {
	Make             string
	Model            string
	ISO              int
	ShutterSpeed     string
	ExposureComp     string
	Flash            string
	LensMake         string
	LensModel        string
	FocalLength      string
	FocusDistance    string
	FStop            string
	Width            int
	Height           int
	BitDepth         int
	ColorSpace       string
	SequenceNumber   int
	Artist           string
	DateTimeOriginal string // EXIF form "2006:01:02 15:04:05".
}

// EncodeRequest carries everything the encoder needs for one conversion.
// The output file must already exist and be writable; the encoder never
// resolves overwrite conflicts itself.
type EncodeRequest struct {
	InputPath     string
	OutputPath    string
	EmbedOriginal bool   // Embed the source RAW inside the DNG.
	Artist        string // Written to the DNG artist tag when non-empty.
	Software      string // Written to the DNG software tag.
}

// Codec is the external image-codec collaborator: metadata extraction on the
// decode side, DNG conversion on the encode side. Implementations must be
// safe for concurrent use by pipeline workers.
type Codec interface {
	Decode(ctx context.Context, path string) (*Metadata, error)
	Encode(ctx context.Context, req EncodeRequest) error
}
