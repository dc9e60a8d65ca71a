package naming

import (
	"strconv"
	"strings"

	"github.com/backmassage/rawpress/internal/rawcodec"
)

// expandTag resolves one metadata reference to its display text. It is total:
// a field absent from the decoded metadata expands to the empty string, so a
// render never aborts because one camera didn't populate a tag.
//
// Every resolved value passes through safePath; ratio-valued fields such as
// shutter speed ("1/250") would otherwise introduce path separators.
// TagOriginalFilename is the exception: it is the caller-supplied stem,
// returned verbatim.
func expandTag(tag MetadataTag, md *rawcodec.Metadata, stem string) string {
	if tag == TagOriginalFilename {
		return stem
	}

	var v string
	switch tag {
	case TagCameraMake:
		v = md.Make
	case TagCameraModel:
		v = md.Model
	case TagCameraShutterSpeed:
		v = md.ShutterSpeed
	case TagCameraExposureComp:
		v = md.ExposureComp
	case TagCameraISO:
		v = intField(md.ISO)
	case TagCameraFlash:
		v = md.Flash
	case TagLensFStop:
		v = md.FStop
	case TagLensMake:
		v = md.LensMake
	case TagLensModel:
		v = md.LensModel
	case TagLensFocalLength:
		v = md.FocalLength
	case TagLensFocusDistance:
		v = md.FocusDistance
	case TagImageColorSpace:
		v = md.ColorSpace
	case TagImageSequenceNumber:
		v = intField(md.SequenceNumber)
	case TagImageHeight:
		v = intField(md.Height)
	case TagImageWidth:
		v = intField(md.Width)
	case TagImageBitDepth:
		v = intField(md.BitDepth)
	}
	return safePath(v)
}

// intField renders a numeric field, treating the zero value as absent.
func intField(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// safePath replaces '/' with '_' so resolved values stay valid path fragments.
func safePath(s string) string {
	return strings.ReplaceAll(s, "/", "_")
}
