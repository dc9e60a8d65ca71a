package naming

// keywordTags maps dotted template keys to metadata tags. The table is
// closed, case-sensitive, and never mutated at runtime.
//
// "camea.flash" is the historical key shipped in the first release of the
// format language; it is kept for compatibility and "camera.flash" is
// accepted as the corrected spelling.
var keywordTags = map[string]MetadataTag{
	"camera.make":                  TagCameraMake,
	"camera.model":                 TagCameraModel,
	"camera.shutter_speed":         TagCameraShutterSpeed,
	"camera.iso":                   TagCameraISO,
	"camera.exposure_compensation": TagCameraExposureComp,
	"camea.flash":                  TagCameraFlash,
	"camera.flash":                 TagCameraFlash,
	"lens.make":                    TagLensMake,
	"lens.model":                   TagLensModel,
	"lens.focal_length":            TagLensFocalLength,
	"lens.focus_distance":          TagLensFocusDistance,
	"lens.fstop":                   TagLensFStop,
	"image.width":                  TagImageWidth,
	"image.height":                 TagImageHeight,
	"image.bit_depth":              TagImageBitDepth,
	"image.color_space":            TagImageColorSpace,
	"image.sequence_number":        TagImageSequenceNumber,
	"image.original_filename":      TagOriginalFilename,
}
