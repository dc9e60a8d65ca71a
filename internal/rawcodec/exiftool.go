package rawcodec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// decodeTags is the exact tag list requested from exiftool. Keeping the list
// explicit bounds the JSON payload and makes the wire struct exhaustive.
var decodeTags = []string{
	"-Make", "-Model", "-ISO", "-ShutterSpeed", "-ExposureCompensation",
	"-Flash", "-LensMake", "-LensModel", "-FocalLength", "-FocusDistance",
	"-FNumber", "-ImageWidth", "-ImageHeight", "-BitsPerSample",
	"-ColorSpace", "-SequenceNumber", "-Artist", "-DateTimeOriginal",
}

// decode runs a single exiftool JSON call against path and returns the
// parsed metadata.
func (c *ToolCodec) decode(ctx context.Context, path string) (*Metadata, error) {
	args := append([]string{"-j"}, decodeTags...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, c.exiftool, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("exiftool %q: %w: %s", path, err, firstLine(stderr.String()))
	}

	return ParseExifJSON(out)
}

// ParseExifJSON converts raw exiftool JSON output (an array with one object
// per file) into a Metadata. Exported for testing without a real exiftool
// binary.
func ParseExifJSON(data []byte) (*Metadata, error) {
	var raw []exifRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse exiftool JSON: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("exiftool JSON: no records")
	}
	return buildMetadata(&raw[0]), nil
}

// --- exiftool JSON wire types ---

// exifRecord mirrors one exiftool -j object. exiftool emits numbers or
// strings depending on tag and camera vendor, so scalar fields use the
// tolerant jsonString/jsonInt types.
type exifRecord struct {
	Make                 jsonString `json:"Make"`
	Model                jsonString `json:"Model"`
	ISO                  jsonInt    `json:"ISO"`
	ShutterSpeed         jsonString `json:"ShutterSpeed"`
	ExposureCompensation jsonString `json:"ExposureCompensation"`
	Flash                jsonString `json:"Flash"`
	LensMake             jsonString `json:"LensMake"`
	LensModel            jsonString `json:"LensModel"`
	FocalLength          jsonString `json:"FocalLength"`
	FocusDistance        jsonString `json:"FocusDistance"`
	FNumber              jsonString `json:"FNumber"`
	ImageWidth           jsonInt    `json:"ImageWidth"`
	ImageHeight          jsonInt    `json:"ImageHeight"`
	BitsPerSample        jsonInt    `json:"BitsPerSample"`
	ColorSpace           jsonString `json:"ColorSpace"`
	SequenceNumber       jsonInt    `json:"SequenceNumber"`
	Artist               jsonString `json:"Artist"`
	DateTimeOriginal     jsonString `json:"DateTimeOriginal"`
}

func buildMetadata(r *exifRecord) *Metadata {
	return &Metadata{
		Make:             string(r.Make),
		Model:            string(r.Model),
		ISO:              int(r.ISO),
		ShutterSpeed:     string(r.ShutterSpeed),
		ExposureComp:     string(r.ExposureCompensation),
		Flash:            string(r.Flash),
		LensMake:         string(r.LensMake),
		LensModel:        string(r.LensModel),
		FocalLength:      string(r.FocalLength),
		FocusDistance:    string(r.FocusDistance),
		FStop:            string(r.FNumber),
		Width:            int(r.ImageWidth),
		Height:           int(r.ImageHeight),
		BitDepth:         int(r.BitsPerSample),
		ColorSpace:       string(r.ColorSpace),
		SequenceNumber:   int(r.SequenceNumber),
		Artist:           string(r.Artist),
		DateTimeOriginal: string(r.DateTimeOriginal),
	}
}

// jsonString accepts a JSON string or number and stores its text form.
type jsonString string

func (s *jsonString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = jsonString(v)
		return nil
	}
	*s = jsonString(string(b))
	return nil
}

// jsonInt accepts a JSON number or numeric string. Non-numeric values decode
// to zero rather than failing the whole record.
type jsonInt int

func (n *jsonInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	text := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil
	}
	*n = jsonInt(v)
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return s
}
