package naming

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/backmassage/rawpress/internal/rawcodec"
)

// exifTimeLayout is the fixed input pattern for the EXIF origin-date string
// ("YYYY:MM:DD HH:MM:SS").
const exifTimeLayout = "2006:01:02 15:04:05"

// Render produces the output filename (without directory or extension) for
// one source file: literal segments verbatim, date/time segments formatted
// from the metadata's origin date, metadata segments via the expander.
//
// The origin date is parsed at most once per call and shared by every
// date/time segment. A missing or unparsable origin date renders every
// date/time segment as the empty string; it is never a render error.
func (f *Format) Render(md *rawcodec.Metadata, stem string) string {
	var b strings.Builder

	var (
		date       time.Time
		dateOK     bool
		dateParsed bool
	)

	for _, seg := range f.segments {
		switch seg.Kind {
		case KindLiteral:
			b.WriteString(seg.Text)

		case KindDateTime:
			if !dateParsed {
				dateParsed = true
				if md.DateTimeOriginal != "" {
					if t, err := time.Parse(exifTimeLayout, md.DateTimeOriginal); err == nil {
						date = t
						dateOK = true
					}
				}
			}
			if dateOK {
				b.WriteString(strftime.Format(seg.Text, date))
			}

		case KindMetadata:
			b.WriteString(expandTag(seg.Tag, md, stem))
		}
	}

	return b.String()
}
