package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_SegmentSequences(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []Segment
	}{
		{
			name:     "literal only",
			template: "vacation-shots",
			want: []Segment{
				literalSeg("vacation-shots"),
				metadataSeg(TagOriginalFilename),
			},
		},
		{
			name:     "datetime gets filename appended",
			template: "%Y",
			want: []Segment{
				dateTimeSeg("%Y"),
				metadataSeg(TagOriginalFilename),
			},
		},
		{
			name:     "mixed expansions and tokens",
			template: "%Y-%m-%d_{camera.make}",
			want: []Segment{
				dateTimeSeg("%Y"),
				literalSeg("-"),
				dateTimeSeg("%m"),
				literalSeg("-"),
				dateTimeSeg("%d"),
				literalSeg("_"),
				metadataSeg(TagCameraMake),
				metadataSeg(TagOriginalFilename),
			},
		},
		{
			name:     "escaped double brace prints one",
			template: "{{%Y{image.original_filename}",
			want: []Segment{
				literalSeg("{"),
				dateTimeSeg("%Y"),
				metadataSeg(TagOriginalFilename),
			},
		},
		{
			name:     "explicit filename not re-appended",
			template: "{image.original_filename}_{camera.iso}",
			want: []Segment{
				metadataSeg(TagOriginalFilename),
				literalSeg("_"),
				metadataSeg(TagCameraISO),
			},
		},
		{
			name:     "unknown format letter still parses",
			template: "%Q",
			want: []Segment{
				dateTimeSeg("%Q"),
				metadataSeg(TagOriginalFilename),
			},
		},
		{
			name:     "close brace is a plain literal",
			template: "a}b",
			want: []Segment{
				literalSeg("a}b"),
				metadataSeg(TagOriginalFilename),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Segments())
		})
	}
}

func TestCompile_AppendsOriginalFilenameExactlyOnce(t *testing.T) {
	templates := []string{"", "%Y", "shot_{camera.model}", "{image.original_filename}"}
	for _, tpl := range templates {
		f, err := Compile(tpl)
		require.NoError(t, err, tpl)

		count := 0
		for _, s := range f.Segments() {
			if s.Kind == KindMetadata && s.Tag == TagOriginalFilename {
				count++
			}
		}
		assert.Equal(t, 1, count, "template %q", tpl)
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		wantKind   ParseErrorKind
		wantOffset int
		wantLength int
	}{
		{
			name:     "unterminated expansion",
			template: "{camera.make",
			wantKind: ParseUnterminatedExpansion, wantOffset: 0, wantLength: 12,
		},
		{
			name:     "lone open brace",
			template: "abc{",
			wantKind: ParseUnterminatedExpansion, wantOffset: 3, wantLength: 1,
		},
		{
			name:     "unknown key",
			template: "{not.a.real.key}",
			wantKind: ParseInvalidExpansion, wantOffset: 0, wantLength: 16,
		},
		{
			name:     "empty expansion",
			template: "{}",
			wantKind: ParseInvalidExpansion, wantOffset: 0, wantLength: 2,
		},
		{
			name:     "truncated datetime token",
			template: "name_%",
			wantKind: ParseInvalidExpansion, wantOffset: 5, wantLength: 1,
		},
		{
			name:     "case sensitive keys",
			template: "{Camera.Make}",
			wantKind: ParseInvalidExpansion, wantOffset: 0, wantLength: 13,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.template)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
			assert.Equal(t, tt.wantKind, perr.Kind)
			assert.Equal(t, tt.wantOffset, perr.Offset)
			assert.Equal(t, tt.wantLength, perr.Length)
			assert.Equal(t, tt.template, perr.Source)
		})
	}
}

func TestCompile_FlashKeySpellings(t *testing.T) {
	// The historical key and the corrected spelling both resolve.
	for _, tpl := range []string{"{camea.flash}", "{camera.flash}"} {
		f, err := Compile(tpl)
		require.NoError(t, err, tpl)
		require.NotEmpty(t, f.Segments())
		assert.Equal(t, metadataSeg(TagCameraFlash), f.Segments()[0], tpl)
	}
}

func TestCompile_Deterministic(t *testing.T) {
	const tpl = "{{%Y-%m_{lens.model}_{camera.iso}"
	a, err := Compile(tpl)
	require.NoError(t, err)
	b, err := Compile(tpl)
	require.NoError(t, err)
	assert.Equal(t, a.Segments(), b.Segments())
}
