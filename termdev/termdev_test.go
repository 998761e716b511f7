package termdev

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/linefill"
	"github.com/npillmayer/linefill/glyph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMonospaceWidths(t *testing.T) {
	m := NewMonospace(1, false)
	tests := []struct {
		r rune
		w int
	}{
		{'a', 1},
		{' ', 1},
		{'\u4e16', 2}, // CJK ideograph
		{'\u0301', 0}, // combining acute accent
		{'\b', -1},
		{'\t', 0},
	}
	for _, tt := range tests {
		if got := m.Width(tt.r, 0); got != tt.w {
			t.Errorf("width of %q: got %d, want %d", tt.r, got, tt.w)
		}
	}
	if got := NewMonospace(10, false).Width('\u4e16', 0); got != 20 {
		t.Errorf("width in units of 10: got %d, want 20", got)
	}
	ambiguous := '\u00b1' // plus-minus sign
	assert.Equal(t, 1, NewMonospace(1, false).Width(ambiguous, 0))
	assert.Equal(t, 2, NewMonospace(1, true).Width(ambiguous, 0))
}

func TestEastAsianLocales(t *testing.T) {
	assert.True(t, IsEastAsian(language.Make("ja-JP")))
	assert.True(t, IsEastAsian(language.Make("zh-Hans")))
	assert.False(t, IsEastAsian(language.Make("en-US")))
	assert.False(t, IsEastAsian(language.Make("de-AT")))
}

func TestPage(t *testing.T) {
	p := NewPage(3)
	assert.Equal(t, 3, p.Remaining())
	assert.False(t, p.Advance(2))
	assert.Equal(t, 1, p.Remaining())
	assert.True(t, p.Advance(1))
	assert.Equal(t, 2, p.Number())
	assert.Equal(t, 3, p.Remaining())
	//
	endless := NewPage(0)
	assert.False(t, endless.Advance(1000))
	assert.Greater(t, endless.Remaining(), 1000)
}

func TestWriteFormattedText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linefill")
	defer teardown()
	//
	var buf bytes.Buffer
	w := NewWriter(&buf, 1)
	src := glyph.StringSource("aa bb cc dd ee ff gg hh ii", 0)
	f, err := linefill.NewFormatter(src, w, linefill.WithLineLength(12),
		linefill.WithHyphenation(0), linefill.WithWidths(NewMonospace(1, false)))
	require.NoError(t, err)
	require.NoError(t, f.Run(context.Background()))
	require.NoError(t, w.Flush())
	assert.Equal(t, "aa  bb cc dd\nee ff gg  hh\nii\n", buf.String())
}

func TestWriterUnitsAndSpacing(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 10)
	w.SetLineSpacing(2)
	page := NewPage(4)
	w.SetPage(page, true)
	src := glyph.StringSource("  one two\nthree", 0)
	f, err := linefill.NewFormatter(src, w, linefill.WithLineLength(200),
		linefill.WithWidths(NewMonospace(10, false)), linefill.WithPageBudget(page, 2))
	require.NoError(t, err)
	require.NoError(t, f.Run(context.Background()))
	require.NoError(t, w.Flush())
	assert.Equal(t, "  one two three\n\n", buf.String())
	assert.Equal(t, 2, page.Line())
}

func TestFormFeedBetweenPages(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 1)
	w.SetPage(NewPage(2), true)
	f, err := linefill.NewFormatter(glyph.StringSource("a\nb\nc\n", 0), w,
		linefill.WithFill(false))
	require.NoError(t, err)
	require.NoError(t, f.Run(context.Background()))
	require.NoError(t, w.Flush())
	assert.Equal(t, "a\nb\n\fc\n", buf.String())
}

type failingWriter struct{}

var errDeviceGone = errors.New("device gone")

func (failingWriter) Write(p []byte) (int, error) { return 0, errDeviceGone }

func TestWriteErrorStopsFormatting(t *testing.T) {
	w := NewWriter(failingWriter{}, 1)
	text := strings.Repeat("abcdefghij\n", 500)
	f, err := linefill.NewFormatter(glyph.StringSource(text, 0), w, linefill.WithFill(false))
	require.NoError(t, err)
	assert.ErrorIs(t, f.Run(context.Background()), errDeviceGone)
	assert.Less(t, f.Emitted(), 500)
	assert.ErrorIs(t, w.Flush(), errDeviceGone)
}
