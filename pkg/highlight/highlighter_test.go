package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/motion/pkg/highlight"
)

func goSettings() highlight.Settings {
	return highlight.Settings{
		Theme:    highlight.PresetSelection(highlight.PresetMonokai),
		Language: "go",
	}
}

// requireCoversLine asserts spans are contiguous, ascending, and cover
// the whole line.
func requireCoversLine(t *testing.T, spans []highlight.Span, line string) {
	t.Helper()
	require.NotEmpty(t, spans)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, len(line), spans[len(spans)-1].End)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].End, spans[i].Start, "span %d not contiguous", i)
	}
	for _, s := range spans {
		assert.Less(t, s.Start, s.End, "empty spans must be dropped")
	}
}

func TestHighlighter_SpansCoverLine(t *testing.T) {
	h := highlight.New(goSettings())

	line := `var greeting = "hello"`
	spans := h.HighlightLine(line)

	requireCoversLine(t, spans, line)
	assert.Equal(t, 1, h.Line())
}

func TestHighlighter_UnknownLanguageFallsBack(t *testing.T) {
	h := highlight.New(highlight.Settings{
		Theme:    highlight.PresetSelection(highlight.PresetGitHub),
		Language: "no-such-language",
	})

	line := "some plain text"
	requireCoversLine(t, h.HighlightLine(line), line)
}

func TestHighlighter_CachesUnchangedLines(t *testing.T) {
	h := highlight.New(goSettings())

	first := h.HighlightLine("package main")
	second := h.HighlightLine("func main() {}")
	require.Equal(t, 2, h.Line())

	h.ChangeLine(0)
	assert.Equal(t, 0, h.Line())

	// Unchanged text replays the cached spans.
	again := h.HighlightLine("package main")
	assert.Equal(t, first, again)
	assert.Equal(t, second, h.HighlightLine("func main() {}"))
}

func TestHighlighter_EditedLineInvalidatesTail(t *testing.T) {
	h := highlight.New(goSettings())

	h.HighlightLine("package main")
	h.HighlightLine("func a() {}")
	h.HighlightLine("func b() {}")

	h.ChangeLine(1)
	edited := h.HighlightLine("func edited() {}")
	requireCoversLine(t, edited, "func edited() {}")
	assert.Equal(t, 2, h.Line())

	// The line after the edit recomputes rather than replaying stale
	// spans for different text.
	requireCoversLine(t, h.HighlightLine("return"), "return")
}

func TestHighlighter_ChangeLinePastEndClamps(t *testing.T) {
	h := highlight.New(goSettings())
	h.HighlightLine("package main")

	h.ChangeLine(99)
	assert.Equal(t, 1, h.Line())
}

func TestHighlighter_UpdateRestartsFromTop(t *testing.T) {
	h := highlight.New(goSettings())
	h.HighlightLine("package main")

	settings := goSettings()
	settings.Theme = highlight.PresetSelection(highlight.PresetNord)
	h.Update(settings)

	assert.Equal(t, 0, h.Line())
	line := "package main"
	requireCoversLine(t, h.HighlightLine(line), line)
}

func TestHighlighter_BlendedSelectionIsUsable(t *testing.T) {
	from := highlight.PresetSelection(highlight.PresetMonokai)
	to := highlight.PresetSelection(highlight.PresetGitHub)

	h := highlight.New(highlight.Settings{
		Theme:    from.Lerp(to, 0.5),
		Language: "go",
	})

	line := `if x := 1; x > 0 {`
	requireCoversLine(t, h.HighlightLine(line), line)
}
