package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Settings configures a [Highlighter].
type Settings struct {
	// Theme dictates the color table used for highlighting.
	Theme Selection
	// Language is a file extension or language name; chroma resolves
	// it to a grammar. Unresolvable tokens fall back to plain text,
	// never an error.
	Language string
}

// Span is one highlighted byte range of a line.
type Span struct {
	// Start and End are byte offsets into the line, half-open.
	Start, End int
	Style      Style
}

// Highlighter turns lines of text into style spans using a chroma
// lexer and a resolved theme.
//
// Computed spans are cached per line so re-rendering an unchanged
// document costs nothing; editing a line invalidates the cache from
// that line onward via [Highlighter.ChangeLine].
type Highlighter struct {
	lexer chroma.Lexer
	theme *Theme

	// styles memoizes the token-to-style walk for the current theme.
	styles map[chroma.TokenType]Style

	// lines holds cached results indexed by line number.
	lines   []cachedLine
	current int
}

type cachedLine struct {
	text  string
	spans []Span
}

// New creates a highlighter for the given settings, positioned at
// line 0.
func New(settings Settings) *Highlighter {
	h := &Highlighter{}
	h.configure(settings)
	return h
}

// Update applies new settings and restarts from line 0. Call this when
// the theme or language changes, including every animation frame of a
// theme transition.
func (h *Highlighter) Update(settings Settings) {
	h.configure(settings)
}

func (h *Highlighter) configure(settings Settings) {
	lexer := lexers.Get(settings.Language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	h.lexer = chroma.Coalesce(lexer)
	h.theme = settings.Theme.Theme()
	h.styles = make(map[chroma.TokenType]Style)
	h.lines = h.lines[:0]
	h.current = 0
}

// ChangeLine invalidates cached results from the given line onward and
// repositions the highlighter there. Lines before it stay cached.
func (h *Highlighter) ChangeLine(line int) {
	if line > len(h.lines) {
		line = len(h.lines)
	}
	h.lines = h.lines[:line]
	h.current = line
}

// Line returns the line the next HighlightLine call will process.
func (h *Highlighter) Line() int {
	return h.current
}

// HighlightLine returns the style spans for the next line, consuming
// one line position. Cached results are reused when the text at this
// line is unchanged.
func (h *Highlighter) HighlightLine(text string) []Span {
	if h.current < len(h.lines) && h.lines[h.current].text == text {
		spans := h.lines[h.current].spans
		h.current++
		return spans
	}

	// The line differs from what was cached here; everything after it
	// is stale too.
	h.lines = h.lines[:h.current]

	spans := h.tokenize(text)
	h.lines = append(h.lines, cachedLine{text: text, spans: spans})
	h.current++
	return spans
}

// tokenize runs the lexer over one line and maps tokens to spans.
func (h *Highlighter) tokenize(text string) []Span {
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		// Malformed input renders as one unstyled span.
		return []Span{{Start: 0, End: len(text), Style: h.theme.Background()}}
	}

	var spans []Span
	offset := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		end := offset + len(tok.Value)
		if end > len(text) {
			end = len(text)
		}
		if end > offset {
			spans = append(spans, Span{Start: offset, End: end, Style: h.styleFor(tok.Type)})
		}
		offset = end
	}
	return spans
}

// styleFor resolves and memoizes the style for a token type.
func (h *Highlighter) styleFor(tok chroma.TokenType) Style {
	if s, ok := h.styles[tok]; ok {
		return s
	}
	s, _ := h.theme.StyleFor(tok)
	h.styles[tok] = s
	return s
}
