package output

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	LangJSON = "json"
	LangHTML = "html"
)

// Highlighter colors source text with 24-bit ANSI escapes.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewHighlighter uses the named chroma style, falling back to chroma's
// default style for unknown names.
func NewHighlighter(theme string) *Highlighter {
	return &Highlighter{
		style:     styles.Get(theme),
		formatter: formatters.TTY16m,
	}
}

// Highlight writes body highlighted as lang. Line terminators are kept as
// they are; a newline is added when the body does not end with one.
func (h *Highlighter) Highlight(w io.Writer, body, lang string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	// explicit options leave EnsureLF off, so \r\n survives tokenising
	it, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, body)
	if err != nil {
		return err
	}
	tokens := trimAddedNewline(it.Tokens(), body)

	if err := h.formatter.Format(w, h.style, chroma.Literator(tokens...)); err != nil {
		return err
	}
	if !strings.HasSuffix(body, "\n") {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// trimAddedNewline drops the newline a lexer with EnsureNL appends to its
// input, leaving tokens that spell out body exactly.
func trimAddedNewline(tokens []chroma.Token, body string) []chroma.Token {
	total := 0
	for _, t := range tokens {
		total += len(t.Value)
	}
	if total != len(body)+1 || len(tokens) == 0 {
		return tokens
	}
	last := &tokens[len(tokens)-1]
	if strings.HasSuffix(last.Value, "\n") {
		last.Value = strings.TrimSuffix(last.Value, "\n")
	}
	return tokens
}

// StyleName reports the style in use.
func (h *Highlighter) StyleName() string {
	return h.style.Name
}
