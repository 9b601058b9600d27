package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/httpie/packages/core/config"
	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Renderer prints a response as a status line, a header block and a body.
// Colors are always emitted, whether or not the writer is a terminal.
type Renderer struct {
	writer      io.Writer
	highlighter *Highlighter
	logger      *zap.Logger
	status      *color.Color
	headerName  *color.Color
}

type RendererOption func(*Renderer)

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		writer:      os.Stdout,
		highlighter: NewHighlighter(config.DefaultTheme),
		logger:      zap.NewNop(),
		status:      color.New(color.FgBlue),
		headerName:  color.New(color.FgGreen),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.status.EnableColor()
	r.headerName.EnableColor()
	return r
}

func WithWriter(w io.Writer) RendererOption {
	return func(r *Renderer) {
		r.writer = w
	}
}

// WithTheme selects the chroma style for highlighted bodies
func WithTheme(name string) RendererOption {
	return func(r *Renderer) {
		r.highlighter = NewHighlighter(name)
	}
}

func WithLogger(l *zap.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Render writes the whole response. It stops at the first write error and
// returns it.
func (r *Renderer) Render(resp *http.Response) error {
	w := &errWriter{w: r.writer}

	r.printStatus(w, resp)
	r.printHeaders(w, resp)

	lang := Classify(resp)
	r.logger.Debug("rendering body",
		zap.String("content_type", resp.ContentType),
		zap.String("media_type", resp.MediaType),
		zap.String("language", lang),
		zap.String("theme", r.highlighter.StyleName()))

	if w.err == nil {
		r.printBody(w, lang, resp.Body)
	}
	return w.err
}

func (r *Renderer) printStatus(w io.Writer, resp *http.Response) {
	fmt.Fprintf(w, "%s\n\n", r.status.Sprintf("%s %s", resp.Proto, resp.Status))
}

func (r *Renderer) printHeaders(w io.Writer, resp *http.Response) {
	for _, h := range resp.Headers {
		fmt.Fprintf(w, "%s: %s\n", r.headerName.Sprint(h.Name), quoteHeaderValue(h.Value))
	}
	fmt.Fprint(w, "\n")
}

func (r *Renderer) printBody(w *errWriter, lang, body string) {
	if lang == "" {
		fmt.Fprintln(w, body)
		return
	}
	if err := r.highlighter.Highlight(w, body, lang); err != nil && w.err == nil {
		w.err = err
	}
}

// Classify picks the highlighter language for the response body, or ""
// when the body is printed as is.
func Classify(resp *http.Response) string {
	switch {
	case resp.IsJSON():
		return LangJSON
	case resp.IsHTML():
		return LangHTML
	default:
		return ""
	}
}

// quoteHeaderValue quotes v byte by byte: printable ASCII and tab pass
// through, '"' is escaped, anything else becomes \xNN.
func quoteHeaderValue(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\t' || (c >= 0x20 && c < 0x7f):
			b.WriteByte(c)
		default:
			b.WriteString(`\x`)
			b.WriteString(strconv.FormatUint(uint64(c), 16))
		}
	}
	b.WriteByte('"')
	return b.String()
}

// errWriter remembers the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
