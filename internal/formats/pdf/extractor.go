package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mind-engage/papergen/internal/formats"
)

func init() {
	formats.Register(formats.FormatPDF, New())
}

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract concatenates the plain text of every page, each followed by a
// newline. A page with no extractable text contributes only the newline.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	r, pages, err := open(f)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		sb.WriteString(pageText(r, i))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// open parses the document trailer and page tree. The reader panics on some
// malformed cross-reference tables.
func open(f *os.File) (r *pdf.Reader, pages int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r, pages, err = nil, 0, fmt.Errorf("pdf open: %v", rec)
		}
	}()
	fi, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	r, err = pdf.NewReader(f, fi.Size())
	if err != nil {
		return nil, 0, fmt.Errorf("pdf open: %w", err)
	}
	return r, r.NumPage(), nil
}

// pageText returns the plain text of page i, or "" when the page is missing
// or its content cannot be decoded.
func pageText(r *pdf.Reader, i int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()
	p := r.Page(i)
	if p.V.IsNull() {
		return ""
	}
	t, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return t
}
