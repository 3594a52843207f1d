package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mind-engage/papergen/internal/formats"
)

func init() {
	formats.Register(formats.FormatDocx, New())
}

const documentPart = "word/document.xml"

var ErrNoDocumentPart = errors.New("docx: word/document.xml not found")

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract returns the body paragraphs of a .docx joined with newlines.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("docx open: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		paras, err := Paragraphs(rc)
		if err != nil {
			return "", err
		}
		return strings.Join(paras, "\n"), nil
	}
	return "", ErrNoDocumentPart
}

// Paragraphs streams a WordprocessingML document part and returns the text
// of each paragraph that is a direct child of w:body, in order. Only runs of
// that paragraph (directly or under a hyperlink) contribute text, so tables,
// content controls, text boxes and alternate-content fallbacks are skipped.
func Paragraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		out    []string
		cur    strings.Builder
		stack  []string // local names of open elements
		inText bool
	)
	para := -1 // stack index of the open body paragraph
	// inRun reports whether the innermost open element is a run of the body
	// paragraph.
	inRun := func() bool {
		if para < 0 {
			return false
		}
		rest := stack[para+1:]
		switch len(rest) {
		case 1:
			return rest[0] == "r"
		case 2:
			return rest[0] == "hyperlink" && rest[1] == "r"
		}
		return false
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			switch name {
			case "p":
				if para < 0 && len(stack) > 0 && stack[len(stack)-1] == "body" {
					para = len(stack)
					cur.Reset()
				}
			case "t":
				inText = inRun()
			case "tab":
				if inRun() {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if inRun() {
					cur.WriteByte('\n')
				}
			}
			stack = append(stack, name)
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			stack = stack[:len(stack)-1]
			switch t.Name.Local {
			case "p":
				if len(stack) == para {
					out = append(out, cur.String())
					para = -1
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return out, nil
}
