// Package paper lays a question selection out as a document and writes it
// as a .docx package.
package paper

// Style names match the paragraph styles declared in styles.xml.
type Style string

const (
	StyleNormal   Style = ""
	StyleHeading1 Style = "Heading1"
	StyleHeading2 Style = "Heading2"
)

// Block is one paragraph. Newlines in Text become line breaks.
type Block struct {
	Style Style
	Text  string
}

// Document is an ordered list of paragraphs plus the body font.
type Document struct {
	Font   string
	SizePt int
	Blocks []Block
}

// NewDocument returns an empty document in Calibri 11pt.
func NewDocument() *Document {
	return &Document{Font: "Calibri", SizePt: 11}
}

func (d *Document) Heading(level int, text string) {
	s := StyleHeading1
	if level > 1 {
		s = StyleHeading2
	}
	d.Blocks = append(d.Blocks, Block{Style: s, Text: text})
}

func (d *Document) Paragraph(text string) {
	d.Blocks = append(d.Blocks, Block{Style: StyleNormal, Text: text})
}

// Texts returns the text of every block in order.
func (d *Document) Texts() []string {
	out := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		out = append(out, b.Text)
	}
	return out
}
