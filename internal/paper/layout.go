package paper

import (
	"fmt"

	"github.com/mind-engage/papergen/internal/exam"
)

var optionLetters = []string{"A", "B", "C", "D"}

// Layout renders a selection into the fixed paper structure. The choose and
// fill sub-lists appear only when non-empty; the headings of sections B, C
// and D are always present.
func Layout(sel exam.Selection, paperType string) *Document {
	d := NewDocument()

	d.Heading(1, fmt.Sprintf("Question Paper - %s Marks", paperType))
	d.Paragraph("Time: ____    Max Marks: " + paperType)
	d.Paragraph("Name: __________  Reg No: ____")
	d.Paragraph("")

	d.Heading(2, "Section A: One mark questions")
	if len(sel.Choose) > 0 {
		d.Paragraph(fmt.Sprintf("A1. Choose the correct option: (1 × %d)", len(sel.Choose)))
		for i, q := range sel.Choose {
			d.Paragraph(fmt.Sprintf("%d. %s", i+1, q.Prompt))
			for j, opt := range q.Options {
				d.Paragraph(fmt.Sprintf("    %s. %s", optionLetters[j%len(optionLetters)], opt))
			}
		}
		d.Paragraph("")
	}
	if len(sel.Fill) > 0 {
		d.Paragraph(fmt.Sprintf("A2. Fill in the blanks: (1 × %d)", len(sel.Fill)))
		for i, q := range sel.Fill {
			d.Paragraph(fmt.Sprintf("%d. %s", i+1, q.Prompt))
		}
		d.Paragraph("")
	}

	d.Heading(2, "Section B: Two mark questions")
	for i, q := range sel.Two {
		d.Paragraph(marked(i+1, q))
	}
	d.Paragraph("")

	d.Heading(2, "Section C: Five mark questions (Answer either-or)")
	for i, p := range sel.FivePairs {
		d.Paragraph(fmt.Sprintf("%d. a) %s   (%d)\n    OR\n    b) %s   (%d)",
			i+1, p.A.Prompt, p.A.Kind.Marks(), p.B.Prompt, p.B.Kind.Marks()))
	}
	d.Paragraph("")

	d.Heading(2, "Section D: Ten mark questions")
	for i, q := range sel.Ten {
		d.Paragraph(marked(i+1, q))
	}
	return d
}

func marked(n int, q exam.Template) string {
	return fmt.Sprintf("%d. %s   (%d)", n, q.Prompt, q.Kind.Marks())
}
