package exam

// Kind identifies a question-template variant and its mark weight.
type Kind string

const (
	KindChoose Kind = "choose" // 1 mark, multiple choice
	KindFill   Kind = "fill"   // 1 mark, fill in the blank
	KindTwo    Kind = "two"    // 2 marks, short answer
	KindFive   Kind = "five"   // 5 marks, either/or
	KindTen    Kind = "ten"    // 10 marks, long answer
)

// Kinds lists every variant in paper order.
var Kinds = []Kind{KindChoose, KindFill, KindTwo, KindFive, KindTen}

// Marks returns the mark value printed next to a question of this kind.
func (k Kind) Marks() int {
	switch k {
	case KindTwo:
		return 2
	case KindFive:
		return 5
	case KindTen:
		return 10
	default:
		return 1
	}
}

// Template is one generated question. Only KindChoose carries Options.
type Template struct {
	Kind    Kind     `json:"kind"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

// Pools maps each kind to its ordered templates.
type Pools map[Kind][]Template

// Pair is an either/or five-mark question; the examinee answers one side.
type Pair struct {
	A Template `json:"a"`
	B Template `json:"b"`
}

// Selection is the drawn subset of a paper, ready for layout.
type Selection struct {
	Blueprint Blueprint  `json:"blueprint"`
	Choose    []Template `json:"choose"`
	Fill      []Template `json:"fill"`
	Two       []Template `json:"two"`
	FivePairs []Pair     `json:"five_pairs"`
	Ten       []Template `json:"ten"`
}
