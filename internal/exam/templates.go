package exam

import (
	"fmt"
	"regexp"
)

// Blank replaces the hidden word in fill-in-the-blank questions.
const Blank = "___"

var wordToken = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Placeholders seed each pool when a syllabus yields no topics.
var placeholders = Pools{
	KindChoose: {{Kind: KindChoose, Prompt: "Which one is true?", Options: []string{"A", "B", "C", "D"}}},
	KindFill:   {{Kind: KindFill, Prompt: "Fill in the blank: " + Blank}},
	KindTwo:    {{Kind: KindTwo, Prompt: "Explain: Topic"}},
	KindFive:   {{Kind: KindFive, Prompt: "Explain in detail: Topic"}},
	KindTen:    {{Kind: KindTen, Prompt: "Discuss: Topic"}},
}

// BuildPools expands every topic into one template per kind. Each returned
// pool is non-empty: an empty pool gets its placeholder entry.
func BuildPools(topics []string) Pools {
	pools := make(Pools, len(Kinds))
	for _, t := range topics {
		pools[KindChoose] = append(pools[KindChoose], ChooseTemplate(t))
		pools[KindFill] = append(pools[KindFill], FillTemplate(t))
		pools[KindTwo] = append(pools[KindTwo], Template{Kind: KindTwo, Prompt: "Define / Explain briefly: " + t})
		pools[KindFive] = append(pools[KindFive], Template{Kind: KindFive, Prompt: "Explain in detail (5m): " + t})
		pools[KindTen] = append(pools[KindTen], Template{Kind: KindTen, Prompt: "Discuss in detail (10m): " + t})
	}
	for _, k := range Kinds {
		if len(pools[k]) == 0 {
			pools[k] = append([]Template(nil), placeholders[k]...)
		}
	}
	return pools
}

// ChooseTemplate builds the multiple-choice variant. The topic itself is
// always option A; options are meant to be edited by hand afterwards.
func ChooseTemplate(topic string) Template {
	return Template{
		Kind:   KindChoose,
		Prompt: fmt.Sprintf(`Which of the following is correct about "%s"?`, topic),
		Options: []string{
			topic,
			"Not related to " + topic,
			"Partially related to " + topic,
			"None of the above",
		},
	}
}

// FillTemplate blanks out the first word of the topic.
func FillTemplate(topic string) Template {
	loc := wordToken.FindStringIndex(topic)
	if loc == nil {
		return Template{Kind: KindFill, Prompt: "Fill in the blank: " + Blank + " about " + topic}
	}
	return Template{Kind: KindFill, Prompt: topic[:loc[0]] + Blank + topic[loc[1]:]}
}
