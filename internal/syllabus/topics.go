// Package syllabus turns extracted document text into candidate topics.
package syllabus

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinTopicLen is the shortest cleaned line, in characters, kept as a topic.
const MinTopicLen = 3

// bulletPrefix matches a leading run of list markers: hyphens, asterisks,
// bullet glyphs, digits, periods, parentheses and whitespace. RE2's \s is
// ASCII only, so Unicode separators (no-break and ideographic spaces from
// PDF text), the C0 information separators and NEL are listed too.
var bulletPrefix = regexp.MustCompile(`^[-*•◦▪‣●\p{Nd}.()\s\p{Z}\x{1c}-\x{1f}\x{85}]+`)

// Topic is one cleaned, deduplicated syllabus line.
type Topic struct {
	Text string
	Key  string // lowercased Text, used for deduplication
}

// CleanLine trims a raw line and strips its bullet or numbering prefix.
func CleanLine(raw string) string {
	l := strings.TrimSpace(raw)
	l = bulletPrefix.ReplaceAllString(l, "")
	return strings.TrimSpace(l)
}

// ExtractTopics splits text into lines, cleans each, drops noise shorter
// than MinTopicLen and removes case-insensitive duplicates, keeping the
// first occurrence. The result is empty for empty or all-noise input.
func ExtractTopics(text string) []Topic {
	var topics []Topic
	seen := map[string]bool{}
	for _, raw := range splitLines(text) {
		l := CleanLine(raw)
		if utf8.RuneCountInString(l) < MinTopicLen {
			continue
		}
		key := strings.ToLower(l)
		if seen[key] {
			continue
		}
		seen[key] = true
		topics = append(topics, Topic{Text: l, Key: key})
	}
	return topics
}

// TopicLines is ExtractTopics reduced to the topic texts.
func TopicLines(text string) []string {
	topics := ExtractTopics(text)
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		out = append(out, t.Text)
	}
	return out
}

// splitLines breaks on every line boundary a text editor would honour.
// Empty lines are dropped here; they would fail the length filter anyway.
func splitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
			return true
		}
		return false
	})
}
