package aigen

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxPromptTextLength caps user-provided text embedded in prompts.
const MaxPromptTextLength = 4000

var (
	excessNewlines  = regexp.MustCompile(`\n{3,}`)
	innerWhitespace = regexp.MustCompile(`[ \t]+`)
)

// SanitizeText prepares user-provided text for embedding in a prompt:
// control characters are stripped (newlines kept), XML-ish tag boundaries
// are neutralized so the text cannot close the enclosing data section,
// whitespace is normalized, and the result is capped at
// MaxPromptTextLength runes.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var b strings.Builder
	for _, r := range text {
		if r == '\n' {
			b.WriteRune(r)
			continue
		}
		if unicode.IsControl(r) || !unicode.IsPrint(r) && r != ' ' {
			continue
		}
		switch r {
		case '<':
			b.WriteRune('(')
		case '>':
			b.WriteRune(')')
		default:
			b.WriteRune(r)
		}
	}
	text = b.String()

	text = excessNewlines.ReplaceAllString(text, "\n\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(innerWhitespace.ReplaceAllString(line, " "))
	}
	text = strings.TrimSpace(strings.Join(lines, "\n"))

	runes := []rune(text)
	if len(runes) > MaxPromptTextLength {
		text = string(runes[:MaxPromptTextLength])
	}
	return text
}
