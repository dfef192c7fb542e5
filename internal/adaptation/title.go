package adaptation

import (
	"fmt"
	"strings"
	"unicode"
)

// normalizeTitle passes a compliant title through unchanged and truncates an
// over-long one at the nearest word boundary. No ellipsis is appended, so
// the returned value is always within the declared limit.
func normalizeTitle(title string, schema *ChannelSchema) (string, *Finding) {
	if title == "" || schema.TitleMaxLength <= 0 {
		return title, nil
	}

	origLen := len([]rune(title))
	if origLen <= schema.TitleMaxLength {
		return title, nil
	}

	truncated := truncateAtWord(title, schema.TitleMaxLength)
	return truncated, &Finding{
		Field: FieldTitle,
		Code:  CodeAutoCorrected,
		Message: fmt.Sprintf("title truncated from %d to %d characters (%s limit is %d)",
			origLen, len([]rune(truncated)), schema.Name, schema.TitleMaxLength),
	}
}

// truncateAtWord cuts s to at most max runes, preferring the last word
// boundary within the limit. A single word longer than max is cut hard.
func truncateAtWord(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	cut := runes[:max]
	boundary := -1
	for i, r := range cut {
		if unicode.IsSpace(r) {
			boundary = i
		}
	}
	if boundary > 0 {
		cut = cut[:boundary]
	}
	return strings.TrimRightFunc(string(cut), unicode.IsSpace)
}
