package adaptation

import (
	"fmt"
)

// normalizeDescription applies the same word-boundary truncation policy as
// titles, but only when the schema declares a description limit at all.
func normalizeDescription(description string, schema *ChannelSchema) (string, *Finding) {
	if description == "" || schema.DescriptionMaxLength <= 0 {
		return description, nil
	}

	origLen := len([]rune(description))
	if origLen <= schema.DescriptionMaxLength {
		return description, nil
	}

	truncated := truncateAtWord(description, schema.DescriptionMaxLength)
	return truncated, &Finding{
		Field: FieldDescription,
		Code:  CodeAutoCorrected,
		Message: fmt.Sprintf("description truncated from %d to %d characters (%s limit is %d)",
			origLen, len([]rune(truncated)), schema.Name, schema.DescriptionMaxLength),
	}
}
