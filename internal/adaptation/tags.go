package adaptation

import (
	"fmt"
)

// normalizeTags truncates the tag list to the channel's limit, keeping
// canonical insertion order. Tags have no fatal conditions.
func normalizeTags(tags []string, schema *ChannelSchema) ([]string, *Finding) {
	if schema.TagLimit <= 0 || len(tags) <= schema.TagLimit {
		return tags, nil
	}

	return tags[:schema.TagLimit], &Finding{
		Field: FieldTags,
		Code:  CodeAutoCorrected,
		Message: fmt.Sprintf("%d tags dropped to meet the %s limit of %d",
			len(tags)-schema.TagLimit, schema.Name, schema.TagLimit),
	}
}
