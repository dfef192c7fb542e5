package adaptation

import (
	"fmt"
	"strings"
)

// normalizeCategory maps the seller's own category label to the channel's
// taxonomy. A label that already matches a channel label passes through, so
// re-adapting an adapted payload stays a fixed point. Unmapped labels fall
// back to the schema's generic category when one exists; without a fallback
// the finding is fatal only if the channel requires a category, otherwise
// the field is omitted with a warning.
func normalizeCategory(category string, schema *ChannelSchema) (string, bool, *Finding) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", false, nil
	}

	if mapped, ok := schema.CategoryMap[strings.ToLower(category)]; ok {
		return mapped, true, nil
	}
	for _, channelLabel := range schema.CategoryMap {
		if channelLabel == category {
			return category, true, nil
		}
	}
	if schema.GenericCategory != "" && category == schema.GenericCategory {
		return category, true, nil
	}

	if schema.GenericCategory != "" {
		return schema.GenericCategory, true, &Finding{
			Field: FieldCategory,
			Code:  CodeAutoCorrected,
			Message: fmt.Sprintf("category %q is not mapped for %s; using generic category %q",
				category, schema.Name, schema.GenericCategory),
		}
	}

	if schema.Requires(FieldCategory) {
		return "", false, &Finding{
			Field: FieldCategory,
			Code:  CodeUnresolvable,
			Message: fmt.Sprintf("category %q has no mapping for %s and the channel declares no generic fallback",
				category, schema.Name),
		}
	}

	return "", false, &Finding{
		Field: FieldCategory,
		Code:  CodeAutoCorrected,
		Message: fmt.Sprintf("category %q has no mapping for %s; field omitted",
			category, schema.Name),
	}
}
