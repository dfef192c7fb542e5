package adaptation

import (
	"fmt"
	"strings"

	"adaptly/internal/models"
)

// missingRequiredFields checks the schema's required-field set against the
// canonical record before any value transformation runs, so missing-field
// errors always precede formatting warnings. The value normalizers treat an
// empty value as nothing-to-do and never re-report it.
func missingRequiredFields(p *models.Product, schema *ChannelSchema) []Finding {
	var findings []Finding
	for _, field := range schema.RequiredFields {
		if !fieldPresent(p, field) {
			findings = append(findings, Finding{
				Field:   field,
				Code:    CodeRequiredMissing,
				Message: fmt.Sprintf("%s is required by %s but is empty", field, schema.Name),
			})
		}
	}
	return findings
}

func fieldPresent(p *models.Product, field string) bool {
	switch field {
	case FieldTitle:
		return strings.TrimSpace(p.Title) != ""
	case FieldDescription:
		return strings.TrimSpace(p.Description) != ""
	case FieldPrice:
		return p.Price.IsPositive()
	case FieldCurrency:
		return p.Currency != ""
	case FieldSKU:
		return p.SKU != nil && *p.SKU != ""
	case FieldCategory:
		return strings.TrimSpace(p.Category) != ""
	case FieldImages:
		return len(p.Images) > 0
	case FieldTags:
		return len(p.Tags) > 0
	case FieldBrand:
		return p.Brand != nil && *p.Brand != ""
	default:
		return true
	}
}
