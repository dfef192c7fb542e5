package adaptation

import (
	"fmt"
	"math"

	"adaptly/internal/models"
)

// normalizeImages enforces the channel's gallery constraints. Too few images
// is fatal (the engine never invents placeholders); too many keeps the first
// N since canonical ordering reflects priority. Aspect-ratio mismatches on
// images with known dimensions produce a crop recommendation, or a fatal
// finding on channels that opted into strict enforcement. The engine never
// re-encodes images itself.
func normalizeImages(images []models.ProductImage, schema *ChannelSchema) ([]string, []Finding) {
	var findings []Finding

	if len(images) < schema.MinImages {
		findings = append(findings, Finding{
			Field: FieldImages,
			Code:  CodeUnresolvable,
			Message: fmt.Sprintf("product has %d images, %s requires at least %d",
				len(images), schema.Name, schema.MinImages),
		})
	}

	kept := images
	if schema.MaxImages > 0 && len(images) > schema.MaxImages {
		kept = images[:schema.MaxImages]
		findings = append(findings, Finding{
			Field: FieldImages,
			Code:  CodeAutoCorrected,
			Message: fmt.Sprintf("%d images removed to meet the %s limit of %d",
				len(images)-schema.MaxImages, schema.Name, schema.MaxImages),
		})
	}

	if rule := schema.AspectRatio; rule != nil {
		for i, img := range kept {
			if img.Width <= 0 || img.Height <= 0 {
				continue
			}
			ratio := float64(img.Width) / float64(img.Height)
			if math.Abs(ratio-rule.Ratio()) <= rule.Tolerance {
				continue
			}
			code := CodeAutoCorrected
			if rule.Fatal {
				code = CodeUnresolvable
			}
			findings = append(findings, Finding{
				Field: FieldImages,
				Code:  code,
				Message: fmt.Sprintf("image %d is %dx%d, %s expects %d:%d; crop before publishing",
					i+1, img.Width, img.Height, schema.Name, rule.Width, rule.Height),
			})
		}
	}

	urls := make([]string, len(kept))
	for i, img := range kept {
		urls[i] = img.URL
	}
	return urls, findings
}
