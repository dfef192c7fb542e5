package adaptation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"adaptly/internal/currency"
)

// normalizePrice passes a supported currency through untouched. An
// unsupported one is converted to the first supported currency the rate
// table covers, in the schema's declared order, so the target choice is
// deterministic. Price ambiguity is never silently resolved: with no
// conversion path the finding is fatal.
func normalizePrice(amount decimal.Decimal, code string, schema *ChannelSchema, rates *currency.Table) (decimal.Decimal, string, *Finding) {
	if schema.SupportsCurrency(code) {
		return amount, code, nil
	}

	for _, target := range schema.SupportedCurrencies {
		rate, ok := rates.Rate(code, target)
		if !ok {
			continue
		}
		converted := amount.Mul(rate).Round(2)
		return converted, target, &Finding{
			Field: FieldPrice,
			Code:  CodeAutoCorrected,
			Message: fmt.Sprintf("price converted from %s %s to %s %s at fixed rate %s (table %s)",
				amount.StringFixed(2), code, converted.StringFixed(2), target, rate.String(), rates.Version),
		}
	}

	return amount, code, &Finding{
		Field: FieldPrice,
		Code:  CodeUnresolvable,
		Message: fmt.Sprintf("no conversion path from %s to a currency supported by %s (%s)",
			code, schema.Name, strings.Join(schema.SupportedCurrencies, ", ")),
	}
}
