package adaptation

import (
	"github.com/shopspring/decimal"
)

// Finding codes, one per failure class.
const (
	CodeSchemaNotFound  = "schema_not_found"
	CodeRequiredMissing = "required_field_missing"
	CodeUnresolvable    = "unresolvable_constraint"
	CodeAutoCorrected   = "auto_corrected"
)

// Finding is a single channel- and field-scoped problem report.
type Finding struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Payload is the channel-ready product representation. It is a plain
// attribute-value structure; a dispatcher serializes it into whatever
// format the channel's own API or feed requires.
type Payload struct {
	ProductID     string          `json:"product_id"`
	ChannelID     string          `json:"channel_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	SKU           string          `json:"sku,omitempty"`
	Category      string          `json:"category,omitempty"`
	Images        []string        `json:"images"`
	Tags          []string        `json:"tags,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	StockQuantity int             `json:"stock_quantity"`
}

// Result is the outcome of adapting one product for one channel.
// Adapted is set if and only if Errors is empty; a result carrying any
// error must never be forwarded to a dispatcher.
type Result struct {
	Valid     bool      `json:"valid"`
	ChannelID string    `json:"channel_id"`
	Adapted   *Payload  `json:"adapted,omitempty"`
	Errors    []Finding `json:"errors"`
	Warnings  []Finding `json:"warnings"`
}
