package adaptation

// Canonical field names used in required-field declarations.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCurrency    = "currency"
	FieldSKU         = "sku"
	FieldCategory    = "category"
	FieldImages      = "images"
	FieldTags        = "tags"
	FieldBrand       = "brand"
	FieldChannel     = "channel"
)

// defaultSchemas returns the static per-channel constraint declarations.
// Each schema is plain data so a channel's rules stay inspectable without
// reading any code.
func defaultSchemas() []*ChannelSchema {
	return []*ChannelSchema{
		{
			ID:                  "shopify",
			Name:                "Shopify",
			Color:               "#95BF47",
			TitleMaxLength:      255,
			MinImages:           0,
			MaxImages:           250,
			RequiredFields:      []string{FieldTitle, FieldPrice},
			SupportedCurrencies: []string{"EUR", "USD", "GBP", "CNY", "JPY"},
			TagLimit:            250,
		},
		{
			ID:                   "woocommerce",
			Name:                 "WooCommerce",
			Color:                "#96588A",
			TitleMaxLength:       255,
			DescriptionMaxLength: 0,
			MinImages:            0,
			MaxImages:            100,
			RequiredFields:       []string{FieldTitle, FieldPrice},
			SupportedCurrencies:  []string{"EUR", "USD", "GBP", "JPY", "CNY"},
		},
		{
			ID:                   "amazon",
			Name:                 "Amazon Seller",
			Color:                "#FF9900",
			TitleMaxLength:       200,
			DescriptionMaxLength: 2000,
			MinImages:            1,
			MaxImages:            9,
			RequiredFields:       []string{FieldTitle, FieldDescription, FieldPrice, FieldSKU, FieldCategory, FieldImages},
			SupportedCurrencies:  []string{"USD", "EUR", "GBP", "JPY"},
			CategoryMap: map[string]string{
				"electronics": "Electronics & Photo",
				"fashion":     "Clothing, Shoes & Jewelry",
				"home":        "Home & Kitchen",
				"beauty":      "Beauty & Personal Care",
				"sports":      "Sports & Outdoors",
				"toys":        "Toys & Games",
			},
			GenericCategory: "Everything Else",
			TagLimit:        5,
		},
		{
			ID:                   "ebay",
			Name:                 "eBay",
			Color:                "#E53238",
			TitleMaxLength:       80,
			DescriptionMaxLength: 4000,
			MinImages:            1,
			MaxImages:            12,
			RequiredFields:       []string{FieldTitle, FieldPrice, FieldImages},
			SupportedCurrencies:  []string{"USD", "EUR", "GBP"},
			CategoryMap: map[string]string{
				"electronics": "Consumer Electronics",
				"fashion":     "Clothing, Shoes & Accessories",
				"home":        "Home & Garden",
				"beauty":      "Health & Beauty",
				"sports":      "Sporting Goods",
				"toys":        "Toys & Hobbies",
			},
			GenericCategory: "Everything Else",
		},
		{
			ID:                  "etsy",
			Name:                "Etsy",
			Color:               "#F56400",
			TitleMaxLength:      140,
			MinImages:           1,
			MaxImages:           10,
			RequiredFields:      []string{FieldTitle, FieldDescription, FieldPrice, FieldImages},
			SupportedCurrencies: []string{"USD", "EUR", "GBP"},
			CategoryMap: map[string]string{
				"fashion": "Clothing",
				"home":    "Home & Living",
				"beauty":  "Bath & Beauty",
				"toys":    "Toys & Games",
			},
			GenericCategory: "Craft Supplies & Tools",
			TagLimit:        13,
		},
		{
			ID:                   "google",
			Name:                 "Google Merchant",
			Color:                "#4285F4",
			TitleMaxLength:       150,
			DescriptionMaxLength: 5000,
			MinImages:            1,
			MaxImages:            10,
			RequiredFields:       []string{FieldTitle, FieldDescription, FieldPrice, FieldImages, FieldCategory},
			SupportedCurrencies:  []string{"USD", "EUR", "GBP", "JPY"},
			// Google rejects feeds with unmapped taxonomy entries, so there
			// is deliberately no generic fallback here.
			CategoryMap: map[string]string{
				"electronics": "Electronics",
				"fashion":     "Apparel & Accessories",
				"home":        "Home & Garden",
				"beauty":      "Health & Beauty",
				"sports":      "Sporting Goods",
				"toys":        "Toys & Games",
			},
		},
		{
			ID:                   "facebook",
			Name:                 "Meta Commerce",
			Color:                "#1877F2",
			TitleMaxLength:       200,
			DescriptionMaxLength: 9999,
			MinImages:            1,
			MaxImages:            20,
			AspectRatio:          &AspectRule{Width: 1, Height: 1, Tolerance: 0.1},
			RequiredFields:       []string{FieldTitle, FieldDescription, FieldPrice, FieldImages},
			SupportedCurrencies:  []string{"USD", "EUR", "GBP"},
			CategoryMap: map[string]string{
				"electronics": "Electronics",
				"fashion":     "Clothing & Accessories",
				"home":        "Home Goods",
				"beauty":      "Beauty & Health",
				"sports":      "Sports & Outdoor",
				"toys":        "Toys & Games",
			},
			GenericCategory: "Miscellaneous",
		},
		{
			ID:                   "tiktok",
			Name:                 "TikTok Shop",
			Color:                "#000000",
			TitleMaxLength:       255,
			DescriptionMaxLength: 10000,
			MinImages:            1,
			MaxImages:            9,
			// TikTok enforces square creatives, so mismatches block here
			// instead of downgrading to a crop hint.
			AspectRatio:         &AspectRule{Width: 1, Height: 1, Tolerance: 0.05, Fatal: true},
			RequiredFields:      []string{FieldTitle, FieldPrice, FieldImages},
			SupportedCurrencies: []string{"USD", "GBP", "EUR"},
			CategoryMap: map[string]string{
				"electronics": "Phones & Electronics",
				"fashion":     "Womenswear & Underwear",
				"home":        "Home Supplies",
				"beauty":      "Beauty & Personal Care",
				"sports":      "Sports & Outdoor",
				"toys":        "Toys & Hobbies",
			},
			GenericCategory: "Other",
		},
		{
			ID:                   "cdiscount",
			Name:                 "Cdiscount",
			Color:                "#C4161C",
			TitleMaxLength:       132,
			DescriptionMaxLength: 5000,
			MinImages:            1,
			MaxImages:            4,
			RequiredFields:       []string{FieldTitle, FieldPrice, FieldSKU, FieldImages},
			SupportedCurrencies:  []string{"EUR"},
			CategoryMap: map[string]string{
				"electronics": "High-Tech",
				"fashion":     "Prêt-à-porter",
				"home":        "Maison",
				"beauty":      "Beauté",
				"sports":      "Sport",
				"toys":        "Jouets",
			},
			GenericCategory: "Autres",
		},
		{
			ID:                   "rakuten",
			Name:                 "Rakuten",
			Color:                "#BF0000",
			TitleMaxLength:       255,
			DescriptionMaxLength: 10000,
			MinImages:            1,
			MaxImages:            20,
			RequiredFields:       []string{FieldTitle, FieldDescription, FieldPrice, FieldImages},
			SupportedCurrencies:  []string{"JPY", "EUR", "USD"},
			CategoryMap: map[string]string{
				"electronics": "Electronics & Cameras",
				"fashion":     "Fashion",
				"home":        "Home & Interior",
				"beauty":      "Beauty & Cosmetics",
				"sports":      "Sports & Outdoors",
				"toys":        "Toys, Hobbies & Games",
			},
			GenericCategory: "Other",
		},
	}
}
