package adaptation

// AspectRule declares a required image aspect ratio. Fatal controls whether
// a mismatch blocks publishing or only produces a crop recommendation;
// channels with strict creative guidelines opt into Fatal.
type AspectRule struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Tolerance float64 `json:"tolerance"`
	Fatal     bool    `json:"fatal"`
}

// Ratio returns the declared width/height ratio.
func (r *AspectRule) Ratio() float64 {
	return float64(r.Width) / float64(r.Height)
}

// ChannelSchema declares one channel's structural constraints as plain data.
// Schemas are built once at startup and never mutated afterwards, so they are
// safe for unlimited concurrent readers.
type ChannelSchema struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`

	TitleMaxLength       int `json:"title_max_length"`
	DescriptionMaxLength int `json:"description_max_length,omitempty"` // 0 means no limit

	MinImages   int         `json:"min_images"`
	MaxImages   int         `json:"max_images"`
	AspectRatio *AspectRule `json:"aspect_ratio,omitempty"`

	RequiredFields      []string `json:"required_fields"`
	SupportedCurrencies []string `json:"supported_currencies"`

	CategoryMap     map[string]string `json:"category_map,omitempty"`
	GenericCategory string            `json:"generic_category,omitempty"`

	TagLimit int `json:"tag_limit,omitempty"` // 0 means no limit
}

// Requires reports whether the schema lists field among its required
// canonical fields.
func (s *ChannelSchema) Requires(field string) bool {
	for _, f := range s.RequiredFields {
		if f == field {
			return true
		}
	}
	return false
}

// SupportsCurrency reports whether the channel accepts the given code.
func (s *ChannelSchema) SupportsCurrency(code string) bool {
	for _, c := range s.SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// Registry is the fixed lookup table of channel schemas. An unknown id is a
// caller error and is reported distinctly from a permissive schema.
type Registry struct {
	schemas map[string]*ChannelSchema
	order   []string
}

// NewRegistry builds the registry from the static channel declarations.
func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[string]*ChannelSchema)}
	for _, s := range defaultSchemas() {
		r.register(s)
	}
	return r
}

func (r *Registry) register(s *ChannelSchema) {
	if _, exists := r.schemas[s.ID]; !exists {
		r.order = append(r.order, s.ID)
	}
	r.schemas[s.ID] = s
}

// Get looks up a schema by exact channel id.
func (r *Registry) Get(channelID string) (*ChannelSchema, bool) {
	s, ok := r.schemas[channelID]
	return s, ok
}

// All returns every schema in registration order.
func (r *Registry) All() []*ChannelSchema {
	out := make([]*ChannelSchema, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.schemas[id])
	}
	return out
}
