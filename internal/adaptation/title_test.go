package adaptation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTitle(t *testing.T) {
	schema := &ChannelSchema{ID: "ebay", Name: "eBay", TitleMaxLength: 80}

	t.Run("compliant title passes through unchanged", func(t *testing.T) {
		title, finding := normalizeTitle("Wireless Headphones", schema)
		assert.Equal(t, "Wireless Headphones", title)
		assert.Nil(t, finding)
	})

	t.Run("over-long title is truncated at a word boundary", func(t *testing.T) {
		long := strings.Repeat("wireless headphones ", 10) // 200 chars
		title, finding := normalizeTitle(long, schema)

		require.NotNil(t, finding)
		assert.Equal(t, FieldTitle, finding.Field)
		assert.Equal(t, CodeAutoCorrected, finding.Code)
		assert.LessOrEqual(t, len([]rune(title)), 80)
		assert.False(t, strings.HasSuffix(title, " "))
		assert.False(t, strings.HasSuffix(title, "..."), "no ellipsis, the limit is exact")
		// Cut lands between words, not inside one.
		assert.True(t, strings.HasSuffix(title, "wireless") || strings.HasSuffix(title, "headphones"))
		assert.Contains(t, finding.Message, "200")
	})

	t.Run("single word longer than the limit is cut hard", func(t *testing.T) {
		title, finding := normalizeTitle(strings.Repeat("x", 100), schema)
		require.NotNil(t, finding)
		assert.Equal(t, 80, len([]rune(title)))
	})

	t.Run("title at exactly the limit is untouched", func(t *testing.T) {
		exact := strings.Repeat("a", 80)
		title, finding := normalizeTitle(exact, schema)
		assert.Equal(t, exact, title)
		assert.Nil(t, finding)
	})

	t.Run("empty title produces no finding here", func(t *testing.T) {
		// The required-field pass owns missing-title errors.
		title, finding := normalizeTitle("", schema)
		assert.Empty(t, title)
		assert.Nil(t, finding)
	})
}

func TestNormalizeDescription(t *testing.T) {
	t.Run("no declared limit means no enforcement", func(t *testing.T) {
		schema := &ChannelSchema{ID: "shopify", Name: "Shopify"}
		long := strings.Repeat("lorem ipsum ", 1000)
		description, finding := normalizeDescription(long, schema)
		assert.Equal(t, long, description)
		assert.Nil(t, finding)
	})

	t.Run("declared limit truncates at a word boundary", func(t *testing.T) {
		schema := &ChannelSchema{ID: "amazon", Name: "Amazon Seller", DescriptionMaxLength: 50}
		description, finding := normalizeDescription(strings.Repeat("quality product ", 10), schema)
		require.NotNil(t, finding)
		assert.Equal(t, FieldDescription, finding.Field)
		assert.Equal(t, CodeAutoCorrected, finding.Code)
		assert.LessOrEqual(t, len([]rune(description)), 50)
	})

	t.Run("empty description passes through", func(t *testing.T) {
		schema := &ChannelSchema{ID: "amazon", Name: "Amazon Seller", DescriptionMaxLength: 50}
		description, finding := normalizeDescription("", schema)
		assert.Empty(t, description)
		assert.Nil(t, finding)
	})
}
