package adaptation

import (
	"errors"
	"fmt"

	"adaptly/internal/currency"
	"adaptly/internal/logger"
	"adaptly/internal/models"
)

// Engine adapts canonical products to channel schemas. It holds no mutable
// state, so one Engine serves any number of concurrent callers.
type Engine struct {
	registry *Registry
	rates    *currency.Table
	logger   *logger.Logger
}

func NewEngine(registry *Registry, rates *currency.Table, logger *logger.Logger) *Engine {
	return &Engine{
		registry: registry,
		rates:    rates,
		logger:   logger,
	}
}

// Registry exposes the engine's schema registry for channel listing.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Adapt validates and transforms one canonical product for one channel.
// Business-rule violations are reported inside the Result; the error return
// is reserved for programmer mistakes (nil product, empty channel id).
//
// Every normalizer runs even after a fatal finding, so the caller sees all
// problems in a single pass. The payload is assembled only when the error
// list stayed empty.
func (e *Engine) Adapt(product *models.Product, channelID string) (*Result, error) {
	if product == nil {
		return nil, errors.New("adapt: nil product")
	}
	if channelID == "" {
		return nil, errors.New("adapt: empty channel id")
	}

	result := &Result{
		ChannelID: channelID,
		Errors:    []Finding{},
		Warnings:  []Finding{},
	}

	schema, ok := e.registry.Get(channelID)
	if !ok {
		result.Errors = append(result.Errors, Finding{
			Field:   FieldChannel,
			Code:    CodeSchemaNotFound,
			Message: fmt.Sprintf("no schema registered for channel %q", channelID),
		})
		return result, nil
	}

	record := func(f *Finding) {
		if f == nil {
			return
		}
		if f.Code == CodeAutoCorrected {
			result.Warnings = append(result.Warnings, *f)
		} else {
			result.Errors = append(result.Errors, *f)
		}
	}

	result.Errors = append(result.Errors, missingRequiredFields(product, schema)...)

	title, finding := normalizeTitle(product.Title, schema)
	record(finding)

	description, finding := normalizeDescription(product.Description, schema)
	record(finding)

	price, code, finding := normalizePrice(product.Price, product.Currency, schema, e.rates)
	record(finding)

	images, imageFindings := normalizeImages(product.Images, schema)
	for i := range imageFindings {
		record(&imageFindings[i])
	}

	tags, finding := normalizeTags(product.Tags, schema)
	record(finding)

	category, hasCategory, finding := normalizeCategory(product.Category, schema)
	record(finding)

	if len(result.Errors) > 0 {
		e.logger.Debug("Product %s rejected for %s: %d errors, %d warnings",
			product.ID, channelID, len(result.Errors), len(result.Warnings))
		return result, nil
	}

	payload := &Payload{
		ProductID:     product.ID,
		ChannelID:     channelID,
		Title:         title,
		Description:   description,
		Price:         price,
		Currency:      code,
		Images:        images,
		Tags:          tags,
		StockQuantity: product.StockQuantity,
	}
	if hasCategory {
		payload.Category = category
	}
	if product.SKU != nil {
		payload.SKU = *product.SKU
	}
	if product.Brand != nil {
		payload.Brand = *product.Brand
	}

	result.Valid = true
	result.Adapted = payload
	return result, nil
}
