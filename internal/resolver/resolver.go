package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Cache --filename cache.go

const (
	// DefaultTTL is default lifetime of cached match.
	DefaultTTL = time.Hour
	// DefaultValueType is value type of auto-created attributes.
	DefaultValueType = string(models.ValueKindText)
)

var (
	// ErrEmptyName is returned when attribute name or value is blank.
	ErrEmptyName = errors.New("name is empty")
	// ErrValueType is returned when new value doesn't match value type of its attribute.
	ErrValueType = errors.New("value doesn't match attribute value type")
)

// Storage is catalog vocabulary storage.
type Storage interface {
	// FindAttributesByTitle returns active attributes with exactly matching title, ordered by id.
	FindAttributesByTitle(ctx context.Context, title string) ([]models.Attribute, error)
	CreateAttribute(ctx context.Context, attribute *models.Attribute) (int64, error)
	GetAttribute(ctx context.Context, id int64) (*models.Attribute, error)
	// FindAttributeValues returns active values of attribute with exactly matching title, ordered by id.
	FindAttributeValues(ctx context.Context, attributeID int64, title string) ([]models.AttributeValue, error)
	CreateAttributeValue(ctx context.Context, value *models.AttributeValue) (int64, error)
	// FindCategoriesByTitle returns active categories with case-insensitively matching title, ordered by id.
	FindCategoriesByTitle(ctx context.Context, title string) ([]models.Category, error)
	// ListKeywordCategories returns active categories having keywords, ordered by id.
	ListKeywordCategories(ctx context.Context) ([]models.Category, error)
	GetOrCreateCategory(ctx context.Context, title string) (*models.Resolution, error)
}

// Cache stores ids of successful matches.
type Cache interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Set(ctx context.Context, key string, id int64, ttl time.Duration) error
}

// Option is custom configuration of Resolver.
type Option func(r *Resolver)

// Resolver maps free-text feed values to canonical attributes, attribute values and categories.
// Only successful matches are cached, misses are looked up again on every call.
type Resolver struct {
	storage Storage
	cache   Cache
	ttl     time.Duration
	logger  *zerolog.Logger
}

// NewResolver returns new Resolver.
func NewResolver(storage Storage, cache Cache, logger *zerolog.Logger, ops ...Option) *Resolver {
	r := &Resolver{
		storage: storage,
		cache:   cache,
		ttl:     DefaultTTL,
		logger:  logger,
	}

	for _, op := range ops {
		op(r)
	}

	return r
}

// WithTTL sets lifetime of cached matches.
func WithTTL(ttl time.Duration) Option {
	return func(r *Resolver) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// FindAttribute returns attribute with title equal to name. When there are several such attributes,
// the one with the lowest id is used. Missing attribute is created as text attribute.
func (r *Resolver) FindAttribute(ctx context.Context, name string) (*models.Resolution, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("can't find attribute: %w", ErrEmptyName)
	}

	key := attributeKey(name)
	if id, ok := r.cached(ctx, key); ok {
		return &models.Resolution{ID: id}, nil
	}

	attributes, err := r.storage.FindAttributesByTitle(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("can't find attribute %q: %w", name, err)
	}

	resolution := &models.Resolution{}
	switch len(attributes) {
	case 0:
		resolution.ID, err = r.storage.CreateAttribute(ctx, &models.Attribute{
			Title:     name,
			Label:     name,
			ValueType: DefaultValueType,
			IsActive:  true,
		})
		if err != nil {
			return nil, fmt.Errorf("can't create attribute %q: %w", name, err)
		}
		resolution.Created = true

		r.logger.Warn().
			Str("attribute", name).
			Int64("attributeId", resolution.ID).
			Msg("attribute created")
	case 1:
		resolution.ID = attributes[0].ID
	default:
		resolution.ID = attributes[0].ID

		r.logger.Warn().
			Str("attribute", name).
			Int("matches", len(attributes)).
			Int64("attributeId", resolution.ID).
			Msg("ambiguous attribute match, using the oldest one")
	}

	r.store(ctx, key, resolution.ID)

	return resolution, nil
}

// FindOrCreateValue returns value of attribute with title equal to trimmed raw value.
// When there are several such values, the one with the lowest id is used. Missing value is created
// with payload parsed according to attribute's value type, value not matching that type is rejected.
func (r *Resolver) FindOrCreateValue(ctx context.Context, attributeID int64, raw string) (*models.Resolution, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, fmt.Errorf("can't find attribute value: %w", ErrEmptyName)
	}

	key := valueKey(attributeID, value)
	if id, ok := r.cached(ctx, key); ok {
		return &models.Resolution{ID: id}, nil
	}

	values, err := r.storage.FindAttributeValues(ctx, attributeID, value)
	if err != nil {
		return nil, fmt.Errorf("can't find value %q of attribute %d: %w", value, attributeID, err)
	}

	resolution := &models.Resolution{}
	switch len(values) {
	case 0:
		payload, err := r.parseValue(ctx, attributeID, value)
		if err != nil {
			return nil, err
		}

		resolution.ID, err = r.storage.CreateAttributeValue(ctx, &models.AttributeValue{
			AttributeID: attributeID,
			Title:       value,
			Label:       value,
			Value:       payload,
			IsActive:    true,
		})
		if err != nil {
			return nil, fmt.Errorf("can't create value %q of attribute %d: %w", value, attributeID, err)
		}
		resolution.Created = true

		r.logger.Debug().
			Int64("attributeId", attributeID).
			Int64("valueId", resolution.ID).
			Str("value", value).
			Msg("attribute value created")
	case 1:
		resolution.ID = values[0].ID
	default:
		resolution.ID = values[0].ID

		r.logger.Warn().
			Int64("attributeId", attributeID).
			Str("value", value).
			Int("matches", len(values)).
			Int64("valueId", resolution.ID).
			Msg("ambiguous attribute value match, using the oldest one")
	}

	r.store(ctx, key, resolution.ID)

	return resolution, nil
}

func (r *Resolver) parseValue(ctx context.Context, attributeID int64, value string) (models.TypedValue, error) {
	attribute, err := r.storage.GetAttribute(ctx, attributeID)
	if err != nil {
		return models.TypedValue{}, fmt.Errorf("can't get attribute %d: %w", attributeID, err)
	}

	payload, err := models.ParseTypedValue(attribute.ValueType, value)
	if err != nil {
		return models.TypedValue{}, fmt.Errorf("%w: %s attribute %d: %s", ErrValueType, attribute.ValueType, attributeID, err)
	}

	return payload, nil
}

// FindCategory matches category by feed category name and then by keywords found in product name.
// It returns nil when no category matches.
func (r *Resolver) FindCategory(ctx context.Context, categoryName, productName string) (*models.Resolution, error) {
	categoryName = strings.TrimSpace(categoryName)
	productName = strings.TrimSpace(productName)

	key := categoryKey(categoryName, productName)
	if id, ok := r.cached(ctx, key); ok {
		return &models.Resolution{ID: id}, nil
	}

	if categoryName != "" {
		categories, err := r.storage.FindCategoriesByTitle(ctx, categoryName)
		if err != nil {
			return nil, fmt.Errorf("can't find category %q: %w", categoryName, err)
		}

		switch len(categories) {
		case 0:
		case 1:
			r.store(ctx, key, categories[0].ID)
			return &models.Resolution{ID: categories[0].ID}, nil
		default:
			r.logger.Warn().
				Str("category", categoryName).
				Int("matches", len(categories)).
				Msg("ambiguous category title match")
		}
	}

	categories, err := r.storage.ListKeywordCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't list keyword categories: %w", err)
	}

	id, ok := matchKeywords(categories, productName)
	if !ok {
		return nil, nil
	}

	r.store(ctx, key, id)

	return &models.Resolution{ID: id}, nil
}

// GetOrCreateCategory returns category with exactly matching title, creating it when missing.
func (r *Resolver) GetOrCreateCategory(ctx context.Context, title string) (*models.Resolution, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("can't get or create category: %w", ErrEmptyName)
	}

	resolution, err := r.storage.GetOrCreateCategory(ctx, title)
	if err != nil {
		return nil, err
	}

	if resolution.Created {
		r.logger.Warn().
			Str("category", title).
			Int64("categoryId", resolution.ID).
			Msg("category created")
	}

	return resolution, nil
}

// cached returns id stored under key. Cache errors are logged and treated as miss.
func (r *Resolver) cached(ctx context.Context, key string) (int64, bool) {
	id, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("key", key).
			Msg("can't read match from cache")
		return 0, false
	}

	return id, ok
}

func (r *Resolver) store(ctx context.Context, key string, id int64) {
	if err := r.cache.Set(ctx, key, id, r.ttl); err != nil {
		r.logger.Warn().
			Err(err).
			Str("key", key).
			Msg("can't store match in cache")
	}
}

func attributeKey(name string) string {
	return "attr_match_" + name
}

func valueKey(attributeID int64, value string) string {
	return fmt.Sprintf("attr_val_match_%d_%s", attributeID, value)
}

func categoryKey(categoryName, productName string) string {
	return fmt.Sprintf("category_match_%s_%s", categoryName, productName)
}
