package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// FindAttributesByTitle returns active attributes with exactly matching title, ordered by id.
func (p Postgres) FindAttributesByTitle(ctx context.Context, title string) ([]models.Attribute, error) {
	var attributes []pgmodels.Attribute
	err := table.Attribute.SELECT(table.Attribute.AllColumns).
		WHERE(pg.AND(
			table.Attribute.Title.EQ(pg.String(title)),
			table.Attribute.IsActive.IS_TRUE(),
		)).
		ORDER_BY(table.Attribute.ID.ASC()).
		QueryContext(ctx, p.db, &attributes)
	if err != nil {
		return nil, fmt.Errorf("can't find attributes: %w", err)
	}

	return lo.Map(attributes, func(_ pgmodels.Attribute, ix int) models.Attribute {
		return *toAppAttribute(&attributes[ix])
	}), nil
}

// CreateAttribute inserts attribute and returns its id.
func (p Postgres) CreateAttribute(ctx context.Context, attribute *models.Attribute) (int64, error) {
	dbAttribute := toDBAttribute(attribute)
	err := table.Attribute.INSERT(table.Attribute.MutableColumns.Except(table.Attribute.CreatedAt)).
		MODEL(dbAttribute).
		RETURNING(table.Attribute.ID).
		QueryContext(ctx, p.db, dbAttribute)
	if err != nil {
		return 0, fmt.Errorf("can't insert attribute into database: %w", err)
	}

	return dbAttribute.ID, nil
}

// GetAttribute returns attribute with provided id.
func (p Postgres) GetAttribute(ctx context.Context, id int64) (*models.Attribute, error) {
	var attribute pgmodels.Attribute
	err := table.Attribute.SELECT(table.Attribute.AllColumns).
		WHERE(table.Attribute.ID.EQ(pg.Int64(id))).
		QueryContext(ctx, p.db, &attribute)
	if err != nil {
		return nil, fmt.Errorf("can't get attribute from database: %w", err)
	}

	return toAppAttribute(&attribute), nil
}

// FindAttributeValues returns active values of attribute with exactly matching title, ordered by id.
func (p Postgres) FindAttributeValues(ctx context.Context, attributeID int64, title string) ([]models.AttributeValue, error) {
	var values []pgmodels.AttributeValue
	err := table.AttributeValue.SELECT(table.AttributeValue.AllColumns).
		WHERE(pg.AND(
			table.AttributeValue.AttributeID.EQ(pg.Int64(attributeID)),
			table.AttributeValue.Title.EQ(pg.String(title)),
			table.AttributeValue.IsActive.IS_TRUE(),
		)).
		ORDER_BY(table.AttributeValue.ID.ASC()).
		QueryContext(ctx, p.db, &values)
	if err != nil {
		return nil, fmt.Errorf("can't find attribute values: %w", err)
	}

	return lo.Map(values, func(_ pgmodels.AttributeValue, ix int) models.AttributeValue {
		return *toAppAttributeValue(&values[ix])
	}), nil
}

// CreateAttributeValue inserts attribute value and returns its id.
func (p Postgres) CreateAttributeValue(ctx context.Context, value *models.AttributeValue) (int64, error) {
	dbValue := toDBAttributeValue(value)
	err := table.AttributeValue.INSERT(table.AttributeValue.MutableColumns.Except(table.AttributeValue.CreatedAt)).
		MODEL(dbValue).
		RETURNING(table.AttributeValue.ID).
		QueryContext(ctx, p.db, dbValue)
	if err != nil {
		return 0, fmt.Errorf("can't insert attribute value into database: %w", err)
	}

	return dbValue.ID, nil
}

// FindCategoriesByTitle returns active categories with case-insensitively matching title, ordered by id.
func (p Postgres) FindCategoriesByTitle(ctx context.Context, title string) ([]models.Category, error) {
	var categories []pgmodels.Category
	err := table.Category.SELECT(table.Category.AllColumns).
		WHERE(pg.AND(
			pg.LOWER(table.Category.Title).EQ(pg.LOWER(pg.String(strings.TrimSpace(title)))),
			table.Category.IsActive.IS_TRUE(),
		)).
		ORDER_BY(table.Category.ID.ASC()).
		QueryContext(ctx, p.db, &categories)
	if err != nil {
		return nil, fmt.Errorf("can't find categories: %w", err)
	}

	return toAppCategories(categories)
}

// ListKeywordCategories returns active categories having keywords, ordered by id.
func (p Postgres) ListKeywordCategories(ctx context.Context) ([]models.Category, error) {
	var categories []pgmodels.Category
	err := table.Category.SELECT(table.Category.AllColumns).
		WHERE(pg.AND(
			table.Category.IsActive.IS_TRUE(),
			pg.RawBool("cardinality(category.keywords) > 0"),
		)).
		ORDER_BY(table.Category.ID.ASC()).
		QueryContext(ctx, p.db, &categories)
	if err != nil {
		return nil, fmt.Errorf("can't list keyword categories: %w", err)
	}

	return toAppCategories(categories)
}

// GetOrCreateCategory returns the oldest category with exactly matching title,
// or creates active category with that title.
func (p Postgres) GetOrCreateCategory(ctx context.Context, title string) (*models.Resolution, error) {
	title = strings.TrimSpace(title)
	resolution := &models.Resolution{}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var category pgmodels.Category
		err := table.Category.SELECT(table.Category.ID).
			WHERE(table.Category.Title.EQ(pg.String(title))).
			ORDER_BY(table.Category.ID.ASC()).
			LIMIT(1).
			QueryContext(ctx, tx, &category)
		if err == nil {
			resolution.ID = category.ID
			return nil
		}
		if !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get category from database: %w", err)
		}

		category = *ToDBCategory(&models.Category{
			Title:    title,
			IsActive: true,
		})
		err = table.Category.INSERT(table.Category.Title, table.Category.Keywords, table.Category.IsActive).
			MODEL(category).
			RETURNING(table.Category.ID).
			QueryContext(ctx, tx, &category)
		if err != nil {
			return fmt.Errorf("can't insert category into database: %w", err)
		}

		resolution.ID = category.ID
		resolution.Created = true

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't get or create category %q: %w", title, err)
	}

	return resolution, nil
}

// AddCategory inserts category and returns it with assigned id.
func (p Postgres) AddCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	dbCategory := ToDBCategory(category)
	err := table.Category.INSERT(table.Category.Title, table.Category.Keywords, table.Category.IsActive).
		MODEL(dbCategory).
		RETURNING(table.Category.AllColumns).
		QueryContext(ctx, p.db, dbCategory)
	if err != nil {
		return nil, fmt.Errorf("can't insert category into database: %w", err)
	}

	return toAppCategory(dbCategory)
}

func toAppCategories(categories []pgmodels.Category) ([]models.Category, error) {
	result := make([]models.Category, 0, len(categories))
	for ix := range categories {
		category, err := toAppCategory(&categories[ix])
		if err != nil {
			return nil, err
		}
		result = append(result, *category)
	}

	return result, nil
}
