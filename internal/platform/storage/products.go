package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/table"
	"github.com/lib/pq"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// SaveProduct locks product identified by key (or prepares new draft product), applies mutate
// to it and stores result together with its attribute links, all in single transaction.
// Links pointing to attributes or values which don't exist anymore are skipped.
// It returns saved product and true if product was created.
func (p Postgres) SaveProduct(
	ctx context.Context,
	key models.ProductKey,
	links []models.AttributeLink,
	mutate models.ProductMutator,
) (*models.Product, bool, error) {
	var (
		saved   *models.Product
		created bool
	)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		previous, err := getProductForUpdate(ctx, tx, key)
		if err != nil {
			return fmt.Errorf("can't get product from database: %w", err)
		}

		product := newDraftProduct(key)
		if previous != nil {
			product = *previous
		}

		if err = mutate(&product, previous); err != nil {
			return fmt.Errorf("can't apply product changes: %w", err)
		}

		product.FeedSourceID = key.FeedSourceID
		product.ExternalID = key.ExternalID
		product.UpdatedAt = time.Now()

		var stored pgmodels.Product
		if previous == nil {
			err = insertProduct(ctx, tx, &product, &stored)
		} else {
			product.ID = previous.ID
			err = updateProduct(ctx, tx, &product, &stored)
		}
		if err != nil {
			return err
		}

		saved = toAppProduct(&stored)
		created = previous == nil

		if err = upsertAttributeLinks(ctx, tx, saved, links); err != nil {
			return fmt.Errorf("can't save product attributes: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("can't save product %q: %w", key.ExternalID, err)
	}

	return saved, created, nil
}

// ArchiveMissingProducts archives active products of feed source whose external ids are not in seen.
// Returns number of archived products.
func (p Postgres) ArchiveMissingProducts(ctx context.Context, feedSourceID int64, seen []string) (int64, error) {
	condition := pg.AND(
		table.Product.FeedSourceID.EQ(pg.Int64(feedSourceID)),
		table.Product.IsActive.IS_TRUE(),
		table.Product.Status.NOT_EQ(pg.String(string(models.ProductStatusArchived))),
	)

	if len(seen) > 0 {
		condition = condition.AND(pg.BoolExp(pg.Raw(
			"NOT (product.external_id = ANY(#seen))",
			pg.RawArgs{"#seen": pq.Array(seen)},
		)))
	}

	result, err := table.Product.UPDATE().
		SET(
			table.Product.Status.SET(pg.String(string(models.ProductStatusArchived))),
			table.Product.UpdatedAt.SET(pg.TimestampzT(time.Now())),
		).
		WHERE(condition).
		ExecContext(ctx, p.db)
	if err != nil {
		return 0, fmt.Errorf("can't archive missing products: %w", err)
	}

	archived, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("can't count archived products: %w", err)
	}

	return archived, nil
}

// GetProduct returns product by id or ErrProductNotFound.
func (p Postgres) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.EQ(pg.Int64(id))).
		QueryContext(ctx, p.db, &product)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get product from database: %w", err)
	}

	return toAppProduct(&product), nil
}

// ProductAttributeLinks returns attribute links of product.
func (p Postgres) ProductAttributeLinks(ctx context.Context, productID int64) ([]models.AttributeLink, error) {
	var rows []pgmodels.ProductAttribute
	err := table.ProductAttribute.SELECT(table.ProductAttribute.AllColumns).
		WHERE(table.ProductAttribute.ProductID.EQ(pg.Int64(productID))).
		ORDER_BY(table.ProductAttribute.AttributeID.ASC(), table.ProductAttribute.ValueID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get product attributes: %w", err)
	}

	return lo.Map(rows, func(row pgmodels.ProductAttribute, _ int) models.AttributeLink {
		return models.AttributeLink{
			AttributeID: row.AttributeID,
			ValueID:     row.ValueID,
			RawValue:    row.RawValue,
		}
	}), nil
}

func newDraftProduct(key models.ProductKey) models.Product {
	return models.Product{
		FeedSourceID: key.FeedSourceID,
		ExternalID:   key.ExternalID,
		Status:       models.ProductStatusDraft,
		IsNew:        true,
		IsActive:     true,
	}
}

// getProductForUpdate returns locked product or nil if it doesn't exist.
func getProductForUpdate(ctx context.Context, db qrm.Queryable, key models.ProductKey) (*models.Product, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(
			table.Product.FeedSourceID.EQ(pg.Int64(key.FeedSourceID)),
			table.Product.ExternalID.EQ(pg.String(key.ExternalID)),
		)).
		FOR(pg.UPDATE()).
		QueryContext(ctx, db, &product)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toAppProduct(&product), nil
}

func insertProduct(ctx context.Context, db qrm.Queryable, product *models.Product, stored *pgmodels.Product) error {
	columnList := table.Product.MutableColumns.Except(table.Product.CreatedAt)

	err := table.Product.INSERT(columnList).
		MODEL(ToDBProduct(product)).
		RETURNING(table.Product.AllColumns).
		QueryContext(ctx, db, stored)
	if err != nil {
		return fmt.Errorf("can't insert product into database: %w", err)
	}

	return nil
}

func updateProduct(ctx context.Context, db qrm.Queryable, product *models.Product, stored *pgmodels.Product) error {
	columnList := table.Product.MutableColumns.Except(
		table.Product.FeedSourceID,
		table.Product.ExternalID,
		table.Product.CreatedAt,
	)

	err := table.Product.UPDATE(columnList).
		MODEL(ToDBProduct(product)).
		WHERE(table.Product.ID.EQ(pg.Int64(product.ID))).
		RETURNING(table.Product.AllColumns).
		QueryContext(ctx, db, stored)
	if err != nil {
		return fmt.Errorf("can't update product in database: %w", err)
	}

	return nil
}

// upsertAttributeLinks locks linked attributes and values, upserts product attributes
// and records attributes seen in product's category.
func upsertAttributeLinks(ctx context.Context, db qrm.DB, product *models.Product, links []models.AttributeLink) error {
	if len(links) == 0 {
		return nil
	}

	attributeIDs, err := lockAttributes(ctx, db, lo.Map(links, func(l models.AttributeLink, _ int) int64 {
		return l.AttributeID
	}))
	if err != nil {
		return fmt.Errorf("can't lock attributes: %w", err)
	}

	valueIDs, err := lockAttributeValues(ctx, db, lo.Map(links, func(l models.AttributeLink, _ int) int64 {
		return l.ValueID
	}))
	if err != nil {
		return fmt.Errorf("can't lock attribute values: %w", err)
	}

	existing := lo.Filter(links, func(l models.AttributeLink, _ int) bool {
		return lo.Contains(attributeIDs, l.AttributeID) && lo.Contains(valueIDs, l.ValueID)
	})
	existing = lo.UniqBy(existing, func(l models.AttributeLink) [2]int64 {
		return [2]int64{l.AttributeID, l.ValueID}
	})
	if len(existing) == 0 {
		return nil
	}

	rows := lo.Map(existing, func(l models.AttributeLink, _ int) pgmodels.ProductAttribute {
		return pgmodels.ProductAttribute{
			ProductID:   product.ID,
			AttributeID: l.AttributeID,
			ValueID:     l.ValueID,
			RawValue:    l.RawValue,
		}
	})

	_, err = table.ProductAttribute.INSERT(table.ProductAttribute.MutableColumns).
		MODELS(rows).
		ON_CONFLICT(
			table.ProductAttribute.ProductID,
			table.ProductAttribute.AttributeID,
			table.ProductAttribute.ValueID,
		).
		DO_UPDATE(pg.SET(
			table.ProductAttribute.RawValue.SET(table.ProductAttribute.EXCLUDED.RawValue),
		)).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't upsert product attributes: %w", err)
	}

	if product.CategoryID == nil {
		return nil
	}

	categoryAttributes := lo.Map(lo.Uniq(lo.Map(existing, func(l models.AttributeLink, _ int) int64 {
		return l.AttributeID
	})), func(attributeID int64, _ int) pgmodels.CategoryAttribute {
		return pgmodels.CategoryAttribute{
			CategoryID:  *product.CategoryID,
			AttributeID: attributeID,
		}
	})

	_, err = table.CategoryAttribute.INSERT(table.CategoryAttribute.MutableColumns).
		MODELS(categoryAttributes).
		ON_CONFLICT(table.CategoryAttribute.AttributeID, table.CategoryAttribute.CategoryID).
		DO_NOTHING().
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't link attributes with category: %w", err)
	}

	return nil
}

// lockAttributes locks attribute rows in ascending id order and returns ids of existing ones.
func lockAttributes(ctx context.Context, db qrm.Queryable, ids []int64) ([]int64, error) {
	var locked []pgmodels.Attribute
	err := table.Attribute.SELECT(table.Attribute.ID).
		WHERE(table.Attribute.ID.IN(int64Expressions(ids)...)).
		ORDER_BY(table.Attribute.ID.ASC()).
		FOR(pg.UPDATE()).
		QueryContext(ctx, db, &locked)
	if err != nil {
		return nil, err
	}

	return lo.Map(locked, func(a pgmodels.Attribute, _ int) int64 {
		return a.ID
	}), nil
}

// lockAttributeValues locks attribute value rows in ascending id order and returns ids of existing ones.
func lockAttributeValues(ctx context.Context, db qrm.Queryable, ids []int64) ([]int64, error) {
	var locked []pgmodels.AttributeValue
	err := table.AttributeValue.SELECT(table.AttributeValue.ID).
		WHERE(table.AttributeValue.ID.IN(int64Expressions(ids)...)).
		ORDER_BY(table.AttributeValue.ID.ASC()).
		FOR(pg.UPDATE()).
		QueryContext(ctx, db, &locked)
	if err != nil {
		return nil, err
	}

	return lo.Map(locked, func(v pgmodels.AttributeValue, _ int) int64 {
		return v.ID
	}), nil
}

func int64Expressions(ids []int64) []pg.Expression {
	ids = lo.Uniq(ids)
	slices.Sort(ids)

	return lo.Map(ids, func(id int64, _ int) pg.Expression {
		return pg.Int64(id)
	})
}
