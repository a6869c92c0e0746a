package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// ProductImages returns images of product ordered by position.
func (p Postgres) ProductImages(ctx context.Context, productID int64) ([]models.ProductImage, error) {
	var images []pgmodels.ProductImage
	err := table.ProductImage.SELECT(table.ProductImage.AllColumns).
		WHERE(table.ProductImage.ProductID.EQ(pg.Int64(productID))).
		ORDER_BY(table.ProductImage.Position.ASC(), table.ProductImage.ID.ASC()).
		QueryContext(ctx, p.db, &images)
	if err != nil {
		return nil, fmt.Errorf("can't get product images: %w", err)
	}

	return lo.Map(images, func(_ pgmodels.ProductImage, ix int) models.ProductImage {
		return *toAppProductImage(&images[ix])
	}), nil
}

// ReplaceProductImages deletes all images of product and inserts provided ones in single transaction.
// It returns ErrProductNotFound if product doesn't exist.
func (p Postgres) ReplaceProductImages(ctx context.Context, productID int64, images []models.ProductImage) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var product pgmodels.Product
		err := table.Product.SELECT(table.Product.ID).
			WHERE(table.Product.ID.EQ(pg.Int64(productID))).
			FOR(pg.UPDATE()).
			QueryContext(ctx, tx, &product)
		if errors.Is(err, qrm.ErrNoRows) {
			return platform.ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("can't lock product: %w", err)
		}

		_, err = table.ProductImage.DELETE().
			WHERE(table.ProductImage.ProductID.EQ(pg.Int64(productID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete product images: %w", err)
		}

		if len(images) == 0 {
			return nil
		}

		toInsert := lo.Map(images, func(_ models.ProductImage, ix int) pgmodels.ProductImage {
			image := toDBProductImage(&images[ix])
			image.ProductID = productID
			return *image
		})

		_, err = table.ProductImage.INSERT(table.ProductImage.MutableColumns.Except(table.ProductImage.CreatedAt)).
			MODELS(toInsert).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert product images: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't replace images of product %d: %w", productID, err)
	}

	return nil
}
