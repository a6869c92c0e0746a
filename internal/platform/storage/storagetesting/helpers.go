package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/table"
	"github.com/MichalMitros/catalog-feed-importer/migrations"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB and applies migrations.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	if err := migrations.Run(db); err != nil {
		t.Fatalf("can't migrate database: %s", err)
	}

	return db
}

// InsertReports is a helper test function to insert reports.
func InsertReports(t *testing.T, exc qrm.Executable, reports ...pgmodels.FeedParsingReport) {
	t.Helper()

	if len(reports) == 0 {
		return
	}

	_, err := table.FeedParsingReport.INSERT(table.FeedParsingReport.MutableColumns).MODELS(reports).Exec(exc)
	if err != nil {
		t.Fatal("can't insert reports", err)
	}
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	_, err := table.Product.INSERT(table.Product.MutableColumns).MODELS(products).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// GetReports is a helper test function to get all reports of feed source.
func GetReports(t *testing.T, queryable qrm.Queryable, feedSourceID int64) []pgmodels.FeedParsingReport {
	t.Helper()

	reports := []pgmodels.FeedParsingReport{}
	err := table.FeedParsingReport.SELECT(table.FeedParsingReport.AllColumns).
		WHERE(table.FeedParsingReport.FeedSourceID.EQ(pg.Int64(feedSourceID))).
		ORDER_BY(table.FeedParsingReport.ID.ASC()).
		Query(queryable, &reports)
	if err != nil {
		t.Fatal("can't get reports", err)
	}

	return reports
}

// GetProducts is a helper test function to get all products of feed source.
func GetProducts(t *testing.T, queryable qrm.Queryable, feedSourceID int64) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.FeedSourceID.EQ(pg.Int64(feedSourceID))).
		ORDER_BY(table.Product.ExternalID.ASC()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetCategoryAttributes is a helper test function to get all category attributes.
func GetCategoryAttributes(t *testing.T, queryable qrm.Queryable) []pgmodels.CategoryAttribute {
	t.Helper()

	rows := []pgmodels.CategoryAttribute{}
	err := table.CategoryAttribute.SELECT(table.CategoryAttribute.AllColumns).
		WHERE(table.CategoryAttribute.ID.IS_NOT_NULL()).
		ORDER_BY(table.CategoryAttribute.ID.ASC()).
		Query(queryable, &rows)
	if err != nil {
		t.Fatal("can't get category attributes", err)
	}

	return rows
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.FeedSource.DELETE().WHERE(table.FeedSource.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete feed sources data", err)
	}

	_, err = table.Attribute.DELETE().WHERE(table.Attribute.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete attributes data", err)
	}

	_, err = table.Category.DELETE().WHERE(table.Category.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete categories data", err)
	}
}
