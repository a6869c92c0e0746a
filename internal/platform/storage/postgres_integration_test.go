//go:build integration

package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models/modelstesting"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage"
	pgmodels "github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

var loc = func() *time.Location {
	loc, err := time.LoadLocation("Etc/UTC")
	if err != nil {
		panic(err)
	}
	return loc
}()

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TearDownTest() {
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) addFeedSource(post storage.Postgres) *models.FeedSource {
	source := modelstesting.FakeFeedSource()
	stored, err := post.AddFeedSource(context.TODO(), &source)
	s.Require().NoError(err, "can't add feed source")

	return stored
}

func (s *PostgresTestSuite) TestIntegrationStartReport() {
	startedAt := time.Date(2024, time.April, 1, 12, 0, 0, 0, loc)

	tests := map[string]struct {
		storedReports []pgmodels.FeedParsingReport
		wantErr       error
		wantReports   int
	}{
		"first run": {
			wantReports: 1,
		},
		"after finished run": {
			storedReports: []pgmodels.FeedParsingReport{
				{
					Status:     string(models.ReportStatusSuccess),
					StartedAt:  startedAt.Add(-time.Hour),
					FinishedAt: lo.ToPtr(startedAt.Add(-30 * time.Minute)),
				},
			},
			wantReports: 2,
		},
		"already running error": {
			storedReports: []pgmodels.FeedParsingReport{
				{
					Status:    string(models.ReportStatusStarted),
					StartedAt: startedAt.Add(-time.Minute),
				},
			},
			wantErr:     platform.ErrAlreadyRunning,
			wantReports: 1,
		},
		"stale run is abandoned": {
			storedReports: []pgmodels.FeedParsingReport{
				{
					Status:    string(models.ReportStatusStarted),
					StartedAt: startedAt.Add(-3 * time.Hour),
				},
			},
			wantReports: 2,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			post := storage.NewPostgres(s.DB, storage.WithRunStaleAfter(2*time.Hour))
			source := s.addFeedSource(post)

			for ix := range tt.storedReports {
				tt.storedReports[ix].FeedSourceID = source.ID
			}
			storagetesting.InsertReports(s.T(), s.DB, tt.storedReports...)

			report, err := post.StartReport(context.TODO(), source.ID, startedAt)

			reports := storagetesting.GetReports(s.T(), s.DB, source.ID)
			s.Len(reports, tt.wantReports, "should store correct number of reports")

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")
			s.Equal(source.ID, report.FeedSourceID, "should start report for feed source")
			s.Equal(models.ReportStatusStarted, report.Status, "should start report")
			s.True(startedAt.Equal(report.StartedAt), "should set start time")

			for _, stored := range reports[:len(reports)-1] {
				s.NotEqual(string(models.ReportStatusStarted), stored.Status, "previous reports should be terminal")
			}
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationStartReportNotExistingFeedSource() {
	post := storage.NewPostgres(s.DB)

	_, err := post.StartReport(context.TODO(), -1, time.Now())

	s.Require().ErrorIs(err, platform.ErrFeedSourceNotFound, "should return correct error")
}

func (s *PostgresTestSuite) TestIntegrationFinishReport() {
	post := storage.NewPostgres(s.DB)
	source := s.addFeedSource(post)

	report, err := post.StartReport(context.TODO(), source.ID, time.Now())
	s.Require().NoError(err, "can't start report")

	report.Status = models.ReportStatusSuccess
	report.FinishedAt = lo.ToPtr(time.Now())
	report.TotalProducts = 10
	report.ProductsAdded = 4
	report.ProductsUpdated = 3
	report.ProductsFailed = 2
	report.ProductsUnpublished = 1
	report.ProductsArchived = 5

	s.Require().NoError(post.FinishReport(context.TODO(), report), "shouldn't return any error")

	reports := storagetesting.GetReports(s.T(), s.DB, source.ID)
	s.Require().Len(reports, 1, "should keep single report")
	s.Equal(string(models.ReportStatusSuccess), reports[0].Status, "should store status")
	s.NotNil(reports[0].FinishedAt, "should store finish time")
	s.Equal(int32(10), reports[0].TotalProducts, "should store total products")
	s.Equal(int32(5), reports[0].ProductsArchived, "should store archived products")

	report.Status = models.ReportStatusError
	s.Require().ErrorIs(post.FinishReport(context.TODO(), report), platform.ErrReportNotStarted,
		"shouldn't change terminal report",
	)
}

func (s *PostgresTestSuite) TestIntegrationAddReportItem() {
	post := storage.NewPostgres(s.DB)
	source := s.addFeedSource(post)

	report, err := post.StartReport(context.TODO(), source.ID, time.Now())
	s.Require().NoError(err, "can't start report")

	err = post.AddReportItem(context.TODO(), &models.ReportItem{
		ReportID:          report.ID,
		ProductExternalID: "42",
		ErrorMessage:      lo.ToPtr("boom"),
	})
	s.Require().NoError(err, "shouldn't return any error")

	items, err := post.ReportItems(context.TODO(), report.ID)
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(items, 1, "should store item")
	s.Equal("42", items[0].ProductExternalID, "should store external id")
	s.False(items[0].Success, "should store success flag")
	s.Equal(lo.ToPtr("boom"), items[0].ErrorMessage, "should store error message")
}

func (s *PostgresTestSuite) TestIntegrationSaveProduct() {
	ctx := context.TODO()
	post := storage.NewPostgres(s.DB)
	source := s.addFeedSource(post)

	category, err := post.AddCategory(ctx, &models.Category{Title: "Ножиці", IsActive: true})
	s.Require().NoError(err, "can't add category")

	attributeID, err := post.CreateAttribute(ctx, &models.Attribute{Title: "Колір", Label: "Колір", ValueType: "text", IsActive: true})
	s.Require().NoError(err, "can't add attribute")

	valueID, err := post.CreateAttributeValue(ctx, &models.AttributeValue{
		AttributeID: attributeID,
		Title:       "Червоний",
		Label:       "Червоний",
		Value:       models.TextValue("Червоний"),
		IsActive:    true,
	})
	s.Require().NoError(err, "can't add attribute value")

	key := models.ProductKey{FeedSourceID: source.ID, ExternalID: "1001"}
	links := []models.AttributeLink{
		{AttributeID: attributeID, ValueID: valueID, RawValue: "Червоний"},
		{AttributeID: attributeID, ValueID: valueID, RawValue: "Червоний"},
		{AttributeID: attributeID, ValueID: -1, RawValue: "missing value"},
	}

	product, created, err := post.SaveProduct(ctx, key, links, func(product, previous *models.Product) error {
		s.Nil(previous, "should pass nil previous product for new product")
		s.Equal(models.ProductStatusDraft, product.Status, "should start from draft product")
		product.Name = "Ножиці кухонні"
		product.Price = 349.99
		product.Currency = "UAH"
		product.Available = true
		product.CategoryID = &category.ID
		product.Status = models.ProductStatusActive
		product.PublishedAt = lo.ToPtr(time.Now())
		return nil
	})
	s.Require().NoError(err, "shouldn't return any error")
	s.True(created, "should create product")
	s.NotZero(product.ID, "should assign id")
	s.Equal(models.ProductStatusActive, product.Status, "should store status")

	storedLinks, err := post.ProductAttributeLinks(ctx, product.ID)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal([]models.AttributeLink{links[0]}, storedLinks, "should store only existing, unique links")

	categoryAttributes := storagetesting.GetCategoryAttributes(s.T(), s.DB)
	s.Require().Len(categoryAttributes, 1, "should link attribute with category")
	s.Equal(category.ID, categoryAttributes[0].CategoryID)
	s.Equal(attributeID, categoryAttributes[0].AttributeID)

	updated, created, err := post.SaveProduct(ctx, key, links[:1], func(product, previous *models.Product) error {
		s.Require().NotNil(previous, "should pass previous product")
		s.Equal(models.ProductStatusActive, previous.Status, "should pass persisted status")
		product.Price = 299
		return nil
	})
	s.Require().NoError(err, "shouldn't return any error")
	s.False(created, "should update product")
	s.Equal(product.ID, updated.ID, "should keep product id")
	s.Equal(299.0, updated.Price, "should update price")
	s.Equal("Ножиці кухонні", updated.Name, "should keep not changed fields")
	s.Len(storagetesting.GetProducts(s.T(), s.DB, source.ID), 1, "shouldn't duplicate product")
	s.Len(storagetesting.GetCategoryAttributes(s.T(), s.DB), 1, "shouldn't duplicate category attribute")
}

func (s *PostgresTestSuite) TestIntegrationSaveProductMutatorError() {
	post := storage.NewPostgres(s.DB)
	source := s.addFeedSource(post)

	_, _, err := post.SaveProduct(context.TODO(), models.ProductKey{FeedSourceID: source.ID, ExternalID: "1"}, nil,
		func(_, _ *models.Product) error {
			return assert.AnError
		},
	)

	s.Require().ErrorIs(err, assert.AnError, "should return mutator error")
	s.Empty(storagetesting.GetProducts(s.T(), s.DB, source.ID), "shouldn't store product")
}

func (s *PostgresTestSuite) TestIntegrationArchiveMissingProducts() {
	post := storage.NewPostgres(s.DB)
	source := s.addFeedSource(post)
	otherSource := s.addFeedSource(post)

	product := func(feedSourceID int64, externalID string, status models.ProductStatus, isActive bool) pgmodels.Product {
		return pgmodels.Product{
			FeedSourceID: feedSourceID,
			ExternalID:   externalID,
			Name:         externalID,
			Currency:     "UAH",
			Status:       string(status),
			IsActive:     isActive,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
	}

	storagetesting.InsertProducts(s.T(), s.DB,
		product(source.ID, "1", models.ProductStatusActive, true),
		product(source.ID, "2", models.ProductStatusDraft, true),
		product(source.ID, "3", models.ProductStatusActive, true),
		product(source.ID, "4", models.ProductStatusArchived, true),
		product(source.ID, "5", models.ProductStatusActive, false),
		product(otherSource.ID, "2", models.ProductStatusActive, true),
	)

	archived, err := post.ArchiveMissingProducts(context.TODO(), source.ID, []string{"1"})

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int64(2), archived, "should archive missing active products")

	statuses := lo.SliceToMap(storagetesting.GetProducts(s.T(), s.DB, source.ID), func(p pgmodels.Product) (string, string) {
		return p.ExternalID, p.Status
	})
	s.Equal(map[string]string{
		"1": string(models.ProductStatusActive),
		"2": string(models.ProductStatusArchived),
		"3": string(models.ProductStatusArchived),
		"4": string(models.ProductStatusArchived),
		"5": string(models.ProductStatusActive),
	}, statuses, "should archive only missing active products")

	other := storagetesting.GetProducts(s.T(), s.DB, otherSource.ID)
	s.Equal(string(models.ProductStatusActive), other[0].Status, "shouldn't touch other feed sources")
}

func (s *PostgresTestSuite) TestIntegrationClaimDueFeedSources() {
	ctx := context.TODO()
	post := storage.NewPostgres(s.DB)
	now := time.Date(2024, time.April, 1, 12, 0, 0, 0, loc)

	add := func(nextUpdate *time.Time, isActive bool) *models.FeedSource {
		source := modelstesting.FakeFeedSource(func(fs *models.FeedSource) {
			fs.NextUpdate = nextUpdate
			fs.IsActive = isActive
		})
		stored, err := post.AddFeedSource(ctx, &source)
		s.Require().NoError(err, "can't add feed source")
		return stored
	}

	never := add(nil, true)
	due := add(lo.ToPtr(now.Add(-time.Minute)), true)
	add(lo.ToPtr(now.Add(time.Hour)), true)
	add(nil, false)

	claimed, err := post.ClaimDueFeedSources(ctx, now, time.Hour)
	s.Require().NoError(err, "shouldn't return any error")
	s.ElementsMatch([]int64{never.ID, due.ID}, lo.Map(claimed, func(fs models.FeedSource, _ int) int64 {
		return fs.ID
	}), "should claim due active feed sources")

	claimedAgain, err := post.ClaimDueFeedSources(ctx, now, time.Hour)
	s.Require().NoError(err, "shouldn't return any error")
	s.Empty(claimedAgain, "shouldn't claim leased feed sources")

	s.Require().NoError(post.UpdateFeedSchedule(ctx, due.ID, now, now.Add(3*time.Hour)))
	source, err := post.GetFeedSource(ctx, due.ID)
	s.Require().NoError(err, "shouldn't return any error")
	s.True(now.Equal(*source.LastUpdate), "should store last update")
	s.True(now.Add(3*time.Hour).Equal(*source.NextUpdate), "should store next update")
}

func (s *PostgresTestSuite) TestIntegrationVocabulary() {
	ctx := context.TODO()
	post := storage.NewPostgres(s.DB)

	firstID, err := post.CreateAttribute(ctx, &models.Attribute{Title: "Колір", Label: "Колір", ValueType: "text", IsActive: true})
	s.Require().NoError(err)
	_, err = post.CreateAttribute(ctx, &models.Attribute{Title: "Колір", Label: "Колір", ValueType: "text", IsActive: true})
	s.Require().NoError(err)
	_, err = post.CreateAttribute(ctx, &models.Attribute{Title: "Колір", Label: "Колір", ValueType: "text", IsActive: false})
	s.Require().NoError(err)

	attributes, err := post.FindAttributesByTitle(ctx, "Колір")
	s.Require().NoError(err)
	s.Require().Len(attributes, 2, "should find only active attributes")
	s.Equal(firstID, attributes[0].ID, "should order attributes by id")

	attribute, err := post.GetAttribute(ctx, firstID)
	s.Require().NoError(err)
	s.Equal("text", attribute.ValueType, "should return attribute value type")

	_, err = post.GetAttribute(ctx, -1)
	s.Require().ErrorIs(err, qrm.ErrNoRows, "should return no rows error for missing attribute")

	valueID, err := post.CreateAttributeValue(ctx, &models.AttributeValue{
		AttributeID: firstID,
		Title:       "12",
		Label:       "12",
		Value:       models.IntegerValue(12),
		IsActive:    true,
	})
	s.Require().NoError(err)

	values, err := post.FindAttributeValues(ctx, firstID, "12")
	s.Require().NoError(err)
	s.Require().Len(values, 1, "should find value")
	s.Equal(valueID, values[0].ID)
	s.Equal(models.IntegerValue(12), values[0].Value, "should restore typed value")

	_, err = post.AddCategory(ctx, &models.Category{Title: "Кухонні Ножиці", IsActive: true})
	s.Require().NoError(err)
	_, err = post.AddCategory(ctx, &models.Category{Title: "Сковорідки", Keywords: []string{"сковорідка", "пательня, гриль", "вок\n"}, IsActive: true})
	s.Require().NoError(err)
	_, err = post.AddCategory(ctx, &models.Category{Title: "Архів", Keywords: []string{"архів"}, IsActive: false})
	s.Require().NoError(err)

	categories, err := post.FindCategoriesByTitle(ctx, " кухонні ножиці ")
	s.Require().NoError(err)
	s.Len(categories, 1, "should match title case-insensitively")

	keywordCategories, err := post.ListKeywordCategories(ctx)
	s.Require().NoError(err)
	s.Require().Len(keywordCategories, 1, "should list active categories with keywords")
	s.Equal([]string{"сковорідка", "пательня, гриль", "вок"}, keywordCategories[0].Keywords, "should restore keywords")

	created, err := post.GetOrCreateCategory(ctx, "Дошки")
	s.Require().NoError(err)
	s.True(created.Created, "should create category")

	found, err := post.GetOrCreateCategory(ctx, "Дошки")
	s.Require().NoError(err)
	s.False(found.Created, "should find created category")
	s.Equal(created.ID, found.ID, "should return the same category")
}

func (s *PostgresTestSuite) TestIntegrationReplaceProductImages() {
	ctx := context.TODO()
	post := storage.NewPostgres(s.DB)
	source := s.addFeedSource(post)

	product, _, err := post.SaveProduct(ctx, models.ProductKey{FeedSourceID: source.ID, ExternalID: "7"}, nil,
		func(product, _ *models.Product) error {
			product.Name = "Дошка"
			product.Currency = "UAH"
			return nil
		},
	)
	s.Require().NoError(err)

	images := []models.ProductImage{
		{Position: 0, SourceURL: "https://img/0.jpg", FileName: "7_0.jpg", Content: []byte("zero")},
		{Position: 2, SourceURL: "https://img/2.jpg", FileName: "7_2.jpg", Content: []byte("two")},
	}
	s.Require().NoError(post.ReplaceProductImages(ctx, product.ID, images))
	s.Require().NoError(post.ReplaceProductImages(ctx, product.ID, images[1:]))

	stored, err := post.ProductImages(ctx, product.ID)
	s.Require().NoError(err)
	s.Require().Len(stored, 1, "should replace all images")
	s.Equal(int32(2), stored[0].Position)
	s.Equal([]byte("two"), stored[0].Content)

	s.Require().ErrorIs(post.ReplaceProductImages(ctx, -1, images), platform.ErrProductNotFound)

	_, err = post.GetProduct(ctx, -1)
	s.Require().ErrorIs(err, platform.ErrProductNotFound)
}
