//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/cmd/importer/config"
	"github.com/MichalMitros/catalog-feed-importer/e2e/helpers"
	"github.com/MichalMitros/catalog-feed-importer/internal/decoder"
	"github.com/MichalMitros/catalog-feed-importer/internal/fetcher"
	"github.com/MichalMitros/catalog-feed-importer/internal/handler"
	"github.com/MichalMitros/catalog-feed-importer/internal/images"
	"github.com/MichalMitros/catalog-feed-importer/internal/ingester"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/cache"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/rabbitmq"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage"
	pgmodels "github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/catalog-feed-importer/internal/resolver"
	"github.com/MichalMitros/catalog-feed-importer/pkg/v1/commander"
	"github.com/caarlos0/env/v6"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	userAgent   = "cfi-e2e-test/0.0.1"
	exchange    = "cfi-e2e"
	waitTimeout = 30 * time.Second
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	os.Exit(m.Run())
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

type E2ETestSuite struct {
	suite.Suite
	cfg        *config.Config
	connection *amqp.Connection
	channel    *amqp.Channel
	db         *sql.DB
}

func (s *E2ETestSuite) SetupSuite() {
	var err error

	var cfg config.Config
	if err = env.Parse(&cfg); err != nil {
		s.Require().FailNow("can't parse env variables", err)
	}
	s.cfg = &cfg

	if s.connection, err = amqp.Dial(cfg.RabbitMQ.URL); err != nil {
		s.Require().FailNow("can't open RabbitMQ connection", err)
	}

	if s.channel, err = s.connection.Channel(); err != nil {
		s.Require().FailNow("can't open RabbitMQ channel", err)
	}

	s.db = storagetesting.Open(s.T())
}

func (s *E2ETestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.db)
	if err := s.db.Close(); err != nil {
		s.FailNow("can't close Postgres connection", err)
	}

	if err := s.channel.Close(); err != nil {
		s.FailNow("can't close RabbitMQ channel", err)
	}

	if err := s.connection.Close(); err != nil {
		s.FailNow("can't close RabbitMQ connection", err)
	}
}

func (s *E2ETestSuite) TestFeedIngestion() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Prepare test RMQ queues
	suffix := rand.Int63n(100000)
	feedQueue := fmt.Sprintf("cfi-e2e-feeds-%d", suffix)
	imagesQueue := fmt.Sprintf("cfi-e2e-images-%d", suffix)
	feedRoutingKey := fmt.Sprintf("cfi.feeds.e2e.%d", suffix)
	imagesRoutingKey := fmt.Sprintf("cfi.images.e2e.%d", suffix)

	rmq, err := rabbitmq.NewRabbitMQ(s.connection, exchange, rabbitmq.WithPrefetch(1))
	if err != nil {
		s.Require().FailNow("can't create RabbitMQ client", err)
	}
	s.Require().NoError(rmq.Declare(feedQueue, feedRoutingKey))
	s.Require().NoError(rmq.Declare(imagesQueue, imagesRoutingKey))
	helpers.DeleteRMQQueueOnCleanup(s.T(), s.channel, feedQueue)
	helpers.DeleteRMQQueueOnCleanup(s.T(), s.channel, imagesQueue)

	// Prepare test data, 45 offers: first feed has offers 1-25, second has 11-45,
	// so finally all products are stored and first 10 are archived
	httpSrv, setFeedFile := helpers.PrepareMockedHTTPServer(s.T())
	categoryName := fmt.Sprintf("E2E category %d", suffix)
	offers := helpers.GenerateOffers(s.T(), 45, "1", httpSrv.URL)
	feedFiles := lo.Map([][]models.FeedOffer{offers[:25], offers[10:]}, func(feedOffers []models.FeedOffer, _ int) []byte {
		return helpers.FeedToXML(s.T(), &models.Feed{
			Shop: models.ShopInfo{
				Name:    "E2E Shop",
				Company: "E2E Shop LLC",
				URL:     httpSrv.URL,
				Date:    time.Date(2024, time.May, 14, 10, 30, 0, 0, time.UTC),
			},
			Categories: []models.FeedCategory{{ExternalID: "1", Name: categoryName}},
			Offers:     feedOffers,
		})
	})
	setFeedFile(feedFiles[0])

	store := storage.NewPostgres(s.db)
	source, err := store.AddFeedSource(ctx, &models.FeedSource{
		Name:           "e2e",
		Company:        "e2e",
		XMLURL:         httpSrv.URL + helpers.FeedPath,
		FrequencyHours: 3,
		IsActive:       true,
	})
	s.Require().NoError(err)

	// Prepare test logger
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	// Prepare commanders and services
	feedCommander := commander.NewFeedCommander(commander.NewRabbitMQSender(rmq, feedRoutingKey))
	imagesCommander := commander.NewImagesCommander(commander.NewRabbitMQSender(rmq, imagesRoutingKey))

	ing := ingester.NewIngester(
		fetcher.NewFetcher(httpSrv.Client(), userAgent),
		decoder.NewDecoder(&logger),
		resolver.NewResolver(store, cache.NewMemory(), &logger),
		store,
		imagesCommander,
		&logger,
	)
	synchronizer := images.NewSynchronizer(fetcher.NewFetcher(httpSrv.Client(), userAgent), store, &logger)

	// Prepare and run handler
	han := handler.NewHandler(rmq, ing, synchronizer, feedCommander, &logger)
	s.Require().NoError(han.Start(ctx, feedQueue, imagesQueue), "handler shouldn't return any error")

	// First iteration
	s.Require().NoError(feedCommander.SendProcessFeedCommand(ctx, source.ID), "can't publish process feed command")

	firstReport := helpers.WaitForReport(s.T(), s.db, source.ID, 1, waitTimeout)

	s.Equal(string(models.ReportStatusSuccess), firstReport.Status, "first run should succeed")
	s.Equal(int32(25), firstReport.TotalProducts, "should return correct number of total products")
	s.Equal(int32(25), firstReport.ProductsAdded, "should return correct number of added products")
	s.Equal(int32(0), firstReport.ProductsUpdated, "should return correct number of updated products")
	s.Equal(int32(0), firstReport.ProductsArchived, "should return correct number of archived products")
	s.Equal(int32(0), firstReport.ProductsFailed, "should return correct number of failed products")
	s.Equal(int32(1), firstReport.CategoriesCreated, "should create feed category once")

	dbProducts := storagetesting.GetProducts(s.T(), s.db, source.ID)
	assertProducts(s.T(), offers[:25], dbProducts)

	// Images are synchronized asynchronously
	helpers.WaitFor(s.T(), waitTimeout, func() bool {
		return lo.EveryBy(dbProducts, func(p pgmodels.Product) bool {
			stored, err := store.ProductImages(ctx, p.ID)
			return err == nil && len(stored) == 2
		})
	})

	// Second iteration
	setFeedFile(feedFiles[1])

	s.Require().NoError(feedCommander.SendProcessFeedCommand(ctx, source.ID), "can't publish process feed command")

	secondReport := helpers.WaitForReport(s.T(), s.db, source.ID, 2, waitTimeout)

	s.Equal(string(models.ReportStatusSuccess), secondReport.Status, "second run should succeed")
	s.Equal(int32(35), secondReport.TotalProducts, "should return correct number of total products")
	s.Equal(int32(20), secondReport.ProductsAdded, "should return correct number of added products")
	s.Equal(int32(15), secondReport.ProductsUpdated, "should return correct number of updated products")
	s.Equal(int32(10), secondReport.ProductsArchived, "should return correct number of archived products")
	s.Equal(int32(0), secondReport.ProductsFailed, "should return correct number of failed products")
	s.Equal(int32(0), secondReport.CategoriesCreated, "should reuse created category")

	dbProducts = storagetesting.GetProducts(s.T(), s.db, source.ID)
	byExternalID := lo.KeyBy(dbProducts, func(p pgmodels.Product) string { return p.ExternalID })
	require.Len(s.T(), byExternalID, 45, "all products should be stored")

	for _, offer := range offers[:10] {
		assert.Equalf(s.T(), string(models.ProductStatusArchived), byExternalID[offer.ExternalID].Status,
			"product %s should be archived", offer.ExternalID)
	}

	assertProducts(s.T(), offers[10:], lo.Map(offers[10:], func(o models.FeedOffer, _ int) pgmodels.Product {
		return byExternalID[o.ExternalID]
	}))

	// Cancel context to stop consumers
	cancel()
	<-rmq.Done()
}

// assertProducts is helper function for comparing stored products with offers they were created from.
func assertProducts(t *testing.T, expected []models.FeedOffer, actual []pgmodels.Product) {
	t.Helper()

	require.Len(t, actual, len(expected), "incorrect number of products")

	actualByExternalID := lo.KeyBy(actual, func(p pgmodels.Product) string { return p.ExternalID })

	for _, exp := range expected {
		act, ok := actualByExternalID[exp.ExternalID]
		if !assert.Truef(t, ok, "product %s is missing", exp.ExternalID) {
			continue
		}

		assert.Equalf(t, exp.Name, act.Name, "product %s has incorrect name", exp.ExternalID)
		assert.InDeltaf(t, exp.Price, act.Price, 0.001, "product %s has incorrect price", exp.ExternalID)
		assert.Equalf(t, exp.Vendor, act.Vendor, "product %s has incorrect vendor", exp.ExternalID)
		assert.Equalf(t, exp.StockQuantity, act.StockQuantity, "product %s has incorrect stock", exp.ExternalID)
		assert.Equalf(t, string(models.ProductStatusActive), act.Status, "product %s should be active", exp.ExternalID)
		assert.NotNilf(t, act.CategoryID, "product %s should have category", exp.ExternalID)
		assert.NotNilf(t, act.PublishedAt, "product %s should be published", exp.ExternalID)
	}
}
