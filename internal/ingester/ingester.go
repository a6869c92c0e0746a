package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/fetcher"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Downloader --filename downloader.go
//go:generate mockery --name Decoder --filename decoder.go
//go:generate mockery --name Resolver --filename resolver.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Dispatcher --filename dispatcher.go
//go:generate mockery --name ReportPublisher --filename reportpublisher.go

// Downloader downloads feed file, retrying failed attempts.
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Decoder decodes feed file.
type Decoder interface {
	Decode(raw []byte) (*models.Feed, error)
}

// Resolver matches feed values with catalog categories, attributes and attribute values.
type Resolver interface {
	FindAttribute(ctx context.Context, name string) (*models.Resolution, error)
	FindOrCreateValue(ctx context.Context, attributeID int64, raw string) (*models.Resolution, error)
	// FindCategory returns nil when no category matches.
	FindCategory(ctx context.Context, categoryName, productName string) (*models.Resolution, error)
	GetOrCreateCategory(ctx context.Context, title string) (*models.Resolution, error)
}

// Storage is feed sources, reports and products storage.
type Storage interface {
	GetFeedSource(ctx context.Context, id int64) (*models.FeedSource, error)
	// StartReport creates new report if there is no run for provided feed source running.
	StartReport(ctx context.Context, feedSourceID int64, startedAt time.Time) (*models.Report, error)
	// FinishReport stores report's terminal status and counters.
	FinishReport(ctx context.Context, report *models.Report) error
	AddReportItem(ctx context.Context, item *models.ReportItem) error
	// SaveProduct applies mutate to locked product and saves it with its attribute links in single transaction.
	// Returns saved product and true if product was created.
	SaveProduct(
		ctx context.Context,
		key models.ProductKey,
		links []models.AttributeLink,
		mutate models.ProductMutator,
	) (*models.Product, bool, error)
	// ArchiveMissingProducts archives active products of feed source whose external ids are not in seen.
	ArchiveMissingProducts(ctx context.Context, feedSourceID int64, seen []string) (int64, error)
	UpdateFeedSchedule(ctx context.Context, id int64, lastUpdate, nextUpdate time.Time) error
}

// Dispatcher dispatches image synchronization of saved products.
type Dispatcher interface {
	SendSyncImagesCommand(ctx context.Context, productID int64, imageURLs []string) error
}

// ReportPublisher publishes finished reports.
type ReportPublisher interface {
	PublishReport(ctx context.Context, report *models.Report) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Ingester.
type Option func(i *Ingester)

// Ingester downloads feed of feed source and reconciles its offers with catalog products.
type Ingester struct {
	downloader Downloader
	decoder    Decoder
	resolver   Resolver
	storage    Storage
	dispatcher Dispatcher
	publisher  ReportPublisher
	clock      Clock
	logger     *zerolog.Logger
}

// NewIngester returns new Ingester.
func NewIngester(
	downloader Downloader,
	decoder Decoder,
	resolver Resolver,
	storage Storage,
	dispatcher Dispatcher,
	logger *zerolog.Logger,
	ops ...Option,
) *Ingester {
	ing := &Ingester{
		downloader: downloader,
		decoder:    decoder,
		resolver:   resolver,
		storage:    storage,
		dispatcher: dispatcher,
		clock:      systemClock{},
		logger:     logger,
	}

	for _, op := range ops {
		op(ing)
	}

	return ing
}

// WithClock sets Ingester's custom Clock.
func WithClock(c Clock) Option {
	return func(i *Ingester) {
		i.clock = c
	}
}

// WithReportPublisher sets publisher notified about every finished report.
func WithReportPublisher(p ReportPublisher) Option {
	return func(i *Ingester) {
		i.publisher = p
	}
}

// Ingest runs ingestion of feed source and returns its finished report.
// Failed offers are recorded as report items and don't abort the run. Download, parsing
// and bookkeeping errors finish the report with error status and are returned.
// Cancelling ctx stops the run before the next offer, the report is still finished with error status.
func (i *Ingester) Ingest(ctx context.Context, feedSourceID int64) (*models.Report, error) {
	source, err := i.storage.GetFeedSource(ctx, feedSourceID)
	if err != nil {
		return nil, fmt.Errorf("can't get feed source %d: %w", feedSourceID, err)
	}

	report, err := i.storage.StartReport(ctx, feedSourceID, i.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("can't start ingestion: %w", err)
	}

	logger := i.logger.With().
		Int64("feedSourceId", feedSourceID).
		Int64("reportId", report.ID).
		Logger()

	raw, err := i.downloader.Download(ctx, source.XMLURL)
	if err != nil {
		return i.finishIngestion(ctx, &logger, report, fmt.Errorf("can't download feed: %w", err))
	}

	feed, err := i.decoder.Decode(raw)
	if err != nil {
		return i.finishIngestion(ctx, &logger, report, fmt.Errorf("can't decode feed: %w", err))
	}

	report.TotalProducts = int32(len(feed.Offers))
	categories := models.NewCategoryIndex(feed.Categories)

	for ix := range feed.Offers {
		if err := ctx.Err(); err != nil {
			return i.finishIngestion(ctx, &logger, report, fmt.Errorf("ingestion interrupted: %w", err))
		}
		if err := i.ingestOffer(ctx, &logger, source, report, categories, &feed.Offers[ix]); err != nil {
			i.recordFailure(ctx, &logger, report, feed.Offers[ix].ExternalID, err)
		}
	}

	seen := lo.Map(feed.Offers, func(o models.FeedOffer, _ int) string { return o.ExternalID })
	archived, err := i.storage.ArchiveMissingProducts(ctx, feedSourceID, seen)
	if err != nil {
		return i.finishIngestion(ctx, &logger, report, fmt.Errorf("can't archive missing products: %w", err))
	}
	report.ProductsArchived = int32(archived)

	now := i.clock.Now()
	nextUpdate := now.Add(time.Duration(source.FrequencyHours) * time.Hour)
	if err := i.storage.UpdateFeedSchedule(ctx, feedSourceID, now, nextUpdate); err != nil {
		return i.finishIngestion(ctx, &logger, report, fmt.Errorf("can't update feed schedule: %w", err))
	}

	return i.finishIngestion(ctx, &logger, report, nil)
}

// ingestOffer resolves offer's category and attributes and saves it as product.
// Offer without resolvable category is counted as unpublished and nothing is saved.
func (i *Ingester) ingestOffer(
	ctx context.Context,
	logger *zerolog.Logger,
	source *models.FeedSource,
	report *models.Report,
	categories models.CategoryIndex,
	offer *models.FeedOffer,
) error {
	categoryID, err := i.resolveCategory(ctx, report, categories.Name(offer.CategoryID), offer.Name)
	if err != nil {
		return err
	}

	if categoryID == nil {
		report.ProductsUnpublished++
		logger.Warn().
			Str("externalId", offer.ExternalID).
			Str("categoryId", offer.CategoryID).
			Msg("category not resolved, offer skipped")
		return nil
	}

	links := i.resolveAttributes(ctx, logger, report, offer)

	var unpublished bool
	product, created, err := i.storage.SaveProduct(
		ctx,
		models.ProductKey{FeedSourceID: source.ID, ExternalID: offer.ExternalID},
		links,
		func(product *models.Product, previous *models.Product) error {
			unpublished = applyOffer(product, previous, offer, *categoryID, i.clock.Now())
			return nil
		},
	)
	if err != nil {
		return err
	}

	if created {
		report.ProductsAdded++
	} else {
		report.ProductsUpdated++
	}
	if unpublished {
		report.ProductsUnpublished++
	}

	if len(offer.Pictures) == 0 {
		return nil
	}

	if err := i.dispatcher.SendSyncImagesCommand(ctx, product.ID, offer.Pictures); err != nil {
		logger.Error().
			Err(err).
			Str("externalId", offer.ExternalID).
			Int64("productId", product.ID).
			Msg("can't dispatch image synchronization")
	}

	return nil
}

// resolveCategory matches category by name and product name, falling back to category with feed category title.
// It returns nil when category can't be resolved.
func (i *Ingester) resolveCategory(
	ctx context.Context,
	report *models.Report,
	categoryName string,
	productName string,
) (*int64, error) {
	match, err := i.resolver.FindCategory(ctx, categoryName, productName)
	if err != nil {
		return nil, fmt.Errorf("can't match category: %w", err)
	}
	if match != nil {
		return &match.ID, nil
	}

	if categoryName == "" {
		return nil, nil
	}

	match, err = i.resolver.GetOrCreateCategory(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("can't get or create category: %w", err)
	}
	if match.Created {
		report.CategoriesCreated++
	}

	return &match.ID, nil
}

// resolveAttributes returns links of offer's attribute values. Repeated values of list attribute
// are linked once, values which can't be resolved are skipped.
func (i *Ingester) resolveAttributes(
	ctx context.Context,
	logger *zerolog.Logger,
	report *models.Report,
	offer *models.FeedOffer,
) []models.AttributeLink {
	var links []models.AttributeLink

	for _, attribute := range offer.Attributes {
		attr, err := i.resolver.FindAttribute(ctx, attribute.Name)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("externalId", offer.ExternalID).
				Str("attribute", attribute.Name).
				Msg("can't resolve attribute, skipping")
			continue
		}
		if attr.Created {
			report.AttributesCreated++
		}

		values := attribute.Values
		if attribute.IsList() {
			values = lo.Uniq(values)
		}

		for _, raw := range values {
			value, err := i.resolver.FindOrCreateValue(ctx, attr.ID, raw)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("externalId", offer.ExternalID).
					Str("attribute", attribute.Name).
					Str("value", raw).
					Msg("can't resolve attribute value, skipping")
				continue
			}
			if value.Created {
				report.AttributeValuesCreated++
			}

			links = append(links, models.AttributeLink{
				AttributeID: attr.ID,
				ValueID:     value.ID,
				RawValue:    raw,
			})
		}
	}

	return links
}

func (i *Ingester) recordFailure(
	ctx context.Context,
	logger *zerolog.Logger,
	report *models.Report,
	externalID string,
	failure error,
) {
	report.ProductsFailed++
	ctx = context.WithoutCancel(ctx)

	logger.Error().
		Err(failure).
		Str("externalId", externalID).
		Msg("can't ingest offer")

	err := i.storage.AddReportItem(ctx, &models.ReportItem{
		ReportID:          report.ID,
		ProductExternalID: externalID,
		Success:           false,
		ErrorMessage:      lo.ToPtr(failure.Error()),
	})
	if err != nil {
		logger.Error().
			Err(err).
			Str("externalId", externalID).
			Msg("can't add report item")
	}
}

func (i *Ingester) finishIngestion(
	ctx context.Context,
	logger *zerolog.Logger,
	report *models.Report,
	status error,
) (*models.Report, error) {
	report.Status = models.ReportStatusSuccess
	if status != nil {
		report.Status = models.ReportStatusError

		var downloadErr *fetcher.DownloadError
		if errors.As(status, &downloadErr) {
			report.DownloadError = lo.ToPtr(status.Error())
		} else {
			report.ParsingError = lo.ToPtr(status.Error())
		}
	}
	report.FinishedAt = lo.ToPtr(i.clock.Now())

	// report has to reach terminal status even when run was cancelled
	ctx = context.WithoutCancel(ctx)
	err := i.storage.FinishReport(ctx, report)
	if err != nil && status == nil {
		return report, fmt.Errorf("can't finish ingestion: %w", err)
	}

	if err != nil && status != nil {
		return report, fmt.Errorf("can't finish failed ingestion: %w (fail reason: %w)", err, status)
	}

	i.publishReport(ctx, logger, report)

	if status != nil {
		logger.Error().
			Err(status).
			Msg("ingestion failed")
		return report, status
	}

	logger.Info().
		Int32("total", report.TotalProducts).
		Int32("added", report.ProductsAdded).
		Int32("updated", report.ProductsUpdated).
		Int32("failed", report.ProductsFailed).
		Int32("unpublished", report.ProductsUnpublished).
		Int32("archived", report.ProductsArchived).
		Msg("ingestion finished")

	return report, nil
}

func (i *Ingester) publishReport(ctx context.Context, logger *zerolog.Logger, report *models.Report) {
	if i.publisher == nil {
		return
	}

	if err := i.publisher.PublishReport(ctx, report); err != nil {
		logger.Error().
			Err(err).
			Msg("can't publish report")
	}
}
