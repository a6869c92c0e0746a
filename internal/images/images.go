package images

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Storage --filename storage.go

// DefaultConcurrency is default number of images fetched at once.
const DefaultConcurrency = 4

// Fetcher fetches image bytes.
type Fetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Storage is product images storage.
type Storage interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	// ProductImages returns images of product ordered by position.
	ProductImages(ctx context.Context, productID int64) ([]models.ProductImage, error)
	// ReplaceProductImages deletes all images of product and inserts provided ones in single transaction.
	ReplaceProductImages(ctx context.Context, productID int64, images []models.ProductImage) error
}

// Option is custom configuration of Synchronizer.
type Option func(s *Synchronizer)

// Synchronizer makes stored product images match images under product's picture URLs.
type Synchronizer struct {
	fetcher     Fetcher
	storage     Storage
	concurrency int
	logger      *zerolog.Logger
}

// NewSynchronizer returns new Synchronizer.
func NewSynchronizer(fetcher Fetcher, storage Storage, logger *zerolog.Logger, ops ...Option) *Synchronizer {
	s := &Synchronizer{
		fetcher:     fetcher,
		storage:     storage,
		concurrency: DefaultConcurrency,
		logger:      logger,
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

// WithConcurrency sets maximal number of images fetched at once.
func WithConcurrency(n int) Option {
	return func(s *Synchronizer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

type fetchedImage struct {
	url     string
	content []byte
	hash    string
}

// Sync fetches images from urls and replaces product images when set of their SHA-256 hashes
// differs from stored ones. Images which can't be fetched are skipped, leaving their positions empty.
// It returns true if images were replaced.
func (s *Synchronizer) Sync(ctx context.Context, productID int64, urls []string) (bool, error) {
	product, err := s.storage.GetProduct(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("can't get product: %w", err)
	}

	stored, err := s.storage.ProductImages(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("can't get product images: %w", err)
	}

	fetched, err := s.fetchAll(ctx, productID, urls)
	if err != nil {
		return false, err
	}

	storedHashes := lo.Map(stored, func(img models.ProductImage, _ int) string { return hashContent(img.Content) })
	fetchedHashes := lo.Map(fetched, func(img fetchedImage, _ int) string { return img.hash })
	if sameSet(storedHashes, fetchedHashes) {
		s.logger.Debug().
			Int64("productId", productID).
			Msg("product images unchanged")
		return false, nil
	}

	images := make([]models.ProductImage, 0, len(fetched))
	for ix := range fetched {
		if fetched[ix].content == nil {
			continue
		}

		images = append(images, models.ProductImage{
			ProductID: productID,
			Position:  int32(ix),
			SourceURL: fetched[ix].url,
			FileName:  fmt.Sprintf("%s_%d.jpg", product.ExternalID, ix),
			Content:   fetched[ix].content,
		})
	}

	if err := s.storage.ReplaceProductImages(ctx, productID, images); err != nil {
		return false, fmt.Errorf("can't replace product images: %w", err)
	}

	s.logger.Info().
		Int64("productId", productID).
		Int("images", len(images)).
		Int("urls", len(urls)).
		Msg("product images replaced")

	return true, nil
}

// fetchAll fetches images keeping urls order. Failed fetches have no content and empty hash.
func (s *Synchronizer) fetchAll(ctx context.Context, productID int64, urls []string) ([]fetchedImage, error) {
	fetched := make([]fetchedImage, len(urls))

	errGroup, egCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(s.concurrency)

	for ix, url := range urls {
		fetched[ix].url = url

		errGroup.Go(func() error {
			content, err := s.fetcher.FetchImage(egCtx, url)
			if err != nil {
				s.logger.Warn().
					Err(err).
					Int64("productId", productID).
					Str("url", url).
					Msg("can't fetch image, skipping")
				return nil
			}

			fetched[ix].content = content
			fetched[ix].hash = hashContent(content)

			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, fmt.Errorf("can't fetch images: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("can't fetch images: %w", err)
	}

	return fetched, nil
}

func hashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func sameSet(a, b []string) bool {
	setA := lo.Uniq(a)
	setB := lo.Uniq(b)

	if len(setA) != len(setB) {
		return false
	}

	return lo.Every(setA, setB)
}
