package images_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/catalog-feed-importer/internal/images"
	"github.com/MichalMitros/catalog-feed-importer/internal/images/mocks"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models/modelstesting"
	"github.com/go-faker/faker/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	imageA = []byte{0xff, 0xd8, 0xff, 0xe0, 0x01}
	imageB = []byte{0xff, 0xd8, 0xff, 0xe0, 0x02}
	imageC = []byte{0xff, 0xd8, 0xff, 0xe0, 0x03}
)

func TestUnitSync(t *testing.T) {
	product := modelstesting.FakeProduct(func(p *models.Product) { p.ExternalID = "1001" })
	urls := []string{faker.URL() + "/a.jpg", faker.URL() + "/b.jpg", faker.URL() + "/c.jpg"}

	tests := map[string]struct {
		urls        []string
		stored      []models.ProductImage
		fetched     map[string][]byte
		wantImages  []models.ProductImage
		wantChanged bool
	}{
		"same images in different order": {
			urls: urls[:2],
			stored: []models.ProductImage{
				{Position: 0, Content: imageB},
				{Position: 1, Content: imageA},
			},
			fetched:     map[string][]byte{urls[0]: imageA, urls[1]: imageB},
			wantChanged: false,
		},
		"no images and no urls": {
			urls:        nil,
			stored:      nil,
			wantChanged: false,
		},
		"changed images are replaced": {
			urls:    urls[:2],
			stored:  []models.ProductImage{{Position: 0, Content: imageA}},
			fetched: map[string][]byte{urls[0]: imageA, urls[1]: imageC},
			wantImages: []models.ProductImage{
				{ProductID: product.ID, Position: 0, SourceURL: urls[0], FileName: "1001_0.jpg", Content: imageA},
				{ProductID: product.ID, Position: 1, SourceURL: urls[1], FileName: "1001_1.jpg", Content: imageC},
			},
			wantChanged: true,
		},
		"failed image leaves empty position": {
			urls:    urls,
			stored:  []models.ProductImage{{Position: 0, Content: imageA}, {Position: 2, Content: imageC}},
			fetched: map[string][]byte{urls[0]: imageA, urls[2]: imageC},
			wantImages: []models.ProductImage{
				{ProductID: product.ID, Position: 0, SourceURL: urls[0], FileName: "1001_0.jpg", Content: imageA},
				{ProductID: product.ID, Position: 2, SourceURL: urls[2], FileName: "1001_2.jpg", Content: imageC},
			},
			wantChanged: true,
		},
		"removed urls delete images": {
			urls:        []string{},
			stored:      []models.ProductImage{{Position: 0, Content: imageA}},
			wantImages:  []models.ProductImage{},
			wantChanged: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fetcher := mocks.NewFetcher(t)
			storage := mocks.NewStorage(t)

			storage.On("GetProduct", mock.Anything, product.ID).Return(&product, nil)
			storage.On("ProductImages", mock.Anything, product.ID).Return(tt.stored, nil)
			for _, url := range tt.urls {
				if content, ok := tt.fetched[url]; ok {
					fetcher.On("FetchImage", mock.Anything, url).Return(content, nil)
					continue
				}
				fetcher.On("FetchImage", mock.Anything, url).Return(nil, assert.AnError)
			}
			if tt.wantChanged {
				storage.On("ReplaceProductImages", mock.Anything, product.ID, tt.wantImages).Return(nil)
			}

			changed, err := newSynchronizer(fetcher, storage).Sync(context.TODO(), product.ID, tt.urls)

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.wantChanged, changed, "should report whether images were replaced")
		})
	}
}

func TestUnitSyncStorageError(t *testing.T) {
	product := modelstesting.FakeProduct()
	url := faker.URL()

	t.Run("get product error", func(t *testing.T) {
		storage := mocks.NewStorage(t)
		storage.On("GetProduct", mock.Anything, product.ID).Return(nil, platform.ErrProductNotFound)

		_, err := newSynchronizer(mocks.NewFetcher(t), storage).Sync(context.TODO(), product.ID, []string{url})

		require.ErrorIs(t, err, platform.ErrProductNotFound, "should return not found error")
	})

	t.Run("get images error", func(t *testing.T) {
		storage := mocks.NewStorage(t)
		storage.On("GetProduct", mock.Anything, product.ID).Return(&product, nil)
		storage.On("ProductImages", mock.Anything, product.ID).Return(nil, assert.AnError)

		_, err := newSynchronizer(mocks.NewFetcher(t), storage).Sync(context.TODO(), product.ID, []string{url})

		require.ErrorContains(t, err, "can't get product images", "should describe failed step")
		require.ErrorIs(t, err, assert.AnError, "should return storage error")
	})

	t.Run("replace error", func(t *testing.T) {
		fetcher := mocks.NewFetcher(t)
		storage := mocks.NewStorage(t)
		storage.On("GetProduct", mock.Anything, product.ID).Return(&product, nil)
		storage.On("ProductImages", mock.Anything, product.ID).Return(nil, nil)
		fetcher.On("FetchImage", mock.Anything, url).Return(imageA, nil)
		storage.On("ReplaceProductImages", mock.Anything, product.ID, mock.Anything).Return(assert.AnError)

		changed, err := newSynchronizer(fetcher, storage).Sync(context.TODO(), product.ID, []string{url})

		require.ErrorContains(t, err, "can't replace product images", "should describe failed step")
		require.ErrorIs(t, err, assert.AnError, "should return storage error")
		assert.False(t, changed, "shouldn't report replaced images")
	})
}

func newSynchronizer(fetcher images.Fetcher, storage images.Storage) *images.Synchronizer {
	logger := zerolog.Nop()
	return images.NewSynchronizer(fetcher, storage, &logger, images.WithConcurrency(2))
}
