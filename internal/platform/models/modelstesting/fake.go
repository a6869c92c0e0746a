package modelstesting

import (
	"math/rand"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/go-faker/faker/v4"
)

// FakeOffer returns valid models.FeedOffer with fake data, random number of pictures and attributes.
func FakeOffer(ops ...func(o *models.FeedOffer)) models.FeedOffer {
	offer := models.FeedOffer{
		ExternalID:    faker.UUIDDigit(),
		Available:     true,
		URL:           faker.URL(),
		Price:         float64(rand.Intn(10000)+1) / 100,
		Currency:      "UAH",
		CategoryID:    faker.Word(),
		Name:          faker.Sentence(),
		Pictures:      fakePictures(),
		Vendor:        faker.Word(),
		Description:   faker.Paragraph(),
		Article:       faker.Word(),
		Attributes:    fakeAttributes(),
		StockQuantity: rand.Int31n(100),
	}

	for _, op := range ops {
		op(&offer)
	}

	return offer
}

// FakeFeedSource returns active models.FeedSource with fake data.
func FakeFeedSource(ops ...func(s *models.FeedSource)) models.FeedSource {
	source := models.FeedSource{
		ID:             rand.Int63n(1000) + 1,
		Name:           faker.Word(),
		Company:        faker.Word(),
		XMLURL:         faker.URL(),
		FrequencyHours: 3,
		IsActive:       true,
	}

	for _, op := range ops {
		op(&source)
	}

	return source
}

// FakeProduct returns models.Product with fake data.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:            rand.Int63n(100000) + 1,
		FeedSourceID:  rand.Int63n(1000) + 1,
		ExternalID:    faker.UUIDDigit(),
		Name:          faker.Sentence(),
		Vendor:        faker.Word(),
		Article:       faker.Word(),
		Description:   faker.Paragraph(),
		Price:         float64(rand.Intn(10000)+1) / 100,
		Currency:      "UAH",
		StockQuantity: rand.Int31n(100),
		Available:     true,
		URL:           faker.URL(),
		Status:        models.ProductStatusDraft,
		IsActive:      true,
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

func fakePictures() []string {
	picturesLen := rand.Intn(4) + 1
	pictures := make([]string, 0, picturesLen)
	for range picturesLen {
		pictures = append(pictures, faker.URL())
	}

	return pictures
}

func fakeAttributes() []models.OfferAttribute {
	attributesLen := rand.Intn(4)
	attributes := make([]models.OfferAttribute, 0, attributesLen)
	for ix := range attributesLen {
		attributes = append(attributes, models.OfferAttribute{
			Name:   faker.Word() + string(rune('a'+ix)),
			Values: []string{faker.Word()},
		})
	}

	return attributes
}
