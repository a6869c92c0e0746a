package testdata

import (
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/samber/lo"
)

// Feed is expected result of decoding feed.xml.
var Feed = models.Feed{
	Shop: models.ShopInfo{
		Name:    "Kitchen Store",
		Company: "Kitchen Store LLC",
		URL:     "https://kitchen.example.com",
		Date:    time.Date(2024, time.May, 14, 10, 30, 0, 0, time.UTC),
	},
	Categories: []models.FeedCategory{
		{
			ExternalID: "10",
			Name:       "Ножиці кухонні",
			RozetkaID:  lo.ToPtr("4626923"),
		},
		{
			ExternalID: "11",
			Name:       `Ножі "Шеф"`,
		},
	},
	Offers: []models.FeedOffer{
		{
			ExternalID: "1001",
			Available:  true,
			URL:        "https://kitchen.example.com/p/1001",
			Price:      349.99,
			Currency:   "UAH",
			CategoryID: "10",
			Name:       "Ножиці кухонні з нержавійки",
			Pictures: []string{
				"https://kitchen.example.com/img/1001_1.jpg",
				"https://kitchen.example.com/img/1001_2.jpg",
			},
			Vendor:      "Fiskars",
			Description: "<p>Гострі ножиці</p>",
			Article:     "FS-1001",
			Attributes: []models.OfferAttribute{
				{Name: "Колір", Values: []string{"Червоний"}},
				{Name: "Розмір", Values: []string{"S", "M"}},
			},
			StockQuantity: 5,
		},
		{
			ExternalID:    "1002",
			Available:     false,
			URL:           "https://kitchen.example.com/p/1002",
			Price:         199.5,
			Currency:      "UAH",
			CategoryID:    "11",
			Name:          "Ніж шеф-кухаря",
			Pictures:      []string{},
			Vendor:        "Victorinox",
			Description:   `Ніж "Шеф"`,
			StockQuantity: 0,
		},
		{
			ExternalID: "1006",
			Available:  true,
			Price:      55,
			Currency:   "USD",
			CategoryID: "99",
			Name:       "Дошка для нарізання",
			Pictures:   []string{"https://kitchen.example.com/img/1006.jpg"},
			Attributes: []models.OfferAttribute{
				{Name: "Матеріал", Values: []string{"Бамбук"}},
			},
		},
	},
}
