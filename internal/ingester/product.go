package ingester

import (
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
)

// applyOffer overwrites product with offer data and derives its status.
// It returns true when active product was archived because offer is unavailable.
func applyOffer(
	product *models.Product,
	previous *models.Product,
	offer *models.FeedOffer,
	categoryID int64,
	now time.Time,
) bool {
	product.Name = offer.Name
	product.Vendor = offer.Vendor
	product.Article = offer.Article
	product.Description = offer.Description
	product.Price = offer.Price
	product.Currency = offer.Currency
	product.StockQuantity = offer.StockQuantity
	product.Available = offer.Available
	product.URL = offer.URL
	product.CategoryID = &categoryID

	status := deriveStatus(product, offer)
	if status == models.ProductStatusActive && (previous == nil || previous.Status != models.ProductStatusActive) {
		product.PublishedAt = &now
	}

	unpublished := false
	if status == models.ProductStatusActive && !offer.Available {
		status = models.ProductStatusArchived
		unpublished = true
	}
	product.Status = status

	return unpublished
}

// deriveStatus returns active status for product ready to be published, draft otherwise.
func deriveStatus(product *models.Product, offer *models.FeedOffer) models.ProductStatus {
	if product.Name != "" && product.Price > 0 && len(offer.Pictures) > 0 && product.CategoryID != nil {
		return models.ProductStatusActive
	}

	return models.ProductStatusDraft
}
