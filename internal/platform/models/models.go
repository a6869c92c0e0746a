package models

import "time"

// FeedSource is configured remote catalog origin.
type FeedSource struct {
	ID             int64
	Name           string
	Company        string
	XMLURL         string
	FrequencyHours int32
	LastUpdate     *time.Time
	NextUpdate     *time.Time
	IsActive       bool
	CreatedAt      time.Time
}

// ReportStatus is status of feed parsing run.
type ReportStatus string

const (
	// ReportStatusStarted is status of run in progress.
	ReportStatusStarted ReportStatus = "started"
	// ReportStatusSuccess is status of run finished successfully.
	ReportStatusSuccess ReportStatus = "success"
	// ReportStatusError is status of run aborted by feed level error.
	ReportStatusError ReportStatus = "error"
)

// IsTerminal reports whether status is final.
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusSuccess || s == ReportStatusError
}

// Report is feed parsing run model.
type Report struct {
	ID           int64
	FeedSourceID int64
	Status       ReportStatus
	StartedAt    time.Time
	FinishedAt   *time.Time

	TotalProducts       int32
	ProductsAdded       int32
	ProductsUpdated     int32
	ProductsFailed      int32
	ProductsUnpublished int32
	ProductsArchived    int32

	CategoriesCreated      int32
	AttributesCreated      int32
	AttributeValuesCreated int32

	DownloadError *string
	ParsingError  *string
}

// ReportItem is failed offer record of a run.
type ReportItem struct {
	ID                int64
	ReportID          int64
	ProductExternalID string
	Success           bool
	ErrorMessage      *string
	CreatedAt         time.Time
}

// Feed is decoded feed file.
type Feed struct {
	Shop       ShopInfo
	Categories []FeedCategory
	Offers     []FeedOffer
}

// ShopInfo holds feed's shop metadata.
type ShopInfo struct {
	Name    string
	Company string
	URL     string
	Date    time.Time
}

// FeedCategory is category declared in feed.
type FeedCategory struct {
	ExternalID string
	Name       string
	RozetkaID  *string
}

// FeedOffer is single valid offer from feed.
type FeedOffer struct {
	ExternalID    string
	Available     bool
	URL           string
	Price         float64
	Currency      string
	CategoryID    string
	Name          string
	Pictures      []string
	Vendor        string
	Description   string
	Article       string
	Attributes    []OfferAttribute
	StockQuantity int32
}

// OfferAttribute is offer param with all values found under its name, in document order.
type OfferAttribute struct {
	Name   string
	Values []string
}

// IsList reports whether param was repeated in offer.
func (a OfferAttribute) IsList() bool {
	return len(a.Values) > 1
}

// CategoryIndex maps feed category ids to feed category names.
type CategoryIndex map[string]string

// NewCategoryIndex builds CategoryIndex from feed categories.
// When id is declared twice, the first declaration wins.
func NewCategoryIndex(categories []FeedCategory) CategoryIndex {
	index := make(CategoryIndex, len(categories))
	for ix := range categories {
		if _, ok := index[categories[ix].ExternalID]; ok {
			continue
		}
		index[categories[ix].ExternalID] = categories[ix].Name
	}
	return index
}

// Name returns category name for feed category id.
func (c CategoryIndex) Name(externalID string) string {
	return c[externalID]
}

// ProductStatus is catalog product lifecycle status.
type ProductStatus string

const (
	// ProductStatusDraft is status of product which is not ready for publishing.
	ProductStatusDraft ProductStatus = "draft"
	// ProductStatusActive is status of published product.
	ProductStatusActive ProductStatus = "active"
	// ProductStatusArchived is status of product gone from feed or unavailable.
	ProductStatusArchived ProductStatus = "archived"
)

// ProductKey identifies product within catalog.
type ProductKey struct {
	FeedSourceID int64
	ExternalID   string
}

// Product is catalog product model.
type Product struct {
	ID            int64
	FeedSourceID  int64
	ExternalID    string
	Name          string
	Vendor        string
	Article       string
	Description   string
	Price         float64
	OldPrice      *float64
	PromoPrice    *float64
	Currency      string
	StockQuantity int32
	Available     bool
	CategoryID    *int64
	URL           string
	ViewsCount    int32
	Status        ProductStatus
	PublishedAt   *time.Time
	IsNew         bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductMutator changes product locked for update. Previous holds product as it was persisted,
// it is nil for product which doesn't exist yet.
type ProductMutator func(product *Product, previous *Product) error

// Category is catalog category.
type Category struct {
	ID        int64
	Title     string
	Keywords  []string
	IsActive  bool
	CreatedAt time.Time
}

// Attribute is canonical product attribute.
type Attribute struct {
	ID        int64
	Title     string
	Label     string
	ValueType string
	SortOrder int32
	IsActive  bool
	CreatedAt time.Time
}

// AttributeValue is canonical value of Attribute.
type AttributeValue struct {
	ID          int64
	AttributeID int64
	Title       string
	Label       string
	Value       TypedValue
	SortOrder   int32
	IsActive    bool
	CreatedAt   time.Time
}

// AttributeLink binds product to resolved attribute and value.
type AttributeLink struct {
	AttributeID int64
	ValueID     int64
	RawValue    string
}

// Resolution is result of entity matching.
type Resolution struct {
	ID      int64
	Created bool
}

// ProductImage is stored product image.
type ProductImage struct {
	ID        int64
	ProductID int64
	Position  int32
	SourceURL string
	FileName  string
	Content   []byte
	CreatedAt time.Time
}
