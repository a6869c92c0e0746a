package decoder

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/net/html/charset"
)

const (
	// DateLayout is layout of feed's date attribute.
	DateLayout = "2006-01-02 15:04"
	// DefaultCurrency is currency used when offer doesn't declare one.
	DefaultCurrency = "UAH"
)

// Option is custom configuration of Decoder.
type Option func(d *Decoder)

// Decoder decodes xml feed files into shop info, categories and offers.
type Decoder struct {
	logger *zerolog.Logger
	now    func() time.Time
}

// NewDecoder returns new Decoder.
func NewDecoder(logger *zerolog.Logger, ops ...Option) *Decoder {
	d := &Decoder{
		logger: logger,
		now:    time.Now,
	}

	for _, op := range ops {
		op(d)
	}

	return d
}

// WithNow sets function returning current time, used when feed date is missing or invalid.
func WithNow(now func() time.Time) Option {
	return func(d *Decoder) {
		d.now = now
	}
}

// Decode decodes raw feed file. Invalid offers are skipped with a warning,
// malformed document or missing shop element results with *ParsingError.
func (d *Decoder) Decode(raw []byte) (*models.Feed, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	var root catalog
	if err := dec.Decode(&root); err != nil {
		return nil, &ParsingError{Err: err}
	}

	if root.Shop == nil {
		return nil, &ParsingError{Err: ErrShopNotFound}
	}

	feed := &models.Feed{
		Shop: models.ShopInfo{
			Name:    strings.TrimSpace(root.Shop.Name),
			Company: strings.TrimSpace(root.Shop.Company),
			URL:     strings.TrimSpace(root.Shop.URL),
			Date:    d.parseDate(root.Date),
		},
		Categories: d.toAppCategories(root.Shop.Categories),
		Offers:     make([]models.FeedOffer, 0, len(root.Shop.Offers)),
	}

	for ix := range root.Shop.Offers {
		o, err := d.toAppOffer(&root.Shop.Offers[ix])
		if err != nil {
			d.logger.Warn().
				Err(err).
				Str("externalId", lo.Ternary(root.Shop.Offers[ix].ID != "", root.Shop.Offers[ix].ID, "unknown")).
				Msg("skipping invalid offer")
			continue
		}
		feed.Offers = append(feed.Offers, *o)
	}

	return feed, nil
}

func (d *Decoder) parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return d.now()
	}

	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		d.logger.Warn().Str("date", raw).Msg("invalid feed date format, using current time")
		return d.now()
	}

	return date
}

func (d *Decoder) toAppCategories(categories []category) []models.FeedCategory {
	appCategories := make([]models.FeedCategory, 0, len(categories))
	for ix := range categories {
		id := strings.TrimSpace(categories[ix].ID)
		if id == "" {
			d.logger.Warn().Msg("category without id skipped")
			continue
		}

		appCategories = append(appCategories, models.FeedCategory{
			ExternalID: id,
			Name:       html.UnescapeString(strings.TrimSpace(categories[ix].Name)),
			RozetkaID:  categories[ix].RozetkaID,
		})
	}

	return appCategories
}

func (d *Decoder) toAppOffer(o *offer) (*models.FeedOffer, error) {
	id := strings.TrimSpace(o.ID)
	if id == "" {
		return nil, errMissingID
	}

	price, err := parsePrice(o.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidPrice, err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return nil, errInvalidPrice
	}

	name := html.UnescapeString(strings.TrimSpace(o.Name))
	if name == "" {
		return nil, errMissingName
	}

	currency := strings.TrimSpace(o.CurrencyID)
	if currency == "" {
		currency = DefaultCurrency
	}

	return &models.FeedOffer{
		ExternalID:    id,
		Available:     parseAvailable(o.Available),
		URL:           strings.TrimSpace(o.URL),
		Price:         price,
		Currency:      currency,
		CategoryID:    strings.TrimSpace(o.CategoryID),
		Name:          name,
		Pictures:      toPictures(o.Pictures),
		Vendor:        strings.TrimSpace(o.Vendor),
		Description:   html.UnescapeString(strings.TrimSpace(o.Description)),
		Article:       strings.TrimSpace(o.Article),
		Attributes:    toAttributes(o.Params),
		StockQuantity: d.parseStock(id, o.StockQuantity),
	}, nil
}

func (d *Decoder) parseStock(externalID, raw string) int32 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	stock, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		d.logger.Warn().
			Err(err).
			Str("externalId", externalID).
			Msg("invalid stock quantity, using 0")
		return 0
	}

	return int32(stock)
}

func parsePrice(raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(raw, 64)
}

// parseAvailable returns true for missing attribute, otherwise only for "true".
func parseAvailable(raw *string) bool {
	if raw == nil {
		return true
	}

	return strings.EqualFold(strings.TrimSpace(*raw), "true")
}

func toPictures(pictures []string) []string {
	return lo.FilterMap(pictures, func(p string, _ int) (string, bool) {
		p = strings.TrimSpace(p)
		return p, p != ""
	})
}

// toAttributes groups params by name preserving order of first occurrence.
func toAttributes(params []param) []models.OfferAttribute {
	var attributes []models.OfferAttribute
	positions := make(map[string]int, len(params))

	for ix := range params {
		name := strings.TrimSpace(params[ix].Name)
		value := strings.TrimSpace(params[ix].Value)
		if name == "" || value == "" {
			continue
		}

		if pos, ok := positions[name]; ok {
			attributes[pos].Values = append(attributes[pos].Values, value)
			continue
		}

		positions[name] = len(attributes)
		attributes = append(attributes, models.OfferAttribute{
			Name:   name,
			Values: []string{value},
		})
	}

	return attributes
}
