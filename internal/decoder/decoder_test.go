package decoder_test

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/decoder"
	"github.com/MichalMitros/catalog-feed-importer/internal/decoder/testdata"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFileName = "feed.xml"

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestUnitDecode(t *testing.T) {
	dec := newDecoder()

	feed, err := dec.Decode(feedFile(t))

	require.NoError(t, err, "should not return any error")
	assert.Equal(t, testdata.Feed.Shop, feed.Shop, "should decode shop info")
	assert.Equal(t, testdata.Feed.Categories, feed.Categories, "should decode categories with id in document order")
	assert.Equal(t, testdata.Feed.Offers, feed.Offers, "should decode only valid offers in document order")
}

func TestUnitDecodeParsingErrors(t *testing.T) {
	tests := map[string]struct {
		raw     string
		wantErr error
	}{
		"malformed xml": {
			raw: `<yml_catalog><shop><offers><offer id="1"></shop></yml_catalog>`,
		},
		"missing shop": {
			raw:     `<?xml version="1.0"?><yml_catalog date="2024-05-14 10:30"><offers/></yml_catalog>`,
			wantErr: decoder.ErrShopNotFound,
		},
		"empty document": {
			raw: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			feed, err := newDecoder().Decode([]byte(tt.raw))

			var parsingErr *decoder.ParsingError
			require.ErrorAs(t, err, &parsingErr, "should return parsing error")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr, "should wrap correct error")
			}
			assert.Nil(t, feed, "shouldn't return feed")
		})
	}
}

func TestUnitDecodeDate(t *testing.T) {
	tests := map[string]struct {
		date     string
		wantDate time.Time
	}{
		"valid date": {
			date:     "2023-12-31 23:59",
			wantDate: time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC),
		},
		"invalid date falls back to now": {
			date:     "31.12.2023",
			wantDate: fixedNow,
		},
		"missing date falls back to now": {
			date:     "",
			wantDate: fixedNow,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			raw := `<yml_catalog date="` + tt.date + `"><shop><name>Shop</name></shop></yml_catalog>`

			feed, err := newDecoder().Decode([]byte(raw))

			require.NoError(t, err, "should not return any error")
			assert.Equal(t, tt.wantDate, feed.Shop.Date, "should return correct date")
			assert.Empty(t, feed.Offers, "shouldn't return any offers")
			assert.Empty(t, feed.Categories, "shouldn't return any categories")
		})
	}
}

func TestUnitDecodeWindows1251(t *testing.T) {
	// "Ножиці" encoded as windows-1251.
	raw := "<?xml version=\"1.0\" encoding=\"windows-1251\"?>" +
		"<yml_catalog><shop><offers><offer id=\"1\"><price>1</price>" +
		"<name>\xcd\xee\xe6\xe8\xf6\xb3</name></offer></offers></shop></yml_catalog>"

	feed, err := newDecoder().Decode([]byte(raw))

	require.NoError(t, err, "should not return any error")
	require.Len(t, feed.Offers, 1, "should decode offer")
	assert.Equal(t, "Ножиці", feed.Offers[0].Name, "should decode windows-1251 text")
}

func TestUnitDecodeOfferAvailability(t *testing.T) {
	tests := map[string]struct {
		attribute     string
		wantAvailable bool
	}{
		"missing":     {attribute: "", wantAvailable: true},
		"true":        {attribute: `available="true"`, wantAvailable: true},
		"upper true":  {attribute: `available="True"`, wantAvailable: true},
		"false":       {attribute: `available="false"`, wantAvailable: false},
		"other value": {attribute: `available="1"`, wantAvailable: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			raw := `<yml_catalog><shop><offers><offer id="1" ` + tt.attribute +
				`><price>10</price><name>Name</name></offer></offers></shop></yml_catalog>`

			feed, err := newDecoder().Decode([]byte(raw))

			require.NoError(t, err, "should not return any error")
			require.Len(t, feed.Offers, 1, "should decode offer")
			assert.Equal(t, tt.wantAvailable, feed.Offers[0].Available, "should decode availability")
		})
	}
}

func TestUnitDecodeOfferPrice(t *testing.T) {
	tests := map[string]struct {
		price     string
		wantPrice float64
		wantOffer bool
	}{
		"dot":           {price: "12.50", wantPrice: 12.5, wantOffer: true},
		"comma":         {price: "12,50", wantPrice: 12.5, wantOffer: true},
		"zero":          {price: "0"},
		"negative":      {price: "-5"},
		"not a number":  {price: "abc"},
		"nan":           {price: "NaN"},
		"infinity":      {price: "Inf"},
		"minus inf":     {price: "-Inf"},
		"long infinity": {price: "infinity"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			raw := `<yml_catalog><shop><offers><offer id="1"><price>` + tt.price +
				`</price><name>Name</name></offer></offers></shop></yml_catalog>`

			feed, err := newDecoder().Decode([]byte(raw))

			require.NoError(t, err, "should not return any error")
			if !tt.wantOffer {
				assert.Empty(t, feed.Offers, "should drop offer with invalid price")
				return
			}
			require.Len(t, feed.Offers, 1, "should decode offer")
			assert.InDelta(t, tt.wantPrice, feed.Offers[0].Price, 0.0001, "should decode price")
		})
	}
}

func newDecoder() *decoder.Decoder {
	logger := zerolog.Nop()
	return decoder.NewDecoder(&logger, decoder.WithNow(func() time.Time {
		return fixedNow
	}))
}

// feedFile returns content of test feed file.
func feedFile(t *testing.T) []byte {
	t.Helper()

	content, err := os.ReadFile(path.Join("testdata", feedFileName))
	require.NoError(t, err)

	return content
}
