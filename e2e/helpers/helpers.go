package helpers

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models/modelstesting"
	pgmodels "github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
	// FeedPath is path of feed file on mocked http server.
	FeedPath = "/feed.xml"
	// ImagesPath is path prefix of images on mocked http server.
	ImagesPath = "/img/"
)

// WaitForReport is blocking helper function, returns n-th report of feed source after it is finished.
func WaitForReport(t *testing.T, queryable qrm.Queryable, feedSourceID int64, n int, timeout time.Duration) pgmodels.FeedParsingReport {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "report wasn't finished in time", "feed source %d, report %d", feedSourceID, n)
		case <-time.After(time.Millisecond * 250):
		}

		reports := storagetesting.GetReports(t, queryable, feedSourceID)
		if len(reports) >= n && models.ReportStatus(reports[n-1].Status).IsTerminal() {
			return reports[n-1]
		}
	}
}

// WaitFor is blocking helper function, polls condition until it is true.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) {
	t.Helper()

	deadline := time.After(timeout)
	for !condition() {
		select {
		case <-deadline:
			require.FailNow(t, "condition wasn't met in time")
		case <-time.After(time.Millisecond * 250):
		}
	}
}

// PrepareMockedHTTPServer is helper function for mocking http srv serving feed file and images.
// Returns function for setting feed file to return.
func PrepareMockedHTTPServer(t *testing.T) (*httptest.Server, func([]byte)) {
	t.Helper()

	var feedFile atomic.Value
	feedFile.Store([]byte{})

	mux := http.NewServeMux()
	mux.HandleFunc(FeedPath, func(wrt http.ResponseWriter, _ *http.Request) {
		wrt.Header().Add(contentType, "application/xml")
		wrt.WriteHeader(http.StatusOK)
		_, _ = wrt.Write(feedFile.Load().([]byte))
	})
	mux.HandleFunc(ImagesPath, func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "image/jpeg")
		wrt.WriteHeader(http.StatusOK)
		// content is unique per image path
		_, _ = wrt.Write([]byte(req.URL.Path))
	})

	srv := httptest.NewServer(mux)

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(feed []byte) { feedFile.Store(feed) }
}

// DeleteRMQQueueOnCleanup is helper function for deleting RMQ queue after test is finished.
func DeleteRMQQueueOnCleanup(t *testing.T, channel *amqp.Channel, queueName string) {
	t.Helper()

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// GenerateOffers generates n available offers with ExternalID in [1;n], in category with provided id
// and with pictures served by mocked http server.
func GenerateOffers(t *testing.T, n int, categoryID, baseURL string) []models.FeedOffer {
	t.Helper()

	results := make([]models.FeedOffer, n)

	for ix := range n {
		externalID := strconv.Itoa(ix + 1)
		results[ix] = modelstesting.FakeOffer(func(o *models.FeedOffer) {
			o.ExternalID = externalID
			o.CategoryID = categoryID
			o.Pictures = []string{
				fmt.Sprintf("%s%s%s_1.jpg", baseURL, ImagesPath, externalID),
				fmt.Sprintf("%s%s%s_2.jpg", baseURL, ImagesPath, externalID),
			}
		})
	}

	return results
}

// FeedToXML is helper function which converts feed to xml and returns it as byte slice.
func FeedToXML(t *testing.T, feed *models.Feed) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	if err := encoder.Encode(toXMLCatalog(feed)); err != nil {
		require.FailNow(t, "can't encode feed to xml", err)
	}

	if err := encoder.Close(); err != nil {
		require.FailNow(t, "can't close xml encoder", err)
	}

	return buf.Bytes()
}

type xmlCatalog struct {
	XMLName xml.Name `xml:"yml_catalog"`
	Date    string   `xml:"date,attr"`
	Shop    xmlShop  `xml:"shop"`
}

type xmlShop struct {
	Name       string        `xml:"name"`
	Company    string        `xml:"company"`
	URL        string        `xml:"url"`
	Categories []xmlCategory `xml:"categories>category"`
	Offers     []xmlOffer    `xml:"offers>offer"`
}

type xmlCategory struct {
	ID   string `xml:"id,attr"`
	Name string `xml:",chardata"`
}

type xmlOffer struct {
	ID            string     `xml:"id,attr"`
	Available     string     `xml:"available,attr"`
	URL           string     `xml:"url"`
	Price         string     `xml:"price"`
	CurrencyID    string     `xml:"currencyId"`
	CategoryID    string     `xml:"categoryId"`
	Name          string     `xml:"name"`
	Pictures      []string   `xml:"picture"`
	Vendor        string     `xml:"vendor"`
	Description   string     `xml:"description"`
	Article       string     `xml:"article"`
	Params        []xmlParam `xml:"param"`
	StockQuantity int32      `xml:"stock_quantity"`
}

type xmlParam struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

func toXMLCatalog(feed *models.Feed) *xmlCatalog {
	catalog := &xmlCatalog{
		Date: feed.Shop.Date.Format("2006-01-02 15:04"),
		Shop: xmlShop{
			Name:       feed.Shop.Name,
			Company:    feed.Shop.Company,
			URL:        feed.Shop.URL,
			Categories: make([]xmlCategory, 0, len(feed.Categories)),
			Offers:     make([]xmlOffer, 0, len(feed.Offers)),
		},
	}

	for _, c := range feed.Categories {
		catalog.Shop.Categories = append(catalog.Shop.Categories, xmlCategory{ID: c.ExternalID, Name: c.Name})
	}

	for ix := range feed.Offers {
		catalog.Shop.Offers = append(catalog.Shop.Offers, toXMLOffer(&feed.Offers[ix]))
	}

	return catalog
}

func toXMLOffer(offer *models.FeedOffer) xmlOffer {
	result := xmlOffer{
		ID:            offer.ExternalID,
		Available:     strconv.FormatBool(offer.Available),
		URL:           offer.URL,
		Price:         strconv.FormatFloat(offer.Price, 'f', 2, 64),
		CurrencyID:    offer.Currency,
		CategoryID:    offer.CategoryID,
		Name:          strings.TrimSpace(offer.Name),
		Pictures:      offer.Pictures,
		Vendor:        offer.Vendor,
		Description:   offer.Description,
		Article:       offer.Article,
		StockQuantity: offer.StockQuantity,
	}

	for _, attribute := range offer.Attributes {
		for _, value := range attribute.Values {
			result.Params = append(result.Params, xmlParam{Name: attribute.Name, Value: value})
		}
	}

	return result
}
