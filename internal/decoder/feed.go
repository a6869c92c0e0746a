package decoder

// catalog is model of feed file root element.
type catalog struct {
	Date string `xml:"date,attr"`
	Shop *shop  `xml:"shop"`
}

// shop is model of feed's shop element.
type shop struct {
	Name       string     `xml:"name"`
	Company    string     `xml:"company"`
	URL        string     `xml:"url"`
	Categories []category `xml:"categories>category"`
	Offers     []offer    `xml:"offers>offer"`
}

// category is model of shop's category element.
type category struct {
	ID        string  `xml:"id,attr"`
	RozetkaID *string `xml:"rz_id,attr"`
	Name      string  `xml:",chardata"`
}

// offer is model of shop's offer element.
type offer struct {
	ID            string   `xml:"id,attr"`
	Available     *string  `xml:"available,attr"`
	URL           string   `xml:"url"`
	Price         string   `xml:"price"`
	CurrencyID    string   `xml:"currencyId"`
	CategoryID    string   `xml:"categoryId"`
	Name          string   `xml:"name"`
	Pictures      []string `xml:"picture"`
	Vendor        string   `xml:"vendor"`
	Description   string   `xml:"description"`
	Article       string   `xml:"article"`
	Params        []param  `xml:"param"`
	StockQuantity string   `xml:"stock_quantity"`
}

// param is model of offer's param element.
type param struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}
