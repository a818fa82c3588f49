package woocommerce

// Product is a product as returned by the WooCommerce REST API (wc/v3).
type Product struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Slug              string      `json:"slug"`
	Type              string      `json:"type"`
	Status            string      `json:"status"`
	Featured          bool        `json:"featured"`
	CatalogVisibility string      `json:"catalog_visibility"`
	Description       string      `json:"description"`
	ShortDescription  string      `json:"short_description"`
	SKU               string      `json:"sku"`
	Price             string      `json:"price"`
	RegularPrice      string      `json:"regular_price"`
	SalePrice         string      `json:"sale_price"`
	DateOnSaleFrom    *string     `json:"date_on_sale_from"`
	DateOnSaleFromGMT *string     `json:"date_on_sale_from_gmt"`
	DateOnSaleTo      *string     `json:"date_on_sale_to"`
	DateOnSaleToGMT   *string     `json:"date_on_sale_to_gmt"`
	TaxStatus         string      `json:"tax_status"`
	TaxClass          string      `json:"tax_class"`
	ManageStock       bool        `json:"manage_stock"`
	StockQuantity     *int64      `json:"stock_quantity"`
	StockStatus       string      `json:"stock_status"`
	Backorders        string      `json:"backorders"`
	SoldIndividually  bool        `json:"sold_individually"`
	Weight            string      `json:"weight"`
	Dimensions        Dimensions  `json:"dimensions"`
	ShippingClass     string      `json:"shipping_class"`
	ReviewsAllowed    bool        `json:"reviews_allowed"`
	UpsellIDs         []int64     `json:"upsell_ids"`
	CrossSellIDs      []int64     `json:"cross_sell_ids"`
	ParentID          int64       `json:"parent_id"`
	PurchaseNote      string      `json:"purchase_note"`
	Categories        []Term      `json:"categories"`
	Tags              []Term      `json:"tags"`
	Brands            []Term      `json:"brands"`
	Images            []Image     `json:"images"`
	GroupedProducts   []int64     `json:"grouped_products"`
	MenuOrder         int         `json:"menu_order"`
	ExternalURL       string      `json:"external_url"`
	ButtonText        string      `json:"button_text"`
	MetaData          []MetaEntry `json:"meta_data"`
}

type Dimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Term is a category, tag or brand reference.
type Term struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Image struct {
	ID   int64  `json:"id"`
	Src  string `json:"src"`
	Name string `json:"name"`
	Alt  string `json:"alt"`
}

type MetaEntry struct {
	ID    int64       `json:"id"`
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}
