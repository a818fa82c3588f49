package models

import (
	"time"

	"github.com/lib/pq"
)

// Product is the store's copy of a WooCommerce product. Prices and
// dimensions are kept as the decimal strings WooCommerce uses.
type Product struct {
	ID                int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Type              string         `json:"type" gorm:"default:simple"`
	SKU               string         `json:"sku" gorm:"index"`
	Name              string         `json:"name" gorm:"not null"`
	Status            ProductStatus  `json:"status" gorm:"default:draft;index"`
	Featured          bool           `json:"featured"`
	CatalogVisibility string         `json:"catalog_visibility" gorm:"default:visible"`
	ShortDescription  string         `json:"short_description"`
	Description       string         `json:"description"`
	RegularPrice      string         `json:"regular_price"`
	SalePrice         string         `json:"sale_price"`
	DateOnSaleFrom    *time.Time     `json:"date_on_sale_from"`
	DateOnSaleTo      *time.Time     `json:"date_on_sale_to"`
	TaxStatus         string         `json:"tax_status" gorm:"default:taxable"`
	TaxClass          string         `json:"tax_class"`
	StockStatus       StockStatus    `json:"stock_status" gorm:"default:instock"`
	ManageStock       bool           `json:"manage_stock"`
	StockQuantity     *int64         `json:"stock_quantity"`
	Backorders        string         `json:"backorders" gorm:"default:no"`
	SoldIndividually  bool           `json:"sold_individually"`
	Weight            string         `json:"weight"`
	Length            string         `json:"length"`
	Width             string         `json:"width"`
	Height            string         `json:"height"`
	Categories        pq.StringArray `json:"categories" gorm:"type:text"`
	Tags              pq.StringArray `json:"tags" gorm:"type:text"`
	Brands            pq.StringArray `json:"brands" gorm:"type:text"`
	ShippingClass     string         `json:"shipping_class"`
	ImageURL          string         `json:"image_url"`
	GalleryImageURLs  pq.StringArray `json:"gallery_image_urls" gorm:"type:text"`
	ParentID          int64          `json:"parent_id"`
	UpsellIDs         pq.Int64Array  `json:"upsell_ids" gorm:"type:text"`
	CrossSellIDs      pq.Int64Array  `json:"cross_sell_ids" gorm:"type:text"`
	GroupedIDs        pq.Int64Array  `json:"grouped_ids" gorm:"type:text"`
	ExternalURL       string         `json:"external_url"`
	ButtonText        string         `json:"button_text"`
	ReviewsAllowed    bool           `json:"reviews_allowed"`
	PurchaseNote      string         `json:"purchase_note"`
	MenuOrder         int            `json:"menu_order"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type ProductStatus string

const (
	ProductStatusPublish ProductStatus = "publish"
	ProductStatusDraft   ProductStatus = "draft"
	ProductStatusPending ProductStatus = "pending"
	ProductStatusPrivate ProductStatus = "private"
)

type StockStatus string

const (
	StockStatusInStock     StockStatus = "instock"
	StockStatusOutOfStock  StockStatus = "outofstock"
	StockStatusOnBackorder StockStatus = "onbackorder"
)

const (
	ProductTypeSimple   = "simple"
	ProductTypeGrouped  = "grouped"
	ProductTypeExternal = "external"
	ProductTypeVariable = "variable"
)

func (p *Product) IsPublished() bool {
	return p.Status == ProductStatusPublish
}

// InStock reports whether the product can be purchased; backordered
// products count as in stock.
func (p *Product) InStock() bool {
	return p.StockStatus != StockStatusOutOfStock
}

func (p *Product) IsExternal() bool {
	return p.Type == ProductTypeExternal
}
