package woocommerce

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sheetsync/internal/models"

	"github.com/shopspring/decimal"
)

// WooCommerce reports sale dates in the site's local time without an offset.
const localDateLayout = "2006-01-02T15:04:05"

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// Decode parses a raw product payload and converts it.
func (t *Transformer) Decode(data []byte) (*models.Product, error) {
	var product Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("failed to parse product payload: %w", err)
	}
	return t.TransformProduct(&product)
}

// TransformProduct converts a WooCommerce product to the stored model. The
// first image with a source is the primary one; the rest become the gallery.
func (t *Transformer) TransformProduct(wc *Product) (*models.Product, error) {
	if wc.ID <= 0 {
		return nil, fmt.Errorf("product payload has no id")
	}

	regular, err := normalizePrice(wc.RegularPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid regular price for product %d: %w", wc.ID, err)
	}
	sale, err := normalizePrice(wc.SalePrice)
	if err != nil {
		return nil, fmt.Errorf("invalid sale price for product %d: %w", wc.ID, err)
	}

	saleFrom, err := parseDate(wc.DateOnSaleFromGMT, wc.DateOnSaleFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid sale start for product %d: %w", wc.ID, err)
	}
	saleTo, err := parseDate(wc.DateOnSaleToGMT, wc.DateOnSaleTo)
	if err != nil {
		return nil, fmt.Errorf("invalid sale end for product %d: %w", wc.ID, err)
	}

	product := &models.Product{
		ID:                wc.ID,
		Type:              orDefault(wc.Type, models.ProductTypeSimple),
		SKU:               wc.SKU,
		Name:              wc.Name,
		Status:            models.ProductStatus(orDefault(wc.Status, string(models.ProductStatusDraft))),
		Featured:          wc.Featured,
		CatalogVisibility: orDefault(wc.CatalogVisibility, "visible"),
		ShortDescription:  wc.ShortDescription,
		Description:       wc.Description,
		RegularPrice:      regular,
		SalePrice:         sale,
		DateOnSaleFrom:    saleFrom,
		DateOnSaleTo:      saleTo,
		TaxStatus:         orDefault(wc.TaxStatus, "taxable"),
		TaxClass:          wc.TaxClass,
		StockStatus:       models.StockStatus(orDefault(wc.StockStatus, string(models.StockStatusInStock))),
		ManageStock:       wc.ManageStock,
		Backorders:        orDefault(wc.Backorders, "no"),
		SoldIndividually:  wc.SoldIndividually,
		Weight:            wc.Weight,
		Length:            wc.Dimensions.Length,
		Width:             wc.Dimensions.Width,
		Height:            wc.Dimensions.Height,
		Categories:        termNames(wc.Categories),
		Tags:              termNames(wc.Tags),
		Brands:            termNames(wc.Brands),
		ShippingClass:     wc.ShippingClass,
		ParentID:          wc.ParentID,
		UpsellIDs:         wc.UpsellIDs,
		CrossSellIDs:      wc.CrossSellIDs,
		GroupedIDs:        wc.GroupedProducts,
		ExternalURL:       wc.ExternalURL,
		ButtonText:        wc.ButtonText,
		ReviewsAllowed:    wc.ReviewsAllowed,
		PurchaseNote:      wc.PurchaseNote,
		MenuOrder:         wc.MenuOrder,
	}

	// Stock quantity only means something when stock is managed.
	if wc.ManageStock && wc.StockQuantity != nil {
		qty := *wc.StockQuantity
		product.StockQuantity = &qty
	}

	for _, img := range wc.Images {
		if img.Src == "" {
			continue
		}
		if product.ImageURL == "" {
			product.ImageURL = img.Src
		} else {
			product.GalleryImageURLs = append(product.GalleryImageURLs, img.Src)
		}
	}

	return product, nil
}

func normalizePrice(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", err
	}
	if d.IsNegative() {
		return "", fmt.Errorf("negative price %s", raw)
	}
	return d.String(), nil
}

// parseDate prefers the GMT value and falls back to the local one.
func parseDate(gmt, local *string) (*time.Time, error) {
	raw := ""
	switch {
	case gmt != nil && *gmt != "":
		raw = *gmt
	case local != nil && *local != "":
		raw = *local
	default:
		return nil, nil
	}

	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &ts, nil
	}
	ts, err := time.Parse(localDateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func termNames(terms []Term) []string {
	var names []string
	for _, term := range terms {
		if name := strings.TrimSpace(term.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
