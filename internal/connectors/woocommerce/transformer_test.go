package woocommerce

import (
	"strings"
	"testing"
	"time"

	"sheetsync/internal/models"
)

const samplePayload = `{
	"id": 42,
	"name": "Blue Mug",
	"type": "simple",
	"status": "publish",
	"sku": "MUG-1",
	"regular_price": "12.50",
	"sale_price": "",
	"date_on_sale_from": "2024-03-01T00:00:00",
	"date_on_sale_from_gmt": null,
	"manage_stock": true,
	"stock_quantity": 7,
	"stock_status": "instock",
	"weight": "0.4",
	"dimensions": {"length": "10", "width": "8", "height": "12"},
	"categories": [{"id": 1, "name": "Kitchen", "slug": "kitchen"}, {"id": 2, "name": " ", "slug": "blank"}],
	"tags": [{"id": 3, "name": "ceramic", "slug": "ceramic"}],
	"brands": [{"id": 4, "name": "Acme", "slug": "acme"}],
	"images": [{"id": 9, "src": "https://example.com/a.jpg"}, {"id": 10, "src": "https://example.com/b.jpg"}],
	"upsell_ids": [5, 6],
	"grouped_products": [],
	"menu_order": 3
}`

func TestDecodeProduct(t *testing.T) {
	p, err := NewTransformer().Decode([]byte(samplePayload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if p.ID != 42 || p.Name != "Blue Mug" || p.Status != models.ProductStatusPublish {
		t.Fatalf("unexpected identity fields: %+v", p)
	}
	if p.RegularPrice != "12.5" || p.SalePrice != "" {
		t.Fatalf("unexpected prices %q / %q", p.RegularPrice, p.SalePrice)
	}
	if p.StockQuantity == nil || *p.StockQuantity != 7 {
		t.Fatalf("expected stock quantity 7, got %v", p.StockQuantity)
	}
	if p.Length != "10" || p.Width != "8" || p.Height != "12" {
		t.Fatalf("unexpected dimensions %s x %s x %s", p.Length, p.Width, p.Height)
	}
	if len(p.Categories) != 1 || p.Categories[0] != "Kitchen" {
		t.Fatalf("expected blank category names to be dropped, got %v", p.Categories)
	}
	if len(p.Brands) != 1 || p.Brands[0] != "Acme" {
		t.Fatalf("unexpected brands %v", p.Brands)
	}
	if p.ImageURL != "https://example.com/a.jpg" || len(p.GalleryImageURLs) != 1 {
		t.Fatalf("expected first image to be primary, got %q + %v", p.ImageURL, p.GalleryImageURLs)
	}
	if len(p.UpsellIDs) != 2 || p.UpsellIDs[1] != 6 {
		t.Fatalf("unexpected upsells %v", p.UpsellIDs)
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if p.DateOnSaleFrom == nil || !p.DateOnSaleFrom.Equal(want) {
		t.Fatalf("unexpected sale start %v", p.DateOnSaleFrom)
	}
	if p.DateOnSaleTo != nil {
		t.Fatalf("expected no sale end, got %v", p.DateOnSaleTo)
	}
}

func TestTransformPromotesFirstImageWithSource(t *testing.T) {
	p, err := NewTransformer().TransformProduct(&Product{
		ID:     1,
		Name:   "Mug",
		Images: []Image{{ID: 1}, {ID: 2, Src: "https://example.com/b.jpg"}, {ID: 3, Src: "https://example.com/c.jpg"}},
	})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if p.ImageURL != "https://example.com/b.jpg" {
		t.Fatalf("expected b.jpg as primary image, got %q", p.ImageURL)
	}
	if len(p.GalleryImageURLs) != 1 || p.GalleryImageURLs[0] != "https://example.com/c.jpg" {
		t.Fatalf("unexpected gallery %v", p.GalleryImageURLs)
	}
}

func TestTransformDefaults(t *testing.T) {
	p, err := NewTransformer().TransformProduct(&Product{ID: 1, Name: "Bare"})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if p.Type != models.ProductTypeSimple || p.Status != models.ProductStatusDraft {
		t.Fatalf("unexpected defaults type=%q status=%q", p.Type, p.Status)
	}
	if p.StockStatus != models.StockStatusInStock || p.Backorders != "no" || p.TaxStatus != "taxable" {
		t.Fatalf("unexpected stock/tax defaults %+v", p)
	}
}

func TestTransformIgnoresUnmanagedStock(t *testing.T) {
	qty := int64(3)
	p, err := NewTransformer().TransformProduct(&Product{ID: 1, StockQuantity: &qty})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if p.StockQuantity != nil {
		t.Fatalf("expected nil stock when stock is not managed, got %d", *p.StockQuantity)
	}
}

func TestTransformRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    string
	}{
		{"missing id", Product{Name: "x"}, "no id"},
		{"bad regular price", Product{ID: 1, RegularPrice: "ten"}, "regular price"},
		{"negative sale price", Product{ID: 1, SalePrice: "-1"}, "sale price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransformer().TransformProduct(&tt.product)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, err := NewTransformer().Decode([]byte("{")); err == nil {
		t.Fatal("expected parse error")
	}
}
