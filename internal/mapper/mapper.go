package mapper

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"sheetsync/internal/models"
	"sheetsync/internal/sanitize"
	"sheetsync/internal/sheets"

	"github.com/shopspring/decimal"
)

const (
	// ListSeparator joins human-readable lists (categories, tags, images).
	ListSeparator = ", "
	// IDSeparator joins product ID lists (upsells, cross-sells, grouped).
	IDSeparator = ","

	dateLayout = "2006-01-02 15:04:05"
)

var ErrNoProductID = errors.New("row has no product id")

// Row is one sheet row; cells are positional, see the Col* constants.
type Row []string

// Cell returns the cell at col, or "" when the row is shorter than that.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// RowFromValues converts decoded JSON or API cell values into a Row.
func RowFromValues(values []interface{}) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = sheets.CellString(v)
	}
	return row
}

// ProductID reads the product identity from column 0.
func ProductID(row Row) (int64, error) {
	raw := strings.TrimSpace(row.Cell(ColID))
	if raw == "" {
		return 0, ErrNoProductID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrNoProductID
	}
	return id, nil
}

// ToRow renders a product as exactly ColumnCount cells.
func ToRow(p *models.Product) Row {
	row := make(Row, ColumnCount)

	row[ColID] = strconv.FormatInt(p.ID, 10)
	row[ColType] = p.Type
	row[ColSKU] = p.SKU
	row[ColName] = p.Name
	row[ColPublished] = flag(p.IsPublished())
	row[ColFeatured] = flag(p.Featured)
	row[ColVisibility] = p.CatalogVisibility
	row[ColShortDescription] = p.ShortDescription
	row[ColDescription] = p.Description

	row[ColRegularPrice] = p.RegularPrice
	row[ColSalePrice] = p.SalePrice
	row[ColSaleStarts] = formatDate(p.DateOnSaleFrom)
	row[ColSaleEnds] = formatDate(p.DateOnSaleTo)
	row[ColTaxStatus] = p.TaxStatus
	row[ColTaxClass] = p.TaxClass

	row[ColInStock] = flag(p.InStock())
	if p.StockQuantity != nil {
		row[ColStock] = strconv.FormatInt(*p.StockQuantity, 10)
	}
	row[ColBackorders] = p.Backorders
	row[ColSoldIndividually] = flag(p.SoldIndividually)
	row[ColWeight] = p.Weight
	row[ColLength] = p.Length
	row[ColWidth] = p.Width
	row[ColHeight] = p.Height

	row[ColCategories] = joinText(p.Categories)
	row[ColTags] = joinText(p.Tags)
	row[ColShippingClass] = p.ShippingClass
	row[ColImages] = joinText(imageURLs(p))

	if p.ParentID != 0 {
		row[ColParent] = strconv.FormatInt(p.ParentID, 10)
	}
	row[ColUpsells] = joinIDs(p.UpsellIDs)
	row[ColCrossSells] = joinIDs(p.CrossSellIDs)
	row[ColGrouped] = joinIDs(p.GroupedIDs)

	if p.IsExternal() {
		row[ColExternalURL] = p.ExternalURL
		row[ColButtonText] = p.ButtonText
	}

	row[ColReviewsAllowed] = flag(p.ReviewsAllowed)
	row[ColPurchaseNote] = p.PurchaseNote
	row[ColPosition] = strconv.Itoa(p.MenuOrder)
	row[ColBrands] = joinText(p.Brands)

	return row
}

// Update is the set of product fields a sheet row may change.
type Update struct {
	Name          *string
	RegularPrice  *decimal.Decimal
	SalePrice     *decimal.Decimal
	StockQuantity *int64

	// Skipped lists cells that were present but could not be parsed.
	Skipped []SkippedField
}

type SkippedField struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

func (s SkippedField) String() string {
	return s.Column + "=" + s.Value
}

// FromRow reads the importable columns of a row. Missing or empty cells are
// absent; cells that fail to parse are reported in Skipped and leave the
// field unchanged.
func FromRow(row Row) Update {
	var u Update

	if raw := strings.TrimSpace(row.Cell(ColName)); raw != "" {
		if name := sanitize.Text(raw); name != "" {
			u.Name = &name
		} else {
			u.skip(ColName, raw)
		}
	}
	u.RegularPrice = u.parsePrice(row, ColRegularPrice)
	u.SalePrice = u.parsePrice(row, ColSalePrice)

	if raw := strings.TrimSpace(row.Cell(ColStock)); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err == nil && d.IsInteger() && fitsInt64(d) {
			qty := d.IntPart()
			u.StockQuantity = &qty
		} else {
			u.skip(ColStock, raw)
		}
	}
	return u
}

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

func fitsInt64(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(minInt64) && d.LessThanOrEqual(maxInt64)
}

func (u *Update) parsePrice(row Row, col int) *decimal.Decimal {
	raw := strings.TrimSpace(row.Cell(col))
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		u.skip(col, raw)
		return nil
	}
	return &d
}

func (u *Update) skip(col int, value string) {
	u.Skipped = append(u.Skipped, SkippedField{Column: ColumnLabel(col), Value: value})
}

// Empty reports whether the update changes nothing.
func (u Update) Empty() bool {
	return u.Name == nil && u.RegularPrice == nil && u.SalePrice == nil && u.StockQuantity == nil
}

// Fields names the product fields the update sets.
func (u Update) Fields() []string {
	var fields []string
	if u.Name != nil {
		fields = append(fields, "name")
	}
	if u.RegularPrice != nil {
		fields = append(fields, "regular_price")
	}
	if u.SalePrice != nil {
		fields = append(fields, "sale_price")
	}
	if u.StockQuantity != nil {
		fields = append(fields, "stock_quantity")
	}
	return fields
}

// Apply copies the update onto p. Setting a stock quantity turns on stock
// management.
func (u Update) Apply(p *models.Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.RegularPrice != nil {
		p.RegularPrice = u.RegularPrice.String()
	}
	if u.SalePrice != nil {
		p.SalePrice = u.SalePrice.String()
	}
	if u.StockQuantity != nil {
		qty := *u.StockQuantity
		p.StockQuantity = &qty
		p.ManageStock = true
	}
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// imageURLs puts the primary image ahead of the gallery.
func imageURLs(p *models.Product) []string {
	urls := make([]string, 0, len(p.GalleryImageURLs)+1)
	if p.ImageURL != "" {
		urls = append(urls, p.ImageURL)
	}
	for _, u := range p.GalleryImageURLs {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func joinText(values []string) string {
	return strings.Join(values, ListSeparator)
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, IDSeparator)
}
