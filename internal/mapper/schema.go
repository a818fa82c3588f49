// Package mapper converts products to and from positional sheet rows.
package mapper

// ColumnCount is the number of cells in every row written to the sheet.
const ColumnCount = 50

// Column positions. Only the ID, Name, price and stock columns are read back
// from the sheet; the rest are export-only.
const (
	ColID = iota
	ColType
	ColSKU
	ColGTIN
	ColName
	ColPublished
	ColFeatured
	ColVisibility
	ColShortDescription
	ColDescription
	ColRegularPrice
	ColSalePrice
	ColSaleStarts
	ColSaleEnds
	ColTaxStatus
	ColTaxClass
	ColInStock
	ColStock
	ColBackorders
	ColLowStock
	ColSoldIndividually
	ColWeight
	ColLength
	ColWidth
	ColHeight
	ColCategories
	ColTags
	ColTagsSpaced
	ColShippingClass
	ColImages
	ColParent
	ColUpsells
	ColCrossSells
	ColGrouped
	ColExternalURL
	ColButtonText
	ColDownloadID
	ColDownloadName
	ColDownloadURL
	ColDownloadLimit
	ColDownloadExpiry
	ColAttributeName
	ColAttributeValues
	ColAttributeGlobal
	ColAttributeVisible
	ColAttributeDefault
	ColReviewsAllowed
	ColPurchaseNote
	ColPosition
	ColBrands
)

var header = [ColumnCount]string{
	ColID:               "ID",
	ColType:             "Type",
	ColSKU:              "SKU",
	ColGTIN:             "GTIN, UPC, EAN, or ISBN",
	ColName:             "Name",
	ColPublished:        "Published",
	ColFeatured:         "Is featured?",
	ColVisibility:       "Visibility in catalog",
	ColShortDescription: "Short description",
	ColDescription:      "Description",
	ColRegularPrice:     "Regular price",
	ColSalePrice:        "Sale price",
	ColSaleStarts:       "Date sale price starts",
	ColSaleEnds:         "Date sale price ends",
	ColTaxStatus:        "Tax status",
	ColTaxClass:         "Tax class",
	ColInStock:          "In stock?",
	ColStock:            "Stock",
	ColBackorders:       "Backorders allowed?",
	ColLowStock:         "Low stock amount",
	ColSoldIndividually: "Sold individually?",
	ColWeight:           "Weight (kg)",
	ColLength:           "Length (cm)",
	ColWidth:            "Width (cm)",
	ColHeight:           "Height (cm)",
	ColCategories:       "Categories",
	ColTags:             "Tags (comma separated)",
	ColTagsSpaced:       "Tags (space separated)",
	ColShippingClass:    "Shipping class",
	ColImages:           "Images",
	ColParent:           "Parent",
	ColUpsells:          "Upsells",
	ColCrossSells:       "Cross-sells",
	ColGrouped:          "Grouped products",
	ColExternalURL:      "External URL",
	ColButtonText:       "Button text",
	ColDownloadID:       "Download ID",
	ColDownloadName:     "Download name",
	ColDownloadURL:      "Download URL",
	ColDownloadLimit:    "Download limit",
	ColDownloadExpiry:   "Download expiry days",
	ColAttributeName:    "Attribute name",
	ColAttributeValues:  "Attribute value(s)",
	ColAttributeGlobal:  "Is a global attribute?",
	ColAttributeVisible: "Attribute visibility",
	ColAttributeDefault: "Default attribute",
	ColReviewsAllowed:   "Allow customer reviews?",
	ColPurchaseNote:     "Purchase note",
	ColPosition:         "Position",
	ColBrands:           "Brands",
}

// Header returns the header row. It is written once to row 1 and its order
// never changes.
func Header() Row {
	return append(Row(nil), header[:]...)
}

// ColumnLabel returns the header text of a column.
func ColumnLabel(col int) string {
	if col < 0 || col >= ColumnCount {
		return ""
	}
	return header[col]
}
