package validation

import (
	"fmt"
	"strings"

	"sheetsync/internal/logger"
	"sheetsync/internal/models"
)

// Error lists every problem found with a product.
type Error struct {
	ProductID int64
	Problems  []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("product %d is invalid: %s", e.ProductID, strings.Join(e.Problems, "; "))
}

type Validator struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Validator {
	return &Validator{
		logger: logger,
	}
}

// ValidateProduct checks the fields the store and the sheet rely on.
func (v *Validator) ValidateProduct(p *models.Product) error {
	var problems []string

	if p.ID <= 0 {
		problems = append(problems, "id must be positive")
	}
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is required")
	}
	switch p.Status {
	case models.ProductStatusPublish, models.ProductStatusDraft, models.ProductStatusPending, models.ProductStatusPrivate:
	default:
		problems = append(problems, fmt.Sprintf("unknown status %q", p.Status))
	}
	switch p.StockStatus {
	case models.StockStatusInStock, models.StockStatusOutOfStock, models.StockStatusOnBackorder:
	default:
		problems = append(problems, fmt.Sprintf("unknown stock status %q", p.StockStatus))
	}
	if p.IsExternal() && p.ExternalURL == "" {
		problems = append(problems, "external products need an external_url")
	}

	if len(problems) > 0 {
		return &Error{ProductID: p.ID, Problems: problems}
	}

	v.logger.Debug("Product %d passed validation", p.ID)
	return nil
}
