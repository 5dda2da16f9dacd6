package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ProductDescriptor is one item of an import batch. Prices are in the
// smallest currency unit; decimal keeps the derived total exact.
type ProductDescriptor struct {
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	ImageUrl    string          `json:"image_url"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier"`
	Notes       string          `json:"notes"`
	Description string          `json:"description"`
}

var validate = validator.New()

// TotalAmount derives the provenance row total. Both factors are integral,
// so the product is exact with no rounding ambiguity.
func (d *ProductDescriptor) TotalAmount() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// validateFor checks the hard field constraints before any insert is
// attempted. Category/Supplier requirements depend on the target table.
func (d *ProductDescriptor) validateFor(shape TargetShape) error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(d.Code) == "" {
		return errors.New("code is required")
	}
	if d.UnitPrice.IsNegative() {
		return fmt.Errorf("unit price cannot be negative (code=%s)", d.Code)
	}
	if d.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative (code=%s)", d.Code)
	}
	if d.ImageUrl != "" {
		if err := validate.Var(d.ImageUrl, "url"); err != nil {
			return fmt.Errorf("image url is not a well-formed absolute URL (code=%s)", d.Code)
		}
	}
	if shape.writesCatalog() && strings.TrimSpace(d.Category) == "" {
		return fmt.Errorf("category is required for catalog rows (code=%s)", d.Code)
	}
	if shape.writesHistory() && strings.TrimSpace(d.Supplier) == "" {
		return fmt.Errorf("supplier is required for import history rows (code=%s)", d.Code)
	}
	return nil
}
