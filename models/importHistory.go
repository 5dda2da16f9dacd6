package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ImportStatus string

const (
	ImportStatusPending   ImportStatus = "pending"
	ImportStatusCompleted ImportStatus = "completed"
	ImportStatusFailed    ImportStatus = "failed"
)

// ImportHistory is an audit row for the act of importing a product,
// independent of whether the product itself was cataloged. UserId stays
// NULL for staff-originated imports; product_code is NOT unique here, so
// repeat imports append independent rows.
type ImportHistory struct {
	ID          int             `gorm:"primary_key" json:"id"`
	UserId      *int            `gorm:"index" json:"user_id"`
	StaffId     *int            `gorm:"index" json:"staff_id"`
	ProductName string          `gorm:"size:100;not null" json:"product_name" binding:"required"`
	ProductCode string          `gorm:"size:100;not null" json:"product_code" binding:"required"`
	ProductLink string          `gorm:"size:255" json:"product_link"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	Supplier    string          `gorm:"size:100" json:"supplier"`
	Notes       string          `gorm:"type:text" json:"notes"`
	Status      ImportStatus    `gorm:"type:enum('pending','completed','failed');default:'completed'" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (ImportHistory) TableName() string {
	return "import_history"
}
