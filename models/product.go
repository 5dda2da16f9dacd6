package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is a catalog row. StaffId is attribution only, not ownership:
// it may be NULL and the row stays valid if the staff record disappears.
type Product struct {
	ID          int             `gorm:"primary_key" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name" binding:"required"`
	ProductCode string          `gorm:"size:100;not null;unique" json:"product_code" binding:"required"`
	Description string          `gorm:"type:text" json:"description"`
	Image       string          `gorm:"size:255" json:"image"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	Category    string          `gorm:"size:100" json:"category"`
	Supplier    string          `gorm:"size:100" json:"supplier"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Status      ProductStatus   `gorm:"type:enum('active','inactive');default:'active'" json:"status"`
	StaffId     *int            `gorm:"index" json:"staff_id"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
