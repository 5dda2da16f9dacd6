// seed-catalog populates the products table with the starter catalog.
// Attribution falls back to the first staff record, or NULL when none exists.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-catalog
package main

import (
	"context"
	"fmt"
	"os"

	"bitbucket.org/mmdatafocus/inventory_backend/config"
	"bitbucket.org/mmdatafocus/inventory_backend/importer"
	"bitbucket.org/mmdatafocus/inventory_backend/models"
	"bitbucket.org/mmdatafocus/inventory_backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var catalogBatch = []importer.ProductDescriptor{
	{
		Name:        "Wireless Optical Mouse",
		Code:        "PRD-001",
		UnitPrice:   decimal.NewFromInt(250000),
		Quantity:    50,
		ImageUrl:    "https://cdn.example.com/images/prd-001.jpg",
		Category:    "Accessories",
		Supplier:    "Hoa Binh Electronics",
		Description: "2.4GHz wireless mouse, USB receiver included",
	},
	{
		Name:        "Mechanical Keyboard TKL",
		Code:        "PRD-002",
		UnitPrice:   decimal.NewFromInt(2500000),
		Quantity:    30,
		ImageUrl:    "https://cdn.example.com/images/prd-002.jpg",
		Category:    "Accessories",
		Supplier:    "Hoa Binh Electronics",
		Description: "Tenkeyless mechanical keyboard, brown switches",
	},
	{
		Name:        "24in IPS Monitor",
		Code:        "PRD-003",
		UnitPrice:   decimal.NewFromInt(1500000),
		Quantity:    25,
		ImageUrl:    "https://cdn.example.com/images/prd-003.jpg",
		Category:    "Displays",
		Supplier:    "Thanh Cong Trading",
		Description: "23.8in 1080p IPS panel, HDMI + VGA",
	},
	{
		Name:        "Gaming Laptop 15",
		Code:        "PRD-004",
		UnitPrice:   decimal.NewFromInt(8000000),
		Quantity:    20,
		ImageUrl:    "https://cdn.example.com/images/prd-004.jpg",
		Category:    "Laptops",
		Supplier:    "Thanh Cong Trading",
		Description: "15.6in gaming laptop, refurbished grade A",
	},
	{
		Name:        "Android Tablet 10",
		Code:        "PRD-005",
		UnitPrice:   decimal.NewFromInt(6000000),
		Quantity:    40,
		ImageUrl:    "https://cdn.example.com/images/prd-005.jpg",
		Category:    "Tablets",
		Supplier:    "Minh Anh Distribution",
		Description: "10.1in tablet, 64GB storage",
	},
}

func main() {
	ctx := context.Background()
	ctx = utils.SetCorrelationIdInContext(ctx, uuid.NewString())
	ctx = utils.SetActorNameInContext(ctx, "seed-catalog")

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable()

	logger := config.GetLogger()
	attribution := importer.ResolveAttribution(ctx, db, logger)

	outcomes, err := importer.ImportBatch(ctx, db, logger, catalogBatch, attribution,
		importer.TargetCatalogOnly, importer.ConsoleReporter{Out: os.Stdout})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed before processing any item: %v\n", err)
		os.Exit(1)
	}

	for _, o := range outcomes {
		if o.Failed() {
			fmt.Fprintf(os.Stderr, "item %d (code=%s) failed: %s: %v\n", o.Index, o.Descriptor.Code, o.ErrorKind, o.Err)
		}
	}
	if importer.Summarize(outcomes).Failed > 0 {
		os.Exit(1)
	}
}
