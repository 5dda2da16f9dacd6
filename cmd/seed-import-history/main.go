// seed-import-history records a starter batch in the import_history audit
// table only. The table has no unique code constraint, so re-running appends
// a fresh set of rows; that is the intended provenance semantics.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-import-history
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

var historyBatch = []importer.ProductDescriptor{
	{
		Name:      "Wireless Optical Mouse",
		Code:      "PRD-001",
		UnitPrice: decimal.NewFromInt(250000),
		Quantity:  50,
		ImageUrl:  "https://cdn.example.com/images/prd-001.jpg",
		Supplier:  "Hoa Binh Electronics",
		Notes:     "initial stock intake",
	},
	{
		Name:      "Mechanical Keyboard TKL",
		Code:      "PRD-002",
		UnitPrice: decimal.NewFromInt(2500000),
		Quantity:  30,
		ImageUrl:  "https://cdn.example.com/images/prd-002.jpg",
		Supplier:  "Hoa Binh Electronics",
		Notes:     "initial stock intake",
	},
	{
		Name:      "24in IPS Monitor",
		Code:      "PRD-003",
		UnitPrice: decimal.NewFromInt(1500000),
		Quantity:  25,
		ImageUrl:  "https://cdn.example.com/images/prd-003.jpg",
		Supplier:  "Thanh Cong Trading",
		Notes:     "initial stock intake",
	},
	{
		Name:      "Gaming Laptop 15",
		Code:      "PRD-004",
		UnitPrice: decimal.NewFromInt(8000000),
		Quantity:  20,
		ImageUrl:  "https://cdn.example.com/images/prd-004.jpg",
		Supplier:  "Thanh Cong Trading",
		Notes:     "initial stock intake",
	},
	{
		Name:      "Android Tablet 10",
		Code:      "PRD-005",
		UnitPrice: decimal.NewFromInt(6000000),
		Quantity:  40,
		ImageUrl:  "https://cdn.example.com/images/prd-005.jpg",
		Supplier:  "Minh Anh Distribution",
		Notes:     "initial stock intake",
	},
}

func main() {
	ctx := context.Background()
	ctx = utils.SetCorrelationIdInContext(ctx, uuid.NewString())
	ctx = utils.SetActorNameInContext(ctx, "seed-import-history")

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable()

	logger := config.GetLogger()
	attribution := importer.ResolveAttribution(ctx, db, logger)

	outcomes, err := importer.ImportBatch(ctx, db, logger, historyBatch, attribution,
		importer.TargetHistoryOnly, importer.ConsoleReporter{Out: os.Stdout})
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
