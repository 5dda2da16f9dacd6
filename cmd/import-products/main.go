// import-products runs an operator bulk import from an .xlsx descriptor file.
// By default it records both a catalog row and an import_history row per item.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//     go run ./cmd/import-products --file intake.xlsx [--target catalog|history|both]
//
// Env-first: IMPORT_FILE and IMPORT_TARGET provide defaults, flags override.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"bitbucket.org/mmdatafocus/inventory_backend/config"
	"bitbucket.org/mmdatafocus/inventory_backend/importer"
	"bitbucket.org/mmdatafocus/inventory_backend/models"
	"bitbucket.org/mmdatafocus/inventory_backend/utils"
	"github.com/google/uuid"
)

func main() {
	file := flag.String("file", utils.Getenv("IMPORT_FILE", ""), "Path to the .xlsx descriptor file (required)")
	target := flag.String("target", utils.Getenv("IMPORT_TARGET", string(importer.TargetCatalogAndHistory)),
		"Which table(s) to populate: catalog, history, or both")
	flag.Parse()

	if strings.TrimSpace(*file) == "" {
		fmt.Fprintln(os.Stderr, "missing required descriptor file: set IMPORT_FILE or pass --file")
		os.Exit(2)
	}
	shape := importer.TargetShape(strings.TrimSpace(*target))

	descriptors, err := importer.LoadDescriptorsFromXLSX(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load descriptors: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	ctx = utils.SetCorrelationIdInContext(ctx, uuid.NewString())
	ctx = utils.SetActorNameInContext(ctx, "import-products")

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable()

	logger := config.GetLogger()
	attribution := importer.ResolveAttribution(ctx, db, logger)

	outcomes, err := importer.ImportBatch(ctx, db, logger, descriptors, attribution, shape,
		importer.ConsoleReporter{Out: os.Stdout})
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed before processing any item: %v\n", err)
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
