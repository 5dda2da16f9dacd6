package importer

import (
	"context"
	"errors"

	"bitbucket.org/mmdatafocus/inventory_backend/config"
	"bitbucket.org/mmdatafocus/inventory_backend/models"
	"bitbucket.org/mmdatafocus/inventory_backend/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TargetShape selects which table(s) a batch populates. The derivation and
// attribution logic is shared across shapes; only the row construction differs.
type TargetShape string

const (
	TargetCatalogOnly       TargetShape = "catalog"
	TargetHistoryOnly       TargetShape = "history"
	TargetCatalogAndHistory TargetShape = "both"
)

func (s TargetShape) writesCatalog() bool {
	return s == TargetCatalogOnly || s == TargetCatalogAndHistory
}

func (s TargetShape) writesHistory() bool {
	return s == TargetHistoryOnly || s == TargetCatalogAndHistory
}

func (s TargetShape) valid() bool {
	return s.writesCatalog() || s.writesHistory()
}

// ErrorKind classifies a per-item failure. Per-item errors are carried in
// outcomes and never abort the remaining batch.
type ErrorKind string

const (
	ErrorKindInvalidDescriptor ErrorKind = "InvalidDescriptor"
	ErrorKindStoreWriteFailed  ErrorKind = "StoreWriteFailed"
)

var ErrInvalidTargetShape = errors.New("invalid target shape")

// Outcome is the per-item result. Exactly one outcome is emitted per
// descriptor, in input order. ProductId/HistoryId are the store-assigned ids
// for the table(s) actually written; both are zero when the item failed.
type Outcome struct {
	Index      int
	Descriptor ProductDescriptor
	ProductId  int
	HistoryId  int
	ErrorKind  ErrorKind
	Err        error
}

func (o Outcome) Failed() bool {
	return o.ErrorKind != ""
}

// Attribution is the staff reference stamped on every row of one batch.
// StaffId is nil when no staff record exists; that must never fail an import.
type Attribution struct {
	StaffId *int
}

// ResolveAttribution picks one staff record under the store's native
// ordering. The selection among multiple staff rows is deliberately
// arbitrary. Lookup failures of any kind degrade to "no attribution".
func ResolveAttribution(ctx context.Context, db *gorm.DB, logger *logrus.Logger) Attribution {
	if logger == nil {
		logger = config.GetLogger()
	}
	if db == nil {
		return Attribution{}
	}

	var staff models.Staff
	if err := db.WithContext(ctx).Model(&models.Staff{}).Select("id").First(&staff).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			config.LogError(logger, "reconciler.go", "ResolveAttribution", "First staff", nil, err)
		}
		return Attribution{}
	}
	return Attribution{StaffId: &staff.ID}
}

// ImportBatch processes descriptors one at a time, in input order, against a
// single store handle. It returns a batch-level error only when the store
// handle is missing or the shape is unknown; otherwise the outcome slice has
// the same length and order as the input and no item is silently dropped.
// A failure in item i never prevents items i+1..n from being attempted.
// Already-inserted rows stay persisted if the caller aborts mid-batch; each
// row is independently valid, so there is no batch-level transaction.
func ImportBatch(
	ctx context.Context,
	db *gorm.DB,
	logger *logrus.Logger,
	descriptors []ProductDescriptor,
	attribution Attribution,
	shape TargetShape,
	reporter Reporter,
) ([]Outcome, error) {
	if logger == nil {
		logger = config.GetLogger()
	}
	if !shape.valid() {
		return nil, ErrInvalidTargetShape
	}
	if db == nil {
		return nil, utils.ErrorStoreUnavailable
	}
	if reporter == nil {
		reporter = NopReporter{}
	}

	correlationId := correlationIdFromContextOrNew(ctx)
	outcomes := make([]Outcome, 0, len(descriptors))

	for i, descriptor := range descriptors {
		outcome := Outcome{Index: i, Descriptor: descriptor}

		if err := descriptor.validateFor(shape); err != nil {
			outcome.ErrorKind = ErrorKindInvalidDescriptor
			outcome.Err = err
			config.LogError(logger, "reconciler.go", "ImportBatch", "validate descriptor",
				logrus.Fields{"correlationId": correlationId, "index": i, "code": descriptor.Code}, err)
			outcomes = append(outcomes, outcome)
			continue
		}

		if shape.writesCatalog() {
			product := models.Product{
				Name:        descriptor.Name,
				ProductCode: descriptor.Code,
				Description: descriptor.Description,
				Image:       descriptor.ImageUrl,
				Price:       descriptor.UnitPrice,
				Category:    descriptor.Category,
				Supplier:    descriptor.Supplier,
				Stock:       descriptor.Quantity,
				Status:      models.ProductStatusActive,
				StaffId:     attribution.StaffId,
			}
			if err := db.WithContext(ctx).Create(&product).Error; err != nil {
				outcome.ErrorKind = ErrorKindStoreWriteFailed
				outcome.Err = err
				config.LogError(logger, "reconciler.go", "ImportBatch", "create product",
					logrus.Fields{"correlationId": correlationId, "index": i, "code": descriptor.Code}, err)
				outcomes = append(outcomes, outcome)
				continue
			}
			outcome.ProductId = product.ID
		}

		if shape.writesHistory() {
			record := models.ImportHistory{
				UserId:      nil, // staff-originated import
				StaffId:     attribution.StaffId,
				ProductName: descriptor.Name,
				ProductCode: descriptor.Code,
				ProductLink: descriptor.ImageUrl,
				Quantity:    descriptor.Quantity,
				UnitPrice:   descriptor.UnitPrice,
				TotalAmount: descriptor.TotalAmount(),
				Supplier:    descriptor.Supplier,
				Notes:       descriptor.Notes,
				Status:      models.ImportStatusCompleted,
			}
			if err := db.WithContext(ctx).Create(&record).Error; err != nil {
				outcome.ErrorKind = ErrorKindStoreWriteFailed
				outcome.Err = err
				config.LogError(logger, "reconciler.go", "ImportBatch", "create import history",
					logrus.Fields{"correlationId": correlationId, "index": i, "code": descriptor.Code}, err)
				outcomes = append(outcomes, outcome)
				continue
			}
			outcome.HistoryId = record.ID
		}

		outcomes = append(outcomes, outcome)
		reporter.ItemImported(outcome)
	}

	reporter.BatchCompleted(Summarize(outcomes))
	return outcomes, nil
}

func correlationIdFromContextOrNew(ctx context.Context) string {
	if ctx != nil {
		if v, ok := utils.GetCorrelationIdFromContext(ctx); ok && v != "" {
			return v
		}
	}
	return uuid.NewString()
}
