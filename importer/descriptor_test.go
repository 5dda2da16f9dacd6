package importer

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTotalAmount_ExactIntegerProducts(t *testing.T) {
	cases := []struct {
		unitPrice int64
		quantity  int
		expected  string
	}{
		{250000, 50, "12500000"},
		{2500000, 30, "75000000"},
		{1500000, 25, "37500000"},
		{8000000, 20, "160000000"},
		{6000000, 40, "240000000"},
		{0, 100, "0"},
		{999, 0, "0"},
	}
	for _, tc := range cases {
		d := ProductDescriptor{UnitPrice: decimal.NewFromInt(tc.unitPrice), Quantity: tc.quantity}
		if got := d.TotalAmount().String(); got != tc.expected {
			t.Fatalf("TotalAmount(%d x %d) expected %s, got %s", tc.unitPrice, tc.quantity, tc.expected, got)
		}
	}
}

func TestValidateFor_FieldConstraints(t *testing.T) {
	valid := ProductDescriptor{
		Name:      "Wireless Optical Mouse",
		Code:      "PRD-001",
		UnitPrice: decimal.NewFromInt(250000),
		Quantity:  50,
		ImageUrl:  "https://cdn.example.com/images/prd-001.jpg",
		Category:  "Accessories",
		Supplier:  "Hoa Binh Electronics",
	}

	cases := []struct {
		name    string
		mutate  func(d *ProductDescriptor)
		shape   TargetShape
		wantErr bool
	}{
		{"valid for history", func(d *ProductDescriptor) {}, TargetHistoryOnly, false},
		{"valid for catalog", func(d *ProductDescriptor) {}, TargetCatalogOnly, false},
		{"valid for both", func(d *ProductDescriptor) {}, TargetCatalogAndHistory, false},
		{"empty name", func(d *ProductDescriptor) { d.Name = "  " }, TargetHistoryOnly, true},
		{"empty code", func(d *ProductDescriptor) { d.Code = "" }, TargetHistoryOnly, true},
		{"negative quantity", func(d *ProductDescriptor) { d.Quantity = -1 }, TargetHistoryOnly, true},
		{"negative unit price", func(d *ProductDescriptor) { d.UnitPrice = decimal.NewFromInt(-250000) }, TargetHistoryOnly, true},
		{"zero quantity allowed", func(d *ProductDescriptor) { d.Quantity = 0 }, TargetHistoryOnly, false},
		{"zero price allowed", func(d *ProductDescriptor) { d.UnitPrice = decimal.Zero }, TargetHistoryOnly, false},
		{"relative image url", func(d *ProductDescriptor) { d.ImageUrl = "images/prd-001.jpg" }, TargetHistoryOnly, true},
		{"blank image url allowed", func(d *ProductDescriptor) { d.ImageUrl = "" }, TargetHistoryOnly, false},
		{"missing category fails catalog", func(d *ProductDescriptor) { d.Category = "" }, TargetCatalogOnly, true},
		{"missing category fine for history", func(d *ProductDescriptor) { d.Category = "" }, TargetHistoryOnly, false},
		{"missing supplier fails history", func(d *ProductDescriptor) { d.Supplier = "" }, TargetHistoryOnly, true},
		{"missing supplier fine for catalog", func(d *ProductDescriptor) { d.Supplier = "" }, TargetCatalogOnly, false},
	}
	for _, tc := range cases {
		d := valid
		tc.mutate(&d)
		err := d.validateFor(tc.shape)
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestImportBatch_NilStoreHandleIsFatal(t *testing.T) {
	outcomes, err := ImportBatch(nil, nil, nil, []ProductDescriptor{{Name: "x", Code: "X-1"}}, Attribution{}, TargetHistoryOnly, nil)
	if err == nil {
		t.Fatal("expected store unavailable error, got nil")
	}
	if outcomes != nil {
		t.Fatalf("expected no outcomes before setup failure, got %d", len(outcomes))
	}
}

func TestImportBatch_UnknownShapeIsFatal(t *testing.T) {
	_, err := ImportBatch(nil, nil, nil, nil, Attribution{}, TargetShape("sideways"), nil)
	if err != ErrInvalidTargetShape {
		t.Fatalf("expected ErrInvalidTargetShape, got %v", err)
	}
}
