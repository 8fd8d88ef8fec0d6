package invoice

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"greenfood-api/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{999, "Rp 999"},
		{1000, "Rp 1.000"},
		{20000, "Rp 20.000"},
		{1250000, "Rp 1.250.000"},
		{100000000, "Rp 100.000.000"},
		{-5000, "-Rp 5.000"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderInvoice(t *testing.T) {
	order := &model.Order{
		ID:           primitive.NewObjectID(),
		BuyerName:    "Budi",
		BuyerEmail:   "budi@example.com",
		BuyerAddress: "Jl. Kebon Jeruk 12",
		Items: []model.OrderItem{
			{ProductID: "p1", Title: "Green Tea", Price: 10000, Quantity: 2},
		},
		Subtotal:    20000,
		Discount:    0,
		DeliveryFee: 5000,
		Total:       25000,
		Status:      model.OrderStatusPending,
		CreatedAt:   time.Now(),
	}

	var buf bytes.Buffer
	if err := Render(&buf, order); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := buf.String()

	// Subtotal line is computed from the items.
	if !strings.Contains(html, "Rp 20.000") {
		t.Error("computed subtotal Rp 20.000 missing")
	}
	if !strings.Contains(html, "Rp 5.000") {
		t.Error("delivery fee Rp 5.000 missing")
	}
	if !strings.Contains(html, "Rp 25.000") {
		t.Error("total Rp 25.000 missing")
	}
	if !strings.Contains(html, "Budi") || !strings.Contains(html, "Green Tea") {
		t.Error("buyer or item info missing")
	}
}

func TestRenderInvoiceDisplaysStoredTotal(t *testing.T) {
	// The grand total is rendered as stored even when it disagrees with
	// the line items; the invoice never recomputes it.
	order := &model.Order{
		ID:           primitive.NewObjectID(),
		BuyerName:    "Budi",
		BuyerEmail:   "budi@example.com",
		BuyerAddress: "Jl. Kebon Jeruk 12",
		Items: []model.OrderItem{
			{ProductID: "p1", Title: "Green Tea", Price: 10000, Quantity: 2},
		},
		Subtotal:  20000,
		Total:     999,
		Status:    model.OrderStatusPaid,
		CreatedAt: time.Now(),
	}

	var buf bytes.Buffer
	if err := Render(&buf, order); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Rp 999") {
		t.Error("stored total must be displayed verbatim")
	}
}

func TestRenderInvoiceEscapesBuyerInput(t *testing.T) {
	order := &model.Order{
		ID:           primitive.NewObjectID(),
		BuyerName:    "<script>alert(1)</script>",
		BuyerEmail:   "budi@example.com",
		BuyerAddress: "Jl. Kebon Jeruk 12",
		Items: []model.OrderItem{
			{ProductID: "p1", Title: "Green Tea", Price: 10000, Quantity: 1},
		},
		CreatedAt: time.Now(),
	}

	var buf bytes.Buffer
	if err := Render(&buf, order); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Error("buyer input must be HTML-escaped")
	}
}
