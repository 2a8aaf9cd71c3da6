package metrics

import (
	"testing"
	"time"

	"beautydash/domain/catalog"
	"beautydash/domain/core"
)

func TestSalesRows(t *testing.T) {
	day := core.NewDay(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	ds := &Dataset{
		Sales: []SalesRecord{{
			Brand:     "Radiance",
			Date:      day,
			Category:  catalog.CategorySkincare,
			Product:   "Hydrating Serum",
			Channel:   catalog.ChannelOnline,
			Offer:     catalog.OfferNone,
			Campaign:  "Spring Fresh",
			Qty:       2,
			UnitPrice: 44.5,
			Revenue:   89.0,
		}},
	}

	rows := ds.SalesRows()
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row["Brand"] != "Radiance" {
		t.Errorf("Expected Brand Radiance, got %v", row["Brand"])
	}
	if row["Revenue"] != 89.0 {
		t.Errorf("Expected Revenue 89.0, got %v", row["Revenue"])
	}
	if _, ok := row["Date"].(time.Time); !ok {
		t.Errorf("Expected Date as time.Time, got %T", row["Date"])
	}
}

func TestMarketingRows_CPCPresence(t *testing.T) {
	day := core.NewDay(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	cpc := 1.25
	ds := &Dataset{
		Marketing: []MarketingRecord{
			{Brand: "GlowUp", Date: day, Channel: catalog.MarketingPaid, Campaign: "Loyalty Boost", Traffic: 800, CTR: 2.1, CPC: &cpc},
			{Brand: "GlowUp", Date: day, Channel: catalog.MarketingOrganic, Campaign: "Loyalty Boost", Traffic: 1200, CTR: 1.4},
		},
	}

	rows := ds.MarketingRows()
	if got, ok := rows[0]["CPC"]; !ok || got != 1.25 {
		t.Errorf("Paid row should carry CPC 1.25, got %v (present=%v)", got, ok)
	}
	if _, ok := rows[1]["CPC"]; ok {
		t.Error("Organic row must not carry a CPC column")
	}
}

func TestRowCounts(t *testing.T) {
	ds := &Dataset{
		Reviews: make([]ReviewRecord, 7),
		Social:  make([]SocialRecord, 3),
	}
	counts := ds.RowCounts()
	if counts["reviews"] != 7 || counts["social"] != 3 || counts["sales"] != 0 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}
