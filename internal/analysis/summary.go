package analysis

import (
	"math/rand"
)

// Summary is the executive rollup shown at the top of the dashboard.
// Revenue, units, and AOV come from the sales table; the remaining business
// metrics have no backing table and are simulated draws, matching the rest
// of the synthetic dataset.
type Summary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalUnits    int     `json:"total_units"`
	AvgOrderValue float64 `json:"avg_order_value"`

	CAC                float64 `json:"cac"`
	CLV                float64 `json:"clv"`
	MarketingROI       float64 `json:"marketing_roi"`
	LoyaltyRate        float64 `json:"loyalty_rate"`
	RepeatPurchaseRate float64 `json:"repeat_purchase_rate"`
}

// ComputeSummary aggregates a view into the executive summary. The rng
// feeds the simulated metrics only; pass a seeded source for reproducible
// dashboards.
func ComputeSummary(v View, rng *rand.Rand) Summary {
	s := Summary{}
	for _, r := range v.Sales {
		s.TotalRevenue += r.Revenue
		s.TotalUnits += r.Qty
	}
	// Zero orders must report a defined AOV, not divide by zero
	if s.TotalUnits > 0 {
		s.AvgOrderValue = round2(s.TotalRevenue / float64(s.TotalUnits))
	}
	s.TotalRevenue = round2(s.TotalRevenue)

	s.CAC = round2(uniform(rng, 25, 40))
	s.CLV = round2(uniform(rng, 200, 350))
	s.MarketingROI = round2(uniform(rng, 2.5, 4.0))
	s.LoyaltyRate = round2(uniform(rng, 40, 70))
	s.RepeatPurchaseRate = round2(uniform(rng, 30, 60))
	return s
}
