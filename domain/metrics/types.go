package metrics

import (
	"beautydash/domain/catalog"
	"beautydash/domain/core"
)

// SalesRecord is one order line generated for a brand-day.
// Revenue is derived from UnitPrice and Qty at generation time and is never
// stored independently of its inputs.
type SalesRecord struct {
	Brand     catalog.Brand        `json:"brand"`
	Date      core.Day             `json:"date"`
	Category  catalog.Category     `json:"category"`
	Product   string               `json:"product"`
	Channel   catalog.SalesChannel `json:"channel"`
	Offer     catalog.Offer        `json:"offer"`
	Campaign  catalog.Campaign     `json:"campaign"`
	Qty       int                  `json:"qty"`
	UnitPrice float64              `json:"unit_price"`
	Revenue   float64              `json:"revenue"`
}

// MarketingRecord is one channel's acquisition metrics for a brand-day.
// CPC is nil unless Channel is Paid.
type MarketingRecord struct {
	Brand    catalog.Brand            `json:"brand"`
	Date     core.Day                 `json:"date"`
	Channel  catalog.MarketingChannel `json:"channel"`
	Campaign catalog.Campaign         `json:"campaign"`
	Traffic  int                      `json:"traffic"`
	CTR      float64                  `json:"ctr"`
	CPC      *float64                 `json:"cpc,omitempty"`
}

// SocialRecord is one platform's standing for a brand-day. Followers carry
// forward day to day, so the series is non-decreasing per (brand, platform).
type SocialRecord struct {
	Brand          catalog.Brand    `json:"brand"`
	Date           core.Day         `json:"date"`
	Platform       catalog.Platform `json:"platform"`
	EngagementRate float64          `json:"engagement_rate"`
	Followers      int              `json:"followers"`
}

// ReviewRecord is one customer review. Dates are sampled from the horizon
// with replacement, not one per day.
type ReviewRecord struct {
	Brand     catalog.Brand     `json:"brand"`
	Date      core.Day          `json:"date"`
	Sentiment catalog.Sentiment `json:"sentiment"`
	Rating    int               `json:"rating"`
}
