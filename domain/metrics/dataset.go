package metrics

import (
	"time"

	"beautydash/domain/catalog"
	"beautydash/domain/core"
)

// Dataset is the canonical output of one generation run: four flat tables
// plus the campaign catalog. It is created once and treated as immutable;
// downstream filtering produces views, never mutations.
type Dataset struct {
	ID        core.DatasetID     `json:"id"`
	Sales     []SalesRecord      `json:"sales"`
	Marketing []MarketingRecord  `json:"marketing"`
	Social    []SocialRecord     `json:"social"`
	Reviews   []ReviewRecord     `json:"reviews"`
	Campaigns []catalog.Campaign `json:"campaigns"`

	// Generation context
	StartDate core.Day        `json:"start_date"`
	Days      int             `json:"days"`
	Brands    []catalog.Brand `json:"brands"`
	Seed      int64           `json:"seed"`
	CreatedAt time.Time       `json:"created_at"`
}

// Row is a generic row view: column name to value. The presentation layer
// consumes tables in this shape.
type Row map[string]any

// SalesRows returns the sales table as generic rows
func (d *Dataset) SalesRows() []Row {
	rows := make([]Row, len(d.Sales))
	for i, r := range d.Sales {
		rows[i] = Row{
			"Brand":     string(r.Brand),
			"Date":      r.Date.Time(),
			"Category":  string(r.Category),
			"Product":   r.Product,
			"Channel":   string(r.Channel),
			"Offer":     string(r.Offer),
			"Campaign":  string(r.Campaign),
			"Qty":       r.Qty,
			"UnitPrice": r.UnitPrice,
			"Revenue":   r.Revenue,
		}
	}
	return rows
}

// MarketingRows returns the marketing table as generic rows. CPC is omitted
// for non-paid channels rather than emitted as zero.
func (d *Dataset) MarketingRows() []Row {
	rows := make([]Row, len(d.Marketing))
	for i, r := range d.Marketing {
		row := Row{
			"Brand":    string(r.Brand),
			"Date":     r.Date.Time(),
			"Channel":  string(r.Channel),
			"Campaign": string(r.Campaign),
			"Traffic":  r.Traffic,
			"CTR":      r.CTR,
		}
		if r.CPC != nil {
			row["CPC"] = *r.CPC
		}
		rows[i] = row
	}
	return rows
}

// SocialRows returns the social table as generic rows
func (d *Dataset) SocialRows() []Row {
	rows := make([]Row, len(d.Social))
	for i, r := range d.Social {
		rows[i] = Row{
			"Brand":          string(r.Brand),
			"Date":           r.Date.Time(),
			"Platform":       string(r.Platform),
			"EngagementRate": r.EngagementRate,
			"Followers":      r.Followers,
		}
	}
	return rows
}

// ReviewRows returns the reviews table as generic rows
func (d *Dataset) ReviewRows() []Row {
	rows := make([]Row, len(d.Reviews))
	for i, r := range d.Reviews {
		rows[i] = Row{
			"Brand":     string(r.Brand),
			"Date":      r.Date.Time(),
			"Sentiment": string(r.Sentiment),
			"Rating":    r.Rating,
		}
	}
	return rows
}

// RowCounts summarizes table sizes, useful for logging and health output
func (d *Dataset) RowCounts() map[string]int {
	return map[string]int{
		"sales":     len(d.Sales),
		"marketing": len(d.Marketing),
		"social":    len(d.Social),
		"reviews":   len(d.Reviews),
	}
}
