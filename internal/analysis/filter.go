package analysis

import (
	"beautydash/domain/catalog"
	"beautydash/domain/core"
	"beautydash/domain/metrics"
)

// Filter narrows a dataset by brand set, campaign set, and date range.
// Nil/empty slices or bounds mean "no restriction". Campaign filtering only
// applies to sales and marketing; social and review rows carry no campaign.
type Filter struct {
	Brands    []catalog.Brand    `json:"brands,omitempty"`
	Campaigns []catalog.Campaign `json:"campaigns,omitempty"`
	From      *core.Day          `json:"from,omitempty"`
	To        *core.Day          `json:"to,omitempty"`
}

// View is a filtered slice of a dataset. It shares the underlying records
// with the dataset — filtering never mutates.
type View struct {
	Sales     []metrics.SalesRecord
	Marketing []metrics.MarketingRecord
	Social    []metrics.SocialRecord
	Reviews   []metrics.ReviewRecord
}

func (f Filter) brandAllowed(b catalog.Brand) bool {
	if len(f.Brands) == 0 {
		return true
	}
	for _, v := range f.Brands {
		if v == b {
			return true
		}
	}
	return false
}

func (f Filter) campaignAllowed(c catalog.Campaign) bool {
	if len(f.Campaigns) == 0 {
		return true
	}
	for _, v := range f.Campaigns {
		if v == c {
			return true
		}
	}
	return false
}

func (f Filter) dateAllowed(d core.Day) bool {
	if f.From != nil && d.Before(*f.From) {
		return false
	}
	if f.To != nil && d.After(*f.To) {
		return false
	}
	return true
}

// Apply produces a filtered view of the dataset
func (f Filter) Apply(ds *metrics.Dataset) View {
	var v View
	for _, r := range ds.Sales {
		if f.brandAllowed(r.Brand) && f.campaignAllowed(r.Campaign) && f.dateAllowed(r.Date) {
			v.Sales = append(v.Sales, r)
		}
	}
	for _, r := range ds.Marketing {
		if f.brandAllowed(r.Brand) && f.campaignAllowed(r.Campaign) && f.dateAllowed(r.Date) {
			v.Marketing = append(v.Marketing, r)
		}
	}
	for _, r := range ds.Social {
		if f.brandAllowed(r.Brand) && f.dateAllowed(r.Date) {
			v.Social = append(v.Social, r)
		}
	}
	for _, r := range ds.Reviews {
		if f.brandAllowed(r.Brand) && f.dateAllowed(r.Date) {
			v.Reviews = append(v.Reviews, r)
		}
	}
	return v
}
