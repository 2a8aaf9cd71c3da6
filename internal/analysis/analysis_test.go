package analysis

import (
	"math/rand"
	"testing"
	"time"

	"beautydash/domain/catalog"
	"beautydash/domain/core"
	"beautydash/domain/metrics"
	"beautydash/internal/synth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateTestDataset(t *testing.T, days int) *metrics.Dataset {
	t.Helper()
	cfg := synth.DefaultConfig(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), days)
	cfg.Seed = 42
	gen, err := synth.New(cfg)
	require.NoError(t, err)
	ds, err := gen.Generate()
	require.NoError(t, err)
	return ds
}

func TestFilter_ByBrand(t *testing.T) {
	ds := generateTestDataset(t, 10)

	v := Filter{Brands: []catalog.Brand{"Radiance"}}.Apply(ds)

	require.NotEmpty(t, v.Sales)
	for _, r := range v.Sales {
		assert.Equal(t, catalog.Brand("Radiance"), r.Brand)
	}
	for _, r := range v.Social {
		assert.Equal(t, catalog.Brand("Radiance"), r.Brand)
	}
	assert.Len(t, v.Reviews, 120)
}

func TestFilter_ByDateRange(t *testing.T) {
	ds := generateTestDataset(t, 10)

	from := core.NewDay(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	to := core.NewDay(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))
	v := Filter{From: &from, To: &to}.Apply(ds)

	require.NotEmpty(t, v.Sales)
	for _, r := range v.Sales {
		assert.False(t, r.Date.Before(from), "row before range: %s", r.Date)
		assert.False(t, r.Date.After(to), "row after range: %s", r.Date)
	}
	// 3 days x 4 platforms x 3 brands
	assert.Len(t, v.Social, 3*4*3)
}

func TestFilter_ByCampaignLeavesSocialAlone(t *testing.T) {
	ds := generateTestDataset(t, 10)

	v := Filter{Campaigns: []catalog.Campaign{"Summer Glow"}}.Apply(ds)

	for _, r := range v.Sales {
		assert.Equal(t, catalog.Campaign("Summer Glow"), r.Campaign)
	}
	for _, r := range v.Marketing {
		assert.Equal(t, catalog.Campaign("Summer Glow"), r.Campaign)
	}
	// Social and review tables carry no campaign and pass through unfiltered
	assert.Len(t, v.Social, len(ds.Social))
	assert.Len(t, v.Reviews, len(ds.Reviews))
}

func TestComputeSummary(t *testing.T) {
	ds := generateTestDataset(t, 10)
	v := Filter{}.Apply(ds)

	s := ComputeSummary(v, rand.New(rand.NewSource(1)))

	assert.Greater(t, s.TotalRevenue, 0.0)
	assert.Greater(t, s.TotalUnits, 0)
	assert.Greater(t, s.AvgOrderValue, 0.0)
	assert.InDelta(t, s.TotalRevenue/float64(s.TotalUnits), s.AvgOrderValue, 0.01)

	assert.GreaterOrEqual(t, s.CAC, 25.0)
	assert.LessOrEqual(t, s.CAC, 40.0)
	assert.GreaterOrEqual(t, s.MarketingROI, 2.5)
	assert.LessOrEqual(t, s.MarketingROI, 4.0)
}

func TestComputeSummary_EmptyViewGuardsAOV(t *testing.T) {
	s := ComputeSummary(View{}, rand.New(rand.NewSource(1)))

	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.TotalUnits)
	assert.Zero(t, s.AvgOrderValue, "AOV must be a defined value when there are no orders")
}

func TestRevenueByCategory_SumsMatchTotal(t *testing.T) {
	ds := generateTestDataset(t, 10)
	v := Filter{}.Apply(ds)

	groups := RevenueByCategory(v)
	require.NotEmpty(t, groups)

	var rollup float64
	for _, g := range groups {
		assert.NotEmpty(t, g.Brand)
		assert.NotEmpty(t, g.Label)
		rollup += g.Revenue
	}

	var total float64
	for _, r := range v.Sales {
		total += r.Revenue
	}
	assert.InDelta(t, total, rollup, 1.0, "category rollup should account for all revenue")
}

func TestTopProducts_BoundedPerBrand(t *testing.T) {
	ds := generateTestDataset(t, 10)
	v := Filter{}.Apply(ds)

	top := TopProducts(v, 3)

	perBrand := make(map[catalog.Brand]int)
	var lastBrand catalog.Brand
	var lastRevenue float64
	for _, p := range top {
		perBrand[p.Brand]++
		if p.Brand == lastBrand {
			assert.LessOrEqual(t, p.Revenue, lastRevenue, "products must be ordered best-first within a brand")
		}
		lastBrand, lastRevenue = p.Brand, p.Revenue
	}
	for brand, n := range perBrand {
		assert.LessOrEqual(t, n, 3, "brand %s has too many top products", brand)
	}
}

func TestTrafficByCampaign(t *testing.T) {
	ds := generateTestDataset(t, 10)
	v := Filter{}.Apply(ds)

	rows := TrafficByCampaign(v)
	require.NotEmpty(t, rows)

	var rollup int
	for _, r := range rows {
		rollup += r.Traffic
	}
	var total int
	for _, r := range v.Marketing {
		total += r.Traffic
	}
	assert.Equal(t, total, rollup)
}

func TestCustomerTrends(t *testing.T) {
	ds := generateTestDataset(t, 10)
	v := Filter{}.Apply(ds)

	points := CustomerTrends(v, rand.New(rand.NewSource(1)))
	require.NotEmpty(t, points)

	// One point per sale date, in ascending order, counts never decreasing
	prev := points[0]
	for _, p := range points[1:] {
		assert.True(t, prev.Date.Before(p.Date))
		assert.GreaterOrEqual(t, p.NewCustomers, prev.NewCustomers)
		assert.GreaterOrEqual(t, p.ReturningCustomers, prev.ReturningCustomers)
		prev = p
	}

	// Every sale lands in exactly one cumulative bucket
	last := points[len(points)-1]
	assert.Equal(t, len(v.Sales), last.NewCustomers+last.ReturningCustomers)
	assert.Positive(t, last.NewCustomers)
	assert.Positive(t, last.ReturningCustomers)
}

func TestCustomerTrends_EmptyView(t *testing.T) {
	points := CustomerTrends(View{}, rand.New(rand.NewSource(1)))
	assert.Empty(t, points)
}

func TestEmailCampaigns(t *testing.T) {
	ds := generateTestDataset(t, 20)
	v := Filter{}.Apply(ds)

	rows := EmailCampaigns(v, rand.New(rand.NewSource(1)))
	require.NotEmpty(t, rows)

	for _, r := range rows {
		assert.Greater(t, r.Traffic, 0)
		assert.Greater(t, r.MeanCTR, 0.0)
		assert.Less(t, r.OpenRate, r.MeanCTR, "open rate is a fraction of CTR")
		assert.Less(t, r.ConversionRate, r.OpenRate, "conversion factor is below the open factor range")
	}
}

func TestSentimentCounts_SumTo120PerBrand(t *testing.T) {
	ds := generateTestDataset(t, 10)
	v := Filter{}.Apply(ds)

	rows := SentimentCounts(v)
	perBrand := make(map[catalog.Brand]int)
	for _, r := range rows {
		perBrand[r.Brand] += r.Count
	}
	for _, brand := range ds.Brands {
		assert.Equal(t, 120, perBrand[brand])
	}
}

func TestSocialSummary(t *testing.T) {
	ds := generateTestDataset(t, 10)
	v := Filter{}.Apply(ds)

	rows := SocialSummary(v)
	// one row per (brand, platform)
	assert.Len(t, rows, len(ds.Brands)*len(catalog.Platforms()))
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.MeanEngagement, 0.5)
		assert.LessOrEqual(t, r.MeanEngagement, 8.5)
		assert.GreaterOrEqual(t, r.MaxFollowers, 5000)
	}
}

func TestRevenueDistribution(t *testing.T) {
	ds := generateTestDataset(t, 30)
	v := Filter{}.Apply(ds)

	markers, err := RevenueDistribution(v)
	require.NoError(t, err)

	assert.Equal(t, len(v.Sales), markers.SampleSize)
	assert.Greater(t, markers.Mean, 0.0)
	assert.Greater(t, markers.StdDev, 0.0)
	assert.LessOrEqual(t, markers.Min, markers.Q25)
	assert.LessOrEqual(t, markers.Q25, markers.Median)
	assert.LessOrEqual(t, markers.Median, markers.Q75)
	assert.LessOrEqual(t, markers.Q75, markers.Max)
	// Qty is exponential-ish, so per-sale revenue skews right
	assert.Greater(t, markers.Skewness, 0.0)
}

func TestRevenueDistribution_EmptySeries(t *testing.T) {
	_, err := RevenueDistribution(View{})
	assert.Error(t, err)
}
