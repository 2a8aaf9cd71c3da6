package analysis

import (
	"math"
	"math/rand"
	"sort"

	"beautydash/domain/catalog"
	"beautydash/domain/core"

	"github.com/montanaflynn/stats"
)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RevenueGroup is one bucket of a revenue rollup
type RevenueGroup struct {
	Brand   catalog.Brand `json:"brand,omitempty"`
	Label   string        `json:"label"`
	Revenue float64       `json:"revenue"`
}

// RevenueByCategory sums revenue per (brand, category), ordered by brand
// then category for stable output
func RevenueByCategory(v View) []RevenueGroup {
	return sumSalesBy(v, func(r salesKeyer) (catalog.Brand, string) {
		return r.brand, r.category
	})
}

// RevenueByChannel sums revenue per (brand, sales channel)
func RevenueByChannel(v View) []RevenueGroup {
	return sumSalesBy(v, func(r salesKeyer) (catalog.Brand, string) {
		return r.brand, r.channel
	})
}

// RevenueByOffer sums revenue per promotion type across all brands
func RevenueByOffer(v View) []RevenueGroup {
	return sumSalesBy(v, func(r salesKeyer) (catalog.Brand, string) {
		return "", r.offer
	})
}

type salesKeyer struct {
	brand    catalog.Brand
	category string
	channel  string
	offer    string
}

func sumSalesBy(v View, key func(salesKeyer) (catalog.Brand, string)) []RevenueGroup {
	type groupKey struct {
		brand catalog.Brand
		label string
	}
	totals := make(map[groupKey]float64)
	for _, r := range v.Sales {
		brand, label := key(salesKeyer{
			brand:    r.Brand,
			category: string(r.Category),
			channel:  string(r.Channel),
			offer:    string(r.Offer),
		})
		totals[groupKey{brand, label}] += r.Revenue
	}

	groups := make([]RevenueGroup, 0, len(totals))
	for k, rev := range totals {
		groups = append(groups, RevenueGroup{Brand: k.brand, Label: k.label, Revenue: round2(rev)})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Brand != groups[j].Brand {
			return groups[i].Brand < groups[j].Brand
		}
		return groups[i].Label < groups[j].Label
	})
	return groups
}

// DateRevenue is one day's total revenue
type DateRevenue struct {
	Date    core.Day `json:"date"`
	Revenue float64  `json:"revenue"`
}

// RevenueByDate sums revenue per day in chronological order
// CustomerTrendPoint is one day of the cumulative new-vs-returning
// customer series.
type CustomerTrendPoint struct {
	Date               core.Day `json:"date"`
	NewCustomers       int      `json:"new_customers"`
	ReturningCustomers int      `json:"returning_customers"`
}

// CustomerTrends builds the cumulative new-vs-returning customer series.
// The tables carry no customer identity, so each sale is tagged as a new
// customer with probability 0.35 from the injected rng, like the other
// simulated dashboard metrics.
func CustomerTrends(v View, rng *rand.Rand) []CustomerTrendPoint {
	newByDate := make(map[core.Day]int)
	returningByDate := make(map[core.Day]int)
	seen := make(map[core.Day]bool)
	var dates []core.Day
	for _, r := range v.Sales {
		if rng.Float64() < 0.35 {
			newByDate[r.Date]++
		} else {
			returningByDate[r.Date]++
		}
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	points := make([]CustomerTrendPoint, 0, len(dates))
	newTotal, returningTotal := 0, 0
	for _, day := range dates {
		newTotal += newByDate[day]
		returningTotal += returningByDate[day]
		points = append(points, CustomerTrendPoint{
			Date:               day,
			NewCustomers:       newTotal,
			ReturningCustomers: returningTotal,
		})
	}
	return points
}

func RevenueByDate(v View) []DateRevenue {
	totals := make(map[core.Day]float64)
	for _, r := range v.Sales {
		totals[r.Date] += r.Revenue
	}
	points := make([]DateRevenue, 0, len(totals))
	for day, rev := range totals {
		points = append(points, DateRevenue{Date: day, Revenue: round2(rev)})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// ProductRevenue is one product's revenue total for a brand
type ProductRevenue struct {
	Brand   catalog.Brand `json:"brand"`
	Product string        `json:"product"`
	Revenue float64       `json:"revenue"`
}

// TopProducts returns each brand's n highest-revenue products, best first
func TopProducts(v View, n int) []ProductRevenue {
	type key struct {
		brand   catalog.Brand
		product string
	}
	totals := make(map[key]float64)
	for _, r := range v.Sales {
		totals[key{r.Brand, r.Product}] += r.Revenue
	}

	byBrand := make(map[catalog.Brand][]ProductRevenue)
	for k, rev := range totals {
		byBrand[k.brand] = append(byBrand[k.brand], ProductRevenue{Brand: k.brand, Product: k.product, Revenue: round2(rev)})
	}

	brands := make([]catalog.Brand, 0, len(byBrand))
	for b := range byBrand {
		brands = append(brands, b)
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i] < brands[j] })

	var top []ProductRevenue
	for _, b := range brands {
		rows := byBrand[b]
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Revenue != rows[j].Revenue {
				return rows[i].Revenue > rows[j].Revenue
			}
			return rows[i].Product < rows[j].Product
		})
		if len(rows) > n {
			rows = rows[:n]
		}
		top = append(top, rows...)
	}
	return top
}

// CampaignTraffic is total acquisition traffic for a (campaign, channel) pair
type CampaignTraffic struct {
	Campaign catalog.Campaign         `json:"campaign"`
	Channel  catalog.MarketingChannel `json:"channel"`
	Traffic  int                      `json:"traffic"`
}

// TrafficByCampaign sums marketing traffic per (campaign, channel)
func TrafficByCampaign(v View) []CampaignTraffic {
	type key struct {
		campaign catalog.Campaign
		channel  catalog.MarketingChannel
	}
	totals := make(map[key]int)
	for _, r := range v.Marketing {
		totals[key{r.Campaign, r.Channel}] += r.Traffic
	}
	rows := make([]CampaignTraffic, 0, len(totals))
	for k, traffic := range totals {
		rows = append(rows, CampaignTraffic{Campaign: k.campaign, Channel: k.channel, Traffic: traffic})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Campaign != rows[j].Campaign {
			return rows[i].Campaign < rows[j].Campaign
		}
		return rows[i].Channel < rows[j].Channel
	})
	return rows
}

// EmailCampaignPerformance summarizes the Email channel per campaign.
// Open and conversion rates have no backing table; they are simulated as a
// fraction of the mean CTR, like the source dashboard does.
type EmailCampaignPerformance struct {
	Campaign       catalog.Campaign `json:"campaign"`
	Traffic        int              `json:"traffic"`
	MeanCTR        float64          `json:"mean_ctr"`
	OpenRate       float64          `json:"open_rate"`
	ConversionRate float64          `json:"conversion_rate"`
}

// EmailCampaigns aggregates email marketing rows per campaign
func EmailCampaigns(v View, rng *rand.Rand) []EmailCampaignPerformance {
	traffic := make(map[catalog.Campaign]int)
	ctrs := make(map[catalog.Campaign][]float64)
	for _, r := range v.Marketing {
		if r.Channel != catalog.MarketingEmail {
			continue
		}
		traffic[r.Campaign] += r.Traffic
		ctrs[r.Campaign] = append(ctrs[r.Campaign], r.CTR)
	}

	campaigns := make([]catalog.Campaign, 0, len(traffic))
	for c := range traffic {
		campaigns = append(campaigns, c)
	}
	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i] < campaigns[j] })

	openFactor := uniform(rng, 20, 40) / 100
	convFactor := uniform(rng, 5, 15) / 100

	rows := make([]EmailCampaignPerformance, 0, len(campaigns))
	for _, c := range campaigns {
		mean, _ := stats.Mean(ctrs[c])
		rows = append(rows, EmailCampaignPerformance{
			Campaign:       c,
			Traffic:        traffic[c],
			MeanCTR:        round2(mean),
			OpenRate:       round2(mean * openFactor),
			ConversionRate: round2(mean * convFactor),
		})
	}
	return rows
}

// SentimentCount is the review count for one (brand, sentiment) pair
type SentimentCount struct {
	Brand     catalog.Brand     `json:"brand"`
	Sentiment catalog.Sentiment `json:"sentiment"`
	Count     int               `json:"count"`
}

// SentimentCounts tallies reviews per brand and sentiment
func SentimentCounts(v View) []SentimentCount {
	type key struct {
		brand     catalog.Brand
		sentiment catalog.Sentiment
	}
	counts := make(map[key]int)
	for _, r := range v.Reviews {
		counts[key{r.Brand, r.Sentiment}]++
	}
	rows := make([]SentimentCount, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, SentimentCount{Brand: k.brand, Sentiment: k.sentiment, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Brand != rows[j].Brand {
			return rows[i].Brand < rows[j].Brand
		}
		return rows[i].Sentiment < rows[j].Sentiment
	})
	return rows
}

// SocialStanding summarizes a (brand, platform) pair over the view's range
type SocialStanding struct {
	Brand          catalog.Brand    `json:"brand"`
	Platform       catalog.Platform `json:"platform"`
	MeanEngagement float64          `json:"mean_engagement"`
	MaxFollowers   int              `json:"max_followers"`
}

// SocialSummary reports mean engagement and peak followers per brand/platform
func SocialSummary(v View) []SocialStanding {
	type key struct {
		brand    catalog.Brand
		platform catalog.Platform
	}
	engagement := make(map[key][]float64)
	followers := make(map[key]int)
	for _, r := range v.Social {
		k := key{r.Brand, r.Platform}
		engagement[k] = append(engagement[k], r.EngagementRate)
		if r.Followers > followers[k] {
			followers[k] = r.Followers
		}
	}

	rows := make([]SocialStanding, 0, len(engagement))
	for k, rates := range engagement {
		mean, _ := stats.Mean(rates)
		rows = append(rows, SocialStanding{
			Brand:          k.brand,
			Platform:       k.platform,
			MeanEngagement: round2(mean),
			MaxFollowers:   followers[k],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Brand != rows[j].Brand {
			return rows[i].Brand < rows[j].Brand
		}
		return rows[i].Platform < rows[j].Platform
	})
	return rows
}
