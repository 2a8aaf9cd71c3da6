package synth

import (
	"log"
	"math/rand"
	"time"

	"beautydash/domain/catalog"
	"beautydash/domain/core"
	"beautydash/domain/metrics"
	"beautydash/internal/errors"

	"golang.org/x/sync/errgroup"
)

// brandSeedStride separates per-brand rng streams derived from the root seed
const brandSeedStride int64 = 0x5851F42D4C957F2D

// Generator synthesizes a complete multi-brand dataset: sales, marketing,
// social, and review tables plus the campaign catalog. All randomness flows
// through per-brand *rand.Rand instances derived from the configured seed,
// so brands can generate concurrently without sharing generator state.
type Generator struct {
	cfg       Config
	campaigns []catalog.Campaign
}

// New validates the configuration and builds a generator
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generator config")
	}
	return &Generator{
		cfg:       cfg,
		campaigns: catalog.Campaigns(),
	}, nil
}

// brandTables holds one brand's slice of every table while the brands run
// concurrently. Results are merged in configured brand order afterwards so
// output ordering does not depend on goroutine scheduling.
type brandTables struct {
	sales     []metrics.SalesRecord
	marketing []metrics.MarketingRecord
	social    []metrics.SocialRecord
	reviews   []metrics.ReviewRecord
}

// Generate runs the full synthesis and returns an immutable dataset
func (g *Generator) Generate() (*metrics.Dataset, error) {
	rootSeed := g.cfg.Seed
	if rootSeed == 0 {
		rootSeed = time.Now().UnixNano()
	}

	days := core.DayRange(g.cfg.StartDate, g.cfg.Days)
	results := make([]brandTables, len(g.cfg.Brands))

	var group errgroup.Group
	for i, brand := range g.cfg.Brands {
		group.Go(func() error {
			rng := rand.New(rand.NewSource(rootSeed + int64(i)*brandSeedStride))
			results[i] = g.generateBrand(rng, brand, days)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	ds := &metrics.Dataset{
		ID:        core.DatasetID(core.NewID()),
		Campaigns: g.campaigns,
		StartDate: core.NewDay(g.cfg.StartDate),
		Days:      g.cfg.Days,
		Brands:    g.cfg.Brands,
		Seed:      rootSeed,
		CreatedAt: time.Now(),
	}
	for _, r := range results {
		ds.Sales = append(ds.Sales, r.sales...)
		ds.Marketing = append(ds.Marketing, r.marketing...)
		ds.Social = append(ds.Social, r.social...)
		ds.Reviews = append(ds.Reviews, r.reviews...)
	}

	log.Printf("[Generator] generated dataset %s: %d brands, %d days, %d sales / %d marketing / %d social / %d reviews rows",
		ds.ID, len(ds.Brands), ds.Days, len(ds.Sales), len(ds.Marketing), len(ds.Social), len(ds.Reviews))
	return ds, nil
}

// generateBrand runs one brand's full horizon. Days are processed in
// chronological order because follower counts carry forward between them.
func (g *Generator) generateBrand(rng *rand.Rand, brand catalog.Brand, days []core.Day) brandTables {
	var tables brandTables
	followers := newFollowerBook(rng)

	for _, day := range days {
		seasonal := SeasonalMultiplier(day)
		weekday := weekdayMultiplier(day)

		// One active campaign covers all of this brand's sales and
		// marketing rows for the day.
		active := g.campaigns[rng.Intn(len(g.campaigns))]

		tables.sales = append(tables.sales, g.generateDailySales(rng, brand, day, active, seasonal*weekday)...)
		tables.marketing = append(tables.marketing, g.generateDailyMarketing(rng, brand, day, active, seasonal)...)
		tables.social = append(tables.social, followers.step(rng, brand, day)...)
	}

	tables.reviews = g.generateReviews(rng, brand, days)
	return tables
}
