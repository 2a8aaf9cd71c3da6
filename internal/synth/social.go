package synth

import (
	"math/rand"

	"beautydash/domain/catalog"
	"beautydash/domain/core"
	"beautydash/domain/metrics"
)

// Follower initialization and daily compounding growth ranges
const (
	minInitialFollowers = 5000
	maxInitialFollowers = 15000
	minGrowthFactor     = 1.0005
	maxGrowthFactor     = 1.003

	minEngagement = 0.5
	maxEngagement = 8.5
)

// followerBook carries one brand's follower counts across the day loop.
// It is owned by a single brand's generation frame, never shared, which is
// what keeps the per-platform series monotonically non-decreasing: each day
// multiplies the running count by a growth factor ≥1 and truncates.
type followerBook struct {
	counts map[catalog.Platform]int
}

// newFollowerBook seeds each platform with a uniform starting audience
func newFollowerBook(rng *rand.Rand) *followerBook {
	counts := make(map[catalog.Platform]int, len(catalog.Platforms()))
	for _, platform := range catalog.Platforms() {
		counts[platform] = uniformIntRange(rng, minInitialFollowers, maxInitialFollowers)
	}
	return &followerBook{counts: counts}
}

// step advances every platform by one day and emits that day's records.
// Platforms are visited in fixed catalog order so a seeded run replays
// identically.
func (b *followerBook) step(rng *rand.Rand, brand catalog.Brand, day core.Day) []metrics.SocialRecord {
	records := make([]metrics.SocialRecord, 0, len(b.counts))
	for _, platform := range catalog.Platforms() {
		grown := int(float64(b.counts[platform]) * uniformRange(rng, minGrowthFactor, maxGrowthFactor))
		b.counts[platform] = grown

		records = append(records, metrics.SocialRecord{
			Brand:          brand,
			Date:           day,
			Platform:       platform,
			EngagementRate: round2(uniformRange(rng, minEngagement, maxEngagement)),
			Followers:      grown,
		})
	}
	return records
}
