package synth

import (
	"math/rand"

	"beautydash/domain/catalog"
	"beautydash/domain/core"
	"beautydash/domain/metrics"
)

// generateReviews draws a fixed-size sample of review events for one brand.
// Dates come from the horizon with replacement, so days can repeat or be
// skipped entirely. Ratings follow the sentiment: positive reviews land at
// 4 or 5 stars, neutral pins to 3, negative at 1 or 2.
func (g *Generator) generateReviews(rng *rand.Rand, brand catalog.Brand, days []core.Day) []metrics.ReviewRecord {
	if len(days) == 0 {
		return nil
	}

	sentiments := catalog.Sentiments()
	records := make([]metrics.ReviewRecord, 0, g.cfg.ReviewsPerBrand)
	for i := 0; i < g.cfg.ReviewsPerBrand; i++ {
		day := days[rng.Intn(len(days))]
		sentiment := sentiments[weightedIndex(rng, g.cfg.Catalog.SentimentWeights)]

		var rating int
		switch sentiment {
		case catalog.SentimentPositive:
			rating = uniformIntRange(rng, 4, 5)
		case catalog.SentimentNeutral:
			rating = 3
		case catalog.SentimentNegative:
			rating = uniformIntRange(rng, 1, 2)
		}

		records = append(records, metrics.ReviewRecord{
			Brand:     brand,
			Date:      day,
			Sentiment: sentiment,
			Rating:    rating,
		})
	}
	return records
}
