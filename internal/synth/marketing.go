package synth

import (
	"math/rand"

	"beautydash/domain/catalog"
	"beautydash/domain/core"
	"beautydash/domain/metrics"
)

// Traffic bounds and the uniform ranges for click metrics
const (
	minTraffic         = 100
	maxTraffic         = 5000
	trafficStdDevRatio = 0.1

	minCTR = 0.3
	maxCTR = 4.5
	minCPC = 0.3
	maxCPC = 2.0
)

// generateDailyMarketing draws one record per marketing channel for a
// brand-day. CPC only exists for the Paid channel; the weekday boost does
// not apply to acquisition traffic, only the seasonal curve does.
func (g *Generator) generateDailyMarketing(rng *rand.Rand, brand catalog.Brand, day core.Day, active catalog.Campaign, seasonal float64) []metrics.MarketingRecord {
	channels := catalog.MarketingChannels()
	records := make([]metrics.MarketingRecord, 0, len(channels))

	for _, channel := range channels {
		base := g.cfg.Catalog.BaseTraffic[channel]
		traffic := int(clamp(rng.NormFloat64()*base*trafficStdDevRatio+base*seasonal, minTraffic, maxTraffic))
		ctr := round2(uniformRange(rng, minCTR, maxCTR))

		var cpc *float64
		if channel == catalog.MarketingPaid {
			v := round2(uniformRange(rng, minCPC, maxCPC))
			cpc = &v
		}

		records = append(records, metrics.MarketingRecord{
			Brand:    brand,
			Date:     day,
			Channel:  channel,
			Campaign: active,
			Traffic:  traffic,
			CTR:      ctr,
			CPC:      cpc,
		})
	}
	return records
}
