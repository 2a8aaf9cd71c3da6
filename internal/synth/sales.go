package synth

import (
	"math/rand"

	"beautydash/domain/catalog"
	"beautydash/domain/core"
	"beautydash/domain/metrics"
)

// Daily order count distribution and bounds. The clamp bounds daily volume
// regardless of how extreme the seasonal and weekday multipliers get.
const (
	baseDailyOrders  = 80.0
	orderCountStdDev = 15.0
	minDailyOrders   = 40
	maxDailyOrders   = 150
)

// Unit price spread around the category base and its clamp bounds
const (
	priceStdDevRatio = 0.15
	priceFloorRatio  = 0.6
	priceCeilRatio   = 1.5
)

// Quantity follows an exponential with this mean, floored and forced to ≥1
const qtyMean = 1.5

// generateDailySales draws one brand-day's order count and then one record
// per order. demand is the combined seasonal and weekday multiplier.
func (g *Generator) generateDailySales(rng *rand.Rand, brand catalog.Brand, day core.Day, active catalog.Campaign, demand float64) []metrics.SalesRecord {
	orders := int(clamp(rng.NormFloat64()*orderCountStdDev+baseDailyOrders*demand, minDailyOrders, maxDailyOrders))

	cats := catalog.Categories()
	catWeights := g.cfg.Catalog.CategoryWeights[brand]
	channels := catalog.SalesChannels()
	offers := catalog.Offers()

	records := make([]metrics.SalesRecord, 0, orders)
	for i := 0; i < orders; i++ {
		cat := cats[weightedIndex(rng, catWeights)]
		products := g.cfg.Catalog.Products[cat]
		product := products[rng.Intn(len(products))]
		channel := channels[weightedIndex(rng, g.cfg.Catalog.ChannelWeights)]
		offer := offers[weightedIndex(rng, g.cfg.Catalog.OfferWeights)]

		base := g.cfg.Catalog.BasePrices[cat]
		price := round2(clamp(rng.NormFloat64()*base*priceStdDevRatio+base, base*priceFloorRatio, base*priceCeilRatio))

		qty := int(rng.ExpFloat64() * qtyMean)
		if qty < 1 {
			qty = 1
		}

		records = append(records, metrics.SalesRecord{
			Brand:     brand,
			Date:      day,
			Category:  cat,
			Product:   product,
			Channel:   channel,
			Offer:     offer,
			Campaign:  active,
			Qty:       qty,
			UnitPrice: price,
			Revenue:   round2(price * float64(qty)),
		})
	}
	return records
}
