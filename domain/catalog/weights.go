package catalog

import (
	"fmt"
	"math"

	"beautydash/domain/core"
)

// Weights is a categorical weight vector. Entries are positive and sum to 1.
type Weights []float64

// Sum returns the total weight
func (w Weights) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// Valid reports whether the vector sums to 1 within tolerance
func (w Weights) Valid() bool {
	return len(w) > 0 && math.Abs(w.Sum()-1.0) < 1e-9
}

// Config holds every tunable table the generator samples from. It is built
// once (usually via DefaultConfig), validated, and passed into the generator
// rather than read from package-level literals, so alternative catalogs can
// be substituted in tests.
type Config struct {
	Products         map[Category][]string        `json:"products"`
	BasePrices       map[Category]float64         `json:"base_prices"`
	CategoryWeights  map[Brand]Weights            `json:"category_weights"`
	ChannelWeights   Weights                      `json:"channel_weights"`
	OfferWeights     Weights                      `json:"offer_weights"`
	SentimentWeights Weights                      `json:"sentiment_weights"`
	BaseTraffic      map[MarketingChannel]float64 `json:"base_traffic"`
}

// DefaultConfig returns the fixed beauty-business catalog.
func DefaultConfig() Config {
	return Config{
		Products: map[Category][]string{
			CategorySkincare:  {"Hydrating Serum", "SPF50 Sunscreen", "Vitamin C Cream", "Gentle Cleanser"},
			CategoryMakeup:    {"Matte Lipstick", "Glow Foundation", "Brow Kit", "Volumizing Mascara"},
			CategoryHaircare:  {"Argan Shampoo", "Keratin Conditioner", "Repair Mask", "Curl Cream"},
			CategoryFragrance: {"Citrus Mist", "Noir Eau de Parfum", "Floral Bloom"},
			CategoryBody:      {"Shea Body Butter", "Exfoliating Scrub", "Aloe Body Gel"},
		},
		BasePrices: map[Category]float64{
			CategorySkincare:  45,
			CategoryMakeup:    35,
			CategoryHaircare:  30,
			CategoryFragrance: 75,
			CategoryBody:      25,
		},
		CategoryWeights: map[Brand]Weights{
			"Radiance":   {0.4, 0.3, 0.15, 0.1, 0.05},
			"GlowUp":     {0.3, 0.4, 0.1, 0.1, 0.1},
			"PureBeauty": {0.25, 0.25, 0.3, 0.1, 0.1},
		},
		ChannelWeights:   Weights{0.6, 0.3, 0.1},
		OfferWeights:     Weights{0.7, 0.15, 0.1, 0.05},
		SentimentWeights: Weights{0.7, 0.2, 0.1},
		BaseTraffic: map[MarketingChannel]float64{
			MarketingOrganic: 1200,
			MarketingPaid:    800,
			MarketingSocial:  600,
			MarketingEmail:   400,
		},
	}
}

// Validate checks the catalog for the brands it will be used with.
func (c Config) Validate(brands []Brand) error {
	if len(c.Products) == 0 || len(c.BasePrices) == 0 {
		return core.ErrEmptyCatalog
	}
	known := make(map[Category]bool, len(Categories()))
	for _, cat := range Categories() {
		known[cat] = true
	}
	for cat := range c.Products {
		if !known[cat] {
			return fmt.Errorf("%w: %s in products", core.ErrUnknownCategory, cat)
		}
	}
	for cat := range c.BasePrices {
		if !known[cat] {
			return fmt.Errorf("%w: %s in base_prices", core.ErrUnknownCategory, cat)
		}
	}
	for _, cat := range Categories() {
		if len(c.Products[cat]) == 0 {
			return core.NewValidationError("products", "category "+string(cat)+" has no products")
		}
		if c.BasePrices[cat] <= 0 {
			return core.NewValidationError("base_prices", "category "+string(cat)+" has no base price")
		}
	}
	for _, brand := range brands {
		w, ok := c.CategoryWeights[brand]
		if !ok {
			return core.ErrMissingWeights
		}
		if len(w) != len(Categories()) {
			return core.NewValidationError("category_weights", "brand "+string(brand)+" has wrong vector length")
		}
		if !w.Valid() {
			return core.NewWeightError(string(brand), w.Sum())
		}
	}
	if !c.ChannelWeights.Valid() || len(c.ChannelWeights) != len(SalesChannels()) {
		return core.NewValidationError("channel_weights", "must sum to 1 with one entry per sales channel")
	}
	if !c.OfferWeights.Valid() || len(c.OfferWeights) != len(Offers()) {
		return core.NewValidationError("offer_weights", "must sum to 1 with one entry per offer")
	}
	if !c.SentimentWeights.Valid() || len(c.SentimentWeights) != len(Sentiments()) {
		return core.NewValidationError("sentiment_weights", "must sum to 1 with one entry per sentiment")
	}
	for _, ch := range MarketingChannels() {
		if c.BaseTraffic[ch] <= 0 {
			return core.NewValidationError("base_traffic", "channel "+string(ch)+" has no baseline")
		}
	}
	return nil
}
