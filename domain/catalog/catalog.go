package catalog

// Brand is a configured product line with its own category preferences
type Brand string

// Category is a product category
type Category string

const (
	CategorySkincare  Category = "Skincare"
	CategoryMakeup    Category = "Makeup"
	CategoryHaircare  Category = "Haircare"
	CategoryFragrance Category = "Fragrance"
	CategoryBody      Category = "Body"
)

// SalesChannel is the purchase venue for a sales record
type SalesChannel string

const (
	ChannelOnline    SalesChannel = "Online"
	ChannelInStore   SalesChannel = "In-store"
	ChannelWholesale SalesChannel = "Wholesale"
)

// MarketingChannel is the acquisition source for a marketing record.
// Distinct enumeration from SalesChannel even though both surface as "Channel".
type MarketingChannel string

const (
	MarketingOrganic MarketingChannel = "Organic"
	MarketingPaid    MarketingChannel = "Paid"
	MarketingSocial  MarketingChannel = "Social"
	MarketingEmail   MarketingChannel = "Email"
)

// Platform is a social media platform
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformTikTok    Platform = "TikTok"
	PlatformYouTube   Platform = "YouTube"
)

// Offer is a promotion applied to a sale
type Offer string

const (
	OfferNone   Offer = "None"
	OfferTenOff Offer = "10% Off"
	OfferBOGO   Offer = "Buy 1 Get 1"
	OfferGift   Offer = "Free Gift"
)

// Sentiment classifies a customer review
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// Campaign is a named promotional period. The generator assigns one per
// brand-day rather than over a contiguous date range.
type Campaign string

// DefaultBrands is the three-brand catalog used when the caller does not
// supply one.
func DefaultBrands() []Brand {
	return []Brand{"Radiance", "GlowUp", "PureBeauty"}
}

// Categories returns the fixed category ordering. Weight vectors index into
// this order, so it must stay stable.
func Categories() []Category {
	return []Category{
		CategorySkincare,
		CategoryMakeup,
		CategoryHaircare,
		CategoryFragrance,
		CategoryBody,
	}
}

// Campaigns returns the ordered campaign catalog shared across brands.
func Campaigns() []Campaign {
	return []Campaign{
		"Summer Glow",
		"Holiday Sparkle",
		"Winter Warmth",
		"Spring Fresh",
		"Loyalty Boost",
	}
}

// SalesChannels returns the purchase venues in weight order.
func SalesChannels() []SalesChannel {
	return []SalesChannel{ChannelOnline, ChannelInStore, ChannelWholesale}
}

// MarketingChannels returns the four acquisition sources.
func MarketingChannels() []MarketingChannel {
	return []MarketingChannel{MarketingOrganic, MarketingPaid, MarketingSocial, MarketingEmail}
}

// Platforms returns the tracked social platforms.
func Platforms() []Platform {
	return []Platform{PlatformInstagram, PlatformFacebook, PlatformTikTok, PlatformYouTube}
}

// Offers returns the promotion types in weight order.
func Offers() []Offer {
	return []Offer{OfferNone, OfferTenOff, OfferBOGO, OfferGift}
}

// Sentiments returns review sentiments in weight order.
func Sentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}
}
