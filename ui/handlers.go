package ui

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"beautydash/domain/catalog"
	"beautydash/domain/core"
	"beautydash/domain/metrics"
	"beautydash/internal/analysis"
	apperrors "beautydash/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps domain and application errors onto an HTTP status and a
// coded JSON body.
func respondError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": apperrors.CodeNotFound})
	case core.IsInputError(err) || core.IsCatalogError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": apperrors.CodeInvalidInput})
	default:
		status := http.StatusInternalServerError
		code := apperrors.GetCode(err)
		switch code {
		case apperrors.CodeInvalidInput, apperrors.CodeConfigInvalid:
			status = http.StatusBadRequest
		case apperrors.CodeNotFound:
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error(), "code": code})
	}
}

// parseFilter builds an analysis filter from query parameters:
// brands and campaigns are comma-separated lists, from/to are YYYY-MM-DD.
func parseFilter(c *gin.Context) (analysis.Filter, error) {
	var f analysis.Filter

	if raw := c.Query("brands"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(b); trimmed != "" {
				f.Brands = append(f.Brands, catalog.Brand(trimmed))
			}
		}
	}
	if raw := c.Query("campaigns"); raw != "" {
		for _, cp := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(cp); trimmed != "" {
				f.Campaigns = append(f.Campaigns, catalog.Campaign(trimmed))
			}
		}
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, err
		}
		day := core.NewDay(t)
		f.From = &day
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, err
		}
		day := core.NewDay(t)
		f.To = &day
	}
	return f, nil
}

// view resolves the dataset and applies the request's filter. On failure it
// writes the error response and returns false.
func (s *Server) view(c *gin.Context) (analysis.View, *rand.Rand, bool) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, apperrors.InvalidInput("invalid filter: "+err.Error()))
		return analysis.View{}, nil, false
	}
	ds, err := s.dataset()
	if err != nil {
		respondError(c, err)
		return analysis.View{}, nil, false
	}
	if err := checkBrands(ds, filter.Brands); err != nil {
		respondError(c, err)
		return analysis.View{}, nil, false
	}
	// Simulated dashboard metrics draw from the dataset's own seed so a
	// seeded server renders reproducibly.
	return filter.Apply(ds), rand.New(rand.NewSource(ds.Seed)), true
}

// checkBrands rejects filters naming brands the dataset was not generated for
func checkBrands(ds *metrics.Dataset, brands []catalog.Brand) error {
	for _, b := range brands {
		found := false
		for _, known := range ds.Brands {
			if known == b {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w %q", core.ErrBrandNotFound, b)
		}
	}
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	ds, err := s.dataset()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  err.Error(),
			"code":   apperrors.GetCode(err),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"dataset_id": ds.ID,
		"start_date": ds.StartDate,
		"days":       ds.Days,
		"brands":     ds.Brands,
		"row_counts": ds.RowCounts(),
	})
}

func (s *Server) handleCampaigns(c *gin.Context) {
	ds, err := s.dataset()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": ds.Campaigns})
}

// handleDataset returns the generation metadata of a cached dataset by ID
func (s *Server) handleDataset(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.InvalidInput(err.Error()))
		return
	}
	ds, err := s.findDataset(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         ds.ID,
		"start_date": ds.StartDate,
		"days":       ds.Days,
		"brands":     ds.Brands,
		"seed":       ds.Seed,
		"created_at": ds.CreatedAt,
		"row_counts": ds.RowCounts(),
	})
}

func (s *Server) handleSummary(c *gin.Context) {
	v, rng, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analysis.ComputeSummary(v, rng))
}

func (s *Server) handleSales(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": v.Sales, "count": len(v.Sales)})
}

func (s *Server) handleMarketing(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": v.Marketing, "count": len(v.Marketing)})
}

func (s *Server) handleSocial(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": v.Social, "count": len(v.Social)})
}

func (s *Server) handleReviews(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": v.Reviews, "count": len(v.Reviews)})
}

func (s *Server) handleRevenueByCategory(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": analysis.RevenueByCategory(v)})
}

func (s *Server) handleRevenueByChannel(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": analysis.RevenueByChannel(v)})
}

func (s *Server) handleRevenueByDate(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": analysis.RevenueByDate(v)})
}

func (s *Server) handleRevenueByOffer(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": analysis.RevenueByOffer(v)})
}

func (s *Server) handleTopProducts(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, apperrors.InvalidInput("limit must be a positive integer"))
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"products": analysis.TopProducts(v, limit)})
}

func (s *Server) handleCampaignTraffic(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": analysis.TrafficByCampaign(v)})
}

func (s *Server) handleEmailCampaigns(c *gin.Context) {
	v, rng, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": analysis.EmailCampaigns(v, rng)})
}

func (s *Server) handleCustomerTrends(c *gin.Context) {
	v, rng, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": analysis.CustomerTrends(v, rng)})
}

func (s *Server) handleSentiment(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": analysis.SentimentCounts(v)})
}

func (s *Server) handleSocialSummary(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": analysis.SocialSummary(v)})
}

func (s *Server) handleRevenueDistribution(c *gin.Context) {
	v, _, ok := s.view(c)
	if !ok {
		return
	}
	markers, err := analysis.RevenueDistribution(v)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": apperrors.CodeInvalidInput})
		return
	}
	c.JSON(http.StatusOK, markers)
}

// handleRegenerate drops the cached dataset. With an unseeded config the
// next request synthesizes fresh data; with a fixed seed it reproduces the
// same tables.
func (s *Server) handleRegenerate(c *gin.Context) {
	s.invalidate()
	c.JSON(http.StatusOK, gin.H{"status": "regenerating on next request"})
}
