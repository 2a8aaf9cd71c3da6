package ui

import (
	"fmt"
	"log"
	"sync"

	"beautydash/domain/core"
	"beautydash/domain/metrics"
	apperrors "beautydash/internal/errors"
	"beautydash/internal/synth"

	"github.com/gin-gonic/gin"
)

// Server is the dashboard JSON API. It owns a generated dataset per distinct
// generation input; because the generator is randomized, a cached dataset is
// returned for repeat requests with identical parameters rather than
// re-executing the synthesis.
type Server struct {
	router *gin.Engine
	cfg    synth.Config

	cacheMutex sync.RWMutex
	datasets   map[string]*metrics.Dataset
}

// NewServer builds the API server around a validated generator config
func NewServer(cfg synth.Config, ginMode string) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ginMode != "" {
		gin.SetMode(ginMode)
	}

	s := &Server{
		router:   gin.Default(),
		cfg:      cfg,
		datasets: make(map[string]*metrics.Dataset),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/campaigns", s.handleCampaigns)
	api.GET("/datasets/:id", s.handleDataset)
	api.GET("/summary", s.handleSummary)

	api.GET("/sales", s.handleSales)
	api.GET("/marketing", s.handleMarketing)
	api.GET("/social", s.handleSocial)
	api.GET("/reviews", s.handleReviews)

	rollups := api.Group("/rollups")
	rollups.GET("/revenue-by-category", s.handleRevenueByCategory)
	rollups.GET("/revenue-by-channel", s.handleRevenueByChannel)
	rollups.GET("/revenue-by-date", s.handleRevenueByDate)
	rollups.GET("/revenue-by-offer", s.handleRevenueByOffer)
	rollups.GET("/top-products", s.handleTopProducts)
	rollups.GET("/customer-trends", s.handleCustomerTrends)
	rollups.GET("/campaign-traffic", s.handleCampaignTraffic)
	rollups.GET("/email-campaigns", s.handleEmailCampaigns)
	rollups.GET("/sentiment", s.handleSentiment)
	rollups.GET("/social-summary", s.handleSocialSummary)

	api.GET("/distribution/revenue", s.handleRevenueDistribution)
	api.POST("/regenerate", s.handleRegenerate)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting beautydash API on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// cacheKey identifies one generation input
func (s *Server) cacheKey() string {
	return fmt.Sprintf("%s|%d|%v|%d", s.cfg.StartDate.UTC().Format("2006-01-02"), s.cfg.Days, s.cfg.Brands, s.cfg.Seed)
}

// dataset returns the cached dataset for the configured inputs, generating
// it on first use
func (s *Server) dataset() (*metrics.Dataset, error) {
	key := s.cacheKey()

	s.cacheMutex.RLock()
	ds, ok := s.datasets[key]
	s.cacheMutex.RUnlock()
	if ok {
		return ds, nil
	}

	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()
	if ds, ok := s.datasets[key]; ok {
		return ds, nil
	}

	gen, err := synth.New(s.cfg)
	if err != nil {
		return nil, err
	}
	ds, err = gen.Generate()
	if err != nil {
		return nil, apperrors.Wrapf(err, "dataset generation failed for %s", key)
	}
	s.datasets[key] = ds
	return ds, nil
}

// findDataset looks a generated dataset up by ID across the cache
func (s *Server) findDataset(id core.DatasetID) (*metrics.Dataset, error) {
	s.cacheMutex.RLock()
	defer s.cacheMutex.RUnlock()
	for _, ds := range s.datasets {
		if ds.ID == id {
			return ds, nil
		}
	}
	return nil, fmt.Errorf("%w %s", core.ErrDatasetNotFound, id)
}

// invalidate drops the cached dataset so the next request resynthesizes
func (s *Server) invalidate() {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()
	delete(s.datasets, s.cacheKey())
}
