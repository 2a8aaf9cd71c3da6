package analysis

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"beautydash/domain/core"
)

// DistributionMarkers describes the shape of a numeric series
type DistributionMarkers struct {
	SampleSize int     `json:"sample_size"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Median     float64 `json:"median"`
	Q25        float64 `json:"q25"`
	Q75        float64 `json:"q75"`
	Skewness   float64 `json:"skewness"`
	Kurtosis   float64 `json:"kurtosis"`
}

// RevenueDistribution profiles the per-sale revenue series of a view
func RevenueDistribution(v View) (DistributionMarkers, error) {
	data := make([]float64, len(v.Sales))
	for i, r := range v.Sales {
		data[i] = r.Revenue
	}
	return analyzeSeries(data)
}

// analyzeSeries computes summary and shape statistics for one series
func analyzeSeries(data []float64) (DistributionMarkers, error) {
	markers := DistributionMarkers{SampleSize: len(data)}
	if len(data) == 0 {
		return markers, core.NewValidationError("series", "no data points")
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return markers, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return markers, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return markers, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return markers, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return markers, err
	}
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return markers, err
	}
	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return markers, err
	}

	markers.Mean = mean
	markers.StdDev = stdDev
	markers.Min = min
	markers.Max = max
	markers.Median = median
	markers.Q25 = q25
	markers.Q75 = q75
	markers.Skewness = stat.Skew(data, nil)
	markers.Kurtosis = stat.ExKurtosis(data, nil)
	return markers, nil
}
