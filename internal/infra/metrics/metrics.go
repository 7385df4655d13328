// Package metrics exposes the Prometheus collectors of the search service.
package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	"achaperto/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	mapsmetrics "googlemaps.github.io/maps/metrics"
)

var (
	ResolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "achaperto_resolutions_total",
		Help: "Total search resolutions by outcome",
	}, []string{"outcome"})
	ResolutionDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "achaperto_resolution_duration_ms",
		Help:    "Search resolution duration in milliseconds",
		Buckets: []float64{50, 100, 200, 500, 1000, 2000, 5000, 10000},
	}, []string{"outcome"})
	ProviderRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "achaperto_provider_requests_total",
		Help: "Total external provider calls by api and result",
	}, []string{"api", "result"})
	ProviderDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "achaperto_provider_duration_ms",
		Help:    "External provider call duration in milliseconds",
		Buckets: []float64{10, 20, 50, 100, 200, 500, 1000, 2000, 5000},
	}, []string{"api"})
	CountryGateRejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "achaperto_country_gate_rejections_total",
		Help: "Requests rejected by the country gate",
	}, []string{"country"})
)

func init() {
	prometheus.MustRegister(ResolutionsTotal)
	prometheus.MustRegister(ResolutionDurationMs)
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderDurationMs)
	prometheus.MustRegister(CountryGateRejectionsTotal)
}

// Handler serves the registered collectors.
func Handler() http.Handler { return promhttp.Handler() }

// Results recorded by ObserveProvider.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ObserveProvider records one provider call.
func ObserveProvider(api string, elapsed time.Duration, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	ProviderRequestsTotal.WithLabelValues(api, result).Inc()
	ProviderDurationMs.WithLabelValues(api).Observe(float64(elapsed.Milliseconds()))
}

type searchObserver struct{}

// NewSearchObserver returns the Prometheus-backed SearchObserver.
func NewSearchObserver() service.SearchObserver {
	return searchObserver{}
}

func (searchObserver) ObserveResolution(outcome string, elapsed time.Duration) {
	ResolutionsTotal.WithLabelValues(outcome).Inc()
	ResolutionDurationMs.WithLabelValues(outcome).Observe(float64(elapsed.Milliseconds()))
}

var errHTTPStatus = errors.New("provider returned an error status")

// MapsReporter feeds Google Maps client calls into ProviderRequestsTotal.
type MapsReporter struct{}

// NewRequest implements the maps client metrics.Reporter.
func (MapsReporter) NewRequest(name string) mapsmetrics.Request {
	return &mapsRequest{api: mapsAPIName(name), started: time.Now()}
}

type mapsRequest struct {
	api     string
	started time.Time
}

func (r *mapsRequest) EndRequest(_ context.Context, err error, httpResp *http.Response, _ string) {
	if err == nil && httpResp != nil && httpResp.StatusCode >= http.StatusBadRequest {
		err = errHTTPStatus
	}
	ObserveProvider(r.api, time.Since(r.started), err)
}

// mapsAPIName turns "/maps/api/place/nearbysearch/json" into "maps_place_nearbysearch".
func mapsAPIName(path string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "/maps/api/"), "/json")
	if trimmed == "" {
		return "maps"
	}

	return "maps_" + strings.ReplaceAll(trimmed, "/", "_")
}
