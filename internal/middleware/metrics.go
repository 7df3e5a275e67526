package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
)

type MetricsMiddleware struct {
	requestCounter     *metrics.Counter
	responseTimeHist   *metrics.Histogram
	statusCodeCounters map[int]*metrics.Counter
	cacheHitCounter    *metrics.Counter
	cacheMissCounter   *metrics.Counter
	extractionCounter  *metrics.Counter
}

func NewMetricsMiddleware() *MetricsMiddleware {
	m := &MetricsMiddleware{
		requestCounter:     metrics.GetOrCreateCounter("http_requests_total"),
		responseTimeHist:   metrics.GetOrCreateHistogram("http_response_time_seconds"),
		statusCodeCounters: make(map[int]*metrics.Counter),
		cacheHitCounter:    metrics.GetOrCreateCounter("icon_cache_hits_total"),
		cacheMissCounter:   metrics.GetOrCreateCounter("icon_cache_misses_total"),
		extractionCounter:  metrics.GetOrCreateCounter("icon_extractions_total"),
	}

	// Initialize status code counters for common codes
	for _, code := range []int{200, 202, 204, 400, 404, 429, 500} {
		m.statusCodeCounters[code] = metrics.GetOrCreateCounter(
			"http_response_status_total{code=\"" + strconv.Itoa(code) + "\"}",
		)
	}

	return m
}

func (m *MetricsMiddleware) WithMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		m.requestCounter.Inc()
		c.Next()

		m.responseTimeHist.Update(time.Since(start).Seconds())
		if counter, exists := m.statusCodeCounters[c.Writer.Status()]; exists {
			counter.Inc()
		}
	}
}

// RecordCacheHit and RecordCacheMiss are called by the icon handlers so
// hit ratio is observable without threading the cache through here.
func (m *MetricsMiddleware) RecordCacheHit()  { m.cacheHitCounter.Inc() }
func (m *MetricsMiddleware) RecordCacheMiss() { m.cacheMissCounter.Inc() }

// RecordExtraction counts full pipeline runs.
func (m *MetricsMiddleware) RecordExtraction() { m.extractionCounter.Inc() }

// Handler exposes the metrics in Prometheus text format.
func (m *MetricsMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Status(http.StatusOK)
		metrics.WritePrometheus(c.Writer, true)
	}
}
