package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "miriam_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "path", "status"},
	)

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miriam_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	DocumentsUploaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miriam_documents_uploaded_total",
			Help: "Total documents uploaded",
		},
		[]string{"document_type"},
	)

	TranslationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "miriam_translations_total",
			Help: "Total translation requests recorded",
		},
	)

	ChatExchanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miriam_chat_exchanges_total",
			Help: "Total chat exchanges with the assistant",
		},
		[]string{"status"},
	)

	LanguageDetections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miriam_language_detections_total",
			Help: "Total language detections by detected code",
		},
		[]string{"language"},
	)

	LLMTokensUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miriam_llm_tokens_used_total",
			Help: "Total LLM tokens used",
		},
		[]string{"model", "type"},
	)

	KnowledgeSearches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "miriam_knowledge_searches_total",
			Help: "Total legal knowledge searches",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(RequestTotal)
	prometheus.MustRegister(DocumentsUploaded)
	prometheus.MustRegister(TranslationsTotal)
	prometheus.MustRegister(ChatExchanges)
	prometheus.MustRegister(LanguageDetections)
	prometheus.MustRegister(LLMTokensUsed)
	prometheus.MustRegister(KnowledgeSearches)
}

// Middleware records per-request counters and latency histograms.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path

		RequestTotal.WithLabelValues(c.Method(), path, status).Inc()
		RequestDuration.WithLabelValues(c.Method(), path, status).Observe(time.Since(start).Seconds())

		return err
	}
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
