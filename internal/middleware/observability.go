package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-accounts/internal/jsonapi"
)

// RequestID sets X-Request-ID header, uuid is generated when client didn't send one
func RequestID() echo.MiddlewareFunc {
	return echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLogger logs every processed request
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			logrus.WithFields(logrus.Fields{
				"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":    req.Method,
				"uri":       req.RequestURI,
				"status":    c.Response().Status,
				"latency":   time.Since(start).String(),
				"remoteIp":  c.RealIP(),
			}).Info("request processed")

			return nil
		}
	}
}

// RateLimit limits number of requests per client ip within window
func RateLimit(requests int, window time.Duration) echo.MiddlewareFunc {
	return echo.WrapMiddleware(httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	))
}

func rateLimitExceeded(w http.ResponseWriter, _ *http.Request) {
	doc := jsonapi.Errors(jsonapi.NewError(http.StatusTooManyRequests, "rate limit exceeded, retry later"))
	b, err := json.Marshal(doc)
	if err != nil {
		logrus.Errorf("failed to encode rate limit response - %v", err)
		w.WriteHeader(http.StatusTooManyRequests)
		return
	}

	w.Header().Set(echo.HeaderContentType, jsonapi.MediaType)
	w.WriteHeader(http.StatusTooManyRequests)
	if _, err := w.Write(b); err != nil {
		logrus.Errorf("failed to write rate limit response - %v", err)
	}
}

// Metrics collects prometheus metrics of http requests
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers http metrics in separate registry
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "customer_accounts",
			Name:      "http_requests_total",
			Help:      "Number of processed http requests",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "customer_accounts",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of http requests processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, collector := range []prometheus.Collector{m.requests, m.duration} {
		if err := m.registry.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware observes requests, route is used instead of path to keep labels cardinality low
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			m.requests.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler exposes collected metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
