package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Chat proxy outcomes.
const (
	ChatRelayed       = "relayed"
	ChatUpstreamError = "upstream_error"
	ChatUnexpected    = "unexpected_content"
	ChatFailed        = "failed"
	ChatTooLarge      = "too_large"
)

// Form submission results.
const (
	SubmissionStored   = "stored"
	SubmissionRejected = "rejected"
	SubmissionFailed   = "failed"
)

// Metrics groups the counters exported on /metrics. A nil *Metrics is a no-op.
type Metrics struct {
	requests    *prometheus.CounterVec
	chat        *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infoloom",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		chat: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infoloom",
			Subsystem: "chat",
			Name:      "proxy_total",
			Help:      "Chat proxy calls by outcome.",
		}, []string{"outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infoloom",
			Subsystem: "forms",
			Name:      "submissions_total",
			Help:      "Form submissions by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.requests, m.chat, m.submissions)
	return m
}

// ObserveChat counts one chat proxy call.
func (m *Metrics) ObserveChat(outcome string) {
	if m == nil {
		return
	}
	m.chat.WithLabelValues(outcome).Inc()
}

// ObserveSubmission counts one form submission.
func (m *Metrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result).Inc()
}

// Middleware counts requests by chi route pattern so path parameters do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}
