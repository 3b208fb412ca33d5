package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/ucs/{slug}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, slug := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ucs/"+slug, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/ucs/{slug}", "404")))
}

func TestObservers(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveChat(ChatRelayed)
	m.ObserveChat(ChatRelayed)
	m.ObserveSubmission(SubmissionRejected)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.chat.WithLabelValues(ChatRelayed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues(SubmissionRejected)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveChat(ChatFailed)
	m.ObserveSubmission(SubmissionFailed)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
