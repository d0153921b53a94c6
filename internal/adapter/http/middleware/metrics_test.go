package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()
	httpRequestsInFlight.Set(0)

	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliations", nil)
	rr := httptest.NewRecorder()

	Metrics(next).ServeHTTP(rr, req)

	if !handlerCalled {
		t.Fatal("next handler was not invoked")
	}

	if got := testutil.ToFloat64(httpRequestsInFlight); got != 0 {
		t.Fatalf("expected in-flight gauge to return to 0, got %v", got)
	}

	counter := httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/reconciliations", strconv.Itoa(http.StatusCreated))
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("expected request counter to be 1, got %v", got)
	}
}

func TestMetricsMiddlewareDefaultsToOK(t *testing.T) {
	httpRequestsTotal.Reset()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	Metrics(next).ServeHTTP(rr, req)

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("expected request counter to be 1, got %v", got)
	}
}
