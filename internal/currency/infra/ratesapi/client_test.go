package ratesapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Biz-Hub01/pureez/pkg/logger"
	"github.com/shopspring/decimal"
)

func TestLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest/KES" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"KES","rates":{"KES":1,"usd":0.0077,"EUR":0.0071}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/latest/", time.Second, WithLogger(logger.Discard()))
	rates, err := c.Latest(context.Background(), "kes")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if !rates["USD"].Equal(decimal.RequireFromString("0.0077")) {
		t.Fatalf("USD = %s", rates["USD"])
	}
	if len(rates) != 3 {
		t.Fatalf("got %v", rates)
	}
}

func TestLatestRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"rates":{"USD":0.008}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, WithRetry(3, time.Millisecond), WithLogger(logger.Discard()))
	rates, err := c.Latest(context.Background(), "KES")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if calls.Load() != 3 || !rates["USD"].Equal(decimal.RequireFromString("0.008")) {
		t.Fatalf("calls=%d rates=%v", calls.Load(), rates)
	}
}

func TestLatestMalformedIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, WithRetry(3, time.Millisecond), WithLogger(logger.Discard()))
	_, err := c.Latest(context.Background(), "KES")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d", calls.Load())
	}
}

func TestLatestEmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, WithRetry(1, 0), WithLogger(logger.Discard()))
	if _, err := c.Latest(context.Background(), "KES"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
