// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDuplicateSuppressor_SecondIdenticalRequestRejected(t *testing.T) {
	d := NewDuplicateSuppressor(100)
	calls := 0
	handler := d.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/api/autocomplete?q=bat", nil)
	req1.RemoteAddr = "10.0.0.1:1234"
	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, req1)

	req2 := httptest.NewRequest(http.MethodGet, "/api/autocomplete?q=bat", nil)
	req2.RemoteAddr = "10.0.0.1:1234"
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req2)

	if calls != 1 {
		t.Fatalf("expected handler invoked once, got %d", calls)
	}
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be rejected, got %d", rec2.Code)
	}
}

func TestDuplicateSuppressor_DifferentClientsNotSuppressed(t *testing.T) {
	d := NewDuplicateSuppressor(100)
	calls := 0
	handler := d.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/api/autocomplete?q=bat", nil)
	req1.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req1)

	req2 := httptest.NewRequest(http.MethodGet, "/api/autocomplete?q=bat", nil)
	req2.RemoteAddr = "10.0.0.2:1234"
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req2)

	if calls != 2 {
		t.Fatalf("expected handler invoked for each distinct client, got %d", calls)
	}
	if rec2.Code != http.StatusOK {
		t.Fatalf("expected second client's request to succeed, got %d", rec2.Code)
	}
}

func TestDuplicateSuppressor_DifferentQueriesNotSuppressed(t *testing.T) {
	d := NewDuplicateSuppressor(100)
	calls := 0
	handler := d.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/api/autocomplete?q=bat", nil)
	req1.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req1)

	req2 := httptest.NewRequest(http.MethodGet, "/api/autocomplete?q=batman", nil)
	req2.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req2)

	if calls != 2 {
		t.Fatalf("expected handler invoked for each distinct query, got %d", calls)
	}
}
