package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/lucas-barreto/foodcheck/internal/http"
)

func TestCORSPreflight(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodOptions, "/companies", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("expected Access-Control-Allow-Origin to be set on preflight")
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("expected Access-Control-Allow-Methods to be set on preflight")
	}
}

func TestCORSActualRequest(t *testing.T) {
	t.Cleanup(clearAllCompanies)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("expected Access-Control-Allow-Origin to be set on the response")
	}
}
