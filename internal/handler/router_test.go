package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-toolkit/internal/config"
)

func testContainer() *config.Container {
	return &config.Container{
		Config:      config.NewConfig(),
		Logger:      NewMockHandlerLogger(),
		Engine:      &MockEngine{},
		Converter:   &MockConverter{},
		RecentStore: &MockRecentStore{},
	}
}

func TestNewRouter_Health(t *testing.T) {
	router := NewRouter(testContainer())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_DocumentRoutes(t *testing.T) {
	router := NewRouter(testContainer())

	// Every transformation route accepts POST with a JSON body.
	routes := []string{
		"/api/v1/documents/merge",
		"/api/v1/documents/split",
		"/api/v1/documents/extract",
		"/api/v1/documents/remove",
		"/api/v1/documents/rotate",
		"/api/v1/documents/watermark",
		"/api/v1/documents/annotate",
		"/api/v1/documents/encrypt",
		"/api/v1/documents/decrypt",
		"/api/v1/documents/compress",
		"/api/v1/documents/export-images",
		"/api/v1/documents/convert",
	}

	for _, route := range routes {
		req := httptest.NewRequest(http.MethodPost, route, strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code == http.StatusNotFound || rr.Code == http.StatusMethodNotAllowed {
			t.Fatalf("route %s not wired: status %d", route, rr.Code)
		}
	}
}

func TestNewRouter_RecentRoutes(t *testing.T) {
	container := testContainer()
	router := NewRouter(container)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recent", strings.NewReader(`{"path":"/tmp/a.pdf"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("recent add: expected 200, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/recent", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("recent list: expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "/tmp/a.pdf") {
		t.Fatalf("expected recorded path in response, got %s", rr.Body.String())
	}
}
