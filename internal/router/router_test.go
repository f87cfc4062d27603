package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Valentin1965/VoltStore/internal/auth"
	"github.com/Valentin1965/VoltStore/internal/catalog"
	"github.com/Valentin1965/VoltStore/internal/kit"
	"github.com/Valentin1965/VoltStore/internal/rates"

	"github.com/gin-gonic/gin"
)

type staticLLM struct{ payload string }

func (s *staticLLM) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return s.payload, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	llmClient := &staticLLM{payload: `{"DKK": 7.46, "NOK": 11.38, "SEK": 11.23, "USD": 1.08}`}

	catalogService := catalog.NewService(catalog.NewInMemoryRepository())
	ratesCache := rates.NewCache(rates.NewQuoteProvider(llmClient), rates.NewMemoryStore())
	kitService := kit.NewService(kit.NewAIClient(llmClient), catalogService)
	authService := auth.NewService(auth.NewInMemoryAdminRepository())

	return NewRouter(Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(catalogService, nil),
		Kit:     kit.NewHandler(kitService, ratesCache, catalogService),
		Rates:   rates.NewHandler(ratesCache),
	})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPublicRoutesReachable(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/products", "/rates"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/rates/refresh", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
