package diagnostics_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go-bonus/internal/diagnostics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	LookupHostFn func(ctx context.Context, host string) ([]string, error)
}

func (f *fakeResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	return f.LookupHostFn(ctx, host)
}

func setupRouter(resolver diagnostics.Resolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	diagnostics.RegisterRoutes(r, diagnostics.NewHandler(resolver, "db.internal"))
	return r
}

func TestHealth(t *testing.T) {
	r := setupRouter(&fakeResolver{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}

func TestTestDNS(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		r := setupRouter(&fakeResolver{
			LookupHostFn: func(ctx context.Context, host string) ([]string, error) {
				assert.Equal(t, "db.internal", host)
				return []string{"10.0.0.5"}, nil
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test-dns", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"host":"db.internal","addresses":["10.0.0.5"]}`, w.Body.String())
	})

	t.Run("lookup failure", func(t *testing.T) {
		r := setupRouter(&fakeResolver{
			LookupHostFn: func(ctx context.Context, host string) ([]string, error) {
				return nil, errors.New("no such host")
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test-dns", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "no such host", body["error"])
	})
}

func TestDNSResolver_LookupHost(t *testing.T) {
	resolver := diagnostics.NewDNSResolver(filepath.Join(t.TempDir(), "missing.conf"))

	t.Run("ip literal", func(t *testing.T) {
		addrs, err := resolver.LookupHost(context.Background(), "127.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"127.0.0.1"}, addrs)
	})

	t.Run("empty host", func(t *testing.T) {
		_, err := resolver.LookupHost(context.Background(), "  ")
		assert.Error(t, err)
	})

	t.Run("localhost via system resolver", func(t *testing.T) {
		if _, err := os.Stat("/etc/hosts"); err != nil {
			t.Skip("no hosts file")
		}
		addrs, err := resolver.LookupHost(context.Background(), "localhost")
		assert.NoError(t, err)
		assert.NotEmpty(t, addrs)
	})
}
