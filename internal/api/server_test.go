package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/indicators-dashboard/infrastructure/charting"
	"github.com/vfg2006/indicators-dashboard/internal/config"
	"github.com/vfg2006/indicators-dashboard/internal/domain"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/indicators-dashboard/pkg/middleware"
)

type emptyDatasets struct {
	catalog *domain.Catalog
}

func (e *emptyDatasets) Refresh(context.Context) domain.Dataset { return domain.Dataset{} }
func (e *emptyDatasets) Current() domain.Dataset                { return domain.Dataset{} }
func (e *emptyDatasets) Catalog() *domain.Catalog               { return e.catalog }

type idleRefresher struct{}

func (idleRefresher) TriggerManualSync(context.Context) bool { return true }
func (idleRefresher) GetStatus() map[string]any              { return map[string]any{} }

func TestServer_Handler(t *testing.T) {
	catalog, err := config.LoadCatalog()
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.Server{
			Host:               "localhost",
			Port:               "0",
			CorsAllowedOrigins: []string{"http://localhost:3000"},
		},
	}

	datasets := &emptyDatasets{catalog: catalog}
	srv, err := New(cfg, datasets, rendering.NewService(datasets), charting.NewPNGRenderer(), idleRefresher{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/render?indicator=GDP+per+Capita+%28USD%29", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	// Dataset vazio: todo indicador é NoData
	assert.Contains(t, rec.Body.String(), `"status":"no_data"`)
	assert.Contains(t, rec.Body.String(), domain.NoDataMessage)
}
