package worldbankclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/indicators-dashboard/internal/config"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		WorldBank: config.WorldBank{
			URL:     baseURL,
			PerPage: 2000,
		},
	})
}

func TestGetIndicator_MontaURL(t *testing.T) {
	var gotPath, gotFormat, gotPerPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFormat = r.URL.Query().Get("format")
		gotPerPage = r.URL.Query().Get("per_page")
		w.Write([]byte(`[{"page":1},[]]`))
	}))
	defer server.Close()

	body, err := newTestClient(server.URL+"/v2").GetIndicator(context.Background(), "GHA", "SH.ANM.CHLD.ZS")
	require.NoError(t, err)

	assert.Equal(t, "/v2/country/GHA/indicator/SH.ANM.CHLD.ZS", gotPath)
	assert.Equal(t, "json", gotFormat)
	assert.Equal(t, "2000", gotPerPage)
	assert.Equal(t, `[{"page":1},[]]`, string(body))
}

func TestGetIndicator_StatusDeErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	body, err := newTestClient(server.URL).GetIndicator(context.Background(), "USA", "NY.GDP.PCAP.CD")
	assert.Error(t, err)
	assert.Nil(t, body)
}

func TestGetIndicator_ServidorIndisponivel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).GetIndicator(context.Background(), "USA", "NY.GDP.PCAP.CD")
	assert.Error(t, err)
}

func TestGetIndicator_URLInvalida(t *testing.T) {
	_, err := newTestClient("://sem-esquema").GetIndicator(context.Background(), "USA", "NY.GDP.PCAP.CD")
	assert.Error(t, err)
}
