package worldbankclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/indicators-dashboard/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	GetIndicator(ctx context.Context, country, indicatorCode string) ([]byte, error)
}

type WorldBankClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria o client da API de indicadores. Usa o timeout padrão do http.Client.
func NewClient(cfg *config.Config) Client {
	return &WorldBankClient{
		httpClient: &http.Client{},
		config:     cfg,
	}
}
