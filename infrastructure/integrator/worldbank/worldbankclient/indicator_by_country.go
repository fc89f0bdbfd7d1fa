package worldbankclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/pkg/errors"
)

// GetIndicator busca a série histórica completa de um indicador para um país.
// Retorna o corpo cru; a interpretação fica com o integrador.
func (c *WorldBankClient) GetIndicator(ctx context.Context, country, indicatorCode string) ([]byte, error) {
	endpoint, err := url.Parse(c.config.WorldBank.URL)
	if err != nil {
		return nil, errors.Wrap(err, "worldbank: erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "country", country, "indicator", indicatorCode)

	query := endpoint.Query()
	query.Set("format", "json")
	query.Set("per_page", strconv.Itoa(c.config.WorldBank.PerPage))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "worldbank: erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "worldbank: erro ao executar a requisição %s", endpoint.String())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("worldbank: requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "worldbank: erro ao ler a resposta")
	}

	return body, nil
}
