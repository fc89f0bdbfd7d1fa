package worldbankdomain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrUnexpectedShape indica uma resposta que não é o par [metadados, dados]
	ErrUnexpectedShape = errors.New("worldbank: unexpected response shape")
	// ErrNoDataArray indica que o segundo elemento da resposta está ausente ou nulo
	ErrNoDataArray = errors.New("worldbank: response has no data array")
)

// Observation é um ponto retornado pela API já carimbado com país e indicador da requisição
type Observation struct {
	Country       string
	IndicatorCode string
	Date          string   // ano como veio da API, sem conversão
	Value         *float64 // nil quando a API retorna null
}

// PageMetadata é o primeiro elemento da resposta da API
type PageMetadata struct {
	Page        int    `json:"page"`
	Pages       int    `json:"pages"`
	PerPage     int    `json:"per_page"`
	Total       int    `json:"total"`
	LastUpdated string `json:"lastupdated"`
}

// Row é um elemento do array de dados. Data e valor são mantidos crus porque a
// API não é consistente nos tipos (ano como string, valor número ou null).
type Row struct {
	Indicator       Reference           `json:"indicator"`
	Country         Reference           `json:"country"`
	CountryISO3Code string              `json:"countryiso3code"`
	Date            jsoniter.RawMessage `json:"date"`
	Value           jsoniter.RawMessage `json:"value"`
	Unit            string              `json:"unit"`
	ObsStatus       string              `json:"obs_status"`
}

type Reference struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// IndicatorPage é a resposta decodificada: metadados e linhas
type IndicatorPage struct {
	Metadata PageMetadata
	Rows     []Row
}

// ParseIndicatorPage decodifica o corpo da resposta. Qualquer formato diferente de
// um array com ao menos dois elementos, cujo segundo é um array de objetos, é erro.
func ParseIndicatorPage(body []byte) (*IndicatorPage, error) {
	var top []jsoniter.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	if len(top) < 2 {
		return nil, fmt.Errorf("%w: expected 2 elements, got %d", ErrUnexpectedShape, len(top))
	}

	page := &IndicatorPage{}

	// Metadados são informativos; uma falha aqui não invalida os dados
	_ = json.Unmarshal(top[0], &page.Metadata)

	if isNull(top[1]) {
		return nil, ErrNoDataArray
	}

	if err := json.Unmarshal(top[1], &page.Rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	return page, nil
}

// Observations converte as linhas, carimbando país e indicador da requisição
func (p *IndicatorPage) Observations(country, indicatorCode string) []Observation {
	observations := make([]Observation, 0, len(p.Rows))
	for _, row := range p.Rows {
		observations = append(observations, Observation{
			Country:       country,
			IndicatorCode: indicatorCode,
			Date:          rawString(row.Date),
			Value:         rawFloat(row.Value),
		})
	}
	return observations
}

func isNull(raw jsoniter.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// rawString aceita string ou número; qualquer outra coisa vira ""
func rawString(raw jsoniter.RawMessage) string {
	if isNull(raw) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	return ""
}

// rawFloat aceita número ou string numérica; null e o resto viram nil
func rawFloat(raw jsoniter.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			return &parsed
		}
	}

	return nil
}
