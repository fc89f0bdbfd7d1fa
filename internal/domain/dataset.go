package domain

import "time"

// Observation é uma linha do dataset: um ponto (país, indicador, ano)
type Observation struct {
	Country        string   `json:"country"`
	IndicatorCode  string   `json:"indicator_code"`
	IndicatorLabel string   `json:"indicator_label"`
	Year           *int     `json:"year"`  // nil quando o ano da API não é numérico
	Value          *float64 `json:"value"` // nil quando a API não tem valor para o ano
}

// SourceSummary resume o resultado de uma busca (país x indicador)
type SourceSummary struct {
	Country       string `json:"country"`
	IndicatorCode string `json:"indicator_code"`
	Records       int    `json:"records"`
}

// Dataset é a tabela completa, ordenada por ano (anos nulos por último).
// Nunca é alterado depois de construído; filtros geram novos slices.
type Dataset struct {
	BuildID      string          `json:"build_id"`
	BuiltAt      time.Time       `json:"built_at"`
	Observations []Observation   `json:"-"`
	Sources      []SourceSummary `json:"sources"`
}

// Len retorna a quantidade de observações
func (d Dataset) Len() int {
	return len(d.Observations)
}

func (d Dataset) IsEmpty() bool {
	return len(d.Observations) == 0
}

// Filter retorna um novo slice com as observações que satisfazem o predicado
func (d Dataset) Filter(keep func(Observation) bool) []Observation {
	result := make([]Observation, 0)
	for _, obs := range d.Observations {
		if keep(obs) {
			result = append(result, obs)
		}
	}
	return result
}

// DatasetSummary é a visão de metadados exposta em /v1/dataset
type DatasetSummary struct {
	BuildID string          `json:"build_id"`
	BuiltAt time.Time       `json:"built_at"`
	Records int             `json:"records"`
	Sources []SourceSummary `json:"sources"`
}

func (d Dataset) Summary() DatasetSummary {
	sources := d.Sources
	if sources == nil {
		sources = []SourceSummary{}
	}
	return DatasetSummary{
		BuildID: d.BuildID,
		BuiltAt: d.BuiltAt,
		Records: d.Len(),
		Sources: sources,
	}
}
