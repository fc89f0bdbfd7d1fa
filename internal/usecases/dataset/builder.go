package dataset

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/indicators-dashboard/infrastructure/integrator/worldbank"
	worldbankdomain "github.com/vfg2006/indicators-dashboard/infrastructure/integrator/worldbank/domain"
	"github.com/vfg2006/indicators-dashboard/internal/domain"
	"github.com/vfg2006/indicators-dashboard/pkg/utils"
)

// Builder monta o dataset a partir do produto indicadores x países
type Builder struct {
	fetcher worldbank.WorldBankIntegrator
	now     func() time.Time
	newID   func() (string, error)
}

func NewBuilder(fetcher worldbank.WorldBankIntegrator) *Builder {
	return &Builder{
		fetcher: fetcher,
		now:     time.Now,
		newID:   utils.GenerateID,
	}
}

// Build busca cada par (indicador, país) em sequência, indicador por fora e país
// por dentro. Pares sem dados são ignorados; se todos vierem vazios o dataset
// também é vazio.
func (b *Builder) Build(ctx context.Context, catalog *domain.Catalog) domain.Dataset {
	startedAt := b.now()

	observations := make([]domain.Observation, 0)
	sources := make([]domain.SourceSummary, 0)

	for _, indicator := range catalog.Indicators() {
		for _, country := range catalog.CountryCodes() {
			fetched := b.fetcher.FetchObservations(ctx, country, indicator.Code)

			sources = append(sources, domain.SourceSummary{
				Country:       country,
				IndicatorCode: indicator.Code,
				Records:       len(fetched),
			})

			if len(fetched) == 0 {
				logrus.WithFields(logrus.Fields{
					"country":   country,
					"indicator": indicator.Code,
				}).Warn("dataset: nenhum dado retornado para o par")
				continue
			}

			observations = append(observations, toObservations(fetched, indicator.Label)...)
		}
	}

	buildID, err := b.newID()
	if err != nil {
		logrus.WithError(err).Warn("dataset: erro ao gerar ID do build")
	}

	dataset := domain.Dataset{
		BuildID:      buildID,
		BuiltAt:      b.now(),
		Observations: SortByYear(observations),
		Sources:      sources,
	}

	logrus.WithFields(logrus.Fields{
		"build_id": dataset.BuildID,
		"records":  dataset.Len(),
		"duration": time.Since(startedAt).String(),
	}).Info("dataset: construção concluída")

	return dataset
}

func toObservations(fetched []worldbankdomain.Observation, label string) []domain.Observation {
	result := make([]domain.Observation, 0, len(fetched))
	for _, obs := range fetched {
		result = append(result, domain.Observation{
			Country:        obs.Country,
			IndicatorCode:  obs.IndicatorCode,
			IndicatorLabel: label,
			Year:           ParseYear(obs.Date),
			Value:          obs.Value,
		})
	}
	return result
}

// ParseYear converte o ano para inteiro; qualquer falha vira nil
func ParseYear(raw string) *int {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &year
}

// SortByYear retorna um novo slice ordenado por ano crescente. Anos nulos vão
// para o final e empates mantêm a ordem de chegada.
func SortByYear(observations []domain.Observation) []domain.Observation {
	sorted := make([]domain.Observation, len(observations))
	copy(sorted, observations)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Year, sorted[j].Year
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return sorted
}
