package rendering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/indicators-dashboard/internal/domain"
)

const (
	xField = "year"
	yField = "value"
	xLabel = "Year"
)

// Render é uma função pura de (dataset, rótulo selecionado). Sem linhas para o
// rótulo, ou sem nenhum valor não nulo, o resultado é NoData.
func Render(dataset domain.Dataset, catalog *domain.Catalog, label string) domain.RenderResult {
	countries := catalog.Countries()

	// Uma sub-visão por país, depois recombinadas
	views := make([][]domain.Observation, 0, len(countries))
	combined := make([]domain.Observation, 0)
	for _, country := range countries {
		code := country.Code
		view := dataset.Filter(func(obs domain.Observation) bool {
			return obs.IndicatorLabel == label && obs.Country == code
		})
		views = append(views, view)
		combined = append(combined, view...)
	}

	if len(combined) == 0 {
		return noData(label)
	}

	yMax, ok := maxValue(combined)
	if !ok {
		return noData(label)
	}

	description, ok := catalog.Description(label)
	if !ok {
		// O catálogo é validado na construção; chegar aqui é erro de configuração
		panic(fmt.Sprintf("rendering: no description configured for indicator %q", label))
	}

	names := make([]string, 0, len(countries))
	series := make([]domain.ChartSeries, 0, len(countries))
	for i, country := range countries {
		names = append(names, country.Name)
		if len(views[i]) == 0 {
			continue
		}
		series = append(series, domain.ChartSeries{
			Country: country.Code,
			Name:    country.Name,
			Points:  toPoints(views[i]),
		})
	}

	return domain.RenderResult{
		Status: domain.RenderStatusChart,
		Label:  label,
		Chart: &domain.Chart{
			Title:       fmt.Sprintf("%s: %s", label, strings.Join(names, " vs ")),
			XField:      xField,
			YField:      yField,
			XLabel:      xLabel,
			YLabel:      label,
			YMin:        0,
			YMax:        yMax,
			Series:      series,
			Description: description,
		},
	}
}

func noData(label string) domain.RenderResult {
	return domain.RenderResult{
		Status:  domain.RenderStatusNoData,
		Label:   label,
		Message: domain.NoDataMessage,
	}
}

// maxValue ignora valores nulos; ok=false quando todos são nulos
func maxValue(observations []domain.Observation) (float64, bool) {
	var max float64
	found := false
	for _, obs := range observations {
		if obs.Value == nil {
			continue
		}
		if !found || *obs.Value > max {
			max = *obs.Value
			found = true
		}
	}
	return max, found
}

// toPoints ordena por ano; linhas sem ano não têm posição no eixo x e ficam de fora
func toPoints(observations []domain.Observation) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0, len(observations))
	for _, obs := range observations {
		if obs.Year == nil {
			continue
		}
		points = append(points, domain.ChartPoint{
			Year:  *obs.Year,
			Value: obs.Value,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	})

	return points
}
