package dataset

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	worldbankdomain "github.com/vfg2006/indicators-dashboard/infrastructure/integrator/worldbank/domain"
	"github.com/vfg2006/indicators-dashboard/infrastructure/integrator/worldbank/mocks"
	"github.com/vfg2006/indicators-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog(
		[]domain.Country{{Code: "GHA", Name: "Ghana"}, {Code: "USA", Name: "USA"}},
		[]domain.IndicatorSpec{{Label: "Anemia", Code: "A.CODE"}, {Label: "GDP", Code: "G.CODE"}},
		map[string]string{"Anemia": "sobre anemia", "GDP": "sobre PIB"},
	)
	require.NoError(t, err)
	return catalog
}

func wbObs(country, code, date string, value *float64) worldbankdomain.Observation {
	return worldbankdomain.Observation{Country: country, IndicatorCode: code, Date: date, Value: value}
}

func newTestBuilder(fetcher *mocks.MockWorldBankIntegrator) *Builder {
	builder := NewBuilder(fetcher)
	builder.now = func() time.Time { return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC) }
	builder.newID = func() (string, error) { return "abc123", nil }
	return builder
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockWorldBankIntegrator(ctrl)
	builder := newTestBuilder(mockFetcher)
	ctx := context.Background()

	// Ordem fixa: indicador por fora, país por dentro
	gomock.InOrder(
		mockFetcher.EXPECT().FetchObservations(ctx, "GHA", "A.CODE").Return([]worldbankdomain.Observation{
			wbObs("GHA", "A.CODE", "2001", floatPtr(60)),
			wbObs("GHA", "A.CODE", "2000", floatPtr(65)),
		}),
		mockFetcher.EXPECT().FetchObservations(ctx, "USA", "A.CODE").Return([]worldbankdomain.Observation{}),
		mockFetcher.EXPECT().FetchObservations(ctx, "GHA", "G.CODE").Return([]worldbankdomain.Observation{
			wbObs("GHA", "G.CODE", "n/a", floatPtr(1)),
			wbObs("GHA", "G.CODE", "2000", nil),
		}),
		mockFetcher.EXPECT().FetchObservations(ctx, "USA", "G.CODE").Return([]worldbankdomain.Observation{
			wbObs("USA", "G.CODE", "1999", floatPtr(33000)),
		}),
	)

	dataset := builder.Build(ctx, testCatalog(t))

	assert.Equal(t, "abc123", dataset.BuildID)
	assert.Equal(t, time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC), dataset.BuiltAt)

	// Tamanho = soma dos resultados não vazios
	require.Equal(t, 5, dataset.Len())

	years := make([]*int, 0, dataset.Len())
	for _, obs := range dataset.Observations {
		years = append(years, obs.Year)
	}
	// Ordem crescente, empates na ordem de chegada, ano nulo no fim
	assert.Equal(t, []*int{intPtr(1999), intPtr(2000), intPtr(2000), intPtr(2001), nil}, years)

	assert.Equal(t, "USA", dataset.Observations[0].Country)
	assert.Equal(t, "GDP", dataset.Observations[0].IndicatorLabel)
	assert.Equal(t, "A.CODE", dataset.Observations[1].IndicatorCode) // GHA 2000 anemia veio antes
	assert.Equal(t, "Anemia", dataset.Observations[1].IndicatorLabel)
	assert.Equal(t, "G.CODE", dataset.Observations[2].IndicatorCode)
	assert.Nil(t, dataset.Observations[2].Value)
	assert.Equal(t, "G.CODE", dataset.Observations[4].IndicatorCode)

	assert.Equal(t, []domain.SourceSummary{
		{Country: "GHA", IndicatorCode: "A.CODE", Records: 2},
		{Country: "USA", IndicatorCode: "A.CODE", Records: 0},
		{Country: "GHA", IndicatorCode: "G.CODE", Records: 2},
		{Country: "USA", IndicatorCode: "G.CODE", Records: 1},
	}, dataset.Sources)
}

func TestBuilder_Build_TodosVazios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockWorldBankIntegrator(ctrl)
	mockFetcher.EXPECT().
		FetchObservations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]worldbankdomain.Observation{}).
		Times(4)

	dataset := newTestBuilder(mockFetcher).Build(context.Background(), testCatalog(t))

	assert.True(t, dataset.IsEmpty())
	assert.NotNil(t, dataset.Observations)
	assert.Len(t, dataset.Sources, 4)
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{raw: "2020", want: intPtr(2020)},
		{raw: " 1960 ", want: intPtr(1960)},
		{raw: "", want: nil},
		{raw: "2020Q1", want: nil},
		{raw: "abc", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseYear(tt.raw))
		})
	}
}

func TestSortByYear_NaoAlteraOriginal(t *testing.T) {
	original := []domain.Observation{
		{Country: "GHA", Year: nil},
		{Country: "USA", Year: intPtr(2010)},
		{Country: "GHA", Year: intPtr(2000)},
	}

	sorted := SortByYear(original)

	assert.Equal(t, intPtr(2000), sorted[0].Year)
	assert.Equal(t, intPtr(2010), sorted[1].Year)
	assert.Nil(t, sorted[2].Year)

	// O slice de entrada continua como estava
	assert.Nil(t, original[0].Year)
	assert.Equal(t, "USA", original[1].Country)
}
