package worldbankdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `[
	{"page":1,"pages":1,"per_page":2000,"total":3,"sourceid":"2","lastupdated":"2025-01-28"},
	[
		{"indicator":{"id":"NY.GDP.PCAP.CD","value":"GDP per capita (current US$)"},"country":{"id":"GH","value":"Ghana"},"countryiso3code":"GHA","date":"2022","value":2203.5,"unit":"","obs_status":"","decimal":1},
		{"indicator":{"id":"NY.GDP.PCAP.CD","value":"GDP per capita (current US$)"},"country":{"id":"GH","value":"Ghana"},"countryiso3code":"GHA","date":"2021","value":null,"unit":"","obs_status":"","decimal":1},
		{"indicator":{"id":"OTHER","value":"x"},"country":{"id":"US","value":"United States"},"countryiso3code":"USA","date":"2020","value":"1500.25","unit":"","obs_status":"","decimal":1}
	]
]`

func TestParseIndicatorPage_RespostaValida(t *testing.T) {
	page, err := ParseIndicatorPage([]byte(samplePage))
	require.NoError(t, err)

	assert.Equal(t, 3, page.Metadata.Total)
	require.Len(t, page.Rows, 3)

	observations := page.Observations("GHA", "NY.GDP.PCAP.CD")
	require.Len(t, observations, 3)

	// País e indicador sempre vêm dos argumentos, nunca do payload
	for _, obs := range observations {
		assert.Equal(t, "GHA", obs.Country)
		assert.Equal(t, "NY.GDP.PCAP.CD", obs.IndicatorCode)
	}

	assert.Equal(t, "2022", observations[0].Date)
	require.NotNil(t, observations[0].Value)
	assert.Equal(t, 2203.5, *observations[0].Value)

	assert.Equal(t, "2021", observations[1].Date)
	assert.Nil(t, observations[1].Value)

	require.NotNil(t, observations[2].Value)
	assert.Equal(t, 1500.25, *observations[2].Value)
}

func TestParseIndicatorPage_FormatosInvalidos(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "Objeto de erro da API em vez de lista",
			body:    `{"message":[{"error":"Invalid value"}]}`,
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "Lista com um elemento",
			body:    `[{"message":[{"id":"120","key":"Invalid value","value":"The provided parameter value is not valid"}]}]`,
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "Lista vazia",
			body:    `[]`,
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "Segundo elemento nulo",
			body:    `[{"page":0,"pages":0,"per_page":50,"total":0}, null]`,
			wantErr: ErrNoDataArray,
		},
		{
			name:    "Segundo elemento não é lista",
			body:    `[{"page":1}, {"date":"2020"}]`,
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "JSON inválido",
			body:    `<html>Service unavailable</html>`,
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "Corpo vazio",
			body:    ``,
			wantErr: ErrUnexpectedShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ParseIndicatorPage([]byte(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, page)
		})
	}
}

func TestParseIndicatorPage_DadosVazios(t *testing.T) {
	page, err := ParseIndicatorPage([]byte(`[{"page":1,"total":0}, []]`))
	require.NoError(t, err)
	assert.Empty(t, page.Observations("USA", "SE.SEC.ENRR"))
}

func TestObservations_DataNumericaOuAusente(t *testing.T) {
	page, err := ParseIndicatorPage([]byte(`[{}, [{"date":1999,"value":1}, {"value":2}, {"date":"  2001 ","value":"abc"}]]`))
	require.NoError(t, err)

	observations := page.Observations("USA", "X")
	require.Len(t, observations, 3)

	assert.Equal(t, "1999", observations[0].Date)
	assert.Equal(t, "", observations[1].Date)
	assert.Equal(t, "2001", observations[2].Date)
	assert.Nil(t, observations[2].Value)
}
