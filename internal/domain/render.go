package domain

// RenderStatus indica o que a camada de apresentação deve exibir
type RenderStatus string

const (
	RenderStatusChart  RenderStatus = "chart"
	RenderStatusNoData RenderStatus = "no_data"
)

// NoDataMessage é o aviso exibido no lugar do gráfico
const NoDataMessage = "No data available for this indicator."

// RenderResult é NoData ou Chart, nunca os dois
type RenderResult struct {
	Status  RenderStatus `json:"status"`
	Label   string       `json:"label"`
	Message string       `json:"message,omitempty"`
	Chart   *Chart       `json:"chart,omitempty"`
}

func (r RenderResult) IsNoData() bool {
	return r.Status == RenderStatusNoData
}

// Chart descreve um gráfico de linhas: uma série por país, x=ano, y=valor.
// O eixo y vai sempre de YMin (0) até YMax, compartilhado entre as séries.
type Chart struct {
	Title       string        `json:"title"`
	XField      string        `json:"x_field"`
	YField      string        `json:"y_field"`
	XLabel      string        `json:"x_label"`
	YLabel      string        `json:"y_label"`
	YMin        float64       `json:"y_min"`
	YMax        float64       `json:"y_max"`
	Series      []ChartSeries `json:"series"`
	Description string        `json:"description"`
}

type ChartSeries struct {
	Country string       `json:"country"`
	Name    string       `json:"name"`
	Points  []ChartPoint `json:"points"`
}

// ChartPoint com Value nil representa uma lacuna na linha
type ChartPoint struct {
	Year  int      `json:"year"`
	Value *float64 `json:"value"`
}

// Values retorna os valores da série na ordem dos pontos
func (s ChartSeries) Values() []*float64 {
	values := make([]*float64, 0, len(s.Points))
	for _, p := range s.Points {
		values = append(values, p.Value)
	}
	return values
}
