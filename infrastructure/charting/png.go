package charting

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/indicators-dashboard/internal/domain"
	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	defaultWidth  = 960
	defaultHeight = 480
)

var ErrEmptyChart = errors.New("chart has no plottable points")

type ImageRenderer interface {
	RenderPNG(c *domain.Chart, w io.Writer) error
}

type PNGRenderer struct {
	Width  int
	Height int
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{
		Width:  defaultWidth,
		Height: defaultHeight,
	}
}

// RenderPNG desenha uma linha por país. Valores nulos quebram a linha em
// segmentos, então cada país pode virar mais de uma série no go-chart.
func (r *PNGRenderer) RenderPNG(c *domain.Chart, w io.Writer) error {
	if c == nil {
		return ErrEmptyChart
	}

	series := make([]chart.Series, 0, len(c.Series))
	legend := make([]chart.Series, 0, len(c.Series))
	minYear, maxYear, found := yearBounds(c.Series)
	if !found {
		return ErrEmptyChart
	}

	for i, s := range c.Series {
		style := chart.Style{
			StrokeColor: chart.GetDefaultColor(i),
			StrokeWidth: 2,
			DotColor:    chart.GetDefaultColor(i),
			DotWidth:    2,
		}

		for j, seg := range Segments(s.Points) {
			cs := chart.ContinuousSeries{
				Name:    s.Name,
				XValues: seg.Years,
				YValues: seg.Values,
				Style:   style,
			}
			series = append(series, cs)
			if j == 0 {
				legend = append(legend, cs)
			}
		}
	}

	if len(series) == 0 {
		return ErrEmptyChart
	}

	// Um único ano deixaria o eixo x com intervalo zero
	if minYear == maxYear {
		minYear--
		maxYear++
	}

	yMax := c.YMax
	if yMax <= c.YMin {
		yMax = c.YMin + 1
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:           c.XLabel,
			Range:          &chart.ContinuousRange{Min: minYear, Max: maxYear},
			ValueFormatter: yearFormatter,
		},
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: c.YMin, Max: yMax},
		},
		Series: series,
	}

	// Legenda só com o primeiro segmento de cada país
	legendChart := ch
	legendChart.Series = legend
	ch.Elements = []chart.Renderable{chart.Legend(&legendChart)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(err, "render chart %q", c.Title)
	}

	return nil
}

type Segment struct {
	Years  []float64
	Values []float64
}

// Segments divide os pontos em trechos contínuos, separados por valores nulos
func Segments(points []domain.ChartPoint) []Segment {
	segments := make([]Segment, 0)
	current := Segment{}

	flush := func() {
		if len(current.Years) > 0 {
			segments = append(segments, current)
		}
		current = Segment{}
	}

	for _, p := range points {
		if p.Value == nil {
			flush()
			continue
		}
		current.Years = append(current.Years, float64(p.Year))
		current.Values = append(current.Values, *p.Value)
	}
	flush()

	return segments
}

func yearBounds(series []domain.ChartSeries) (float64, float64, bool) {
	var min, max float64
	found := false
	for _, s := range series {
		for _, p := range s.Points {
			if p.Value == nil {
				continue
			}
			y := float64(p.Year)
			if !found || y < min {
				min = y
			}
			if !found || y > max {
				max = y
			}
			found = true
		}
	}
	return min, max, found
}

func yearFormatter(v interface{}) string {
	switch typed := v.(type) {
	case float64:
		return strconv.Itoa(int(typed))
	case int:
		return strconv.Itoa(typed)
	default:
		return fmt.Sprintf("%v", v)
	}
}
