package handler

import (
	"bytes"
	"net/http"

	"github.com/vfg2006/indicators-dashboard/infrastructure/charting"
	"github.com/vfg2006/indicators-dashboard/internal/domain"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/indicators-dashboard/pkg/apiErrors"
	"github.com/vfg2006/indicators-dashboard/pkg/log"
)

type indicatorResponse struct {
	Label       string `json:"label"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type indicatorsResponse struct {
	Default    string              `json:"default"`
	Countries  []domain.Country    `json:"countries"`
	Indicators []indicatorResponse `json:"indicators"`
}

func ListIndicators(renderer rendering.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		catalog := renderer.Catalog()

		indicators := make([]indicatorResponse, 0, len(catalog.Indicators()))
		for _, indicator := range catalog.Indicators() {
			description, _ := catalog.Description(indicator.Label)
			indicators = append(indicators, indicatorResponse{
				Label:       indicator.Label,
				Code:        indicator.Code,
				Description: description,
			})
		}

		writeJSON(w, r, http.StatusOK, indicatorsResponse{
			Default:    renderer.DefaultLabel(),
			Countries:  catalog.Countries(),
			Indicators: indicators,
		})
	})
}

func GetRender(renderer rendering.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, ok := selectIndicator(w, r, renderer)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetChartImage(renderer rendering.Renderer, images charting.ImageRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result, ok := selectIndicator(w, r, renderer)
		if !ok {
			return
		}

		if result.IsNoData() {
			apiErrors.WriteError(w, apiErrors.ErrNoData, result.Message, map[string]string{"indicator": result.Label})
			return
		}

		var buf bytes.Buffer
		if err := images.RenderPNG(result.Chart, &buf); err != nil {
			logger.WithFields(log.Fields{
				"indicator": result.Label,
				"error":     err.Error(),
			}).Error("chart: failed to render png")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to render chart", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("chart: failed to write response")
		}
	})
}

// selectIndicator valida o parâmetro indicator e dispara a seleção. Em caso de
// erro a resposta já foi escrita.
func selectIndicator(w http.ResponseWriter, r *http.Request, renderer rendering.Renderer) (domain.RenderResult, bool) {
	logger := log.ForContext(r.Context())

	label := r.URL.Query().Get("indicator")
	if label == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "query parameter indicator is required", nil)
		return domain.RenderResult{}, false
	}

	result, err := renderer.Select(label)
	if err != nil {
		logger.WithFields(log.Fields{
			"indicator": label,
			"error":     err.Error(),
		}).Warn("render: invalid indicator")

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), map[string]any{
			"indicator": label,
			"accepted":  renderer.Catalog().Labels(),
		})
		return domain.RenderResult{}, false
	}

	return result, true
}
