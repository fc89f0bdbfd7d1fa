package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/vfg2006/indicators-dashboard/internal/domain"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/indicators-dashboard/pkg/log"
)

const (
	dashboardTitle = "Ghana Nutrition & Education Dashboard"
	dashboardIntro = "This dashboard visualizes World Bank development indicators and compares Ghana " +
		"with the United States to explore potential academic and dietetics partnerships."
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type dashboardView struct {
	Title    string
	Intro    string
	Labels   []string
	Selected string
	Result   domain.RenderResult
}

// DashboardPage renderiza a página com o seletor. Rótulo ausente ou desconhecido
// cai no primeiro indicador do catálogo.
func DashboardPage(renderer rendering.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		label := r.URL.Query().Get("indicator")
		if !renderer.Catalog().HasLabel(label) {
			if label != "" {
				logger.WithField("indicator", label).Warn("dashboard: unknown indicator, using default")
			}
			label = renderer.DefaultLabel()
		}

		result, err := renderer.Select(label)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to render selection")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		view := dashboardView{
			Title:    dashboardTitle,
			Intro:    dashboardIntro,
			Labels:   renderer.Catalog().Labels(),
			Selected: label,
			Result:   result,
		}

		var buf bytes.Buffer
		if err := dashboardTemplate.Execute(&buf, view); err != nil {
			logger.WithError(err).Error("dashboard: failed to execute template")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("dashboard: failed to write response")
		}
	})
}
