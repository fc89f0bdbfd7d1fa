package rendering

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/indicators-dashboard/internal/domain"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/dataset"
)

// ErrUnknownIndicator indica um rótulo que não existe no catálogo
var ErrUnknownIndicator = errors.New("unknown indicator label")

type Renderer interface {
	// Select trata a mudança de seleção: recebe o novo rótulo e devolve o que exibir
	Select(label string) (domain.RenderResult, error)
	DefaultLabel() string
	Catalog() *domain.Catalog
}

type RenderService struct {
	datasets dataset.DatasetService
}

func NewService(datasets dataset.DatasetService) Renderer {
	return &RenderService{
		datasets: datasets,
	}
}

func (s *RenderService) Select(label string) (domain.RenderResult, error) {
	catalog := s.datasets.Catalog()
	if !catalog.HasLabel(label) {
		return domain.RenderResult{}, ErrUnknownIndicator
	}

	result := Render(s.datasets.Current(), catalog, label)

	logrus.WithFields(logrus.Fields{
		"indicator": label,
		"status":    result.Status,
	}).Debug("rendering: seleção processada")

	return result, nil
}

// DefaultLabel é o primeiro indicador do catálogo, usado quando nada foi selecionado
func (s *RenderService) DefaultLabel() string {
	labels := s.datasets.Catalog().Labels()
	if len(labels) == 0 {
		return ""
	}
	return labels[0]
}

func (s *RenderService) Catalog() *domain.Catalog {
	return s.datasets.Catalog()
}
