package dataset

import (
	"context"
	"sync"

	"github.com/vfg2006/indicators-dashboard/internal/domain"
)

type DatasetBuilder interface {
	Build(ctx context.Context, catalog *domain.Catalog) domain.Dataset
}

type DatasetService interface {
	// Refresh reconstrói o dataset inteiro e substitui o atual
	Refresh(ctx context.Context) domain.Dataset
	// Current retorna o dataset vigente; vazio antes do primeiro Refresh
	Current() domain.Dataset
	Catalog() *domain.Catalog
}

// Service é o dono do dataset vigente. O dataset é trocado inteiro a cada
// Refresh e nunca alterado no lugar.
type Service struct {
	builder DatasetBuilder
	catalog *domain.Catalog

	mu      sync.RWMutex
	current domain.Dataset
}

func NewService(builder DatasetBuilder, catalog *domain.Catalog) *Service {
	return &Service{
		builder: builder,
		catalog: catalog,
	}
}

func (s *Service) Refresh(ctx context.Context) domain.Dataset {
	dataset := s.builder.Build(ctx, s.catalog)

	s.mu.Lock()
	s.current = dataset
	s.mu.Unlock()

	return dataset
}

func (s *Service) Current() domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Service) Catalog() *domain.Catalog {
	return s.catalog
}
