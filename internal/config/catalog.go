package config

import (
	_ "embed"
	"fmt"

	"github.com/vfg2006/indicators-dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Countries    []domain.Country       `yaml:"countries"`
	Indicators   []domain.IndicatorSpec `yaml:"indicators"`
	Descriptions map[string]string      `yaml:"descriptions"`
}

// LoadCatalog carrega o catálogo embutido no binário (países, indicadores e descrições)
func LoadCatalog() (*domain.Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// ParseCatalog interpreta um catálogo em YAML e valida os conjuntos de chaves
func ParseCatalog(data []byte) (*domain.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: erro ao ler catálogo de indicadores: %w", err)
	}

	catalog, err := domain.NewCatalog(file.Countries, file.Indicators, file.Descriptions)
	if err != nil {
		return nil, fmt.Errorf("config: catálogo de indicadores inválido: %w", err)
	}

	return catalog, nil
}
