// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrCatalogMismatch indica que o catálogo de indicadores e o de descrições divergem
var ErrCatalogMismatch = errors.New("catalog: indicators and descriptions diverge")

// ErrInvalidCatalog indica um catálogo estruturalmente inválido (rótulos vazios, duplicados, etc.)
var ErrInvalidCatalog = errors.New("catalog: invalid definition")

// IndicatorSpec liga o rótulo exibido ao código do indicador na API do Banco Mundial
type IndicatorSpec struct {
	Label string `json:"label" yaml:"label"`
	Code  string `json:"code" yaml:"code"`
}

type Country struct {
	Code string `json:"code" yaml:"code"` // ISO3, ex: GHA
	Name string `json:"name" yaml:"name"`
}

// Catalog é a configuração fixa de países, indicadores e descrições.
// Imutável depois de criado.
type Catalog struct {
	countries    []Country
	indicators   []IndicatorSpec
	byLabel      map[string]IndicatorSpec
	descriptions map[string]string
}

// NewCatalog valida e monta o catálogo. Rótulos de indicadores e chaves de
// descrição precisam ser exatamente o mesmo conjunto.
func NewCatalog(countries []Country, indicators []IndicatorSpec, descriptions map[string]string) (*Catalog, error) {
	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: no countries configured", ErrInvalidCatalog)
	}
	if len(indicators) == 0 {
		return nil, fmt.Errorf("%w: no indicators configured", ErrInvalidCatalog)
	}

	seenCountries := make(map[string]bool, len(countries))
	for _, c := range countries {
		if strings.TrimSpace(c.Code) == "" {
			return nil, fmt.Errorf("%w: country with empty code", ErrInvalidCatalog)
		}
		if seenCountries[c.Code] {
			return nil, fmt.Errorf("%w: duplicated country %q", ErrInvalidCatalog, c.Code)
		}
		seenCountries[c.Code] = true
	}

	byLabel := make(map[string]IndicatorSpec, len(indicators))
	for _, ind := range indicators {
		if strings.TrimSpace(ind.Label) == "" || strings.TrimSpace(ind.Code) == "" {
			return nil, fmt.Errorf("%w: indicator with empty label or code (%q, %q)", ErrInvalidCatalog, ind.Label, ind.Code)
		}
		if _, exists := byLabel[ind.Label]; exists {
			return nil, fmt.Errorf("%w: duplicated indicator label %q", ErrInvalidCatalog, ind.Label)
		}
		byLabel[ind.Label] = ind
	}

	// Os dois mapeamentos precisam ter as mesmas chaves
	var missing, extra []string
	for label := range byLabel {
		if _, ok := descriptions[label]; !ok {
			missing = append(missing, label)
		}
	}
	for label := range descriptions {
		if _, ok := byLabel[label]; !ok {
			extra = append(extra, label)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return nil, fmt.Errorf("%w: missing descriptions %v, descriptions without indicator %v", ErrCatalogMismatch, missing, extra)
	}

	desc := make(map[string]string, len(descriptions))
	for k, v := range descriptions {
		desc[k] = v
	}

	return &Catalog{
		countries:    append([]Country(nil), countries...),
		indicators:   append([]IndicatorSpec(nil), indicators...),
		byLabel:      byLabel,
		descriptions: desc,
	}, nil
}

// Countries retorna os países na ordem configurada
func (c *Catalog) Countries() []Country {
	return append([]Country(nil), c.countries...)
}

func (c *Catalog) CountryCodes() []string {
	codes := make([]string, 0, len(c.countries))
	for _, country := range c.countries {
		codes = append(codes, country.Code)
	}
	return codes
}

// Country busca um país pelo código ISO3
func (c *Catalog) Country(code string) (Country, bool) {
	for _, country := range c.countries {
		if country.Code == code {
			return country, true
		}
	}
	return Country{}, false
}

// Indicators retorna os indicadores na ordem configurada
func (c *Catalog) Indicators() []IndicatorSpec {
	return append([]IndicatorSpec(nil), c.indicators...)
}

func (c *Catalog) Labels() []string {
	labels := make([]string, 0, len(c.indicators))
	for _, ind := range c.indicators {
		labels = append(labels, ind.Label)
	}
	return labels
}

func (c *Catalog) HasLabel(label string) bool {
	_, ok := c.byLabel[label]
	return ok
}

func (c *Catalog) Indicator(label string) (IndicatorSpec, bool) {
	ind, ok := c.byLabel[label]
	return ind, ok
}

func (c *Catalog) Description(label string) (string, bool) {
	desc, ok := c.descriptions[label]
	return desc, ok
}
