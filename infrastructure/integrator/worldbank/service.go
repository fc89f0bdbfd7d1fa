package worldbank

import (
	"context"

	"github.com/sirupsen/logrus"
	worldbankdomain "github.com/vfg2006/indicators-dashboard/infrastructure/integrator/worldbank/domain"
	"github.com/vfg2006/indicators-dashboard/infrastructure/integrator/worldbank/worldbankclient"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator.go -package=mocks

type WorldBankIntegrator interface {
	// FetchObservations nunca falha: qualquer erro de rede ou de formato vira uma lista vazia
	FetchObservations(ctx context.Context, country, indicatorCode string) []worldbankdomain.Observation
}

type WorldBankService struct {
	Client worldbankclient.Client
}

func New(client worldbankclient.Client) WorldBankIntegrator {
	return &WorldBankService{
		Client: client,
	}
}

func (s *WorldBankService) FetchObservations(ctx context.Context, country, indicatorCode string) []worldbankdomain.Observation {
	logger := logrus.WithFields(logrus.Fields{
		"country":   country,
		"indicator": indicatorCode,
	})

	body, err := s.Client.GetIndicator(ctx, country, indicatorCode)
	if err != nil {
		logger.WithError(err).Warn("worldbank: falha ao buscar indicador, seguindo sem dados")
		return []worldbankdomain.Observation{}
	}

	page, err := worldbankdomain.ParseIndicatorPage(body)
	if err != nil {
		logger.WithError(err).Warn("worldbank: resposta inesperada, seguindo sem dados")
		return []worldbankdomain.Observation{}
	}

	observations := page.Observations(country, indicatorCode)

	logger.WithFields(logrus.Fields{
		"records": len(observations),
		"total":   page.Metadata.Total,
	}).Debug("worldbank: indicador carregado")

	return observations
}
