package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/indicators-dashboard/infrastructure/charting"
	"github.com/vfg2006/indicators-dashboard/infrastructure/integrator/worldbank"
	"github.com/vfg2006/indicators-dashboard/infrastructure/integrator/worldbank/worldbankclient"
	"github.com/vfg2006/indicators-dashboard/internal/api"
	"github.com/vfg2006/indicators-dashboard/internal/config"
	"github.com/vfg2006/indicators-dashboard/internal/scheduler"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/indicators-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/indicators-dashboard/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	catalog, err := config.LoadCatalog()
	if err != nil {
		logrus.WithError(err).Fatal("Catálogo de indicadores inválido")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worldBankClient := worldbankclient.NewClient(cfg)
	worldBankIntegrator := worldbank.New(worldBankClient)

	datasetService := dataset.NewService(dataset.NewBuilder(worldBankIntegrator), catalog)

	refreshService := scheduler.NewDatasetRefreshService(datasetService, cfg)

	// O dataset é montado uma vez antes de aceitar requisições
	if err := refreshService.RefreshDataset(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o dataset inicial")
	}
	if datasetService.Current().IsEmpty() {
		logrus.Warn("Dataset inicial vazio: todos os indicadores vão exibir o aviso de falta de dados")
	}

	renderer := rendering.NewService(datasetService)

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconstrução do dataset")
	} else {
		logrus.Info("Agendador de reconstrução do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		datasetService,
		renderer,
		charting.NewPNGRenderer(),
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
