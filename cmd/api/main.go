package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/pauloenterprise/sales-dashboard-api/infrastructure/integrator/upstream/upstreamclient"
	"github.com/pauloenterprise/sales-dashboard-api/internal/api"
	"github.com/pauloenterprise/sales-dashboard-api/internal/api/handler"
	"github.com/pauloenterprise/sales-dashboard-api/internal/config"
	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pauloenterprise/sales-dashboard-api/internal/scheduler"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/loading"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/managing"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	upstream := upstreamclient.NewClient(cfg.Upstream)

	// Um store por coleção remota; as duas cargas correm em paralelo, as
	// páginas dentro de cada carga são estritamente sequenciais.
	salesStore := loading.NewDatasetStore(loading.Config{
		Resource:   "sales",
		PageLimit:  cfg.Upstream.SalesPageLimit,
		MaxPages:   cfg.Upstream.SalesMaxPages,
		TotalFloor: cfg.Upstream.SalesTotalFloor,
		PageDelay:  cfg.Upstream.PageDelay(),
	}, func(ctx context.Context, page, limit int) ([]domain.Sale, error) {
		return upstream.GetSales(ctx, page, limit)
	})

	clientsStore := loading.NewDatasetStore(loading.Config{
		Resource:   "clients",
		PageLimit:  cfg.Upstream.ClientsPageLimit,
		MaxPages:   cfg.Upstream.ClientsMaxPages,
		TotalFloor: cfg.Upstream.ClientsTotalFloor,
		PageDelay:  cfg.Upstream.PageDelay(),
	}, func(ctx context.Context, page, limit int) ([]domain.Client, error) {
		return upstream.GetClients(ctx, page, limit)
	})

	if err := salesStore.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a carga do dataset de vendas")
	}
	if err := clientsStore.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a carga do dataset de clientes")
	}

	offerService := managing.NewOfferService(upstream)
	checkoutService := managing.NewCheckoutService(upstream)
	analyticsService := analyzing.NewService(salesStore, clientsStore, offerService.UseTax)
	authenticator := authenticating.NewService(cfg)

	datasetRefreshService := scheduler.NewDatasetRefreshService(cfg, salesStore, clientsStore)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de datasets")
	} else {
		logrus.Info("Agendador de atualização de datasets iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		offerService,
		checkoutService,
		authenticator,
		[]handler.Dataset{salesStore, clientsStore},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
