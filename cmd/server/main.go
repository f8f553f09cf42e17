package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"cnpj-toolkit/internal/cnpj"
	"cnpj-toolkit/internal/config"
	"cnpj-toolkit/internal/domain"
	"cnpj-toolkit/internal/history"
	pkglog "cnpj-toolkit/internal/log"
	"cnpj-toolkit/internal/metrics"
	"cnpj-toolkit/internal/server"
	"cnpj-toolkit/internal/service"
)

var cli struct {
	Config string `name:"config" short:"c" help:"Directory containing config.yaml" type:"path"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("cnpj-server"),
		kong.Description("HTTP service for generating and validating CNPJ identifiers"),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(cfg.Log)
	logger := pkglog.L()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	clock := domain.RealClock{}
	svc := service.NewCNPJService(
		cnpj.NewGenerator(),
		history.New[domain.Identifier](cfg.History.Capacity, clock),
		history.New[domain.ValidationResult](cfg.History.Capacity, clock),
		service.WithRecorder(m),
		service.WithDefaultMode(cfg.Mode()),
	)

	srv := server.New(
		server.Config{
			Port:            cfg.Server.Port,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		server.WithService(svc),
		server.WithLogger(logger),
		server.WithMetrics(m, reg),
	)

	logger.Info().
		Int("port", cfg.Server.Port).
		Int("history_capacity", cfg.History.Capacity).
		Str(pkglog.FieldMode, cfg.Mode().String()).
		Msg("starting server")

	if err := srv.Run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}

	logger.Info().Msg("server stopped gracefully")
}
