package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MalteHerrmann/proposer/internal/cosmos"
	"github.com/MalteHerrmann/proposer/internal/metrics"
	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/release"
	"github.com/MalteHerrmann/proposer/internal/service"
	"github.com/MalteHerrmann/proposer/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

var config struct {
	Addr     string `long:"addr" env:"PROPOSER_API_ADDR" description:"listen addr" default:":8000"`
	Networks string `long:"networks" env:"PROPOSER_API_NETWORKS" description:"comma-separated networks to serve" default:"mainnet,testnet"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	var planners []transport.PlannerService
	for _, raw := range strings.Split(config.Networks, ",") {
		network, err := model.ParseNetwork(raw)
		if err != nil {
			logger.Fatal("Parse network", zap.String("network", raw), zap.Error(err))
		}

		chainClient, err := cosmos.NewClientForNetwork(network, nil, metrics.NewRESTClient(network))
		if err != nil {
			logger.Fatal("Create chain client", zap.String("network", string(network)), zap.Error(err))
		}

		planner, err := service.NewPlanner(network, chainClient, release.NewClient(nil), logger, metrics.NewPlanner(network))
		if err != nil {
			logger.Fatal("Create planner", zap.String("network", string(network)), zap.Error(err))
		}
		planners = append(planners, planner)
	}

	mux := http.NewServeMux()
	transport.NewHandler(planners, logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
