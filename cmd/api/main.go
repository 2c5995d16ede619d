package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"freerider-study/internal/config"
	apihttp "freerider-study/internal/http"
	"freerider-study/internal/study"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	params, err := study.DefaultParameters()
	if err != nil {
		logger.Fatal("study parameters", zap.Error(err))
	}

	reportSvc := study.NewReportService(params, logger)
	reportHandler := apihttp.NewReportHandler(logger, params, reportSvc)
	router := apihttp.NewRouter(logger, reportHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
