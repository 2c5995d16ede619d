package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"freerider-study/internal/config"
	"freerider-study/internal/render"
	"freerider-study/internal/study"
)

// Imprime el reporte del estudio en stdout. Formato y subconjunto de
// secciones se eligen por entorno (REPORT_FORMAT, REPORT_SECTIONS).
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	params, err := study.DefaultParameters()
	if err != nil {
		logger.Error("study parameters", zap.Error(err))
		os.Exit(1)
	}

	reportSvc := study.NewReportService(params, logger)
	report, err := reportSvc.BuildReport(cfg.Sections())
	if err != nil {
		logger.Error("build report", zap.Error(err))
		os.Exit(1)
	}

	out, err := render.Encode(report, cfg.ReportFormat)
	if err != nil {
		logger.Error("encode report", zap.Error(err))
		os.Exit(1)
	}

	fmt.Print(string(out))
}
