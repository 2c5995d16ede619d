package config

import (
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio de reporte.
type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	ReportFormat   string `env:"REPORT_FORMAT" envDefault:"text"`
	ReportSections string `env:"REPORT_SECTIONS"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Sections separa REPORT_SECTIONS en nombres limpios; vacio = todas.
func (c *Config) Sections() []string {
	if strings.TrimSpace(c.ReportSections) == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(c.ReportSections, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
