package render

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"freerider-study/internal/domain"
)

// Formatos de salida soportados por el CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// JSON codifica el reporte con sangria estable.
func JSON(report domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// YAML codifica el reporte.
func YAML(report domain.Report) ([]byte, error) {
	return yaml.Marshal(report)
}

// Encode despacha segun formato; el texto plano incluye los charts.
func Encode(report domain.Report, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return []byte(Text(report)), nil
	case FormatJSON:
		return JSON(report)
	case FormatYAML:
		return YAML(report)
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}
