package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Paleta de los charts de barras del reporte.
var (
	chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	chartBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	chartLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// BarRow es una fila de un chart de barras; Value va en [0,1].
type BarRow struct {
	Label string
	Value float64
}

// BarChart dibuja barras horizontales proporcionales en la terminal.
type BarChart struct {
	width int
}

// NewBarChart crea un chart cuyas barras llenan hasta width celdas al 100%.
func NewBarChart(width int) *BarChart {
	if width <= 0 {
		width = 40
	}
	return &BarChart{width: width}
}

// Render dibuja el titulo y una barra por fila, con el valor en porcentaje.
func (c *BarChart) Render(title string, rows []BarRow) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(title))
	b.WriteString("\n")
	labelWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}
	for _, row := range rows {
		bar := strings.Repeat("█", c.cells(row.Value))
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			chartLabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, row.Label)),
			chartBarStyle.Render(bar),
			fmt.Sprintf("%.1f%%", row.Value*100),
		))
	}
	return b.String()
}

// cells traduce un valor [0,1] a celdas de barra; valores fuera de rango se
// recortan para no romper el layout.
func (c *BarChart) cells(value float64) int {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	return int(value*float64(c.width) + 0.5)
}
