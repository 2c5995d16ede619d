package render

import (
	"fmt"
	"strings"

	"freerider-study/internal/domain"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"

	bannerWidth = 65
	chartWidth  = 40
)

// Banner formatea el encabezado del reporte. Sin estado: es solo formato.
func Banner(title string) string {
	rule := strings.Repeat("=", bannerWidth)
	return fmt.Sprintf("%s\n%s\n%s\n", rule, title, rule)
}

// Text renderiza el reporte completo como texto plano con charts de barras,
// seccion por seccion en el orden canonico. Solo aparecen las secciones
// presentes en el reporte.
func Text(report domain.Report) string {
	var b strings.Builder
	chart := NewBarChart(chartWidth)

	b.WriteString(Banner(report.Title))
	b.WriteString("Based on " + report.Citation + "\n")
	b.WriteString(report.Note + "\n")

	if len(report.Participation) > 0 {
		writeParticipation(&b, chart, report.Participation)
	}
	if len(report.RatingPatterns) > 0 {
		writeRatingPatterns(&b, chart, report.RatingPatterns)
	}
	if len(report.TheoryOfMind) > 0 {
		writeTheoryOfMind(&b, report.TheoryOfMind)
	}
	if report.Collective != nil {
		writeCollective(&b, chart, *report.Collective)
	}
	if report.EffectSizes != nil {
		writeEffectSizes(&b, *report.EffectSizes)
	}
	return b.String()
}

func sectionHeader(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s%s%s\n%s\n", colorCyan, title, colorReset, strings.Repeat("-", len(title)))
}

func finding(b *strings.Builder, text string) {
	fmt.Fprintf(b, "  %sFinding:%s %s\n", colorGreen, colorReset, text)
}

func writeParticipation(b *strings.Builder, chart *BarChart, entries []domain.ParticipationEntry) {
	sectionHeader(b, "PARTICIPATION DECISIONS")
	rows := make([]BarRow, 0, len(entries)*2)
	for _, e := range entries {
		rows = append(rows,
			BarRow{Label: e.Agent.Label() + " (base)", Value: e.BaseRate},
			BarRow{Label: e.Agent.Label() + " (incentivized)", Value: e.WithIncentives},
		)
	}
	b.WriteString(chart.Render("Participation rates", rows))
	for _, e := range entries {
		fmt.Fprintf(b, "  %-12s boost +%.1f%% (%s responsiveness)\n",
			e.Agent.Label(), e.Boost*100, e.Responsiveness)
	}
	finding(b, "Free riders respond far more strongly to incentives.")
}

func writeRatingPatterns(b *strings.Builder, chart *BarChart, entries []domain.RatingPatternEntry) {
	sectionHeader(b, "RATING BIAS & ACCURACY")
	rows := make([]BarRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, BarRow{Label: e.Agent.Label(), Value: e.AccuracyRSquared})
	}
	b.WriteString(chart.Render("Individual accuracy (R²)", rows))
	for _, e := range entries {
		fmt.Fprintf(b, "  %-12s %.0f%% %s, R² = %.2f\n",
			e.Agent.Label(), e.BiasRate*100, e.BiasDirection.Label(), e.AccuracyRSquared)
	}
	finding(b, "Accuracy paradox: free riders underestimate, yet rate more accurately.")
}

func writeTheoryOfMind(b *strings.Builder, entries []domain.TheoryOfMindEntry) {
	sectionHeader(b, "THEORY OF MIND")
	for _, e := range entries {
		fmt.Fprintf(b, "  %s -> %s: reliability %.2f, expected regard %.2f\n",
			e.Observer.Label(), e.Source.Label(), e.Reliability, e.Regard)
	}
	finding(b, "Each type trusts sources that rate the way it does.")
}

func writeCollective(b *strings.Builder, chart *BarChart, section domain.CollectiveSection) {
	sectionHeader(b, "COLLECTIVE PERFORMANCE")
	rows := []BarRow{
		{Label: "Homogeneous", Value: section.Comparison.HomogeneousPerformance},
		{Label: "Mixed", Value: section.Comparison.MixedPerformance},
	}
	b.WriteString(chart.Render("Population comparison", rows))
	fmt.Fprintf(b, "  Diversity benefit: +%.1f%%\n", section.DiversityBenefit*100)
	finding(b, section.Finding)
}

func writeEffectSizes(b *strings.Builder, section domain.EffectSizeSection) {
	sectionHeader(b, "EFFECT SIZES")
	fmt.Fprintf(b, "  Participation responsiveness: d = %.2f\n", section.ParticipationEffect)
	fmt.Fprintf(b, "  Accuracy advantage:           d = %.2f\n", section.AccuracyEffect)
	fmt.Fprintf(b, "  (%s scaling, not a hypothesis test)\n", section.Source)
}
