package study

import (
	"fmt"

	"go.uber.org/zap"

	"freerider-study/internal/domain"
)

const (
	reportTitle    = "Free riders in collective rating systems"
	reportCitation = "Tchernichovski, Frey, Jacoby & Conley (2023), PNAS"
	reportNote     = "Bias rates and the population comparison are illustrative approximations from review material, not single reported statistics."

	collectiveFinding = "Mixed populations outperform homogeneous ones: individual selectivity creates a collective benefit."
)

// ReportService arma el reporte estructurado a partir de la tabla de
// parametros. No guarda estado entre llamadas: mismas constantes, mismo
// reporte, byte por byte.
type ReportService struct {
	params *Parameters
	logger *zap.Logger
}

func NewReportService(params *Parameters, logger *zap.Logger) *ReportService {
	return &ReportService{params: params, logger: logger}
}

// BuildReport construye el reporte con las secciones pedidas, en el orden
// canonico. Una lista vacia significa todas. Una seccion desconocida es
// error del llamador.
func (s *ReportService) BuildReport(sections []string) (domain.Report, error) {
	selected, err := resolveSections(sections)
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{
		Title:    reportTitle,
		Citation: reportCitation,
		Note:     reportNote,
	}
	if selected[domain.SectionParticipation] {
		report.Participation = s.participationSection()
	}
	if selected[domain.SectionRatingPatterns] {
		report.RatingPatterns = s.ratingPatternsSection()
	}
	if selected[domain.SectionTheoryOfMind] {
		report.TheoryOfMind = s.theoryOfMindSection()
	}
	if selected[domain.SectionCollective] {
		report.Collective = s.collectiveSection()
	}
	if selected[domain.SectionEffectSizes] {
		effects := s.params.EffectSizes()
		report.EffectSizes = &effects
	}

	s.logger.Debug("report built", zap.Int("sections", len(sections)))
	return report, nil
}

func resolveSections(sections []string) (map[string]bool, error) {
	selected := make(map[string]bool, len(domain.SectionNames()))
	if len(sections) == 0 {
		for _, name := range domain.SectionNames() {
			selected[name] = true
		}
		return selected, nil
	}
	known := make(map[string]bool, len(domain.SectionNames()))
	for _, name := range domain.SectionNames() {
		known[name] = true
	}
	for _, name := range sections {
		if !known[name] {
			return nil, fmt.Errorf("unknown report section %q", name)
		}
		selected[name] = true
	}
	return selected, nil
}

func (s *ReportService) participationSection() []domain.ParticipationEntry {
	entries := make([]domain.ParticipationEntry, 0, len(domain.AgentTypes()))
	for _, p := range s.params.Profiles() {
		entries = append(entries, domain.ParticipationEntry{
			Agent:          p.Type,
			BaseRate:       p.BaseParticipation,
			WithIncentives: p.IncentivizedParticipation,
			Boost:          p.IncentiveBoost(),
			Responsiveness: Responsiveness(p),
		})
	}
	return entries
}

func (s *ReportService) ratingPatternsSection() []domain.RatingPatternEntry {
	entries := make([]domain.RatingPatternEntry, 0, len(domain.AgentTypes()))
	for _, p := range s.params.Profiles() {
		entries = append(entries, domain.RatingPatternEntry{
			Agent:            p.Type,
			BiasRate:         p.BiasRate,
			BiasDirection:    p.BiasDirection,
			AccuracyRSquared: p.AccuracyRSquared,
		})
	}
	return entries
}

// theoryOfMindSection cruza solo los dos tipos que emiten ratings; OptOut no
// observa ni es observado.
func (s *ReportService) theoryOfMindSection() []domain.TheoryOfMindEntry {
	raters := []domain.AgentType{domain.AgentIntrinsic, domain.AgentFreeRider}
	entries := make([]domain.TheoryOfMindEntry, 0, len(raters)*len(raters))
	for _, observer := range raters {
		for _, source := range raters {
			entries = append(entries, domain.TheoryOfMindEntry{
				Observer:    observer,
				Source:      source,
				Reliability: s.params.ReliabilityAssessment(observer, source),
				Regard:      s.params.MetaCognitiveRegard(observer, source),
			})
		}
	}
	return entries
}

func (s *ReportService) collectiveSection() *domain.CollectiveSection {
	cmp := s.params.Comparison()
	return &domain.CollectiveSection{
		Comparison:       cmp,
		DiversityBenefit: cmp.DiversityBenefit(),
		Finding:          collectiveFinding,
	}
}
