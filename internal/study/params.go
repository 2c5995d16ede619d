package study

import (
	"errors"
	"fmt"

	"freerider-study/internal/domain"
)

// ErrInvalidParameters marca una tabla de parametros que viola sus
// invariantes. Es fatal: sin constantes validas no hay reporte.
var ErrInvalidParameters = errors.New("invalid study parameters")

// Parameters es la tabla de constantes empiricas del estudio: un perfil por
// tipo de agente mas la comparacion de poblaciones. Solo lectura despues de
// construirse.
type Parameters struct {
	profiles   map[domain.AgentType]domain.AgentProfile
	comparison domain.PopulationComparison
}

// NewParameters valida y congela la tabla. Ante cualquier violacion de rango
// o de monotonia de incentivos devuelve ErrInvalidParameters envuelto con el
// detalle, sin exponer una tabla parcial.
func NewParameters(profiles []domain.AgentProfile, comparison domain.PopulationComparison) (*Parameters, error) {
	byType := make(map[domain.AgentType]domain.AgentProfile, len(profiles))
	for _, p := range profiles {
		if _, err := domain.ParseAgentType(string(p.Type)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
		}
		if _, dup := byType[p.Type]; dup {
			return nil, fmt.Errorf("%w: duplicate profile for %s", ErrInvalidParameters, p.Type)
		}
		if err := validateProfile(p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
		}
		byType[p.Type] = p
	}
	for _, t := range domain.AgentTypes() {
		if _, ok := byType[t]; !ok {
			return nil, fmt.Errorf("%w: missing profile for %s", ErrInvalidParameters, t)
		}
	}
	if err := validateComparison(comparison); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return &Parameters{profiles: byType, comparison: comparison}, nil
}

func validateProfile(p domain.AgentProfile) error {
	if p.Type == domain.AgentOptOut && !p.IsZero() {
		return fmt.Errorf("profile %s must be all zero, it contributes no data", p.Type)
	}
	rates := []struct {
		name  string
		value float64
	}{
		{"base_participation", p.BaseParticipation},
		{"incentivized_participation", p.IncentivizedParticipation},
		{"bias_rate", p.BiasRate},
		{"accuracy_r_squared", p.AccuracyRSquared},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("profile %s: %s %.4f out of [0,1]", p.Type, r.name, r.value)
		}
	}
	if p.IncentivizedParticipation < p.BaseParticipation {
		return fmt.Errorf("profile %s: incentivized participation %.4f below base %.4f",
			p.Type, p.IncentivizedParticipation, p.BaseParticipation)
	}
	return nil
}

func validateComparison(c domain.PopulationComparison) error {
	if c.HomogeneousPerformance < 0 || c.HomogeneousPerformance > 1 {
		return fmt.Errorf("homogeneous performance %.4f out of [0,1]", c.HomogeneousPerformance)
	}
	if c.MixedPerformance < 0 || c.MixedPerformance > 1 {
		return fmt.Errorf("mixed performance %.4f out of [0,1]", c.MixedPerformance)
	}
	return nil
}

// Profile devuelve el perfil de un tipo de agente, copiado por valor.
func (p *Parameters) Profile(t domain.AgentType) (domain.AgentProfile, bool) {
	profile, ok := p.profiles[t]
	return profile, ok
}

// Profiles devuelve todos los perfiles en el orden canonico de presentacion.
func (p *Parameters) Profiles() []domain.AgentProfile {
	out := make([]domain.AgentProfile, 0, len(p.profiles))
	for _, t := range domain.AgentTypes() {
		out = append(out, p.profiles[t])
	}
	return out
}

// Comparison devuelve la comparacion de poblaciones.
func (p *Parameters) Comparison() domain.PopulationComparison {
	return p.comparison
}

// DefaultParameters arma la tabla con las constantes de Tchernichovski et al.
// (2023, PNAS). Las tasas de sesgo (80%) y la comparacion de poblaciones
// (85% vs 60%) son aproximaciones ilustrativas del material de revision, no
// estadisticas reportadas; quedan etiquetadas como tales.
func DefaultParameters() (*Parameters, error) {
	profiles := []domain.AgentProfile{
		{
			Type:                      domain.AgentIntrinsic,
			BaseParticipation:         0.76,
			IncentivizedParticipation: 0.86,
			BiasDirection:             domain.BiasPositive,
			BiasRate:                  0.80,
			AccuracyRSquared:          0.29,
			ParticipationSource:       domain.SourceReported,
			BiasSource:                domain.SourceIllustrative,
		},
		{
			Type:                      domain.AgentFreeRider,
			BaseParticipation:         0.23,
			IncentivizedParticipation: 0.63,
			BiasDirection:             domain.BiasNegative,
			BiasRate:                  0.80,
			AccuracyRSquared:          0.46,
			ParticipationSource:       domain.SourceReported,
			BiasSource:                domain.SourceIllustrative,
		},
		{
			// Presente por completitud: no aporta datos al colectivo.
			Type:                domain.AgentOptOut,
			BiasDirection:       domain.BiasNone,
			ParticipationSource: domain.SourceReported,
			BiasSource:          domain.SourceReported,
		},
	}
	comparison := domain.PopulationComparison{
		HomogeneousPerformance: 0.60,
		MixedPerformance:       0.85,
		Source:                 domain.SourceIllustrative,
	}
	return NewParameters(profiles, comparison)
}
