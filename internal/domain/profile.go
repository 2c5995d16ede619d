package domain

// SourceKind distingue estadisticas reportadas en el paper de
// aproximaciones ilustrativas usadas en el material de revision.
type SourceKind string

const (
	SourceReported     SourceKind = "reported"
	SourceIllustrative SourceKind = "illustrative"
)

// AgentProfile agrupa las constantes empiricas de un tipo de agente.
// Se construye una vez al inicio y nunca se muta.
type AgentProfile struct {
	Type                      AgentType     `json:"type" yaml:"type"`
	BaseParticipation         float64       `json:"base_participation" yaml:"base_participation"`
	IncentivizedParticipation float64       `json:"incentivized_participation" yaml:"incentivized_participation"`
	BiasDirection             BiasDirection `json:"bias_direction" yaml:"bias_direction"`
	BiasRate                  float64       `json:"bias_rate" yaml:"bias_rate"`
	AccuracyRSquared          float64       `json:"accuracy_r_squared" yaml:"accuracy_r_squared"`
	ParticipationSource       SourceKind    `json:"participation_source" yaml:"participation_source"`
	BiasSource                SourceKind    `json:"bias_source" yaml:"bias_source"`
}

// IncentiveBoost calcula cuanto sube la participacion al agregar incentivos.
// Para el perfil cero de OptOut devuelve 0.
func (p AgentProfile) IncentiveBoost() float64 {
	return p.IncentivizedParticipation - p.BaseParticipation
}

// IsZero reporta si el perfil no aporta datos (caso OptOut).
func (p AgentProfile) IsZero() bool {
	return p.BaseParticipation == 0 &&
		p.IncentivizedParticipation == 0 &&
		p.BiasRate == 0 &&
		p.AccuracyRSquared == 0
}

// PopulationComparison compara desempeño colectivo entre una poblacion
// homogenea y una mezclada (intrinsecos + free riders).
type PopulationComparison struct {
	HomogeneousPerformance float64    `json:"homogeneous_performance" yaml:"homogeneous_performance"`
	MixedPerformance       float64    `json:"mixed_performance" yaml:"mixed_performance"`
	Source                 SourceKind `json:"source" yaml:"source"`
}

// DiversityBenefit mide la ventaja de la poblacion mezclada.
func (c PopulationComparison) DiversityBenefit() float64 {
	return c.MixedPerformance - c.HomogeneousPerformance
}
