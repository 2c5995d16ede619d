package domain

// Nombres estables de las secciones del reporte.
const (
	SectionParticipation  = "participation"
	SectionRatingPatterns = "rating_patterns"
	SectionTheoryOfMind   = "theory_of_mind"
	SectionCollective     = "collective"
	SectionEffectSizes    = "effect_sizes"
)

// SectionNames devuelve las secciones en el orden canonico del reporte.
func SectionNames() []string {
	return []string{
		SectionParticipation,
		SectionRatingPatterns,
		SectionTheoryOfMind,
		SectionCollective,
		SectionEffectSizes,
	}
}

// Report es la salida estructurada completa: la tabla de parametros mas las
// metricas derivadas, lista para renderizar como texto, JSON o YAML.
// Su contenido es deterministico: mismas constantes, mismos bytes.
type Report struct {
	Title          string               `json:"title" yaml:"title"`
	Citation       string               `json:"citation" yaml:"citation"`
	Note           string               `json:"note" yaml:"note"`
	Participation  []ParticipationEntry `json:"participation,omitempty" yaml:"participation,omitempty"`
	RatingPatterns []RatingPatternEntry `json:"rating_patterns,omitempty" yaml:"rating_patterns,omitempty"`
	TheoryOfMind   []TheoryOfMindEntry  `json:"theory_of_mind,omitempty" yaml:"theory_of_mind,omitempty"`
	Collective     *CollectiveSection   `json:"collective,omitempty" yaml:"collective,omitempty"`
	EffectSizes    *EffectSizeSection   `json:"effect_sizes,omitempty" yaml:"effect_sizes,omitempty"`
}

// ParticipationEntry resume tasas de participacion por tipo de agente.
type ParticipationEntry struct {
	Agent          AgentType `json:"agent" yaml:"agent"`
	BaseRate       float64   `json:"base_rate" yaml:"base_rate"`
	WithIncentives float64   `json:"with_incentives" yaml:"with_incentives"`
	Boost          float64   `json:"boost" yaml:"boost"`
	Responsiveness string    `json:"responsiveness" yaml:"responsiveness"`
}

// RatingPatternEntry resume sesgo y precision individual por tipo de agente.
type RatingPatternEntry struct {
	Agent            AgentType     `json:"agent" yaml:"agent"`
	BiasRate         float64       `json:"bias_rate" yaml:"bias_rate"`
	BiasDirection    BiasDirection `json:"bias_direction" yaml:"bias_direction"`
	AccuracyRSquared float64       `json:"accuracy_r_squared" yaml:"accuracy_r_squared"`
}

// TheoryOfMindEntry captura como un tipo de agente evalua la confiabilidad
// de otro como fuente de informacion, y que trato espera de vuelta.
type TheoryOfMindEntry struct {
	Observer    AgentType `json:"observer" yaml:"observer"`
	Source      AgentType `json:"source" yaml:"source"`
	Reliability float64   `json:"reliability" yaml:"reliability"`
	Regard      float64   `json:"regard" yaml:"regard"`
}

// CollectiveSection compara el desempeño colectivo entre poblaciones.
type CollectiveSection struct {
	Comparison       PopulationComparison `json:"comparison" yaml:"comparison"`
	DiversityBenefit float64              `json:"diversity_benefit" yaml:"diversity_benefit"`
	Finding          string               `json:"finding" yaml:"finding"`
}

// EffectSizeSection escala las diferencias principales por la desviacion
// agrupada aproximada del material original. Son magnitudes ilustrativas,
// no contrastes de hipotesis.
type EffectSizeSection struct {
	ParticipationEffect float64    `json:"participation_effect" yaml:"participation_effect"`
	AccuracyEffect      float64    `json:"accuracy_effect" yaml:"accuracy_effect"`
	Source              SourceKind `json:"source" yaml:"source"`
}
