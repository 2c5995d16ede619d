package study

import "freerider-study/internal/domain"

// Umbral de boost sobre el cual un tipo de agente se considera muy sensible
// a incentivos.
const highResponsivenessThreshold = 0.30

// Desviacion agrupada aproximada usada en el material original para escalar
// diferencias a tamaños de efecto. Valor ilustrativo.
const pooledSDApprox = 0.1

// Responsiveness etiqueta la sensibilidad a incentivos de un perfil.
func Responsiveness(p domain.AgentProfile) string {
	if p.IsZero() {
		return "none"
	}
	if p.IncentiveBoost() > highResponsivenessThreshold {
		return "high"
	}
	return "low"
}

// AccuracyAdvantage compara precision individual: R² de a menos R² de b.
// Antisimetrica: intercambiar argumentos invierte el signo.
func AccuracyAdvantage(a, b domain.AgentProfile) float64 {
	return a.AccuracyRSquared - b.AccuracyRSquared
}

// ReliabilityAssessment modela como un tipo de agente pondera a otro como
// fuente de informacion. Free riders leen la selectividad como señal de
// calidad (relacion inversa con la participacion base); los intrinsecos
// leen la frecuencia como señal de confiabilidad (relacion directa).
func (p *Parameters) ReliabilityAssessment(observer, source domain.AgentType) float64 {
	src, ok := p.Profile(source)
	if !ok {
		return 0.5
	}
	switch observer {
	case domain.AgentFreeRider:
		r := 1.0 - src.BaseParticipation*0.7
		if r < 0.1 {
			r = 0.1
		}
		return r
	case domain.AgentIntrinsic:
		r := 0.3 + src.BaseParticipation*0.6
		if r > 0.9 {
			r = 0.9
		}
		return r
	}
	return 0.5
}

// MetaCognitiveRegard modela el razonamiento recursivo: cuanto cree `agent`
// que `other` lo valora, dada su propia participacion base. Los free riders
// premian la selectividad ajena; los intrinsecos premian la frecuencia.
func (p *Parameters) MetaCognitiveRegard(agent, other domain.AgentType) float64 {
	own := 0.0
	if profile, ok := p.Profile(agent); ok {
		own = profile.BaseParticipation
	}
	switch other {
	case domain.AgentFreeRider:
		if agent == domain.AgentIntrinsic {
			return 0.4 - own*0.3
		}
		return 0.7 + (1-own)*0.2
	case domain.AgentIntrinsic:
		if agent == domain.AgentFreeRider {
			return 0.3 + own*0.4
		}
		return 0.6 + own*0.3
	}
	return 0.5
}

// EffectSizes escala la diferencia de boosts y la ventaja de precision por
// la desviacion agrupada aproximada. No es un contraste de hipotesis.
func (p *Parameters) EffectSizes() domain.EffectSizeSection {
	intrinsic, _ := p.Profile(domain.AgentIntrinsic)
	freeRider, _ := p.Profile(domain.AgentFreeRider)
	return domain.EffectSizeSection{
		ParticipationEffect: (freeRider.IncentiveBoost() - intrinsic.IncentiveBoost()) / pooledSDApprox,
		AccuracyEffect:      AccuracyAdvantage(freeRider, intrinsic) / pooledSDApprox,
		Source:              domain.SourceIllustrative,
	}
}
