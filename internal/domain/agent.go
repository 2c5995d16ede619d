package domain

import "fmt"

// AgentType clasifica a los participantes del estudio de rating colectivo.
// Es una enumeracion cerrada: exactamente estos tres tipos.
type AgentType string

const (
	AgentIntrinsic AgentType = "intrinsic"
	AgentFreeRider AgentType = "free_rider"
	AgentOptOut    AgentType = "opt_out"
)

// AgentTypes devuelve los tipos en orden estable de presentacion.
func AgentTypes() []AgentType {
	return []AgentType{AgentIntrinsic, AgentFreeRider, AgentOptOut}
}

// ParseAgentType valida un identificador textual de tipo de agente.
func ParseAgentType(s string) (AgentType, error) {
	switch AgentType(s) {
	case AgentIntrinsic, AgentFreeRider, AgentOptOut:
		return AgentType(s), nil
	}
	return "", fmt.Errorf("unknown agent type %q", s)
}

// Label devuelve el nombre legible usado en reportes y charts.
func (t AgentType) Label() string {
	switch t {
	case AgentIntrinsic:
		return "Intrinsic"
	case AgentFreeRider:
		return "Free Rider"
	case AgentOptOut:
		return "Opt Out"
	}
	return string(t)
}

// BiasDirection indica hacia donde sesga sus ratings cada tipo de agente.
type BiasDirection string

const (
	BiasPositive BiasDirection = "positive"
	BiasNegative BiasDirection = "negative"
	BiasNone     BiasDirection = "none"
)

// Label describe el sesgo en el lenguaje del paper.
func (d BiasDirection) Label() string {
	switch d {
	case BiasPositive:
		return "positive (overestimate)"
	case BiasNegative:
		return "negative (underestimate)"
	case BiasNone:
		return "no rating"
	}
	return string(d)
}
