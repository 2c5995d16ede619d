package study

import (
	"errors"
	"testing"

	"freerider-study/internal/domain"
)

func validProfiles() []domain.AgentProfile {
	params, err := DefaultParameters()
	if err != nil {
		panic(err)
	}
	return params.Profiles()
}

func validComparison() domain.PopulationComparison {
	params, err := DefaultParameters()
	if err != nil {
		panic(err)
	}
	return params.Comparison()
}

func TestDefaultParametersValid(t *testing.T) {
	params, err := DefaultParameters()
	if err != nil {
		t.Fatalf("DefaultParameters() error: %v", err)
	}
	for _, at := range domain.AgentTypes() {
		profile, ok := params.Profile(at)
		if !ok {
			t.Fatalf("missing profile for %s", at)
		}
		if profile.Type != at {
			t.Fatalf("profile keyed as %s has type %s", at, profile.Type)
		}
	}
	optOut, _ := params.Profile(domain.AgentOptOut)
	if !optOut.IsZero() {
		t.Fatal("opt out profile must contribute no data")
	}
}

func TestRangeAndMonotonicityInvariants(t *testing.T) {
	params, err := DefaultParameters()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range params.Profiles() {
		if p.Type == domain.AgentOptOut {
			continue
		}
		if p.BaseParticipation < 0 || p.BaseParticipation > p.IncentivizedParticipation || p.IncentivizedParticipation > 1 {
			t.Fatalf("profile %s violates 0 <= base <= incentivized <= 1: %+v", p.Type, p)
		}
	}
}

func TestNewParametersRejectsInvalid(t *testing.T) {
	mutate := func(target domain.AgentType, fn func(*domain.AgentProfile)) []domain.AgentProfile {
		profiles := validProfiles()
		for i := range profiles {
			if profiles[i].Type == target {
				fn(&profiles[i])
			}
		}
		return profiles
	}

	tests := []struct {
		name       string
		profiles   []domain.AgentProfile
		comparison domain.PopulationComparison
	}{
		{
			name: "base participation above one",
			profiles: mutate(domain.AgentIntrinsic, func(p *domain.AgentProfile) {
				p.BaseParticipation = 1.5
			}),
			comparison: validComparison(),
		},
		{
			name: "negative bias rate",
			profiles: mutate(domain.AgentFreeRider, func(p *domain.AgentProfile) {
				p.BiasRate = -0.2
			}),
			comparison: validComparison(),
		},
		{
			name: "incentivized below base",
			profiles: mutate(domain.AgentIntrinsic, func(p *domain.AgentProfile) {
				p.IncentivizedParticipation = p.BaseParticipation - 0.1
			}),
			comparison: validComparison(),
		},
		{
			name: "opt out with data",
			profiles: mutate(domain.AgentOptOut, func(p *domain.AgentProfile) {
				p.AccuracyRSquared = 0.5
			}),
			comparison: validComparison(),
		},
		{
			name:       "missing profile",
			profiles:   validProfiles()[:2],
			comparison: validComparison(),
		},
		{
			name:       "duplicate profile",
			profiles:   append(validProfiles(), validProfiles()[0]),
			comparison: validComparison(),
		},
		{
			name:       "unknown agent type",
			profiles:   append(validProfiles()[:2], domain.AgentProfile{Type: "lurker"}),
			comparison: validComparison(),
		},
		{
			name:       "mixed performance above one",
			profiles:   validProfiles(),
			comparison: domain.PopulationComparison{HomogeneousPerformance: 0.6, MixedPerformance: 1.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := NewParameters(tt.profiles, tt.comparison)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidParameters) {
				t.Fatalf("error %v is not ErrInvalidParameters", err)
			}
			if params != nil {
				t.Fatal("no partial table must be exposed on failure")
			}
		})
	}
}
