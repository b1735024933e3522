package risk

import (
	"fmt"
	"strings"

	"github.com/de-tools/churn-atlas/pkg/models/domain"
)

// condition is one (predicate, effect) row of a factor rule. The first
// matching condition in a group wins; a group where nothing matches
// contributes neither points nor a factor entry.
type condition struct {
	when    func(domain.PredictionInput) bool
	points  int
	impact  domain.Impact
	message string
}

// factorRule is one ordered rule group of the scoring table. Each group is
// keyed by a unique factor name, so later groups can never overwrite an
// earlier factor entry.
type factorRule struct {
	name  domain.FactorName
	value func(domain.PredictionInput) any
	conds []condition
}

func always(domain.PredictionInput) bool { return true }

// rules is the complete scoring table, evaluated top to bottom. Weights and
// thresholds are the audited business rule set; changing them changes the
// published scoring contract.
var rules = []factorRule{
	{
		name:  domain.FactorTenure,
		value: func(in domain.PredictionInput) any { return in.Tenure },
		conds: []condition{
			{when: func(in domain.PredictionInput) bool { return in.Tenure < 6 },
				points: 30, impact: domain.ImpactHigh, message: "New customer (< 6 months)"},
			{when: func(in domain.PredictionInput) bool { return in.Tenure < 12 },
				points: 20, impact: domain.ImpactMedium, message: "Recent customer (6-12 months)"},
			{when: func(in domain.PredictionInput) bool { return in.Tenure < 24 },
				points: 10, impact: domain.ImpactLow, message: "Established customer (1-2 years)"},
			{when: always,
				points: 0, impact: domain.ImpactPositive, message: "Loyal customer (> 2 years)"},
		},
	},
	{
		name:  domain.FactorComplaints,
		value: func(in domain.PredictionInput) any { return in.Complaints },
		conds: []condition{
			{when: func(in domain.PredictionInput) bool { return in.Complaints >= 3 },
				points: 25, impact: domain.ImpactHigh, message: "Multiple complaints"},
			{when: func(in domain.PredictionInput) bool { return in.Complaints >= 1 },
				points: 15, impact: domain.ImpactMedium, message: "Some complaints"},
			{when: always,
				points: 0, impact: domain.ImpactPositive, message: "No complaints"},
		},
	},
	{
		name:  domain.FactorContract,
		value: func(in domain.PredictionInput) any { return in.ContractType },
		conds: []condition{
			{when: func(in domain.PredictionInput) bool { return strings.EqualFold(in.ContractType, "prepaid") },
				points: 20, impact: domain.ImpactHigh, message: "Prepaid contract (no commitment)"},
			{when: always,
				points: 5, impact: domain.ImpactLow, message: "Postpaid contract"},
		},
	},
	{
		name:  domain.FactorMonthlyCharges,
		value: func(in domain.PredictionInput) any { return in.MonthlyCharges },
		conds: []condition{
			{when: func(in domain.PredictionInput) bool { return in.MonthlyCharges > 80 },
				points: 10, impact: domain.ImpactMedium, message: "High monthly bill"},
		},
	},
	{
		name: domain.FactorDataUsage,
		value: func(in domain.PredictionInput) any {
			if in.DataUsage == nil {
				return nil
			}
			return *in.DataUsage
		},
		conds: []condition{
			{when: func(in domain.PredictionInput) bool { return in.DataUsage != nil && *in.DataUsage < 2 },
				points: 15, impact: domain.ImpactMedium, message: "Low data usage"},
		},
	},
	{
		name:  domain.FactorInternetService,
		value: func(in domain.PredictionInput) any { return string(in.InternetService) },
		conds: []condition{
			{when: func(in domain.PredictionInput) bool { return in.InternetService == domain.InternetFiber },
				points: 10, impact: domain.ImpactMedium, message: "Fiber optic (more volatile)"},
		},
	},
	{
		name:  domain.FactorSecurity,
		value: func(in domain.PredictionInput) any { return "No add-on services" },
		conds: []condition{
			{when: func(in domain.PredictionInput) bool { return in.OnlineSecurity == "No" && in.TechSupport == "No" },
				points: 10, impact: domain.ImpactMedium, message: "No security services"},
		},
	},
}

// Scorer evaluates one customer-attribute tuple against the weighted rule
// table. Stateless; identical input always yields identical output.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score validates the input, walks the rule table in order, clamps the
// total to [0,100] and derives tier, probability and recommendations. It is
// total over well-formed input and fails only with ErrInvalidInput, before
// any scoring happens.
func (s *Scorer) Score(in domain.PredictionInput) (*domain.RiskAssessment, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	score := 0
	factors := make([]domain.Factor, 0, len(rules))
	for _, rule := range rules {
		for _, cond := range rule.conds {
			if !cond.when(in) {
				continue
			}
			score += cond.points
			factors = append(factors, domain.Factor{
				Name:    rule.name,
				Value:   rule.value(in),
				Impact:  cond.impact,
				Message: cond.message,
			})
			break
		}
	}

	if score > 100 {
		score = 100
	}

	return &domain.RiskAssessment{
		RiskLevel:       riskLevel(score),
		Probability:     float64(score) / 100,
		Score:           score,
		Factors:         factors,
		Recommendations: recommend(factors),
	}, nil
}

func riskLevel(score int) domain.RiskLevel {
	switch {
	case score >= 70:
		return domain.RiskHigh
	case score >= 40:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func validate(in domain.PredictionInput) error {
	if in.Tenure < 0 {
		return fmt.Errorf("%w: tenure must be non-negative", domain.ErrInvalidInput)
	}
	if in.Complaints < 0 {
		return fmt.Errorf("%w: complaints must be non-negative", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.ContractType) == "" {
		return fmt.Errorf("%w: contract_type is required", domain.ErrInvalidInput)
	}
	if in.MonthlyCharges < 0 {
		return fmt.Errorf("%w: monthly_charges must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}
