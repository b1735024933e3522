package risk

import "github.com/de-tools/churn-atlas/pkg/models/domain"

// recommendation maps one {factor, impact set} pair to a retention action.
// The table is walked in order and each factor contributes at most one
// entry, so the output is deduplicated by construction.
type recommendation struct {
	factor  domain.FactorName
	impacts []domain.Impact
	text    string
}

var recommendations = []recommendation{
	{
		factor:  domain.FactorTenure,
		impacts: []domain.Impact{domain.ImpactHigh, domain.ImpactMedium},
		text:    "Personalized onboarding program for new customers",
	},
	{
		factor:  domain.FactorComplaints,
		impacts: []domain.Impact{domain.ImpactHigh, domain.ImpactMedium},
		text:    "Contact the customer to resolve reported issues",
	},
	{
		factor:  domain.FactorContract,
		impacts: []domain.Impact{domain.ImpactHigh},
		text:    "Offer a commitment plan with benefits",
	},
	{
		factor:  domain.FactorMonthlyCharges,
		impacts: []domain.Impact{domain.ImpactMedium},
		text:    "Offer a discount or a service upgrade",
	},
	{
		factor:  domain.FactorDataUsage,
		impacts: []domain.Impact{domain.ImpactMedium},
		text:    "Suggest plans matched to actual usage",
	},
	{
		factor:  domain.FactorSecurity,
		impacts: []domain.Impact{domain.ImpactMedium},
		text:    "Offer a free trial of premium services",
	},
}

// defaultRecommendations is emitted when no factor triggers an action.
var defaultRecommendations = []string{
	"Maintain the customer relationship with regular communications",
	"Promote the loyalty program",
}

func recommend(factors []domain.Factor) []string {
	impactByFactor := make(map[domain.FactorName]domain.Impact, len(factors))
	for _, f := range factors {
		impactByFactor[f.Name] = f.Impact
	}

	var result []string
	for _, rec := range recommendations {
		impact, ok := impactByFactor[rec.factor]
		if !ok {
			continue
		}
		for _, candidate := range rec.impacts {
			if impact == candidate {
				result = append(result, rec.text)
				break
			}
		}
	}

	if len(result) == 0 {
		return append([]string{}, defaultRecommendations...)
	}
	return result
}
