package segmentation

import (
	"fmt"
	"math"

	"github.com/de-tools/churn-atlas/pkg/models/domain"
)

// rule pairs a static segment profile with its membership predicate. Rules
// are evaluated independently in table order; a customer may belong to any
// number of segments, so percentages do not sum to 100.
type rule struct {
	profile domain.SegmentProfile
	match   func(domain.CustomerRecord) bool
}

var rules = []rule{
	{
		profile: domain.SegmentProfile{
			Name: "Premium Users",
			Characteristics: []string{
				"ARPU > 90",
				"Tenure > 24 months",
				"Multiple services",
				"Low churn rate",
			},
			Actions: []string{
				"Exclusive VIP program",
				"Early access offers",
				"Priority support",
			},
			Color: "#2563eb",
		},
		match: func(r domain.CustomerRecord) bool {
			return r.MonthlyCharges > 90 && r.Tenure > 24
		},
	},
	{
		profile: domain.SegmentProfile{
			Name: "Heavy Data Users",
			Characteristics: []string{
				"Fiber subscription",
				"Active streaming",
				"High data usage",
				"Speed sensitive",
			},
			Actions: []string{
				"Premium fiber upgrade",
				"Streaming bundle",
				"Bandwidth guarantee",
			},
			Color: "#10b981",
		},
		match: func(r domain.CustomerRecord) bool {
			return r.InternetService == domain.InternetFiber
		},
	},
	{
		profile: domain.SegmentProfile{
			Name: "Voice Only",
			Characteristics: []string{
				"Phone service only",
				"No internet",
				"Traditional usage",
				"Senior profile",
			},
			Actions: []string{
				"Entry-level internet offer",
				"Digital onboarding",
				"Preferential voice rates",
			},
			Color: "#f59e0b",
		},
		match: func(r domain.CustomerRecord) bool {
			return r.InternetService == domain.InternetNone && r.PhoneService
		},
	},
	{
		profile: domain.SegmentProfile{
			Name: "Low ARPU",
			Characteristics: []string{
				"ARPU < 40",
				"Basic services",
				"Price sensitive",
				"Upsell potential",
			},
			Actions: []string{
				"Attractive bundle offers",
				"Targeted promotions",
				"Gradual upgrades",
			},
			Color: "#8b5cf6",
		},
		match: func(r domain.CustomerRecord) bool {
			return r.MonthlyCharges < 40
		},
	},
	{
		profile: domain.SegmentProfile{
			Name: "At-Risk",
			Characteristics: []string{
				"Month-to-month contract",
				"Tenure < 12 months",
				"No commitment",
				"High churn risk",
			},
			Actions: []string{
				"Retention program",
				"Commitment offer",
				"Proactive outreach",
				"Loyalty discount",
			},
			Color: "#ef4444",
		},
		match: func(r domain.CustomerRecord) bool {
			return r.Contract == domain.ContractMonthToMonth && r.Tenure < 12
		},
	},
	{
		profile: domain.SegmentProfile{
			Name: "Loyal Base",
			Characteristics: []string{
				"Long-term contract",
				"Tenure > 3 years",
				"Low churn",
				"Potential advocates",
			},
			Actions: []string{
				"Referral program",
				"Loyalty rewards",
				"Early renewal",
			},
			Color: "#06b6d4",
		},
		match: func(r domain.CustomerRecord) bool {
			long := r.Contract == domain.ContractOneYear || r.Contract == domain.ContractTwoYear
			return long && r.Tenure > 36
		},
	},
}

// Engine classifies records into the fixed segment table.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Segments evaluates every rule over the full collection, in table order.
func (e *Engine) Segments(records []domain.CustomerRecord) ([]domain.Segment, error) {
	total := len(records)
	if total == 0 {
		return nil, fmt.Errorf("%w: no records to segment", domain.ErrEmptyDataset)
	}

	segments := make([]domain.Segment, 0, len(rules))
	for _, rule := range rules {
		count := 0
		for _, r := range records {
			if rule.match(r) {
				count++
			}
		}
		segments = append(segments, domain.Segment{
			SegmentProfile: rule.profile,
			Percentage:     round1(float64(count) / float64(total) * 100),
			Count:          count,
		})
	}
	return segments, nil
}

// round1 rounds half away from zero to one decimal.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
