package risk

import (
	"testing"

	"github.com/de-tools/churn-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func lowRiskInput() domain.PredictionInput {
	return domain.PredictionInput{
		Tenure:          40,
		DataUsage:       floatPtr(10),
		Complaints:      0,
		ContractType:    "postpaid",
		MonthlyCharges:  50,
		InternetService: domain.InternetDSL,
		OnlineSecurity:  "Yes",
		TechSupport:     "Yes",
	}
}

func TestScorer_Score(t *testing.T) {
	scorer := NewScorer()

	t.Run("every rule fires - score clamps to 100", func(t *testing.T) {
		assessment, err := scorer.Score(domain.PredictionInput{
			Tenure:          3,
			DataUsage:       floatPtr(1),
			Complaints:      4,
			ContractType:    "prepaid",
			MonthlyCharges:  95,
			InternetService: domain.InternetFiber,
			OnlineSecurity:  "No",
			TechSupport:     "No",
		})
		require.NoError(t, err)

		// 30+25+20+10+15+10+10 = 120, clamped
		assert.Equal(t, 100, assessment.Score)
		assert.Equal(t, domain.RiskHigh, assessment.RiskLevel)
		assert.Equal(t, 1.0, assessment.Probability)
		assert.Len(t, assessment.Factors, 7)
	})

	t.Run("loyal postpaid customer scores 5", func(t *testing.T) {
		assessment, err := scorer.Score(lowRiskInput())
		require.NoError(t, err)

		assert.Equal(t, 5, assessment.Score)
		assert.Equal(t, domain.RiskLow, assessment.RiskLevel)
		assert.Equal(t, 0.05, assessment.Probability)
	})

	t.Run("factor order follows the rule table", func(t *testing.T) {
		assessment, err := scorer.Score(lowRiskInput())
		require.NoError(t, err)

		names := make([]domain.FactorName, 0, len(assessment.Factors))
		for _, f := range assessment.Factors {
			names = append(names, f.Name)
		}
		assert.Equal(t, []domain.FactorName{
			domain.FactorTenure,
			domain.FactorComplaints,
			domain.FactorContract,
		}, names)
	})

	t.Run("contract type match is case-insensitive", func(t *testing.T) {
		in := lowRiskInput()
		in.ContractType = "PrePaid"
		assessment, err := scorer.Score(in)
		require.NoError(t, err)

		assert.Equal(t, 20, assessment.Score)
	})

	t.Run("absent data usage skips the low-usage rule", func(t *testing.T) {
		in := lowRiskInput()
		in.DataUsage = nil
		assessment, err := scorer.Score(in)
		require.NoError(t, err)

		assert.Equal(t, 5, assessment.Score)
		for _, f := range assessment.Factors {
			assert.NotEqual(t, domain.FactorDataUsage, f.Name)
		}
	})

	t.Run("scoring is idempotent", func(t *testing.T) {
		in := domain.PredictionInput{
			Tenure:          8,
			DataUsage:       floatPtr(1.5),
			Complaints:      2,
			ContractType:    "prepaid",
			MonthlyCharges:  85,
			InternetService: domain.InternetFiber,
			OnlineSecurity:  "No",
			TechSupport:     "No",
		}

		first, err := scorer.Score(in)
		require.NoError(t, err)
		second, err := scorer.Score(in)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestScorer_RiskLevelThresholds(t *testing.T) {
	tests := []struct {
		score    int
		expected domain.RiskLevel
	}{
		{score: 0, expected: domain.RiskLow},
		{score: 39, expected: domain.RiskLow},
		{score: 40, expected: domain.RiskMedium},
		{score: 69, expected: domain.RiskMedium},
		{score: 70, expected: domain.RiskHigh},
		{score: 100, expected: domain.RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, riskLevel(tt.score), "score %d", tt.score)
	}
}

func TestScorer_TierBoundariesViaRuleTable(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name     string
		input    domain.PredictionInput
		score    int
		expected domain.RiskLevel
	}{
		{
			// 30 (tenure) + 5 (postpaid)
			name: "just below medium",
			input: domain.PredictionInput{
				Tenure: 3, Complaints: 0, ContractType: "postpaid",
				MonthlyCharges: 50, InternetService: domain.InternetDSL,
				OnlineSecurity: "Yes", TechSupport: "Yes",
			},
			score:    35,
			expected: domain.RiskLow,
		},
		{
			// 20 (tenure) + 15 (complaints) + 5 (postpaid)
			name: "exactly at medium threshold",
			input: domain.PredictionInput{
				Tenure: 8, Complaints: 1, ContractType: "postpaid",
				MonthlyCharges: 50, InternetService: domain.InternetDSL,
				OnlineSecurity: "Yes", TechSupport: "Yes",
			},
			score:    40,
			expected: domain.RiskMedium,
		},
		{
			// 30 (tenure) + 15 (complaints) + 20 (prepaid)
			name: "just below high",
			input: domain.PredictionInput{
				Tenure: 3, Complaints: 1, ContractType: "prepaid",
				MonthlyCharges: 50, InternetService: domain.InternetDSL,
				OnlineSecurity: "Yes", TechSupport: "Yes",
			},
			score:    65,
			expected: domain.RiskMedium,
		},
		{
			// 30 (tenure) + 25 (complaints) + 5 (postpaid) + 10 (charges)
			name: "exactly at high threshold",
			input: domain.PredictionInput{
				Tenure: 3, Complaints: 3, ContractType: "postpaid",
				MonthlyCharges: 85, InternetService: domain.InternetDSL,
				OnlineSecurity: "Yes", TechSupport: "Yes",
			},
			score:    70,
			expected: domain.RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment, err := scorer.Score(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.score, assessment.Score)
			assert.Equal(t, tt.expected, assessment.RiskLevel)
		})
	}
}

func TestScorer_Validation(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name  string
		build func() domain.PredictionInput
	}{
		{
			name: "negative tenure",
			build: func() domain.PredictionInput {
				in := lowRiskInput()
				in.Tenure = -1
				return in
			},
		},
		{
			name: "negative complaints",
			build: func() domain.PredictionInput {
				in := lowRiskInput()
				in.Complaints = -2
				return in
			},
		},
		{
			name: "missing contract type",
			build: func() domain.PredictionInput {
				in := lowRiskInput()
				in.ContractType = "  "
				return in
			},
		},
		{
			name: "negative monthly charges",
			build: func() domain.PredictionInput {
				in := lowRiskInput()
				in.MonthlyCharges = -5
				return in
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment, err := scorer.Score(tt.build())
			assert.Nil(t, assessment)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRecommendations(t *testing.T) {
	scorer := NewScorer()

	t.Run("no triggered factor yields exactly the two defaults", func(t *testing.T) {
		assessment, err := scorer.Score(lowRiskInput())
		require.NoError(t, err)

		assert.Equal(t, defaultRecommendations, assessment.Recommendations)
	})

	t.Run("each factor contributes at most one recommendation", func(t *testing.T) {
		assessment, err := scorer.Score(domain.PredictionInput{
			Tenure:          3,
			DataUsage:       floatPtr(1),
			Complaints:      4,
			ContractType:    "prepaid",
			MonthlyCharges:  95,
			InternetService: domain.InternetFiber,
			OnlineSecurity:  "No",
			TechSupport:     "No",
		})
		require.NoError(t, err)

		// All six mapped factors trigger; the fiber factor has no mapping.
		assert.Len(t, assessment.Recommendations, 6)

		seen := make(map[string]bool)
		for _, rec := range assessment.Recommendations {
			assert.False(t, seen[rec], "duplicate recommendation %q", rec)
			seen[rec] = true
		}
	})

	t.Run("medium tenure still triggers the onboarding recommendation", func(t *testing.T) {
		in := lowRiskInput()
		in.Tenure = 8
		assessment, err := scorer.Score(in)
		require.NoError(t, err)

		assert.Contains(t, assessment.Recommendations, "Personalized onboarding program for new customers")
	})
}
