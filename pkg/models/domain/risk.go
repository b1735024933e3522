package domain

// FactorName identifies one rule group of the churn risk table. Each group
// contributes at most one factor entry to an assessment.
type FactorName string

const (
	FactorTenure          FactorName = "tenure"
	FactorComplaints      FactorName = "complaints"
	FactorContract        FactorName = "contract"
	FactorMonthlyCharges  FactorName = "monthly_charges"
	FactorDataUsage       FactorName = "data_usage"
	FactorInternetService FactorName = "internet_service"
	FactorSecurity        FactorName = "security"
)

// Impact grades how strongly a factor pushes a customer towards churn.
type Impact string

const (
	ImpactHigh     Impact = "high"
	ImpactMedium   Impact = "medium"
	ImpactLow      Impact = "low"
	ImpactPositive Impact = "positive"
)

// RiskLevel is the coarse tier derived from the bounded score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// PredictionInput is the attribute tuple a single customer is scored on.
// DataUsage is optional; nil means unknown and skips the low-usage rule.
type PredictionInput struct {
	Tenure          int
	VoiceUsage      float64 // minutes per month
	DataUsage       *float64
	Complaints      int
	ContractType    string // prepaid / postpaid
	MonthlyCharges  float64
	InternetService InternetService
	OnlineSecurity  string // Yes / No
	TechSupport     string // Yes / No
	StreamingTV     string
}

// Factor explains one rule group's contribution to the score.
type Factor struct {
	Name    FactorName
	Value   any
	Impact  Impact
	Message string
}

// RiskAssessment is the full scoring result for one customer. Factors keep
// rule-table evaluation order.
type RiskAssessment struct {
	RiskLevel       RiskLevel
	Probability     float64 // score/100, 2 decimals
	Score           int     // clamped to [0,100]
	Factors         []Factor
	Recommendations []string
}
