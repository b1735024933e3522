package api

// KPIResponse mirrors the dashboard KPI payload.
type KPIResponse struct {
	TotalCustomers  int     `json:"total_customers"`
	ChurnRate       float64 `json:"churn_rate"`
	ARPU            float64 `json:"arpu"`
	CLV             float64 `json:"clv"`
	ChurnCount      int     `json:"churn_count"`
	ActiveCustomers int     `json:"active_customers"`
}

type TrendPoint struct {
	Month     string  `json:"month"`
	ChurnRate float64 `json:"churn_rate"`
	Customers int     `json:"customers"`
}

type TrendsResponse struct {
	Trends []TrendPoint `json:"trends"`
}

type ChurnReason struct {
	Reason     string  `json:"reason"`
	Percentage float64 `json:"percentage"`
	Category   string  `json:"category"`
}

type ChurnReasonsResponse struct {
	Reasons []ChurnReason `json:"reasons"`
}

type RevenuePoint struct {
	Segment   string  `json:"segment"`
	Revenue   float64 `json:"revenue"`
	Customers int     `json:"customers"`
}

type RevenueResponse struct {
	Revenue []RevenuePoint `json:"revenue"`
}

type RetentionPoint struct {
	Offer         string  `json:"offer"`
	RetentionRate float64 `json:"retention_rate"`
	Customers     int     `json:"customers"`
}

type RetentionResponse struct {
	Retention []RetentionPoint `json:"retention"`
}

type SegmentInfo struct {
	Name            string   `json:"name"`
	Percentage      float64  `json:"percentage"`
	Count           int      `json:"count"`
	Characteristics []string `json:"characteristics"`
	Actions         []string `json:"actions"`
	Color           string   `json:"color"`
}

// PredictionRequest is the churn scoring input. DataUsage is optional so the
// low-usage rule can distinguish "absent" from zero.
type PredictionRequest struct {
	Tenure          *int     `json:"tenure"`
	VoiceUsage      float64  `json:"voice_usage"`
	DataUsage       *float64 `json:"data_usage"`
	Complaints      *int     `json:"complaints"`
	ContractType    string   `json:"contract_type"`
	MonthlyCharges  float64  `json:"monthly_charges"`
	InternetService string   `json:"internet_service"`
	OnlineSecurity  string   `json:"online_security"`
	TechSupport     string   `json:"tech_support"`
	StreamingTV     string   `json:"streaming_tv"`
}

type FactorInfo struct {
	Value   any    `json:"value"`
	Impact  string `json:"impact"`
	Message string `json:"message"`
}

type PredictionResponse struct {
	RiskLevel       string                `json:"risk_level"`
	Probability     float64               `json:"probability"`
	Score           int                   `json:"score"`
	Recommendations []string              `json:"recommendations"`
	Factors         map[string]FactorInfo `json:"factors"`
}

type OverviewSummary struct {
	TotalCustomers        int     `json:"total_customers"`
	ChurnedCustomers      int     `json:"churned_customers"`
	ActiveCustomers       int     `json:"active_customers"`
	ChurnRate             float64 `json:"churn_rate"`
	AverageTenure         float64 `json:"average_tenure"`
	AverageMonthlyCharges float64 `json:"average_monthly_charges"`
	TotalRevenue          float64 `json:"total_revenue"`
}

type OverviewDistribution struct {
	ByContract        map[string]int `json:"by_contract"`
	ByInternetService map[string]int `json:"by_internet_service"`
	ByPaymentMethod   map[string]int `json:"by_payment_method"`
}

type OverviewResponse struct {
	Summary      OverviewSummary      `json:"summary"`
	Distribution OverviewDistribution `json:"distribution"`
}

type MonthlyTrendPoint struct {
	Month            string  `json:"month"`
	ChurnRate        float64 `json:"churn_rate"`
	NewCustomers     int     `json:"new_customers"`
	ChurnedCustomers int     `json:"churned_customers"`
	Revenue          float64 `json:"revenue"`
}

type MonthlyTrendsResponse struct {
	Trends []MonthlyTrendPoint `json:"trends"`
}

type SummaryItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ReportTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ReportSection struct {
	Title   string        `json:"title"`
	Kind    string        `json:"kind"`
	Summary []SummaryItem `json:"summary,omitempty"`
	Table   *ReportTable  `json:"table,omitempty"`
	Series  []SeriesPoint `json:"series,omitempty"`
}

type ReportResponse struct {
	Title       string          `json:"title"`
	GeneratedAt string          `json:"generated_at"`
	Sections    []ReportSection `json:"sections"`
}
