package domain

// KPISet holds the headline metrics computed over the full customer base.
type KPISet struct {
	TotalCustomers  int
	ChurnRate       float64 // percent, 2 decimals
	ARPU            float64 // mean monthly charge, 2 decimals
	CLV             float64 // mean total charge, 2 decimals
	ChurnCount      int
	ActiveCustomers int
}

// TrendPoint is one bucket of a churn trend series.
type TrendPoint struct {
	Label     string
	ChurnRate float64 // percent, 2 decimals
	Customers int
}

// RevenuePoint is one monthly-charge tier with its accumulated revenue.
type RevenuePoint struct {
	Segment   string
	Revenue   float64 // sum of total charges, 2 decimals
	Customers int
}

// RetentionPoint is the retention rate for one contract type.
type RetentionPoint struct {
	Offer         ContractType
	RetentionRate float64 // percent, 2 decimals
	Customers     int
}

// ChurnReason is the share of churned customers attributable to one attribute
// value, e.g. a contract type or internet product.
type ChurnReason struct {
	Reason     string
	Percentage float64 // percent of churned customers, 1 decimal
	Category   string
}

// MonthlyTrend is one simulated month of the churn trajectory. The dataset
// carries no calendar dimension, so the series is derived deterministically
// from the live base churn rate.
type MonthlyTrend struct {
	Month            string
	ChurnRate        float64
	NewCustomers     int
	ChurnedCustomers int
	Revenue          float64
}

// OverviewFilter restricts an analytics overview to a slice of the base.
type OverviewFilter struct {
	CustomerType string // "churned", "active" or empty for all
}

// Overview is the filtered analytics summary plus attribute distributions.
type Overview struct {
	TotalCustomers        int
	ChurnedCustomers      int
	ActiveCustomers       int
	ChurnRate             float64
	AverageTenure         float64
	AverageMonthlyCharges float64
	TotalRevenue          float64
	ByContract            map[string]int
	ByInternetService     map[string]int
	ByPaymentMethod       map[string]int
}
