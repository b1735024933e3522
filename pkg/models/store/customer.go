package store

// CustomerRow is the persisted shape of one customer record. String fields
// keep the raw dataset vocabulary ("Yes"/"No", "Fiber optic"); cleaning to
// domain types happens in the adapters.
type CustomerRow struct {
	CustomerID       string
	Gender           string
	SeniorCitizen    bool
	Partner          string
	Dependents       string
	Tenure           int
	PhoneService     string
	MultipleLines    string
	InternetService  string
	OnlineSecurity   string
	OnlineBackup     string
	DeviceProtection string
	TechSupport      string
	StreamingTV      string
	StreamingMovies  string
	Contract         string
	PaperlessBilling string
	PaymentMethod    string
	MonthlyCharges   float64
	TotalCharges     float64
	Churn            bool
}
