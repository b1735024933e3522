package domain

// ContractType is the commitment level of a customer subscription.
type ContractType string

const (
	ContractMonthToMonth ContractType = "Month-to-month"
	ContractOneYear      ContractType = "One year"
	ContractTwoYear      ContractType = "Two year"
)

// ContractTypes lists all contract types in their canonical display order.
var ContractTypes = []ContractType{ContractMonthToMonth, ContractOneYear, ContractTwoYear}

// InternetService is the internet product a customer subscribes to, if any.
type InternetService string

const (
	InternetNone  InternetService = "No"
	InternetDSL   InternetService = "DSL"
	InternetFiber InternetService = "Fiber optic"
)

// CustomerRecord is one cleaned row of the customer dataset. Records are
// immutable once loaded; the engines only ever read them.
type CustomerRecord struct {
	ID               string
	Gender           string
	SeniorCitizen    bool
	Partner          bool
	Dependents       bool
	Tenure           int // months
	PhoneService     bool
	MultipleLines    string
	InternetService  InternetService
	OnlineSecurity   string
	OnlineBackup     string
	DeviceProtection string
	TechSupport      string
	StreamingTV      string
	StreamingMovies  string
	Contract         ContractType
	PaperlessBilling bool
	PaymentMethod    string
	MonthlyCharges   float64
	TotalCharges     float64 // missing source values coerced to 0
	Churned          bool
}
