package adapters

import (
	"github.com/de-tools/churn-atlas/pkg/models/domain"
	"github.com/de-tools/churn-atlas/pkg/models/store"
)

func MapStoreCustomerToDomain(r store.CustomerRow) domain.CustomerRecord {
	return domain.CustomerRecord{
		ID:               r.CustomerID,
		Gender:           r.Gender,
		SeniorCitizen:    r.SeniorCitizen,
		Partner:          r.Partner == "Yes",
		Dependents:       r.Dependents == "Yes",
		Tenure:           r.Tenure,
		PhoneService:     r.PhoneService == "Yes",
		MultipleLines:    r.MultipleLines,
		InternetService:  domain.InternetService(r.InternetService),
		OnlineSecurity:   r.OnlineSecurity,
		OnlineBackup:     r.OnlineBackup,
		DeviceProtection: r.DeviceProtection,
		TechSupport:      r.TechSupport,
		StreamingTV:      r.StreamingTV,
		StreamingMovies:  r.StreamingMovies,
		Contract:         domain.ContractType(r.Contract),
		PaperlessBilling: r.PaperlessBilling == "Yes",
		PaymentMethod:    r.PaymentMethod,
		MonthlyCharges:   r.MonthlyCharges,
		TotalCharges:     r.TotalCharges,
		Churned:          r.Churn,
	}
}

func MapStoreCustomersToDomain(rows []store.CustomerRow) []domain.CustomerRecord {
	records := make([]domain.CustomerRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, MapStoreCustomerToDomain(r))
	}
	return records
}
