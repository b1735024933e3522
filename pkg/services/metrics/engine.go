package metrics

import (
	"fmt"
	"math"

	"github.com/de-tools/churn-atlas/pkg/models/domain"
)

// Engine computes scalar KPIs over the full record collection. All methods
// are pure; the only failure mode is an empty collection.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// roundTo rounds half away from zero at the given number of decimals. Every
// percentage and monetary value in the engines uses this rule.
func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}

// KPIs returns the headline metrics. ErrEmptyDataset is reported for a zero
// record collection instead of dividing by zero.
func (e *Engine) KPIs(records []domain.CustomerRecord) (*domain.KPISet, error) {
	total := len(records)
	if total == 0 {
		return nil, fmt.Errorf("%w: no records to aggregate", domain.ErrEmptyDataset)
	}

	churnCount := 0
	var monthlySum, totalSum float64
	for _, r := range records {
		if r.Churned {
			churnCount++
		}
		monthlySum += r.MonthlyCharges
		totalSum += r.TotalCharges
	}

	return &domain.KPISet{
		TotalCustomers:  total,
		ChurnRate:       roundTo(float64(churnCount)/float64(total)*100, 2),
		ARPU:            roundTo(monthlySum/float64(total), 2),
		CLV:             roundTo(totalSum/float64(total), 2),
		ChurnCount:      churnCount,
		ActiveCustomers: total - churnCount,
	}, nil
}

// Overview summarizes an optionally filtered slice of the base and counts
// the contract, internet-service and payment-method distributions.
func (e *Engine) Overview(records []domain.CustomerRecord, filter domain.OverviewFilter) (*domain.Overview, error) {
	filtered := records
	switch filter.CustomerType {
	case "churned":
		filtered = filterRecords(records, func(r domain.CustomerRecord) bool { return r.Churned })
	case "active":
		filtered = filterRecords(records, func(r domain.CustomerRecord) bool { return !r.Churned })
	}

	total := len(filtered)
	if total == 0 {
		return nil, fmt.Errorf("%w: no records match the overview filter", domain.ErrEmptyDataset)
	}

	overview := &domain.Overview{
		TotalCustomers:    total,
		ByContract:        make(map[string]int),
		ByInternetService: make(map[string]int),
		ByPaymentMethod:   make(map[string]int),
	}

	var tenureSum, monthlySum, totalSum float64
	for _, r := range filtered {
		if r.Churned {
			overview.ChurnedCustomers++
		}
		tenureSum += float64(r.Tenure)
		monthlySum += r.MonthlyCharges
		totalSum += r.TotalCharges
		overview.ByContract[string(r.Contract)]++
		overview.ByInternetService[string(r.InternetService)]++
		overview.ByPaymentMethod[r.PaymentMethod]++
	}

	overview.ActiveCustomers = total - overview.ChurnedCustomers
	overview.ChurnRate = roundTo(float64(overview.ChurnedCustomers)/float64(total)*100, 2)
	overview.AverageTenure = roundTo(tenureSum/float64(total), 1)
	overview.AverageMonthlyCharges = roundTo(monthlySum/float64(total), 2)
	overview.TotalRevenue = roundTo(totalSum, 2)

	return overview, nil
}

func filterRecords(records []domain.CustomerRecord, keep func(domain.CustomerRecord) bool) []domain.CustomerRecord {
	result := make([]domain.CustomerRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}
