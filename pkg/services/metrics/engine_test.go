package metrics

import (
	"testing"

	"github.com/de-tools/churn-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(churned bool, monthly, total float64) domain.CustomerRecord {
	return domain.CustomerRecord{
		MonthlyCharges: monthly,
		TotalCharges:   total,
		Churned:        churned,
		Contract:       domain.ContractMonthToMonth,
		PaymentMethod:  "Electronic check",
	}
}

func TestEngine_KPIs(t *testing.T) {
	engine := NewEngine()

	t.Run("aggregates and rounds to two decimals", func(t *testing.T) {
		records := []domain.CustomerRecord{
			record(true, 30, 100),
			record(false, 60, 200),
			record(false, 45, 350),
		}

		kpis, err := engine.KPIs(records)
		require.NoError(t, err)

		assert.Equal(t, 3, kpis.TotalCustomers)
		assert.Equal(t, 1, kpis.ChurnCount)
		assert.Equal(t, 2, kpis.ActiveCustomers)
		assert.Equal(t, 33.33, kpis.ChurnRate) // 1/3 * 100
		assert.Equal(t, 45.0, kpis.ARPU)
		assert.InDelta(t, 216.67, kpis.CLV, 1e-9) // 650/3
	})

	t.Run("churn count plus active equals total", func(t *testing.T) {
		records := []domain.CustomerRecord{
			record(true, 10, 10),
			record(true, 10, 10),
			record(false, 10, 10),
			record(false, 10, 10),
			record(false, 10, 10),
			record(false, 10, 10),
			record(true, 10, 10),
		}

		kpis, err := engine.KPIs(records)
		require.NoError(t, err)

		assert.Equal(t, kpis.TotalCustomers, kpis.ChurnCount+kpis.ActiveCustomers)
		assert.Equal(t, 42.86, kpis.ChurnRate) // 3/7 * 100 = 42.857...
	})

	t.Run("empty collection reports EmptyDataset, never panics", func(t *testing.T) {
		kpis, err := engine.KPIs(nil)
		assert.Nil(t, kpis)
		assert.ErrorIs(t, err, domain.ErrEmptyDataset)
	})
}

func TestEngine_Overview(t *testing.T) {
	engine := NewEngine()

	records := []domain.CustomerRecord{
		{Tenure: 10, MonthlyCharges: 40, TotalCharges: 400, Churned: true,
			Contract: domain.ContractMonthToMonth, InternetService: domain.InternetFiber,
			PaymentMethod: "Electronic check"},
		{Tenure: 30, MonthlyCharges: 60, TotalCharges: 1800, Churned: false,
			Contract: domain.ContractTwoYear, InternetService: domain.InternetDSL,
			PaymentMethod: "Mailed check"},
		{Tenure: 20, MonthlyCharges: 80, TotalCharges: 1600, Churned: false,
			Contract: domain.ContractMonthToMonth, InternetService: domain.InternetFiber,
			PaymentMethod: "Electronic check"},
	}

	t.Run("unfiltered overview", func(t *testing.T) {
		overview, err := engine.Overview(records, domain.OverviewFilter{})
		require.NoError(t, err)

		assert.Equal(t, 3, overview.TotalCustomers)
		assert.Equal(t, 1, overview.ChurnedCustomers)
		assert.Equal(t, 2, overview.ActiveCustomers)
		assert.Equal(t, 33.33, overview.ChurnRate)
		assert.Equal(t, 20.0, overview.AverageTenure)
		assert.Equal(t, 60.0, overview.AverageMonthlyCharges)
		assert.Equal(t, 3800.0, overview.TotalRevenue)
		assert.Equal(t, map[string]int{"Month-to-month": 2, "Two year": 1}, overview.ByContract)
		assert.Equal(t, map[string]int{"Fiber optic": 2, "DSL": 1}, overview.ByInternetService)
		assert.Equal(t, map[string]int{"Electronic check": 2, "Mailed check": 1}, overview.ByPaymentMethod)
	})

	t.Run("churned filter", func(t *testing.T) {
		overview, err := engine.Overview(records, domain.OverviewFilter{CustomerType: "churned"})
		require.NoError(t, err)

		assert.Equal(t, 1, overview.TotalCustomers)
		assert.Equal(t, 100.0, overview.ChurnRate)
	})

	t.Run("filter matching nothing reports EmptyDataset", func(t *testing.T) {
		active := []domain.CustomerRecord{record(false, 10, 10)}
		overview, err := engine.Overview(active, domain.OverviewFilter{CustomerType: "churned"})
		assert.Nil(t, overview)
		assert.ErrorIs(t, err, domain.ErrEmptyDataset)
	})
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		expected float64
	}{
		{value: 33.333333, decimals: 2, expected: 33.33},
		{value: 66.666666, decimals: 2, expected: 66.67},
		{value: 42.857142, decimals: 2, expected: 42.86},
		{value: 12.25, decimals: 1, expected: 12.3}, // half rounds away from zero
		{value: -12.25, decimals: 1, expected: -12.3},
		{value: 100.0, decimals: 2, expected: 100.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, roundTo(tt.value, tt.decimals), "roundTo(%v, %d)", tt.value, tt.decimals)
	}
}
