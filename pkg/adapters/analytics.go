package adapters

import (
	"github.com/de-tools/churn-atlas/pkg/models/api"
	"github.com/de-tools/churn-atlas/pkg/models/domain"
	"golang.org/x/exp/maps"
)

func MapKPISetDomainToApi(k domain.KPISet) api.KPIResponse {
	return api.KPIResponse{
		TotalCustomers:  k.TotalCustomers,
		ChurnRate:       k.ChurnRate,
		ARPU:            k.ARPU,
		CLV:             k.CLV,
		ChurnCount:      k.ChurnCount,
		ActiveCustomers: k.ActiveCustomers,
	}
}

func MapTrendPointsDomainToApi(points []domain.TrendPoint) []api.TrendPoint {
	result := make([]api.TrendPoint, 0, len(points))
	for _, p := range points {
		result = append(result, api.TrendPoint{
			Month:     p.Label,
			ChurnRate: p.ChurnRate,
			Customers: p.Customers,
		})
	}
	return result
}

func MapChurnReasonsDomainToApi(reasons []domain.ChurnReason) []api.ChurnReason {
	result := make([]api.ChurnReason, 0, len(reasons))
	for _, r := range reasons {
		result = append(result, api.ChurnReason{
			Reason:     r.Reason,
			Percentage: r.Percentage,
			Category:   r.Category,
		})
	}
	return result
}

func MapRevenuePointsDomainToApi(points []domain.RevenuePoint) []api.RevenuePoint {
	result := make([]api.RevenuePoint, 0, len(points))
	for _, p := range points {
		result = append(result, api.RevenuePoint{
			Segment:   p.Segment,
			Revenue:   p.Revenue,
			Customers: p.Customers,
		})
	}
	return result
}

func MapRetentionPointsDomainToApi(points []domain.RetentionPoint) []api.RetentionPoint {
	result := make([]api.RetentionPoint, 0, len(points))
	for _, p := range points {
		result = append(result, api.RetentionPoint{
			Offer:         string(p.Offer),
			RetentionRate: p.RetentionRate,
			Customers:     p.Customers,
		})
	}
	return result
}

func MapSegmentDomainToApi(s domain.Segment) api.SegmentInfo {
	return api.SegmentInfo{
		Name:            s.Name,
		Percentage:      s.Percentage,
		Count:           s.Count,
		Characteristics: append([]string{}, s.Characteristics...),
		Actions:         append([]string{}, s.Actions...),
		Color:           s.Color,
	}
}

func MapAssessmentDomainToApi(a domain.RiskAssessment) api.PredictionResponse {
	factors := make(map[string]api.FactorInfo, len(a.Factors))
	for _, f := range a.Factors {
		factors[string(f.Name)] = api.FactorInfo{
			Value:   f.Value,
			Impact:  string(f.Impact),
			Message: f.Message,
		}
	}
	return api.PredictionResponse{
		RiskLevel:       string(a.RiskLevel),
		Probability:     a.Probability,
		Score:           a.Score,
		Recommendations: append([]string{}, a.Recommendations...),
		Factors:         factors,
	}
}

func MapOverviewDomainToApi(o domain.Overview) api.OverviewResponse {
	return api.OverviewResponse{
		Summary: api.OverviewSummary{
			TotalCustomers:        o.TotalCustomers,
			ChurnedCustomers:      o.ChurnedCustomers,
			ActiveCustomers:       o.ActiveCustomers,
			ChurnRate:             o.ChurnRate,
			AverageTenure:         o.AverageTenure,
			AverageMonthlyCharges: o.AverageMonthlyCharges,
			TotalRevenue:          o.TotalRevenue,
		},
		Distribution: api.OverviewDistribution{
			ByContract:        maps.Clone(o.ByContract),
			ByInternetService: maps.Clone(o.ByInternetService),
			ByPaymentMethod:   maps.Clone(o.ByPaymentMethod),
		},
	}
}

func MapMonthlyTrendsDomainToApi(points []domain.MonthlyTrend) []api.MonthlyTrendPoint {
	result := make([]api.MonthlyTrendPoint, 0, len(points))
	for _, p := range points {
		result = append(result, api.MonthlyTrendPoint{
			Month:            p.Month,
			ChurnRate:        p.ChurnRate,
			NewCustomers:     p.NewCustomers,
			ChurnedCustomers: p.ChurnedCustomers,
			Revenue:          p.Revenue,
		})
	}
	return result
}

func MapReportDomainToApi(r domain.Report) api.ReportResponse {
	sections := make([]api.ReportSection, 0, len(r.Sections))
	for _, s := range r.Sections {
		section := api.ReportSection{
			Title: s.Title,
			Kind:  string(s.Kind),
		}
		for _, item := range s.Summary {
			section.Summary = append(section.Summary, api.SummaryItem{Name: item.Name, Value: item.Value})
		}
		if s.Table != nil {
			rows := make([][]string, 0, len(s.Table.Rows))
			for _, row := range s.Table.Rows {
				rows = append(rows, append([]string{}, row...))
			}
			section.Table = &api.ReportTable{
				Headers: append([]string{}, s.Table.Headers...),
				Rows:    rows,
			}
		}
		for _, p := range s.Series {
			section.Series = append(section.Series, api.SeriesPoint{Label: p.Label, Value: p.Value})
		}
		sections = append(sections, section)
	}
	return api.ReportResponse{
		Title:       r.Title,
		GeneratedAt: r.GeneratedAt,
		Sections:    sections,
	}
}
