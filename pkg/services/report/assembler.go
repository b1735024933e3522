package report

import (
	"fmt"
	"time"

	"github.com/de-tools/churn-atlas/pkg/models/domain"
)

const DefaultTitle = "Telco Analytics Report"

// Input carries the live aggregates the assembler combines with the static
// reference data. ContractDistribution keeps domain.ContractTypes order.
type Input struct {
	Title                string
	GeneratedAt          time.Time
	KPIs                 domain.KPISet
	ContractDistribution []domain.SeriesPoint
}

// Assembler composes the multi-section report document. It owns section
// order; callers render the returned tree however they like.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

func (a *Assembler) Assemble(in Input) domain.Report {
	title := in.Title
	if title == "" {
		title = DefaultTitle
	}

	return domain.Report{
		Title:       title,
		GeneratedAt: in.GeneratedAt.Format("2006-01-02 15:04"),
		Sections: []domain.ReportSection{
			executiveSummary(in.KPIs),
			kpiTable(in.KPIs),
			segmentationTable(),
			churnTrendSeries(),
			contractDistribution(in.ContractDistribution),
			recommendationsTable(),
		},
	}
}

func executiveSummary(kpis domain.KPISet) domain.ReportSection {
	return domain.ReportSection{
		Title: "Executive Summary",
		Kind:  domain.SectionSummary,
		Summary: []domain.SummaryItem{
			{Name: "Customer base", Value: fmt.Sprintf("%d customers", kpis.TotalCustomers)},
			{Name: "Current churn rate", Value: fmt.Sprintf("%.2f%%", kpis.ChurnRate)},
			{Name: "Average revenue per user", Value: fmt.Sprintf("%.2f", kpis.ARPU)},
			{Name: "Active customers", Value: fmt.Sprintf("%d", kpis.ActiveCustomers)},
		},
	}
}

func kpiTable(kpis domain.KPISet) domain.ReportSection {
	return domain.ReportSection{
		Title: "Key Performance Indicators",
		Kind:  domain.SectionTable,
		Table: &domain.ReportTable{
			Headers: []string{"Total Customers", "Churn Rate", "ARPU", "Average CLV"},
			Rows: [][]string{{
				fmt.Sprintf("%d", kpis.TotalCustomers),
				fmt.Sprintf("%.2f%%", kpis.ChurnRate),
				fmt.Sprintf("%.2f", kpis.ARPU),
				fmt.Sprintf("%.2f", kpis.CLV),
			}},
		},
	}
}

func segmentationTable() domain.ReportSection {
	rows := make([][]string, 0, len(segmentShares))
	for _, s := range segmentShares {
		rows = append(rows, []string{s.Name, s.Share, s.Characteristics, s.Action})
	}
	return domain.ReportSection{
		Title: "Customer Segmentation",
		Kind:  domain.SectionTable,
		Table: &domain.ReportTable{
			Headers: []string{"Segment", "Share", "Characteristics", "Actions"},
			Rows:    rows,
		},
	}
}

func churnTrendSeries() domain.ReportSection {
	return domain.ReportSection{
		Title:  "Churn Evolution (12 months)",
		Kind:   domain.SectionSeries,
		Series: append([]domain.SeriesPoint{}, monthlyChurnSeries...),
	}
}

func contractDistribution(points []domain.SeriesPoint) domain.ReportSection {
	return domain.ReportSection{
		Title:  "Contract Distribution",
		Kind:   domain.SectionSeries,
		Series: append([]domain.SeriesPoint{}, points...),
	}
}

func recommendationsTable() domain.ReportSection {
	rows := make([][]string, 0, len(recommendationRows))
	for _, r := range recommendationRows {
		rows = append(rows, []string{r.Priority, r.Action, r.Impact})
	}
	return domain.ReportSection{
		Title: "Recommendations",
		Kind:  domain.SectionTable,
		Table: &domain.ReportTable{
			Headers: []string{"Priority", "Action", "Expected Impact"},
			Rows:    rows,
		},
	}
}
