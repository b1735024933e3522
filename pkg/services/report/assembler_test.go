package report

import (
	"testing"
	"time"

	"github.com/de-tools/churn-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() Input {
	return Input{
		GeneratedAt: time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
		KPIs: domain.KPISet{
			TotalCustomers:  7043,
			ChurnCount:      1869,
			ActiveCustomers: 5174,
			ChurnRate:       26.54,
			ARPU:            64.76,
			CLV:             2283.3,
		},
		ContractDistribution: []domain.SeriesPoint{
			{Label: "Month-to-month", Value: 3875},
			{Label: "One year", Value: 1473},
			{Label: "Two year", Value: 1695},
		},
	}
}

func TestAssembler_Assemble(t *testing.T) {
	assembler := NewAssembler()

	doc := assembler.Assemble(sampleInput())

	assert.Equal(t, DefaultTitle, doc.Title)
	assert.Equal(t, "2026-03-14 09:30", doc.GeneratedAt)

	titles := make([]string, 0, len(doc.Sections))
	kinds := make([]domain.SectionKind, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		titles = append(titles, s.Title)
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []string{
		"Executive Summary",
		"Key Performance Indicators",
		"Customer Segmentation",
		"Churn Evolution (12 months)",
		"Contract Distribution",
		"Recommendations",
	}, titles)
	assert.Equal(t, []domain.SectionKind{
		domain.SectionSummary,
		domain.SectionTable,
		domain.SectionTable,
		domain.SectionSeries,
		domain.SectionSeries,
		domain.SectionTable,
	}, kinds)
}

func TestAssembler_Assemble_CustomTitle(t *testing.T) {
	assembler := NewAssembler()

	in := sampleInput()
	in.Title = "Q1 Churn Review"
	doc := assembler.Assemble(in)

	assert.Equal(t, "Q1 Churn Review", doc.Title)
}

func TestAssembler_ExecutiveSummary(t *testing.T) {
	assembler := NewAssembler()

	doc := assembler.Assemble(sampleInput())
	summary := doc.Sections[0]

	require.Len(t, summary.Summary, 4)
	assert.Equal(t, domain.SummaryItem{Name: "Customer base", Value: "7043 customers"}, summary.Summary[0])
	assert.Equal(t, domain.SummaryItem{Name: "Current churn rate", Value: "26.54%"}, summary.Summary[1])
	assert.Equal(t, domain.SummaryItem{Name: "Average revenue per user", Value: "64.76"}, summary.Summary[2])
	assert.Equal(t, domain.SummaryItem{Name: "Active customers", Value: "5174"}, summary.Summary[3])
}

func TestAssembler_KPITable(t *testing.T) {
	assembler := NewAssembler()

	doc := assembler.Assemble(sampleInput())
	table := doc.Sections[1].Table

	require.NotNil(t, table)
	assert.Equal(t, []string{"Total Customers", "Churn Rate", "ARPU", "Average CLV"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"7043", "26.54%", "64.76", "2283.30"}, table.Rows[0])
}

func TestAssembler_ReferenceSections(t *testing.T) {
	assembler := NewAssembler()

	doc := assembler.Assemble(sampleInput())

	t.Run("segmentation shares are the editorial figures", func(t *testing.T) {
		table := doc.Sections[2].Table
		require.NotNil(t, table)
		require.Len(t, table.Rows, 6)

		shares := make([]string, 0, len(table.Rows))
		for _, row := range table.Rows {
			shares = append(shares, row[1])
		}
		assert.Equal(t, []string{"15%", "22%", "18%", "20%", "13%", "12%"}, shares)
	})

	t.Run("churn trend carries the fixed twelve-point series", func(t *testing.T) {
		series := doc.Sections[3].Series
		require.Len(t, series, 12)
		assert.Equal(t, domain.SeriesPoint{Label: "Jan", Value: 18.5}, series[0])
		assert.Equal(t, domain.SeriesPoint{Label: "Dec", Value: 18.3}, series[11])
	})

	t.Run("recommendations keep priority order", func(t *testing.T) {
		table := doc.Sections[5].Table
		require.NotNil(t, table)
		require.Len(t, table.Rows, 4)
		assert.Equal(t, "High", table.Rows[0][0])
		assert.Equal(t, "Medium", table.Rows[3][0])
	})
}

func TestAssembler_ContractDistributionPassthrough(t *testing.T) {
	assembler := NewAssembler()

	in := sampleInput()
	doc := assembler.Assemble(in)
	series := doc.Sections[4].Series

	assert.Equal(t, in.ContractDistribution, series)

	// The section owns its slice; mutating it must not leak into the input.
	series[0].Value = 0
	assert.Equal(t, 3875.0, in.ContractDistribution[0].Value)
}
