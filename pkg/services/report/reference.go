package report

import "github.com/de-tools/churn-atlas/pkg/models/domain"

// Static reference data for the assembled report. These constants are
// editorial content, deliberately decoupled from the live engines: the
// segmentation shares are illustrative narrative figures, not the
// SegmentationEngine output for the current dataset, and the twelve-point
// churn curve is the stock trend illustration used when no month-level data
// exists. Reconciling them with live output is a product decision, not a
// code cleanup.

type segmentShare struct {
	Name            string
	Share           string
	Characteristics string
	Action          string
}

var segmentShares = []segmentShare{
	{Name: "Premium Users", Share: "15%", Characteristics: "High ARPU, loyal", Action: "VIP program"},
	{Name: "Heavy Data Users", Share: "22%", Characteristics: "High data usage", Action: "Fiber upgrade"},
	{Name: "Voice Only", Share: "18%", Characteristics: "Phone service only", Action: "Cross-sell internet"},
	{Name: "Low ARPU", Share: "20%", Characteristics: "Tight budget", Action: "Targeted promotions"},
	{Name: "At-Risk", Share: "13%", Characteristics: "Churn risk", Action: "Proactive retention"},
	{Name: "Loyal Base", Share: "12%", Characteristics: "Loyal customers", Action: "Loyalty program"},
}

var monthlyChurnSeries = []domain.SeriesPoint{
	{Label: "Jan", Value: 18.5},
	{Label: "Feb", Value: 17.8},
	{Label: "Mar", Value: 19.2},
	{Label: "Apr", Value: 18.1},
	{Label: "May", Value: 17.5},
	{Label: "Jun", Value: 18.8},
	{Label: "Jul", Value: 19.5},
	{Label: "Aug", Value: 18.3},
	{Label: "Sep", Value: 17.9},
	{Label: "Oct", Value: 18.6},
	{Label: "Nov", Value: 19.1},
	{Label: "Dec", Value: 18.3},
}

type recommendationRow struct {
	Priority string
	Action   string
	Impact   string
}

var recommendationRows = []recommendationRow{
	{Priority: "High", Action: "Retention program for At-Risk customers", Impact: "-3% churn"},
	{Priority: "High", Action: "Engagement campaign for new customers", Impact: "+15% retention"},
	{Priority: "Medium", Action: "Upsell offers for Low ARPU customers", Impact: "+10% ARPU"},
	{Priority: "Medium", Action: "VIP program for Premium Users", Impact: "+5% satisfaction"},
}
