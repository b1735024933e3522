package trends

import (
	"fmt"
	"math"
	"sort"

	"github.com/de-tools/churn-atlas/pkg/models/domain"
)

// tenureBucket is a half-open [Lo, Hi) tenure range. The final bucket has no
// upper bound: any tenure beyond the nominal 72-month horizon is counted in
// "61-72" by policy rather than dropped.
type tenureBucket struct {
	Label string
	Lo    int
	Hi    int // exclusive; <0 means unbounded
}

var tenureBuckets = []tenureBucket{
	{Label: "0-6", Lo: 0, Hi: 6},
	{Label: "7-12", Lo: 6, Hi: 12},
	{Label: "13-24", Lo: 12, Hi: 24},
	{Label: "25-36", Lo: 24, Hi: 36},
	{Label: "37-48", Lo: 36, Hi: 48},
	{Label: "49-60", Lo: 48, Hi: 60},
	{Label: "61-72", Lo: 60, Hi: -1},
}

// revenueTier is a half-open monthly-charge range; the Enterprise tier
// absorbs charges beyond its nominal 120 upper edge, mirroring the tenure
// overflow policy.
type revenueTier struct {
	Label string
	Lo    float64
	Hi    float64 // exclusive; <0 means unbounded
}

var revenueTiers = []revenueTier{
	{Label: "Basic", Lo: 0, Hi: 30},
	{Label: "Standard", Lo: 30, Hi: 50},
	{Label: "Plus", Lo: 50, Hi: 70},
	{Label: "Premium", Lo: 70, Hi: 90},
	{Label: "Enterprise", Lo: 90, Hi: -1},
}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Aggregator groups records into fixed ordered buckets and computes
// per-bucket aggregates. All methods are pure.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// ChurnByTenure buckets the base by tenure and reports the churn rate per
// bucket. Buckets with zero members are omitted, never emitted as NaN.
func (a *Aggregator) ChurnByTenure(records []domain.CustomerRecord) ([]domain.TrendPoint, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records to bucket", domain.ErrEmptyDataset)
	}

	counts := make([]int, len(tenureBuckets))
	churned := make([]int, len(tenureBuckets))
	for _, r := range records {
		i := tenureBucketIndex(r.Tenure)
		counts[i]++
		if r.Churned {
			churned[i]++
		}
	}

	points := make([]domain.TrendPoint, 0, len(tenureBuckets))
	for i, b := range tenureBuckets {
		if counts[i] == 0 {
			continue
		}
		points = append(points, domain.TrendPoint{
			Label:     b.Label,
			ChurnRate: round2(float64(churned[i]) / float64(counts[i]) * 100),
			Customers: counts[i],
		})
	}
	return points, nil
}

func tenureBucketIndex(tenure int) int {
	for i, b := range tenureBuckets {
		if tenure >= b.Lo && (b.Hi < 0 || tenure < b.Hi) {
			return i
		}
	}
	return len(tenureBuckets) - 1
}

// RevenueBySegment groups the base into monthly-charge tiers and sums the
// accumulated revenue per tier. Empty tiers are omitted.
func (a *Aggregator) RevenueBySegment(records []domain.CustomerRecord) ([]domain.RevenuePoint, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records to bucket", domain.ErrEmptyDataset)
	}

	counts := make([]int, len(revenueTiers))
	revenue := make([]float64, len(revenueTiers))
	for _, r := range records {
		for i, tier := range revenueTiers {
			if r.MonthlyCharges >= tier.Lo && (tier.Hi < 0 || r.MonthlyCharges < tier.Hi) {
				counts[i]++
				revenue[i] += r.TotalCharges
				break
			}
		}
	}

	points := make([]domain.RevenuePoint, 0, len(revenueTiers))
	for i, tier := range revenueTiers {
		if counts[i] == 0 {
			continue
		}
		points = append(points, domain.RevenuePoint{
			Segment:   tier.Label,
			Revenue:   round2(revenue[i]),
			Customers: counts[i],
		})
	}
	return points, nil
}

// RetentionByOffer reports (1 - churn rate) per contract type, in canonical
// contract order. Contract types absent from the base are omitted.
func (a *Aggregator) RetentionByOffer(records []domain.CustomerRecord) ([]domain.RetentionPoint, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records to group", domain.ErrEmptyDataset)
	}

	counts := make(map[domain.ContractType]int)
	churned := make(map[domain.ContractType]int)
	for _, r := range records {
		counts[r.Contract]++
		if r.Churned {
			churned[r.Contract]++
		}
	}

	points := make([]domain.RetentionPoint, 0, len(domain.ContractTypes))
	for _, ct := range domain.ContractTypes {
		if counts[ct] == 0 {
			continue
		}
		rate := (1 - float64(churned[ct])/float64(counts[ct])) * 100
		points = append(points, domain.RetentionPoint{
			Offer:         ct,
			RetentionRate: round2(rate),
			Customers:     counts[ct],
		})
	}
	return points, nil
}

// ChurnReasons attributes churn to contract types and internet products by
// their share among churned customers, sorted descending, top ten.
func (a *Aggregator) ChurnReasons(records []domain.CustomerRecord) ([]domain.ChurnReason, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records to analyze", domain.ErrEmptyDataset)
	}

	churnedTotal := 0
	byContract := make(map[domain.ContractType]int)
	byInternet := make(map[domain.InternetService]int)
	for _, r := range records {
		if !r.Churned {
			continue
		}
		churnedTotal++
		byContract[r.Contract]++
		byInternet[r.InternetService]++
	}
	if churnedTotal == 0 {
		return []domain.ChurnReason{}, nil
	}

	var reasons []domain.ChurnReason
	for _, ct := range domain.ContractTypes {
		if byContract[ct] == 0 {
			continue
		}
		reasons = append(reasons, domain.ChurnReason{
			Reason:     fmt.Sprintf("Contract %s", ct),
			Percentage: round1(float64(byContract[ct]) / float64(churnedTotal) * 100),
			Category:   "Contract",
		})
	}
	for _, svc := range []domain.InternetService{domain.InternetDSL, domain.InternetFiber} {
		if byInternet[svc] == 0 {
			continue
		}
		reasons = append(reasons, domain.ChurnReason{
			Reason:     fmt.Sprintf("Internet %s", svc),
			Percentage: round1(float64(byInternet[svc]) / float64(churnedTotal) * 100),
			Category:   "Service",
		})
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Percentage > reasons[j].Percentage
	})
	if len(reasons) > 10 {
		reasons = reasons[:10]
	}
	return reasons, nil
}

// MonthlyTrends derives a deterministic twelve-month churn trajectory from
// the live base rate: month i carries base + 0.2*i drift. Volume and revenue
// columns are the base's monthly averages, so repeated calls agree exactly.
func (a *Aggregator) MonthlyTrends(records []domain.CustomerRecord) ([]domain.MonthlyTrend, error) {
	total := len(records)
	if total == 0 {
		return nil, fmt.Errorf("%w: no records to project", domain.ErrEmptyDataset)
	}

	churnCount := 0
	var monthlyRevenue float64
	for _, r := range records {
		if r.Churned {
			churnCount++
		}
		monthlyRevenue += r.MonthlyCharges
	}
	baseRate := float64(churnCount) / float64(total) * 100

	points := make([]domain.MonthlyTrend, 0, len(monthLabels))
	for i, month := range monthLabels {
		points = append(points, domain.MonthlyTrend{
			Month:            month,
			ChurnRate:        round2(baseRate + 0.2*float64(i)),
			NewCustomers:     total / 12,
			ChurnedCustomers: churnCount / 12,
			Revenue:          round2(monthlyRevenue),
		})
	}
	return points, nil
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
