package domain

// SegmentProfile is the static description of a customer segment. It never
// depends on the live dataset.
type SegmentProfile struct {
	Name            string
	Characteristics []string
	Actions         []string
	Color           string
}

// Segment is a profile evaluated against the live dataset. Segments may
// overlap, so percentages across segments do not sum to 100.
type Segment struct {
	SegmentProfile
	Percentage float64 // percent of the full base, 1 decimal
	Count      int
}
