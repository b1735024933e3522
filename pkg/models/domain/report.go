package domain

// SectionKind discriminates how a report section carries its payload.
type SectionKind string

const (
	SectionSummary SectionKind = "summary"
	SectionTable   SectionKind = "table"
	SectionSeries  SectionKind = "series"
)

// Report is an assembled multi-section analytics document. The assembler
// returns a fully-owned tree; rendering it (PDF, terminal, JSON) is a
// consumer concern.
type Report struct {
	Title       string
	GeneratedAt string
	Sections    []ReportSection
}

// ReportSection is one ordered block of the report. Exactly one of Summary,
// Table or Series is populated, matching Kind.
type ReportSection struct {
	Title   string
	Kind    SectionKind
	Summary []SummaryItem
	Table   *ReportTable
	Series  []SeriesPoint
}

// SummaryItem is a single labelled value in a summary section.
type SummaryItem struct {
	Name  string
	Value string
}

// ReportTable is an ordered grid of cells under fixed headers.
type ReportTable struct {
	Headers []string
	Rows    [][]string
}

// SeriesPoint is one (label, value) pair of a chart-ready numeric series.
type SeriesPoint struct {
	Label string
	Value float64
}
