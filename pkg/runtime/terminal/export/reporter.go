package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/churn-atlas/pkg/models/domain"
)

type TableConfig struct {
	CellWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{CellWidth: 28}
}

// Reporter renders an assembled report document as formatted terminal text.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"row": func(cells []string) string {
			var b strings.Builder
			for _, cell := range cells {
				fmt.Fprintf(&b, "| %-*s ", c.config.CellWidth, truncate(cell, c.config.CellWidth))
			}
			b.WriteString("|")
			return b.String()
		},
		"separator": func(n int) string {
			cell := strings.Repeat("-", c.config.CellWidth+2)
			return "+" + strings.Repeat(cell+"+", n)
		},
		"bar": func(value float64, max float64) string {
			if max <= 0 {
				return ""
			}
			width := int(value / max * 40)
			return strings.Repeat("#", width)
		},
		"seriesMax": seriesMax,
	}

	tmpl := `
{{.Title}}
Generated: {{.GeneratedAt}}
{{range .Sections}}
=== {{.Title}} ===
{{- if .Summary}}
{{- range .Summary}}
{{.Name}}: {{.Value}}
{{- end}}
{{- end}}
{{- if .Table}}
{{separator (len .Table.Headers)}}
{{row .Table.Headers}}
{{separator (len .Table.Headers)}}
{{- range .Table.Rows}}
{{row .}}
{{- end}}
{{separator (len .Table.Headers)}}
{{- end}}
{{- if .Series}}
{{- $max := seriesMax .Series}}
{{- range .Series}}
{{printf "%-12s %8.2f  %s" .Label .Value (bar .Value $max)}}
{{- end}}
{{- end}}
{{end}}
`
	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func seriesMax(points []domain.SeriesPoint) float64 {
	max := 0.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
