package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/repair-atlas/pkg/models/domain"
)

type TableConfig struct {
	WorkWidth int
	CostWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		WorkWidth: 30,
		CostWidth: 14,
	}
}

// Reporter prints cost profiles and portfolio summaries to the console
// in a formatted text form.
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

type profileView struct {
	domain.CostProfile
	Rows []profileRow
}

type profileRow struct {
	Year       int
	Work       string
	Cost       float64
	Cumulative float64
}

// HandleProfile prints one item's 15-year cost table with cumulative
// totals and the horizon rollups.
func (c *Reporter) HandleProfile(profile domain.CostProfile) error {
	view := profileView{CostProfile: profile}
	var cumulative float64
	for _, row := range profile.YearlySeries {
		cumulative += row.Cost
		view.Rows = append(view.Rows, profileRow{
			Year:       row.Year,
			Work:       row.ScheduledWork,
			Cost:       row.Cost,
			Cumulative: cumulative,
		})
	}

	funcMap := template.FuncMap{
		"formatRow": func(year any, work string, cost, cumulative any) string {
			return fmt.Sprintf("| %-5v | %-*s | %*v | %*v |",
				year,
				c.config.WorkWidth, work,
				c.config.CostWidth, cost,
				c.config.CostWidth, cumulative)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", 7),
				strings.Repeat("-", c.config.WorkWidth+2),
				strings.Repeat("-", c.config.CostWidth+2),
				strings.Repeat("-", c.config.CostWidth+2))
		},
	}

	tmpl := `
{{.Label}} (severity {{.Severity}}/5, {{.Category}})

{{separator}}
{{formatRow "Year" "Scheduled Work" "Cost (EUR)" "Cumulative"}}
{{separator}}
{{range .Rows}}{{formatRow .Year .Work (printf "%.0f" .Cost) (printf "%.0f" .Cumulative)}}
{{end}}{{separator}}

Horizons:{{range .Horizons}} {{.Year}}y = EUR {{printf "%.0f" .Total}}{{end}}

{{.Summary}}
`

	t, err := template.New("profile").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}

// HandlePortfolio prints the portfolio rollup.
func (c *Reporter) HandlePortfolio(report *domain.PortfolioReport) error {
	if report == nil {
		_, err := fmt.Fprintln(c.writer, "No photos processed.")
		return err
	}

	tmpl := `
=== Portfolio ===
{{range .Totals}}
{{.Year}}-year total: EUR {{printf "%.0f" .Total}}{{end}}

Top cost drivers:
{{range .TopSystems}}
- {{.Label}}: EUR {{printf "%.0f" .Value}}{{end}}
`

	t, err := template.New("portfolio").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
