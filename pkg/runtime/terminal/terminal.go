package terminal

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/churn-atlas/pkg/adapters"
	"github.com/de-tools/churn-atlas/pkg/models/domain"
	"github.com/de-tools/churn-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/churn-atlas/pkg/services/metrics"
	"github.com/de-tools/churn-atlas/pkg/services/report"
	"github.com/de-tools/churn-atlas/pkg/store/csvsource"
	"github.com/spf13/cobra"
)

// CLI renders the analytics report for a dataset file without a server.
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

type Options struct {
	Output io.Writer
}

func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "churn-atlas",
		Short: "Customer churn analytics tool",
	}

	cmd.AddCommand(cli.newReportCmd())

	return cmd
}

func (cli *CLI) newReportCmd() *cobra.Command {
	var datasetPath string
	var title string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Assemble and print the analytics report for a dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source := csvsource.NewFileSource(datasetPath)
			rows, err := source.ReadAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}
			records := adapters.MapStoreCustomersToDomain(rows)

			kpis, err := metrics.NewEngine().KPIs(records)
			if err != nil {
				return fmt.Errorf("compute KPIs: %w", err)
			}

			byContract := make(map[domain.ContractType]int)
			for _, r := range records {
				byContract[r.Contract]++
			}
			distribution := make([]domain.SeriesPoint, 0, len(domain.ContractTypes))
			for _, ct := range domain.ContractTypes {
				distribution = append(distribution, domain.SeriesPoint{
					Label: string(ct),
					Value: float64(byContract[ct]),
				})
			}

			doc := report.NewAssembler().Assemble(report.Input{
				Title:                title,
				GeneratedAt:          time.Now().UTC(),
				KPIs:                 *kpis,
				ContractDistribution: distribution,
			})
			return cli.reporter.Handle(&doc)
		},
	}

	cmd.Flags().StringVarP(&datasetPath, "dataset", "d", "data/Telco-Customer-Churn.csv", "Path to the customer dataset CSV")
	cmd.Flags().StringVarP(&title, "title", "t", report.DefaultTitle, "Report title")

	return cmd
}
