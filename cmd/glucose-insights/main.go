package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/uyouii/glucose-insights/utils"
	"go.uber.org/zap"
)

var (
	dataFile  string
	dataSheet string
	port      int

	valueMin     float64
	valueMax     float64
	startDate    string
	endDate      string
	distribution bool

	rootCmd = &cobra.Command{
		Use:   "glucose-insights",
		Short: "Explore a spreadsheet of glucose readings",
		Long: `glucose-insights loads timestamped glucose readings once and shows
summary statistics and a chart, filterable by value and time range.`,
		SilenceUsage: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the single-page app and the dashboard over HTTP",
		RunE:  runServe, // Defined in cmd_serve.go
	}

	summaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Print the summary statistics for an optional filter",
		RunE:  runSummary, // Defined in cmd_summary.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "readings file (.xlsx, .xlsm or .csv), overrides DATA_FILE")
	rootCmd.PersistentFlags().StringVar(&dataSheet, "sheet", "", "spreadsheet sheet name, overrides DATA_SHEET")

	serveCmd.Flags().IntVar(&port, "port", 0, "listen port, overrides APP_PORT")

	summaryCmd.Flags().Float64Var(&valueMin, "min", 0, "lowest glucose value to keep")
	summaryCmd.Flags().Float64Var(&valueMax, "max", 0, "highest glucose value to keep")
	summaryCmd.Flags().StringVar(&startDate, "start", "", "first day to keep (2006-01-02 or RFC3339)")
	summaryCmd.Flags().StringVar(&endDate, "end", "", "last day to keep, inclusive (2006-01-02 or RFC3339)")
	summaryCmd.Flags().BoolVar(&distribution, "distribution", false, "also print time in range and distribution quantiles")

	rootCmd.AddCommand(serveCmd, summaryCmd)
}

func main() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		utils.GetLogger(ctx).Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
