package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"meanci/adapters/excel"
	"meanci/domain/core"
	"meanci/domain/stats"
	"meanci/internal/analysis"
	"meanci/internal/config"
	"meanci/internal/report"
	"meanci/internal/testkit"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "meanci",
		Short: "Confidence intervals for a population mean via the t-distribution",
	}

	rootCmd.AddCommand(
		newIntervalCmd(cfg),
		newSimulateCmd(cfg),
		newStudyCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes caller mistakes from numerical breakdowns.
func exitCode(err error) int {
	switch {
	case core.IsInvalidInputError(err):
		return 2
	case core.IsNumericalFailureError(err):
		return 3
	default:
		return 1
	}
}

func newIntervalCmd(cfg *config.Config) *cobra.Command {
	var level float64
	var file, column, reportFormat string
	var asJSON, asReport bool

	cmd := &cobra.Command{
		Use:   "interval [comma-separated-values]",
		Short: "Compute a confidence interval for the mean of a sample",
		Long: `Compute the two-sided t-distribution confidence interval for the
population mean, from inline values or a column of an .xlsx/.csv file.

Example: meanci interval 66,36,73,48,81 --level 0.95
Example: meanci interval --file readings.xlsx --column cholesterol`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, source, err := resolveSample(args, file, column)
			if err != nil {
				return err
			}

			ci, err := analysis.MeanIntervalValues(values, level)
			if err != nil {
				return err
			}

			if asReport {
				return printReport(cmd, report.NewAnalysis("Confidence Interval for the Mean", source, ci), reportFormat)
			}
			return printInterval(cmd, ci, asJSON)
		},
	}

	cmd.Flags().Float64Var(&level, "level", cfg.Level, "Confidence level in (0,1)")
	cmd.Flags().StringVar(&file, "file", "", "Read the sample from this .xlsx or .csv file")
	cmd.Flags().StringVar(&column, "column", "", "Column header to read when --file is set")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the interval as JSON")
	cmd.Flags().BoolVar(&asReport, "report", false, "Emit a narrative report instead of plain output")
	cmd.Flags().StringVar(&reportFormat, "format", cfg.ReportFormat, "Report format, md or html (default from MEANCI_REPORT_FORMAT)")

	return cmd
}

func newSimulateCmd(cfg *config.Config) *cobra.Command {
	var level, mu, sigma float64
	var n int
	var seed int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Compute an interval for a seeded synthetic normal sample",
		Long: `Draw a pseudo-random sample from Normal(mu, sigma) and compute its
confidence interval. Deterministic for a fixed seed.

Example: meanci simulate --n 1000 --mu 10 --sigma 2 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			draw, err := testkit.GenerateNormal(testkit.NormalConfig{N: n, Mu: mu, Sigma: sigma, Seed: seed})
			if err != nil {
				return err
			}

			ci, err := analysis.MeanIntervalValues(draw, level)
			if err != nil {
				return err
			}
			return printInterval(cmd, ci, asJSON)
		},
	}

	defaults := testkit.DefaultNormalConfig()
	cmd.Flags().Float64Var(&level, "level", cfg.Level, "Confidence level in (0,1)")
	cmd.Flags().IntVar(&n, "n", defaults.N, "Sample size")
	cmd.Flags().Float64Var(&mu, "mu", defaults.Mu, "Population mean")
	cmd.Flags().Float64Var(&sigma, "sigma", defaults.Sigma, "Population standard deviation")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Random seed for deterministic draws")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the interval as JSON")

	return cmd
}

func newStudyCmd(cfg *config.Config) *cobra.Command {
	var level, mu, sigma float64
	var sizes string
	var resamples int
	var seed, workers int64

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Resampling study of interval width versus sample size",
		Long: `Repeatedly draw samples of each given size from Normal(mu, sigma),
compute each sample's confidence interval, and report the mean interval width
per size. Width shrinks as sample size grows.

Example: meanci study --sizes 10,100,1000 --resamples 200 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := stats.NewConfidenceLevel(level)
			if err != nil {
				return err
			}

			sampleSizes, err := parseInts(sizes)
			if err != nil {
				return fmt.Errorf("invalid --sizes: %w", err)
			}

			results, err := analysis.WidthStudy(cmd.Context(), analysis.StudyConfig{
				SampleSizes: sampleSizes,
				Resamples:   resamples,
				Mu:          mu,
				Sigma:       sigma,
				Seed:        seed,
				Level:       cl,
				Workers:     workers,
			})
			if err != nil {
				return err
			}

			for _, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "n=%-6d resamples=%d mean width=%.4f\n",
					res.SampleSize, res.Resamples, res.MeanWidth)
			}
			return nil
		},
	}

	defaults := analysis.DefaultStudyConfig()
	cmd.Flags().Float64Var(&level, "level", cfg.Level, "Confidence level in (0,1)")
	cmd.Flags().StringVar(&sizes, "sizes", formatInts(defaults.SampleSizes), "Comma-separated sample sizes")
	cmd.Flags().IntVar(&resamples, "resamples", defaults.Resamples, "Resamples per sample size")
	cmd.Flags().Float64Var(&mu, "mu", defaults.Mu, "Population mean")
	cmd.Flags().Float64Var(&sigma, "sigma", defaults.Sigma, "Population standard deviation")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Random seed for deterministic draws")
	cmd.Flags().Int64Var(&workers, "workers", cfg.Workers, "Max concurrent resamples")

	return cmd
}

func resolveSample(args []string, file, column string) ([]float64, string, error) {
	if file != "" {
		if column == "" {
			return nil, "", fmt.Errorf("--column is required with --file")
		}
		values, err := excel.NewColumnReader(file).ReadColumn(column)
		if err != nil {
			return nil, "", err
		}
		return values, fmt.Sprintf("%s (column %q)", file, column), nil
	}

	if len(args) != 1 {
		return nil, "", fmt.Errorf("provide comma-separated values or --file/--column")
	}
	values, err := parseFloats(args[0])
	if err != nil {
		return nil, "", err
	}
	return values, "command line", nil
}

func printInterval(cmd *cobra.Command, ci stats.ConfidenceInterval, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ci)
	}

	est := ci.Estimate
	fmt.Fprintf(out, "n=%d mean=%.4f stddev=%.4f stderr=%.4f df=%d\n",
		est.SampleSize, est.Mean, est.StdDev, est.StandardError, est.DegreesOfFreedom)
	fmt.Fprintf(out, "%.10g%% CI for the mean: (%.4f, %.4f)\n",
		ci.Level.Float()*100, ci.Lower, ci.Upper)
	return nil
}

func printReport(cmd *cobra.Command, a report.Analysis, format string) error {
	switch format {
	case "md":
		fmt.Fprint(cmd.OutOrStdout(), report.Markdown(a))
		return nil
	case "html":
		_, err := cmd.OutOrStdout().Write(report.HTML(a))
		return err
	default:
		return fmt.Errorf("unknown report format %q (use md or html)", format)
	}
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as number: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as integer: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}
