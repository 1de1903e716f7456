package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zlodag/leave-planner/internal/config"
	"github.com/zlodag/leave-planner/internal/db"
	"github.com/zlodag/leave-planner/internal/extract"
	"github.com/zlodag/leave-planner/internal/logging"
	"github.com/zlodag/leave-planner/internal/report"
	"github.com/zlodag/leave-planner/internal/roster"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "leavereport",
	Short: "Extract SMO leave bookings from the rostering database into a report",
	Long: `leavereport connects to the departmental rostering database, finds
consultant radiologists (SMOs) by their shift assignments, pulls their leave
bookings for the forward window, and writes a JSON report plus a console
summary. One invocation is one run; nothing is retried or kept between runs.`,
	Version:       "1.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	_ = godotenv.Load()
	cfg = config.Load()

	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&cfg.DatabaseURL, "dsn", cfg.DatabaseURL, "rostering database URL (or set DATABASE_URL)")
	rootCmd.Flags().StringVarP(&cfg.OutputPath, "out", "o", cfg.OutputPath, "JSON report path")
	rootCmd.Flags().StringVar(&cfg.PDFPath, "pdf", cfg.PDFPath, "also render a PDF summary to this path")
	rootCmd.Flags().IntVarP(&cfg.MonthsAhead, "months", "m", cfg.MonthsAhead, "window length in months from the run date")
	rootCmd.Flags().BoolVar(&cfg.IncludePending, "include-pending", cfg.IncludePending, "include pending and waitlisted requests")
	rootCmd.Flags().IntVar(&cfg.MinSMOShifts, "min-smo-shifts", cfg.MinSMOShifts, "shift count threshold for SMO qualification")
	rootCmd.Flags().StringVar(&cfg.SMOMarker, "smo-marker", cfg.SMOMarker, "substring identifying SMO shifts")
	rootCmd.Flags().StringSliceVar(&cfg.LeavePatterns, "leave-pattern", cfg.LeavePatterns, "shift name patterns counted as leave")
	rootCmd.Flags().StringVar(&cfg.DayPolicy, "policy", cfg.DayPolicy, "leave day policy: calendar or flat")
	rootCmd.Flags().IntVar(&cfg.TopN, "top", cfg.TopN, "entries in the top leave takers section")
	rootCmd.Flags().DurationVar(&cfg.QueryTimeout, "timeout", cfg.QueryTimeout, "connection and extraction query timeout")
	rootCmd.Flags().StringVar(&cfg.AsOf, "as-of", cfg.AsOf, "run date override (YYYY-MM-DD)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	runDate, err := cfg.RunDate(time.Now())
	if err != nil {
		return fmt.Errorf("resolve run date: %w", err)
	}
	window := roster.NewWindow(runDate, cfg.MonthsAhead)

	policy, err := report.ParsePolicy(cfg.DayPolicy)
	if err != nil {
		return err
	}

	logger.Info("starting leave extraction",
		zap.String("window_start", window.Start.Format("2006-01-02")),
		zap.String("window_end", window.End.Format("2006-01-02")),
		zap.Bool("include_pending", cfg.IncludePending),
		zap.String("day_policy", policy.Name()))

	connectCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()
	conn, err := db.Connect(connectCtx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to rostering database: %w", err)
	}
	defer conn.Close()

	params := extract.Params{
		Window:         window,
		IncludePending: cfg.IncludePending,
		LeavePatterns:  cfg.LeavePatterns,
		SMOMarker:      cfg.SMOMarker,
		MinSMOShifts:   cfg.MinSMOShifts,
	}

	queryCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()
	records, stats, err := extract.New(conn, logger).Run(queryCtx, params)
	if err != nil {
		return err
	}
	logger.Info("extraction complete",
		zap.Int("rows_scanned", stats.RowsScanned),
		zap.Int("rows_skipped", stats.RowsSkipped),
		zap.Duration("duration", stats.Duration))

	doc := report.Build(report.BuildInput{
		Source:      sourceName(cfg.DatabaseURL),
		Params:      params,
		MonthsAhead: cfg.MonthsAhead,
		Policy:      policy,
		Records:     records,
		Stats:       stats,
		GeneratedAt: time.Now().UTC(),
	})

	reportLogger := logger.Named("report")
	if err := report.WriteJSON(doc, cfg.OutputPath); err != nil {
		return err
	}
	reportLogger.Info("report written",
		zap.String("path", cfg.OutputPath),
		zap.Int("staff", doc.Metadata.StaffCount),
		zap.Int("records", doc.Metadata.RecordCount))

	if cfg.PDFPath != "" {
		if err := report.WritePDF(doc, cfg.PDFPath); err != nil {
			return err
		}
		reportLogger.Info("pdf written", zap.String("path", cfg.PDFPath))
	}

	fmt.Println()
	report.WriteConsole(os.Stdout, doc, cfg.TopN)
	return nil
}

// sourceName is the DSN's host and database with credentials stripped, for
// the report metadata.
func sourceName(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Host == "" {
		return "rostering database"
	}
	return parsed.Host + strings.TrimSuffix(parsed.Path, "/")
}
