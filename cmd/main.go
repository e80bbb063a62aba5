package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rishwanthvallala/train-data-analyser/internal/analysis"
	"github.com/rishwanthvallala/train-data-analyser/internal/api"
	"github.com/rishwanthvallala/train-data-analyser/internal/config"
	"github.com/rishwanthvallala/train-data-analyser/internal/db"
	"github.com/rishwanthvallala/train-data-analyser/internal/report"
	"github.com/rishwanthvallala/train-data-analyser/internal/tabular"

	"github.com/spf13/cobra"
)

var (
	dbPath   string
	database *db.Database
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "train-analyser",
		Short: "Train Data Analyser - telemetry export analysis",
		Long: `Analyses vehicle telemetry exports (timestamped distance/speed samples).
Detects stops, samples speed at fixed distances before each stop, extracts
deceleration profiles, and reports trip metrics, served over HTTP or from
the command line.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "Path to the upload-history SQLite database")

	// Add commands
	rootCmd.AddCommand(serverCmd(cfg))
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(statsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initDB initializes database connection
func initDB() error {
	var err error
	database, err = db.New(dbPath)
	return err
}

// serverCmd starts the upload/analysis HTTP server
func serverCmd(cfg config.Config) *cobra.Command {
	var addr string
	var uploadDir string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the upload and analysis HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initDB(); err != nil {
				return fmt.Errorf("database error: %w", err)
			}
			defer database.Close()

			server := api.NewServer(database, uploadDir, analysis.DefaultOptions())

			fmt.Printf("Train Data Analyser\n")
			fmt.Printf("   Listening on http://localhost%s\n", addr)
			fmt.Printf("   Uploads:  %s\n", uploadDir)
			fmt.Printf("   Database: %s\n\n", dbPath)
			fmt.Println("Available endpoints:")
			fmt.Println("  GET  /")
			fmt.Println("  POST /upload")
			fmt.Println("  GET  /health")
			fmt.Println("  POST /api/v1/analyze")
			fmt.Println("  GET  /api/v1/uploads")
			fmt.Println("  GET  /api/v1/stats")
			fmt.Println()

			return http.ListenAndServe(addr, server.Router())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", cfg.ServerPort, "Listen address")
	cmd.Flags().StringVarP(&uploadDir, "uploads", "u", cfg.UploadDir, "Directory for uploaded files")
	return cmd
}

// analyzeCmd runs the pipeline over a local file
func analyzeCmd() *cobra.Command {
	var asJSON bool
	var reportPath string
	var offsets []int
	var bucket time.Duration

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyse a telemetry export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tabular.DecodeFile(args[0])
			if err != nil {
				return err
			}

			opts := analysis.DefaultOptions()
			if len(offsets) > 0 {
				opts.ProximityOffsetsM = offsets
			}
			if bucket > 0 {
				opts.ResampleBucket = bucket
			}

			result, err := analysis.Analyze(table, opts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			m := report.FormatMetrics(result.Metrics)
			fmt.Printf("Samples:        %d\n", result.SampleCount)
			fmt.Printf("Total Distance: %s\n", m.TotalDistance)
			fmt.Printf("Max Speed:      %s %s\n", m.MaxSpeed, m.MaxSpeedDetails)
			fmt.Println()
			for _, line := range report.StopAnalysisLines(result.Stops) {
				fmt.Println(line)
			}
			if len(result.Stops) == 0 {
				fmt.Println("No stops detected.")
			}

			if reportPath != "" {
				f, err := os.Create(reportPath)
				if err != nil {
					return fmt.Errorf("error creating report file: %w", err)
				}
				defer f.Close()
				if err := report.WriteCharts(f, result); err != nil {
					return fmt.Errorf("error rendering report: %w", err)
				}
				fmt.Printf("\nCharts written to %s\n", reportPath)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Print the full analysis result as JSON")
	cmd.Flags().StringVarP(&reportPath, "report", "r", "", "Write the chart page to an HTML file")
	cmd.Flags().IntSliceVarP(&offsets, "offsets", "m", nil, "Proximity offsets in meters (default 50,100)")
	cmd.Flags().DurationVarP(&bucket, "bucket", "b", 0, "Resample bucket width (default 10s)")
	return cmd
}

// historyCmd lists recorded uploads
func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded uploads",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initDB(); err != nil {
				return fmt.Errorf("database error: %w", err)
			}
			defer database.Close()

			uploads, err := database.ListUploads(limit)
			if err != nil {
				return fmt.Errorf("error listing uploads: %w", err)
			}

			if len(uploads) == 0 {
				fmt.Println("No uploads recorded yet.")
				return nil
			}

			fmt.Printf("%-5s %-30s %-10s %-20s %-8s %s\n", "ID", "Filename", "Size", "Uploaded", "Samples", "Status")
			for _, u := range uploads {
				fmt.Printf("%-5d %-30s %-10d %-20s %-8d %s\n",
					u.ID, u.Filename, u.SizeBytes,
					u.UploadedAt.Format("2006-01-02 15:04:05"),
					u.SampleCount, u.Status)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 50, "Maximum uploads to list")
	return cmd
}

// statsCmd shows database statistics
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show upload history statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initDB(); err != nil {
				return fmt.Errorf("database error: %w", err)
			}
			defer database.Close()

			stats, err := database.GetStats()
			if err != nil {
				return fmt.Errorf("error getting stats: %w", err)
			}

			fmt.Println("Train Data Analyser Statistics")
			fmt.Println("==============================")
			fmt.Printf("  Total Uploads:   %v\n", stats["total_uploads"])
			fmt.Printf("  Failed Uploads:  %v\n", stats["failed_uploads"])
			fmt.Printf("  Database:        %s\n", dbPath)

			return nil
		},
	}
}
