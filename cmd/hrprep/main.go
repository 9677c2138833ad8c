// Command hrprep cleans the HR attrition CSV: it imputes missing values,
// encodes categorical columns, derives tenure and age features, standardizes
// the numeric scale columns, renders a correlation heatmap and writes the
// cleaned table.
//
// Example:
//
//	go run ./cmd/hrprep -input WA_Fn-UseC_-HR-Employee-Attrition.csv -output cleaned.csv
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/config"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/dataprep"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/logging"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/pipeline"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/report"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		attrs := []any{slog.Any("error", err)}
		var derr *data.Error
		if errors.As(err, &derr) {
			attrs = append(attrs, slog.String("stage", derr.Stage), slog.String("column", derr.Column))
		}
		slog.Error("Preprocessing failed", attrs...)
		os.Exit(1)
	}
}

func run(args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("hrprep", flag.ContinueOnError)
	fs.SetOutput(logOut)
	configPath := fs.String("config", "", "Path to a YAML config file")
	inputPath := fs.String("input", "", "Path to input CSV file (overrides config)")
	outputPath := fs.String("output", "", "Path to save the cleaned CSV (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	logger, err := logging.New(cfg.Logging, logOut)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	// ---- Load ----
	tbl, err := data.Load(cfg.Input.Path)
	if err != nil {
		return err
	}
	schema := tbl.Schema()
	slog.Info("Input schema",
		slog.Int("numeric", schema.Count(data.Numeric)),
		slog.Int("categorical", schema.Count(data.Categorical)),
		slog.Int("boolean", schema.Count(data.Boolean)))

	// ---- Impute, encode, derive, scale ----
	p, err := pipeline.NewPipeline(
		dataprep.Imputer{},
		dataprep.Encoder{},
		dataprep.Deriver{Age: cfg.AgeBuckets()},
		dataprep.Scaler{Columns: cfg.Features.ScaleColumns},
	)
	if err != nil {
		return err
	}
	if err := p.Run(tbl); err != nil {
		return err
	}

	// ---- Report ----
	if cfg.Report.HeatmapPath != "" || cfg.Report.WorkbookPath != "" {
		corr, err := report.Correlate(tbl)
		if err != nil {
			return err
		}
		if cfg.Report.HeatmapPath != "" {
			opts := report.HeatmapOptions{
				Title:  report.HeatmapTitle,
				Width:  cfg.Report.WidthIn,
				Height: cfg.Report.HeightIn,
			}
			if err := report.RenderHeatmap(corr, cfg.Report.HeatmapPath, opts); err != nil {
				return err
			}
		}
		if cfg.Report.WorkbookPath != "" {
			if err := report.WriteWorkbook(corr, cfg.Report.WorkbookPath); err != nil {
				return err
			}
		}
	}

	// ---- Output ----
	if err := data.Save(tbl, cfg.Output.Path); err != nil {
		return err
	}
	if cfg.Output.ParquetPath != "" {
		if err := data.SaveParquet(tbl, cfg.Output.ParquetPath); err != nil {
			return err
		}
	}

	slog.Info("Preprocessing complete",
		slog.Int("rows", tbl.Rows()),
		slog.Int("columns", tbl.Width()),
		slog.String("output", cfg.Output.Path))
	return nil
}
