// cmd/exportreport/main.go: writes the monthly revenue report to a file.
// Usage: go run ./cmd/exportreport -year 2024 -out report.csv [-format pdf]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"revup/internal/config"
	"revup/internal/infra"
	"revup/internal/repository"
	"revup/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	year := flag.String("year", "all", `year to export, or "all"`)
	out := flag.String("out", "", "output file (default Monthly_Revenue_Report.csv / .pdf)")
	format := flag.String("format", "csv", "csv or pdf")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*year, *out, *format); err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(1)
	}
}

func run(yearArg, out, format string) error {
	y, err := service.ParseYear(yearArg)
	if err != nil {
		return err
	}
	if err := service.ValidateFormat(format); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer infra.Close(db)

	reports := service.NewReportService(repository.NewSaleRepository(db), cfg.CurrencyLabel)
	path, err := reports.ExportFile(context.Background(), out, format, y)
	if err != nil {
		return err
	}
	fmt.Printf("Report exported to %s\n", path)
	return nil
}
