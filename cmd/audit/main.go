package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"flight-audit-service/internal/interface/repository"
	"flight-audit-service/internal/usecase"
	"flight-audit-service/pkg/logger"
	"flight-audit-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	file := flag.String("file", "data/flights.csv", "flight records CSV file")
	minTurnaround := flag.Duration("min-turnaround", 2*time.Hour, "minimum realistic turnaround time")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	log := logger.NewLogger(*logLevel)
	defer log.Sync()

	repo := repository.NewCSVFlightRecordRepository(*file, log)
	auditor, err := usecase.NewFlightAuditor(repo, *minTurnaround, metrics.NewMetrics("flight_audit", prometheus.NewRegistry()), log)
	if err != nil {
		log.Fatal("Failed to create flight auditor", "error", err)
	}

	report, err := auditor.CheckInconsistencies(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, line := range report.Lines() {
		fmt.Println(line)
	}
	if !report.Empty() {
		os.Exit(2)
	}
}
