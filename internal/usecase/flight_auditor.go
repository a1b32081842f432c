package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"flight-audit-service/internal/domain/consistency"
	"flight-audit-service/internal/domain/entity"
	"flight-audit-service/internal/domain/repository"
	"flight-audit-service/pkg/logger"
	"flight-audit-service/pkg/metrics"
	"flight-audit-service/pkg/utils"
)

// FlightAuditor loads flight records and audits them for inconsistencies
type FlightAuditor struct {
	flightRecordRepo repository.FlightRecordRepository
	minTurnaround    time.Duration
	metrics          *metrics.Metrics
	logger           logger.Logger
}

// NewFlightAuditor creates a new flight auditor. A non-positive minTurnaround
// selects the default of two hours.
func NewFlightAuditor(
	flightRecordRepo repository.FlightRecordRepository,
	minTurnaround time.Duration,
	metrics *metrics.Metrics,
	logger logger.Logger,
) (*FlightAuditor, error) {
	if flightRecordRepo == nil {
		return nil, errors.New("flight record repository is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics are required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if minTurnaround <= 0 {
		minTurnaround = consistency.DefaultMinTurnaround
	}
	return &FlightAuditor{
		flightRecordRepo: flightRecordRepo,
		minTurnaround:    minTurnaround,
		metrics:          metrics,
		logger:           logger,
	}, nil
}

// MinTurnaround is the threshold used by CheckInconsistencies
func (a *FlightAuditor) MinTurnaround() time.Duration {
	return a.minTurnaround
}

// ListFlights returns every flight record unmodified
func (a *FlightAuditor) ListFlights(ctx context.Context) ([]entity.FlightRecord, error) {
	flights, err := a.flightRecordRepo.FindAll(ctx)
	if err != nil {
		a.metrics.ErrorsCount.WithLabelValues("list_flights").Inc()
		a.logger.Error("Failed to load flight records", "error", err)
		return nil, fmt.Errorf("failed to load flight records: %w", err)
	}
	return flights, nil
}

// CheckInconsistencies loads every flight record and runs all rules over them
func (a *FlightAuditor) CheckInconsistencies(ctx context.Context) (entity.Report, error) {
	start := time.Now()

	flights, err := a.flightRecordRepo.FindAll(ctx)
	if err != nil {
		a.metrics.ErrorsCount.WithLabelValues("check_inconsistencies").Inc()
		a.logger.Error("Failed to load flight records for audit", "error", err)
		return entity.Report{}, fmt.Errorf("failed to load flight records: %w", err)
	}

	report := consistency.GenerateReport(flights, a.minTurnaround)

	a.metrics.ReportsGenerated.Inc()
	a.metrics.FlightsAudited.Add(float64(len(flights)))
	for _, section := range report.Sections {
		a.metrics.FindingsTotal.WithLabelValues(string(section.Rule)).Add(float64(len(section.Findings)))
	}
	a.metrics.ReportDuration.Observe(time.Since(start).Seconds())

	a.logger.Info("Flight audit completed",
		"flights", len(flights),
		"sections", len(report.Sections),
		"findings", report.FindingCount(),
		"minTurnaround", a.minTurnaround.String())

	return report, nil
}

// ImportFlights decodes CSV data and stores the records
func (a *FlightAuditor) ImportFlights(ctx context.Context, csvData io.Reader) (int, error) {
	records, err := utils.ParseFlightsCsv(csvData)
	if err != nil {
		a.metrics.ErrorsCount.WithLabelValues("import_flights").Inc()
		return 0, err
	}

	if err := a.flightRecordRepo.SaveAll(ctx, records); err != nil {
		a.metrics.ErrorsCount.WithLabelValues("import_flights").Inc()
		a.logger.Error("Failed to store imported flight records", "count", len(records), "error", err)
		return 0, fmt.Errorf("failed to store flight records: %w", err)
	}

	a.metrics.FlightsImported.Add(float64(len(records)))
	a.logger.Info("Flight records imported", "count", len(records))
	return len(records), nil
}
