package repository

import (
	"context"
	"fmt"
	"os"

	"flight-audit-service/internal/domain/entity"
	"flight-audit-service/internal/domain/repository"
	"flight-audit-service/pkg/logger"
	"flight-audit-service/pkg/utils"
)

// CSVFlightRecordRepository reads flight records from a CSV file. The file is
// decoded again on every call.
type CSVFlightRecordRepository struct {
	path   string
	logger logger.Logger
}

// NewCSVFlightRecordRepository creates a repository backed by the CSV file at path
func NewCSVFlightRecordRepository(path string, logger logger.Logger) repository.FlightRecordRepository {
	return &CSVFlightRecordRepository{
		path:   path,
		logger: logger,
	}
}

// FindAll decodes every row of the file in file order
func (r *CSVFlightRecordRepository) FindAll(ctx context.Context) ([]entity.FlightRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flights CSV %s: %w", r.path, err)
	}
	defer file.Close()

	records, err := utils.ParseFlightsCsv(file)
	if err != nil {
		return nil, fmt.Errorf("flights CSV %s: %w", r.path, err)
	}

	r.logger.Debug("Loaded flight records from CSV", "path", r.path, "count", len(records))
	return records, nil
}

// SaveAll is not supported for CSV files
func (r *CSVFlightRecordRepository) SaveAll(ctx context.Context, records []entity.FlightRecord) error {
	return repository.ErrReadOnly
}
