package repository

import (
	"context"
	"fmt"
	"time"

	"flight-audit-service/internal/domain/entity"
	"flight-audit-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFlightRecordRepository implements FlightRecordRepository on PostgreSQL
type GormFlightRecordRepository struct {
	db *gorm.DB
}

// NewGormFlightRecordRepository creates a new GORM flight record repository
func NewGormFlightRecordRepository(db *gorm.DB) repository.FlightRecordRepository {
	return &GormFlightRecordRepository{
		db: db,
	}
}

// FlightRecords GORM model for database mapping
type FlightRecords struct {
	ID                   string     `gorm:"column:id;primaryKey"`
	AircraftRegistration *string    `gorm:"column:aircraft_registration;index"`
	AircraftType         *string    `gorm:"column:aircraft_type"`
	FlightNumber         string     `gorm:"column:flight_number;index"`
	DepartureAirport     *string    `gorm:"column:departure_airport"`
	DepartureDateTime    *time.Time `gorm:"column:departure_datetime"`
	ArrivalAirport       *string    `gorm:"column:arrival_airport"`
	ArrivalDateTime      *time.Time `gorm:"column:arrival_datetime"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName overrides the default table name
func (FlightRecords) TableName() string {
	return "flight_records"
}

// MigrateFlightRecords creates or updates the flight_records table
func MigrateFlightRecords(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&FlightRecords{})
}

// FindAll returns every flight record in insertion order
func (r *GormFlightRecordRepository) FindAll(ctx context.Context) ([]entity.FlightRecord, error) {
	var rows []FlightRecords
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query flight records: %w", err)
	}

	records := make([]entity.FlightRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toEntity())
	}
	return records, nil
}

// SaveAll upserts records by ID. Records without an ID get a new one.
func (r *GormFlightRecordRepository) SaveAll(ctx context.Context, records []entity.FlightRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]FlightRecords, 0, len(records))
	for _, record := range records {
		rows = append(rows, newFlightRecordsRow(record))
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(flightRecordColumns),
		}).
		Create(&rows)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert flight records: %w", result.Error)
	}
	return nil
}

var flightRecordColumns = []string{
	"aircraft_registration", "aircraft_type", "flight_number",
	"departure_airport", "departure_datetime", "arrival_airport", "arrival_datetime",
	"updated_at",
}

func newFlightRecordsRow(record entity.FlightRecord) FlightRecords {
	id := record.ID
	if id == "" {
		id = uuid.NewString()
	}
	return FlightRecords{
		ID:                   id,
		AircraftRegistration: record.AircraftRegistration,
		AircraftType:         record.AircraftType,
		FlightNumber:         record.FlightNumber,
		DepartureAirport:     record.DepartureAirport,
		DepartureDateTime:    record.DepartureDateTime,
		ArrivalAirport:       record.ArrivalAirport,
		ArrivalDateTime:      record.ArrivalDateTime,
	}
}

// Convert GORM model to domain entity
func (row FlightRecords) toEntity() entity.FlightRecord {
	return entity.FlightRecord{
		ID:                   row.ID,
		AircraftRegistration: row.AircraftRegistration,
		AircraftType:         row.AircraftType,
		FlightNumber:         row.FlightNumber,
		DepartureAirport:     row.DepartureAirport,
		ArrivalAirport:       row.ArrivalAirport,
		DepartureDateTime:    row.DepartureDateTime,
		ArrivalDateTime:      row.ArrivalDateTime,
	}
}
