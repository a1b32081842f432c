package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jszwec/csvutil"

	"flight-audit-service/internal/domain/entity"
	"flight-audit-service/internal/domain/repository"
)

// ParseFlightsCsv decodes flight records from CSV data with a header row.
// Columns are matched by name; unknown columns are ignored. An input without a
// header yields no records.
func ParseFlightsCsv(reader io.Reader) ([]entity.FlightRecord, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	decoder, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []entity.FlightRecord{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read CSV header: %v", repository.ErrDecode, err)
	}

	records := []entity.FlightRecord{}
	for line := 2; ; line++ {
		var row flightRow
		if err := decoder.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: line %d: %v", repository.ErrDecode, line, err)
		}

		record, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", repository.ErrDecode, line, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// WriteFlightsCsv encodes records with the same header ParseFlightsCsv reads.
func WriteFlightsCsv(w io.Writer, records []entity.FlightRecord) error {
	csvWriter := csv.NewWriter(w)
	encoder := csvutil.NewEncoder(csvWriter)
	if err := encoder.EncodeHeader(flightRow{}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	encoder.AutoHeader = false
	for _, r := range records {
		if err := encoder.Encode(fromEntity(r)); err != nil {
			return fmt.Errorf("failed to encode flight %s: %w", r.FlightNumber, err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func (r flightRow) toEntity() (entity.FlightRecord, error) {
	departure, err := ParseDateTime(r.DepartureDateTime)
	if err != nil {
		return entity.FlightRecord{}, fmt.Errorf("departure_datetime: %w", err)
	}
	arrival, err := ParseDateTime(r.ArrivalDateTime)
	if err != nil {
		return entity.FlightRecord{}, fmt.Errorf("arrival_datetime: %w", err)
	}

	return entity.FlightRecord{
		ID:                   strings.TrimSpace(r.ID),
		AircraftRegistration: optional(r.AircraftRegistration),
		AircraftType:         optional(r.AircraftType),
		FlightNumber:         strings.TrimSpace(r.FlightNumber),
		DepartureAirport:     optional(r.DepartureAirport),
		ArrivalAirport:       optional(r.ArrivalAirport),
		DepartureDateTime:    departure,
		ArrivalDateTime:      arrival,
	}, nil
}

func fromEntity(f entity.FlightRecord) flightRow {
	return flightRow{
		ID:                   f.ID,
		AircraftRegistration: deref(f.AircraftRegistration),
		AircraftType:         deref(f.AircraftType),
		FlightNumber:         f.FlightNumber,
		DepartureAirport:     deref(f.DepartureAirport),
		DepartureDateTime:    formatDateTime(f.DepartureDateTime),
		ArrivalAirport:       deref(f.ArrivalAirport),
		ArrivalDateTime:      formatDateTime(f.ArrivalDateTime),
	}
}

// ParseDateTime parses a zone-less timestamp in any accepted layout. An empty
// value is absent, not an error.
func ParseDateTime(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range DATETIME_LAYOUTS {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognised timestamp %q", value)
}

func formatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DATETIME_LAYOUT)
}

func optional(value string) *string {
	return entity.StringPtr(strings.TrimSpace(value))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
